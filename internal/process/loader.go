package process

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// LoadFile opens path and loads its processes.
func LoadFile(path string) ([]Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: error opening process file", err)
	}
	defer f.Close()

	ps, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ps, nil
}

// Load reads one "arrival burst" pair per line. Fields may be separated by
// whitespace or a comma; blank lines and lines starting with '#' are skipped.
// Processes are numbered from 1 in file order.
func Load(r io.Reader) ([]Process, error) {
	var (
		ps      []Process
		lineNum int
		scanner = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.FieldsFunc(line, func(c rune) bool {
			return c == ',' || unicode.IsSpace(c)
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 fields (arrival burst), got %d", ErrMalformedSource, lineNum, len(fields))
		}
		arrival, err := strToInt(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: arrival time: %v", ErrMalformedSource, lineNum, err)
		}
		burst, err := strToInt(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: burst time: %v", ErrMalformedSource, lineNum, err)
		}
		if arrival < 0 {
			return nil, fmt.Errorf("%w: line %d: negative arrival time %d", ErrMalformedSource, lineNum, arrival)
		}
		if burst <= 0 {
			return nil, fmt.Errorf("%w: line %d: burst time must be positive, got %d", ErrMalformedSource, lineNum, burst)
		}

		ps = append(ps, New(int64(len(ps)+1), arrival, burst))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading process source", err)
	}
	if len(ps) == 0 {
		return nil, ErrEmptyInput
	}
	return ps, nil
}

func strToInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
