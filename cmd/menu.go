package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vinhtrinh326/cpusched/internal/scheduler"
)

// promptPolicy asks for a policy on w and reads the answer from r. Round-Robin
// also asks for a quantum; an empty answer keeps defaultQuantum.
func promptPolicy(r io.Reader, w io.Writer, defaultQuantum int64) (scheduler.Policy, int64, error) {
	in := bufio.NewReader(r)

	_, _ = fmt.Fprintln(w, "Select the scheduling algorithm:")
	for i, p := range scheduler.Policies() {
		_, _ = fmt.Fprintf(w, "%d. %s (%s)\n", i+1, p.Title(), strings.ToUpper(string(p)))
	}
	_, _ = fmt.Fprint(w, "Enter your choice: ")
	choice, err := readLine(in)
	if err != nil {
		return "", 0, err
	}
	policy, err := scheduler.ParsePolicy(choice)
	if err != nil {
		return "", 0, err
	}
	if !policy.NeedsQuantum() {
		return policy, defaultQuantum, nil
	}

	_, _ = fmt.Fprintf(w, "Enter time quantum [%d]: ", defaultQuantum)
	answer, err := readLine(in)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", 0, err
	}
	if answer == "" {
		return policy, defaultQuantum, nil
	}
	quantum, err := strconv.ParseInt(answer, 10, 64)
	if err != nil || quantum <= 0 {
		return "", 0, fmt.Errorf("%w: time quantum must be a positive integer, got %q", scheduler.ErrInvalidConfiguration, answer)
	}
	return policy, quantum, nil
}

// readLine returns the next trimmed line. A final line without a newline is
// returned without error; io.EOF is returned only when nothing was read.
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading menu input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
