package process

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Process
		wantErr error
	}{
		{
			name:  "whitespace pairs",
			input: "0 5\n0 3\n4\t2\n",
			want:  []Process{New(1, 0, 5), New(2, 0, 3), New(3, 4, 2)},
		},
		{
			name:  "comma pairs with comments and blank lines",
			input: "# arrival,burst\n0,8\n\n1, 4\n",
			want:  []Process{New(1, 0, 8), New(2, 1, 4)},
		},
		{
			name:  "no trailing newline",
			input: "10 4",
			want:  []Process{New(1, 10, 4)},
		},
		{name: "empty", input: "", wantErr: ErrEmptyInput},
		{name: "only comments", input: "# nothing\n\n", wantErr: ErrEmptyInput},
		{name: "not a number", input: "0 five\n", wantErr: ErrMalformedSource},
		{name: "missing burst", input: "0 5\n3\n", wantErr: ErrMalformedSource},
		{name: "extra field", input: "0 5 1\n", wantErr: ErrMalformedSource},
		{name: "negative arrival", input: "-1 5\n", wantErr: ErrMalformedSource},
		{name: "zero burst", input: "0 0\n", wantErr: ErrMalformedSource},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_ReportsLineNumber(t *testing.T) {
	_, err := Load(strings.NewReader("0 5\n\n2 x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestLoad_DoesNotSort(t *testing.T) {
	ps, err := Load(strings.NewReader("5 1\n3 1\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), ps[0].ArrivalTime)
	assert.ErrorIs(t, Validate(ps), ErrInvalidProcess)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processes.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 5\n0 3\n"), 0o600))

	ps, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, ps, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
