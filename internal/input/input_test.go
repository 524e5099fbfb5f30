package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/xll-gen/tilerect/pkg/grid"
)

func TestParse(t *testing.T) {
	in := `7,1
11,1

# right side
11,7
 9 , 7
`
	got, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []grid.Point{{X: 7, Y: 1}, {X: 11, Y: 1}, {X: 11, Y: 7}, {X: 9, Y: 7}}, got)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    error
		wantMsg string
	}{
		{"Empty", "", ErrEmpty, "no vertices"},
		{"Only Comments", "# nothing\n\n", ErrEmpty, "no vertices"},
		{"Missing Comma", "1,1\n2 2\n", ErrMalformed, "line 2"},
		{"Not A Number", "1,x\n", ErrMalformed, "line 1"},
		{"Negative", "1,1\n-3,2\n", ErrMalformed, "line 2"},
		{"Three Fields", "1,2,3\n", ErrMalformed, "line 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.want), "got %v", err)
			require.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "polygon.txt")
	require.NoError(t, os.WriteFile(path, []byte("0,0\n3,0\n3,3\n0,3\n"), 0644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, got, 4)

	_, err = ReadFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}
