package parser_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/netplan/edge"
	"github.com/katalvlaran/netplan/parser"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Basic reads canonical edges, splitting on runs of whitespace.
func TestParse_Basic(t *testing.T) {
	in := "A B 1\nC\t\tB   2\n  A C 3  \n"

	edges, err := parser.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []edge.Edge{
		edge.New("A", "B", 1),
		edge.New("B", "C", 2),
		edge.New("A", "C", 3),
	}, edges)
}

// TestParse_SkipsBlankAndComments ignores lines without data.
func TestParse_SkipsBlankAndComments(t *testing.T) {
	in := "# campus links\n\nA B 1\n   \n  # trailing note\nB C -4\n"

	edges, err := parser.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []edge.Edge{edge.New("A", "B", 1), edge.New("B", "C", -4)}, edges)
}

// TestParse_Empty returns no edges and no error.
func TestParse_Empty(t *testing.T) {
	edges, err := parser.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, edges)
}

// TestParse_Errors reports the offending line with a distinguishable cause.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
		want error
	}{
		{"too few fields", "A B 1\nA B\n", 2, parser.ErrFieldCount},
		{"too many fields", "A B 1 extra\n", 1, parser.ErrFieldCount},
		{"non-numeric cost", "A B 1\n\nA C ten\n", 3, parser.ErrBadCost},
		{"fractional cost", "A B 1.5\n", 1, parser.ErrBadCost},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			edges, err := parser.Parse(strings.NewReader(tc.in))
			assert.Nil(t, edges)
			assert.ErrorIs(t, err, tc.want)

			var pe *parser.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.line, pe.Line)
			assert.Contains(t, err.Error(), "line")
		})
	}
}

// TestParseFile reads from disk and wraps open failures.
func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "links.txt")
	require.NoError(t, os.WriteFile(path, []byte("B A 5\n"), 0o600))

	edges, err := parser.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []edge.Edge{edge.New("A", "B", 5)}, edges)

	_, err = parser.ParseFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))

	var pe *parser.ParseError
	assert.False(t, errors.As(err, &pe), "open failures are not parse errors")
}
