package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/netplan/edge"
	"github.com/pkg/errors"
)

var (
	// ErrFieldCount indicates a line does not have exactly three fields.
	ErrFieldCount = errors.New("parser: expected 3 fields")

	// ErrBadCost indicates the cost field is not an integer.
	ErrBadCost = errors.New("parser: cost is not an integer")
)

// maxLine bounds the length of a single input line.
const maxLine = 1 << 20

// ParseError reports a malformed input line.
type ParseError struct {
	Line int    // 1-based line number
	Text string // raw line content
	Err  error  // ErrFieldCount or ErrBadCost
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads one canonical edge per line from r.
func Parse(r io.Reader) ([]edge.Edge, error) {
	var edges []edge.Edge

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for n := 1; sc.Scan(); n++ {
		e, ok, err := parseLine(n, sc.Text())
		if err != nil {
			return nil, err
		}
		if ok {
			edges = append(edges, e)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "parser: reading input")
	}

	return edges, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]edge.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "parser: opening %s", path)
	}
	defer f.Close()

	return Parse(f)
}

// parseLine returns ok=false for blank and comment lines.
func parseLine(n int, line string) (edge.Edge, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return edge.Edge{}, false, nil
	}

	fields := strings.Fields(trimmed)
	if len(fields) != 3 {
		return edge.Edge{}, false, &ParseError{Line: n, Text: line, Err: ErrFieldCount}
	}
	cost, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return edge.Edge{}, false, &ParseError{Line: n, Text: line, Err: ErrBadCost}
	}

	return edge.New(fields[0], fields[1], cost), true, nil
}
