package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/netplan/edge"
	"github.com/katalvlaran/netplan/mst"
	"gopkg.in/yaml.v3"
)

// ErrUnknownOutput indicates an unsupported output format name.
var ErrUnknownOutput = errors.New("report: unknown output format")

// Output names a rendering of a result.
type Output string

// Supported renderings.
const (
	OutputText Output = "text"
	OutputYAML Output = "yaml"
	OutputJSON Output = "json"
)

// ParseOutput maps a case-insensitive name to an Output.
func ParseOutput(s string) (Output, error) {
	switch f := Output(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputText, OutputYAML, OutputJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOutput, s)
	}
}

// Sorted returns a copy of res.Edges ordered by (Low, High).
func Sorted(res mst.Result) []edge.Edge {
	sorted := slices.Clone(res.Edges)
	slices.SortFunc(sorted, edge.ByEndpoints)

	return sorted
}

// Format renders res as text. Lines are separated by "\n" and the last line,
// "Total Cost: $<total>", has no trailing newline.
func Format(res mst.Result) string {
	var sb strings.Builder
	for _, e := range Sorted(res) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	sb.WriteString("Total Cost: $")
	sb.WriteString(strconv.FormatInt(res.Total, 10))

	return sb.String()
}

// document is the structured form used by the YAML and JSON renderings.
type document struct {
	Links      []link `yaml:"links" json:"links"`
	TotalCost  int64  `yaml:"total_cost" json:"total_cost"`
	Sites      int    `yaml:"sites" json:"sites"`
	Components int    `yaml:"components" json:"components"`
}

type link struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
	Cost int64  `yaml:"cost" json:"cost"`
}

func newDocument(res mst.Result) document {
	sorted := Sorted(res)
	doc := document{
		Links:      make([]link, 0, len(sorted)),
		TotalCost:  res.Total,
		Sites:      res.Sites,
		Components: res.Components,
	}
	for _, e := range sorted {
		doc.Links = append(doc.Links, link{From: e.Low, To: e.High, Cost: e.Cost})
	}

	return doc
}

// Render writes res to w in output format f. Text output ends with a newline.
func Render(w io.Writer, res mst.Result, f Output) error {
	switch f {
	case OutputText:
		_, err := io.WriteString(w, Format(res)+"\n")
		return err
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(res)); err != nil {
			return err
		}
		return enc.Close()
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocument(res))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, string(f))
	}
}
