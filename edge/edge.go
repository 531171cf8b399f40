package edge

import (
	"cmp"
	"slices"
	"strconv"
)

// Edge is an undirected candidate link between two sites.
//
// Low and High are the endpoints with Low <= High. Use New to build one;
// a literal Edge with swapped endpoints is not canonical.
type Edge struct {
	// Low is the lexicographically smaller endpoint.
	Low string

	// High is the lexicographically larger (or equal) endpoint.
	High string

	// Cost is the price of building the link. Negative values are allowed
	// and simply sort first.
	Cost int64
}

// New returns the canonical Edge joining a and b at the given cost.
// Complexity: O(len(a)+len(b)) for the string comparison.
func New(a, b string, cost int64) Edge {
	if b < a {
		a, b = b, a
	}

	return Edge{Low: a, High: b, Cost: cost}
}

// IsLoop reports whether both endpoints are the same site.
func (e Edge) IsLoop() bool { return e.Low == e.High }

// String renders the edge as "Low---High $Cost".
func (e Edge) String() string {
	return e.Low + "---" + e.High + " $" + strconv.FormatInt(e.Cost, 10)
}

// ByCost orders edges by ascending cost only. Edges with equal cost compare
// as equal, so a stable sort keeps their input order.
func ByCost(a, b Edge) int {
	return cmp.Compare(a.Cost, b.Cost)
}

// ByEndpoints orders edges by (Low, High) lexicographically, falling back to
// Cost for parallel edges between the same pair.
func ByEndpoints(a, b Edge) int {
	if c := cmp.Compare(a.Low, b.Low); c != 0 {
		return c
	}
	if c := cmp.Compare(a.High, b.High); c != 0 {
		return c
	}

	return cmp.Compare(a.Cost, b.Cost)
}

// Sites returns the sorted, de-duplicated set of endpoints referenced by edges.
// Complexity: O(E log E).
func Sites(edges []Edge) []string {
	sites := make([]string, 0, 2*len(edges))
	for _, e := range edges {
		sites = append(sites, e.Low, e.High)
	}
	slices.Sort(sites)

	return slices.Compact(sites)
}

// Total returns the sum of the costs of edges.
func Total(edges []Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Cost
	}

	return total
}
