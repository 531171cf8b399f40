package mst

import (
	"slices"

	"github.com/katalvlaran/netplan/disjointset"
	"github.com/katalvlaran/netplan/edge"
)

// Build computes a minimum spanning forest over sites using Kruskal's algorithm.
//
// Steps:
//  1. Register every site as a singleton set; verify all edge endpoints are known.
//  2. Stable-sort a copy of edges by cost (input order breaks ties).
//  3. For each edge, if its endpoints have different roots, accept it, add its
//     cost to the total and merge the two sets; otherwise skip it.
//  4. Stop once |V|-1 edges are accepted.
//
// The edges slice is not modified. Each call owns its own disjoint set, so
// Build is safe to call repeatedly and from independent goroutines.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Build(sites []string, edges []edge.Edge) (Result, error) {
	// 1. Singleton sets plus fail-fast endpoint check.
	ds := disjointset.New(sites)
	if err := checkSites(ds, edges); err != nil {
		return Result{}, err
	}
	n := ds.Len()
	if n == 0 {
		return Result{Edges: []edge.Edge{}}, nil
	}

	// 2. Selection order.
	sorted := slices.Clone(edges)
	slices.SortStableFunc(sorted, edge.ByCost)

	// 3. Greedy selection.
	res := Result{
		Edges: make([]edge.Edge, 0, min(len(sorted), n-1)),
		Sites: n,
	}
	for _, e := range sorted {
		if len(res.Edges) == n-1 {
			break
		}
		// Endpoints were validated above, so Union cannot fail here.
		merged, _ := ds.Union(e.Low, e.High)
		if !merged {
			continue
		}
		res.Edges = append(res.Edges, e)
		res.Total += e.Cost
	}
	res.Components = ds.Count()

	return res, nil
}

// BuildEdges is Build over the universe of sites referenced by edges.
func BuildEdges(edges []edge.Edge) (Result, error) {
	return Build(edge.Sites(edges), edges)
}
