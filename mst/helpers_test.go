package mst_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/netplan/disjointset"
	"github.com/katalvlaran/netplan/edge"
	"github.com/stretchr/testify/require"
)

// buildTriangle returns A—B(1), B—C(2), A—C(3); its MST is {A—B, B—C} with cost 3.
func buildTriangle() ([]string, []edge.Edge) {
	return []string{"A", "B", "C"}, []edge.Edge{
		edge.New("A", "B", 1),
		edge.New("B", "C", 2),
		edge.New("A", "C", 3),
	}
}

// randomGraph creates n sites "V0".."V(n-1)" and m random links with costs in
// [minCost, minCost+spread). Self-loops and parallel links are allowed. The
// generator is seeded so every run sees the same graph.
func randomGraph(seed int64, n, m int, minCost, spread int64) ([]string, []edge.Edge) {
	r := rand.New(rand.NewSource(seed))
	sites := make([]string, n)
	for i := range sites {
		sites[i] = fmt.Sprintf("V%d", i)
	}
	edges := make([]edge.Edge, 0, m)
	for i := 0; i < m; i++ {
		u, v := r.Intn(n), r.Intn(n)
		edges = append(edges, edge.New(sites[u], sites[v], minCost+r.Int63n(spread)))
	}

	return sites, edges
}

// componentCount counts connected components with a plain BFS over an
// adjacency map, independent of the disjoint set under test.
func componentCount(sites []string, edges []edge.Edge) int {
	adj := make(map[string][]string, len(sites))
	for _, e := range edges {
		adj[e.Low] = append(adj[e.Low], e.High)
		adj[e.High] = append(adj[e.High], e.Low)
	}
	seen := make(map[string]bool, len(sites))
	count := 0
	for _, s := range sites {
		if seen[s] {
			continue
		}
		count++
		queue := []string{s}
		seen[s] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range adj[cur] {
				if !seen[nb] {
					seen[nb] = true
					queue = append(queue, nb)
				}
			}
		}
	}

	return count
}

// requireAcyclic replays accepted edges into a fresh disjoint set; every
// union must merge two distinct sets.
func requireAcyclic(t *testing.T, sites []string, accepted []edge.Edge) {
	t.Helper()
	ds := disjointset.New(sites)
	for _, e := range accepted {
		merged, err := ds.Union(e.Low, e.High)
		require.NoError(t, err)
		require.Truef(t, merged, "edge %s closes a cycle", e)
	}
}

// bruteForceMin returns the cheapest acyclic subset of exactly want edges.
// Only suitable for a handful of edges.
func bruteForceMin(sites []string, edges []edge.Edge, want int) (int64, bool) {
	var (
		best  int64
		found bool
	)
	for mask := 0; mask < 1<<len(edges); mask++ {
		ds := disjointset.New(sites)
		var (
			cost  int64
			count int
			ok    = true
		)
		for i, e := range edges {
			if mask&(1<<i) == 0 {
				continue
			}
			merged, _ := ds.Union(e.Low, e.High)
			if !merged {
				ok = false
				break
			}
			cost += e.Cost
			count++
		}
		if !ok || count != want {
			continue
		}
		if !found || cost < best {
			best, found = cost, true
		}
	}

	return best, found
}
