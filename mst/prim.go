package mst

import (
	"container/heap"
	"slices"

	"github.com/katalvlaran/netplan/disjointset"
	"github.com/katalvlaran/netplan/edge"
)

// Prim computes a minimum spanning forest over sites by growing one tree at a
// time from each not yet reached site, taken in sorted order, using a min-heap.
//
// Steps:
//  1. Verify all edge endpoints are known; build an adjacency list, skipping self-loops.
//  2. For each unreached site s (sorted): mark s reached, push its links.
//  3. Pop the cheapest link; if its far end is reached skip it, otherwise
//     accept it, mark the far end and push the far end's links.
//  4. Each outer start opens one more component.
//
// Heap ties are broken by push order, so the result is deterministic.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(sites []string, edges []edge.Edge) (Result, error) {
	// 1. Validate and index.
	ds := disjointset.New(sites)
	if err := checkSites(ds, edges); err != nil {
		return Result{}, err
	}
	order := slices.Clone(sites)
	slices.Sort(order)
	order = slices.Compact(order)

	adj := make(map[string][]edge.Edge, len(order))
	for _, e := range edges {
		if e.IsLoop() {
			continue
		}
		adj[e.Low] = append(adj[e.Low], e)
		adj[e.High] = append(adj[e.High], e)
	}

	res := Result{Edges: make([]edge.Edge, 0, max(len(order)-1, 0)), Sites: len(order)}
	reached := make(map[string]bool, len(order))
	pq := &linkPQ{}
	seq := 0
	push := func(from string) {
		for _, e := range adj[from] {
			to := e.High
			if to == from {
				to = e.Low
			}
			if !reached[to] {
				heap.Push(pq, link{e: e, to: to, seq: seq})
				seq++
			}
		}
	}

	// 2. One tree per unreached start site.
	for _, root := range order {
		if reached[root] {
			continue
		}
		res.Components++
		reached[root] = true
		push(root)

		// 3. Expand the current tree.
		for pq.Len() > 0 {
			l := heap.Pop(pq).(link)
			if reached[l.to] {
				continue
			}
			reached[l.to] = true
			res.Edges = append(res.Edges, l.e)
			res.Total += l.e.Cost
			push(l.to)
		}
	}

	return res, nil
}

// link is a heap entry: a candidate edge leading to site to.
type link struct {
	e   edge.Edge
	to  string
	seq int // push order, breaks cost ties
}

// linkPQ implements heap.Interface for a min-heap of links ordered by cost.
type linkPQ []link

func (pq linkPQ) Len() int { return len(pq) }

func (pq linkPQ) Less(i, j int) bool {
	if pq[i].e.Cost != pq[j].e.Cost {
		return pq[i].e.Cost < pq[j].e.Cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq linkPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *linkPQ) Push(x any) { *pq = append(*pq, x.(link)) }

// Pop removes the last element; called by heap.Pop after moving the minimum there.
func (pq *linkPQ) Pop() any {
	old := *pq
	n := len(old)
	l := old[n-1]
	*pq = old[:n-1]

	return l
}
