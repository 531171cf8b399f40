// Package mst computes minimum-cost spanning networks over named sites.
//
// What & Why
//
//   - Given sites joined by undirected candidate links with integer costs, a
//     minimum spanning tree is the cheapest subset of links that connects
//     every site without a cycle. When the input falls apart into several
//     components the result is a minimum spanning forest: one tree per
//     component, and Result.Components reports how many there are.
//
// Algorithms Provided
//
//   - Build(sites, edges) (Result, error): Kruskal.
//
//   - Strategy: stable-sort a copy of the edges by cost, then accept each edge
//     whose endpoints still lie in different sets of a disjointset.DisjointSet,
//     merging the two sets. Stop early once |V|-1 edges are accepted.
//
//   - Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
//
//   - Determinism: equal-cost edges keep their input order, so the same
//     input always yields the same tree.
//
//   - Prim(sites, edges) (Result, error): grows a tree from every not yet
//     reached site in sorted order using a min-heap of candidate links.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
//   - Use-Case: independent cross-check of Build; both always agree on total
//     cost and component count, though they may pick different trees among
//     equally cheap ones.
//
//   - Compute(sites, edges, opts...) dispatches on Options.Method.
//
// Error Conditions
//
//   - ErrUnknownSite: an edge endpoint is missing from sites. Checked for
//     every edge before any selection happens.
//
//   - ErrUnknownMethod: Compute was given a method other than MethodKruskal
//     or MethodPrim.
//
// Empty input, a single site and disconnected input are not errors.
package mst
