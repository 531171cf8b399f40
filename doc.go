// Package netplan plans the cheapest network that links a set of named sites.
//
// Feed it candidate links, each a pair of sites and a build cost, and it
// returns the subset of links that connects every reachable site at minimum
// total cost: a minimum spanning tree, or a forest when the sites fall apart
// into separate groups.
//
// Under the hood, everything is organized into small packages:
//
//	edge/        — canonical Edge{Low, High, Cost} and its orderings
//	disjointset/ — index-based union-find with iterative path compression
//	mst/         — Kruskal (Build) and Prim spanning-tree construction
//	report/      — deterministic text rendering, plus YAML and JSON
//	parser/      — "<siteA> <siteB> <cost>" line reader
//	planner/     — parse → build → format in one call
//	cmd/netplan  — command-line front end
//
// Quick example:
//
//	A B 1
//	B C 2        ─►   A---B $1
//	A C 3             B---C $2
//	                  Total Cost: $3
//
//	go install github.com/katalvlaran/netplan/cmd/netplan@latest
package netplan
