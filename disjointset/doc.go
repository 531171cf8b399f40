// Package disjointset provides a union-find structure over named sites.
//
// Sites are registered once in New and mapped to dense integer indices; the
// parent and rank tables are plain slices indexed by those integers, so Find
// and Union cost a map lookup plus near-constant amortized work.
//
// Operations:
//
//	Find(site)       – representative of the set holding site (path compression)
//	Union(a, b)      – merge the sets holding a and b (union by rank)
//	Connected(a, b)  – whether a and b share a representative
//	Count()          – number of disjoint sets
//
// Path compression is iterative: Find walks to the root collecting every
// visited node, then repoints all of them directly at the root. Long chains
// therefore never grow the call stack.
//
// Referencing a site that was not passed to New is a caller bug and returns
// ErrUnknownSite instead of silently inserting it.
//
// A DisjointSet is not safe for concurrent use; it is meant as scratch state
// owned by a single computation.
package disjointset
