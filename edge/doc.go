// Package edge defines the canonical candidate link between two sites.
//
// A site is an opaque string identifier; two sites are the same site only when
// their strings are equal. An Edge joins two sites with an integer cost and is
// undirected, so New stores the endpoints in lexicographic order:
//
//	edge.New("B", "A", 5) == edge.New("A", "B", 5) // true
//
// Every unordered pair therefore has exactly one representation, which makes
// Edge values directly comparable with == and usable as map keys.
//
// Ordering helpers:
//
//	ByCost      – selection order used by the spanning-tree builders.
//	ByEndpoints – presentation order used by the report package.
//
// Both return the usual negative/zero/positive result and plug directly into
// slices.SortFunc and slices.SortStableFunc.
package edge
