package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netplan/disjointset"
	"github.com/katalvlaran/netplan/edge"
)

// ErrUnknownSite indicates an edge references a site that was not supplied in
// the site set. It also matches disjointset.ErrUnknownSite with errors.Is.
var ErrUnknownSite = fmt.Errorf("mst: %w", disjointset.ErrUnknownSite)

// ErrUnknownMethod indicates Compute was asked for an unsupported algorithm.
var ErrUnknownMethod = errors.New("mst: unknown method")

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow each tree with a min-heap).
const MethodPrim = "prim"

// Result is the outcome of one spanning-tree computation.
type Result struct {
	// Edges are the accepted links in the order the algorithm selected them.
	Edges []edge.Edge

	// Total is the sum of Edges' costs.
	Total int64

	// Sites is the number of distinct sites in the universe.
	Sites int

	// Components is the number of disjoint networks left after selection.
	// It equals Sites - len(Edges).
	Components int
}

// Connected reports whether the result spans every site in one network.
func (r Result) Connected() bool { return r.Components <= 1 }

// Options configures Compute.
type Options struct {
	// Method is MethodKruskal or MethodPrim.
	Method string
}

// Option modifies Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// DefaultOptions returns Options selecting Kruskal.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Compute runs the algorithm selected by opts over sites and edges.
//
//	– MethodKruskal: Build(sites, edges)
//	– MethodPrim:    Prim(sites, edges)
//	– otherwise:     ErrUnknownMethod
func Compute(sites []string, edges []edge.Edge, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Build(sites, edges)
	case MethodPrim:
		return Prim(sites, edges)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// checkSites fails fast on the first edge whose endpoint is not in ds.
func checkSites(ds *disjointset.DisjointSet, edges []edge.Edge) error {
	for _, e := range edges {
		for _, s := range [2]string{e.Low, e.High} {
			if !ds.Has(s) {
				return fmt.Errorf("%w: %q in edge %s", ErrUnknownSite, s, e)
			}
		}
	}

	return nil
}
