package disjointset

import (
	"errors"
	"fmt"
)

// ErrUnknownSite indicates Find, Union or Connected referenced a site that was
// never registered with New.
var ErrUnknownSite = errors.New("disjointset: unknown site")

// DisjointSet partitions a fixed universe of sites into disjoint sets.
type DisjointSet struct {
	index  map[string]int // site → dense index
	names  []string       // dense index → site
	parent []int          // parent[i] == i for roots
	rank   []int          // upper bound on tree height, roots only
	count  int            // number of disjoint sets
	path   []int          // scratch buffer reused by find
}

// New returns a DisjointSet with one singleton set per distinct site.
// Duplicate sites are registered once.
// Complexity: O(n).
func New(sites []string) *DisjointSet {
	ds := &DisjointSet{
		index:  make(map[string]int, len(sites)),
		names:  make([]string, 0, len(sites)),
		parent: make([]int, 0, len(sites)),
		rank:   make([]int, 0, len(sites)),
	}
	for _, s := range sites {
		if _, ok := ds.index[s]; ok {
			continue
		}
		i := len(ds.names)
		ds.index[s] = i
		ds.names = append(ds.names, s)
		ds.parent = append(ds.parent, i)
		ds.rank = append(ds.rank, 0)
	}
	ds.count = len(ds.names)

	return ds
}

// Len returns the number of registered sites.
func (ds *DisjointSet) Len() int { return len(ds.names) }

// Count returns the current number of disjoint sets.
func (ds *DisjointSet) Count() int { return ds.count }

// Has reports whether site was registered.
func (ds *DisjointSet) Has(site string) bool {
	_, ok := ds.index[site]

	return ok
}

// Find returns the representative site of the set containing site.
// Every node visited on the way is repointed directly at the root.
func (ds *DisjointSet) Find(site string) (string, error) {
	i, err := ds.lookup(site)
	if err != nil {
		return "", err
	}

	return ds.names[ds.find(i)], nil
}

// Union merges the sets containing a and b. It reports true when two distinct
// sets were merged and false when a and b were already in the same set.
func (ds *DisjointSet) Union(a, b string) (bool, error) {
	i, err := ds.lookup(a)
	if err != nil {
		return false, err
	}
	j, err := ds.lookup(b)
	if err != nil {
		return false, err
	}

	return ds.union(i, j), nil
}

// Connected reports whether a and b belong to the same set.
func (ds *DisjointSet) Connected(a, b string) (bool, error) {
	i, err := ds.lookup(a)
	if err != nil {
		return false, err
	}
	j, err := ds.lookup(b)
	if err != nil {
		return false, err
	}

	return ds.find(i) == ds.find(j), nil
}

// Sets returns the current partition as a map from representative site to
// its members, members in registration order.
// Complexity: O(n·α(n)).
func (ds *DisjointSet) Sets() map[string][]string {
	sets := make(map[string][]string, ds.count)
	for i, name := range ds.names {
		root := ds.names[ds.find(i)]
		sets[root] = append(sets[root], name)
	}

	return sets
}

func (ds *DisjointSet) lookup(site string) (int, error) {
	i, ok := ds.index[site]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSite, site)
	}

	return i, nil
}

// find walks to the root, then repoints the whole visited path at it.
func (ds *DisjointSet) find(i int) int {
	path := ds.path[:0]
	for ds.parent[i] != i {
		path = append(path, i)
		i = ds.parent[i]
	}
	for _, v := range path {
		ds.parent[v] = i
	}
	ds.path = path

	return i
}

func (ds *DisjointSet) union(i, j int) bool {
	ri, rj := ds.find(i), ds.find(j)
	if ri == rj {
		return false
	}
	// Attach the shallower tree under the deeper one.
	switch {
	case ds.rank[ri] < ds.rank[rj]:
		ds.parent[ri] = rj
	case ds.rank[ri] > ds.rank[rj]:
		ds.parent[rj] = ri
	default:
		ds.parent[rj] = ri
		ds.rank[ri]++
	}
	ds.count--

	return true
}
