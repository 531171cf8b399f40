package disjointset

// ParentOf exposes the raw parent pointer of site for white-box tests.
func (ds *DisjointSet) ParentOf(site string) string {
	return ds.names[ds.parent[ds.index[site]]]
}
