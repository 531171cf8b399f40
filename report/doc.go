// Package report renders spanning-network results.
//
// Format produces the canonical text form: one line per selected link,
// sorted by endpoints, followed by the total cost:
//
//	A---B $1
//	B---C $2
//	Total Cost: $3
//
// The selection order of the builder never leaks into the output, so two
// results holding the same links in different order render identically.
//
// Render writes the same result as text, YAML or JSON to an io.Writer.
package report
