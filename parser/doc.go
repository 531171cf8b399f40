// Package parser reads candidate links from text.
//
// Each non-blank line holds three whitespace-separated fields:
//
//	<siteA> <siteB> <cost>
//
// Lines whose first non-space character is '#' are comments. Any other line
// with the wrong number of fields, or a cost that is not a base-10 integer,
// stops parsing with a *ParseError carrying the 1-based line number.
package parser
