// Package graphio loads and stores graphs as CSV edge lists.
//
// The format is a header record of "directed" or "undirected" followed
// by one "u,v" record per edge:
//
//	undirected
//	1,2
//	2,3
//	3,1
//
// Identifiers are kept as opaque trimmed tokens; graphio never assumes
// they are numeric. Duplicate edge records are tolerated on load, so
// re-reading a written file is always clean. Records with the wrong
// field count fail with ErrBadRecord and the offending line number.
//
// Errors:
//
//	ErrEmptyInput - the input has no header record.
//	ErrBadHeader  - the header is neither "directed" nor "undirected".
//	ErrBadRecord  - an edge record does not have exactly two fields.
package graphio
