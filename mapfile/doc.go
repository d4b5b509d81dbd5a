// Package mapfile reads and writes the flat street-map format and turns it
// into a core.Graph.
//
// Layout (tokens are separated by whitespace and/or commas):
//
//	<vertexCount>
//	<idx>,<lat>,<lon>,<height>,<label ...rest of line>   × vertexCount
//	<edgeCount>
//	<from> <to> <direction>                              × edgeCount
//	<caseCount>
//	<source> <destination>                               × caseCount
//
// The label is everything after the height; one leading comma and then one
// leading space are stripped, so both "…,256.0,Main St" and "…,256.0 Main St"
// yield "Main St". direction is 1 for a one-way street (from → to) and 2 for
// a two-way street. Blank lines and lines starting with '#' are ignored.
// The case section may be omitted entirely (a map with no queries).
//
// DecodeOSM is an alternative importer for OpenStreetMap XML extracts: every
// way tagged highway=* becomes a chain of edges between its nodes.
package mapfile
