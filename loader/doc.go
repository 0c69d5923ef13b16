// Package loader reads graphs from the text edge-list format and the
// binary degree/adjacency directory format, and writes the text format
// back out for the converter tool. Both readers normalise self-loops,
// duplicate edges, and symmetry through graph.BuildFromEdges, so callers
// never see a malformed CSRGraph.
package loader
