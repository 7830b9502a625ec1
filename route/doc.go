// Package route composes a start→via…→goal journey out of independent A*
// segments.
//
// ViaPoints splits the request into len(via)+1 ordered segments, solves them
// concurrently with astar.ShortestPath, waits for every segment, and only
// then validates and merges. A journey with any unreachable segment fails as
// a whole with ErrPartialRouteUnreachable; no partial path is ever returned.
//
// Merge concatenates segment paths, dropping the first node of every segment
// after the first since it repeats the previous segment's last node.
// ViaIndices locates each via point's first occurrence in the merged path.
package route
