// Package core defines the Graph, Arc and Coord types together with the
// sentinel errors returned while building a graph.
//
// Errors:
//
//	ErrInvalidNode        - node ID outside the dense range [0, N).
//	ErrBadWeight          - negative, NaN or infinite edge weight.
//	ErrCoordinateMismatch - coordinate source lacks a node of the graph.
//	ErrSealed             - the graph was sealed and can no longer change.
//	ErrNilGraph           - a nil *Graph was supplied.
package core

import (
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNode indicates a node ID outside [0, NodeCount()).
	ErrInvalidNode = errors.New("core: invalid node id")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrCoordinateMismatch indicates a node ID absent from the coordinate source.
	ErrCoordinateMismatch = errors.New("core: coordinate source does not cover every node")

	// ErrSealed indicates a mutation attempted on a sealed graph.
	ErrSealed = errors.New("core: graph is sealed")

	// ErrNilGraph indicates a nil *Graph was passed.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Coord is a geographic position in decimal degrees.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Arc is one directed edge as seen from its tail node.
// The tail is implicit: it is the index of the adjacency bucket holding the Arc.
type Arc struct {
	// To is the head node ID.
	To int

	// Weight is the traversal cost in meters (finite, ≥ 0).
	Weight float64
}

// Edge is a fully qualified directed edge, used by Edges() snapshots.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Graph is the immutable-after-load road graph.
//
// out[u] owns every arc leaving u; nodes hold no edge storage of their own.
// coords[u] is the position of u once AttachCoordinates succeeded.
type Graph struct {
	out       [][]Arc // adjacency by tail node
	coords    []Coord // per-node coordinates
	hasCoords bool    // set by AttachCoordinates
	edges     int     // total arc count
	sealed    bool    // no mutation after Seal
}
