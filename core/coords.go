package core

import "fmt"

// CoordinateSource resolves a node ID to its coordinates.
// The loader supplies one; tests usually pass a CoordMap or CoordSlice.
type CoordinateSource interface {
	Lookup(id int) (Coord, bool)
}

// CoordMap is a CoordinateSource backed by a map keyed by node ID.
type CoordMap map[int]Coord

// Lookup implements CoordinateSource.
func (m CoordMap) Lookup(id int) (Coord, bool) {
	c, ok := m[id]
	return c, ok
}

// CoordSlice is a CoordinateSource where index i holds the coordinates of node i.
type CoordSlice []Coord

// Lookup implements CoordinateSource.
func (s CoordSlice) Lookup(id int) (Coord, bool) {
	if id < 0 || id >= len(s) {
		return Coord{}, false
	}

	return s[id], true
}

// AttachCoordinates copies coordinates for every node of g from src.
//
// It fails with ErrCoordinateMismatch naming the first node ID that src
// cannot resolve; in that case g is left without coordinates. Extra entries
// in src are ignored.
//
// Complexity: O(N).
func AttachCoordinates(g *Graph, src CoordinateSource) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.sealed {
		return ErrSealed
	}
	if src == nil {
		return fmt.Errorf("%w: nil source", ErrCoordinateMismatch)
	}

	coords := make([]Coord, len(g.out))
	for id := range coords {
		c, ok := src.Lookup(id)
		if !ok {
			return fmt.Errorf("%w: node %d", ErrCoordinateMismatch, id)
		}
		coords[id] = c
	}
	g.coords = coords
	g.hasCoords = true

	return nil
}
