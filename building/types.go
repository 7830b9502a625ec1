package building

import (
	"errors"

	"github.com/katalvlaran/buzznav/core"
)

// Sentinel errors.
var (
	// ErrBuildingNotFound indicates a name absent from the registry.
	ErrBuildingNotFound = errors.New("building: not found")

	// ErrEmptyName indicates an entry with an empty name.
	ErrEmptyName = errors.New("building: empty name")
)

// Entry is one row of the building mapping.
type Entry struct {
	Name string
	Node int
}

// Building is a registered building with its node coordinates.
type Building struct {
	Name  string     `json:"name"`
	Node  int        `json:"node"`
	Coord core.Coord `json:"coord"`
}
