package loader

import (
	"errors"

	"github.com/katalvlaran/buzznav/building"
	"github.com/katalvlaran/buzznav/core"
)

// MaxNodeID is the largest node id any dataset file may reference.
// Graphs are dense over [0, max id].
const MaxNodeID = 1<<22 - 1

// Sentinel errors.
var (
	// ErrMalformedRow indicates a row with missing or unparsable fields.
	ErrMalformedRow = errors.New("loader: malformed row")

	// ErrEmptyFile indicates a file without a header row.
	ErrEmptyFile = errors.New("loader: empty file")

	// ErrNoEdges indicates an edge list without data rows.
	ErrNoEdges = errors.New("loader: edge list has no rows")
)

// Paths names the three dataset files.
type Paths struct {
	Graph       string
	Coordinates string
	Buildings   string
}

// Dataset is a fully loaded, sealed campus.
type Dataset struct {
	Graph     *core.Graph
	Buildings *building.Registry
}
