package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/buzznav/building"
	"github.com/katalvlaran/buzznav/core"
)

// LoadDataset reads all three files, attaches coordinates, seals the graph
// and builds the building registry. Any failure is reported before a single
// search can run.
func LoadDataset(p Paths) (*Dataset, error) {
	g, err := readFile(p.Graph, LoadGraph)
	if err != nil {
		return nil, err
	}
	coords, err := readFile(p.Coordinates, LoadCoordinates)
	if err != nil {
		return nil, err
	}
	if err := core.AttachCoordinates(g, coords); err != nil {
		return nil, fmt.Errorf("loader: %s: %w", p.Coordinates, err)
	}
	g.Seal()

	entries, err := readFile(p.Buildings, LoadBuildings)
	if err != nil {
		return nil, err
	}
	reg, err := building.NewRegistry(g, entries)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", p.Buildings, err)
	}

	return &Dataset{Graph: g, Buildings: reg}, nil
}

func readFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return zero, fmt.Errorf("loader: %s: %w", path, err)
	}

	return v, nil
}
