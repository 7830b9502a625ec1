package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/buzznav/building"
	"github.com/katalvlaran/buzznav/core"
)

// table iterates over the data rows of a CSV stream with resolved columns.
type table struct {
	r    *csv.Reader
	cols []int // column index per requested field
	line int
}

// column names one requested field: accepted header names and the position
// used when none of them is present.
type column struct {
	names []string
	pos   int
}

// openTable reads the header and maps each requested field to a column.
func openTable(r io.Reader, fields []column) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("loader: header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	cols := make([]int, len(fields))
	for i, f := range fields {
		cols[i] = f.pos
		for _, n := range f.names {
			if at, ok := index[n]; ok {
				cols[i] = at
				break
			}
		}
	}

	return &table{r: cr, cols: cols, line: 1}, nil
}

// next returns the requested fields of the next non-blank row, or io.EOF.
func (t *table) next() ([]string, error) {
	for {
		rec, err := t.r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("%w: %w", ErrMalformedRow, err)
		}
		t.line, _ = t.r.FieldPos(0)
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}

		out := make([]string, len(t.cols))
		for i, c := range t.cols {
			if c >= len(rec) {
				return nil, t.errorf("missing column %d", c+1)
			}
			out[i] = strings.TrimSpace(rec[c])
		}
		return out, nil
	}
}

func (t *table) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedRow, t.line, fmt.Sprintf(format, args...))
}

func (t *table) node(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, t.errorf("bad node id %q", s)
	}
	if id > MaxNodeID {
		return 0, t.errorf("node id %d exceeds %d", id, MaxNodeID)
	}
	return id, nil
}

func (t *table) float(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, t.errorf("bad number %q", s)
	}
	return v, nil
}

// LoadGraph reads an edge list and returns an unsealed graph with
// max(id)+1 nodes. Weight validation is delegated to core.
func LoadGraph(r io.Reader) (*core.Graph, error) {
	t, err := openTable(r, []column{
		{names: []string{"src", "from", "source"}, pos: 0},
		{names: []string{"dst", "to", "target"}, pos: 1},
		{names: []string{"length", "weight", "distance"}, pos: 2},
	})
	if err != nil {
		return nil, err
	}

	var edges []core.Edge
	maxID := -1
	for {
		f, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		from, err := t.node(f[0])
		if err != nil {
			return nil, err
		}
		to, err := t.node(f[1])
		if err != nil {
			return nil, err
		}
		w, err := t.float(f[2])
		if err != nil {
			return nil, err
		}
		edges = append(edges, core.Edge{From: from, To: to, Weight: w})
		maxID = max(maxID, from, to)
	}
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}

	g := core.NewGraph(maxID + 1)
	for i, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("loader: edge %d: %w", i+1, err)
		}
	}

	return g, nil
}

// LoadCoordinates reads node coordinates. With x/y headers x is the
// longitude and y the latitude.
func LoadCoordinates(r io.Reader) (core.CoordMap, error) {
	t, err := openTable(r, []column{
		{names: []string{"node_id", "node", "id"}, pos: 0},
		{names: []string{"y", "lat", "latitude"}, pos: 2},
		{names: []string{"x", "lon", "lng", "longitude"}, pos: 1},
	})
	if err != nil {
		return nil, err
	}

	coords := make(core.CoordMap)
	for {
		f, err := t.next()
		if errors.Is(err, io.EOF) {
			return coords, nil
		}
		if err != nil {
			return nil, err
		}
		id, err := t.node(f[0])
		if err != nil {
			return nil, err
		}
		lat, err := t.float(f[1])
		if err != nil {
			return nil, err
		}
		lon, err := t.float(f[2])
		if err != nil {
			return nil, err
		}
		if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			return nil, t.errorf("coordinate out of range (%v, %v)", lat, lon)
		}
		coords[id] = core.Coord{Lat: lat, Lon: lon}
	}
}

// LoadBuildings reads (name, node) pairs in file order. Duplicate names are
// kept; the registry resolves them first-match-wins.
func LoadBuildings(r io.Reader) ([]building.Entry, error) {
	t, err := openTable(r, []column{
		{names: []string{"building_name", "name", "building"}, pos: 0},
		{names: []string{"node_id", "node", "id"}, pos: 1},
	})
	if err != nil {
		return nil, err
	}

	var entries []building.Entry
	for {
		f, err := t.next()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		if f[0] == "" {
			return nil, t.errorf("empty building name")
		}
		id, err := t.node(f[1])
		if err != nil {
			return nil, err
		}
		entries = append(entries, building.Entry{Name: f[0], Node: id})
	}
}
