package building

import (
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/btree"
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/buzznav/core"
	"github.com/katalvlaran/buzznav/geo"
)

// nameKey orders names case-insensitively, then by exact spelling.
type nameKey struct {
	lower string
	name  string
}

func nameLess(a, b nameKey) bool {
	if a.lower != b.lower {
		return a.lower < b.lower
	}
	return a.name < b.name
}

// Registry is an immutable building index.
type Registry struct {
	buildings []Building     // unique names in load order
	rows      []Building     // every entry in load order, duplicates included
	byName    map[string]int // name → index into buildings
	byNode    map[int]int    // node → index into rows of the first entry on it
	names     *btree.BTreeG[nameKey]
	tree      *kdtree.Tree // nil when the graph has no coordinates
}

// NewRegistry indexes entries against g.
//
// Every entry's node must be valid in g (core.ErrInvalidNode) and its name
// non-empty (ErrEmptyName). A repeated name resolves to its first entry;
// later entries still mark their nodes for NameAt and Nearest. Nearest is
// available only when g carries coordinates.
//
// Complexity: O(B log B) for B entries.
func NewRegistry(g *core.Graph, entries []Entry) (*Registry, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}

	r := &Registry{
		byName: make(map[string]int, len(entries)),
		byNode: make(map[int]int, len(entries)),
		names:  btree.NewBTreeG[nameKey](nameLess),
	}
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("building: entry %d: %w", i, ErrEmptyName)
		}
		if !g.Valid(e.Node) {
			return nil, fmt.Errorf("building: %q node=%d: %w", e.Name, e.Node, core.ErrInvalidNode)
		}
		b := Building{Name: e.Name, Node: e.Node, Coord: g.Coord(e.Node)}
		if _, ok := r.byNode[e.Node]; !ok {
			r.byNode[e.Node] = len(r.rows)
		}
		r.rows = append(r.rows, b)

		if _, dup := r.byName[e.Name]; dup {
			continue
		}
		r.byName[e.Name] = len(r.buildings)
		r.buildings = append(r.buildings, b)
		r.names.Set(nameKey{lower: strings.ToLower(e.Name), name: e.Name})
	}

	if g.HasCoordinates() && len(r.rows) > 0 {
		pts := make(sites, len(r.rows))
		for i, b := range r.rows {
			pts[i] = toSite(b.Coord, i)
		}
		r.tree = kdtree.New(pts, false)
	}

	return r, nil
}

// Len returns the number of distinct building names.
func (r *Registry) Len() int { return len(r.buildings) }

// Lookup resolves name to its node by exact, case-sensitive match.
func (r *Registry) Lookup(name string) (int, error) {
	idx, ok := r.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBuildingNotFound, name)
	}

	return r.buildings[idx].Node, nil
}

// Get returns the full record for name.
func (r *Registry) Get(name string) (Building, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return Building{}, false
	}

	return r.buildings[idx], true
}

// NameAt returns the name of the first building registered on node.
func (r *Registry) NameAt(node int) (string, bool) {
	idx, ok := r.byNode[node]
	if !ok {
		return "", false
	}

	return r.rows[idx].Name, true
}

// Nearest returns the building closest to c and its great-circle distance in
// metres. ok is false for an empty registry or one built without coordinates.
func (r *Registry) Nearest(c core.Coord) (b Building, meters float64, ok bool) {
	if r.tree == nil {
		return Building{}, math.Inf(1), false
	}
	got, _ := r.tree.Nearest(toSite(c, -1))
	if got == nil {
		return Building{}, math.Inf(1), false
	}
	b = r.rows[got.(site).idx]

	return b, geo.Haversine(c, b.Coord), true
}

// Names lists every name in case-insensitive order.
func (r *Registry) Names() []string {
	out := make([]string, 0, r.names.Len())
	r.names.Scan(func(k nameKey) bool {
		out = append(out, k.name)
		return true
	})

	return out
}

// WithPrefix lists up to limit names starting with prefix, ignoring case,
// in case-insensitive order. limit ≤ 0 means no limit.
func (r *Registry) WithPrefix(prefix string, limit int) []string {
	lp := strings.ToLower(prefix)
	var out []string
	r.names.Ascend(nameKey{lower: lp}, func(k nameKey) bool {
		if !strings.HasPrefix(k.lower, lp) {
			return false
		}
		out = append(out, k.name)
		return limit <= 0 || len(out) < limit
	})

	return out
}

// Buildings returns a copy of every record in load order.
func (r *Registry) Buildings() []Building {
	return append([]Building(nil), r.buildings...)
}
