package building

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/buzznav/core"
)

// site is a building position on the unit sphere.
type site struct {
	p   [3]float64
	idx int // index into Registry.rows, -1 for queries
}

func toSite(c core.Coord, idx int) site {
	lat := c.Lat * math.Pi / 180
	lon := c.Lon * math.Pi / 180
	return site{
		p:   [3]float64{math.Cos(lat) * math.Cos(lon), math.Cos(lat) * math.Sin(lon), math.Sin(lat)},
		idx: idx,
	}
}

// Compare implements kdtree.Comparable.
func (s site) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return s.p[d] - c.(site).p[d]
}

// Dims implements kdtree.Comparable.
func (s site) Dims() int { return 3 }

// Distance implements kdtree.Comparable; it is the squared chord length.
func (s site) Distance(c kdtree.Comparable) float64 {
	q := c.(site)
	var sum float64
	for i := range s.p {
		d := s.p[i] - q.p[i]
		sum += d * d
	}

	return sum
}

// sites implements kdtree.Interface.
type sites []site

func (s sites) Index(i int) kdtree.Comparable { return s[i] }
func (s sites) Len() int                      { return len(s) }
func (s sites) Pivot(d kdtree.Dim) int        { return plane{Dim: d, sites: s}.Pivot() }
func (s sites) Slice(start, end int) kdtree.Interface {
	return s[start:end]
}

// plane sorts sites along one dimension for median partitioning.
type plane struct {
	kdtree.Dim
	sites
}

func (p plane) Less(i, j int) bool { return p.sites[i].p[p.Dim] < p.sites[j].p[p.Dim] }
func (p plane) Swap(i, j int)      { p.sites[i], p.sites[j] = p.sites[j], p.sites[i] }
func (p plane) Pivot() int         { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.sites = p.sites[start:end]
	return p
}
