package spatial

import (
	"github.com/dhconnelly/rtreego"

	geomkernel "github.com/wkoehler/geomrepair"
)

// rtreePoint is a single indexed point, satisfying rtreego.Spatial with
// a tiny bounding cube of side rtreeEpsilon anchored at its own location.
type rtreePoint struct {
	index int
	point geomkernel.Vector
}

const rtreeEpsilon = 1e-9

func (r *rtreePoint) Bounds() *rtreego.Rect {
	lengths := []float64{rtreeEpsilon, rtreeEpsilon, rtreeEpsilon}
	rect, err := rtreego.NewRect(
		rtreego.Point{r.point[0], r.point[1], r.point[2]},
		lengths,
	)
	if err != nil {
		// Only reachable if lengths were non-positive, which they
		// never are here.
		panic(err)
	}
	return rect
}

// RTreeIndex is a spatial.Index backed by an R-tree, offering better
// asymptotic query behavior than Octree on large, non-uniformly
// distributed point clouds at the cost of a bulkier bounding-rectangle
// representation for what are really zero-volume points.
type RTreeIndex struct {
	tree   *rtreego.Rtree
	points []geomkernel.Vector
}

// NewRTreeIndex builds an RTreeIndex over a fixed set of points.
func NewRTreeIndex(points []geomkernel.Vector) *RTreeIndex {
	tree := rtreego.NewTree(3, 25, 50)

	for i, p := range points {
		tree.Insert(&rtreePoint{index: i, point: p})
	}

	return &RTreeIndex{tree: tree, points: points}
}

// KNN returns the k nearest points to p, nearest first.
func (r *RTreeIndex) KNN(p geomkernel.Vector, k int) []Neighbor {
	if k <= 0 || len(r.points) == 0 {
		return nil
	}

	query := rtreego.Point{p[0], p[1], p[2]}
	results := r.tree.NearestNeighbors(k, query)

	neighbors := make([]Neighbor, 0, len(results))
	for _, obj := range results {
		if obj == nil {
			continue
		}
		rp := obj.(*rtreePoint)
		neighbors = append(neighbors, Neighbor{
			Index:    rp.index,
			Distance: p.DistanceTo(rp.point),
		})
	}

	return neighbors
}
