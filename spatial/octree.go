package spatial

import (
	"sort"

	"github.com/pkg/errors"

	geomkernel "github.com/wkoehler/geomrepair"
)

const (
	OctreeMaxDepth     = 21
	OctreeMaxLeafItems = 100
)

var (
	ErrOctreeItemNotInserted = errors.New("spatial: item not inserted")
	ErrOctreeCannotSplitNode = errors.New("spatial: cannot split node")
)

// Neighbor is one result of a k-nearest-neighbor query: the index of
// the point in the caller's original slice and its distance from the
// query point.
type Neighbor struct {
	Index    int
	Distance float64
}

// Index is a 3D spatial index supporting k-nearest-neighbor queries
// over a fixed point set, satisfied by both Octree and RTreeIndex so
// callers can swap backends without touching the algorithms built on
// top of it.
type Index interface {
	KNN(p geomkernel.Vector, k int) []Neighbor
}

// pointItem adapts a geomkernel.Vector to meshx's IntersectsAABB so
// points, not just triangles, can populate an Octree.
type pointItem struct {
	point geomkernel.Vector
}

func (p pointItem) IntersectsAABB(query geomkernel.AABB) bool {
	min := query.GetMinBound()
	max := query.GetMaxBound()
	for i := 0; i < 3; i++ {
		if p.point[i] < min[i] || p.point[i] > max[i] {
			return false
		}
	}
	return true
}

// Octree is a bounded, adaptively-split spatial index over items that
// know how to test themselves against an AABB.
type Octree struct {
	nodes map[uint64]*OctreeNode
	items []geomkernel.IntersectsAABB
}

// NewOctree constructs a bounded octree over the given world bounds.
func NewOctree(aabb geomkernel.AABB) *Octree {
	return &Octree{
		nodes: map[uint64]*OctreeNode{1: NewOctreeNode(1, aabb)},
		items: make([]geomkernel.IntersectsAABB, 0),
	}
}

// NewOctreeIndex builds an Octree-backed spatial.Index over a fixed
// set of points, sized to their bounding box (buffered slightly so
// points on the boundary are not lost to floating-point rounding).
func NewOctreeIndex(points []geomkernel.Vector) *Octree {
	bounds := geomkernel.NewAABBFromVectors(points)
	bounds = bounds.Buffer(1e-6)

	tree := NewOctree(bounds)
	for _, p := range points {
		// A point set built from well-formed input bounds always
		// inserts; a failure here would mean the buffered bounding
		// box was computed wrong, not a point-cloud data problem.
		_ = tree.Insert(pointItem{point: p})
	}
	return tree
}

// Insert an item into the octree.
func (o *Octree) Insert(item geomkernel.IntersectsAABB) error {
	var code uint64

	codes := []uint64{}
	queue := []uint64{1}
	index := len(o.items)

	for len(queue) > 0 {
		code, queue = queue[0], queue[1:]
		node := o.nodes[code]

		if item.IntersectsAABB(node.aabb) {
			if node.isLeaf {
				codes = append(codes, code)
			} else {
				children := node.Children()
				queue = append(queue, children...)
			}
		}
	}

	if len(codes) == 0 {
		return ErrOctreeItemNotInserted
	}

	o.items = append(o.items, item)

	for _, code := range codes {
		node := o.nodes[code]
		node.items = append(node.items, index)

		if node.shouldSplit() {
			o.Split(code)
		}
	}

	return nil
}

// Split a leaf octree node into its eight octant children.
func (o *Octree) Split(code uint64) error {
	node := o.nodes[code]

	if !node.canSplit() {
		return ErrOctreeCannotSplitNode
	}

	for octant, childCode := range node.Children() {
		aabb := node.aabb.Octant(octant)
		childNode := NewOctreeNode(childCode, aabb)

		for _, index := range node.items {
			if o.items[index].IntersectsAABB(aabb) {
				childNode.items = append(childNode.items, index)
			}
		}

		o.nodes[childCode] = childNode
	}

	clear(node.items)
	node.isLeaf = false

	return nil
}

// Query returns the indices of every inserted item whose AABB test
// against query returns true, pruning any branch whose own bounds
// don't overlap query and deduplicating across the leaves it spans.
func (o *Octree) Query(query geomkernel.AABB) []int {
	seen := make(map[int]bool)
	result := make([]int, 0)
	queue := []uint64{1}

	for len(queue) > 0 {
		var code uint64
		code, queue = queue[0], queue[1:]
		node := o.nodes[code]

		if !node.aabb.IntersectsAABB(query) {
			continue
		}

		if node.isLeaf {
			for _, index := range node.items {
				if !seen[index] && o.items[index].IntersectsAABB(query) {
					seen[index] = true
					result = append(result, index)
				}
			}
			continue
		}

		queue = append(queue, node.Children()...)
	}

	return result
}

// KNN returns the k items whose stored point lies nearest p, nearest
// first, by expanding a cubical search window around p until it has
// collected at least k candidates and the window already dominates the
// true k-th distance, then exact-sorting the candidates. Assumes items
// were inserted via NewOctreeIndex (a pointItem per entry); a mixed
// octree of triangles and points cannot be queried this way.
func (o *Octree) KNN(p geomkernel.Vector, k int) []Neighbor {
	if k <= 0 || len(o.items) == 0 {
		return nil
	}

	root := o.nodes[1].aabb
	window := root.HalfSize.Mag() / 8
	if window <= 0 {
		window = 1
	}

	var candidates []Neighbor

	for attempt := 0; attempt < 64; attempt++ {
		query := geomkernel.NewAABBFromBounds(
			geomkernel.NewVector(p[0]-window, p[1]-window, p[2]-window),
			geomkernel.NewVector(p[0]+window, p[1]+window, p[2]+window),
		)

		indices := o.Query(query)
		candidates = candidates[:0]

		for _, idx := range indices {
			item, ok := o.items[idx].(pointItem)
			if !ok {
				continue
			}
			candidates = append(candidates, Neighbor{
				Index:    idx,
				Distance: p.DistanceTo(item.point),
			})
		}

		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].Distance < candidates[j].Distance
		})

		// Every point outside the cube is farther than window from p, so
		// once the k-th candidate lies within window the result is exact.
		enough := (len(candidates) >= k && candidates[k-1].Distance <= window) ||
			len(candidates) == len(o.items)
		coversWorld := window >= root.HalfSize.Mag()*2

		if enough || coversWorld {
			break
		}

		window *= 2
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}

	return candidates
}

type OctreeNode struct {
	items  []int
	aabb   geomkernel.AABB
	code   uint64
	isLeaf bool
}

// NewOctreeNode constructs a leaf OctreeNode.
func NewOctreeNode(code uint64, aabb geomkernel.AABB) *OctreeNode {
	return &OctreeNode{
		items:  make([]int, 0),
		aabb:   aabb,
		code:   code,
		isLeaf: true,
	}
}

// Depth computes the tree depth encoded in the node's Morton-style code.
func (o *OctreeNode) Depth() int {
	for depth := 0; depth <= OctreeMaxDepth; depth++ {
		if o.code>>uint(3*depth) == 1 {
			return depth
		}
	}

	panic("invalid octree code")
}

// Children computes the eight octant child codes.
func (o *OctreeNode) Children() []uint64 {
	children := make([]uint64, 8)

	for octant := range children {
		children[octant] = o.code<<3 | uint64(octant)
	}

	return children
}

func (o *OctreeNode) canSplit() bool {
	return o.isLeaf && o.Depth() < OctreeMaxDepth
}

func (o *OctreeNode) shouldSplit() bool {
	return o.canSplit() && len(o.items) > OctreeMaxLeafItems
}
