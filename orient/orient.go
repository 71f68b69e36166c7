package orient

import (
	geomkernel "github.com/wkoehler/geomrepair"
	"github.com/wkoehler/geomrepair/spatial"
)

// OrientNormalsViaMST implements the §4/§6 surface operation: builds a
// Riemannian k-NN graph over points, roots a minimum spanning tree at
// an unambiguous seed, propagates orientation along the tree, then
// stably partitions points so confidently-oriented records come first.
// Returns the partition boundary index.
func OrientNormalsViaMST(points []PointRecord, k int, opts ...Option) (int, error) {
	options, err := resolveOptions(opts)
	if err != nil {
		return 0, err
	}
	if k < 2 {
		return 0, wrapPrecondition("k must be >= 2")
	}
	if len(points) == 0 {
		return 0, wrapPrecondition("point set must be non-empty")
	}

	index := options.Index
	if index == nil {
		positions := make([]geomkernel.Vector, len(points))
		for i, p := range points {
			positions[i] = p.Position()
		}
		index = spatial.NewOctreeIndex(positions)
	}

	seed := FindSeed(points)
	options.logf("orient: seed index %d", seed)

	g := BuildRiemannianGraph(points, index, k)
	pred := BuildMST(g, seed)
	oriented, diameter := Propagate(points, pred, seed, options.MaxPropagationAngle)

	if options.Stats != nil {
		numOriented := 0
		for _, ok := range oriented {
			if ok {
				numOriented++
			}
		}
		options.Stats.NumOriented = numOriented
		options.Stats.NumTotal = len(points)
		options.Stats.TreeDiameter = diameter
	}

	for i, ok := range oriented {
		if !ok {
			options.logf("orient: point %d left unoriented (low confidence along its MST path)", i)
		}
	}

	return Partition(points, oriented), nil
}
