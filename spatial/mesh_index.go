package spatial

import (
	geomkernel "github.com/wkoehler/geomrepair"
)

// faceIndexer is the subset of halfedge.Mesh this file depends on -
// kept narrow so tests can fake it without building a full mesh.
type faceIndexer interface {
	Faces() []int
	FaceTriangle(int) geomkernel.Triangle
}

// faceItem adapts a mesh face's triangle to the octree's item contract,
// keeping the originating face handle alongside it so FacesInSphere and
// FacesAlongRay can report face indices rather than item slots.
type faceItem struct {
	face     int
	triangle geomkernel.Triangle
}

func (f faceItem) IntersectsAABB(query geomkernel.AABB) bool {
	return f.triangle.IntersectsAABB(query)
}

func (f faceItem) bounds() geomkernel.AABB {
	return geomkernel.NewAABBFromVectors([]geomkernel.Vector{f.triangle.P, f.triangle.Q, f.triangle.R})
}

// NewFaceOctree indexes a mesh's live faces by their triangle bounds,
// supplementing repair's per-face classification with a spatial lookup
// over faces - useful for a caller that wants to restrict a repair
// pass to faces near a known defect site rather than the whole mesh.
// Reuses the teacher's Octree/Insert/Query machinery unchanged:
// Triangle already satisfies geomkernel.IntersectsAABB, so only the
// face-triangle adaptation is new.
func NewFaceOctree(mesh faceIndexer) *Octree {
	faces := mesh.Faces()
	items := make([]faceItem, 0, len(faces))
	allPoints := make([]geomkernel.Vector, 0, len(faces)*3)

	for _, f := range faces {
		tri := mesh.FaceTriangle(f)
		items = append(items, faceItem{face: f, triangle: tri})
		allPoints = append(allPoints, tri.P, tri.Q, tri.R)
	}

	var world geomkernel.AABB
	if len(allPoints) > 0 {
		world = geomkernel.NewAABBFromVectors(allPoints).Buffer(1e-6)
	} else {
		world = geomkernel.NewAABB(geomkernel.NewVector(0, 0, 0), geomkernel.NewVector(1, 1, 1))
	}

	tree := NewOctree(world)
	for _, item := range items {
		_ = tree.Insert(item)
	}

	return tree
}

// FacesInSphere returns the face handles of the triangles indexed by
// tree that both overlap s's bounding cube and have an axis-aligned
// bound overlapping s - a broad-phase test (the kernel has no exact
// sphere/triangle predicate), using Sphere's
// existing IntersectsAABB exactly the way the teacher's octree already
// uses it for sphere-vs-box culling.
func FacesInSphere(tree *Octree, s geomkernel.Sphere) []int {
	bounds := geomkernel.NewAABBFromBounds(
		s.Center.SubScalar(s.Radius),
		s.Center.AddScalar(s.Radius),
	)

	out := make([]int, 0)
	for _, idx := range tree.Query(bounds) {
		item, ok := tree.items[idx].(faceItem)
		if !ok {
			continue
		}
		if s.IntersectsAABB(item.bounds()) {
			out = append(out, item.face)
		}
	}
	return out
}

// FacesAlongRay returns the face handles of every triangle indexed by
// tree that r actually crosses, using Ray.IntersectsTriangle for an
// exact per-face test. A ray is unbounded, so there is no useful AABB
// to prune the broad phase with; every indexed face is checked.
func FacesAlongRay(tree *Octree, r geomkernel.Ray) []int {
	out := make([]int, 0)
	for _, candidate := range tree.items {
		item, ok := candidate.(faceItem)
		if !ok {
			continue
		}
		if r.IntersectsTriangle(item.triangle) {
			out = append(out, item.face)
		}
	}
	return out
}
