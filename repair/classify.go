package repair

import (
	"github.com/wkoehler/geomrepair/halfedge"
)

// Classification is the result of Classify: at most one of Needle and
// Cap is non-nil, per §3's mutual-exclusion policy.
type Classification struct {
	Needle *halfedge.EdgeID
	Cap    *halfedge.EdgeID
}

// Classify implements the §4.1 shape predicate for a single face. It is
// pure: it reads only mesh and p, never prior classification state, so
// repeated calls against the same face/mesh/thresholds always agree.
func Classify(mesh *halfedge.Mesh, face int, p Thresholds) Classification {
	halves := mesh.GetFaceHalfEdges(face)

	type edge struct {
		id     halfedge.EdgeID
		length float64
	}

	edges := make([]edge, 3)
	for i, h := range halves {
		edges[i] = edge{id: mesh.EdgeKey(h), length: mesh.EdgeLength(mesh.EdgeKey(h))}
	}

	// Ties broken by first-encountered index, a deterministic rule §4.1
	// explicitly allows ("any deterministic rule suffices").
	shortest, longest := 0, 0
	for i := 1; i < 3; i++ {
		if edges[i].length < edges[shortest].length {
			shortest = i
		}
		if edges[i].length > edges[longest].length {
			longest = i
		}
	}

	if edges[shortest].length > 0 && edges[longest].length/edges[shortest].length > p.NeedleRatio {
		id := edges[shortest].id
		return Classification{Needle: &id}
	}

	vertices := mesh.GetFaceVertices(face)
	for i := 0; i < 3; i++ {
		v := vertices[i]
		a := vertices[(i+1)%3]
		b := vertices[(i+2)%3]

		vp := mesh.GetVertex(v).Point
		ap := mesh.GetVertex(a).Point
		bp := mesh.GetVertex(b).Point

		cosine := vp.AngleCosine(ap, bp)
		if cosine < p.CapAngleCosine {
			// the edge opposite vertex i is the one connecting a and b,
			// i.e. the half-edge at index i+1 in traversal order (the
			// half-edge that does NOT touch v).
			opposite := halves[(i+1)%3]
			id := mesh.EdgeKey(opposite)
			return Classification{Cap: &id}
		}
	}

	return Classification{}
}
