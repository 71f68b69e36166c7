package halfedge

import (
	geomkernel "github.com/wkoehler/geomrepair"
)

// Mesh is an index-arena half-edge mesh: a triangle complex backed by
// parallel arrays keyed by integer handles rather than a pointer web.
//
// Handles are stable across mutation: collapse/flip/remove tombstone
// entries rather than compacting the arrays, so a handle returned
// before a mutation stays meaningful (or detectably removed) after it.
type Mesh struct {
	vertices []Vertex
	faces    []Face
	halves   []HalfEdge

	removedVertex []bool
	removedFace   []bool
}

// NewMesh constructs a Mesh from a geomkernel.MeshReader, pairing
// shared edges into half-edge twins by a single pass over each face's
// boundary. Returns ErrNonManifold if any edge is shared by more than
// two directed half-edges.
func NewMesh(source geomkernel.MeshReader) (*Mesh, error) {
	m := &Mesh{
		vertices: make([]Vertex, source.GetNumberOfVertices()),
		faces:    make([]Face, source.GetNumberOfFaces()),
		halves:   make([]HalfEdge, source.GetNumberOfFaceEdges()),
	}
	m.removedVertex = make([]bool, len(m.vertices))
	m.removedFace = make([]bool, len(m.faces))

	for i := 0; i < source.GetNumberOfVertices(); i++ {
		m.vertices[i] = Vertex{Point: source.GetVertex(i), HalfEdge: NullHalfEdge}
	}

	var nHalfEdges int
	sharedEdges := make(map[[2]int]int)

	for i := 0; i < source.GetNumberOfFaces(); i++ {
		face := source.GetFace(i)
		m.faces[i] = Face{HalfEdge: nHalfEdges}

		for j, vertex := range face {
			k := nHalfEdges + j
			next := (j + 1) % len(face)
			prev := (j - 1 + len(face)) % len(face)

			m.halves[k] = HalfEdge{
				Origin: vertex,
				Face:   i,
				Next:   nHalfEdges + next,
				Prev:   nHalfEdges + prev,
				Twin:   NullHalfEdge,
			}
			m.vertices[vertex].HalfEdge = k

			p, q := vertex, face[next]
			if p > q {
				p, q = q, p
			}
			edge := [2]int{p, q}

			if twin, ok := sharedEdges[edge]; ok {
				if twin == NullHalfEdge {
					// a third half-edge on an already-paired edge
					return nil, ErrNonManifold
				}
				m.halves[k].Twin = twin
				m.halves[twin].Twin = k
				sharedEdges[edge] = NullHalfEdge
			} else {
				sharedEdges[edge] = k
			}
		}

		nHalfEdges += len(face)
	}

	return m, nil
}

// GetNumberOfVertices returns the number of vertex slots, including
// tombstoned ones (see IsVertexRemoved).
func (m *Mesh) GetNumberOfVertices() int { return len(m.vertices) }

// GetNumberOfFaces returns the number of face slots, including
// tombstoned ones (see IsFaceRemoved).
func (m *Mesh) GetNumberOfFaces() int { return len(m.faces) }

// GetNumberOfHalfEdges returns the number of half-edge slots.
func (m *Mesh) GetNumberOfHalfEdges() int { return len(m.halves) }

// GetVertex returns the vertex at index.
func (m *Mesh) GetVertex(index int) *Vertex { return &m.vertices[index] }

// GetFace returns the face at index.
func (m *Mesh) GetFace(index int) *Face { return &m.faces[index] }

// GetHalfEdge returns the half-edge at index.
func (m *Mesh) GetHalfEdge(index int) *HalfEdge { return &m.halves[index] }

// IsVertexRemoved reports whether a vertex was merged away by a
// collapse.
func (m *Mesh) IsVertexRemoved(index int) bool { return m.removedVertex[index] }

// IsFaceRemoved reports whether a face was deleted by a collapse or a
// border removal.
func (m *Mesh) IsFaceRemoved(index int) bool { return m.removedFace[index] }

// IsHalfEdgeLive reports whether a half-edge's incident face is still
// present; dead half-edges linger in the array as tombstones.
func (m *Mesh) IsHalfEdgeLive(h int) bool {
	return h != NullHalfEdge && !m.removedFace[m.halves[h].Face]
}

// Faces returns the handles of all live faces, in ascending order.
func (m *Mesh) Faces() []int {
	faces := make([]int, 0, len(m.faces))
	for i := range m.faces {
		if !m.removedFace[i] {
			faces = append(faces, i)
		}
	}
	return faces
}

// GetFaceHalfEdges returns the three half-edges bounding a face, in
// traversal order starting from Face.HalfEdge.
func (m *Mesh) GetFaceHalfEdges(index int) []int {
	face := m.GetFace(index)
	halves := make([]int, 0, 3)
	next := face.HalfEdge

	for {
		halves = append(halves, next)
		next = m.GetHalfEdge(next).Next

		if next == face.HalfEdge {
			break
		}
	}

	return halves
}

// GetFaceVertices returns the three vertex handles of a face, in the
// same order as GetFaceHalfEdges.
func (m *Mesh) GetFaceVertices(index int) []int {
	halves := m.GetFaceHalfEdges(index)
	vertices := make([]int, len(halves))

	for i, id := range halves {
		vertices[i] = m.GetHalfEdge(id).Origin
	}

	return vertices
}

// FaceTriangle returns a face's three vertex positions as a
// geomkernel.Triangle, for callers needing area/normal rather than raw
// vertex handles (e.g. a spatial index built over live faces).
func (m *Mesh) FaceTriangle(index int) geomkernel.Triangle {
	v := m.GetFaceVertices(index)
	return geomkernel.NewTriangle(
		m.vertices[v[0]].Point,
		m.vertices[v[1]].Point,
		m.vertices[v[2]].Point,
	)
}

// GetFaceNeighbors returns the handles of faces sharing an edge with
// index.
func (m *Mesh) GetFaceNeighbors(index int) []int {
	halves := m.GetFaceHalfEdges(index)
	faces := make([]int, 0, len(halves))

	for _, id := range halves {
		if h := m.GetHalfEdge(id); !h.IsBoundary() {
			faces = append(faces, m.GetHalfEdge(h.Twin).Face)
		}
	}

	return faces
}

// TargetVertex returns the vertex the half-edge points to.
func (m *Mesh) TargetVertex(h int) int {
	return m.halves[m.halves[h].Next].Origin
}

// HasEdge reports whether a half-edge already connects u directly to v
// (in either direction), scanning the incident half-edges of u and v.
// Linear in mesh size rather than deg(u); the mesh sizes this package
// targets (local repair neighborhoods, not whole-scene indices) make
// the O(H) traversal helpers in this file simpler to get right than a
// rotation-based O(1) vertex ring. See DESIGN.md.
func (m *Mesh) HasEdge(u, v int) bool {
	for _, h := range m.outgoingHalfEdges(u) {
		if m.TargetVertex(h) == v {
			return true
		}
	}
	for _, h := range m.outgoingHalfEdges(v) {
		if m.TargetVertex(h) == u {
			return true
		}
	}
	return false
}

// VertexNeighbors returns the distinct vertices connected to v by a
// live edge.
func (m *Mesh) VertexNeighbors(v int) []int {
	seen := make(map[int]bool)
	neighbors := make([]int, 0, 6)

	for h, he := range m.halves {
		if !m.IsHalfEdgeLive(h) {
			continue
		}

		target := m.TargetVertex(h)

		if he.Origin == v && !seen[target] {
			seen[target] = true
			neighbors = append(neighbors, target)
		}

		if target == v && !seen[he.Origin] {
			seen[he.Origin] = true
			neighbors = append(neighbors, he.Origin)
		}
	}

	return neighbors
}

// outgoingHalfEdges returns the live half-edges whose origin is v.
func (m *Mesh) outgoingHalfEdges(v int) []int {
	out := make([]int, 0, 6)
	for h, he := range m.halves {
		if he.Origin == v && m.IsHalfEdgeLive(h) {
			out = append(out, h)
		}
	}
	return out
}

// firstLiveHalfEdgeFrom returns any live half-edge originating at v, or
// NullHalfEdge if v is isolated.
func (m *Mesh) firstLiveHalfEdgeFrom(v int) int {
	for h, he := range m.halves {
		if he.Origin == v && m.IsHalfEdgeLive(h) {
			return h
		}
	}
	return NullHalfEdge
}

// IsManifold reports whether every live edge is shared by at most two
// faces and no two live half-edges connect the same ordered vertex
// pair - the invariant every topology mutator in this package must
// preserve.
func (m *Mesh) IsManifold() bool {
	seen := make(map[[2]int]int)

	for h, he := range m.halves {
		if !m.IsHalfEdgeLive(h) {
			continue
		}

		key := [2]int{he.Origin, m.TargetVertex(h)}
		seen[key]++

		if seen[key] > 1 {
			return false
		}
	}

	return true
}
