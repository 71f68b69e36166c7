package halfedge

// EdgeID canonically identifies an undirected edge by the lower of its
// two half-edge handles (or its single half-edge, on a border), so a
// working set can key by edge identity rather than by directed
// half-edge.
type EdgeID int

// EdgeKey returns the canonical EdgeID of the edge half-edge h belongs
// to, breaking the two-handle tie deterministically by handle value.
func (m *Mesh) EdgeKey(h int) EdgeID {
	twin := m.halves[h].Twin
	if twin == NullHalfEdge || h < twin {
		return EdgeID(h)
	}
	return EdgeID(twin)
}

// EdgeHalfEdges returns the (up to two) half-edges of an edge. h1 is
// NullHalfEdge when e is a border edge.
func (m *Mesh) EdgeHalfEdges(e EdgeID) (h0, h1 int) {
	h0 = int(e)
	h1 = m.halves[h0].Twin
	return h0, h1
}

// EdgeLength returns the Euclidean length of an edge.
func (m *Mesh) EdgeLength(e EdgeID) float64 {
	h, _ := m.EdgeHalfEdges(e)
	u := m.vertices[m.halves[h].Origin].Point
	v := m.vertices[m.TargetVertex(h)].Point
	return u.DistanceTo(v)
}

// LinkConditionHolds tests whether collapsing edge e preserves the
// manifold property: the intersection of the vertex-links of its two
// endpoints must equal the edge-link of e (the apex vertices of its
// incident faces).
func (m *Mesh) LinkConditionHolds(e EdgeID) bool {
	h, t := m.EdgeHalfEdges(e)
	u := m.halves[h].Origin
	v := m.TargetVertex(h)

	apexes := make(map[int]bool)
	if h != NullHalfEdge {
		apexes[m.TargetVertex(m.halves[h].Next)] = true
	}
	if t != NullHalfEdge {
		apexes[m.TargetVertex(m.halves[t].Next)] = true
	}

	uNeighbors := make(map[int]bool)
	for _, n := range m.VertexNeighbors(u) {
		uNeighbors[n] = true
	}

	for _, n := range m.VertexNeighbors(v) {
		if n == u {
			continue
		}
		if uNeighbors[n] && !apexes[n] {
			return false
		}
	}

	return true
}
