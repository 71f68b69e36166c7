package halfedge

// CollapseEdge merges the two endpoints of e into the origin vertex of
// e's lower-handle half-edge. The surviving endpoint keeps its own
// position - the midpoint is deliberately never used, since averaging
// drifts a vertex off a curved surface over repeated collapses.
// Removes the (up to) two incident faces and the edge itself, splicing
// each triangle's two remaining edges into one when that triangle had
// an opposing face on both "wing" sides.
//
// Precondition: LinkConditionHolds(e) and e is not a border edge.
// Returns the surviving vertex handle.
func (m *Mesh) CollapseEdge(e EdgeID) (int, error) {
	h, t := m.EdgeHalfEdges(e)
	if t == NullHalfEdge {
		return NullHalfEdge, ErrBorderEdge
	}
	if !m.LinkConditionHolds(e) {
		return NullHalfEdge, ErrLinkConditionFailed
	}

	u := m.halves[h].Origin
	v := m.halves[t].Origin

	n1, p1 := m.halves[h].Next, m.halves[h].Prev
	n2, p2 := m.halves[t].Next, m.halves[t].Prev
	f1, f2 := m.halves[h].Face, m.halves[t].Face

	// apex vertices of the two dying triangles, read before the Origin
	// relabel below (p1/p2's Origin is w1/w2, untouched by it).
	w1 := m.halves[p1].Origin
	w2 := m.halves[p2].Origin

	for i, he := range m.halves {
		if he.Origin == v {
			m.halves[i].Origin = u
		}
	}

	m.spliceAcross(n1, p1)
	m.spliceAcross(n2, p2)

	m.removedFace[f1] = true
	m.removedFace[f2] = true
	m.removedVertex[v] = true

	m.vertices[v].HalfEdge = NullHalfEdge
	m.vertices[u].HalfEdge = m.firstLiveHalfEdgeFrom(u)

	for _, apex := range []int{w1, w2} {
		he := m.vertices[apex].HalfEdge
		if he == n1 || he == p1 || he == n2 || he == p2 {
			m.vertices[apex].HalfEdge = m.firstLiveHalfEdgeFrom(apex)
		}
	}

	return u, nil
}

// spliceAcross glues the outer neighbors of two half-edges belonging to
// a face about to be removed into twins of each other, so the edge
// they each border survives as a single edge instead of vanishing with
// the face.
func (m *Mesh) spliceAcross(a, b int) {
	ta, tb := m.halves[a].Twin, m.halves[b].Twin

	switch {
	case ta != NullHalfEdge && tb != NullHalfEdge:
		m.halves[ta].Twin = tb
		m.halves[tb].Twin = ta
	case ta != NullHalfEdge:
		m.halves[ta].Twin = NullHalfEdge
	case tb != NullHalfEdge:
		m.halves[tb].Twin = NullHalfEdge
	}
}

// FlipEdge replaces interior edge e, shared by faces (u,v,w) and
// (v,u,x), with edge (w,x). Precondition: e is not a border edge and
// (w,x) does not already exist. Returns the EdgeID of the new edge
// (the handle of e's lower-index half-edge, now representing w->x).
func (m *Mesh) FlipEdge(e EdgeID) (EdgeID, error) {
	h, t := m.EdgeHalfEdges(e)
	if t == NullHalfEdge {
		return 0, ErrBorderEdge
	}

	u := m.halves[h].Origin
	v := m.halves[t].Origin
	n1, p1 := m.halves[h].Next, m.halves[h].Prev
	n2, p2 := m.halves[t].Next, m.halves[t].Prev
	// w, x are the apex vertices opposite e in each incident face - the
	// origin of Prev(h)/Prev(t), not Next(h)/Next(t) (whose origin is
	// always just v/u again, the edge's own other endpoint).
	w := m.halves[p1].Origin
	x := m.halves[p2].Origin
	f1, f2 := m.halves[h].Face, m.halves[t].Face

	if m.HasEdge(w, x) {
		return 0, ErrEdgeExists
	}

	// New triangle F1 = (u,x,w): n2(u->x) -> t(x->w) -> p1(w->u).
	m.halves[t].Origin = x
	m.halves[t].Face = f1
	m.halves[n2].Face = f1
	m.halves[p1].Face = f1
	m.link(n2, t)
	m.link(t, p1)
	m.link(p1, n2)
	m.faces[f1].HalfEdge = n2

	// New triangle F2 = (x,v,w): p2(x->v) -> n1(v->w) -> h(w->x).
	m.halves[h].Origin = w
	m.halves[h].Face = f2
	m.halves[p2].Face = f2
	m.halves[n1].Face = f2
	m.link(p2, n1)
	m.link(n1, h)
	m.link(h, p2)
	m.faces[f2].HalfEdge = p2

	if m.vertices[u].HalfEdge == h {
		m.vertices[u].HalfEdge = n2
	}
	if m.vertices[v].HalfEdge == t {
		m.vertices[v].HalfEdge = n1
	}

	return m.EdgeKey(h), nil
}

// link sets a.Next = b and b.Prev = a.
func (m *Mesh) link(a, b int) {
	m.halves[a].Next = b
	m.halves[b].Prev = a
}

// RemoveFace deletes a triangle with at least one border half-edge,
// turning its other (up to two) edges into border edges.
func (m *Mesh) RemoveFace(f int) error {
	halves := m.GetFaceHalfEdges(f)

	hasBorder := false
	for _, h := range halves {
		if m.halves[h].IsBoundary() {
			hasBorder = true
			break
		}
	}
	if !hasBorder {
		return ErrInteriorEdge
	}

	m.removedFace[f] = true

	for _, h := range halves {
		if twin := m.halves[h].Twin; twin != NullHalfEdge {
			m.halves[twin].Twin = NullHalfEdge
		}

		v := m.halves[h].Origin
		if m.vertices[v].HalfEdge == h {
			m.vertices[v].HalfEdge = m.firstLiveHalfEdgeFrom(v)
		}
	}

	return nil
}
