package repair

import (
	"github.com/wkoehler/geomrepair/halfedge"
)

// workingSets bundles the collapse and flip candidate sets the driver
// swaps between generations of §4.3's iteration loop.
type workingSets struct {
	collapse edgeSet
	flip     edgeSet
}

func newWorkingSets() workingSets {
	return workingSets{collapse: newEdgeSet(), flip: newEdgeSet()}
}

// RepairAlmostDegenerateFaces implements the §4.3 fixed-point driver:
// it alternates classification, edge collapse, and edge flip over
// faces until no bad face remains (true) or a full iteration makes no
// progress while bad faces remain (false, not an error - §7).
func RepairAlmostDegenerateFaces(faces []int, mesh *halfedge.Mesh, opts ...Option) (bool, error) {
	options, err := resolveOptions(opts)
	if err != nil {
		return false, err
	}
	p := options.Thresholds

	current := newWorkingSets()
	for _, f := range faces {
		enqueueClassification(&current, mesh, Classify(mesh, f, p), p)
	}

	for {
		if current.collapse.empty() && current.flip.empty() {
			return true, nil
		}

		next := newWorkingSets()
		progress := false

		progress = processCollapses(mesh, &current, &next, p, options) || progress
		progress = processFlips(mesh, &current, &next, p, options) || progress

		current = next

		if !progress {
			options.logf("repair: stalled iteration with %d collapse and %d flip candidates remaining",
				len(current.collapse), len(current.flip))
			return false, nil
		}
	}
}

// HasBadFaces is a supplemented read-only predicate (SPEC_FULL.md §4.5):
// a pass over faces reusing Classify with no working-set bookkeeping,
// letting a caller skip the repair pass entirely on already-good input.
func HasBadFaces(faces []int, mesh *halfedge.Mesh, p Thresholds) bool {
	for _, f := range faces {
		c := Classify(mesh, f, p)
		if c.Needle != nil && mesh.EdgeLength(*c.Needle) <= p.CollapseLengthMax {
			return true
		}
		if c.Cap != nil {
			return true
		}
	}
	return false
}

// enqueueClassification routes a classification result into the
// appropriate set, applying the §3 collapse-length gate on needles -
// the rule Initialization and stale-candidate rerouting share.
func enqueueClassification(sets *workingSets, mesh *halfedge.Mesh, c Classification, p Thresholds) {
	switch {
	case c.Needle != nil:
		if mesh.EdgeLength(*c.Needle) <= p.CollapseLengthMax {
			sets.collapse.insert(*c.Needle)
		}
	case c.Cap != nil:
		sets.flip.insert(*c.Cap)
	}
}

// edgeFace returns the face incident to e's canonical (always-live)
// half-edge - "the face incident to some non-border halfedge of e".
func edgeFace(mesh *halfedge.Mesh, e halfedge.EdgeID) int {
	h, _ := mesh.EdgeHalfEdges(e)
	return mesh.GetHalfEdge(h).Face
}

func isBorderEdge(mesh *halfedge.Mesh, e halfedge.EdgeID) bool {
	_, t := mesh.EdgeHalfEdges(e)
	return t == halfedge.NullHalfEdge
}

// removeFromAllSets purges e from both current and next working sets -
// the invalidation a collapse forces on neighboring candidates that
// will be destroyed or merged by it.
func removeFromAllSets(current, next *workingSets, e halfedge.EdgeID) {
	current.collapse.remove(e)
	current.flip.remove(e)
	next.collapse.remove(e)
	next.flip.remove(e)
}

// processCollapses drains current.collapse per §4.3 step 2, reporting
// whether any collapse actually happened this iteration.
func processCollapses(mesh *halfedge.Mesh, current, next *workingSets, p Thresholds, options Options) bool {
	progress := false

	for !current.collapse.empty() {
		e := current.collapse.pop()

		face := edgeFace(mesh, e)
		reclass := Classify(mesh, face, p)

		if reclass.Needle == nil || *reclass.Needle != e {
			enqueueClassification(next, mesh, reclass, p)
			continue
		}

		if !mesh.LinkConditionHolds(e) {
			options.logf("repair: link condition failed on edge %v, deferring", e)
			next.collapse.insert(e)
			continue
		}

		if isBorderEdge(mesh, e) {
			// CollapseEdge's current policy disallows border edges;
			// there is no next-set that re-examination would help, so
			// the candidate is dropped rather than looped forever.
			options.logf("repair: needle %v is a border edge, cannot collapse", e)
			continue
		}

		h, t := mesh.EdgeHalfEdges(e)
		for _, side := range [2]int{h, t} {
			prev := mesh.GetHalfEdge(side).Prev
			removeFromAllSets(current, next, mesh.EdgeKey(prev))
		}
		current.flip.remove(e)

		if _, err := mesh.CollapseEdge(e); err != nil {
			options.logf("repair: collapse of edge %v failed: %v", e, err)
			continue
		}

		progress = true
	}

	return progress
}

// processFlips drains current.flip per §4.3 step 3.
func processFlips(mesh *halfedge.Mesh, current, next *workingSets, p Thresholds, options Options) bool {
	progress := false

	for !current.flip.empty() {
		e := current.flip.pop()

		face := edgeFace(mesh, e)
		reclass := Classify(mesh, face, p)

		if reclass.Cap == nil || *reclass.Cap != e {
			enqueueClassification(next, mesh, reclass, p)
			continue
		}

		if isBorderEdge(mesh, e) {
			for _, n := range neighborEdges(mesh, face, e) {
				current.flip.remove(n)
			}
			if err := mesh.RemoveFace(face); err != nil {
				options.logf("repair: border face remove failed for face %d: %v", face, err)
				continue
			}
			progress = true
			continue
		}

		w, x := flipApexes(mesh, e)
		if mesh.HasEdge(w, x) {
			options.logf("repair: cap edge %v unflippable, edge (%d,%d) already exists", e, w, x)
			continue
		}

		h0, t0 := mesh.EdgeHalfEdges(e)
		beforeF1 := mesh.GetHalfEdge(h0).Face
		beforeF2 := mesh.GetHalfEdge(t0).Face
		before1 := neighborEdges(mesh, beforeF1, e)
		before2 := neighborEdges(mesh, beforeF2, e)
		for _, n := range append(before1, before2...) {
			current.flip.remove(n)
		}

		newEdge, err := mesh.FlipEdge(e)
		if err != nil {
			options.logf("repair: flip of edge %v failed: %v", e, err)
			continue
		}

		for _, f := range []int{beforeF1, beforeF2} {
			c := Classify(mesh, f, p)
			switch {
			case c.Cap != nil && *c.Cap != newEdge:
				next.flip.insert(*c.Cap)
			case c.Needle != nil && *c.Needle == newEdge:
				next.collapse.insert(newEdge)
			}
		}

		progress = true
	}

	return progress
}

// flipApexes returns the two apex vertices that would become the
// endpoints of a flipped edge: the vertex opposite e in each of its two
// incident faces. That vertex is Prev(h).Origin, not Next(h).Origin -
// Next(h).Origin is always Target(h), the edge's own other endpoint.
func flipApexes(mesh *halfedge.Mesh, e halfedge.EdgeID) (w, x int) {
	h, t := mesh.EdgeHalfEdges(e)
	p1 := mesh.GetHalfEdge(h).Prev
	p2 := mesh.GetHalfEdge(t).Prev
	return mesh.GetHalfEdge(p1).Origin, mesh.GetHalfEdge(p2).Origin
}

// neighborEdges returns the edge identities of face's half-edges other
// than e - the "prev/next of both new faces" §4.3 step 3 erases from
// current-flip before the flip invalidates their handles' meaning.
func neighborEdges(mesh *halfedge.Mesh, face int, e halfedge.EdgeID) []halfedge.EdgeID {
	out := make([]halfedge.EdgeID, 0, 2)
	for _, h := range mesh.GetFaceHalfEdges(face) {
		if id := mesh.EdgeKey(h); id != e {
			out = append(out, id)
		}
	}
	return out
}
