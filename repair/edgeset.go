package repair

import "github.com/wkoehler/geomrepair/halfedge"

// edgeSet is a candidate working set with removable entries, the "hash
// set plus lazy validation" alternative §9 sanctions in place of an
// ordered set with O(log n) removal. pop returns and deletes an
// arbitrary element - Go map iteration order - matching §5's published
// indifference to processing order.
type edgeSet map[halfedge.EdgeID]struct{}

func newEdgeSet() edgeSet {
	return make(edgeSet)
}

func (s edgeSet) insert(e halfedge.EdgeID) {
	s[e] = struct{}{}
}

func (s edgeSet) remove(e halfedge.EdgeID) {
	delete(s, e)
}

func (s edgeSet) contains(e halfedge.EdgeID) bool {
	_, ok := s[e]
	return ok
}

func (s edgeSet) empty() bool {
	return len(s) == 0
}

// pop removes and returns an arbitrary element of s.
func (s edgeSet) pop() halfedge.EdgeID {
	for e := range s {
		delete(s, e)
		return e
	}
	panic("repair: pop on empty edgeSet")
}
