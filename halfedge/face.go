package halfedge

// Face is a triangle, identified by one of its three incident
// half-edges. Material/group tagging belongs to the I/O layer, not the
// topology model, so it isn't carried here.
type Face struct {
	HalfEdge int
}
