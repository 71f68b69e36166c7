package orient

import geomkernel "github.com/wkoehler/geomrepair"

// PointRecord is the property-map collaborator contract of §3/§6: a
// read-only position, a read-write unit normal, and a dense integer
// index - collapsed into one interface rather than three separate
// property-map accessors, since Go already dispatches through
// interfaces.
type PointRecord interface {
	Position() geomkernel.Vector
	Normal() geomkernel.Vector
	SetNormal(geomkernel.Vector)
	Index() int
}
