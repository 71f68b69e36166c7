package orient

import geomkernel "github.com/wkoehler/geomrepair"

// record is a concrete PointRecord used by tests - a minimal struct
// literal fixture, the way halfedge/mesh_test.go and triangle_test.go
// build fixtures without external I/O.
type record struct {
	position geomkernel.Vector
	normal   geomkernel.Vector
	index    int
}

func (r *record) Position() geomkernel.Vector     { return r.position }
func (r *record) Normal() geomkernel.Vector       { return r.normal }
func (r *record) SetNormal(n geomkernel.Vector)   { r.normal = n }
func (r *record) Index() int                      { return r.index }

func newPointRecords(positions, normals []geomkernel.Vector) []PointRecord {
	out := make([]PointRecord, len(positions))
	for i := range positions {
		out[i] = &record{position: positions[i], normal: normals[i], index: i}
	}
	return out
}
