package geomkernel

import "math"

// Triangle in three-dimension Cartesian space.
type Triangle struct {
	P Vector
	Q Vector
	R Vector
}

// Construct a Triangle from its three vertices.
func NewTriangle(p, q, r Vector) Triangle {
	return Triangle{p, q, r}
}

// Compute the area.
func (t Triangle) Area() float64 {
	u := t.Q.Sub(t.P)
	v := t.R.Sub(t.P)
	return u.Cross(v).Mag() * 0.5
}

// Compute the normal.
func (t Triangle) Normal() Vector {
	u := t.Q.Sub(t.P)
	v := t.R.Sub(t.P)
	return u.Cross(v)
}

// Compute the unit normal.
func (t Triangle) UnitNormal() Vector {
	return t.Normal().Unit()
}

// Implement the IntersectsRay interface.
func (t Triangle) IntersectsRay(query Ray) bool {
	return query.IntersectsTriangle(t)
}

// Implement the IntersectsAABB interface using the Akenine-Moller
// separating axis test (triangle/box overlap).
func (t Triangle) IntersectsAABB(query AABB) bool {
	center := query.Center
	halfSize := query.HalfSize

	v0 := t.P.Sub(center)
	v1 := t.Q.Sub(center)
	v2 := t.R.Sub(center)

	e0 := v1.Sub(v0)
	e1 := v2.Sub(v1)
	e2 := v0.Sub(v2)

	axes := [3]Vector{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	for _, e := range [3]Vector{e0, e1, e2} {
		for _, a := range axes {
			axis := a.Cross(e)
			if axis.Dot(axis) < 1e-12 {
				continue
			}

			p0 := v0.Dot(axis)
			p1 := v1.Dot(axis)
			p2 := v2.Dot(axis)
			r := halfSize[0]*math.Abs(axis[0]) +
				halfSize[1]*math.Abs(axis[1]) +
				halfSize[2]*math.Abs(axis[2])

			minP := math.Min(p0, math.Min(p1, p2))
			maxP := math.Max(p0, math.Max(p1, p2))

			if minP > r || maxP < -r {
				return false
			}
		}
	}

	for i := 0; i < 3; i++ {
		minV := math.Min(v0[i], math.Min(v1[i], v2[i]))
		maxV := math.Max(v0[i], math.Max(v1[i], v2[i]))

		if minV > halfSize[i] || maxV < -halfSize[i] {
			return false
		}
	}

	normal := e0.Cross(e1)
	d := normal.Dot(v0)
	r := halfSize[0]*math.Abs(normal[0]) +
		halfSize[1]*math.Abs(normal[1]) +
		halfSize[2]*math.Abs(normal[2])

	return math.Abs(d) <= r
}
