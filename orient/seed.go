package orient

import geomkernel "github.com/wkoehler/geomrepair"

// FindSeed implements §4.4: the point with maximum z-coordinate, ties
// broken by first-encountered index, its normal forced non-negative
// against +Z. Returns the chosen record's position in points.
func FindSeed(points []PointRecord) int {
	seed := 0
	best := points[0].Position().Z()

	for i := 1; i < len(points); i++ {
		z := points[i].Position().Z()
		if z > best {
			best = z
			seed = i
		}
	}

	up := geomkernel.NewVector(0, 0, 1)
	if points[seed].Normal().Dot(up) < 0 {
		points[seed].SetNormal(points[seed].Normal().MulScalar(-1))
	}

	return seed
}
