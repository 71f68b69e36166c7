package orient

// Partition implements §4.8: a stable partition of points so every
// oriented[i]=true record appears before every oriented[i]=false
// record, each group keeping its original relative order. Returns the
// boundary index. Implemented as an explicit stable two-pass copy
// rather than sort.SliceStable, which sorts rather than partitions and
// would needlessly reorder within a group.
func Partition(points []PointRecord, oriented []bool) int {
	out := make([]PointRecord, 0, len(points))

	for i, p := range points {
		if oriented[i] {
			out = append(out, p)
		}
	}
	boundary := len(out)

	for i, p := range points {
		if !oriented[i] {
			out = append(out, p)
		}
	}

	copy(points, out)
	return boundary
}
