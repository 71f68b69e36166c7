package orient

import "math"

// Propagate implements §4.7: a breadth-first walk from root over the
// directed predecessor tree pred. At each tree edge (s -> t), t's
// normal is flipped in place if anti-aligned with s's, then t's
// is_oriented flag is set from s's, gated by the confidence threshold
// cos(θ_max). Returns the is_oriented flag per point and the BFS tree
// diameter (levels visited), reported in Stats.
func Propagate(points []PointRecord, pred []int, root int, maxAngle float64) ([]bool, int) {
	n := len(points)
	oriented := make([]bool, n)
	oriented[root] = true

	children := make([][]int, n)
	for i, p := range pred {
		if i != root && p != i {
			children[p] = append(children[p], i)
		}
	}

	cosThreshold := math.Cos(maxAngle)

	queue := []int{root}
	depth := map[int]int{root: 0}
	diameter := 0

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		for _, t := range children[s] {
			ns := points[s].Normal()
			nt := points[t].Normal()

			if ns.Dot(nt) < 0 {
				points[t].SetNormal(nt.MulScalar(-1))
				nt = points[t].Normal()
			}

			confidence := absFloat(ns.Dot(nt))
			oriented[t] = oriented[s] && confidence >= cosThreshold

			depth[t] = depth[s] + 1
			if depth[t] > diameter {
				diameter = depth[t]
			}

			queue = append(queue, t)
		}
	}

	return oriented, diameter
}
