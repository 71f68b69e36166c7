package orient

import "container/heap"

// mstEdge is a candidate edge in Prim's frontier: an edge from an
// already-visited vertex to a not-yet-visited one.
type mstEdge struct {
	from, to int
	weight   float64
}

// edgeHeap implements heap.Interface for a min-heap of mstEdge ordered
// by weight, modeled directly on lvlath/prim_kruskal/prim.go's edgePQ.
type edgeHeap []mstEdge

func (h edgeHeap) Len() int            { return len(h) }
func (h edgeHeap) Less(i, j int) bool  { return h[i].weight < h[j].weight }
func (h edgeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(mstEdge)) }
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// BuildMST implements §4.6: Prim's algorithm rooted at root, growing
// outward over g's weighted adjacency via a min-heap of frontier
// edges. Returns a predecessor array p[0..N) with p[root] = root.
// Vertices unreachable from root (a disconnected graph) keep p[i] = i,
// the same sentinel the root uses - Core B has no analogue of
// ErrDisconnected since an unreached point simply never gets oriented.
func BuildMST(g *graph, root int) []int {
	n := g.size()
	pred := make([]int, n)
	visited := make([]bool, n)

	for i := range pred {
		pred[i] = i
	}

	pq := &edgeHeap{}
	heap.Init(pq)
	visited[root] = true

	for _, e := range g.neighbors(root) {
		heap.Push(pq, mstEdge{from: root, to: e.To, weight: e.Weight})
	}

	for pq.Len() > 0 {
		e := heap.Pop(pq).(mstEdge)
		if visited[e.to] {
			continue
		}

		visited[e.to] = true
		pred[e.to] = e.from

		for _, next := range g.neighbors(e.to) {
			if !visited[next.To] {
				heap.Push(pq, mstEdge{from: e.to, to: next.To, weight: next.Weight})
			}
		}
	}

	return pred
}
