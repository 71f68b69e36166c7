package orient

import (
	geomkernel "github.com/wkoehler/geomrepair"
	"github.com/wkoehler/geomrepair/spatial"
)

// weightedEdge is one edge of the Riemannian graph.
type weightedEdge struct {
	To     int
	Weight float64
}

// graph is an undirected adjacency-list graph over the dense index
// space [0,N) Core B's vertices already occupy by construction (§3),
// modeled on lvlath/core.Graph's AdjacencyList shape but keyed by int
// rather than string vertex IDs - no separate edge-object arena, just
// sorted-by-discovery neighbor slices per vertex.
type graph struct {
	adjacency [][]weightedEdge
}

func newGraph(n int) *graph {
	return &graph{adjacency: make([][]weightedEdge, n)}
}

// addEdge inserts both directions of the undirected edge (i,j).
func (g *graph) addEdge(i, j int, weight float64) {
	g.adjacency[i] = append(g.adjacency[i], weightedEdge{To: j, Weight: weight})
	g.adjacency[j] = append(g.adjacency[j], weightedEdge{To: i, Weight: weight})
}

func (g *graph) neighbors(i int) []weightedEdge {
	return g.adjacency[i]
}

func (g *graph) size() int {
	return len(g.adjacency)
}

// BuildRiemannianGraph implements §4.5: for each point i, query the
// k+1 nearest points (self plus k neighbors); for each neighbor j with
// index > i, add edge (i,j) weighted by the normal-alignment defect.
// The index-ordered dedup rule adds each pair at most once, and only
// from the lower-index side: a pair (i,j) with i < j is connected when j
// is among i's k+1 nearest points. A pair where only j's query returns
// i gets no edge, so the graph is not the full symmetric closure of the
// kNN relation.
func BuildRiemannianGraph(points []PointRecord, index spatial.Index, k int) *graph {
	g := newGraph(len(points))

	for i, p := range points {
		neighbors := index.KNN(p.Position(), k+1)

		for _, n := range neighbors {
			j := n.Index
			if j <= i {
				continue
			}

			weight := riemannianWeight(p.Normal(), points[j].Normal())
			g.addEdge(i, j, weight)
		}
	}

	return g
}

// riemannianWeight computes 1 - |n_i . n_j|, clamped to [0, inf) per
// §3 (negative round-off is clamped to zero).
func riemannianWeight(a, b geomkernel.Vector) float64 {
	w := 1 - absFloat(a.Dot(b))
	if w < 0 {
		return 0
	}
	return w
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
