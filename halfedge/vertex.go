package halfedge

import (
	geomkernel "github.com/wkoehler/geomrepair"
)

// Vertex holds its position and one incident outgoing half-edge, used
// as the entry point for ring traversal around it.
type Vertex struct {
	Point    geomkernel.Vector
	HalfEdge int
}
