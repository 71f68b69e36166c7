package exchange

import (
	"bufio"
	"fmt"
	"io"

	"github.com/wkoehler/geomrepair/halfedge"
)

// WriteOBJ serializes the live (non-tombstoned) vertices and faces of
// mesh as an ASCII Wavefront OBJ, renumbering around removed vertices
// so the output has no dangling 1-based indices.
func WriteOBJ(w io.Writer, mesh *halfedge.Mesh) error {
	writer := bufio.NewWriter(w)

	remap := make(map[int]int, mesh.GetNumberOfVertices())
	next := 1

	for i := 0; i < mesh.GetNumberOfVertices(); i++ {
		if mesh.IsVertexRemoved(i) {
			continue
		}

		p := mesh.GetVertex(i).Point
		if _, err := fmt.Fprintf(writer, "%s %g %g %g\n", PrefixVertex, p[0], p[1], p[2]); err != nil {
			return err
		}

		remap[i] = next
		next++
	}

	for _, f := range mesh.Faces() {
		vertices := mesh.GetFaceVertices(f)

		if _, err := fmt.Fprintf(writer, "%s", PrefixFace); err != nil {
			return err
		}
		for _, v := range vertices {
			if _, err := fmt.Fprintf(writer, " %d", remap[v]); err != nil {
				return err
			}
		}
		if _, err := writer.WriteString("\n"); err != nil {
			return err
		}
	}

	return writer.Flush()
}
