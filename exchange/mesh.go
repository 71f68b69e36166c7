package exchange

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"compress/gzip"

	"github.com/wkoehler/geomrepair/halfedge"
)

// NewMeshFromOBJ builds a halfedge.Mesh directly from an OBJ stream.
func NewMeshFromOBJ(r io.Reader) (*halfedge.Mesh, error) {
	reader := NewOBJReader(r)
	if err := reader.Read(); err != nil {
		return nil, err
	}
	return halfedge.NewMesh(reader)
}

// NewMeshFromOBJPath builds a halfedge.Mesh from an OBJ file on disk,
// transparently decompressing a .gz suffix the way ReadOBJFromPath does.
func NewMeshFromOBJPath(path string) (*halfedge.Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var r io.Reader = file
	if strings.ToLower(filepath.Ext(path)) == ".gz" {
		gzipFile, err := gzip.NewReader(file)
		if err != nil {
			return nil, err
		}
		defer gzipFile.Close()
		r = gzipFile
	}

	return NewMeshFromOBJ(r)
}
