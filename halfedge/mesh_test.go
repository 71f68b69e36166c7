package halfedge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	geomkernel "github.com/wkoehler/geomrepair"
)

// literalMesh is a minimal geomkernel.MeshReader backed by in-memory
// slices, used to build small fixture meshes the way
// triangle_test.go builds fixture triangles - explicit literals, no
// file I/O.
type literalMesh struct {
	vertices []geomkernel.Vector
	faces    [][]int
}

func (l *literalMesh) Read() error                        { return nil }
func (l *literalMesh) GetNumberOfVertices() int            { return len(l.vertices) }
func (l *literalMesh) GetNumberOfFaces() int                { return len(l.faces) }
func (l *literalMesh) GetVertex(i int) geomkernel.Vector    { return l.vertices[i] }
func (l *literalMesh) GetFace(i int) []int                  { return l.faces[i] }
func (l *literalMesh) GetFacePatch(i int) int                { return 0 }
func (l *literalMesh) GetPatch(i int) string                 { return "" }
func (l *literalMesh) GetNumberOfPatches() int               { return 0 }
func (l *literalMesh) GetNumberOfFaceEdges() int {
	n := 0
	for _, f := range l.faces {
		n += len(f)
	}
	return n
}

// bowtie builds a two-triangle fixture: a shared edge with a third
// vertex on either side.
func bowtie(apexY float64) *literalMesh {
	return &literalMesh{
		vertices: []geomkernel.Vector{
			geomkernel.NewVector(0, 0, 0),
			geomkernel.NewVector(1, 0, 0),
			geomkernel.NewVector(0.5, apexY, 0),
			geomkernel.NewVector(0.5, -apexY, 0),
		},
		faces: [][]int{
			{0, 1, 2},
			{1, 0, 3},
		},
	}
}

// quad builds a unit square triangulated along one diagonal.
func quad() *literalMesh {
	return &literalMesh{
		vertices: []geomkernel.Vector{
			geomkernel.NewVector(0, 0, 0),
			geomkernel.NewVector(1, 0, 0),
			geomkernel.NewVector(1, 1, 0),
			geomkernel.NewVector(0, 1, 0),
		},
		faces: [][]int{
			{0, 1, 2},
			{2, 3, 0},
		},
	}
}

func TestNewMeshPairsTwins(t *testing.T) {
	mesh, err := NewMesh(bowtie(0.1))
	assert.NoError(t, err)
	assert.Equal(t, 4, mesh.GetNumberOfVertices())
	assert.Equal(t, 2, mesh.GetNumberOfFaces())
	assert.Equal(t, 6, mesh.GetNumberOfHalfEdges())
	assert.True(t, mesh.IsManifold())

	borderCount := 0
	for h := 0; h < mesh.GetNumberOfHalfEdges(); h++ {
		if mesh.GetHalfEdge(h).IsBoundary() {
			borderCount++
		}
	}
	assert.Equal(t, 4, borderCount)
}

func TestNewMeshNonManifold(t *testing.T) {
	reader := &literalMesh{
		vertices: []geomkernel.Vector{
			geomkernel.NewVector(0, 0, 0),
			geomkernel.NewVector(1, 0, 0),
			geomkernel.NewVector(0.5, 1, 0),
			geomkernel.NewVector(0.5, -1, 0),
			geomkernel.NewVector(0.5, 0, 1),
		},
		faces: [][]int{
			{0, 1, 2},
			{0, 1, 3},
			{0, 1, 4},
		},
	}

	_, err := NewMesh(reader)
	assert.ErrorIs(t, err, ErrNonManifold)
}

func TestCollapseEdgeBowtie(t *testing.T) {
	mesh, err := NewMesh(bowtie(0.001))
	assert.NoError(t, err)

	// The shared edge is (0,1); both its half-edges are interior.
	var shared EdgeID
	for h := 0; h < mesh.GetNumberOfHalfEdges(); h++ {
		he := mesh.GetHalfEdge(h)
		if !he.IsBoundary() && he.Origin == 0 && mesh.TargetVertex(h) == 1 {
			shared = mesh.EdgeKey(h)
		}
	}

	assert.True(t, mesh.LinkConditionHolds(shared))

	survivor, err := mesh.CollapseEdge(shared)
	assert.NoError(t, err)
	assert.True(t, survivor == 0 || survivor == 1)
	assert.True(t, mesh.IsManifold())
	assert.Equal(t, 0, len(mesh.Faces()))
}

func TestCollapseEdgeRejectsBorder(t *testing.T) {
	mesh, err := NewMesh(bowtie(0.1))
	assert.NoError(t, err)

	var border EdgeID
	for h := 0; h < mesh.GetNumberOfHalfEdges(); h++ {
		if mesh.GetHalfEdge(h).IsBoundary() {
			border = mesh.EdgeKey(h)
			break
		}
	}

	_, err = mesh.CollapseEdge(border)
	assert.ErrorIs(t, err, ErrBorderEdge)
}

func TestFlipEdgeQuad(t *testing.T) {
	mesh, err := NewMesh(quad())
	assert.NoError(t, err)

	var diagonal EdgeID
	for h := 0; h < mesh.GetNumberOfHalfEdges(); h++ {
		he := mesh.GetHalfEdge(h)
		if !he.IsBoundary() && he.Origin == 2 && mesh.TargetVertex(h) == 0 {
			diagonal = mesh.EdgeKey(h)
		}
	}

	assert.False(t, mesh.HasEdge(1, 3))

	newEdge, err := mesh.FlipEdge(diagonal)
	assert.NoError(t, err)
	assert.True(t, mesh.IsManifold())
	assert.Equal(t, 2, len(mesh.Faces()))

	h0, _ := mesh.EdgeHalfEdges(newEdge)
	a, b := mesh.GetHalfEdge(h0).Origin, mesh.TargetVertex(h0)
	assert.True(t, (a == 1 && b == 3) || (a == 3 && b == 1))
}

func TestFlipEdgeRejectsExistingEdge(t *testing.T) {
	// A tetrahedron-like closed fan where flipping would duplicate an
	// existing edge.
	reader := &literalMesh{
		vertices: []geomkernel.Vector{
			geomkernel.NewVector(0, 0, 0),
			geomkernel.NewVector(1, 0, 0),
			geomkernel.NewVector(0.5, 1, 0),
			geomkernel.NewVector(0.5, -1, 0.01),
		},
		faces: [][]int{
			{0, 1, 2},
			{1, 0, 3},
			{0, 2, 3},
			{1, 3, 2},
		},
	}

	mesh, err := NewMesh(reader)
	assert.NoError(t, err)

	var shared EdgeID
	for h := 0; h < mesh.GetNumberOfHalfEdges(); h++ {
		he := mesh.GetHalfEdge(h)
		if !he.IsBoundary() && he.Origin == 0 && mesh.TargetVertex(h) == 1 {
			shared = mesh.EdgeKey(h)
		}
	}

	_, err = mesh.FlipEdge(shared)
	assert.ErrorIs(t, err, ErrEdgeExists)
}

func TestRemoveFaceBorderTriangle(t *testing.T) {
	reader := &literalMesh{
		vertices: []geomkernel.Vector{
			geomkernel.NewVector(0, 0, 0),
			geomkernel.NewVector(1, 0, 0),
			geomkernel.NewVector(0.5, 0.001, 0),
		},
		faces: [][]int{{0, 1, 2}},
	}

	mesh, err := NewMesh(reader)
	assert.NoError(t, err)

	err = mesh.RemoveFace(0)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(mesh.Faces()))
	assert.True(t, mesh.IsManifold())
}
