package halfedge

import "github.com/pkg/errors"

var (
	// ErrNonManifold is returned when constructing a mesh whose shared
	// edges cannot be paired into the usual two half-edges each.
	ErrNonManifold = errors.New("halfedge: mesh is non-manifold")

	// ErrLinkConditionFailed is returned by CollapseEdge when the link
	// condition does not hold for the requested edge.
	ErrLinkConditionFailed = errors.New("halfedge: link condition failed")

	// ErrBorderEdge is returned by CollapseEdge for a border edge -
	// current policy disallows collapsing border edges.
	ErrBorderEdge = errors.New("halfedge: edge is on the border")

	// ErrInteriorEdge is returned by RemoveFace's caller-visible
	// precondition: the target face must have at least one border
	// half-edge.
	ErrInteriorEdge = errors.New("halfedge: face has no border half-edge")

	// ErrEdgeExists is returned by FlipEdge when the would-be flipped
	// edge already connects the two apex vertices.
	ErrEdgeExists = errors.New("halfedge: flipped edge already exists")

	// ErrInvalidHandle denotes an out-of-range or removed
	// face/edge/vertex handle. The accessors and mutators in this
	// package do not validate handles and never return it.
	ErrInvalidHandle = errors.New("halfedge: invalid handle")
)
