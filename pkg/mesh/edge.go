package mesh

import "github.com/philipparndt/gogeom/pkg/geometry"

// Edge represents a mesh edge between two vertices
type Edge struct {
	A, B geometry.Vector3
}

// NewEdge creates a new edge
func NewEdge(a, b geometry.Vector3) Edge {
	return Edge{A: a, B: b}
}

// MidPoint returns the point halfway between the edge endpoints
func (e Edge) MidPoint() geometry.Vector3 {
	return e.A.Lerp(e.B, 0.5)
}

// Length returns the length of the edge
func (e Edge) Length() float64 {
	return e.A.Distance(e.B)
}

// edgeKey identifies an edge independent of endpoint order, so the two
// triangles sharing an edge resolve to the same key.
type edgeKey struct {
	a, b geometry.Vector3
}

func keyFor(e Edge) edgeKey {
	if vecLess(e.B, e.A) {
		return edgeKey{a: e.B, b: e.A}
	}
	return edgeKey{a: e.A, b: e.B}
}

// vecLess orders vectors lexicographically by X, then Y, then Z
func vecLess(a, b geometry.Vector3) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}
