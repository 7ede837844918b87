package stl

import (
	"github.com/philipparndt/gogeom/pkg/geometry"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// NewBoxModel creates a model of the given box: a closed mesh of 8 vertices
// and 12 triangles with outward-facing normals
func NewBoxModel(name string, box *geometry.AABB) *Model {
	model := NewModel(name)
	box.ToMesh(model)
	return model
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// AddFace adds a triangular face from three vertices. When normal is nil
// the face normal is computed from the winding order (right-hand rule),
// otherwise the given normal overrides it. Model implements
// geometry.MeshBuilder.
func (m *Model) AddFace(v0, v1, v2 geometry.Vector3, normal *geometry.Vector3) {
	triangle := geometry.NewTriangle(geometry.Vector3{}, v0, v1, v2)
	if normal != nil {
		triangle.Normal = *normal
	} else {
		triangle.Normal = triangle.CalculateNormal()
	}
	m.AddTriangle(triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the axis-aligned bounding box of the entire model
func (m *Model) BoundingBox() *geometry.AABB {
	if len(m.Triangles) == 0 {
		return geometry.NewAABB(geometry.Vector3{}, 0)
	}

	first := m.Triangles[0].V1
	bbox := geometry.AABBFromMinMax(first, first)
	for _, triangle := range m.Triangles {
		bbox.IncludePoint(triangle.V1)
		bbox.IncludePoint(triangle.V2)
		bbox.IncludePoint(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}
