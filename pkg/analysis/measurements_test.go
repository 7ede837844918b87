package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/gogeom/pkg/geometry"
	"github.com/philipparndt/gogeom/pkg/stl"
)

func makeBoxModel() *stl.Model {
	box := geometry.NewAABB(geometry.NewVector3(0, 0, 0), 1)
	return stl.NewBoxModel("box", box)
}

func TestAnalyzeModel(t *testing.T) {
	result := AnalyzeModel(makeBoxModel())

	if result.TriangleCount != 12 {
		t.Errorf("TriangleCount failed: expected 12, got %d", result.TriangleCount)
	}
	if result.EdgeCount != 36 {
		t.Errorf("EdgeCount failed: expected 36, got %d", result.EdgeCount)
	}

	// A box with half-extent 1 has side length 2
	expectedArea := 24.0
	if math.Abs(result.SurfaceArea-expectedArea) > 1e-10 {
		t.Errorf("SurfaceArea failed: expected %v, got %v", expectedArea, result.SurfaceArea)
	}

	expectedMin := geometry.NewVector3(-1, -1, -1)
	expectedMax := geometry.NewVector3(1, 1, 1)
	if result.BoundingBox.Min() != expectedMin {
		t.Errorf("BoundingBox min failed: expected %v, got %v", expectedMin, result.BoundingBox.Min())
	}
	if result.BoundingBox.Max() != expectedMax {
		t.Errorf("BoundingBox max failed: expected %v, got %v", expectedMax, result.BoundingBox.Max())
	}

	expectedVolume := 8.0
	if math.Abs(result.Volume-expectedVolume) > 1e-10 {
		t.Errorf("Volume failed: expected %v, got %v", expectedVolume, result.Volume)
	}
}

func TestAnalyzeModelEdgeLengths(t *testing.T) {
	result := AnalyzeModel(makeBoxModel())

	// Box faces are split along a diagonal: edges of length 2 and 2*sqrt(2)
	if math.Abs(result.MinEdgeLength-2.0) > 1e-10 {
		t.Errorf("MinEdgeLength failed: expected 2, got %v", result.MinEdgeLength)
	}
	if math.Abs(result.MaxEdgeLength-2*math.Sqrt2) > 1e-10 {
		t.Errorf("MaxEdgeLength failed: expected %v, got %v", 2*math.Sqrt2, result.MaxEdgeLength)
	}
}

func TestFindNearestVertex(t *testing.T) {
	model := makeBoxModel()

	vertex, distance := FindNearestVertex(model, geometry.NewVector3(1.1, 1.1, 1.1))

	expected := geometry.NewVector3(1, 1, 1)
	if vertex != expected {
		t.Errorf("FindNearestVertex failed: expected %v, got %v", expected, vertex)
	}
	if math.Abs(distance-geometry.NewVector3(0.1, 0.1, 0.1).Length()) > 1e-10 {
		t.Errorf("FindNearestVertex distance failed: got %v", distance)
	}
}

func TestFormatVector(t *testing.T) {
	formatted := FormatVector(geometry.NewVector3(1, 2.5, -3))

	expected := "(1.000000, 2.500000, -3.000000)"
	if formatted != expected {
		t.Errorf("FormatVector failed: expected %q, got %q", expected, formatted)
	}
}
