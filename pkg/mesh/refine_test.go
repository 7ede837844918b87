package mesh

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

func TestRefineQuadruplesTriangles(t *testing.T) {
	model := makeBoxModel()

	refined := Refine(model, MidpointSubdivision{}, 1)
	if refined.TriangleCount() != 4*model.TriangleCount() {
		t.Errorf("Refine failed: expected %d triangles, got %d",
			4*model.TriangleCount(), refined.TriangleCount())
	}

	twice := Refine(model, MidpointSubdivision{}, 2)
	if twice.TriangleCount() != 16*model.TriangleCount() {
		t.Errorf("Refine failed: expected %d triangles, got %d",
			16*model.TriangleCount(), twice.TriangleCount())
	}
}

func TestRefinePreservesSurfaceArea(t *testing.T) {
	model := makeBoxModel()

	refined := Refine(model, MidpointSubdivision{}, 2)
	if math.Abs(refined.SurfaceArea()-model.SurfaceArea()) > 1e-9 {
		t.Errorf("Refine changed surface area: expected %v, got %v",
			model.SurfaceArea(), refined.SurfaceArea())
	}
}

func TestRefinePreservesBounds(t *testing.T) {
	model := makeBoxModel()

	refined := Refine(model, MidpointSubdivision{}, 1)
	want := model.BoundingBox()
	got := refined.BoundingBox()

	if got.Min().Distance(want.Min()) > 1e-10 || got.Max().Distance(want.Max()) > 1e-10 {
		t.Errorf("Refine changed bounds: expected %v-%v, got %v-%v",
			want.Min(), want.Max(), got.Min(), got.Max())
	}
}

func TestRefineZeroPasses(t *testing.T) {
	model := makeBoxModel()

	refined := Refine(model, MidpointSubdivision{}, 0)
	if refined.TriangleCount() != model.TriangleCount() {
		t.Errorf("Refine with 0 passes changed the model: got %d triangles", refined.TriangleCount())
	}
}

func TestRefineSplitsAtMidpoints(t *testing.T) {
	model := stl.NewModel("triangle")
	model.AddFace(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(2, 0, 0),
		geometry.NewVector3(0, 2, 0),
		nil,
	)

	refined := Refine(model, MidpointSubdivision{}, 1)
	if refined.TriangleCount() != 4 {
		t.Fatalf("Refine failed: expected 4 triangles, got %d", refined.TriangleCount())
	}

	// The center triangle consists of the three edge midpoints
	mids := map[geometry.Vector3]bool{
		geometry.NewVector3(1, 0, 0): false,
		geometry.NewVector3(1, 1, 0): false,
		geometry.NewVector3(0, 1, 0): false,
	}
	for _, triangle := range refined.Triangles {
		for _, v := range []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			if _, ok := mids[v]; ok {
				mids[v] = true
			}
		}
	}
	for mid, seen := range mids {
		if !seen {
			t.Errorf("Refine failed: midpoint %v missing from refined mesh", mid)
		}
	}
}

func TestRefineDisplacementInflates(t *testing.T) {
	model := makeBoxModel()
	strategy := MidpointDisplacementSubdivision{
		Centroid: geometry.NewVector3(0, 0, 0),
		Amount:   0.25,
	}

	refined := Refine(model, strategy, 1)

	// Displaced split points grow the bounds
	if refined.BoundingBox().Diagonal() <= model.BoundingBox().Diagonal() {
		t.Error("Refine failed: expected displacement to grow the bounding box")
	}
}
