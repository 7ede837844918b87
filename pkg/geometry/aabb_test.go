package geometry

import (
	"math"
	"testing"
)

type countingBuilder struct {
	faces    int
	vertices map[Vector3]bool
}

func newCountingBuilder() *countingBuilder {
	return &countingBuilder{vertices: make(map[Vector3]bool)}
}

func (c *countingBuilder) AddFace(v0, v1, v2 Vector3, normal *Vector3) {
	c.faces++
	c.vertices[v0] = true
	c.vertices[v1] = true
	c.vertices[v2] = true
}

func TestAABBContainsPoint(t *testing.T) {
	box := NewAABB(NewVector3(0, 0, 0), 1)

	inside := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(0.5, -0.5, 0.25),
	}
	for _, p := range inside {
		if !box.ContainsPoint(p) {
			t.Errorf("ContainsPoint failed: expected %v inside", p)
		}
	}

	outside := []Vector3{
		NewVector3(1.5, 0, 0),
		NewVector3(0, -1.5, 0),
		NewVector3(0, 0, 2),
	}
	for _, p := range outside {
		if box.ContainsPoint(p) {
			t.Errorf("ContainsPoint failed: expected %v outside", p)
		}
	}
}

func TestAABBContainsPointBoundary(t *testing.T) {
	box := NewAABB(NewVector3(0, 0, 0), 1)

	// Containment is inclusive: points exactly on a face are inside
	boundary := []Vector3{
		NewVector3(1, 0, 0),
		NewVector3(-1, 0, 0),
		NewVector3(1, 1, 1),
	}
	for _, p := range boundary {
		if !box.ContainsPoint(p) {
			t.Errorf("ContainsPoint failed: expected boundary point %v inside", p)
		}
	}
}

func TestAABBFromMinMaxRoundTrip(t *testing.T) {
	min := NewVector3(-1, 2, -3)
	max := NewVector3(4, 5, 6)
	box := AABBFromMinMax(min, max)

	if box.Min().Distance(min) > 1e-10 {
		t.Errorf("Min failed: expected %v, got %v", min, box.Min())
	}
	if box.Max().Distance(max) > 1e-10 {
		t.Errorf("Max failed: expected %v, got %v", max, box.Max())
	}

	expectedCenter := NewVector3(1.5, 3.5, 1.5)
	if box.Center().Distance(expectedCenter) > 1e-10 {
		t.Errorf("Center failed: expected %v, got %v", expectedCenter, box.Center())
	}
}

func TestAABBFromMinMaxSwappedCorners(t *testing.T) {
	// Corners in arbitrary order are normalized
	box := AABBFromMinMax(NewVector3(4, -2, 6), NewVector3(-1, 5, -3))

	expectedMin := NewVector3(-1, -2, -3)
	expectedMax := NewVector3(4, 5, 6)
	if box.Min() != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, box.Min())
	}
	if box.Max() != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, box.Max())
	}
}

func TestAABBIntersectsBox(t *testing.T) {
	a := NewAABB(NewVector3(0, 0, 0), 1)
	b := NewAABB(NewVector3(1.5, 0, 0), 1)
	c := NewAABB(NewVector3(5, 0, 0), 1)

	if !a.IntersectsBox(b) {
		t.Error("IntersectsBox failed: expected overlap")
	}
	if a.IntersectsBox(c) {
		t.Error("IntersectsBox failed: expected no overlap")
	}

	// Touching faces count as overlap
	d := NewAABB(NewVector3(2, 0, 0), 1)
	if !a.IntersectsBox(d) {
		t.Error("IntersectsBox failed: expected touching boxes to overlap")
	}
}

func TestAABBIntersectsBoxSymmetry(t *testing.T) {
	boxes := []*AABB{
		NewAABB(NewVector3(0, 0, 0), 1),
		NewAABB(NewVector3(1.5, 0.5, -0.5), 1),
		NewAABB(NewVector3(10, 10, 10), 2),
		NewAABBFromExtent(NewVector3(0, 3, 0), NewVector3(0.5, 2, 8)),
	}

	for i, a := range boxes {
		for j, b := range boxes {
			if a.IntersectsBox(b) != b.IntersectsBox(a) {
				t.Errorf("IntersectsBox symmetry failed for boxes %d and %d", i, j)
			}
		}
	}
}

func TestAABBIntersectsSphere(t *testing.T) {
	box := NewAABB(NewVector3(0, 0, 0), 1)

	// Closest distance from (3,0,0) to the box is 2
	center := NewVector3(3, 0, 0)
	if box.IntersectsSphere(center, 1) {
		t.Error("IntersectsSphere failed: expected no intersection for radius 1")
	}
	if !box.IntersectsSphere(center, 2.5) {
		t.Error("IntersectsSphere failed: expected intersection for radius 2.5")
	}

	// Sphere center inside the box
	if !box.IntersectsSphere(NewVector3(0.5, 0.5, 0.5), 0.1) {
		t.Error("IntersectsSphere failed: expected intersection for contained sphere")
	}
}

func TestAABBIntersectsRay(t *testing.T) {
	box := NewAABB(NewVector3(0, 0, 0), 1)
	ray := NewRay(NewVector3(-5, 0, 0), NewVector3(1, 0, 0))

	hit, ok := box.IntersectsRay(ray, 0, 100)
	if !ok {
		t.Fatal("IntersectsRay failed: expected a hit")
	}

	expected := NewVector3(-1, 0, 0)
	if hit.Distance(expected) > 1e-10 {
		t.Errorf("IntersectsRay failed: expected entry point %v, got %v", expected, hit)
	}
}

func TestAABBIntersectsRayMiss(t *testing.T) {
	box := NewAABB(NewVector3(0, 0, 0), 1)

	// Parallel offset ray never enters the y slab
	ray := NewRay(NewVector3(-5, 5, 0), NewVector3(1, 0, 0))
	if _, ok := box.IntersectsRay(ray, 0, 100); ok {
		t.Error("IntersectsRay failed: expected a miss")
	}
}

func TestAABBIntersectsRayAxisParallel(t *testing.T) {
	box := NewAABB(NewVector3(0, 0, 0), 1)

	// A ray with zero direction components relies on the reciprocal
	// yielding signed infinity
	ray := NewRay(NewVector3(0.5, 0.5, 10), NewVector3(0, 0, -1))
	hit, ok := box.IntersectsRay(ray, 0, 100)
	if !ok {
		t.Fatal("IntersectsRay failed: expected a hit for axis-parallel ray")
	}

	expected := NewVector3(0.5, 0.5, 1)
	if hit.Distance(expected) > 1e-10 {
		t.Errorf("IntersectsRay failed: expected entry point %v, got %v", expected, hit)
	}
}

func TestAABBIntersectsRayOutsideWindow(t *testing.T) {
	box := NewAABB(NewVector3(0, 0, 0), 1)
	ray := NewRay(NewVector3(-5, 0, 0), NewVector3(1, 0, 0))

	// The box is entered at t=4, after the allowed window
	if _, ok := box.IntersectsRay(ray, 0, 3); ok {
		t.Error("IntersectsRay failed: expected a miss beyond maxDist")
	}

	// The box is exited at t=6, before the allowed window
	if _, ok := box.IntersectsRay(ray, 7, 100); ok {
		t.Error("IntersectsRay failed: expected a miss before minDist")
	}
}

func TestAABBNormalForPoint(t *testing.T) {
	box := NewAABB(NewVector3(0, 0, 0), 1)

	cases := []struct {
		point    Vector3
		expected Vector3
	}{
		{NewVector3(1, 0, 0), NewVector3(1, 0, 0)},
		{NewVector3(-1, 0, 0), NewVector3(-1, 0, 0)},
		{NewVector3(0, 1, 0), NewVector3(0, 1, 0)},
		{NewVector3(0, -1, 0), NewVector3(0, -1, 0)},
		{NewVector3(0, 0, 1), NewVector3(0, 0, 1)},
		{NewVector3(0.2, 0.3, -1), NewVector3(0, 0, -1)},
	}

	for _, tc := range cases {
		normal := box.NormalForPoint(tc.point)
		if normal != tc.expected {
			t.Errorf("NormalForPoint(%v) failed: expected %v, got %v", tc.point, tc.expected, normal)
		}
	}
}

func TestAABBNormalForPointTieBreak(t *testing.T) {
	box := NewAABB(NewVector3(0, 0, 0), 1)

	// Equal penetration on all axes resolves to the x axis
	normal := box.NormalForPoint(NewVector3(1, 1, 1))
	expected := NewVector3(1, 0, 0)
	if normal != expected {
		t.Errorf("NormalForPoint tie-break failed: expected %v, got %v", expected, normal)
	}
}

func TestAABBIncludePoint(t *testing.T) {
	box := NewAABB(NewVector3(0, 0, 0), 1)
	box.IncludePoint(NewVector3(3, 0, 0))

	expectedMin := NewVector3(-1, -1, -1)
	expectedMax := NewVector3(3, 1, 1)
	if box.Min() != expectedMin {
		t.Errorf("IncludePoint min failed: expected %v, got %v", expectedMin, box.Min())
	}
	if box.Max() != expectedMax {
		t.Errorf("IncludePoint max failed: expected %v, got %v", expectedMax, box.Max())
	}

	expectedCenter := NewVector3(1, 0, 0)
	if box.Center() != expectedCenter {
		t.Errorf("IncludePoint center failed: expected %v, got %v", expectedCenter, box.Center())
	}
}

func TestAABBIncludePointIdempotent(t *testing.T) {
	box := NewAABB(NewVector3(1, 2, 3), 2)

	// Including a point already inside leaves the box unchanged
	box.IncludePoint(NewVector3(1.5, 2.5, 3.5))
	if box.Center() != NewVector3(1, 2, 3) {
		t.Errorf("IncludePoint changed center: got %v", box.Center())
	}
	if box.Extent() != NewVector3(2, 2, 2) {
		t.Errorf("IncludePoint changed extent: got %v", box.Extent())
	}
}

func TestAABBMutatorsRefreshBounds(t *testing.T) {
	box := NewAABB(NewVector3(0, 0, 0), 1)

	box.SetCenter(10, 0, 0)
	if box.Min() != NewVector3(9, -1, -1) || box.Max() != NewVector3(11, 1, 1) {
		t.Errorf("SetCenter did not refresh bounds: min %v, max %v", box.Min(), box.Max())
	}

	box.SetExtent(NewVector3(2, 3, 4))
	if box.Min() != NewVector3(8, -3, -4) || box.Max() != NewVector3(12, 3, 4) {
		t.Errorf("SetExtent did not refresh bounds: min %v, max %v", box.Min(), box.Max())
	}
}

func TestAABBCopyIndependence(t *testing.T) {
	box := NewAABB(NewVector3(0, 0, 0), 1)
	clone := box.Copy()

	clone.SetCenter(5, 5, 5)
	if box.Center() != NewVector3(0, 0, 0) {
		t.Errorf("Copy is not independent: original center moved to %v", box.Center())
	}
}

func TestAABBToMesh(t *testing.T) {
	box := NewAABBFromExtent(NewVector3(1, 2, 3), NewVector3(1, 2, 0.5))

	builder := newCountingBuilder()
	box.ToMesh(builder)

	if builder.faces != 12 {
		t.Errorf("ToMesh failed: expected 12 faces, got %d", builder.faces)
	}
	if len(builder.vertices) != 8 {
		t.Errorf("ToMesh failed: expected 8 unique vertices, got %d", len(builder.vertices))
	}
}

func TestAABBToMeshDegenerate(t *testing.T) {
	box := NewAABB(NewVector3(0, 0, 0), 0)

	builder := newCountingBuilder()
	box.ToMesh(builder)

	// A zero-extent box still emits the full face list
	if builder.faces != 12 {
		t.Errorf("ToMesh failed: expected 12 faces, got %d", builder.faces)
	}
	if len(builder.vertices) != 1 {
		t.Errorf("ToMesh failed: expected 1 unique vertex, got %d", len(builder.vertices))
	}
}

func TestAABBToMeshWinding(t *testing.T) {
	box := NewAABB(NewVector3(0, 0, 0), 1)

	model := &windingChecker{center: box.Center()}
	box.ToMesh(model)

	if model.inward > 0 {
		t.Errorf("ToMesh winding failed: %d of %d faces point inward", model.inward, model.faces)
	}
}

type windingChecker struct {
	center Vector3
	faces  int
	inward int
}

func (w *windingChecker) AddFace(v0, v1, v2 Vector3, normal *Vector3) {
	w.faces++
	n := v1.Sub(v0).Cross(v2.Sub(v0))
	centroid := NewVector3(
		(v0.X+v1.X+v2.X)/3,
		(v0.Y+v1.Y+v2.Y)/3,
		(v0.Z+v1.Z+v2.Z)/3,
	)
	if n.Dot(centroid.Sub(w.center)) < 0 {
		w.inward++
	}
}

func TestRayPointAt(t *testing.T) {
	ray := NewRay(NewVector3(1, 0, 0), NewVector3(0, 2, 0))

	// Direction is normalized by the constructor
	point := ray.PointAt(3)
	expected := NewVector3(1, 3, 0)
	if point.Distance(expected) > 1e-10 {
		t.Errorf("PointAt failed: expected %v, got %v", expected, point)
	}
}

func TestSphereContainsPoint(t *testing.T) {
	sphere := NewSphere(NewVector3(0, 0, 0), 2)

	if !sphere.ContainsPoint(NewVector3(1, 1, 1)) {
		t.Error("ContainsPoint failed: expected point inside")
	}
	if sphere.ContainsPoint(NewVector3(2, 2, 2)) {
		t.Error("ContainsPoint failed: expected point outside")
	}
	// Boundary is inclusive
	if !sphere.ContainsPoint(NewVector3(2, 0, 0)) {
		t.Error("ContainsPoint failed: expected boundary point inside")
	}
}

func TestAABBEntryParameter(t *testing.T) {
	box := NewAABB(NewVector3(0, 0, 0), 1)
	ray := NewRay(NewVector3(-5, 0, 0), NewVector3(1, 0, 0))

	hit, ok := box.IntersectsRay(ray, 0, 100)
	if !ok {
		t.Fatal("IntersectsRay failed: expected a hit")
	}

	// The box is entered at parameter 4
	entry := ray.Origin.Distance(hit)
	if math.Abs(entry-4) > 1e-10 {
		t.Errorf("Entry parameter failed: expected 4, got %v", entry)
	}
}
