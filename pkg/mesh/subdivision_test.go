package mesh

import (
	"math"
	"sort"
	"testing"

	"github.com/philipparndt/gogeom/pkg/geometry"
)

func TestEdgeMidPoint(t *testing.T) {
	edge := NewEdge(geometry.NewVector3(0, 0, 0), geometry.NewVector3(2, 0, 0))

	mid := edge.MidPoint()
	expected := geometry.NewVector3(1, 0, 0)
	if mid != expected {
		t.Errorf("MidPoint failed: expected %v, got %v", expected, mid)
	}
}

func TestEdgeLength(t *testing.T) {
	edge := NewEdge(geometry.NewVector3(0, 0, 0), geometry.NewVector3(3, 4, 0))

	length := edge.Length()
	if math.Abs(length-5.0) > 1e-10 {
		t.Errorf("Length failed: expected 5.0, got %v", length)
	}
}

func TestMidpointSubdivisionSplitPoint(t *testing.T) {
	strategy := MidpointSubdivision{}
	edge := NewEdge(geometry.NewVector3(0, 0, 0), geometry.NewVector3(2, 0, 0))

	points := strategy.ComputeSplitPoints(edge)
	if len(points) != 1 {
		t.Fatalf("ComputeSplitPoints failed: expected 1 point, got %d", len(points))
	}

	expected := geometry.NewVector3(1, 0, 0)
	if points[0] != expected {
		t.Errorf("ComputeSplitPoints failed: expected %v, got %v", expected, points[0])
	}
}

func TestMidpointSubdivisionOrdering(t *testing.T) {
	strategy := MidpointSubdivision{}

	short := NewEdge(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))
	long := NewEdge(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 5, 0))

	if !strategy.Less(short, long) {
		t.Error("Less failed: expected shorter edge to sort first")
	}
	if strategy.Less(long, short) {
		t.Error("Less failed: expected longer edge to sort last")
	}
	// Irreflexive on equal lengths
	if strategy.Less(short, short) {
		t.Error("Less failed: expected equal-length edges to be equivalent")
	}
}

func TestMidpointSubdivisionSort(t *testing.T) {
	strategy := MidpointSubdivision{}

	edges := []Edge{
		NewEdge(geometry.NewVector3(0, 0, 0), geometry.NewVector3(3, 0, 0)),
		NewEdge(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0)),
		NewEdge(geometry.NewVector3(0, 0, 0), geometry.NewVector3(2, 0, 0)),
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return strategy.Less(edges[i], edges[j])
	})

	for i := 1; i < len(edges); i++ {
		if edges[i-1].Length() > edges[i].Length() {
			t.Errorf("sort failed: edge %d longer than edge %d", i-1, i)
		}
	}
}

func TestMidpointDisplacementSubdivision(t *testing.T) {
	strategy := MidpointDisplacementSubdivision{
		Centroid: geometry.NewVector3(0, 0, 0),
		Amount:   1,
	}
	edge := NewEdge(geometry.NewVector3(2, 0, 0), geometry.NewVector3(2, 2, 0))

	points := strategy.ComputeSplitPoints(edge)
	if len(points) != 1 {
		t.Fatalf("ComputeSplitPoints failed: expected 1 point, got %d", len(points))
	}

	// Midpoint (2,1,0) displaced one unit away from the origin
	mid := geometry.NewVector3(2, 1, 0)
	expected := mid.Add(mid.Normalize())
	if points[0].Distance(expected) > 1e-10 {
		t.Errorf("ComputeSplitPoints failed: expected %v, got %v", expected, points[0])
	}
}
