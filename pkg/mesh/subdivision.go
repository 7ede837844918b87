package mesh

import "github.com/philipparndt/gogeom/pkg/geometry"

// SubdivisionStrategy decides where an edge is split during refinement and
// in which order edges are processed.
type SubdivisionStrategy interface {
	// ComputeSplitPoints returns the ordered points to splice into the
	// edge. Strategies may return more than one point.
	ComputeSplitPoints(edge Edge) []geometry.Vector3

	// Less reports whether edge a should be processed before edge b.
	// It must be a strict weak ordering.
	Less(a, b Edge) bool
}

// MidpointSubdivision splits every edge at its midpoint and processes
// edges shortest-first.
type MidpointSubdivision struct{}

// ComputeSplitPoints returns the edge midpoint as the single split point
func (MidpointSubdivision) ComputeSplitPoints(edge Edge) []geometry.Vector3 {
	return []geometry.Vector3{edge.MidPoint()}
}

// Less orders edges by ascending length
func (MidpointSubdivision) Less(a, b Edge) bool {
	return a.Length() < b.Length()
}

// MidpointDisplacementSubdivision splits each edge at its midpoint
// displaced away from a reference centroid, inflating (positive amount) or
// denting (negative amount) the refined surface.
type MidpointDisplacementSubdivision struct {
	Centroid geometry.Vector3
	Amount   float64
}

// ComputeSplitPoints returns the displaced midpoint as the single split point
func (s MidpointDisplacementSubdivision) ComputeSplitPoints(edge Edge) []geometry.Vector3 {
	mid := edge.MidPoint()
	dir := mid.Sub(s.Centroid).Normalize()
	return []geometry.Vector3{mid.Add(dir.Mul(s.Amount))}
}

// Less orders edges by ascending length
func (MidpointDisplacementSubdivision) Less(a, b Edge) bool {
	return a.Length() < b.Length()
}
