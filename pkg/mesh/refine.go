package mesh

import (
	"sort"

	"github.com/philipparndt/gogeom/pkg/geometry"
	"github.com/philipparndt/gogeom/pkg/stl"
)

// Refine subdivides every triangle of the model for the given number of
// passes. Each pass splits every unique edge at the strategy's split point
// and re-emits each triangle as four, so shared edges stay watertight.
// Face normals are recomputed from the winding order.
func Refine(model *stl.Model, strategy SubdivisionStrategy, passes int) *stl.Model {
	result := model
	for i := 0; i < passes; i++ {
		result = refineOnce(result, strategy)
	}
	return result
}

// refineOnce performs a single one-to-four refinement pass
func refineOnce(model *stl.Model, strategy SubdivisionStrategy) *stl.Model {
	// Collect the unique edges of the model
	seen := make(map[edgeKey]bool)
	edges := make([]Edge, 0, len(model.Triangles)*3)

	for _, triangle := range model.Triangles {
		for _, edge := range triangleEdges(triangle) {
			key := keyFor(edge)
			if seen[key] {
				continue
			}
			seen[key] = true
			edges = append(edges, edge)
		}
	}

	// Process edges in the order defined by the strategy
	sort.SliceStable(edges, func(i, j int) bool {
		return strategy.Less(edges[i], edges[j])
	})

	splits := make(map[edgeKey]geometry.Vector3, len(edges))
	for _, edge := range edges {
		points := strategy.ComputeSplitPoints(edge)
		if len(points) == 0 {
			continue
		}
		// The one-to-four scheme consumes a single split point per edge
		splits[keyFor(edge)] = points[0]
	}

	result := stl.NewModel(model.Name)
	for _, triangle := range model.Triangles {
		ab, okAB := splits[keyFor(NewEdge(triangle.V1, triangle.V2))]
		bc, okBC := splits[keyFor(NewEdge(triangle.V2, triangle.V3))]
		ca, okCA := splits[keyFor(NewEdge(triangle.V3, triangle.V1))]
		if !okAB || !okBC || !okCA {
			result.AddTriangle(triangle)
			continue
		}

		result.AddFace(triangle.V1, ab, ca, nil)
		result.AddFace(ab, triangle.V2, bc, nil)
		result.AddFace(ca, bc, triangle.V3, nil)
		result.AddFace(ab, bc, ca, nil)
	}
	return result
}

// triangleEdges returns the three edges of a triangle in winding order
func triangleEdges(t geometry.Triangle) [3]Edge {
	return [3]Edge{
		NewEdge(t.V1, t.V2),
		NewEdge(t.V2, t.V3),
		NewEdge(t.V3, t.V1),
	}
}
