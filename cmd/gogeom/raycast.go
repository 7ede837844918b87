package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gogeom/pkg/analysis"
	"github.com/philipparndt/gogeom/pkg/geometry"
	"github.com/philipparndt/gogeom/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	rayOriginX, rayOriginY, rayOriginZ float64
	rayDirX, rayDirY, rayDirZ          float64
	rayMinDist, rayMaxDist             float64
	raySphereRadius                    float64
)

var raycastCmd = &cobra.Command{
	Use:   "raycast [file]",
	Short: "Cast a ray against the bounding box of an STL file",
	Long: `Cast a ray against the model's axis-aligned bounding box and report the
entry point, the estimated surface normal there, and the nearest model
vertex. With --sphere-radius, additionally test a sphere centered at the
ray origin against the box.`,
	Args: cobra.ExactArgs(1),
	Run:  runRaycast,
}

func init() {
	rootCmd.AddCommand(raycastCmd)

	raycastCmd.Flags().Float64Var(&rayOriginX, "ox", 0.0, "X coordinate of the ray origin")
	raycastCmd.Flags().Float64Var(&rayOriginY, "oy", 0.0, "Y coordinate of the ray origin")
	raycastCmd.Flags().Float64Var(&rayOriginZ, "oz", 0.0, "Z coordinate of the ray origin")
	raycastCmd.Flags().Float64Var(&rayDirX, "dx", 0.0, "X component of the ray direction")
	raycastCmd.Flags().Float64Var(&rayDirY, "dy", 0.0, "Y component of the ray direction")
	raycastCmd.Flags().Float64Var(&rayDirZ, "dz", 0.0, "Z component of the ray direction")
	raycastCmd.Flags().Float64Var(&rayMinDist, "min", 0.0, "Minimum hit distance along the ray")
	raycastCmd.Flags().Float64Var(&rayMaxDist, "max", 1e9, "Maximum hit distance along the ray")
	raycastCmd.Flags().Float64VarP(&raySphereRadius, "sphere-radius", "r", 0.0, "Also test a sphere of this radius at the ray origin")

	raycastCmd.MarkFlagsRequiredTogether("dx", "dy", "dz")
}

func runRaycast(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	direction := geometry.NewVector3(rayDirX, rayDirY, rayDirZ)
	if direction.Length() == 0 {
		fmt.Fprintln(os.Stderr, "Error: ray direction must be non-zero")
		os.Exit(1)
	}

	origin := geometry.NewVector3(rayOriginX, rayOriginY, rayOriginZ)
	ray := geometry.NewRay(origin, direction)
	bbox := model.BoundingBox()

	fmt.Println("Ray Cast")
	fmt.Println("====================")
	fmt.Printf("Origin: %s\n", analysis.FormatVector(ray.Origin))
	fmt.Printf("Direction: %s\n", analysis.FormatVector(ray.Direction))
	fmt.Printf("Box Min: %s\n", analysis.FormatVector(bbox.Min()))
	fmt.Printf("Box Max: %s\n\n", analysis.FormatVector(bbox.Max()))

	hit, ok := bbox.IntersectsRay(ray, rayMinDist, rayMaxDist)
	if !ok {
		fmt.Println("Result: no intersection")
	} else {
		normal := bbox.NormalForPoint(hit)
		vertex, vertexDist := analysis.FindNearestVertex(model, hit)

		fmt.Println("Result: hit")
		fmt.Printf("  Entry Point: %s\n", analysis.FormatVector(hit))
		fmt.Printf("  Entry Distance: %s\n", analysis.FormatMeasurement(origin.Distance(hit), "units"))
		fmt.Printf("  Surface Normal: %s\n", analysis.FormatVector(normal))
		fmt.Printf("  Nearest Vertex: %s (%s away)\n",
			analysis.FormatVector(vertex), analysis.FormatMeasurement(vertexDist, "units"))
	}

	if raySphereRadius > 0 {
		sphere := geometry.NewSphere(origin, raySphereRadius)
		fmt.Printf("\nSphere at origin, radius %.6f: ", sphere.Radius)
		if bbox.IntersectsSphere(sphere.Center, sphere.Radius) {
			fmt.Println("intersects the bounding box")
		} else {
			fmt.Println("no intersection")
		}
	}
}
