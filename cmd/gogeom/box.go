package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gogeom/pkg/geometry"
	"github.com/philipparndt/gogeom/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	boxCenterX, boxCenterY, boxCenterZ float64
	boxExtentX, boxExtentY, boxExtentZ float64
	boxExtent                          float64
	boxName                            string
	boxASCII                           bool
)

var boxCmd = &cobra.Command{
	Use:   "box [output file]",
	Short: "Generate a box mesh as an STL file",
	Long: `Construct an axis-aligned box from a center point and half-extent and
write it as a closed STL mesh of 8 vertices and 12 triangles.`,
	Args: cobra.ExactArgs(1),
	Run:  runBox,
}

func init() {
	rootCmd.AddCommand(boxCmd)

	boxCmd.Flags().Float64Var(&boxCenterX, "cx", 0.0, "X coordinate of the box center")
	boxCmd.Flags().Float64Var(&boxCenterY, "cy", 0.0, "Y coordinate of the box center")
	boxCmd.Flags().Float64Var(&boxCenterZ, "cz", 0.0, "Z coordinate of the box center")
	boxCmd.Flags().Float64VarP(&boxExtent, "extent", "e", 1.0, "Uniform half-extent")
	boxCmd.Flags().Float64Var(&boxExtentX, "ex", 0.0, "Half-extent along X (overrides --extent)")
	boxCmd.Flags().Float64Var(&boxExtentY, "ey", 0.0, "Half-extent along Y (overrides --extent)")
	boxCmd.Flags().Float64Var(&boxExtentZ, "ez", 0.0, "Half-extent along Z (overrides --extent)")
	boxCmd.Flags().StringVarP(&boxName, "name", "n", "box", "Solid name in the STL output")
	boxCmd.Flags().BoolVarP(&boxASCII, "ascii", "a", false, "Write ASCII STL instead of binary")

	boxCmd.MarkFlagsRequiredTogether("ex", "ey", "ez")
}

func runBox(cmd *cobra.Command, args []string) {
	filename := args[0]

	center := geometry.NewVector3(boxCenterX, boxCenterY, boxCenterZ)
	var box *geometry.AABB
	if cmd.Flags().Changed("ex") {
		box = geometry.NewAABBFromExtent(center, geometry.NewVector3(boxExtentX, boxExtentY, boxExtentZ))
	} else {
		box = geometry.NewAABB(center, boxExtent)
	}

	model := stl.NewBoxModel(boxName, box)

	if err := stl.Write(model, filename, boxASCII); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing STL file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d triangles)\n", filename, model.TriangleCount())
	fmt.Printf("  Min: (%.6f, %.6f, %.6f)\n", box.Min().X, box.Min().Y, box.Min().Z)
	fmt.Printf("  Max: (%.6f, %.6f, %.6f)\n", box.Max().X, box.Max().Y, box.Max().Z)
}
