package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gogeom/pkg/analysis"
	"github.com/philipparndt/gogeom/pkg/mesh"
	"github.com/philipparndt/gogeom/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	subdividePasses   int
	subdivideStrategy string
	subdivideAmount   float64
	subdivideASCII    bool
)

var subdivideCmd = &cobra.Command{
	Use:   "subdivide [input file] [output file]",
	Short: "Refine the triangles of an STL file",
	Long: `Refine an STL mesh by splitting every edge with a subdivision strategy.
Each pass replaces every triangle with four.

Strategies:
  midpoint      split each edge at its midpoint (default)
  displacement  split at the midpoint displaced away from the model centroid
                by --amount, inflating or denting the surface`,
	Args: cobra.ExactArgs(2),
	Run:  runSubdivide,
}

func init() {
	rootCmd.AddCommand(subdivideCmd)

	subdivideCmd.Flags().IntVarP(&subdividePasses, "passes", "p", 1, "Number of refinement passes")
	subdivideCmd.Flags().StringVarP(&subdivideStrategy, "strategy", "s", "midpoint", "Subdivision strategy (midpoint, displacement)")
	subdivideCmd.Flags().Float64Var(&subdivideAmount, "amount", 0.0, "Displacement amount for the displacement strategy")
	subdivideCmd.Flags().BoolVarP(&subdivideASCII, "ascii", "a", false, "Write ASCII STL instead of binary")
}

func runSubdivide(cmd *cobra.Command, args []string) {
	inputFile := args[0]
	outputFile := args[1]

	model, err := stl.Parse(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	var strategy mesh.SubdivisionStrategy
	switch subdivideStrategy {
	case "midpoint":
		strategy = mesh.MidpointSubdivision{}
	case "displacement":
		strategy = mesh.MidpointDisplacementSubdivision{
			Centroid: model.BoundingBox().Center(),
			Amount:   subdivideAmount,
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown strategy %q\n", subdivideStrategy)
		os.Exit(1)
	}

	before := analysis.AnalyzeModel(model)
	refined := mesh.Refine(model, strategy, subdividePasses)
	after := analysis.AnalyzeModel(refined)

	if err := stl.Write(refined, outputFile, subdivideASCII); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing STL file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Refined %s (%d passes, %s strategy)\n", inputFile, subdividePasses, subdivideStrategy)
	fmt.Println("====================")
	fmt.Printf("Triangles: %d -> %d\n", before.TriangleCount, after.TriangleCount)
	fmt.Printf("Edges: %d -> %d\n", before.EdgeCount, after.EdgeCount)
	fmt.Printf("Min edge length: %.6f -> %.6f units\n", before.MinEdgeLength, after.MinEdgeLength)
	fmt.Printf("Max edge length: %.6f -> %.6f units\n", before.MaxEdgeLength, after.MaxEdgeLength)
	fmt.Printf("Surface area: %.6f -> %.6f square units\n", before.SurfaceArea, after.SurfaceArea)
	fmt.Printf("\nWrote %s\n", outputFile)
}
