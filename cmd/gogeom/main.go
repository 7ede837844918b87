package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gogeom/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gogeom",
	Short: "A CLI toolkit for 3D bounding boxes and mesh refinement",
	Long: `gogeom is a command-line toolkit for 3D geometry built around STL files.
It constructs axis-aligned bounding boxes, runs spatial queries (ray casting,
sphere and box overlap) against model bounds, and refines triangle meshes
with pluggable edge-subdivision strategies.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
