package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mMerlin/stl2scad/version"
)

var rootCmd = &cobra.Command{
	Use:   "stl2scad",
	Short: "Convert STL models to OpenSCAD polyhedron modules",
	Long: `stl2scad converts STL (Stereolithography) files into OpenSCAD scripts.
It collapses duplicate mesh vertices into a minimal point table, can check the
mesh for manifold integrity problems, and can split a model that contains
several disjoint closed surfaces into one module file per surface.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
