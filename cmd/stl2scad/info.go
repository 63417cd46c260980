package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mMerlin/stl2scad/pkg/scad"
	"github.com/mMerlin/stl2scad/pkg/stl"
	"github.com/mMerlin/stl2scad/pkg/topology"
)

var infoAnalyze bool

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Show STL mesh properties",
	Long:  "Display size, bounding box and point statistics for an STL file without converting it.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVarP(&infoAnalyze, "analyze", "a", false, "Also run the manifold integrity checks")
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	base := scad.ModuleName(model.Name, filepath.Base(filename))
	poly := topology.Dedup(base, model.Triangles, topology.DefaultPrecision)
	bbox := model.BoundingBox()

	fmt.Println("STL Mesh Properties")
	fmt.Println("===================")
	fmt.Printf("Name:           %s\n", base)
	fmt.Printf("Facets:         %d\n", model.TriangleCount())
	fmt.Printf("Vertexes:       %d (%d unique)\n", model.VertexCount(), poly.PointCount())
	fmt.Printf("Surface area:   %.6f\n", model.SurfaceArea())
	fmt.Printf("Bounding box:   %s to %s\n",
		topology.EncodePoint(bbox.Min, 6), topology.EncodePoint(bbox.Max, 6))
	fmt.Printf("Size:           %s\n", topology.EncodePoint(bbox.Size(), 6))

	if bbox.Min.X <= 0 || bbox.Min.Y <= 0 || bbox.Min.Z <= 0 {
		fmt.Println("\nNote: not a standard STL source file; not all points are in the positive quadrant")
	}

	if infoAnalyze {
		report := topology.Validate(poly)
		fmt.Println("\nIntegrity Checks")
		fmt.Println("----------------")
		fmt.Printf("Vertex references: %d min, %d max\n", report.MinVertexRefs, report.MaxVertexRefs)
		if report.OrphanVertices > 0 {
			fmt.Printf("Orphan vertexes:   %d\n", report.OrphanVertices)
		}
		if report.DuplicateEdges > 0 {
			fmt.Printf("Duplicate edges:   %d\n", report.DuplicateEdges)
		}
		if report.MissingReverse > 0 {
			fmt.Printf("Missing reverses:  %d\n", report.MissingReverse)
		}
		if report.DegenerateFaces > 0 {
			fmt.Printf("Degenerate faces:  %d\n", report.DegenerateFaces)
		}
		if report.Manifold() {
			fmt.Println("No defects found: the mesh is a closed manifold surface")
		}
	}
}
