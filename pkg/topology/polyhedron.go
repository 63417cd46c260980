// Package topology converts triangle soups into closed polyhedron
// descriptions: it deduplicates vertex coordinates, indexes directed
// edges, splits disjoint surfaces and validates manifold integrity.
package topology

import (
	"github.com/mMerlin/stl2scad/pkg/geometry"
)

// Face is an ordered, oriented triple of indices into a point table.
// The winding defines three directed boundary edges (v0,v1), (v1,v2), (v2,v0).
type Face [3]uint32

// Polyhedron is a point table plus a face table referencing it.
// Both tables are built once and treated as immutable afterwards.
type Polyhedron struct {
	Name   string
	Points []geometry.Vector3
	Faces  []Face

	// DegenerateFaces counts faces whose corners collapsed to fewer than
	// three distinct points during deduplication. They are kept in the
	// face table and flagged by the validator.
	DegenerateFaces int
}

// PointCount returns the number of rows in the point table
func (p *Polyhedron) PointCount() int {
	return len(p.Points)
}

// FaceCount returns the number of rows in the face table
func (p *Polyhedron) FaceCount() int {
	return len(p.Faces)
}
