package topology

import (
	"fmt"

	"github.com/mMerlin/stl2scad/pkg/geometry"
)

// DefaultPrecision is the number of significant digits used for the
// canonical point encoding. Nine digits collapses the noise of
// single-precision STL coordinates without merging genuinely distinct
// nearby points.
const DefaultPrecision = 9

// EncodePoint formats a point as "[x, y, z]" with each coordinate
// rendered to the given number of significant digits. The encoding is
// both the vertex identity used for deduplication and the literal
// emitted into .scad output: two points are the same point iff their
// encodings are byte-identical.
func EncodePoint(p geometry.Vector3, precision int) string {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	return fmt.Sprintf("[%.*g, %.*g, %.*g]", precision, p.X, precision, p.Y, precision, p.Z)
}

// Raw converts a triangle list into a polyhedron with no vertex
// sharing: three fresh points per face, faces numbered straight
// through the point table.
func Raw(name string, triangles []geometry.Triangle) *Polyhedron {
	points := make([]geometry.Vector3, 0, 3*len(triangles))
	faces := make([]Face, 0, len(triangles))

	for _, tri := range triangles {
		n := uint32(len(points))
		points = append(points, tri.V1, tri.V2, tri.V3)
		faces = append(faces, Face{n, n + 1, n + 2})
	}

	return &Polyhedron{Name: name, Points: points, Faces: faces}
}

// Dedup converts a triangle list into a polyhedron with a unique point
// table. Vertices whose canonical encodings match share one table row;
// the stored coordinates are those of the first occurrence, never an
// average. Face order and winding are preserved.
//
// A triangle whose corners collapse onto fewer than three distinct
// points is kept, counted in DegenerateFaces, and left for the
// validator to flag.
func Dedup(name string, triangles []geometry.Triangle, precision int) *Polyhedron {
	index := make(map[string]uint32, 3*len(triangles))
	points := make([]geometry.Vector3, 0, 3*len(triangles)/2)
	faces := make([]Face, 0, len(triangles))
	degenerate := 0

	for _, tri := range triangles {
		var face Face
		for i, v := range tri.Vertices() {
			key := EncodePoint(v, precision)
			idx, ok := index[key]
			if !ok {
				idx = uint32(len(points))
				points = append(points, v)
				index[key] = idx
			}
			face[i] = idx
		}
		if face[0] == face[1] || face[1] == face[2] || face[2] == face[0] {
			degenerate++
		}
		faces = append(faces, face)
	}

	return &Polyhedron{
		Name:            name,
		Points:          points,
		Faces:           faces,
		DegenerateFaces: degenerate,
	}
}
