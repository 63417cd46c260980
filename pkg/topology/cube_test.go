package topology

import (
	"github.com/mMerlin/stl2scad/pkg/geometry"
)

// Unit cube with outward-facing windings: every directed edge has
// exactly one reverse-direction partner and every vertex is used by at
// least 3 faces.
var cubeFaces = []Face{
	{0, 2, 1}, {0, 3, 2}, // bottom (z=0)
	{4, 5, 6}, {4, 6, 7}, // top (z=1)
	{0, 1, 5}, {0, 5, 4}, // front (y=0)
	{2, 3, 7}, {2, 7, 6}, // back (y=1)
	{0, 4, 7}, {0, 7, 3}, // left (x=0)
	{1, 2, 6}, {1, 6, 5}, // right (x=1)
}

func cubePoints(origin geometry.Vector3) []geometry.Vector3 {
	corners := [8][3]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	points := make([]geometry.Vector3, 8)
	for i, c := range corners {
		points[i] = geometry.NewVector3(origin.X+c[0], origin.Y+c[1], origin.Z+c[2])
	}
	return points
}

func cubeTriangles(origin geometry.Vector3) []geometry.Triangle {
	points := cubePoints(origin)
	triangles := make([]geometry.Triangle, 0, len(cubeFaces))
	for _, f := range cubeFaces {
		triangles = append(triangles, geometry.NewTriangle(
			geometry.Vector3{},
			points[f[0]], points[f[1]], points[f[2]],
		))
	}
	return triangles
}

func cubePolyhedron(name string) *Polyhedron {
	faces := make([]Face, len(cubeFaces))
	copy(faces, cubeFaces)
	return &Polyhedron{
		Name:   name,
		Points: cubePoints(geometry.Vector3{}),
		Faces:  faces,
	}
}

// twoCubePolyhedron merges two disconnected unit cubes into one
// object: 16 points, 24 faces, no shared vertices or edges.
func twoCubePolyhedron(name string) *Polyhedron {
	points := append(cubePoints(geometry.Vector3{}), cubePoints(geometry.NewVector3(5, 0, 0))...)
	faces := make([]Face, 0, 2*len(cubeFaces))
	faces = append(faces, cubeFaces...)
	for _, f := range cubeFaces {
		faces = append(faces, Face{f[0] + 8, f[1] + 8, f[2] + 8})
	}
	return &Polyhedron{Name: name, Points: points, Faces: faces}
}
