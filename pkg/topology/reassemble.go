package topology

import (
	"slices"

	"github.com/mMerlin/stl2scad/pkg/geometry"
)

// Reassemble builds a standalone polyhedron from one surface of a
// larger object. The new point table contains exactly the points the
// surface's faces reference, ordered by ascending original index, and
// every face corner is remapped to its rank in that table. Face count
// and winding are unchanged.
func Reassemble(p *Polyhedron, s Surface, name string) *Polyhedron {
	used := make(map[uint32]struct{}, 3*len(s.FaceIDs))
	for _, fi := range s.FaceIDs {
		face := p.Faces[fi]
		used[face[0]] = struct{}{}
		used[face[1]] = struct{}{}
		used[face[2]] = struct{}{}
	}

	original := make([]uint32, 0, len(used))
	for idx := range used {
		original = append(original, idx)
	}
	slices.Sort(original)

	points := make([]geometry.Vector3, len(original))
	rank := make(map[uint32]uint32, len(original))
	for newIdx, oldIdx := range original {
		points[newIdx] = p.Points[oldIdx]
		rank[oldIdx] = uint32(newIdx)
	}

	faces := make([]Face, 0, len(s.FaceIDs))
	for _, fi := range s.FaceIDs {
		face := p.Faces[fi]
		faces = append(faces, Face{rank[face[0]], rank[face[1]], rank[face[2]]})
	}

	return &Polyhedron{Name: name, Points: points, Faces: faces}
}
