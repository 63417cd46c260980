package topology

// Report holds the findings of the manifold integrity checks. All
// findings are diagnostics: the checks never abort processing, and a
// defective object can still be split and reassembled on a best-effort
// basis.
type Report struct {
	// Vertex-usage check. A closed triangulated manifold references
	// every point from at least 3 faces.
	MinVertexRefs   int
	MaxVertexRefs   int
	UnderReferenced int // points used by fewer than 3 faces
	OrphanVertices  int // points used by no face at all

	// Edge-reuse check over the directed edges of all faces.
	DuplicateEdges int // extra occurrences of already-seen directed edges
	MissingReverse int // directed edges with no reverse-direction partner

	// Carried over from deduplication.
	DegenerateFaces int
}

// VertexRefsOK reports whether every point is referenced often enough
// to close a triangulated surface
func (r Report) VertexRefsOK() bool {
	return r.MinVertexRefs >= 3
}

// EdgesOK reports whether the directed edges pair up as a properly
// oriented closed surface requires
func (r Report) EdgesOK() bool {
	return r.DuplicateEdges == 0 && r.MissingReverse == 0
}

// Manifold reports whether no defect was found at all
func (r Report) Manifold() bool {
	return r.VertexRefsOK() && r.EdgesOK() && r.DegenerateFaces == 0
}

// Validate runs the vertex-usage and edge-reuse checks against the
// whole (possibly still merged) face set of the polyhedron. It is
// independent of surface extraction and may run before, after, or
// instead of it.
func Validate(p *Polyhedron) Report {
	r := Report{DegenerateFaces: p.DegenerateFaces}

	refs := make([]int, len(p.Points))
	for _, face := range p.Faces {
		refs[face[0]]++
		refs[face[1]]++
		refs[face[2]]++
	}
	for i, count := range refs {
		if i == 0 || count < r.MinVertexRefs {
			r.MinVertexRefs = count
		}
		if count > r.MaxVertexRefs {
			r.MaxVertexRefs = count
		}
		if count < 3 {
			r.UnderReferenced++
			if count == 0 {
				r.OrphanVertices++
			}
		}
	}

	counts := make(map[EdgeKey]int, 3*len(p.Faces))
	for _, face := range p.Faces {
		for _, e := range face.Edges() {
			counts[e]++
		}
	}
	for e, count := range counts {
		if count > 1 {
			// Directed edges must be unique on an oriented manifold.
			r.DuplicateEdges += count - 1
		}
		if counts[e.Reverse()] == 0 {
			r.MissingReverse += count
		}
	}

	return r
}
