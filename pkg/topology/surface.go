package topology

import (
	"context"
	"fmt"
	"slices"
)

// Surface is one maximal set of faces connected through shared edges:
// a single closed piece of the mesh. Face indices refer to the owning
// polyhedron's face table and are kept in ascending order.
type Surface struct {
	FaceIDs []uint32
}

// FaceCount returns the number of faces on the surface
func (s Surface) FaceCount() int {
	return len(s.FaceIDs)
}

// OpenSurfaceError reports a directed edge with no reverse-direction
// partner anywhere in the object: an open boundary or non-manifold
// defect. Extraction of the owning object aborts; other objects are
// unaffected.
type OpenSurfaceError struct {
	Object string
	Edge   EdgeKey
}

func (e *OpenSurfaceError) Error() string {
	return fmt.Sprintf("object %q is not a closed surface: edge %s has no reverse-direction partner",
		e.Object, e.Edge)
}

// cancelCheckInterval is how many worklist entries are processed
// between context polls during surface growth.
const cancelCheckInterval = 4096

// Split partitions the polyhedron's faces into maximal edge-connected
// surfaces. Every face ends up in exactly one surface; the union of
// all surfaces is the original face set. Seeds are taken in ascending
// face order, so surface numbering is stable for identical input.
func Split(ctx context.Context, p *Polyhedron) ([]Surface, error) {
	ix := BuildEdgeIndex(p.Faces)
	assigned := make([]bool, len(p.Faces))

	var surfaces []Surface
	for seed := range p.Faces {
		if assigned[seed] {
			continue
		}
		surface, err := growSurface(ctx, p, ix, uint32(seed), assigned)
		if err != nil {
			return nil, err
		}
		surfaces = append(surfaces, surface)
	}

	return surfaces, nil
}

// growSurface collects every face reachable from the seed by chains of
// shared edges. The worklist is a FIFO of directed edges contributed
// by accepted faces; for each entry the reverse-direction edge either
// belongs to a face already on the surface (skip) or names the
// adjacent face to accept. The worklist only grows when a new face is
// accepted, so it terminates.
func growSurface(ctx context.Context, p *Polyhedron, ix *EdgeIndex, seed uint32, assigned []bool) (Surface, error) {
	inSurface := make(map[uint32]struct{})
	onSurface := make(map[EdgeKey]struct{})
	var worklist []EdgeKey

	accept := func(face uint32) {
		if _, ok := inSurface[face]; ok {
			return
		}
		inSurface[face] = struct{}{}
		assigned[face] = true
		for _, e := range ix.ByFace[face] {
			onSurface[e] = struct{}{}
			worklist = append(worklist, e)
		}
	}

	accept(seed)
	for head := 0; head < len(worklist); head++ {
		if head%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return Surface{}, ctx.Err()
			default:
			}
		}

		reverse := worklist[head].Reverse()
		if _, ok := onSurface[reverse]; ok {
			// The adjacent face already contributed its edges.
			continue
		}
		owner, ok := ix.Owner(reverse)
		if !ok {
			return Surface{}, &OpenSurfaceError{Object: p.Name, Edge: worklist[head]}
		}
		accept(owner)
	}

	ids := make([]uint32, 0, len(inSurface))
	for face := range inSurface {
		ids = append(ids, face)
	}
	slices.Sort(ids)

	return Surface{FaceIDs: ids}, nil
}
