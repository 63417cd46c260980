package topology

import (
	"context"
	"errors"
	"testing"
)

func TestSplitClosedCube(t *testing.T) {
	poly := cubePolyhedron("cube")

	surfaces, err := Split(context.Background(), poly)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	if len(surfaces) != 1 {
		t.Fatalf("surface count failed: expected 1, got %d", len(surfaces))
	}
	if surfaces[0].FaceCount() != 12 {
		t.Errorf("face count failed: expected 12, got %d", surfaces[0].FaceCount())
	}
}

func TestSplitDisjointCubes(t *testing.T) {
	poly := twoCubePolyhedron("pair")

	surfaces, err := Split(context.Background(), poly)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	if len(surfaces) != 2 {
		t.Fatalf("surface count failed: expected 2, got %d", len(surfaces))
	}
	for i, s := range surfaces {
		if s.FaceCount() != 12 {
			t.Errorf("surface %d face count failed: expected 12, got %d", i, s.FaceCount())
		}
	}
}

func TestSplitPartitionsAllFaces(t *testing.T) {
	poly := twoCubePolyhedron("pair")

	surfaces, err := Split(context.Background(), poly)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	seen := make(map[uint32]int)
	total := 0
	for _, s := range surfaces {
		total += s.FaceCount()
		for _, face := range s.FaceIDs {
			seen[face]++
		}
	}

	if total != poly.FaceCount() {
		t.Errorf("summed face count failed: expected %d, got %d", poly.FaceCount(), total)
	}
	for face, count := range seen {
		if count != 1 {
			t.Errorf("face %d assigned to %d surfaces", face, count)
		}
	}
	for face := 0; face < poly.FaceCount(); face++ {
		if seen[uint32(face)] == 0 {
			t.Errorf("face %d not assigned to any surface", face)
		}
	}
}

func TestSplitOpenCube(t *testing.T) {
	poly := cubePolyhedron("leaky")
	poly.Faces = poly.Faces[:11] // drop one triangle, leaving an open boundary

	_, err := Split(context.Background(), poly)
	if err == nil {
		t.Fatal("Split of an open mesh succeeded, expected a structural error")
	}

	var openErr *OpenSurfaceError
	if !errors.As(err, &openErr) {
		t.Fatalf("error type failed: expected *OpenSurfaceError, got %T", err)
	}
	if openErr.Object != "leaky" {
		t.Errorf("error object failed: expected leaky, got %q", openErr.Object)
	}
}

func TestSplitOpenCubeKeepsSiblingsViable(t *testing.T) {
	// A broken object aborts only its own extraction; a fresh object
	// with the same tables still splits.
	broken := cubePolyhedron("broken")
	broken.Faces = broken.Faces[:11]
	if _, err := Split(context.Background(), broken); err == nil {
		t.Fatal("expected structural error for broken object")
	}

	intact := cubePolyhedron("intact")
	surfaces, err := Split(context.Background(), intact)
	if err != nil {
		t.Fatalf("Split of intact sibling failed: %v", err)
	}
	if len(surfaces) != 1 {
		t.Errorf("surface count failed: expected 1, got %d", len(surfaces))
	}
}

func TestSplitEmptyPolyhedron(t *testing.T) {
	poly := &Polyhedron{Name: "empty"}

	surfaces, err := Split(context.Background(), poly)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if len(surfaces) != 0 {
		t.Errorf("surface count failed: expected 0, got %d", len(surfaces))
	}
}

func TestSplitHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Split(ctx, cubePolyhedron("cube"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("cancellation failed: expected context.Canceled, got %v", err)
	}
}

func TestSplitDeterministicOrder(t *testing.T) {
	poly := twoCubePolyhedron("pair")

	first, err := Split(context.Background(), poly)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	second, err := Split(context.Background(), poly)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	for i := range first {
		if len(first[i].FaceIDs) != len(second[i].FaceIDs) {
			t.Fatalf("surface %d size differs between runs", i)
		}
		for j := range first[i].FaceIDs {
			if first[i].FaceIDs[j] != second[i].FaceIDs[j] {
				t.Errorf("surface %d face %d differs: %d vs %d",
					i, j, first[i].FaceIDs[j], second[i].FaceIDs[j])
			}
		}
	}
	// The first cube's faces come first because seeds scan in
	// ascending face order.
	if first[0].FaceIDs[0] != 0 {
		t.Errorf("first surface should start at face 0, got %d", first[0].FaceIDs[0])
	}
}
