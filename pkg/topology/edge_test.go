package topology

import "testing"

func TestEdgeKeyRoundTrip(t *testing.T) {
	key := NewEdgeKey(12, 34)

	if key.From() != 12 {
		t.Errorf("From failed: expected 12, got %d", key.From())
	}
	if key.To() != 34 {
		t.Errorf("To failed: expected 34, got %d", key.To())
	}
	if key == NewEdgeKey(34, 12) {
		t.Error("direction lost: key equals its own reverse")
	}
}

func TestEdgeKeyReverse(t *testing.T) {
	key := NewEdgeKey(7, 9)
	reverse := key.Reverse()

	if reverse.From() != 9 || reverse.To() != 7 {
		t.Errorf("Reverse failed: expected 9->7, got %s", reverse)
	}
	if reverse.Reverse() != key {
		t.Errorf("double Reverse failed: expected %s, got %s", key, reverse.Reverse())
	}
}

func TestFaceEdges(t *testing.T) {
	face := Face{1, 2, 3}
	edges := face.Edges()

	expected := [3]EdgeKey{NewEdgeKey(1, 2), NewEdgeKey(2, 3), NewEdgeKey(3, 1)}
	if edges != expected {
		t.Errorf("Edges failed: expected %v, got %v", expected, edges)
	}
}

func TestBuildEdgeIndexOwners(t *testing.T) {
	ix := BuildEdgeIndex(cubeFaces)

	if len(ix.ByFace) != len(cubeFaces) {
		t.Fatalf("ByFace length failed: expected %d, got %d", len(cubeFaces), len(ix.ByFace))
	}

	for i, face := range cubeFaces {
		for _, e := range face.Edges() {
			owner, ok := ix.Owner(e)
			if !ok {
				t.Fatalf("edge %s of face %d not indexed", e, i)
			}
			if owner != uint32(i) {
				t.Errorf("owner of %s failed: expected %d, got %d", e, i, owner)
			}
		}
	}

	if len(ix.Duplicates()) != 0 {
		t.Errorf("Duplicates failed: expected none, got %v", ix.Duplicates())
	}
}

func TestBuildEdgeIndexMissingEdge(t *testing.T) {
	ix := BuildEdgeIndex(cubeFaces)

	if _, ok := ix.Owner(NewEdgeKey(100, 101)); ok {
		t.Error("Owner returned a face for an edge that does not exist")
	}
}

func TestBuildEdgeIndexDuplicates(t *testing.T) {
	faces := []Face{{0, 1, 2}, {0, 1, 3}} // both contribute edge 0->1
	ix := BuildEdgeIndex(faces)

	if len(ix.Duplicates()) != 1 {
		t.Fatalf("Duplicates failed: expected 1, got %d", len(ix.Duplicates()))
	}
	if ix.Duplicates()[0] != NewEdgeKey(0, 1) {
		t.Errorf("duplicate edge failed: expected 0->1, got %s", ix.Duplicates()[0])
	}

	// First occurrence keeps ownership.
	owner, ok := ix.Owner(NewEdgeKey(0, 1))
	if !ok || owner != 0 {
		t.Errorf("owner of duplicated edge failed: expected 0, got %d (found=%v)", owner, ok)
	}
}
