package topology

import "fmt"

// EdgeKey packs a directed edge into a single comparable word: the
// source point index in the high 32 bits, the destination in the low
// 32. Point indices are assumed to fit in 32 bits, which caps meshes
// at ~4 billion unique points.
type EdgeKey uint64

// NewEdgeKey builds the key for the directed edge from -> to
func NewEdgeKey(from, to uint32) EdgeKey {
	return EdgeKey(uint64(from)<<32 | uint64(to))
}

// From returns the source point index
func (k EdgeKey) From() uint32 {
	return uint32(k >> 32)
}

// To returns the destination point index
func (k EdgeKey) To() uint32 {
	return uint32(k)
}

// Reverse returns the key for the same edge traversed the other way
func (k EdgeKey) Reverse() EdgeKey {
	return k<<32 | k>>32
}

func (k EdgeKey) String() string {
	return fmt.Sprintf("%d->%d", k.From(), k.To())
}

// Edges returns the face's three directed boundary edges in winding order
func (f Face) Edges() [3]EdgeKey {
	return [3]EdgeKey{
		NewEdgeKey(f[0], f[1]),
		NewEdgeKey(f[1], f[2]),
		NewEdgeKey(f[2], f[0]),
	}
}

// EdgeIndex gives O(1) lookup from a directed edge to the face that
// owns it. Edges are derived from the face table, never stored
// independently: a face's edges cannot change once the table is fixed.
type EdgeIndex struct {
	// ByFace holds the three edge keys of each face, aligned with the
	// face table.
	ByFace [][3]EdgeKey

	owners     map[EdgeKey]uint32
	duplicates []EdgeKey
}

// BuildEdgeIndex derives the directed edges of every face and indexes
// them by key. When the same directed edge occurs in more than one
// face (a non-manifold condition) the first occurrence wins and the
// key is recorded as a duplicate.
func BuildEdgeIndex(faces []Face) *EdgeIndex {
	ix := &EdgeIndex{
		ByFace: make([][3]EdgeKey, len(faces)),
		owners: make(map[EdgeKey]uint32, 3*len(faces)),
	}

	for i, face := range faces {
		edges := face.Edges()
		ix.ByFace[i] = edges
		for _, e := range edges {
			if _, taken := ix.owners[e]; taken {
				ix.duplicates = append(ix.duplicates, e)
				continue
			}
			ix.owners[e] = uint32(i)
		}
	}

	return ix
}

// Owner returns the index of the face owning the given directed edge
func (ix *EdgeIndex) Owner(k EdgeKey) (uint32, bool) {
	face, ok := ix.owners[k]
	return face, ok
}

// Duplicates returns the directed edges that occurred more than once
func (ix *EdgeIndex) Duplicates() []EdgeKey {
	return ix.duplicates
}
