package aig

// ObjID indexes an Object inside a Network's dense arena. ID 0 is always
// the constant-1 sentinel; IDs are assigned append-only and never change
// once handed out (see Network.Cleanup for how dead objects are retired
// without disturbing IDs).
type ObjID uint32

// Edge is a signed reference to an Object: a (node, inversion-bit) pair.
// Every AIG "pointer" in this package is an Edge, never a bare ObjID,
// so that the inverter bit travels with the reference instead of living
// on the pointed-to node.
type Edge struct {
	ID  ObjID
	Inv bool
}

// Not returns the edge with its inversion bit flipped.
func (e Edge) Not() Edge { return Edge{ID: e.ID, Inv: !e.Inv} }

// NotCond flips the inversion bit iff c is true.
func (e Edge) NotCond(c bool) Edge {
	if c {
		return e.Not()
	}
	return e
}

// lit packs the edge into AIGER's literal encoding (2*id + inversion bit).
// Ordering edges by lit is exactly "by id, then by inversion bit", which
// is the stable canonicalisation key the structural-hash AND constructor
// requires.
func (e Edge) lit() uint64 { return uint64(e.ID)<<1 | b2u64(e.Inv) }

func b2u64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
