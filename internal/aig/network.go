package aig

import "github.com/golang/glog"

// Register pairs a latch's output (Bo/LO) and input (Bi/LI) object ids.
// CreateLatch returns one of these; it is not itself a stored Object (see
// the Kind doc comment).
type Register struct {
	Lo ObjID
	Li ObjID
}

// Network owns every Object in a sequential AIG: the constant-1 sentinel,
// the PI/PO/LO/LI terminal vectors, and the internal And nodes. Objects are
// append-only; "deletion" only ever happens via cleanup.
type Network struct {
	objs []Object

	pis []ObjID
	pos []ObjID
	los []ObjID // parallel to lis; register r is (los[r], lis[r])
	lis []ObjID

	strash map[uint64]ObjID // canonical fanin-pair key -> And ObjID

	trackingFanout bool
}

// NewNetwork allocates an empty network with only the constant-1 sentinel.
func NewNetwork() *Network {
	n := &Network{strash: make(map[uint64]ObjID, 64)}
	n.objs = append(n.objs, Object{ID: 0, Kind: KindConst1, PioNum: -1, fPhase: true})
	return n
}

func (n *Network) obj(id ObjID) *Object { return &n.objs[id] }

// Obj exposes a read-only view of an object by id.
func (n *Network) Obj(id ObjID) *Object { return &n.objs[id] }

// NumObjs returns the size of the object arena (including dead tombstones
// and the constant-1 sentinel).
func (n *Network) NumObjs() int { return len(n.objs) }

// PIs, POs, LOs, LIs return the ordered terminal vectors.
func (n *Network) PIs() []ObjID { return n.pis }
func (n *Network) POs() []ObjID { return n.pos }
func (n *Network) LOs() []ObjID { return n.los }
func (n *Network) LIs() []ObjID { return n.lis }

// NumRegs is the number of registers (latches) currently in the network.
func (n *Network) NumRegs() int { return len(n.los) }

// Const1 returns the edge for logical true.
func (n *Network) Const1() Edge { return Edge{ID: 0, Inv: false} }

// Const0 returns the edge for logical false.
func (n *Network) Const0() Edge { return Edge{ID: 0, Inv: true} }

func (n *Network) appendObj(o Object) ObjID {
	id := ObjID(len(n.objs))
	o.ID = id
	n.objs = append(n.objs, o)
	return id
}

// CreatePi appends a new primary input.
func (n *Network) CreatePi() Edge {
	id := n.appendObj(Object{Kind: KindPi, PioNum: len(n.pis)})
	n.pis = append(n.pis, id)
	return Edge{ID: id}
}

// CreatePo appends a new primary output driven by e. A caller may create
// POs with an unattached driver and fill it in later; pass the zero Edge
// and use SetFanin0 once the driver literal is known.
func (n *Network) CreatePo(e Edge) Edge {
	id := n.appendObj(Object{Kind: KindPo, PioNum: len(n.pos), fanin0: e})
	n.pos = append(n.pos, id)
	return Edge{ID: id}
}

// CreateBi appends a low-level latch-input (LI) terminal with no fanin
// attached yet. CreateLatch is the normal way to create a paired register.
func (n *Network) CreateBi() ObjID {
	return n.appendObj(Object{Kind: KindBi, PioNum: -1})
}

// CreateBo appends a low-level latch-output (LO) terminal. fPhase is
// always false: a register's value under the all-zero input assignment
// is its (zero) initial state, independent of its driver.
func (n *Network) CreateBo() ObjID {
	return n.appendObj(Object{Kind: KindBo, PioNum: -1, fPhase: false})
}

// CreateLatch creates one new register: a paired (Lo, Li) with Lo
// appended to the LO vector and Li appended to the LI vector at the same
// index r. The Li's driver is left
// unattached; callers must set it via SetFanin0.
func (n *Network) CreateLatch() Register {
	lo := n.CreateBo()
	li := n.CreateBi()
	n.obj(lo).pair = li
	n.obj(li).pair = lo
	n.los = append(n.los, lo)
	n.lis = append(n.lis, li)
	return Register{Lo: lo, Li: li}
}

// SetFanin0 attaches (or replaces) the single fanin of a Po/Bi-class
// object. Used by the decoder once a driver literal has been resolved,
// and by retiming when wiring a brand new Bi.
func (n *Network) SetFanin0(id ObjID, e Edge) {
	o := n.obj(id)
	if o.Kind != KindPo && o.Kind != KindBi {
		glog.Fatalf("aig: SetFanin0 on non-terminal object %d (kind=%s)", id, o.Kind)
	}
	o.fanin0 = e
	if n.trackingFanout {
		n.addFanout(e.ID, id)
	}
}

// NotCond flips e's inversion bit iff c.
func (n *Network) NotCond(e Edge, c bool) Edge { return e.NotCond(c) }

func (n *Network) phase(e Edge) bool { return n.objs[e.ID].fPhase != e.Inv }

// Phase returns an edge's effective simulation value under the all-zero
// input assignment: the referenced node's fPhase XORed with the edge's
// own inversion bit. Meaningful for any edge whose ID is a node-class
// object (Const1/Pi/And/Bo) — i.e. any edge that could legally be an And
// fanin or a register driver.
func (n *Network) Phase(e Edge) bool { return n.phase(e) }

// And is the structural-hashing two-input AND constructor. It applies
// constant folding and canonicalises its fanin pair before hashing, so
// And(a,b) and And(b,a) always return the identical edge.
func (n *Network) And(a, b Edge) Edge {
	false0 := n.Const0()
	true0 := n.Const1()
	switch {
	case a == false0 || b == false0:
		return false0
	case a == true0:
		return b
	case b == true0:
		return a
	}
	if a.ID == b.ID {
		if a.Inv == b.Inv {
			return a // And(x, x) = x
		}
		return false0 // And(x, ¬x) = 0
	}

	x, y := a, b
	if x.lit() > y.lit() {
		x, y = y, x
	}
	key := x.lit()<<32 | y.lit()
	if id, ok := n.strash[key]; ok {
		return Edge{ID: id}
	}

	obj := Object{Kind: KindAnd, PioNum: -1, fanin0: x, fanin1: y, fPhase: n.phase(x) && n.phase(y)}
	id := n.appendObj(obj)
	n.strash[key] = id
	if n.trackingFanout {
		n.addFanout(x.ID, id)
		n.addFanout(y.ID, id)
	}
	return Edge{ID: id}
}

// FanoutStart begins tracking the fanout index; required before any call
// to Replace. Existing structure is scanned once to seed the index.
func (n *Network) FanoutStart() {
	for i := range n.objs {
		n.objs[i].fanout = nil
	}
	n.trackingFanout = true
	for i := range n.objs {
		o := &n.objs[i]
		if o.dead {
			continue
		}
		switch o.Kind {
		case KindAnd:
			n.addFanout(o.fanin0.ID, o.ID)
			n.addFanout(o.fanin1.ID, o.ID)
		case KindPo, KindBi:
			n.addFanout(o.fanin0.ID, o.ID)
		}
	}
}

// FanoutStop ends the tracking window and releases the per-object fanout
// lists.
func (n *Network) FanoutStop() {
	n.trackingFanout = false
	for i := range n.objs {
		n.objs[i].fanout = nil
	}
}

func (n *Network) addFanout(of ObjID, consumer ObjID) {
	o := n.obj(of)
	o.fanout = append(o.fanout, consumer)
}

func (n *Network) removeFanout(of ObjID, consumer ObjID) {
	o := n.obj(of)
	for i, c := range o.fanout {
		if c == consumer {
			o.fanout[i] = o.fanout[len(o.fanout)-1]
			o.fanout = o.fanout[:len(o.fanout)-1]
			return
		}
	}
}

// Replace rewires every consumer of old to point at newEdge instead,
// composing each consumer's existing inversion bit with newEdge's. The
// fanout index must be active. When deleteOld is true, old is retired
// immediately (its ID is never reused); otherwise it is left for a later
// cleanup() pass to retire if it ends up unreachable. updateLevel is
// accepted for interface symmetry but has no effect: this package does
// not track logic levels.
func (n *Network) Replace(old ObjID, newEdge Edge, updateLevel, deleteOld bool) {
	if !n.trackingFanout {
		glog.Fatalf("aig: Replace called outside a fanoutStart/fanoutStop window")
	}
	oldObj := n.obj(old)
	consumers := append([]ObjID(nil), oldObj.fanout...)
	for _, cid := range consumers {
		c := n.obj(cid)
		switch c.Kind {
		case KindAnd:
			if c.fanin0.ID == old {
				c.fanin0 = Edge{ID: newEdge.ID, Inv: c.fanin0.Inv != newEdge.Inv}
			}
			if c.fanin1.ID == old {
				c.fanin1 = Edge{ID: newEdge.ID, Inv: c.fanin1.Inv != newEdge.Inv}
			}
		case KindPo, KindBi:
			if c.fanin0.ID == old {
				c.fanin0 = Edge{ID: newEdge.ID, Inv: c.fanin0.Inv != newEdge.Inv}
			}
		}
		n.removeFanout(old, cid)
		n.addFanout(newEdge.ID, cid)
	}
	oldObj.fanout = nil
	if deleteOld {
		n.retire(old)
	}
}

func (n *Network) retire(id ObjID) {
	o := n.obj(id)
	if o.dead {
		return
	}
	switch o.Kind {
	case KindAnd:
		x, y := o.fanin0, o.fanin1
		if x.lit() > y.lit() {
			x, y = y, x
		}
		delete(n.strash, x.lit()<<32|y.lit())
		n.removeFanout(o.fanin0.ID, id)
		n.removeFanout(o.fanin1.ID, id)
	case KindPo, KindBi:
		n.removeFanout(o.fanin0.ID, id)
	}
	o.dead = true
	o.fanout = nil
}

// Cleanup removes every And that no PO or LI depends on. It walks
// outward from every live root (POs, LIs, and any And already kept alive
// transitively) and retires everything unreached. Returns the number of
// Ands retired.
func (n *Network) Cleanup() int {
	reachable := make([]bool, len(n.objs))
	var mark func(id ObjID)
	mark = func(id ObjID) {
		if reachable[id] {
			return
		}
		reachable[id] = true
		o := n.obj(id)
		if o.Kind == KindAnd {
			mark(o.fanin0.ID)
			mark(o.fanin1.ID)
		}
	}
	mark(0)
	for _, id := range n.pis {
		mark(id)
	}
	for _, id := range n.los {
		mark(id)
	}
	for _, id := range n.pos {
		o := n.obj(id)
		mark(id)
		mark(o.fanin0.ID)
	}
	for _, id := range n.lis {
		o := n.obj(id)
		mark(id)
		mark(o.fanin0.ID)
	}

	count := 0
	for i := range n.objs {
		o := &n.objs[i]
		if o.Kind == KindAnd && !o.dead && !reachable[o.ID] {
			n.retire(o.ID)
			count++
		}
	}
	return count
}

// ForEachAnd calls f for every live And object, in increasing ID
// (topological) order — required for the forward-retiming scan.
func (n *Network) ForEachAnd(f func(o *Object) bool) {
	for i := range n.objs {
		o := &n.objs[i]
		if o.Kind == KindAnd && !o.dead {
			if !f(o) {
				return
			}
		}
	}
}

// SetPioNumbers (re)assigns combined PI/LO and PO/LI numbering ahead of a
// retiming run: real PIs are numbered first, then LOs continue the same
// numbering space; real POs are numbered first, then LIs continue that
// space. This gives the invariant PioNum(LO[r]) = nPis + r.
func (n *Network) SetPioNumbers() {
	for i, id := range n.pis {
		n.obj(id).PioNum = i
	}
	nPis := len(n.pis)
	for r, id := range n.los {
		n.obj(id).PioNum = nPis + r
	}
	for i, id := range n.pos {
		n.obj(id).PioNum = i
	}
	nPos := len(n.pos)
	for r, id := range n.lis {
		n.obj(id).PioNum = nPos + r
	}
}
