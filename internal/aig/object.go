package aig

// Kind tags the variant of an Object. This package collapses the
// conceptual {Latch, Bi, Bo} triple onto a two-object pairing {Bo, Bi}: a
// register is represented as one Bo (its combinational-side output,
// PI-class) and one Bi (its combinational-side input, PO-class), with no
// intervening node. This is required so that retiming — which creates
// registers without ever instantiating a third "latch" node — produces
// objects structurally identical to the ones the decoder creates;
// forward/backward retime's "is this a register output" guard has to work
// uniformly on both.
type Kind uint8

const (
	KindConst1 Kind = iota
	KindPi
	KindPo
	KindAnd
	KindBo // latch output ("LO"): PI-class, feeds combinational logic
	KindBi // latch input ("LI"): PO-class, single fanin is the register's driver
)

func (k Kind) String() string {
	switch k {
	case KindConst1:
		return "const1"
	case KindPi:
		return "pi"
	case KindPo:
		return "po"
	case KindAnd:
		return "and"
	case KindBo:
		return "bo"
	case KindBi:
		return "bi"
	default:
		return "?"
	}
}

// Object is one node of the graph. Fields not meaningful for a given Kind
// are simply left at their zero value (e.g. fanin0/fanin1 for a Pi).
type Object struct {
	ID     ObjID
	Kind   Kind
	PioNum int // position within PI/PO/LO/LI numbering; -1 if not a terminal

	fanin0, fanin1 Edge // fanin1 only meaningful for And
	fPhase         bool // simulation value under the all-zero input assignment

	fanout []ObjID // populated only between fanoutStart/fanoutStop
	dead   bool    // retired by cleanup(); ID is never reused
	pair   ObjID   // for Bo/Bi: the id of the other half of the register
}

// Pair returns the id of the other half of a register (Bo<->Bi); only
// meaningful when o.IsLo() or o.IsLi().
func (o *Object) Pair() ObjID { return o.pair }

// IsPiClass reports whether o can serve as an And fanin directly, i.e. it
// is a true primary input, a latch output, or the constant-1 sentinel.
func (o *Object) IsPiClass() bool {
	return o.Kind == KindPi || o.Kind == KindBo || o.Kind == KindConst1
}

// IsLo reports whether o is a latch output (register value feeding the
// combinational network).
func (o *Object) IsLo() bool { return o.Kind == KindBo }

// IsLi reports whether o is a latch input (register driver sink).
func (o *Object) IsLi() bool { return o.Kind == KindBi }

// FPhase returns the node's own simulation value under the all-zero input
// assignment. Meaningful only for node-class objects
// (Const1/Pi/And/Bo); callers must not rely on it for Po/Bi.
func (o *Object) FPhase() bool { return o.fPhase }

// Fanin0 returns the first (only, for single-fanin terminals) fanin edge.
func (o *Object) Fanin0() Edge { return o.fanin0 }

// Fanin1 returns the second fanin edge; only meaningful for And.
func (o *Object) Fanin1() Edge { return o.fanin1 }

// Dead reports whether o has been retired by Network.Cleanup or an
// eager Network.Replace(..., deleteOld=true). Its ID stays reserved but
// it no longer participates in structural hashing, fanout, or scans.
func (o *Object) Dead() bool { return o.dead }
