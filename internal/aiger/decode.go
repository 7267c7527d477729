// Package aiger decodes the binary AIGER format
// into an internal/aig.Network.
package aiger

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/avidale-eda/aigretime/internal/aig"
	"github.com/avidale-eda/aigretime/internal/names"
	"github.com/avidale-eda/aigretime/internal/progress"
	"github.com/avidale-eda/aigretime/internal/varint"
)

// Config controls optional decode-time behavior.
type Config struct {
	// Check runs Options.Checker after decoding and discards the network
	// on failure.
	Check bool
	// StrictSymbols turns an out-of-range or unknown-type symbol record
	// into a hard decode failure instead of a best-effort skip. The zero
	// value is the permissive mode; callers opt in to strictness (see
	// DESIGN.md Open Question #3).
	StrictSymbols bool
}

// Checker is a network-level sanity checker, injected as an external
// collaborator. Its internal rules are out of scope; DefaultChecker
// implements only the structural invariants this package states directly.
type Checker func(*aig.Network) bool

// Options bundles the decoder's external collaborators so Decode doesn't grow an
// unwieldy parameter list as more are added.
type Options struct {
	Config  Config
	Sink    progress.Sink   // nil => progress.Noop{}
	Names   names.Registrar // nil => names.NewDefault()
	Checker Checker         // nil => DefaultChecker, only consulted if Config.Check
}

// Result is everything Decode produces: the built network, the parsed
// header (including any .model name), and the registrar used for naming.
type Result struct {
	Network *aig.Network
	Header  Header
	Names   names.Registrar
}

// Decode parses an AIGER byte buffer. On any failure all partially
// constructed state is discarded and only the error is returned.
func Decode(data []byte, opts Options) (*Result, error) {
	sink := opts.Sink
	if sink == nil {
		sink = progress.Noop{}
	}
	reg := opts.Names
	if reg == nil {
		reg = names.NewDefault()
	}

	h, pos, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("aiger: header M=%d I=%d L=%d O=%d A=%d modified=%v", h.M, h.I, h.L, h.O, h.A, h.Modified)

	net := aig.NewNetwork()

	// Literal -> edge table, indices 0..I+L populated now; AND edges are
	// appended as they are built.
	vtable := make([]aig.Edge, 1, 1+h.I+h.L+h.A)
	vtable[0] = net.Const0()

	pis := make([]aig.Edge, h.I)
	for i := 0; i < h.I; i++ {
		pis[i] = net.CreatePi()
		vtable = append(vtable, pis[i])
	}

	poIDs := make([]aig.ObjID, h.O)
	for i := 0; i < h.O; i++ {
		poIDs[i] = net.CreatePo(aig.Edge{}).ID
	}

	los := make([]aig.ObjID, h.L)
	lis := make([]aig.ObjID, h.L)
	for r := 0; r < h.L; r++ {
		lat := net.CreateLatch()
		los[r], lis[r] = lat.Lo, lat.Li
		vtable = append(vtable, aig.Edge{ID: lat.Lo})
	}

	dr, err := newDriverReader(data, pos, h)
	if err != nil {
		return nil, err
	}

	// AND body: strictly increasing index
	// order, each record two varint deltas (d1 then d0).
	cur := dr.bodyStart()
	sink.Start(h.A)
	for i := 0; i < h.A; i++ {
		if sink.Update(i) {
			return nil, fmt.Errorf("aiger: decode cancelled at AND record %d/%d", i, h.A)
		}
		lhs := int64(2 * (1 + h.I + h.L + i))
		d1, next, err := varint.Decode(data, cur)
		if err != nil {
			return nil, fmt.Errorf("%w: AND record %d delta1", ErrTruncatedBody, i)
		}
		cur = next
		d0, next, err := varint.Decode(data, cur)
		if err != nil {
			return nil, fmt.Errorf("%w: AND record %d delta0", ErrTruncatedBody, i)
		}
		cur = next

		rhs1 := lhs - int64(d1)
		rhs0 := rhs1 - int64(d0)
		if rhs0 < 0 || rhs1 < 0 {
			return nil, fmt.Errorf("%w: AND record %d produced negative literal", ErrBadLiteral, i)
		}
		e0, err := resolveLiteral(vtable, uint32(rhs0))
		if err != nil {
			return nil, fmt.Errorf("%w: AND record %d fanin0", err, i)
		}
		e1, err := resolveLiteral(vtable, uint32(rhs1))
		if err != nil {
			return nil, fmt.Errorf("%w: AND record %d fanin1", err, i)
		}
		vtable = append(vtable, net.And(e0, e1))
	}
	sink.Stop()

	driverLits, err := dr.drivers(data)
	if err != nil {
		return nil, err
	}
	for r := 0; r < h.L; r++ {
		e, err := resolveLiteral(vtable, driverLits[r])
		if err != nil {
			return nil, fmt.Errorf("%w: latch %d driver", err, r)
		}
		net.SetFanin0(lis[r], e)
	}
	for i := 0; i < h.O; i++ {
		e, err := resolveLiteral(vtable, driverLits[h.L+i])
		if err != nil {
			return nil, fmt.Errorf("%w: PO %d driver", err, i)
		}
		net.SetFanin0(poIDs[i], e)
	}

	symCur, err := readSymbolTable(data, cur, net, poIDs, los, lis, reg, h.Modified, opts.Config.StrictSymbols)
	if err != nil {
		return nil, err
	}
	assignDefaultNames(net, poIDs, los, lis, reg)
	h.ModelName = readModelComment(data, symCur)

	net.Cleanup()

	if opts.Config.Check {
		checker := opts.Checker
		if checker == nil {
			checker = DefaultChecker
		}
		if !checker(net) {
			return nil, ErrCheckFailed
		}
	}

	return &Result{Network: net, Header: h, Names: reg}, nil
}

// resolveLiteral maps an AIGER literal (var*2+inv) to a signed edge
// against a literal->edge table: V[lit>>1] with the inversion bit XORed
// in.
func resolveLiteral(vtable []aig.Edge, lit uint32) (aig.Edge, error) {
	idx := lit >> 1
	if int(idx) >= len(vtable) {
		return aig.Edge{}, ErrBadLiteral
	}
	return vtable[idx].NotCond(lit&1 != 0), nil
}

// DefaultChecker implements only the structural invariants this package
// states directly; it is not a full ABC-style network checker.
func DefaultChecker(n *aig.Network) bool {
	ok := true
	n.ForEachAnd(func(o *aig.Object) bool {
		if o.Fanin0().ID >= o.ID || o.Fanin1().ID >= o.ID {
			ok = false
			return false
		}
		return true
	})
	return ok
}
