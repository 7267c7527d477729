package retime

import "github.com/avidale-eda/aigretime/internal/aig"

// tryBackward attempts the backward-retime primitive at LO lo. It applies
// only if the paired LI's driver is an And node. On success it returns
// the replacement edge and true; the caller commits via Replace.
//
// This deliberately replicates the reference algorithm's use of the
// paired LI's own driver-edge inversion bit as the single "b" applied to
// both new LIs, rather than computing a per-fanin correction — a
// documented discrepancy, not a bug (see DESIGN.md).
func tryBackward(net *aig.Network, lo aig.ObjID) (aig.Edge, bool) {
	o := net.Obj(lo)
	if !o.IsLo() {
		return aig.Edge{}, false
	}
	li := net.Obj(o.Pair())
	driver := li.Fanin0()
	m := net.Obj(driver.ID)
	if m.Kind != aig.KindAnd {
		return aig.Edge{}, false
	}
	b := driver.Inv

	f0, f1 := m.Fanin0(), m.Fanin1()
	c0 := f0.Inv != b
	c1 := f1.Inv != b

	reg0 := net.CreateLatch()
	net.SetFanin0(reg0.Li, f0.NotCond(c0))
	lo0New := aig.Edge{ID: reg0.Lo}.NotCond(c0)

	reg1 := net.CreateLatch()
	net.SetFanin0(reg1.Li, f1.NotCond(c1))
	lo1New := aig.Edge{ID: reg1.Lo}.NotCond(c1)

	return net.And(lo0New, lo1New), true
}
