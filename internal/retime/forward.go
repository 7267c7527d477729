package retime

import (
	"github.com/golang/glog"

	"github.com/avidale-eda/aigretime/internal/aig"
)

// tryForward attempts the forward-retime primitive at And node n. It
// applies only if both fanins of n are latch outputs; on success it
// returns the replacement edge and true, having already created the new
// register but NOT having called Replace — the caller commits that.
func tryForward(net *aig.Network, n aig.ObjID, assertPhase bool) (aig.Edge, bool) {
	o := net.Obj(n)
	if o.Kind != aig.KindAnd {
		return aig.Edge{}, false
	}
	fi0, fi1 := o.Fanin0(), o.Fanin1()
	lo0 := net.Obj(fi0.ID)
	lo1 := net.Obj(fi1.ID)
	if !lo0.IsPiClass() || !lo0.IsLo() || !lo1.IsPiClass() || !lo1.IsLo() {
		return aig.Edge{}, false
	}

	li0 := net.Obj(lo0.Pair())
	li1 := net.Obj(lo1.Pair())
	e0, e1 := li0.Fanin0(), li1.Fanin0()
	c0, c1 := fi0.Inv, fi1.Inv

	nNew := net.And(e0.NotCond(c0), e1.NotCond(c1))

	reg := net.CreateLatch()
	phase := net.Phase(nNew)
	driver := nNew.NotCond(phase)
	net.SetFanin0(reg.Li, driver)
	if assertPhase && net.Phase(driver) {
		glog.Fatalf("retime: forward step at node %d produced LI %d with fPhase != 0", n, reg.Li)
	}

	return aig.Edge{ID: reg.Lo}.NotCond(phase), true
}
