package retime

import (
	"testing"

	"github.com/avidale-eda/aigretime/internal/aig"
)

// buildForwardCandidate builds S4: two registers driven by PIs p0, p1,
// and a single AND lo0 ∧ lo1 feeding the sole PO.
func buildForwardCandidate() (*aig.Network, aig.ObjID /* po */) {
	n := aig.NewNetwork()
	p0 := n.CreatePi()
	p1 := n.CreatePi()

	r0 := n.CreateLatch()
	n.SetFanin0(r0.Li, p0)
	r1 := n.CreateLatch()
	n.SetFanin0(r1.Li, p1)

	and := n.And(aig.Edge{ID: r0.Lo}, aig.Edge{ID: r1.Lo})
	po := n.CreatePo(and)
	return n, po.ID
}

func TestForwardRetime_S4(t *testing.T) {
	n, po := buildForwardCandidate()
	before := n.NumRegs()

	RetimeSteps(n, Config{Forward: true, Steps: 1, AssertFwdPhase: true})

	if n.NumRegs() != before+1 {
		t.Fatalf("NumRegs = %d, want %d", n.NumRegs(), before+1)
	}
	poObj := n.Obj(po)
	newLo := poObj.Fanin0().ID
	if !n.Obj(newLo).IsLo() {
		t.Fatalf("PO driver %d is not a latch output after forward retime", newLo)
	}
	li := n.Obj(newLo).Pair()
	driver := n.Obj(li).Fanin0()
	driverObj := n.Obj(driver.ID)
	if driverObj.Kind != aig.KindAnd {
		t.Fatalf("new register's driver is not an AND (p0 & p1), got kind %v", driverObj.Kind)
	}
	if driverObj.Fanin0().ID != n.PIs()[0] || driverObj.Fanin1().ID != n.PIs()[1] {
		t.Fatalf("new register driver fanins = (%d,%d), want the two original PIs", driverObj.Fanin0().ID, driverObj.Fanin1().ID)
	}
}

// buildBackwardCandidate builds S5: register ℓ whose LI is driven by a ∧ b.
func buildBackwardCandidate() (*aig.Network, aig.ObjID /* lo */) {
	n := aig.NewNetwork()
	a := n.CreatePi()
	b := n.CreatePi()
	ab := n.And(a, b)

	reg := n.CreateLatch()
	n.SetFanin0(reg.Li, ab)
	n.CreatePo(aig.Edge{ID: reg.Lo})
	return n, reg.Lo
}

func TestBackwardRetime_S5(t *testing.T) {
	n, lo := buildBackwardCandidate()
	before := n.NumRegs()

	RetimeSteps(n, Config{Forward: false, Steps: 1})

	if n.NumRegs() != before+2 {
		t.Fatalf("NumRegs = %d, want %d", n.NumRegs(), before+2)
	}
	if !n.Obj(lo).Dead() {
		t.Fatalf("original LO %d should be retired after backward retime", lo)
	}

	// The PO (which used to reference lo directly) should now reference an
	// And of the two new LOs.
	po := n.Obj(n.POs()[0])
	topObj := n.Obj(po.Fanin0().ID)
	if topObj.Kind != aig.KindAnd {
		t.Fatalf("PO driver after backward retime is not an AND, got kind %v", topObj.Kind)
	}
	if !n.Obj(topObj.Fanin0().ID).IsLo() || !n.Obj(topObj.Fanin1().ID).IsLo() {
		t.Fatalf("replacement AND's fanins are not both latch outputs")
	}
}
