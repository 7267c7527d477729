package aig

import "testing"

func TestAnd_Commutative(t *testing.T) {
	n := NewNetwork()
	a := n.CreatePi()
	b := n.CreatePi()

	e1 := n.And(a, b)
	e2 := n.And(b, a)
	if e1 != e2 {
		t.Fatalf("And(a,b)=%v != And(b,a)=%v", e1, e2)
	}
}

func TestAnd_ConstantFolding(t *testing.T) {
	n := NewNetwork()
	a := n.CreatePi()
	false0 := n.Const0()
	true0 := n.Const1()

	if got := n.And(a, false0); got != false0 {
		t.Fatalf("And(x,0) = %v, want false", got)
	}
	if got := n.And(a, true0); got != a {
		t.Fatalf("And(x,1) = %v, want x", got)
	}
	if got := n.And(a, a); got != a {
		t.Fatalf("And(x,x) = %v, want x", got)
	}
	if got := n.And(a, a.Not()); got != false0 {
		t.Fatalf("And(x,!x) = %v, want false", got)
	}
}

func TestAnd_Idempotent(t *testing.T) {
	n := NewNetwork()
	a := n.CreatePi()
	b := n.CreatePi()

	first := n.And(a, b)
	before := n.NumObjs()
	second := n.And(a, b)
	if first != second {
		t.Fatalf("repeated And(a,b) returned different edges: %v vs %v", first, second)
	}
	if n.NumObjs() != before {
		t.Fatalf("repeated And(a,b) allocated a new object")
	}
}

func TestAnd_FPhase(t *testing.T) {
	n := NewNetwork()
	a := n.CreatePi() // fPhase = false
	e := n.And(a.Not(), n.Const1())
	if n.Phase(e) != true {
		t.Fatalf("Phase(!a) under all-zero input should be true")
	}
}

func TestReplace_RewiresConsumersWithInversion(t *testing.T) {
	n := NewNetwork()
	a := n.CreatePi()
	b := n.CreatePi()
	c := n.CreatePi()
	d := n.CreatePi()

	ab := n.And(a, b)
	top := n.And(ab, c)
	n.CreatePo(top)

	n.FanoutStart()
	n.Replace(ab.ID, d.Not(), false, false)
	n.FanoutStop()

	topObj := n.Obj(top.ID)
	fanins := []Edge{topObj.Fanin0(), topObj.Fanin1()}
	found := false
	for _, f := range fanins {
		if f.ID == d.ID {
			// ab appeared into top with Inv=false; composed with d.Not()
			// (Inv=true) the rewritten edge must come out inverted.
			if !f.Inv {
				t.Fatalf("replaced edge = %v, want inverted", f)
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("top's fanins after replace = %v, want one referencing d", fanins)
	}
}

func TestCleanup_RemovesUnreachableAnds(t *testing.T) {
	n := NewNetwork()
	a := n.CreatePi()
	b := n.CreatePi()
	c := n.CreatePi()

	orphan := n.And(a, b)
	kept := n.And(a, c)
	n.CreatePo(kept)

	n.FanoutStart()
	removed := n.Cleanup()
	n.FanoutStop()

	if removed != 1 {
		t.Fatalf("Cleanup removed %d nodes, want 1", removed)
	}
	if !n.Obj(orphan.ID).Dead() {
		t.Fatalf("orphaned And not marked dead")
	}
	if n.Obj(kept.ID).Dead() {
		t.Fatalf("reachable And incorrectly marked dead")
	}
}

func TestCreateLatch_Pairing(t *testing.T) {
	n := NewNetwork()
	reg := n.CreateLatch()
	if n.Obj(reg.Lo).Pair() != reg.Li {
		t.Fatalf("LO.Pair() = %d, want %d", n.Obj(reg.Lo).Pair(), reg.Li)
	}
	if n.Obj(reg.Li).Pair() != reg.Lo {
		t.Fatalf("LI.Pair() = %d, want %d", n.Obj(reg.Li).Pair(), reg.Lo)
	}
	if n.NumRegs() != 1 {
		t.Fatalf("NumRegs() = %d, want 1", n.NumRegs())
	}
}

func TestSetPioNumbers(t *testing.T) {
	n := NewNetwork()
	n.CreatePi()
	n.CreatePi()
	reg := n.CreateLatch()
	n.SetPioNumbers()

	if n.Obj(reg.Lo).PioNum != 2 {
		t.Fatalf("LO PioNum = %d, want nPis(2)+0", n.Obj(reg.Lo).PioNum)
	}
}
