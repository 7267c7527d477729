package retime

import (
	"github.com/golang/glog"

	"github.com/avidale-eda/aigretime/internal/aig"
)

// RetimeSteps runs the multi-step retiming driver: cfg.Steps repetitions
// of scanning for the first applicable forward or backward candidate and
// committing it, followed by a sweep whose removed-node count must be
// zero.
func RetimeSteps(net *aig.Network, cfg Config) {
	if net.NumRegs() == 0 {
		glog.Fatalf("retime: RetimeNoRegisters: network has no registers")
	}

	net.SetPioNumbers()
	net.FanoutStart()

	for step := 0; step < cfg.Steps; step++ {
		if cfg.Forward {
			stepForward(net, cfg.AssertFwdPhase)
		} else {
			stepBackward(net)
		}
	}

	net.FanoutStop()
	if removed := net.Cleanup(); removed != 0 {
		glog.Fatalf("retime: RetimeStuckSweep: post-retiming cleanup removed %d nodes, want 0", removed)
	}
}

// stepForward scans internal Ands in increasing-id (topological) order
// and commits the first applicable forward-retime candidate, if any. A
// step with no candidate is a deliberate no-op.
func stepForward(net *aig.Network, assertPhase bool) {
	var applied bool
	net.ForEachAnd(func(o *aig.Object) bool {
		edge, ok := tryForward(net, o.ID, assertPhase)
		if !ok {
			return true // keep scanning
		}
		net.Replace(o.ID, edge, false, true)
		applied = true
		return false // stop scanning, this step is done
	})
	if !applied {
		glog.V(2).Infof("retime: forward step found no applicable AND")
	}
}

// stepBackward scans LOs in declaration order and commits the first
// applicable backward-retime candidate, if any. Already-retired LOs
// (orphaned by an earlier step in this same run) are skipped.
func stepBackward(net *aig.Network) {
	for _, lo := range net.LOs() {
		if net.Obj(lo).Dead() {
			continue
		}
		edge, ok := tryBackward(net, lo)
		if !ok {
			continue
		}
		net.Replace(lo, edge, false, true)
		return
	}
	glog.V(2).Infof("retime: backward step found no applicable LO")
}
