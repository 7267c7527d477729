// Package retime implements structural register-retiming over an
// internal/aig.Network: single-step forward/backward primitives and a
// multi-step driver loop with a post-sweep assertion.
package retime

// Config controls a retiming run.
type Config struct {
	Forward bool // true: forward retime steps; false: backward
	Steps   int

	// AssertFwdPhase gates the fPhase==0 assertion on newly created LIs
	// during forward retiming. The zero value (false) disables it; backward
	// retiming never checks LI phase, whatever this field says.
	AssertFwdPhase bool
}
