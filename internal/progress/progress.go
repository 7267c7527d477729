// Package progress defines a small external collaborator for long-running
// decode operations: start(total), update(i), stop(), invoked synchronously
// from within the decoder's AND-body loop. No progress-bar terminal library
// is available, so the default implementation here traces milestones
// through glog instead of drawing a bar.
package progress

import "github.com/golang/glog"

// Sink receives progress updates and may request cancellation.
type Sink interface {
	Start(total int)
	// Update reports that i items have been processed. It returns true
	// if the caller should abort.
	Update(i int) (cancel bool)
	Stop()
}

// Glog is a Sink that logs at decade milestones (0%, 10%, 20%, ...) via
// glog.V(2) and never requests cancellation.
type Glog struct {
	total int
	last  int
}

// NewGlog returns a Sink backed by glog tracing.
func NewGlog() *Glog { return &Glog{} }

func (g *Glog) Start(total int) {
	g.total = total
	g.last = -1
	glog.V(1).Infof("progress: starting, total=%d", total)
}

func (g *Glog) Update(i int) bool {
	if g.total <= 0 {
		return false
	}
	pct := (i * 10) / g.total
	if pct != g.last {
		g.last = pct
		glog.V(2).Infof("progress: %d/%d (%d%%)", i, g.total, pct*10)
	}
	return false
}

func (g *Glog) Stop() {
	glog.V(1).Infof("progress: done")
}

// Noop discards all progress updates; useful for tests and for callers
// that don't care about tracing.
type Noop struct{}

func (Noop) Start(int)       {}
func (Noop) Update(int) bool { return false }
func (Noop) Stop()           {}
