package search

import "go.uber.org/atomic"

// StopSignal is polled by the search to decide whether to abandon the current line early. It
// is checked once per move considered at the root, not once per node, so a stop request is
// honored within one ply's worth of work rather than instantly but without the overhead of a
// check at every recursive call.
type StopSignal interface {
	Stopped() bool
}

// AtomicStopSignal is a StopSignal backed by an atomic flag, safe to set from a goroutine other
// than the one running the search (e.g. in response to a UCI "stop" command).
type AtomicStopSignal struct {
	flag atomic.Bool
}

func NewAtomicStopSignal() *AtomicStopSignal {
	return &AtomicStopSignal{}
}

func (s *AtomicStopSignal) Stop() {
	s.flag.Store(true)
}

func (s *AtomicStopSignal) Stopped() bool {
	return s.flag.Load()
}

// never is a StopSignal that is never triggered, for searches run to completion unconditionally.
type never struct{}

func (never) Stopped() bool {
	return false
}

// Never is the StopSignal used when a caller has no way to cancel a search early.
var Never StopSignal = never{}
