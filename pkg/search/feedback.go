package search

import (
	"github.com/ochess/chusst/pkg/board"
	"github.com/ochess/chusst/pkg/eval"
)

// FeedbackSink receives progress reports while a search is in flight, so a driver such as the
// UCI front end can relay "info" lines without the search itself knowing about any particular
// protocol.
type FeedbackSink interface {
	// Info delivers a free-form progress message.
	Info(message string)
	// Update delivers the current best line found at the given depth.
	Update(depth int, nodes uint64, score eval.Score, pv []board.MoveAction)
}

// NoopFeedback discards all feedback. The zero value is ready to use.
type NoopFeedback struct{}

func (NoopFeedback) Info(string)                                                  {}
func (NoopFeedback) Update(depth int, nodes uint64, score eval.Score, pv []board.MoveAction) {}

var _ FeedbackSink = NoopFeedback{}
