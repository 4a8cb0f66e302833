// Package uci contains a driver for using the engine under the UCI protocol.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
// See: https://en.wikipedia.org/wiki/Universal_Chess_Interface
package uci

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ochess/chusst/pkg/board"
	"github.com/ochess/chusst/pkg/board/fen"
	"github.com/ochess/chusst/pkg/engine"
	"github.com/ochess/chusst/pkg/eval"
	"github.com/ochess/chusst/pkg/search"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

const ProtocolName = "uci"

// searchDepthOption is the only UCI option this driver exposes: the fixed search depth, in
// plies, clamped to [engine.MinDepth, engine.MaxDepth].
const searchDepthOption = "SearchDepth"

// Driver implements a UCI driver for an engine. It is activated if sent "uci".
type Driver struct {
	e   *engine.Engine
	out chan<- string

	active atomic.Bool // a "go" search is in flight
	stop   *search.AtomicStopSignal

	lastPosition string // last position line (empty if no last position)

	quit   chan struct{}
	closed atomic.Bool
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		e:    e,
		out:  out,
		quit: make(chan struct{}),
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) Close() {
	if d.closed.CAS(false, true) {
		close(d.quit)
	}
}

func (d *Driver) Closed() <-chan struct{} {
	return d.quit
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "UCI protocol initialized")

	// After "uci": identify, advertise options, and acknowledge uci mode.

	d.out <- fmt.Sprintf("id name %v", d.e.Name())
	d.out <- fmt.Sprintf("id author %v", d.e.Author())
	d.out <- fmt.Sprintf("option name %v type spin default %v min %v max %v",
		searchDepthOption, engine.DefaultDepth, engine.MinDepth, engine.MaxDepth)
	d.out <- "uciok"

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}
			if !d.handle(ctx, line) {
				return
			}

		case <-d.quit:
			d.ensureInactive()
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

// handle processes one input line. Returns false if the driver should stop reading input.
func (d *Driver) handle(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}

	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "isready":
		d.out <- "readyok"

	case "debug", "register", "ponderhit":
		// No-op: no debug logging surface, no registration, no pondering.

	case "setoption":
		d.handleSetOption(args)

	case "ucinewgame":
		d.ensureInactive()
		d.lastPosition = ""

	case "position":
		d.ensureInactive()
		if err := d.handlePosition(ctx, line, args); err != nil {
			logw.Errorf(ctx, "Invalid position: %v: %v", line, err)
			return false
		}

	case "go":
		d.ensureInactive()
		d.handleGo(ctx)

	case "stop":
		d.ensureInactive()

	case "quit":
		return false

	default:
		logw.Warningf(ctx, "Unknown command %q: %v", cmd, args)
	}
	return true
}

func (d *Driver) handleSetOption(args []string) {
	var name, value string
	for i := 0; i < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "name":
			if i+1 < len(args) {
				name = args[i+1]
			}
		case "value":
			if i+1 < len(args) {
				value = args[i+1]
			}
		}
	}
	if name == searchDepthOption {
		if n, err := strconv.Atoi(value); err == nil {
			d.e.SetDepth(n)
		}
	}
}

func (d *Driver) handlePosition(ctx context.Context, line string, args []string) error {
	if d.lastPosition != "" && strings.HasPrefix(line, d.lastPosition) {
		// Continuation of the current game: apply only the newly appended moves.

		rest := strings.TrimSpace(strings.TrimPrefix(line, d.lastPosition))
		for _, arg := range strings.Fields(rest) {
			if arg == "moves" {
				continue
			}
			if _, err := d.e.Move(ctx, arg); err != nil {
				return fmt.Errorf("move %q: %w", arg, err)
			}
		}
		d.lastPosition = line
		return nil
	}

	// New position.

	position := fen.Initial
	if len(args) >= 7 && args[0] == "fen" {
		position = strings.Join(args[1:7], " ")
	}
	if err := d.e.Reset(ctx, position); err != nil {
		return err
	}

	move := false
	for _, arg := range args {
		if arg == "moves" {
			move = true
			continue
		}
		if !move {
			continue
		}
		if _, err := d.e.Move(ctx, arg); err != nil {
			return fmt.Errorf("move %q: %w", arg, err)
		}
	}
	d.lastPosition = line
	return nil
}

// handleGo launches a search in the background. The driver always runs to the configured fixed
// depth; "go"'s time-control and pondering arguments are accepted but not interpreted, since
// this engine does not manage a clock.
func (d *Driver) handleGo(ctx context.Context) {
	d.stop = search.NewAtomicStopSignal()
	d.active.Store(true)

	go func() {
		result := d.e.Search(ctx, 0, d.stop, uciFeedback{d.out})
		if d.active.CAS(true, false) {
			d.out <- fmt.Sprintf("bestmove %v", bestMoveString(result))
		}
	}()
}

func (d *Driver) ensureInactive() {
	if d.active.Load() && d.stop != nil {
		d.stop.Stop()
	}
}

func bestMoveString(result search.Result) string {
	if m, ok := result.Best(); ok {
		return m.String()
	}
	return "0000"
}

// uciFeedback relays search progress as UCI "info" lines.
type uciFeedback struct {
	out chan<- string
}

func (f uciFeedback) Info(message string) {
	f.out <- fmt.Sprintf("info string %v", message)
}

func (f uciFeedback) Update(depth int, nodes uint64, score eval.Score, pv []board.MoveAction) {
	parts := []string{"info", fmt.Sprintf("depth %v", depth)}

	if ply, ok := eval.IsMate(score); ok {
		moves := (ply + 1) / 2
		if score < 0 {
			moves = -moves
		}
		parts = append(parts, fmt.Sprintf("score mate %v", moves))
	} else {
		parts = append(parts, fmt.Sprintf("score cp %v", int(score)))
	}

	parts = append(parts, fmt.Sprintf("nodes %v", nodes))

	if len(pv) > 0 {
		parts = append(parts, "pv")
		for _, m := range pv {
			parts = append(parts, m.String())
		}
	}

	f.out <- strings.Join(parts, " ")
}

var _ search.FeedbackSink = uciFeedback{}
