// morlock is a UCI-speaking chess engine: legal move generation, fixed-depth alpha-beta
// search, and the UCI driver that lets a GUI or match runner talk to it over stdin/stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ochess/chusst/pkg/engine"
	"github.com/ochess/chusst/pkg/engine/uci"
	"github.com/seekerror/logw"
)

var (
	depth = flag.Int("depth", engine.DefaultDepth, "Default search depth, clamped to [2, 5]")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: morlock [options]

MORLOCK is a simple UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "morlock", "ochess", engine.WithOptions(engine.Options{Depth: *depth}))

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		// Use UCI protocol.

		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}

	logw.Exitf(ctx, "Morlock exited")
}
