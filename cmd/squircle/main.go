// Command squircle prints smoothed rounded rectangles as SVG path data.
//
// Usage:
//
//	squircle path --width 100 --height 60 --radius 20 --smoothing 0.6
//	squircle css --config card.toml
//	squircle svg --config card.yaml --top-left 0 > card.svg
//	squircle watch card.toml
//
// Parameters come from an optional TOML or YAML file given with --config.
// Flags that are set explicitly take precedence over the file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err to w, highlighting the prefix on color terminals.
func printError(w io.Writer, err error) {
	out := termenv.NewOutput(w)
	prefix := out.String("error:").Foreground(termenv.ANSIRed).Bold()
	fmt.Fprintln(w, prefix, err)
}
