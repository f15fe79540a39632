// Command fxconv converts amounts between currencies from the terminal.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"

	"github.com/amirasaad/fxconv/pkg/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var clip ui.Clipboard
	if !clipboard.Unsupported {
		clip = ui.ClipboardFunc(clipboard.WriteAll)
	}

	cmd := newRootCmd(buildApp, clip)
	if err := cmd.ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err) //nolint:errcheck
		stop()
		os.Exit(1)
	}
}
