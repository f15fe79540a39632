package main

import (
	"github.com/spf13/cobra"

	"github.com/amirasaad/fxconv/internal/tui"
)

func tuiCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive conversion form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, rt)
		},
	}
}

func runTUI(cmd *cobra.Command, rt *runtime) error {
	a := rt.app
	return tui.Run(cmd.Context(), tui.Deps{
		Converter:  a.Conversion,
		Translator: a.Translator(),
		Preference: a.Preference(""),
		Clipboard:  rt.clip,
		Logger:     a.Deps.Logger,
	})
}
