package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amirasaad/fxconv/pkg/i18n"
	"github.com/amirasaad/fxconv/pkg/theme"
)

func themeCmd(rt *runtime) *cobra.Command {
	show := func(cmd *cobra.Command, t theme.Theme) {
		tr := rt.app.Translator()
		label := tr.T(i18n.LightTheme)
		if t.IsDark() {
			label = tr.T(i18n.DarkTheme)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", label, t) //nolint:errcheck
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := rt.app.Preference("").Load(cmd.Context())
			if err != nil {
				return err
			}
			show(cmd, t)
			return nil
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle",
		Short: "Switch between the light and dark theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := rt.app.Preference("")
			if _, err := p.Load(cmd.Context()); err != nil {
				return err
			}
			t, err := p.Toggle(cmd.Context())
			if err != nil {
				return err
			}
			show(cmd, t)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:       "set light|dark",
		Short:     "Save a theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := theme.Parse(args[0])
			if err != nil {
				return err
			}
			if err := rt.app.Preference("").Set(cmd.Context(), t); err != nil {
				return err
			}
			show(cmd, t)
			return nil
		},
	}

	c := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the saved theme",
		Args:  cobra.NoArgs,
		RunE:  showCmd.RunE,
	}
	c.AddCommand(showCmd, toggleCmd, setCmd)
	return c
}
