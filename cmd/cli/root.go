package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/amirasaad/fxconv/infra/initializer"
	"github.com/amirasaad/fxconv/pkg/app"
	"github.com/amirasaad/fxconv/pkg/config"
	"github.com/amirasaad/fxconv/pkg/ui"
)

// buildOptions carries the persistent flags into the app builder.
type buildOptions struct {
	EnvFile string
	Lang    string
	Debug   bool
	LogOut  io.Writer
}

type appBuilder func(ctx context.Context, opts buildOptions) (*app.App, error)

// isTerminal reports whether stdout is interactive.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// buildApp loads configuration and wires the application. Unless LOG_LEVEL
// is set the CLI only logs warnings.
func buildApp(ctx context.Context, opts buildOptions) (*app.App, error) {
	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load application configuration: %w", err)
	}
	if opts.Lang != "" {
		cfg.Locale = opts.Lang
	}
	switch {
	case opts.Debug:
		cfg.Log.Level = int(log.DebugLevel)
	case !config.IsEnvSet("LOG_LEVEL"):
		cfg.Log.Level = int(log.WarnLevel)
	}

	deps, err := initializer.InitializeDependencies(ctx, cfg, opts.LogOut)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	return app.New(deps, cfg), nil
}

// runtime is the state shared by subcommands once the app is built.
type runtime struct {
	build appBuilder
	clip  ui.Clipboard
	opts  buildOptions
	// logFile receives logs of the interactive form.
	logFile string

	app     *app.App
	closers []io.Closer
}

func (rt *runtime) setup(cmd *cobra.Command) error {
	opts := rt.opts
	opts.LogOut = cmd.ErrOrStderr()
	if isInteractive(cmd) {
		// stderr would tear the alternate screen
		opts.LogOut = io.Discard
		if rt.logFile != "" {
			f, err := os.OpenFile(rt.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			rt.closers = append(rt.closers, f)
			opts.LogOut = f
		}
	}

	a, err := rt.build(cmd.Context(), opts)
	if err != nil {
		return err
	}
	rt.app = a
	return nil
}

func (rt *runtime) teardown() error {
	var err error
	if rt.app != nil {
		err = rt.app.Close()
	}
	for _, c := range rt.closers {
		_ = c.Close()
	}
	return err
}

func isInteractive(cmd *cobra.Command) bool {
	return cmd.Name() == "tui" || (!cmd.HasParent() && isTerminal())
}

func newRootCmd(build appBuilder, clip ui.Clipboard) *cobra.Command {
	rt := &runtime{build: build, clip: clip}

	cmd := &cobra.Command{
		Use:           "fxconv",
		Short:         "Currency converter backed by exchangerate.host and frankfurter.app",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.HasParent() && !isTerminal() {
				return nil
			}
			return rt.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return rt.teardown()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal() {
				return cmd.Help()
			}
			return runTUI(cmd, rt)
		},
	}

	cmd.PersistentFlags().StringVar(&rt.opts.EnvFile, "env-file", config.GetEnv("FXCONV_ENV_FILE", ".env"), "environment file to load")
	cmd.PersistentFlags().StringVar(&rt.opts.Lang, "lang", "", "interface language (pt or en); defaults to LOCALE or LANG")
	cmd.PersistentFlags().BoolVar(&rt.opts.Debug, "debug", config.GetEnvAsBool("FXCONV_DEBUG", false), "enable debug logging")
	cmd.PersistentFlags().StringVar(&rt.logFile, "log-file", "", "write logs of the interactive form to this file")

	cmd.AddCommand(convertCmd(rt), tuiCmd(rt), themeCmd(rt))
	return cmd
}
