// Package app wires the services shared by the HTTP server, the CLI and the
// terminal UI.
package app

import (
	"log/slog"

	"github.com/amirasaad/fxconv/pkg/config"
	"github.com/amirasaad/fxconv/pkg/i18n"
	"github.com/amirasaad/fxconv/pkg/provider"
	"github.com/amirasaad/fxconv/pkg/service/conversion"
	"github.com/amirasaad/fxconv/pkg/theme"
	"golang.org/x/text/language"
)

// Deps contains the infrastructure the application is built from.
type Deps struct {
	Rates      provider.Strategy
	ThemeStore theme.Store
	Language   language.Tag
	Logger     *slog.Logger
	// Close releases store connections. May be nil.
	Close func() error
}

type App struct {
	Deps       *Deps
	Config     *config.App
	Conversion *conversion.Service
}

func New(deps *Deps, cfg *config.App, opts ...conversion.Option) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &App{
		Deps:       deps,
		Config:     cfg,
		Conversion: conversion.New(deps.Rates, deps.Logger, opts...),
	}
}

// Preference returns the theme preference of one client. An empty id is
// the single local user of the CLI and TUI.
func (a *App) Preference(clientID string) *theme.Preference {
	return theme.NewPreference(a.Deps.ThemeStore, theme.ScopedKey(clientID), a.Deps.Logger)
}

// Translator returns copy in the process language.
func (a *App) Translator() i18n.Translator {
	return i18n.New(a.Deps.Language)
}

// Close releases resources held by the dependencies.
func (a *App) Close() error {
	if a.Deps.Close == nil {
		return nil
	}
	return a.Deps.Close()
}
