package tui

import (
	"github.com/amirasaad/fxconv/pkg/service/conversion"
	"github.com/amirasaad/fxconv/pkg/theme"
	"github.com/amirasaad/fxconv/pkg/ui"
)

type convertDoneMsg struct {
	out *conversion.Outcome
	err error
}

type themeLoadedMsg struct {
	theme theme.Theme
	err   error
}

type copyExpiredMsg struct {
	field ui.Field
}
