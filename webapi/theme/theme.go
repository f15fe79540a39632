// Package theme serves the per-client theme preference.
package theme

import (
	"github.com/amirasaad/fxconv/pkg/app"
	"github.com/amirasaad/fxconv/pkg/theme"
	"github.com/amirasaad/fxconv/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// ThemeRequest is the body of PUT /api/theme.
type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// ThemeResponse carries the current theme.
type ThemeResponse struct {
	Theme theme.Theme `json:"theme"`
}

// Routes registers the theme endpoints.
func Routes(fiberApp *fiber.App, a *app.App) {
	g := fiberApp.Group("/api/theme")
	g.Get("/", GetTheme(a))
	g.Put("/", PutTheme(a))
	g.Post("/toggle", ToggleTheme(a))
}

// GetTheme returns the stored theme, light when none is stored.
func GetTheme(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := a.Preference(common.ClientID(c)).Load(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load theme", err)
		}
		return c.JSON(ThemeResponse{Theme: t})
	}
}

// PutTheme stores an explicit theme.
func PutTheme(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ThemeRequest](c)
		if input == nil {
			return err
		}
		t, err := theme.Parse(input.Theme)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid theme", err)
		}
		if err := a.Preference(common.ClientID(c)).Set(c.UserContext(), t); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to save theme", err)
		}
		return c.JSON(ThemeResponse{Theme: t})
	}
}

// ToggleTheme flips and stores the theme.
func ToggleTheme(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := Toggle(c, a)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to save theme", err)
		}
		return c.JSON(ThemeResponse{Theme: t})
	}
}

// Toggle loads the client's preference, flips it and saves it. A failed load
// toggles from the default.
func Toggle(c *fiber.Ctx, a *app.App) (theme.Theme, error) {
	pref := a.Preference(common.ClientID(c))
	_, _ = pref.Load(c.UserContext())
	return pref.Toggle(c.UserContext())
}
