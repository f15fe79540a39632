// Package webapi provides the HTTP surface of the converter.
// It is organized into sub-packages:
// - form: the server-rendered conversion form
// - convert: conversion and input masking endpoints
// - theme: per-client theme preference
// - currency: currency list and localized copy
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/fxconv/pkg/app"
	"github.com/amirasaad/fxconv/webapi/common"
	convertweb "github.com/amirasaad/fxconv/webapi/convert"
	currencyweb "github.com/amirasaad/fxconv/webapi/currency"
	"github.com/amirasaad/fxconv/webapi/form"
	themeweb "github.com/amirasaad/fxconv/webapi/theme"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "fxconv",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	if rl := a.Config.RateLimit; rl != nil && rl.MaxRequests > 0 {
		// Uses X-Forwarded-For header when behind a proxy
		// Falls back to X-Real-IP or direct IP if needed
		fiberApp.Use(limiter.New(limiter.Config{
			Max:          rl.MaxRequests,
			Expiration:   rl.Window,
			KeyGenerator: clientIP,
			LimitReached: func(c *fiber.Ctx) error {
				return common.ProblemDetailsJSON(
					c,
					"Too Many Requests",
					errors.New("rate limit exceeded"),
					fiber.StatusTooManyRequests,
				)
			},
		}))
	}
	fiberApp.Use(recover.New())
	if a.Config.Env != "test" {
		fiberApp.Use(logger.New())
	}
	fiberApp.Use(common.ClientIdentity())

	// Health check endpoint
	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Debug endpoint to list all routes
	if a.Config.Env == "development" {
		fiberApp.Get("/debug/routes", func(c *fiber.Ctx) error {
			var routeList []map[string]string
			for _, route := range fiberApp.GetRoutes(true) {
				routeList = append(routeList, map[string]string{
					"method": route.Method,
					"path":   route.Path,
				})
			}
			return c.JSON(routeList)
		})
	}

	lang := a.Deps.Language
	form.Routes(fiberApp, a)
	convertweb.Routes(fiberApp, a.Conversion, lang)
	themeweb.Routes(fiberApp, a)
	currencyweb.Routes(fiberApp, lang)
	return fiberApp
}

// clientIP keys the rate limiter on the first X-Forwarded-For hop, then
// X-Real-IP, then the peer address.
func clientIP(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
			return strings.TrimSpace(forwardedFor[:commaIndex])
		}
		return strings.TrimSpace(forwardedFor)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
