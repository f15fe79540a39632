package common

import (
	"time"

	"github.com/amirasaad/fxconv/pkg/i18n"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// ClientCookie carries the anonymous client id that scopes the theme.
const ClientCookie = "fxconv_client"

const clientIDKey = "client_id"

const clientCookieTTL = 365 * 24 * time.Hour

// ClientIdentity ensures every request has a client id, issuing a new
// cookie when the current one is absent or not a UUID.
func ClientIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Cookies(ClientCookie))
		if err != nil {
			id = uuid.New()
			c.Cookie(&fiber.Cookie{
				Name:     ClientCookie,
				Value:    id.String(),
				Path:     "/",
				Expires:  time.Now().Add(clientCookieTTL),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(clientIDKey, id.String())
		return c.Next()
	}
}

// ClientID returns the id set by ClientIdentity, or "".
func ClientID(c *fiber.Ctx) string {
	id, _ := c.Locals(clientIDKey).(string)
	return id
}

// Translator resolves the request language from Accept-Language, falling
// back to fallback when the header is absent.
func Translator(c *fiber.Ctx, fallback language.Tag) i18n.Translator {
	if h := c.Get(fiber.HeaderAcceptLanguage); h != "" {
		return i18n.New(i18n.FromAcceptLanguage(h))
	}
	return i18n.New(fallback)
}
