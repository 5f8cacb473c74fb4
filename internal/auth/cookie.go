package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the session cookie. Its value is opaque to everything
// except the token manager.
const CookieName = "token"

// SetTokenCookie binds the session token to the client. Secure is set only
// in production so local development over plain HTTP keeps working.
func SetTokenCookie(c *fiber.Ctx, token string, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		Expires:  time.Now().Add(SessionTTL),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// TokenFromCookie reads the raw session token, or "" when absent.
func TokenFromCookie(c *fiber.Ctx) string {
	return c.Cookies(CookieName)
}

// ClearTokenCookie removes the client-held session copy. The token itself
// stays valid until expiry; logout has no server-side effect.
func ClearTokenCookie(c *fiber.Ctx, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
