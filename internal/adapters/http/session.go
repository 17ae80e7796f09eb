package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const sessionLocal = "session_id"

// SessionMiddleware gives every browser a session ID cookie. Unknown or
// malformed cookie values are replaced, and the expiry slides on each request.
func SessionMiddleware(cookieName string, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cookieName)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		cookie := &fiber.Cookie{
			Name:     cookieName,
			Value:    id,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		}
		if ttl > 0 {
			cookie.Expires = time.Now().Add(ttl)
		}
		c.Cookie(cookie)
		c.Locals(sessionLocal, id)

		return c.Next()
	}
}

func sessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(sessionLocal).(string)
	return id
}
