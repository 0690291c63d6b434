package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// LocalsKey is the Fiber locals key under which the ray id is stored.
	LocalsKey = "ray_id"
	// HeaderName is the header carrying the ray id on requests and responses.
	HeaderName = "X-Ray-ID"
)

// New returns a middleware that tags every request with a unique ray id.
// An incoming X-Ray-ID header is honored so callers can correlate retries.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
