package rayid

import (
	"nomo-governance/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the ray id.
const HeaderName = "X-Ray-ID"

// New returns a handler assigning every request a ray id. An incoming valid
// UUID in the header is kept so callers can correlate across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
