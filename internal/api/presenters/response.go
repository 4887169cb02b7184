package presenters

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// SuccessResponse writes the payload as-is. Lists come back as raw
// arrays and store acknowledgments as raw result descriptors, matching
// what the front-ends already consume.
func SuccessResponse(c *fiber.Ctx, data any, code int) error {
	return c.Status(code).JSON(data)
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	if err != nil {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
	}
	return c.Status(code).JSON(fiber.Map{"message": message})
}
