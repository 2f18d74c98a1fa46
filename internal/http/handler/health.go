package handler

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports healthy when the data directory accepts writes.
func HealthCheck(dataDir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := os.CreateTemp(dataDir, ".health-*")
		if err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "data directory unavailable")
		}
		name := f.Name()
		f.Close()
		os.Remove(name)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe answers 200 as long as the process serves requests.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
