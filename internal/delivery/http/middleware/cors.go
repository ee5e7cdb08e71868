package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - middleware для настройки Cross-Origin Resource Sharing.
// Origin из списка отражается в Access-Control-Allow-Origin, preflight получает 204.
func CORS(allowOrigins []string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: strings.Join(allowOrigins, ","),
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	})
}

// Preflight отвечает 204 на OPTIONS, которые CORS middleware пропустил дальше
// (без Origin или Access-Control-Request-Method)
func Preflight() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}
