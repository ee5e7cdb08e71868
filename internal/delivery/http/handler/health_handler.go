package handler

import (
	"github.com/gofiber/fiber/v2"
)

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString("ok")
}
