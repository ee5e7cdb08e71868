package utils

import (
	"github.com/epi-dashboard/internal/pkg/errors"
	"github.com/gofiber/fiber/v2"
)

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// SendJSON отдаёт payload без обёртки: фронтенды читают поля верхнего уровня
func SendJSON(c *fiber.Ctx, payload interface{}) error {
	return c.JSON(payload)
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
