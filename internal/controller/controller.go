package controller

import (
	"errors"

	"bizhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// mapServiceError turns the service sentinel errors into HTTP statuses; other
// errors fall through to the global error middleware.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "resource not found")
	case errors.Is(err, service.ErrForbidden):
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	default:
		return err
	}
}
