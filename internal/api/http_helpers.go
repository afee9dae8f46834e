package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ayoubfs/rota/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func respondServiceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return apiError(c, fiber.StatusUnprocessableEntity, validationErr.Reason)
	}
	var authErr *services.AuthorizationError
	if errors.As(err, &authErr) {
		return apiError(c, fiber.StatusForbidden, authErr.Reason)
	}
	var storeErr *services.StoreError
	if errors.As(err, &storeErr) {
		return apiError(c, fiber.StatusBadGateway, "storage unavailable, retry the request")
	}
	if errors.Is(err, services.ErrInvalidCredentials) {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if errors.Is(err, services.ErrWeakPassword) {
		return apiError(c, fiber.StatusUnprocessableEntity, "password too weak")
	}
	return apiError(c, fiber.StatusInternalServerError, "internal error")
}

func parseDateParam(value string) (time.Time, error) {
	return time.Parse(time.DateOnly, value)
}
