package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ayoubfs/rota/internal/services"
)

// Roster serves the grouped view. Mode "jour" covers the single date,
// "semaine" the six-day week around it. Visibility is decided by the roster
// service, not here.
func (handler *Handler) Roster(c *fiber.Ctx) error {
	viewer, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	ref, err := parseDateParam(c.Query("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	mode := strings.TrimSpace(c.Query("mode", services.RosterModeWeek))
	target, err := parseOptionalUserQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	view, err := handler.roster.Aggregate(viewer, ref, mode, target)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(view)
}
