package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ayoubfs/rota/internal/models"
	"github.com/ayoubfs/rota/internal/planning"
	"github.com/ayoubfs/rota/internal/services"
)

type selectionPayload struct {
	Date     string `json:"date"`
	Period   string `json:"period"`
	Activity string `json:"activity"`
}

type weekSelectionsInput struct {
	UserID     uint               `json:"user_id"`
	Date       string             `json:"date"`
	Selections []selectionPayload `json:"selections"`
}

type daySelectionsInput struct {
	UserID     uint               `json:"user_id"`
	Date       string             `json:"date"`
	Category   string             `json:"category"`
	Selections []selectionPayload `json:"selections"`
}

// targetUserID resolves whose selections a call is about: the caller's own
// by default, someone else's only when explicitly requested (the planner
// enforces who may do that).
func targetUserID(actor models.User, requested uint) uint {
	if requested == 0 {
		return actor.ID
	}
	return requested
}

func parseSelections(payload []selectionPayload) ([]planning.Triple, error) {
	triples := make([]planning.Triple, 0, len(payload))
	for _, selection := range payload {
		date, err := parseDateParam(strings.TrimSpace(selection.Date))
		if err != nil {
			return nil, err
		}
		triples = append(triples, planning.Triple{
			Date:     date,
			Period:   planning.Period(selection.Period),
			Activity: selection.Activity,
		})
	}
	return triples, nil
}

// GetSelections pre-populates an editing form with the persisted triples.
func (handler *Handler) GetSelections(c *fiber.Ctx) error {
	actor, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	requested, err := parseOptionalUserQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}
	target := targetUserID(actor, requested)
	if !services.CanActFor(actor, target) {
		return apiError(c, fiber.StatusForbidden, "cannot view another resident's selections")
	}

	from, err := parseDateParam(c.Query("from"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := parseDateParam(c.Query("to"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	triples, err := handler.planner.EntriesFor(target, from, to)
	if err != nil {
		return respondServiceError(c, err)
	}

	payload := make([]selectionPayload, 0, len(triples))
	for _, triple := range triples {
		payload = append(payload, selectionPayload{
			Date:     triple.Date.Format(time.DateOnly),
			Period:   string(triple.Period),
			Activity: triple.Activity,
		})
	}
	return c.JSON(fiber.Map{"user_id": target, "selections": payload})
}

// PutWeekSelections reconciles a whole Monday-to-Saturday week, every
// category at once.
func (handler *Handler) PutWeekSelections(c *fiber.Ctx) error {
	actor, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := weekSelectionsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	ref, err := parseDateParam(strings.TrimSpace(input.Date))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	intent, err := parseSelections(input.Selections)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid selection date")
	}

	scope := planning.WeekScope(targetUserID(actor, input.UserID), ref)
	result, err := handler.planner.Reconcile(actor, scope, intent)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}

// PutDaySelections reconciles a single date restricted to one category,
// leaving the other categories of that day untouched.
func (handler *Handler) PutDaySelections(c *fiber.Ctx) error {
	actor, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := daySelectionsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	date, err := parseDateParam(strings.TrimSpace(input.Date))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	category := planning.CategoryKey(strings.TrimSpace(input.Category))
	if !planning.ValidCategory(category) {
		return apiError(c, fiber.StatusBadRequest, "unknown category")
	}
	intent, err := parseSelections(input.Selections)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid selection date")
	}

	scope := planning.DayScope(targetUserID(actor, input.UserID), date, category)
	result, err := handler.planner.Reconcile(actor, scope, intent)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}

func parseOptionalUserQuery(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Query("user"))
	if raw == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}
