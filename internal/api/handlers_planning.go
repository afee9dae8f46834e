package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ayoubfs/rota/internal/planning"
)

// Template ships the weekly plan to the editing forms: weekday -> period ->
// ordered activities, weekdays and periods in canonical order.
func (handler *Handler) Template(c *fiber.Ctx) error {
	type periodPayload struct {
		Period     planning.Period `json:"period"`
		Activities []string        `json:"activities"`
	}
	type weekdayPayload struct {
		Weekday planning.Weekday `json:"weekday"`
		Periods []periodPayload  `json:"periods"`
	}

	payload := make([]weekdayPayload, 0, len(planning.Weekdays))
	for _, weekday := range planning.Weekdays {
		day := weekdayPayload{Weekday: weekday}
		for _, period := range planning.PeriodsOf(weekday) {
			day.Periods = append(day.Periods, periodPayload{
				Period:     period,
				Activities: planning.ActivitiesOf(weekday, period),
			})
		}
		payload = append(payload, day)
	}
	return c.JSON(payload)
}

func (handler *Handler) Categories(c *fiber.Ctx) error {
	return c.JSON(planning.Categories)
}
