package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	planning := api.Group("/planning", handler.AuthRequired)
	planning.Get("/template", handler.Template)
	planning.Get("/categories", handler.Categories)

	selections := api.Group("/selections", handler.AuthRequired)
	selections.Get("", handler.GetSelections)
	selections.Put("/week", handler.PutWeekSelections)
	selections.Put("/day", handler.PutDaySelections)

	api.Get("/roster", handler.AuthRequired, handler.Roster)

	residents := api.Group("/residents", handler.AuthRequired)
	residents.Get("", handler.Residents)
	residents.Get("/:id", handler.ResidentDetail)
	residents.Post("", handler.AdminOnly, handler.CreateResident)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/change-password", handler.ChangePassword)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
