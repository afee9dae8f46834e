package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ayoubfs/rota/internal/models"
)

type residentPayload struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

type createResidentInput struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// Residents lists every profile for the directory pages and the admin's
// resident picker.
func (handler *Handler) Residents(c *fiber.Ctx) error {
	users, err := handler.repositories.Users.List()
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "storage unavailable, retry the request")
	}

	payload := make([]residentPayload, 0, len(users))
	for _, user := range users {
		payload = append(payload, residentPayload{
			ID:       user.ID,
			FullName: user.DisplayName(),
			Phone:    user.Phone,
			Role:     user.Role,
		})
	}
	return c.JSON(payload)
}

func (handler *Handler) ResidentDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid resident id")
	}

	user, err := handler.repositories.Users.FindByID(uint(id))
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "resident not found")
	}

	return c.JSON(fiber.Map{
		"id":        user.ID,
		"full_name": user.DisplayName(),
		"email":     user.Email,
		"phone":     user.Phone,
		"role":      user.Role,
	})
}

// CreateResident registers a new account. Routed behind AdminOnly.
func (handler *Handler) CreateResident(c *fiber.Ctx) error {
	input := createResidentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = models.RoleResident
	}
	if role != models.RoleAdmin && role != models.RoleResident {
		return apiError(c, fiber.StatusBadRequest, "unknown role")
	}
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.FullName) == "" {
		return apiError(c, fiber.StatusBadRequest, "email and full name are required")
	}

	user := models.User{
		Email:     input.Email,
		FullName:  strings.TrimSpace(input.FullName),
		Phone:     strings.TrimSpace(input.Phone),
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := handler.authService.CreateAccount(&user, input.Password); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(residentPayload{
		ID:       user.ID,
		FullName: user.DisplayName(),
		Phone:    user.Phone,
		Role:     user.Role,
	})
}
