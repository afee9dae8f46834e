package api

import (
	"time"

	"gorm.io/gorm"

	"github.com/ayoubfs/rota/internal/db"
	"github.com/ayoubfs/rota/internal/services"
)

const (
	authCookieName = "rota_auth"
	contextUserKey = "current_user"

	authTokenTTL = 7 * 24 * time.Hour
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool

	repositories *db.Repositories
	authService  *services.AuthService
	planner      *services.PlannerService
	roster       *services.RosterService
}

func NewHandler(database *gorm.DB, secretKey string, cookieSecure bool) *Handler {
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		cookieSecure: cookieSecure,
	}
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.planner = services.NewPlannerService(handler.repositories.Schedule)
	handler.roster = services.NewRosterService(handler.repositories.Schedule, handler.repositories.Users)
	return handler
}
