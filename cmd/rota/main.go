package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ayoubfs/rota/internal/api"
	"github.com/ayoubfs/rota/internal/cli"
	"github.com/ayoubfs/rota/internal/db"
	"github.com/ayoubfs/rota/internal/planning"
)

func main() {
	dbPath := getEnv("DB_PATH", filepath.Join("data", "rota.db"))

	if len(os.Args) > 1 {
		runCommand(dbPath, os.Args[1], os.Args[2:])
		return
	}

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey, err := resolveSecretKey()
	if err != nil {
		log.Fatalf("SECRET_KEY rejected: %v", err)
	}
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"

	if err := planning.ValidateCatalogs(); err != nil {
		log.Fatalf("activity catalog invalid: %v", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, secretKey, cookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "Rota",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Rota listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func runCommand(dbPath string, command string, args []string) {
	switch command {
	case "reset-password":
		if len(args) != 1 {
			log.Fatal("usage: rota reset-password <email>")
		}
		if err := cli.RunResetPasswordCommand(dbPath, args[0]); err != nil {
			log.Fatalf("reset-password failed: %v", err)
		}
	case "seed-admin":
		if len(args) < 1 {
			log.Fatal("usage: rota seed-admin <email> [full name]")
		}
		fullName := strings.Join(args[1:], " ")
		if err := cli.RunSeedAdminCommand(dbPath, args[0], fullName); err != nil {
			log.Fatalf("seed-admin failed: %v", err)
		}
	default:
		log.Fatalf("unknown command %q (expected reset-password or seed-admin)", command)
	}
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY must be set")
	}
	if secret == "change_me_in_production" {
		return "", errors.New("SECRET_KEY still uses the placeholder value")
	}
	if len(secret) < 32 {
		return "", errors.New("SECRET_KEY must be at least 32 characters")
	}
	return secret, nil
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
