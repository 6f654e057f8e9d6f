package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/legworkmedia/rnotes/api/internal/auth"
	"github.com/legworkmedia/rnotes/api/internal/automation"
	"github.com/legworkmedia/rnotes/api/internal/config"
	"github.com/legworkmedia/rnotes/api/internal/contact"
	"github.com/legworkmedia/rnotes/api/internal/handler"
	middlewarepkg "github.com/legworkmedia/rnotes/api/internal/middleware"
	"github.com/legworkmedia/rnotes/api/internal/router"
	"github.com/legworkmedia/rnotes/api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Operator.Email == "" || cfg.Operator.PasswordHash == "" {
		log.Printf("warning: OPERATOR_EMAIL or OPERATOR_PASSWORD_HASH unset, login is disabled")
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	generator := contact.NewGenerator(
		contact.NewBuilder(cfg.DefaultOrganization),
		contact.NewSerializer(contact.WithCountry(cfg.VCardCountry)),
	)
	httpClient := &http.Client{Timeout: 15 * time.Second}
	automationClient := automation.NewClient(httpClient, cfg.AutomationURL)

	authService := service.NewAuthService(cfg.Operator, jwtManager)
	cardService := service.NewCardService(generator)
	jobService := service.NewJobService(automationClient, service.NewFieldChecker())

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, jwtManager, router.Handlers{
		Auth:  handler.NewAuthHandler(authService),
		VCard: handler.NewVCardHandler(cardService),
		Jobs:  handler.NewJobHandler(jobService),
		Notes: handler.NewNotesHandler(),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	log.Printf("rnotes api listening on :%s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
