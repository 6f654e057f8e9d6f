package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legworkmedia/rnotes/api/internal/auth"
	"github.com/legworkmedia/rnotes/api/internal/config"
	"github.com/legworkmedia/rnotes/api/internal/handler"
	middlewarepkg "github.com/legworkmedia/rnotes/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth  *handler.AuthHandler
	VCard *handler.VCardHandler
	Jobs  *handler.JobHandler
	Notes *handler.NotesHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.POST("/auth/login", handlers.Auth.Login)

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))

	vcardLimit := middlewarepkg.RateLimiter(cfg.RateLimitVCard, "/vcard")
	secured.POST("/vcard", handlers.VCard.Download, vcardLimit)
	secured.POST("/vcard/preview", handlers.VCard.Preview, vcardLimit)

	if handlers.Jobs != nil {
		secured.POST("/jobs", handlers.Jobs.Create,
			middlewarepkg.RequireRole(cfg.JobRoles...),
			middlewarepkg.RateLimiter(cfg.RateLimitJobs, "/jobs"),
		)
	}

	secured.POST("/notes/restornet", handlers.Notes.Restornet)
}
