package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legworkmedia/rnotes/api/internal/automation"
	"github.com/legworkmedia/rnotes/api/internal/dto"
	middleware "github.com/legworkmedia/rnotes/api/internal/middleware"
	"github.com/legworkmedia/rnotes/api/internal/service"
)

// JobHandler forwards scraped jobs to the Drive folder automation.
type JobHandler struct {
	jobs *service.JobService
}

// NewJobHandler constructs a JobHandler.
func NewJobHandler(jobs *service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// Create handles POST /jobs.
func (h *JobHandler) Create(c echo.Context) error {
	var req dto.CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	result, err := h.jobs.Create(c.Request().Context(), req.SourceFields, middleware.RequestIDFromContext(c))
	if err != nil {
		var rejection *automation.RejectionError
		switch {
		case errors.Is(err, service.ErrMissingJobNumber):
			return Error(c, http.StatusUnprocessableEntity, "Could not find Job Number.")
		case errors.Is(err, automation.ErrNotConfigured):
			return Error(c, http.StatusServiceUnavailable, "Folder automation is not configured.")
		case errors.As(err, &rejection):
			return ErrorWithData(c, http.StatusBadGateway, "Error: "+rejection.Message, result)
		default:
			return ErrorWithData(c, http.StatusBadGateway, "Connection failed.", result)
		}
	}

	return Success(c, http.StatusCreated, "Success! Folder Created.", result)
}
