package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legworkmedia/rnotes/api/internal/dto"
	"github.com/legworkmedia/rnotes/api/internal/notes"
)

// NotesHandler formats Restornet notes for the clipboard.
type NotesHandler struct{}

// NewNotesHandler constructs a NotesHandler.
func NewNotesHandler() *NotesHandler {
	return &NotesHandler{}
}

// Restornet handles POST /notes/restornet.
func (h *NotesHandler) Restornet(c echo.Context) error {
	var req notes.Note
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	text, err := notes.FormatRestornet(req)
	switch {
	case errors.Is(err, notes.ErrEmptyNote):
		return Error(c, http.StatusUnprocessableEntity, "Note text cannot be empty.")
	case errors.Is(err, notes.ErrMissingHeader):
		return Error(c, http.StatusUnprocessableEntity, "Stream and note type are required.")
	case err != nil:
		return Error(c, http.StatusInternalServerError, "unable to format note")
	}

	return Success(c, http.StatusOK, "Restornet note copied!", dto.RestornetNoteResponse{Note: text})
}
