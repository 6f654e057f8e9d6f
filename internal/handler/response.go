package handler

import (
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legworkmedia/rnotes/api/internal/contact"
)

const (
	vcardContentType = "text/vcard; charset=utf-8"
	// HeaderStatusMessage carries the user-facing status line on attachment responses.
	HeaderStatusMessage = "X-Status-Message"
)

// APIResponse describes the standard envelope returned by the API.
// Status "error" doubles as the extension's is-error flag.
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Success sends a successful response using the shared envelope format.
func Success(c echo.Context, status int, message string, data any) error {
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, APIResponse{Status: "success", Message: message, Data: data})
}

// Error sends an error response using the shared envelope format.
func Error(c echo.Context, status int, message string) error {
	return ErrorWithData(c, status, message, nil)
}

// ErrorWithData sends an error envelope that still carries partial data.
func ErrorWithData(c echo.Context, status int, message string, data any) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, APIResponse{Status: "error", Message: message, Data: data})
}

// VCard streams a generated card as a downloadable attachment.
func VCard(c echo.Context, card contact.Card) error {
	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": card.Filename}))
	header.Set(HeaderStatusMessage, mime.QEncoding.Encode("utf-8", card.Message))
	return c.Blob(http.StatusOK, vcardContentType, []byte(card.Document))
}
