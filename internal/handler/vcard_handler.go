package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legworkmedia/rnotes/api/internal/contact"
	"github.com/legworkmedia/rnotes/api/internal/dto"
	middleware "github.com/legworkmedia/rnotes/api/internal/middleware"
	"github.com/legworkmedia/rnotes/api/internal/service"
)

// VCardHandler generates contact cards from scraped job fields.
type VCardHandler struct {
	cards *service.CardService
}

// NewVCardHandler constructs a VCardHandler.
func NewVCardHandler(cards *service.CardService) *VCardHandler {
	return &VCardHandler{cards: cards}
}

// Download handles POST /vcard and responds with the .vcf attachment.
func (h *VCardHandler) Download(c echo.Context) error {
	card, ok, err := h.generate(c)
	if !ok {
		return err
	}
	return VCard(c, card)
}

// Preview handles POST /vcard/preview and responds with the card as JSON.
func (h *VCardHandler) Preview(c echo.Context) error {
	card, ok, err := h.generate(c)
	if !ok {
		return err
	}
	return Success(c, http.StatusOK, card.Message, dto.VCardPreview{
		Filename:       card.Filename,
		VCard:          string(card.Document),
		Record:         card.Record,
		Phone:          card.Phone,
		FormattedPhone: card.Phone.National(),
	})
}

// generate binds the request and runs the pipeline. When ok is false the
// error response has already been written and err is its result.
func (h *VCardHandler) generate(c echo.Context) (contact.Card, bool, error) {
	var req dto.VCardRequest
	if err := c.Bind(&req); err != nil {
		return contact.Card{}, false, Error(c, http.StatusBadRequest, "invalid payload")
	}

	slot := contact.PhoneSlot(req.PhoneSlot)
	if req.PhoneSlot == 0 {
		slot = contact.PrimaryPhone
	}
	if !slot.Valid() {
		return contact.Card{}, false, Error(c, http.StatusBadRequest, "phoneSlot must be 1 or 2")
	}

	card, err := h.cards.Generate(c.Request().Context(), req.SourceFields, slot, middleware.RequestIDFromContext(c))
	if err != nil {
		var buildErr *contact.BuildError
		if errors.As(err, &buildErr) {
			status := contact.StatusOf(card, err)
			return contact.Card{}, false, ErrorWithData(c, http.StatusUnprocessableEntity, status.Message, status)
		}
		return contact.Card{}, false, Error(c, http.StatusInternalServerError, "unable to generate contact")
	}
	return card, true, nil
}
