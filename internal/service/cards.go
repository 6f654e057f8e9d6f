package service

import (
	"context"
	"log"

	"github.com/legworkmedia/rnotes/api/internal/contact"
)

// CardService turns scraped job fields into downloadable vCards.
type CardService struct {
	generator *contact.Generator
}

// NewCardService wraps a configured generator.
func NewCardService(generator *contact.Generator) *CardService {
	return &CardService{generator: generator}
}

// Generate builds the card for the selected phone field. Validation failures
// come back as *contact.BuildError so callers can show the message as-is.
func (s *CardService) Generate(_ context.Context, fields contact.SourceFields, slot contact.PhoneSlot, requestID string) (contact.Card, error) {
	card, err := s.generator.Generate(fields, slot)
	if err != nil {
		log.Printf("request_id=%s event=vcard_rejected job=%q slot=%d reason=%q", requestID, fields.JobNumber, slot, err.Error())
		return contact.Card{}, err
	}
	log.Printf("request_id=%s event=vcard_generated job=%q slot=%d filename=%s", requestID, fields.JobNumber, slot, card.Filename)
	return card, nil
}
