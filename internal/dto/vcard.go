package dto

import "github.com/legworkmedia/rnotes/api/internal/contact"

// VCardRequest carries the scraped job fields and which phone field to use.
// PhoneSlot defaults to the primary phone when omitted.
type VCardRequest struct {
	contact.SourceFields
	PhoneSlot int `json:"phoneSlot,omitempty"`
}

// VCardPreview is the JSON rendering of a generated card.
type VCardPreview struct {
	Filename       string              `json:"filename"`
	VCard          string              `json:"vcard"`
	Record         contact.Record      `json:"record"`
	Phone          contact.ParsedPhone `json:"phone"`
	FormattedPhone string              `json:"formatted_phone"`
}
