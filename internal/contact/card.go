package contact

import "fmt"

// Card is a generated vCard together with everything the caller needs to
// hand it off: the record it was built from, the download name and a
// status line for the user.
type Card struct {
	Record   Record      `json:"record"`
	Phone    ParsedPhone `json:"phone"`
	Document Document    `json:"vcard"`
	Filename string      `json:"filename"`
	Message  string      `json:"message"`
}

// Status is the short message shown to the user after a generation attempt.
type Status struct {
	Message string `json:"message"`
	IsError bool   `json:"is_error"`
}

// StatusOf summarizes a generation attempt for display.
func StatusOf(card Card, err error) Status {
	if err != nil {
		return Status{Message: err.Error(), IsError: true}
	}
	return Status{Message: card.Message}
}

// Generator runs the full pipeline from scraped fields to a named vCard.
type Generator struct {
	builder    *Builder
	serializer *Serializer
}

// NewGenerator wires a builder and serializer together.
func NewGenerator(builder *Builder, serializer *Serializer) *Generator {
	if builder == nil {
		builder = NewBuilder("")
	}
	if serializer == nil {
		serializer = NewSerializer()
	}
	return &Generator{builder: builder, serializer: serializer}
}

// Generate builds, serializes and names a card for the selected phone field.
func (g *Generator) Generate(fields SourceFields, slot PhoneSlot) (Card, error) {
	rec, phone, err := g.builder.Build(fields, slot)
	if err != nil {
		return Card{}, err
	}
	return Card{
		Record:   rec,
		Phone:    phone,
		Document: g.serializer.Serialize(rec),
		Filename: SanitizeFilename(rec.FullName),
		Message:  fmt.Sprintf("Contact downloaded: %s", rec.FullName),
	}, nil
}
