package contact

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// ProductID identifies the generator in the PRODID line.
	ProductID = "-//LEGWORKmedia//Rnotes & Workspace 1.6//EN"
	// DefaultCountry fills the last ADR component.
	DefaultCountry = "USA"

	uidPrefix = "rnotes"
	crlf      = "\r\n"
)

var valueEscaper = strings.NewReplacer(
	`\`, `\\`,
	",", `\,`,
	";", `\;`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
)

// Document is a serialized vCard 3.0 card.
type Document string

// Lines splits the document on its CRLF terminators.
func (d Document) Lines() []string {
	return strings.Split(string(d), crlf)
}

// Serializer renders Records as vCard 3.0 documents.
type Serializer struct {
	country string
	now     func() time.Time
	newID   func() string
}

// SerializerOption configures optional serializer behaviour.
type SerializerOption func(*Serializer)

// WithCountry overrides the ADR country component.
func WithCountry(country string) SerializerOption {
	return func(s *Serializer) {
		if c := strings.TrimSpace(country); c != "" {
			s.country = c
		}
	}
}

// WithClock overrides the time source used for UIDs.
func WithClock(now func() time.Time) SerializerOption {
	return func(s *Serializer) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDSource overrides the random UID suffix generator.
func WithIDSource(newID func() string) SerializerOption {
	return func(s *Serializer) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewSerializer builds a serializer with sensible defaults.
func NewSerializer(opts ...SerializerOption) *Serializer {
	s := &Serializer{
		country: DefaultCountry,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Serialize renders the record. Optional properties are omitted when empty and
// every text value is escaped.
func (s *Serializer) Serialize(rec Record) Document {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"PRODID:" + ProductID,
		"UID:" + s.uid(),
		"FN:" + escapeValue(rec.FullName),
		fmt.Sprintf("N:%s;%s;;;", escapeValue(rec.LastName), escapeValue(rec.FirstName)),
	}
	if rec.Organization != "" {
		lines = append(lines, "ORG:"+escapeValue(rec.Organization))
	}
	if rec.PhoneDigits != "" {
		lines = append(lines, "TEL;TYPE=CELL:"+rec.PhoneDigits)
	}
	if rec.Email != "" {
		lines = append(lines, "EMAIL:"+escapeValue(rec.Email))
	}
	if rec.HasAddress() {
		lines = append(lines, fmt.Sprintf("ADR;TYPE=WORK:;;%s;%s;%s;%s;%s",
			escapeValue(rec.Address),
			escapeValue(rec.City),
			escapeValue(rec.State),
			escapeValue(rec.Zip),
			escapeValue(s.country),
		))
	}
	lines = append(lines, "END:VCARD")
	return Document(strings.Join(lines, crlf))
}

func (s *Serializer) uid() string {
	return fmt.Sprintf("%s-%d-%s", uidPrefix, s.now().UnixMilli(), s.newID())
}

func escapeValue(v string) string {
	return valueEscaper.Replace(v)
}
