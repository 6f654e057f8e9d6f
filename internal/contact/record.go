package contact

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

// DefaultOrganization labels cards for jobs without a claim number.
const DefaultOrganization = "North Park Cleaners"

// ErrMissingRequiredMetadata is returned when the job number or client name is blank.
var ErrMissingRequiredMetadata = errors.New("job number and client name are required")

// PhoneSlot selects which of the two scraped phone fields feeds the card.
type PhoneSlot int

const (
	PrimaryPhone   PhoneSlot = 1
	SecondaryPhone PhoneSlot = 2
)

// Valid reports whether the slot refers to one of the scraped phone fields.
func (s PhoneSlot) Valid() bool {
	return s == PrimaryPhone || s == SecondaryPhone
}

// SourceFields are the raw values scraped from the job page. Missing fields
// arrive as empty strings.
type SourceFields struct {
	JobNumber   string `json:"jobNumber"`
	ClaimNumber string `json:"claimNumber"`
	ClientName  string `json:"clientName"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Phone2      string `json:"phone2"`
}

// PhoneFor returns the raw text of the requested phone field.
func (f SourceFields) PhoneFor(slot PhoneSlot) string {
	if slot == SecondaryPhone {
		return f.Phone2
	}
	return f.Phone
}

// Record is the canonical contact assembled from one job and one phone field.
type Record struct {
	FullName     string `json:"full_name"`
	LastName     string `json:"last_name"`
	FirstName    string `json:"first_name"`
	Organization string `json:"organization"`
	PhoneDigits  string `json:"phone"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Zip          string `json:"zip,omitempty"`
}

// HasAddress reports whether any ADR component is populated.
func (r Record) HasAddress() bool {
	return r.Address != "" || r.City != "" || r.State != "" || r.Zip != ""
}

// BuildError carries the message shown to the user when a card cannot be built.
type BuildError struct {
	Reason  error
	Message string
}

func (e *BuildError) Error() string {
	return e.Message
}

func (e *BuildError) Unwrap() error {
	return e.Reason
}

// Builder assembles Records from scraped fields.
type Builder struct {
	organization string
}

// NewBuilder constructs a builder; an empty organization falls back to DefaultOrganization.
func NewBuilder(defaultOrganization string) *Builder {
	org := strings.TrimSpace(defaultOrganization)
	if org == "" {
		org = DefaultOrganization
	}
	return &Builder{organization: org}
}

// Build combines job metadata, the normalized client name and the parsed
// phone field into a Record. The returned error is always a *BuildError.
func (b *Builder) Build(fields SourceFields, slot PhoneSlot) (Record, ParsedPhone, error) {
	jobNumber := strings.TrimSpace(fields.JobNumber)
	name := NormalizeName(fields.ClientName)
	if jobNumber == "" || name.Display == "" {
		return Record{}, ParsedPhone{}, &BuildError{
			Reason:  ErrMissingRequiredMetadata,
			Message: "Job Number and Client Name required.",
		}
	}

	phone, err := ParsePhoneField(fields.PhoneFor(slot))
	if err != nil {
		return Record{}, ParsedPhone{}, &BuildError{
			Reason:  err,
			Message: fmt.Sprintf("No valid phone number found in Phone %d.", slot),
		}
	}

	fullName := jobNumber + " - " + name.Display
	if phone.CombinedText != "" {
		fullName += " - " + phone.CombinedText
	}

	firstName := name.First
	if phone.CombinedText != "" {
		if firstName != "" {
			firstName = fmt.Sprintf("%s (%s)", firstName, phone.CombinedText)
		} else {
			firstName = phone.CombinedText
		}
	}

	org := b.organization
	if claim := strings.TrimSpace(fields.ClaimNumber); claim != "" {
		org = "Claim: " + claim
	}

	return Record{
		FullName:     trimDashTail(fullName),
		LastName:     name.Last,
		FirstName:    firstName,
		Organization: org,
		PhoneDigits:  phone.Digits,
		Email:        normalizeEmail(fields.Email),
		Address:      strings.TrimSpace(fields.Address),
		City:         strings.TrimSpace(fields.City),
		State:        strings.TrimSpace(fields.State),
		Zip:          strings.TrimSpace(fields.Zip),
	}, phone, nil
}

func trimDashTail(s string) string {
	s = strings.TrimSpace(s)
	for strings.HasSuffix(s, "-") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "-"))
	}
	return s
}

// normalizeEmail trims the address and converts an internationalized domain
// to its ASCII form. Unconvertible domains are left untouched.
func normalizeEmail(raw string) string {
	email := strings.TrimSpace(raw)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || domain == "" {
		return email
	}
	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil || ascii == "" {
		return email
	}
	return local + "@" + ascii
}
