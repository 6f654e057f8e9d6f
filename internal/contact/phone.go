package contact

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

var (
	// ErrEmptyInput is returned when the phone field is blank.
	ErrEmptyInput = errors.New("phone field is empty")
	// ErrNoPhoneMatch is returned when no 10-digit number can be located.
	ErrNoPhoneMatch = errors.New("no valid phone number found")
)

const displayRegion = "US"

var (
	plusCountryCode = regexp.MustCompile(`^\+0?1[\s.\-]*`)
	bareCountryCode = regexp.MustCompile(`^0?1[\s.\-]*`)
	phonePattern    = regexp.MustCompile(`\(?(\d{3})[()\s.\-]*(\d{3})[\s.\-]*(\d{4})`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// ParsedPhone is a 10-digit number pulled out of a free-text phone field
// together with the annotation text that surrounded it.
type ParsedPhone struct {
	Digits       string `json:"digits"`
	TextBefore   string `json:"text_before"`
	TextAfter    string `json:"text_after"`
	CombinedText string `json:"combined_text"`
}

// National renders the digits for display, e.g. "(905) 869-5712".
func (p ParsedPhone) National() string {
	if p.Digits == "" {
		return ""
	}
	number, err := phonenumbers.Parse(p.Digits, displayRegion)
	if err != nil {
		return p.Digits
	}
	return phonenumbers.Format(number, phonenumbers.NATIONAL)
}

// ParsePhoneField separates a NANP-style number from the relationship and
// status notes typed around it, e.g. "Mother (primary) 905-336-2311 - Deceased".
func ParsePhoneField(raw string) (ParsedPhone, error) {
	if strings.TrimSpace(raw) == "" {
		return ParsedPhone{}, ErrEmptyInput
	}

	text := stripCountryCode(strings.TrimSpace(raw))
	loc := findPhone(text)
	if loc == nil {
		return ParsedPhone{}, ErrNoPhoneMatch
	}

	before := CleanAnnotation(text[:loc[0]])
	after := CleanAnnotation(text[loc[1]:])

	parts := make([]string, 0, 2)
	for _, segment := range []string{before, after} {
		if segment != "" {
			parts = append(parts, segment)
		}
	}

	return ParsedPhone{
		Digits:       text[loc[2]:loc[3]] + text[loc[4]:loc[5]] + text[loc[6]:loc[7]],
		TextBefore:   before,
		TextAfter:    after,
		CombinedText: strings.Join(parts, " "),
	}, nil
}

// CleanAnnotation drops parentheses, surrounding dashes and colons, and
// collapses whitespace. Applying it twice yields the same result.
func CleanAnnotation(text string) string {
	text = strings.NewReplacer("(", "", ")", "").Replace(text)
	text = strings.TrimFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || isAnnotationSeparator(r)
	})
	return whitespaceRun.ReplaceAllString(text, " ")
}

func isAnnotationSeparator(r rune) bool {
	switch r {
	case '-', '–', '—', ':':
		return true
	}
	return false
}

// stripCountryCode removes a leading "+1"/"+01" unconditionally and a bare
// "1"/"01" only when a full number follows it directly.
func stripCountryCode(text string) string {
	if loc := plusCountryCode.FindStringIndex(text); loc != nil {
		return text[loc[1]:]
	}
	if loc := bareCountryCode.FindStringIndex(text); loc != nil {
		rest := text[loc[1]:]
		if match := findPhone(rest); match != nil && match[0] == 0 {
			return rest
		}
	}
	return text
}

// findPhone returns the submatch indexes of the first 3+3+4 digit run that
// is not glued to further digits on either side.
func findPhone(text string) []int {
	offset := 0
	for offset < len(text) {
		loc := phonePattern.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			return nil
		}
		for i := range loc {
			loc[i] += offset
		}
		if !digitAt(text, loc[0]-1) && !digitAt(text, loc[1]) {
			return loc
		}
		offset = loc[0] + 1
	}
	return nil
}

func digitAt(text string, i int) bool {
	return i >= 0 && i < len(text) && text[i] >= '0' && text[i] <= '9'
}
