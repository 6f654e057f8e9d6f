package contact

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// FallbackBaseName is used when nothing usable survives sanitization.
	FallbackBaseName = "contact"
	// FileExtension is appended to every generated file name.
	FileExtension = ".vcf"
)

// SanitizeFilename derives a download name from a card's display name.
// Whitespace runs become a single underscore, accented letters are folded to
// ASCII and anything outside [A-Za-z0-9_-] is dropped.
func SanitizeFilename(fullName string) string {
	joined := strings.Join(strings.Fields(foldAccents(fullName)), "_")

	var b strings.Builder
	b.Grow(len(joined) + len(FileExtension))
	meaningful := false
	for _, r := range joined {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			meaningful = true
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		}
	}

	base := b.String()
	if !meaningful {
		base = FallbackBaseName
	}
	return base + FileExtension
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
