package notes

import (
	"errors"
	"strings"
)

const rule = "=============================================="

var (
	// ErrEmptyNote is returned when the note body is blank.
	ErrEmptyNote = errors.New("note text cannot be empty")
	// ErrMissingHeader is returned when the stream or note type is blank.
	ErrMissingHeader = errors.New("stream and note type are required")
)

// Note is a Restornet file note awaiting its header block.
type Note struct {
	Stream string `json:"stream"`
	Type   string `json:"type"`
	Text   string `json:"text"`
}

// FormatRestornet prefixes the note with the ruled "{type} - {stream}" header
// Restornet expects. The body is kept as typed.
func FormatRestornet(n Note) (string, error) {
	if strings.TrimSpace(n.Text) == "" {
		return "", ErrEmptyNote
	}
	stream := strings.TrimSpace(n.Stream)
	noteType := strings.TrimSpace(n.Type)
	if stream == "" || noteType == "" {
		return "", ErrMissingHeader
	}

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(noteType + " - " + stream + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(n.Text)
	return b.String(), nil
}
