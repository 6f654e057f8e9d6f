package contact

import "strings"

// ClientName is the cleaned "LAST, First" form of the insured's name.
type ClientName struct {
	Display string `json:"display"`
	Last    string `json:"last"`
	First   string `json:"first"`
}

// NormalizeName drops the trailing "(XA) (*) (H)" codes from a raw client
// name and splits the remainder on its first comma.
func NormalizeName(raw string) ClientName {
	display := raw
	if idx := strings.IndexByte(display, '('); idx >= 0 {
		display = display[:idx]
	}
	display = strings.TrimSpace(display)

	name := ClientName{Display: display, Last: display}
	if last, first, ok := strings.Cut(display, ","); ok {
		name.Last = strings.TrimSpace(last)
		name.First = strings.TrimSpace(first)
	}
	return name
}
