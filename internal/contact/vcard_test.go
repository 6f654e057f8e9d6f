package contact

import (
	"strings"
	"testing"
	"time"
)

func fixedSerializer(opts ...SerializerOption) *Serializer {
	base := []SerializerOption{
		WithClock(func() time.Time { return time.UnixMilli(1700000000000) }),
		WithIDSource(func() string { return "abc123" }),
	}
	return NewSerializer(append(base, opts...)...)
}

func TestSerializeFullRecord(t *testing.T) {
	rec := Record{
		FullName:     "12345 - LYDEN, Thomas - Son",
		LastName:     "LYDEN",
		FirstName:    "Thomas (Son)",
		Organization: "Claim: 42",
		PhoneDigits:  "4165550101",
		Email:        "t.lyden@example.com",
		Address:      "12 Main St; Unit 4",
		City:         "Oakville",
		State:        "ON",
		Zip:          "L6J 1A1",
	}

	got := fixedSerializer().Serialize(rec)
	expect := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"PRODID:-//LEGWORKmedia//Rnotes & Workspace 1.6//EN",
		"UID:rnotes-1700000000000-abc123",
		`FN:12345 - LYDEN\, Thomas - Son`,
		"N:LYDEN;Thomas (Son);;;",
		"ORG:Claim: 42",
		"TEL;TYPE=CELL:4165550101",
		"EMAIL:t.lyden@example.com",
		`ADR;TYPE=WORK:;;12 Main St\; Unit 4;Oakville;ON;L6J 1A1;USA`,
		"END:VCARD",
	}, "\r\n")

	if string(got) != expect {
		t.Fatalf("unexpected document:\n%s\nwant:\n%s", got, expect)
	}
	if strings.HasSuffix(string(got), "\r\n") {
		t.Fatalf("final END line must not be CRLF terminated")
	}
}

func TestSerializeOptionalLines(t *testing.T) {
	optional := map[string]func(Record) bool{
		"ORG:":           func(r Record) bool { return r.Organization != "" },
		"TEL;TYPE=CELL:": func(r Record) bool { return r.PhoneDigits != "" },
		"EMAIL:":         func(r Record) bool { return r.Email != "" },
		"ADR;TYPE=WORK:": func(r Record) bool { return r.HasAddress() },
	}

	records := map[string]Record{
		"minimal":      {FullName: "1 - A", LastName: "A"},
		"phone only":   {FullName: "1 - A", LastName: "A", PhoneDigits: "4165550101"},
		"zip only":     {FullName: "1 - A", LastName: "A", Zip: "L6J"},
		"org and mail": {FullName: "1 - A", LastName: "A", Organization: "X", Email: "a@b.co"},
	}

	s := NewSerializer()
	for name, rec := range records {
		t.Run(name, func(t *testing.T) {
			lines := s.Serialize(rec).Lines()
			if lines[0] != "BEGIN:VCARD" || lines[len(lines)-1] != "END:VCARD" {
				t.Fatalf("unexpected envelope: %q", lines)
			}
			for prefix, populated := range optional {
				present := false
				for _, line := range lines {
					if strings.HasPrefix(line, prefix) {
						present = true
					}
				}
				if present != populated(rec) {
					t.Fatalf("line %s present=%v, expected %v", prefix, present, populated(rec))
				}
			}
		})
	}
}

func TestSerializeIsStableApartFromUID(t *testing.T) {
	rec := Record{FullName: "9 - B, C", LastName: "B", FirstName: "C", PhoneDigits: "9058695712", City: "Hamilton"}
	s := NewSerializer()

	first := s.Serialize(rec).Lines()
	second := s.Serialize(rec).Lines()
	if len(first) != len(second) {
		t.Fatalf("expected equal line counts")
	}
	for i := range first {
		if strings.HasPrefix(first[i], "UID:") {
			if first[i] == second[i] {
				t.Fatalf("expected distinct UIDs, got %s twice", first[i])
			}
			continue
		}
		if first[i] != second[i] {
			t.Fatalf("line %d differs: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestEscapeValue(t *testing.T) {
	tests := map[string]string{
		"plain":            "plain",
		"a,b":              `a\,b`,
		"a;b":              `a\;b`,
		`back\slash`:       `back\\slash`,
		"line\nbreak":      `line\nbreak`,
		"windows\r\nbreak": `windows\nbreak`,
		`\,`:               `\\\,`,
	}
	for input, expect := range tests {
		if got := escapeValue(input); got != expect {
			t.Fatalf("escape(%q): expected %q, got %q", input, expect, got)
		}
	}
}

func TestWithCountry(t *testing.T) {
	doc := fixedSerializer(WithCountry("Canada")).Serialize(Record{FullName: "1 - A", LastName: "A", City: "Oakville"})
	if !strings.Contains(string(doc), "ADR;TYPE=WORK:;;;Oakville;;;Canada") {
		t.Fatalf("expected configured country, got %s", doc)
	}
}
