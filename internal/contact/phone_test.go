package contact

import (
	"errors"
	"strings"
	"testing"
)

func TestParsePhoneField(t *testing.T) {
	tests := map[string]struct {
		input  string
		digits string
		before string
		after  string
		all    string
	}{
		"relationship before number": {
			input:  "Daughter Diane (905) 869-5712",
			digits: "9058695712",
			before: "Daughter Diane",
			all:    "Daughter Diane",
		},
		"annotations on both sides": {
			input:  "Mother (primary) 905-336-2311 - Deceased",
			digits: "9053362311",
			before: "Mother primary",
			after:  "Deceased",
			all:    "Mother primary Deceased",
		},
		"bare digits": {
			input:  "9058695712",
			digits: "9058695712",
		},
		"dotted separators": {
			input:  "Cell: 416.555.0101",
			digits: "4165550101",
			before: "Cell",
			all:    "Cell",
		},
		"plus one prefix": {
			input:  "+1 416-555-0101 Son",
			digits: "4165550101",
			after:  "Son",
			all:    "Son",
		},
		"plus zero one prefix": {
			input:  "+01 (416) 555 0101",
			digits: "4165550101",
		},
		"bare one prefix": {
			input:  "1 416 555 0101 - work",
			digits: "4165550101",
			after:  "work",
			all:    "work",
		},
		"bare one with hyphen": {
			input:  "1-905-869-5712",
			digits: "9058695712",
		},
		"bare one with dots": {
			input:  "1.905.869.5712",
			digits: "9058695712",
		},
		"bare zero one with hyphen": {
			input:  "01-905-869-5712",
			digits: "9058695712",
		},
		"plus one with hyphen": {
			input:  "+1-905-869-5712 Wife",
			digits: "9058695712",
			after:  "Wife",
			all:    "Wife",
		},
		"leading whitespace before prefix": {
			input:  "  +1 905 869 5712",
			digits: "9058695712",
		},
		"leading whitespace before bare one": {
			input:  "\t1-905-869-5712 Son",
			digits: "9058695712",
			after:  "Son",
			all:    "Son",
		},
		"one inside area code is kept": {
			input:  "123 456 7890",
			digits: "1234567890",
		},
		"extension digits stay in annotation": {
			input:  "Office 905-869-5712 ext 204",
			digits: "9058695712",
			before: "Office",
			after:  "ext 204",
			all:    "Office ext 204",
		},
		"date before number is kept verbatim": {
			input:  "Called 2024-05-01: 905 869 5712",
			digits: "9058695712",
			before: "Called 2024-05-01",
			all:    "Called 2024-05-01",
		},
		"collapses inner whitespace": {
			input:  "  Son    Mark   —  416-555-0101  :  after   hours ",
			digits: "4165550101",
			before: "Son Mark",
			after:  "after hours",
			all:    "Son Mark after hours",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParsePhoneField(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Digits != tt.digits {
				t.Fatalf("expected digits %q, got %q", tt.digits, got.Digits)
			}
			if got.TextBefore != tt.before {
				t.Fatalf("expected text before %q, got %q", tt.before, got.TextBefore)
			}
			if got.TextAfter != tt.after {
				t.Fatalf("expected text after %q, got %q", tt.after, got.TextAfter)
			}
			if got.CombinedText != tt.all {
				t.Fatalf("expected combined text %q, got %q", tt.all, got.CombinedText)
			}
		})
	}
}

func TestParsePhoneFieldFailures(t *testing.T) {
	tests := map[string]struct {
		input  string
		expect error
	}{
		"empty":             {input: "", expect: ErrEmptyInput},
		"whitespace only":   {input: "   \t ", expect: ErrEmptyInput},
		"no digits":         {input: "no digits here", expect: ErrNoPhoneMatch},
		"too short":         {input: "Son 555-0101", expect: ErrNoPhoneMatch},
		"eleven digit run":  {input: "Son 41655501012", expect: ErrNoPhoneMatch},
		"digits glued left": {input: "Ref 74165550101", expect: ErrNoPhoneMatch},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePhoneField(tt.input)
			if !errors.Is(err, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, err)
			}
		})
	}
}

func TestParsePhoneFieldDigitsAreTenDigits(t *testing.T) {
	inputs := []string{
		"Daughter Diane (905) 869-5712",
		"(905)869-5712",
		"905 - 869 - 5712 work",
		"+1 (905) 869.5712",
	}
	for _, input := range inputs {
		got, err := ParsePhoneField(input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", input, err)
		}
		if len(got.Digits) != 10 || strings.Trim(got.Digits, "0123456789") != "" {
			t.Fatalf("expected 10 numeric digits for %q, got %q", input, got.Digits)
		}
		if strings.ContainsAny(got.CombinedText, "()") {
			t.Fatalf("combined text must not contain parentheses: %q", got.CombinedText)
		}
	}
}

func TestCleanAnnotationIsIdempotent(t *testing.T) {
	inputs := []string{
		" - Deceased",
		"Mother (primary) ",
		"::  Son  –  ",
		"(spouse) - after 5pm -",
	}
	for _, input := range inputs {
		once := CleanAnnotation(input)
		twice := CleanAnnotation(once)
		if once != twice {
			t.Fatalf("expected idempotent cleaning for %q: %q vs %q", input, once, twice)
		}
	}

	if got := CleanAnnotation("(spouse) - after 5pm -"); got != "spouse - after 5pm" {
		t.Fatalf("unexpected cleaned text: %q", got)
	}
}

func TestParsedPhoneNational(t *testing.T) {
	phone := ParsedPhone{Digits: "9058695712"}
	if got := phone.National(); !strings.Contains(got, "869-5712") {
		t.Fatalf("expected national rendering, got %q", got)
	}
	if got := (ParsedPhone{}).National(); got != "" {
		t.Fatalf("expected empty rendering, got %q", got)
	}
}
