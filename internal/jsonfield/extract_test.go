package jsonfield

import (
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	doc := `{
    "progress": 42,
    "status": "Updating",
    "step": "Installing updates"
}`

	tests := []struct {
		name     string
		key      string
		expected string
		found    bool
	}{
		{"string value", "status", "Updating", true},
		{"string value with spaces", "step", "Installing updates", true},
		{"bare number", "progress", "42", true},
		{"missing key", "eta", "", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, found := Extract(doc, test.key, 64)
			if found != test.found {
				t.Fatalf("Extract(%q) found = %v, expected %v", test.key, found, test.found)
			}
			if value != test.expected {
				t.Errorf("Extract(%q) = %q, expected %q", test.key, value, test.expected)
			}
		})
	}
}

func TestExtract_BareTokens(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		key      string
		expected string
	}{
		{"number ends at comma", `{"progress":42,"status":"x"}`, "progress", "42"},
		{"number ends at brace", `{"progress":100}`, "progress", "100"},
		{"number ends at whitespace", `{"progress": 7 }`, "progress", "7"},
		{"boolean", `{"done": true}`, "done", "true"},
		{"null", `{"eta": null}`, "eta", "null"},
		{"negative number", `{"progress": -1}`, "progress", "-1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, found := Extract(test.doc, test.key, 32)
			if !found {
				t.Fatalf("Extract(%q) not found", test.key)
			}
			if value != test.expected {
				t.Errorf("Extract(%q) = %q, expected %q", test.key, value, test.expected)
			}
		})
	}
}

func TestExtract_Whitespace(t *testing.T) {
	doc := "{\"status\" \t:\r\n \"Ready\"}"

	value, found := Extract(doc, "status", 64)
	if !found {
		t.Fatal("Extract should tolerate whitespace around the colon")
	}
	if value != "Ready" {
		t.Errorf("Extract = %q, expected %q", value, "Ready")
	}
}

func TestExtract_Truncation(t *testing.T) {
	long := strings.Repeat("a", 200)
	doc := `{"status": "` + long + `"}`

	value, found := Extract(doc, "status", 64)
	if !found {
		t.Fatal("Extract should find oversized value")
	}
	if len(value) != 63 {
		t.Errorf("Truncated value length = %d, expected 63 (maxLen-1)", len(value))
	}
	if value != long[:63] {
		t.Error("Truncated value should be a prefix of the original")
	}
}

func TestExtract_Undelimited(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		key  string
	}{
		{"no colon after key", `{"status"}`, "status"},
		{"no closing quote", `{"status": "Updati`, "status"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, found := Extract(test.doc, test.key, 64); found {
				t.Errorf("Extract(%q) should report not found for undelimited value", test.key)
			}
		})
	}
}

func TestExtract_FirstOccurrenceWins(t *testing.T) {
	doc := `{"status": "first", "status": "second"}`

	value, found := Extract(doc, "status", 64)
	if !found {
		t.Fatal("Extract should find duplicated key")
	}
	if value != "first" {
		t.Errorf("Extract = %q, expected first occurrence to win", value)
	}
}

func TestExtract_EscapedQuoteTruncatesEarly(t *testing.T) {
	// Escape sequences are not unescaped; the scan stops at the first quote.
	doc := `{"step": "say \"hi\" now"}`

	value, found := Extract(doc, "step", 64)
	if !found {
		t.Fatal("Extract should find the value")
	}
	if value != `say \` {
		t.Errorf("Extract = %q, expected early truncation at escaped quote", value)
	}
}

func TestExtract_TruncatedDocument(t *testing.T) {
	// A torn write can leave a half-document behind; the scan must stay
	// in-bounds and fail soft.
	doc := `{"progress": 42, "status": "Upd`

	if value, found := Extract(doc, "progress", 32); !found || value != "42" {
		t.Errorf("Extract(progress) = %q, %v; expected 42, true", value, found)
	}
	if _, found := Extract(doc, "status", 64); found {
		t.Error("Extract(status) should fail for unterminated string")
	}
	if _, found := Extract(doc, "step", 64); found {
		t.Error("Extract(step) should fail for absent key")
	}
}

func TestExtract_ValueAtEndOfDocument(t *testing.T) {
	// A bare token cut off by the end of the text still yields what is there.
	doc := `{"progress": 42`

	value, found := Extract(doc, "progress", 32)
	if !found {
		t.Fatal("Extract should find bare token at end of document")
	}
	if value != "42" {
		t.Errorf("Extract = %q, expected %q", value, "42")
	}
}

func TestExtract_EmptyValues(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		key      string
		expected string
	}{
		{"empty string value", `{"status": ""}`, "status", ""},
		{"bare value missing", `{"progress":}`, "progress", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, found := Extract(test.doc, test.key, 32)
			if !found {
				t.Fatal("Extract should report found for delimited empty value")
			}
			if value != test.expected {
				t.Errorf("Extract = %q, expected %q", value, test.expected)
			}
		})
	}
}

func TestExtract_InvalidMaxLen(t *testing.T) {
	if _, found := Extract(`{"status": "x"}`, "status", 0); found {
		t.Error("Extract with maxLen 0 should report not found")
	}
}
