package messages

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "underscore form", input: "es_MX", expected: "es-MX"},
		{name: "hyphen form untouched", input: "es-MX", expected: "es-MX"},
		{name: "whitespace trimmed", input: "  en  ", expected: "en"},
		{name: "empty", input: "", expected: ""},
		{name: "multiple underscores", input: "zh_Hant_TW", expected: "zh-Hant-TW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeLocale(tt.input); got != tt.expected {
				t.Fatalf("normalizeLocale(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeLocales(t *testing.T) {
	got := normalizeLocales([]string{"es", "en", "es_MX", "", "en", "  "})
	if diff := cmp.Diff([]string{"en", "es", "es-MX"}, got); diff != "" {
		t.Fatalf("normalizeLocales mismatch (-want +got):\n%s", diff)
	}

	if normalizeLocales(nil) != nil {
		t.Fatal("normalizeLocales(nil) should be nil")
	}
}

func TestLocaleParentTag(t *testing.T) {
	if got := localeParentTag("en-US"); got != "en" {
		t.Fatalf("localeParentTag(en-US) = %q", got)
	}
	if got := localeParentTag("pt-BR"); got != "pt" {
		t.Fatalf("localeParentTag(pt-BR) = %q", got)
	}
	if got := localeParentTag("en"); got != "" {
		t.Fatalf("localeParentTag(en) = %q, want root", got)
	}
	if got := localeParentTag(""); got != "" {
		t.Fatalf("localeParentTag empty = %q", got)
	}

	// codes BCP 47 rejects still climb by chopping segments
	if got := localeParentTag("123-456"); got != "123" {
		t.Fatalf("localeParentTag(123-456) = %q", got)
	}
}

func TestLocaleParentChain(t *testing.T) {
	if diff := cmp.Diff([]string{"en"}, localeParentChain("en-US")); diff != "" {
		t.Fatalf("localeParentChain(en-US) mismatch (-want +got):\n%s", diff)
	}

	// CLDR may route regional Spanish through an intermediate like es-419;
	// the chain must end at the base language either way
	chain := localeParentChain("es-MX")
	if len(chain) == 0 || chain[len(chain)-1] != "es" {
		t.Fatalf("localeParentChain(es-MX) = %v, want es last", chain)
	}
	for _, code := range chain {
		if code == "es-MX" {
			t.Fatalf("chain contains the locale itself: %v", chain)
		}
	}

	if diff := cmp.Diff([]string{"123-456", "123"}, localeParentChain("123-456-789")); diff != "" {
		t.Fatalf("localeParentChain(123-456-789) mismatch (-want +got):\n%s", diff)
	}

	if localeParentChain("en") != nil {
		t.Fatalf("localeParentChain(en) = %v, want none", localeParentChain("en"))
	}
	if localeParentChain("") != nil {
		t.Fatal("localeParentChain empty input")
	}
}
