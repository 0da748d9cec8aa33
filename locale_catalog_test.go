package messages

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func inactive() *bool {
	value := false
	return &value
}

func TestNewLocaleCatalog(t *testing.T) {
	catalog, err := NewLocaleCatalog("en", map[string]LocaleDefinition{
		"en": {DisplayName: "English"},
		"es": {DisplayName: "Español", Fallbacks: []string{"en"}},
		"es_MX": {
			DisplayName: "Español (México)",
			Fallbacks:   []string{"es", "en"},
			Metadata:    map[string]any{"region": "MX"},
		},
		"el": {DisplayName: "Ελληνικά", Active: inactive()},
	})
	if err != nil {
		t.Fatalf("NewLocaleCatalog: %v", err)
	}

	if got := catalog.DefaultLocale(); got != "en" {
		t.Fatalf("DefaultLocale() = %q", got)
	}

	if diff := cmp.Diff([]string{"el", "en", "es", "es-MX"}, catalog.AllLocaleCodes()); diff != "" {
		t.Fatalf("AllLocaleCodes() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"en", "es", "es-MX"}, catalog.ActiveLocaleCodes()); diff != "" {
		t.Fatalf("ActiveLocaleCodes() mismatch (-want +got):\n%s", diff)
	}

	if got := catalog.DisplayName("es_MX"); got != "Español (México)" {
		t.Fatalf("DisplayName(es_MX) = %q", got)
	}
	if !catalog.Has("es-MX") || catalog.Has("fr") {
		t.Fatal("Has() lookup mismatch")
	}
	if catalog.IsActive("el") {
		t.Fatal("expected el inactive")
	}
	if !catalog.IsActive("es") {
		t.Fatal("expected es active")
	}

	if diff := cmp.Diff([]string{"es", "en"}, catalog.Fallbacks("es-MX")); diff != "" {
		t.Fatalf("Fallbacks(es-MX) mismatch (-want +got):\n%s", diff)
	}

	meta, ok := catalog.Locale("es-MX")
	if !ok {
		t.Fatal("Locale(es-MX) missing")
	}
	if meta.Code != "es-MX" || meta.DisplayName != "Español (México)" || !meta.Active {
		t.Fatalf("Locale(es-MX) = %+v", meta)
	}
	if meta.Parent == "" || !strings.HasPrefix(meta.Parent, "es") {
		t.Fatalf("Locale(es-MX).Parent = %q, want an es ancestor", meta.Parent)
	}
	if meta.Metadata["region"] != "MX" {
		t.Fatalf("Locale(es-MX).Metadata = %v", meta.Metadata)
	}
}

func TestNewLocaleCatalogCopiesAreIsolated(t *testing.T) {
	definitions := map[string]LocaleDefinition{
		"en": {
			DisplayName: "English",
			Fallbacks:   []string{},
			Metadata:    map[string]any{"tone": "neutral"},
		},
		"es": {DisplayName: "Español", Fallbacks: []string{"en"}},
	}

	catalog, err := NewLocaleCatalog("", definitions)
	if err != nil {
		t.Fatalf("NewLocaleCatalog: %v", err)
	}

	chain := catalog.Fallbacks("es")
	chain[0] = "mutated"
	if got := catalog.Fallbacks("es"); got[0] != "en" {
		t.Fatalf("Fallbacks copy leaked: %v", got)
	}

	meta := catalog.Metadata("en")
	meta["tone"] = "mutated"
	if got := catalog.Metadata("en"); got["tone"] != "neutral" {
		t.Fatalf("Metadata copy leaked: %v", got)
	}

	codes := catalog.AllLocaleCodes()
	codes[0] = "mutated"
	if got := catalog.AllLocaleCodes(); got[0] != "en" {
		t.Fatalf("AllLocaleCodes copy leaked: %v", got)
	}
}

func TestNewLocaleCatalogErrors(t *testing.T) {
	tests := []struct {
		name          string
		defaultLocale string
		definitions   map[string]LocaleDefinition
		wantErr       string
	}{
		{
			name: "empty code",
			definitions: map[string]LocaleDefinition{
				"  ": {DisplayName: "blank"},
			},
			wantErr: "empty locale code",
		},
		{
			name: "duplicate after normalization",
			definitions: map[string]LocaleDefinition{
				"es_MX": {DisplayName: "a"},
				"es-MX": {DisplayName: "b"},
			},
			wantErr: "duplicate locale",
		},
		{
			name:          "default not defined",
			defaultLocale: "fr",
			definitions: map[string]LocaleDefinition{
				"en": {DisplayName: "English"},
			},
			wantErr: `default locale "fr" not defined`,
		},
		{
			name: "undefined fallback",
			definitions: map[string]LocaleDefinition{
				"es": {Fallbacks: []string{"pt"}},
			},
			wantErr: `undefined fallback "pt"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLocaleCatalog(tt.defaultLocale, tt.definitions)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewLocaleCatalogEmpty(t *testing.T) {
	catalog, err := NewLocaleCatalog("en", nil)
	if err != nil {
		t.Fatalf("NewLocaleCatalog: %v", err)
	}
	if catalog != nil {
		t.Fatalf("expected nil catalog, got %+v", catalog)
	}
}

func TestLocaleCatalogNilReceiver(t *testing.T) {
	var catalog *LocaleCatalog

	if catalog.DefaultLocale() != "" {
		t.Fatal("DefaultLocale on nil")
	}
	if catalog.AllLocaleCodes() != nil || catalog.ActiveLocaleCodes() != nil {
		t.Fatal("codes on nil")
	}
	if catalog.DisplayName("en") != "" || catalog.Fallbacks("en") != nil {
		t.Fatal("lookups on nil")
	}
	if catalog.Has("en") || catalog.IsActive("en") {
		t.Fatal("predicates on nil")
	}
	if _, ok := catalog.Locale("en"); ok {
		t.Fatal("Locale on nil")
	}
	if catalog.Metadata("en") != nil {
		t.Fatal("Metadata on nil")
	}
}

func TestConfigWithLocaleDefinitions(t *testing.T) {
	cfg, err := NewConfig(
		WithLocaleDefinitions("en", map[string]LocaleDefinition{
			"en": {DisplayName: "English"},
			"es": {DisplayName: "Español", Fallbacks: []string{"en"}},
			"el": {DisplayName: "Ελληνικά", Active: inactive()},
		}),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.DefaultLocale != "en" {
		t.Fatalf("DefaultLocale = %q", cfg.DefaultLocale)
	}
	if diff := cmp.Diff([]string{"en", "es"}, cfg.Locales); diff != "" {
		t.Fatalf("Locales mismatch (-want +got):\n%s", diff)
	}
	if cfg.LocaleCatalog == nil || cfg.LocaleCatalog.DisplayName("es") != "Español" {
		t.Fatal("expected locale catalog on config")
	}

	chain := cfg.Resolver.Resolve("es")
	if len(chain) != 1 || chain[0] != "en" {
		t.Fatalf("Resolve(es) = %v", chain)
	}
}

func TestConfigWithLocaleDefinitionsKeepsExplicitDefault(t *testing.T) {
	cfg, err := NewConfig(
		WithDefaultLocale("es"),
		WithLocaleDefinitions("en", map[string]LocaleDefinition{
			"en": {DisplayName: "English"},
			"es": {DisplayName: "Español"},
		}),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.DefaultLocale != "es" {
		t.Fatalf("DefaultLocale = %q, want es", cfg.DefaultLocale)
	}
}

func TestConfigWithLocaleDefinitionsInvalid(t *testing.T) {
	_, err := NewConfig(
		WithLocaleDefinitions("fr", map[string]LocaleDefinition{
			"en": {DisplayName: "English"},
		}),
	)
	if err == nil {
		t.Fatal("expected invalid definitions to fail NewConfig")
	}
}
