package messages

import (
	"fmt"
	"sort"
)

// LocaleDefinition declares one locale a deployment supports: its display
// name, whether it is currently served, the fallback chain consulted when a
// group is missing, and free-form application metadata.
type LocaleDefinition struct {
	DisplayName string         `json:"display_name" yaml:"display_name" toml:"display_name"`
	Active      *bool          `json:"active" yaml:"active" toml:"active"`
	Fallbacks   []string       `json:"fallbacks" yaml:"fallbacks" toml:"fallbacks"`
	Metadata    map[string]any `json:"metadata" yaml:"metadata" toml:"metadata"`
}

// LocaleMetadata is the resolved, immutable view of one locale. Parent is
// derived from the code rather than declared; it is the locale the registry
// walks to before any configured fallback.
type LocaleMetadata struct {
	Code        string
	DisplayName string
	Parent      string
	Active      bool
	Fallbacks   []string
	Metadata    map[string]any
}

// LocaleCatalog is an immutable snapshot of locale metadata built from
// definitions. Codes are normalized and every fallback reference is checked
// at construction, so lookups never have to handle dangling chains.
type LocaleCatalog struct {
	defaultLocale string
	entries       map[string]LocaleMetadata
	all           []string
	active        []string
}

// NewLocaleCatalog validates definitions and builds a catalog. No
// definitions at all yields (nil, nil). Codes are processed in sorted order,
// so an invalid set fails on the same entry every run.
func NewLocaleCatalog(defaultLocale string, definitions map[string]LocaleDefinition) (*LocaleCatalog, error) {
	if len(definitions) == 0 {
		return nil, nil
	}

	codes := make([]string, 0, len(definitions))
	for code := range definitions {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	entries := make(map[string]LocaleMetadata, len(definitions))
	all := make([]string, 0, len(definitions))
	active := make([]string, 0, len(definitions))

	for _, raw := range codes {
		code := normalizeLocale(raw)
		if code == "" {
			return nil, fmt.Errorf("messages: locale catalog: empty locale code")
		}
		if _, dup := entries[code]; dup {
			return nil, fmt.Errorf("messages: locale catalog: duplicate locale %q", code)
		}

		def := definitions[raw]
		meta := LocaleMetadata{
			Code:        code,
			DisplayName: def.DisplayName,
			Parent:      localeParentTag(code),
			Active:      def.Active == nil || *def.Active,
			Fallbacks:   normalizeChain(code, def.Fallbacks),
			Metadata:    copyMetadata(def.Metadata),
		}
		entries[code] = meta
		all = append(all, code)
		if meta.Active {
			active = append(active, code)
		}
	}
	sort.Strings(all)
	sort.Strings(active)

	normalizedDefault := normalizeLocale(defaultLocale)
	if normalizedDefault != "" {
		if _, ok := entries[normalizedDefault]; !ok {
			return nil, fmt.Errorf("messages: locale catalog: default locale %q not defined", normalizedDefault)
		}
	}
	for _, code := range all {
		for _, fallback := range entries[code].Fallbacks {
			if _, ok := entries[fallback]; !ok {
				return nil, fmt.Errorf("messages: locale catalog: %q references undefined fallback %q", code, fallback)
			}
		}
	}

	return &LocaleCatalog{
		defaultLocale: normalizedDefault,
		entries:       entries,
		all:           all,
		active:        active,
	}, nil
}

// DefaultLocale returns the configured default locale.
func (c *LocaleCatalog) DefaultLocale() string {
	if c == nil {
		return ""
	}
	return c.defaultLocale
}

// AllLocaleCodes returns every defined locale, sorted alphabetically.
func (c *LocaleCatalog) AllLocaleCodes() []string {
	if c == nil {
		return nil
	}
	return copyCodes(c.all)
}

// ActiveLocaleCodes returns the locales marked active, sorted alphabetically.
func (c *LocaleCatalog) ActiveLocaleCodes() []string {
	if c == nil {
		return nil
	}
	return copyCodes(c.active)
}

// Has reports whether the catalog defines the locale.
func (c *LocaleCatalog) Has(locale string) bool {
	_, ok := c.lookup(locale)
	return ok
}

// IsActive reports whether the locale is defined and marked active.
func (c *LocaleCatalog) IsActive(locale string) bool {
	meta, ok := c.lookup(locale)
	return ok && meta.Active
}

// DisplayName returns the human-friendly name for the locale, empty when the
// locale is unknown.
func (c *LocaleCatalog) DisplayName(locale string) string {
	meta, _ := c.lookup(locale)
	return meta.DisplayName
}

// Fallbacks returns a copy of the locale's configured fallback chain.
func (c *LocaleCatalog) Fallbacks(locale string) []string {
	meta, ok := c.lookup(locale)
	if !ok {
		return nil
	}
	return copyCodes(meta.Fallbacks)
}

// Metadata returns a copy of the locale's free-form metadata.
func (c *LocaleCatalog) Metadata(locale string) map[string]any {
	meta, ok := c.lookup(locale)
	if !ok {
		return nil
	}
	return copyMetadata(meta.Metadata)
}

// Locale returns the full metadata payload for one locale.
func (c *LocaleCatalog) Locale(locale string) (LocaleMetadata, bool) {
	meta, ok := c.lookup(locale)
	if !ok {
		return LocaleMetadata{}, false
	}
	meta.Fallbacks = copyCodes(meta.Fallbacks)
	meta.Metadata = copyMetadata(meta.Metadata)
	return meta, true
}

func (c *LocaleCatalog) lookup(locale string) (LocaleMetadata, bool) {
	if c == nil {
		return LocaleMetadata{}, false
	}
	meta, ok := c.entries[normalizeLocale(locale)]
	return meta, ok
}

// normalizeChain normalizes and deduplicates a fallback chain, dropping the
// locale itself. Chain order is preserved.
func normalizeChain(self string, chain []string) []string {
	if len(chain) == 0 {
		return nil
	}

	seen := map[string]struct{}{self: {}}
	out := make([]string, 0, len(chain))
	for _, code := range chain {
		normalized := normalizeLocale(code)
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func copyCodes(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}

func copyMetadata(metadata map[string]any) map[string]any {
	if len(metadata) == 0 {
		return nil
	}
	out := make(map[string]any, len(metadata))
	for key, value := range metadata {
		out[key] = value
	}
	return out
}
