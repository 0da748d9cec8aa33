package messages

import "sort"

// Catalog maps normalized locale codes to their message groups: the shape
// loaders produce and registries ingest.
type Catalog map[string]*LocaleMessages

// LocaleMessages carries one locale's groups plus locale metadata.
type LocaleMessages struct {
	Locale Locale
	Groups map[string]*Group
}

// Locale metadata for one catalog entry.
type Locale struct {
	Code   string
	Name   string
	Parent string
}

// newLocale derives parent metadata for code.
func newLocale(code string) Locale {
	return Locale{Code: code, Parent: localeParentTag(code)}
}

// Locales returns the catalog's locale codes sorted alphabetically.
func (c Catalog) Locales() []string {
	if len(c) == 0 {
		return nil
	}
	out := make([]string, 0, len(c))
	for code := range c {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Group returns the group stored under locale/groupID when present.
func (c Catalog) Group(locale, groupID string) (*Group, bool) {
	lm := c[normalizeLocale(locale)]
	if lm == nil || lm.Groups == nil {
		return nil, false
	}
	g, ok := lm.Groups[groupID]
	return g, g != nil && ok
}

// ensureLocale returns the locale entry for code, creating it when absent.
func (c Catalog) ensureLocale(code string) *LocaleMessages {
	lm := c[code]
	if lm == nil {
		lm = &LocaleMessages{
			Locale: newLocale(code),
			Groups: make(map[string]*Group),
		}
		c[code] = lm
	}
	return lm
}
