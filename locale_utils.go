package messages

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale trims whitespace and folds underscores to hyphens so
// "es_MX" and "es-MX" address the same catalog entry.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// normalizeLocales normalizes, deduplicates and sorts locale codes.
func normalizeLocales(locales []string) []string {
	if len(locales) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(locales))
	result := make([]string, 0, len(locales))
	for _, locale := range locales {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	sort.Strings(result)
	return result
}

// localeParentTag returns the immediate parent of locale ("es-MX" to "es"),
// empty when locale is a root. BCP 47 parsing decides where it can; codes
// x/text rejects fall back to chopping the last hyphen segment.
func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	if tag, err := language.Parse(locale); err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		if value := parent.String(); value != "" && value != "und" {
			return value
		}
		return ""
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}
	return ""
}

// localeParentChain returns every ancestor of locale ordered closest first,
// merging the x/text parent walk with raw hyphen chops so unparseable codes
// still climb toward their base language.
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)
	add := func(value string) bool {
		if value == "" {
			return false
		}
		if _, exists := seen[value]; exists {
			return false
		}
		seen[value] = struct{}{}
		chain = append(chain, value)
		return true
	}

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			value := parent.String()
			if value == "" || value == "und" || !add(value) {
				break
			}
		}
	}

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		add(current)
	}

	return chain
}
