package messages

import (
	"reflect"
	"strings"
)

// HelperConfig configures the template helper set.
type HelperConfig struct {
	// LocaleKey is the map key or struct field the locale is read from when
	// a helper receives the template context instead of a locale string.
	// Defaults to "locale".
	LocaleKey string
	// TemplateHelperKey renames the resolve helper, "resolve" by default.
	TemplateHelperKey string
	// OnMissing produces the stand-in text when resolution or rendering
	// fails. The default returns the group id untouched.
	OnMissing func(locale, groupID string, query SelectorSet, err error) string
}

// TemplateHelpers exposes registry helpers for text/template and
// html/template. The resolve helper takes the template context (or an
// explicit locale string), a group id, and up to two maps: selectors first,
// then placeholder values.
//
//	{{resolve . "cart.items" (pairs "COUNT" "OTHER") (pairs "count" "3")}}
func TemplateHelpers(registry *Registry, cfg HelperConfig) map[string]any {
	localeKey := cfg.LocaleKey
	if localeKey == "" {
		localeKey = "locale"
	}
	helperKey := cfg.TemplateHelperKey
	if helperKey == "" {
		helperKey = "resolve"
	}
	missing := cfg.OnMissing
	if missing == nil {
		missing = func(locale, groupID string, query SelectorSet, err error) string {
			return groupID
		}
	}

	resolve := func(ctx any, groupID string, args ...map[string]string) string {
		locale := extractLocale(ctx, localeKey)
		if locale == "" {
			locale = registry.DefaultLocale()
		}

		query := SelectorSet{}
		if len(args) > 0 {
			query = NewSelectorSet(args[0])
		}
		var values map[string]string
		if len(args) > 1 {
			values = args[1]
		}

		msg, err := registry.Resolve(locale, groupID, query)
		if err != nil {
			return missing(locale, groupID, query, err)
		}
		text, err := msg.Render(values)
		if err != nil {
			return missing(locale, groupID, query, err)
		}
		return text
	}

	return map[string]any{
		helperKey: resolve,
		"pairs":   buildPairs,
		"current_locale": func(ctx any) string {
			if locale := extractLocale(ctx, localeKey); locale != "" {
				return locale
			}
			return registry.DefaultLocale()
		},
	}
}

// buildPairs turns alternating key/value arguments into a map so templates
// can express selector sets and value maps inline. A trailing key without a
// value is dropped.
func buildPairs(args ...string) map[string]string {
	out := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		out[args[i]] = args[i+1]
	}
	return out
}

// extractLocale pulls a locale out of template data: a plain string is
// taken as-is, maps are indexed by the configured key, and struct fields
// match the key case-insensitively so "locale" finds a Locale field.
func extractLocale(data any, key string) string {
	if data == nil {
		return ""
	}

	if str, ok := data.(string); ok {
		return str
	}

	switch d := data.(type) {
	case map[string]any:
		if v, ok := d[key]; ok {
			if str, ok := v.(string); ok {
				return str
			}
		}
	case map[string]string:
		if v, ok := d[key]; ok {
			return v
		}
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}
	if value.Kind() == reflect.Struct {
		field := value.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, key)
		})
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}

	return ""
}
