package messages

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// CatalogLoader retrieves the catalog used to seed a Registry.
type CatalogLoader interface {
	Load() (Catalog, error)
}

// CatalogLoaderFunc adapters allow bare functions to implement CatalogLoader.
type CatalogLoaderFunc func() (Catalog, error)

// Load implements CatalogLoader for CatalogLoaderFunc.
func (fn CatalogLoaderFunc) Load() (Catalog, error) {
	return fn()
}

var _ CatalogLoader = (*FileLoader)(nil)

// FileLoader reads catalog documents from disk, decoding by extension:
// .json, .yaml/.yml and .toml all carry the same structure. Parts are
// explicit in the document; nothing is ever parsed out of text, so a literal
// "{name}" in a text part stays literal.
type FileLoader struct {
	paths     []string
	groupOpts []GroupOption
	idGen     func() string
}

// NewFileLoader builds a loader over the given document paths. Later files
// merge into earlier ones; colliding variant keys fail the load.
func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

// WithGroupOptions sets the resolution policy of the groups the loader
// builds.
func (l *FileLoader) WithGroupOptions(opts ...GroupOption) *FileLoader {
	if l == nil {
		return l
	}
	if len(opts) == 0 {
		return l
	}
	l.groupOpts = append(l.groupOpts, opts...)
	return l
}

// WithIDGenerator overrides the id generator used for variants that declare
// no id (default uuid).
func (l *FileLoader) WithIDGenerator(gen func() string) *FileLoader {
	if l == nil || gen == nil {
		return l
	}
	l.idGen = gen
	return l
}

// WithGeneratedIDs satisfies the idGeneratorLoader contract used by config
// wiring.
func (l *FileLoader) WithGeneratedIDs(gen func() string) CatalogLoader {
	return l.WithIDGenerator(gen)
}

func (l *FileLoader) Load() (Catalog, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("messages: no loader paths configured")
	}

	catalog := make(Catalog)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("messages: read %s: %w", path, err)
		}

		raw, err := decodeCatalogFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("messages: decode %s: %w", path, err)
		}

		if err := l.mergeCatalog(catalog, raw, path); err != nil {
			return nil, err
		}
	}

	return catalog, nil
}

// rawCatalog mirrors the document layout: locale to group id to variants.
type rawCatalog map[string]map[string][]rawVariant

type rawVariant struct {
	ID        string            `json:"id" yaml:"id" toml:"id"`
	Selectors map[string]string `json:"selectors" yaml:"selectors" toml:"selectors"`
	Parts     []rawPart         `json:"parts" yaml:"parts" toml:"parts"`
}

type rawPart struct {
	Text        *string         `json:"text" yaml:"text" toml:"text"`
	Placeholder *rawPlaceholder `json:"placeholder" yaml:"placeholder" toml:"placeholder"`
}

type rawPlaceholder struct {
	ID      string  `json:"id" yaml:"id" toml:"id"`
	Type    string  `json:"type" yaml:"type" toml:"type"`
	Default *string `json:"default" yaml:"default" toml:"default"`
}

func decodeCatalogFile(path string, data []byte) (rawCatalog, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var raw rawCatalog
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("toml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	if len(raw) == 0 {
		return nil, errors.New("empty catalog document")
	}
	return raw, nil
}

// mergeCatalog folds one decoded document into catalog. Locales and groups
// are walked sorted so a bad document fails on the same entry every run.
func (l *FileLoader) mergeCatalog(catalog Catalog, raw rawCatalog, path string) error {
	locales := make([]string, 0, len(raw))
	for locale := range raw {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		if strings.TrimSpace(locale) == "" {
			return fmt.Errorf("messages: empty locale in %s", path)
		}
		code := normalizeLocale(locale)
		lm := catalog.ensureLocale(code)

		groups := raw[locale]
		groupIDs := make([]string, 0, len(groups))
		for groupID := range groups {
			groupIDs = append(groupIDs, groupID)
		}
		sort.Strings(groupIDs)

		for _, groupID := range groupIDs {
			if strings.TrimSpace(groupID) == "" {
				return fmt.Errorf("messages: empty group id under %s in %s", locale, path)
			}

			g := lm.Groups[groupID]
			if g == nil {
				g = NewGroup(groupID, l.groupOpts...)
				lm.Groups[groupID] = g
			}

			for i, variant := range groups[groupID] {
				msg, err := l.buildVariant(code, variant)
				if err != nil {
					return fmt.Errorf("messages: %s: %s/%s variant %d: %w", path, locale, groupID, i, err)
				}
				if err := g.Insert(msg); err != nil {
					return fmt.Errorf("messages: %s: %s/%s: %w", path, locale, groupID, err)
				}
			}
		}
	}

	return nil
}

func (l *FileLoader) buildVariant(locale string, variant rawVariant) (Message, error) {
	if len(variant.Parts) == 0 {
		return Message{}, errors.New("variant has no parts")
	}

	parts := make([]PatternPart, 0, len(variant.Parts))
	for i, raw := range variant.Parts {
		part, err := buildPart(raw)
		if err != nil {
			return Message{}, fmt.Errorf("part %d: %w", i, err)
		}
		parts = append(parts, part)
	}

	id := strings.TrimSpace(variant.ID)
	if id == "" {
		id = l.nextID()
	}

	return NewMessage(id, locale, NewPattern(parts...), NewSelectorSet(variant.Selectors)), nil
}

func buildPart(raw rawPart) (PatternPart, error) {
	switch {
	case raw.Text != nil && raw.Placeholder != nil:
		return nil, errors.New("part declares both text and placeholder")
	case raw.Text != nil:
		return Text(*raw.Text), nil
	case raw.Placeholder != nil:
		if strings.TrimSpace(raw.Placeholder.ID) == "" {
			return nil, errors.New("placeholder without id")
		}
		ph := NewPlaceholder(raw.Placeholder.ID, ParsePlaceholderType(raw.Placeholder.Type))
		if raw.Placeholder.Default != nil {
			ph = ph.WithDefaultText(*raw.Placeholder.Default)
		}
		return ph, nil
	default:
		return nil, errors.New("part declares neither text nor placeholder")
	}
}

func (l *FileLoader) nextID() string {
	if l.idGen != nil {
		return l.idGen()
	}
	return defaultIDGenerator()
}
