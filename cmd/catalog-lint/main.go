package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	messages "github.com/goliatone/go-messages"
)

type lintConfig struct {
	paths  []string
	strict bool
}

type fileFlag struct {
	items []string
}

func (f *fileFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *fileFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "catalog-lint: %v\n", err)
	os.Exit(1)
}

func parseFlags() (lintConfig, error) {
	var cfg lintConfig
	var files fileFlag

	flag.Var(&files, "file", "catalog file to lint (json, yaml or toml). Repeat flag or pass paths as arguments.")
	flag.BoolVar(&cfg.strict, "strict", false, "treat selector shape warnings as errors")

	flag.Parse()

	cfg.paths = append(cfg.paths, files.items...)
	cfg.paths = append(cfg.paths, flag.Args()...)

	if len(cfg.paths) == 0 {
		return lintConfig{}, errors.New("at least one catalog file is required")
	}

	return cfg, nil
}

func run(cfg lintConfig) error {
	catalog, err := messages.NewFileLoader(cfg.paths...).Load()
	if err != nil {
		return err
	}

	warnings := 0
	for _, locale := range catalog.Locales() {
		entry := catalog[locale]

		groupIDs := make([]string, 0, len(entry.Groups))
		for groupID := range entry.Groups {
			groupIDs = append(groupIDs, groupID)
		}
		sort.Strings(groupIDs)

		fmt.Printf("%s: %d group(s)\n", locale, len(groupIDs))
		for _, groupID := range groupIDs {
			g := entry.Groups[groupID]
			fmt.Printf("  %s: %d variant(s)\n", groupID, g.Len())
			warnings += reportShapeWarnings(locale, g)
		}
	}

	if warnings > 0 {
		fmt.Printf("%d warning(s)\n", warnings)
		if cfg.strict {
			return fmt.Errorf("%d selector shape warning(s)", warnings)
		}
	}

	return nil
}

// reportShapeWarnings flags groups whose variants disagree on selector
// names; such variants can never be reached by one query shape. Catch-all
// variants with no selectors are exempt.
func reportShapeWarnings(locale string, g *messages.Group) int {
	var reference []string
	warnings := 0

	for _, key := range g.Keys() {
		if key.IsEmpty() {
			continue
		}
		names := key.Names()
		if reference == nil {
			reference = names
			continue
		}
		if !equalNames(reference, names) {
			fmt.Printf("    warning: %s/%s variant %s uses selectors %v, others use %v\n",
				locale, g.ID(), key, names, reference)
			warnings++
		}
	}

	return warnings
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
