package messages

import "fmt"

// Config captures registry, loader and resolution setup.
type Config struct {
	DefaultLocale string
	Locales       []string
	Loader        CatalogLoader
	Registry      *Registry
	Resolver      FallbackResolver
	Hooks         []ResolveHook
	LocaleCatalog *LocaleCatalog

	groupOpts []GroupOption
	idGen     func() string
}

type idGeneratorLoader interface {
	WithGeneratedIDs(gen func() string) CatalogLoader
}

// Option mutates Config during construction.
type Option func(*Config) error

// NewConfig builds Config via supplied options.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.Locales = normalizeLocales(cfg.Locales)
	cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)
	cfg.applyLoaderOptions()

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	if cfg.DefaultLocale == "" && len(cfg.Locales) > 0 {
		cfg.DefaultLocale = cfg.Locales[0]
	}

	return cfg, nil
}

// WithDefaultLocale sets the last-resort locale.
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithLocales registers supported locales; BuildRegistry verifies each one
// ends up with catalog entries.
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

func WithLoader(loader CatalogLoader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

// WithRegistry adopts an existing registry instead of building a fresh one.
func WithRegistry(registry *Registry) Option {
	return func(c *Config) error {
		c.Registry = registry
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithFallback records a locale fallback chain on the configured static
// resolver, creating one when none is set. It is a no-op when the configured
// resolver is not a StaticFallbackResolver.
func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver := c.staticResolver()
		if resolver == nil {
			return nil
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithLocaleDefinitions installs a validated locale catalog: active locales
// join Locales, per-locale fallback chains seed the static resolver, and
// defaultLocale becomes the config default unless one was already set.
func WithLocaleDefinitions(defaultLocale string, definitions map[string]LocaleDefinition) Option {
	return func(c *Config) error {
		catalog, err := NewLocaleCatalog(defaultLocale, definitions)
		if err != nil {
			return err
		}
		if catalog == nil {
			return nil
		}

		c.LocaleCatalog = catalog
		c.Locales = append(c.Locales, catalog.ActiveLocaleCodes()...)
		if c.DefaultLocale == "" {
			c.DefaultLocale = catalog.DefaultLocale()
		}

		resolver := c.staticResolver()
		if resolver == nil {
			return nil
		}
		for _, code := range catalog.AllLocaleCodes() {
			if chain := catalog.Fallbacks(code); len(chain) > 0 {
				resolver.Set(code, chain...)
			}
		}
		return nil
	}
}

func WithResolveHooks(hooks ...ResolveHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

// WithGroupOptions sets the resolution policy applied to every group the
// built registry creates.
func WithGroupOptions(opts ...GroupOption) Option {
	return func(c *Config) error {
		c.groupOpts = append(c.groupOpts, opts...)
		return nil
	}
}

// WithIDGenerator overrides the id generator used for anonymous messages,
// both in the registry and in loaders that support one.
func WithIDGenerator(gen func() string) Option {
	return func(c *Config) error {
		if gen == nil {
			return nil
		}
		c.idGen = gen
		return nil
	}
}

// BuildRegistry assembles the registry: build or adopt one, hydrate it from
// the loader when configured, then verify every requested locale actually
// has entries.
func (cfg *Config) BuildRegistry() (*Registry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("messages: nil config")
	}

	registry := cfg.Registry
	if registry == nil {
		opts := []RegistryOption{
			WithRegistryDefaultLocale(cfg.DefaultLocale),
			WithRegistryFallbackResolver(cfg.Resolver),
		}
		if len(cfg.groupOpts) > 0 {
			opts = append(opts, WithRegistryGroupOptions(cfg.groupOpts...))
		}
		if len(cfg.Hooks) > 0 {
			opts = append(opts, WithRegistryResolveHooks(cfg.Hooks...))
		}
		if cfg.idGen != nil {
			opts = append(opts, WithRegistryIDGenerator(cfg.idGen))
		}
		registry = NewRegistry(opts...)
	}

	if cfg.Loader != nil {
		catalog, err := cfg.Loader.Load()
		if err != nil {
			return nil, err
		}
		if err := registry.LoadCatalog(catalog); err != nil {
			return nil, err
		}
	}

	for _, locale := range cfg.Locales {
		if !registry.HasLocale(locale) {
			return nil, fmt.Errorf("messages: locale %q has no catalog entries", locale)
		}
	}

	return registry, nil
}

// staticResolver returns the static fallback resolver to write chains to,
// creating one when no resolver is configured yet. A custom resolver yields
// nil and chain options become no-ops.
func (cfg *Config) staticResolver() *StaticFallbackResolver {
	if resolver, ok := cfg.Resolver.(*StaticFallbackResolver); ok {
		return resolver
	}
	if cfg.Resolver != nil {
		return nil
	}
	resolver := NewStaticFallbackResolver()
	cfg.Resolver = resolver
	return resolver
}

func (cfg *Config) applyLoaderOptions() {
	if cfg.idGen == nil || cfg.Loader == nil {
		return
	}

	if loader, ok := cfg.Loader.(idGeneratorLoader); ok {
		cfg.Loader = loader.WithGeneratedIDs(cfg.idGen)
	}
}
