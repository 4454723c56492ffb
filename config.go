package locale

import "errors"

// Config captures resolver setup.
type Config struct {
	registry    *Registry
	descriptors []Descriptor
	loader      RegistryLoader
	store       PreferenceStore
	storePath   string
}

// Option mutates Config during construction.
type Option func(*Config) error

// WithRegistry uses an already constructed registry.
func WithRegistry(registry *Registry) Option {
	return func(c *Config) error {
		c.registry = registry
		return nil
	}
}

// WithDescriptors builds the registry from descriptor literals.
func WithDescriptors(descriptors ...Descriptor) Option {
	return func(c *Config) error {
		c.descriptors = append(c.descriptors, descriptors...)
		return nil
	}
}

// WithRegistryLoader hydrates the registry from a loader, typically a
// FileLoader over locale definition files.
func WithRegistryLoader(loader RegistryLoader) Option {
	return func(c *Config) error {
		c.loader = loader
		return nil
	}
}

// WithStore injects the preference store.
func WithStore(store PreferenceStore) Option {
	return func(c *Config) error {
		c.store = store
		return nil
	}
}

// WithStorePath is a convenience for a FileStore at the given path.
func WithStorePath(path string) Option {
	return func(c *Config) error {
		c.storePath = path
		return nil
	}
}

// New builds a Resolver via supplied options. Exactly one registry
// source is required; the store defaults to an in-memory store.
func New(opts ...Option) (*Resolver, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	registry, err := cfg.buildRegistry()
	if err != nil {
		return nil, err
	}

	store := cfg.store
	if cfg.storePath != "" {
		if store != nil {
			return nil, errors.New("locale: both store and store path configured")
		}
		store = NewFileStore(cfg.storePath)
	}

	return NewResolver(registry, store)
}

func (cfg *Config) buildRegistry() (*Registry, error) {
	sources := 0
	if cfg.registry != nil {
		sources++
	}
	if len(cfg.descriptors) > 0 {
		sources++
	}
	if cfg.loader != nil {
		sources++
	}

	switch sources {
	case 0:
		return nil, errors.New("locale: no registry source configured")
	case 1:
	default:
		return nil, errors.New("locale: multiple registry sources configured")
	}

	if cfg.registry != nil {
		return cfg.registry, nil
	}
	if cfg.loader != nil {
		return cfg.loader.Load()
	}
	return NewRegistry(cfg.descriptors...)
}
