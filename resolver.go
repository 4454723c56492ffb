package locale

import (
	"fmt"
	"sync"
)

// Resolver selects the active locale from a stored preference, a host
// environment signal, and the registry, and records explicit user
// selections. Persistence is an injected collaborator so the resolution
// logic stays a pure function over its inputs.
type Resolver struct {
	registry *Registry
	store    PreferenceStore

	mu      sync.Mutex
	current string
}

// NewResolver builds a resolver for the given registry. A nil store
// defaults to an in-memory store.
func NewResolver(registry *Registry, store PreferenceStore) (*Resolver, error) {
	if registry == nil {
		return nil, ErrEmptyRegistry
	}
	if store == nil {
		store = NewMemoryStore()
	}
	return &Resolver{registry: registry, store: store}, nil
}

// ResolveInitial applies the resolution chain and always returns a code
// present in the registry:
//
//  1. stored, when it exactly matches a descriptor code
//  2. environmentLocale, when it exactly matches a descriptor code
//  3. the first descriptor whose base language equals the base subtag
//     of environmentLocale, in registry declaration order
//  4. the registry default
//
// Both inputs are untrusted; matching is exact and case-sensitive, and
// malformed values fall through the chain instead of erroring.
func ResolveInitial(stored, environmentLocale string, registry *Registry) string {
	if registry == nil {
		return ""
	}

	if stored != "" && registry.Has(stored) {
		return stored
	}

	if registry.Has(environmentLocale) {
		return environmentLocale
	}

	if base := baseLanguage(environmentLocale); base != "" {
		if desc, ok := registry.FirstByBaseLanguage(base); ok {
			return desc.Code
		}
	}

	return registry.DefaultCode()
}

// Initial resolves the locale for a new session, reading the persisted
// preference through the store. A store read failure counts as "no
// preference"; the chain still terminates with a valid registry code.
func (r *Resolver) Initial(environmentLocale string) string {
	stored, err := r.store.Load()
	if err != nil {
		stored = ""
	}

	code := ResolveInitial(stored, environmentLocale, r.registry)

	r.mu.Lock()
	r.current = code
	r.mu.Unlock()

	return code
}

// Record sets the active locale to an explicit user selection and
// persists it. An unknown code returns ErrInvalidLocale and leaves both
// the in-memory state and the store untouched. A persistence failure is
// reported to the caller but the in-memory change stands, so the
// selection takes effect for the remainder of the session.
func (r *Resolver) Record(code string) error {
	if !r.registry.Has(code) {
		return fmt.Errorf("%w: %q", ErrInvalidLocale, code)
	}

	r.mu.Lock()
	r.current = code
	r.mu.Unlock()

	if err := r.store.Save(code); err != nil {
		return fmt.Errorf("locale: persist selection %q: %w", code, err)
	}
	return nil
}

// Current returns the active code, falling back to the registry default
// before Initial has run.
func (r *Resolver) Current() string {
	r.mu.Lock()
	code := r.current
	r.mu.Unlock()

	if code == "" {
		return r.registry.DefaultCode()
	}
	return code
}

// Descriptor returns the full registry entry for the active code.
func (r *Resolver) Descriptor() Descriptor {
	desc, ok := r.registry.Lookup(r.Current())
	if !ok {
		return r.registry.Default()
	}
	return desc
}

// Registry exposes the immutable registry backing this resolver.
func (r *Resolver) Registry() *Registry {
	return r.registry
}
