package locale

import "fmt"

// Registry is an immutable ordered sequence of locale descriptors fixed
// at construction. Declaration order matters: base language matches are
// resolved to the first descriptor that carries the language.
type Registry struct {
	descriptors []Descriptor
	index       map[string]int
	defaultCode string
}

// NewRegistry validates the descriptors and builds an immutable snapshot.
// Codes must be non-empty and unique, and exactly one descriptor must be
// marked as default. BaseLanguage is derived from Code when empty.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	if len(descriptors) == 0 {
		return nil, ErrEmptyRegistry
	}

	snapshot := make([]Descriptor, len(descriptors))
	copy(snapshot, descriptors)

	index := make(map[string]int, len(snapshot))
	defaultCode := ""

	for i := range snapshot {
		desc := &snapshot[i]
		if desc.Code == "" {
			return nil, fmt.Errorf("%w: descriptor %d has empty code", ErrInvalidLocale, i)
		}
		if _, exists := index[desc.Code]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocale, desc.Code)
		}
		index[desc.Code] = i

		if desc.BaseLanguage == "" {
			desc.BaseLanguage = baseLanguage(desc.Code)
		}

		if desc.Default {
			if defaultCode != "" {
				return nil, fmt.Errorf("locale: multiple default locales (%q, %q)", defaultCode, desc.Code)
			}
			defaultCode = desc.Code
		}
	}

	if defaultCode == "" {
		return nil, ErrNoDefault
	}

	return &Registry{
		descriptors: snapshot,
		index:       index,
		defaultCode: defaultCode,
	}, nil
}

// Lookup returns the descriptor for an exact code match.
func (r *Registry) Lookup(code string) (Descriptor, bool) {
	if r == nil || code == "" {
		return Descriptor{}, false
	}
	i, ok := r.index[code]
	if !ok {
		return Descriptor{}, false
	}
	return r.descriptors[i], true
}

// Has reports whether the exact code exists in the registry.
func (r *Registry) Has(code string) bool {
	if r == nil {
		return false
	}
	_, ok := r.index[code]
	return ok
}

// FirstByBaseLanguage returns the first descriptor in declaration order
// whose base language equals base. Declaration order is the tie-break
// when several regional variants share a base language.
func (r *Registry) FirstByBaseLanguage(base string) (Descriptor, bool) {
	if r == nil || base == "" {
		return Descriptor{}, false
	}
	for _, desc := range r.descriptors {
		if desc.BaseLanguage == base {
			return desc, true
		}
	}
	return Descriptor{}, false
}

// Default returns the designated default descriptor.
func (r *Registry) Default() Descriptor {
	if r == nil {
		return Descriptor{}
	}
	desc, _ := r.Lookup(r.defaultCode)
	return desc
}

// DefaultCode returns the designated default code.
func (r *Registry) DefaultCode() string {
	if r == nil {
		return ""
	}
	return r.defaultCode
}

// Codes returns all codes in declaration order.
func (r *Registry) Codes() []string {
	if r == nil || len(r.descriptors) == 0 {
		return nil
	}
	out := make([]string, len(r.descriptors))
	for i, desc := range r.descriptors {
		out[i] = desc.Code
	}
	return out
}

// Descriptors returns a copy of the descriptor sequence in declaration order.
func (r *Registry) Descriptors() []Descriptor {
	if r == nil || len(r.descriptors) == 0 {
		return nil
	}
	out := make([]Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Len returns the number of descriptors.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.descriptors)
}
