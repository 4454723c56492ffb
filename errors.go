package locale

import "errors"

// ErrInvalidLocale indicates a code that is not present in the registry.
var ErrInvalidLocale = errors.New("locale: invalid locale")

// ErrEmptyRegistry indicates a registry constructed without descriptors.
var ErrEmptyRegistry = errors.New("locale: empty registry")

// ErrDuplicateLocale indicates two descriptors sharing the same code.
var ErrDuplicateLocale = errors.New("locale: duplicate locale")

// ErrNoDefault indicates a registry with no descriptor marked default.
var ErrNoDefault = errors.New("locale: no default locale")
