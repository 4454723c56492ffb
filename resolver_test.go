package locale

import (
	"errors"
	"testing"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	registry, err := NewRegistry(
		Descriptor{Code: "en-GB", DisplayName: "English (UK)", Default: true},
		Descriptor{Code: "es-ES", DisplayName: "Spanish (Spain)"},
	)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return registry
}

func TestResolveInitial(t *testing.T) {
	registry := newTestRegistry(t)

	tests := []struct {
		name   string
		stored string
		env    string
		want   string
	}{
		{name: "no signal falls back to default", stored: "", env: "", want: "en-GB"},
		{name: "stored preference wins", stored: "es-ES", env: "en-GB", want: "es-ES"},
		{name: "stored preference wins over junk env", stored: "en-GB", env: "zz-ZZ", want: "en-GB"},
		{name: "unknown stored falls through to env", stored: "fr-FR", env: "es-ES", want: "es-ES"},
		{name: "exact env match", stored: "", env: "es-ES", want: "es-ES"},
		{name: "base language match", stored: "", env: "es-MX", want: "es-ES"},
		{name: "base language match without region", stored: "", env: "es", want: "es-ES"},
		{name: "no match falls back to default", stored: "", env: "de-DE", want: "en-GB"},
		{name: "unsupported language entirely", stored: "", env: "fr-FR", want: "en-GB"},
		{name: "malformed env degrades to default", stored: "", env: "!!not-a-tag!!", want: "en-GB"},
		{name: "case sensitive exact match", stored: "", env: "ES-es", want: "en-GB"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveInitial(tc.stored, tc.env, registry); got != tc.want {
				t.Fatalf("ResolveInitial(%q, %q) = %q, want %q", tc.stored, tc.env, got, tc.want)
			}
		})
	}
}

func TestResolveInitialStoredWinsForEveryCode(t *testing.T) {
	registry := newTestRegistry(t)

	for _, code := range registry.Codes() {
		if got := ResolveInitial(code, "de-DE", registry); got != code {
			t.Fatalf("ResolveInitial(%q, de-DE) = %q, want stored code", code, got)
		}
	}
}

func TestResolveInitialBaseMatchUsesRegistryOrder(t *testing.T) {
	registry, err := NewRegistry(
		Descriptor{Code: "en-GB", Default: true},
		Descriptor{Code: "es-ES"},
		Descriptor{Code: "es-MX"},
	)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if got := ResolveInitial("", "es-AR", registry); got != "es-ES" {
		t.Fatalf("ResolveInitial base match = %q, want es-ES", got)
	}
}

func TestResolverInitialReadsStore(t *testing.T) {
	registry := newTestRegistry(t)
	store := NewMemoryStore()
	if err := store.Save("es-ES"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	resolver, err := NewResolver(registry, store)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	if got := resolver.Initial("en-GB"); got != "es-ES" {
		t.Fatalf("Initial = %q, want stored es-ES", got)
	}

	if got := resolver.Current(); got != "es-ES" {
		t.Fatalf("Current = %q", got)
	}
}

type flakyStore struct {
	value   string
	loadErr error
	saveErr error
	saves   int
}

func (s *flakyStore) Load() (string, error) {
	return s.value, s.loadErr
}

func (s *flakyStore) Save(code string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.value = code
	s.saves++
	return nil
}

func TestResolverInitialStoreReadFailure(t *testing.T) {
	registry := newTestRegistry(t)
	store := &flakyStore{value: "es-ES", loadErr: errors.New("backend down")}

	resolver, err := NewResolver(registry, store)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	if got := resolver.Initial("es-MX"); got != "es-ES" {
		t.Fatalf("Initial = %q, want base match es-ES when store read fails", got)
	}
}

func TestRecordInvalidLocale(t *testing.T) {
	registry := newTestRegistry(t)
	store := NewMemoryStore()
	if err := store.Save("en-GB"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	resolver, err := NewResolver(registry, store)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	resolver.Initial("")

	err = resolver.Record("fr-FR")
	if !errors.Is(err, ErrInvalidLocale) {
		t.Fatalf("Record(fr-FR) err = %v, want ErrInvalidLocale", err)
	}

	if stored, _ := store.Load(); stored != "en-GB" {
		t.Fatalf("store mutated to %q on invalid record", stored)
	}

	if got := resolver.Current(); got != "en-GB" {
		t.Fatalf("Current = %q after invalid record", got)
	}
}

func TestRecordPersistsSelection(t *testing.T) {
	registry := newTestRegistry(t)
	store := NewMemoryStore()

	resolver, err := NewResolver(registry, store)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	if err := resolver.Record("es-ES"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	if stored, _ := store.Load(); stored != "es-ES" {
		t.Fatalf("stored = %q", stored)
	}

	if got := resolver.Current(); got != "es-ES" {
		t.Fatalf("Current = %q", got)
	}

	if got := resolver.Descriptor(); got.Code != "es-ES" {
		t.Fatalf("Descriptor = %+v", got)
	}
}

func TestRecordIdempotent(t *testing.T) {
	registry := newTestRegistry(t)
	store := NewMemoryStore()

	resolver, err := NewResolver(registry, store)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := resolver.Record("es-ES"); err != nil {
			t.Fatalf("Record attempt %d: %v", i+1, err)
		}
	}

	if stored, _ := store.Load(); stored != "es-ES" {
		t.Fatalf("stored = %q", stored)
	}
}

func TestRecordWriteFailureKeepsSelection(t *testing.T) {
	registry := newTestRegistry(t)
	saveErr := errors.New("disk full")
	store := &flakyStore{saveErr: saveErr}

	resolver, err := NewResolver(registry, store)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	err = resolver.Record("es-ES")
	if !errors.Is(err, saveErr) {
		t.Fatalf("Record err = %v, want wrapped save error", err)
	}

	// The selection must still take effect for the session.
	if got := resolver.Current(); got != "es-ES" {
		t.Fatalf("Current = %q after failed persist", got)
	}
}

func TestCurrentBeforeInitial(t *testing.T) {
	registry := newTestRegistry(t)

	resolver, err := NewResolver(registry, nil)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	if got := resolver.Current(); got != "en-GB" {
		t.Fatalf("Current before Initial = %q, want default", got)
	}

	if got := resolver.Descriptor(); got.Code != "en-GB" {
		t.Fatalf("Descriptor before Initial = %+v", got)
	}
}

func TestNewResolverNilRegistry(t *testing.T) {
	if _, err := NewResolver(nil, nil); !errors.Is(err, ErrEmptyRegistry) {
		t.Fatalf("NewResolver(nil) err = %v", err)
	}
}
