package locale

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RegistryLoader retrieves the descriptors used to seed a Registry.
type RegistryLoader interface {
	Load() (*Registry, error)
}

// RegistryLoaderFunc adapters allow bare functions to implement RegistryLoader.
type RegistryLoaderFunc func() (*Registry, error)

// Load implements RegistryLoader for RegistryLoaderFunc.
func (fn RegistryLoaderFunc) Load() (*Registry, error) {
	return fn()
}

// FileLoader reads locale definition files. File order and in-file
// sequence order define registry order; a code defined twice, within a
// file or across files, is an error.
type FileLoader struct {
	paths []string
}

var _ RegistryLoader = &FileLoader{}

// NewFileLoader builds a loader over the given definition files.
func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

type registryDefinition struct {
	Locales []Descriptor `json:"locales" yaml:"locales"`
}

// Load decodes every configured file and assembles the registry.
func (l *FileLoader) Load() (*Registry, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("locale: no loader paths configured")
	}

	var descriptors []Descriptor

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("locale: read %s: %w", path, err)
		}

		definition, err := decodeDefinitionFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("locale: decode %s: %w", path, err)
		}

		for _, desc := range definition.Locales {
			desc.Code = canonicalLocale(desc.Code)
			if desc.Code == "" {
				return nil, fmt.Errorf("locale: empty code in %s", path)
			}
			if desc.BaseLanguage != "" {
				desc.BaseLanguage = normalizeLocale(desc.BaseLanguage)
			}
			descriptors = append(descriptors, desc)
		}
	}

	return NewRegistry(descriptors...)
}

func decodeDefinitionFile(path string, data []byte) (*registryDefinition, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var definition registryDefinition
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &definition); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &definition); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	return &definition, nil
}
