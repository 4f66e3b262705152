package registry

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tobidsn/anticms-schemagen/pkg/schema"
)

// LoadFS walks the provided filesystem and parses JSON/YAML field-type
// documents into a registry. Duplicate kind declarations across files are an
// error; an empty filesystem yields an empty registry.
func LoadFS(fsys fs.FS) (*Registry, error) {
	reg := New()
	if fsys == nil {
		return reg, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("registry: read %s: %w", path, err)
		}

		doc, err := parseCatalog(data, path)
		if err != nil {
			return err
		}

		for name, raw := range doc.FieldTypes {
			kind := schema.FieldKind(strings.TrimSpace(name))
			if kind == "" {
				return fmt.Errorf("registry: file %s declares an empty field kind", path)
			}
			if reg.Has(kind) {
				return fmt.Errorf("registry: duplicate field kind %q (file %s)", kind, path)
			}
			reg.register(definitionFromFile(kind, raw))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// Default returns the registry parsed from the embedded catalog. When the
// embedded documents fail to parse, the minimal built-in registry is returned
// instead so the system degrades rather than refusing to start.
func Default() *Registry {
	reg, err := LoadFS(EmbeddedFS())
	if err != nil || len(reg.Kinds()) == 0 {
		return Builtin()
	}
	return reg
}

type catalogFile struct {
	FieldTypes map[string]definitionFile `json:"fieldTypes" yaml:"fieldTypes"`
}

type definitionFile struct {
	Allowed  []string      `json:"allowed" yaml:"allowed"`
	Required []string      `json:"required" yaml:"required"`
	Examples []exampleFile `json:"examples" yaml:"examples"`
}

type exampleFile struct {
	Name       string         `json:"name" yaml:"name"`
	Label      string         `json:"label" yaml:"label"`
	Attributes map[string]any `json:"attributes" yaml:"attributes"`
}

func parseCatalog(data []byte, source string) (catalogFile, error) {
	var doc catalogFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return catalogFile{}, fmt.Errorf("registry: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return catalogFile{}, fmt.Errorf("registry: parse %s: invalid JSON or YAML", source)
}

func definitionFromFile(kind schema.FieldKind, raw definitionFile) Definition {
	def := Definition{
		Kind:     kind,
		Allowed:  append([]string(nil), raw.Allowed...),
		Required: append([]string(nil), raw.Required...),
	}
	for _, example := range raw.Examples {
		def.Examples = append(def.Examples, Example{
			Name:       strings.TrimSpace(example.Name),
			Label:      example.Label,
			Attributes: schema.CloneAttributes(example.Attributes),
		})
	}
	return def
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
