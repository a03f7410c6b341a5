package schema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/benetherington/anvil-runtime/pkg/serializable"
)

// Store holds the type schemas loaded from one or more documents.
type Store struct {
	types map[string]TypeSchema
}

// NewStore builds a store from already constructed schemas. Duplicate names
// return an error.
func NewStore(schemas ...TypeSchema) (*Store, error) {
	store := &Store{types: make(map[string]TypeSchema, len(schemas))}
	for _, ts := range schemas {
		if err := store.add(ts); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// LoadFS walks fsys and parses every JSON/YAML schema document. When fsys is
// nil or holds no schema files, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{types: make(map[string]TypeSchema)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(doc.Types))
		for name := range doc.Types {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			ts, err := normaliseType(strings.TrimSpace(name), doc.Types[name], path)
			if err != nil {
				return err
			}
			if err := store.add(ts); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Type returns the schema registered for a qualified type name.
func (s *Store) Type(name string) (TypeSchema, bool) {
	if s == nil {
		return TypeSchema{}, false
	}
	ts, ok := s.types[strings.TrimSpace(name)]
	return ts, ok
}

// Names returns the qualified names of every stored type, sorted.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.types))
	for name := range s.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any types.
func (s *Store) Empty() bool {
	return s == nil || len(s.types) == 0
}

func (s *Store) add(ts TypeSchema) error {
	if _, exists := s.types[ts.Name]; exists {
		return fmt.Errorf("schema: duplicate type %q (file %s)", ts.Name, ts.Source)
	}
	s.types[ts.Name] = ts
	return nil
}

type documentFile struct {
	Types map[string]typeFile `json:"types" yaml:"types"`
}

type typeFile struct {
	Description string               `json:"description" yaml:"description"`
	Attributes  map[string]Attribute `json:"attributes" yaml:"attributes"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("schema: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("schema: parse %s: invalid JSON or YAML", source)
}

func normaliseType(name string, raw typeFile, source string) (TypeSchema, error) {
	if _, err := serializable.ParseQualified(name); err != nil {
		return TypeSchema{}, fmt.Errorf("schema: file %s: %w", source, err)
	}
	ts := TypeSchema{
		Name:        name,
		Description: strings.TrimSpace(raw.Description),
		Source:      source,
		Attributes:  make(map[string]Attribute, len(raw.Attributes)),
	}

	for key, attr := range raw.Attributes {
		attrName := strings.TrimSpace(key)
		if attrName == "" {
			return TypeSchema{}, fmt.Errorf("schema: type %q (file %s) declares an empty attribute name", name, source)
		}
		attr.Name = attrName
		attr.Description = strings.TrimSpace(attr.Description)
		if !attr.Type.valid() {
			return TypeSchema{}, fmt.Errorf("schema: type %q (file %s) attribute %q has unknown type %q", name, source, attrName, attr.Type)
		}
		if attr.Type == TypeEnumerated && len(attr.Values) == 0 {
			return TypeSchema{}, fmt.Errorf("schema: type %q (file %s) enumerated attribute %q has no values", name, source, attrName)
		}
		if attr.Min != nil && attr.Max != nil && *attr.Min > *attr.Max {
			return TypeSchema{}, fmt.Errorf("schema: type %q (file %s) attribute %q has min greater than max", name, source, attrName)
		}
		if attr.Default != nil {
			value, err := attr.Coerce(attr.Default)
			if err != nil {
				return TypeSchema{}, fmt.Errorf("schema: type %q (file %s) default: %w", name, source, err)
			}
			attr.Default = value
		}
		ts.Attributes[attrName] = attr
	}

	if defaults := ts.Defaults(); len(defaults) > 0 {
		if err := ts.Validate(defaults); err != nil {
			return TypeSchema{}, fmt.Errorf("schema: file %s: defaults: %w", source, err)
		}
	}
	return ts, nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
