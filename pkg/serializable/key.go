package serializable

import (
	"fmt"
	"strings"
	"unicode"
)

// Key identifies a registered type by its name and dotted module path.
type Key struct {
	Name   string `json:"name" yaml:"name"`
	Module string `json:"module" yaml:"module"`
}

// Type is implemented by every registrable schema node.
type Type interface {
	SerializableName() string
	SerializableModule() string
}

// KeyOf returns the registry key reported by t.
func KeyOf(t Type) Key {
	if t == nil {
		return Key{}
	}
	return Key{Name: t.SerializableName(), Module: t.SerializableModule()}
}

// Qualified joins the module path and name, e.g.
// "plotly.graph_objs.layout.polar.radialaxis.title.Font".
func (k Key) Qualified() string {
	if k.Module == "" {
		return k.Name
	}
	return k.Module + "." + k.Name
}

func (k Key) String() string {
	return k.Qualified()
}

// ParseQualified splits a qualified name on its last dot.
func ParseQualified(qualified string) (Key, error) {
	trimmed := strings.TrimSpace(qualified)
	idx := strings.LastIndex(trimmed, ".")
	if idx <= 0 || idx == len(trimmed)-1 {
		return Key{}, fmt.Errorf("serializable: qualified name %q must be <module>.<name>", qualified)
	}
	key := Key{Name: trimmed[idx+1:], Module: trimmed[:idx]}
	if err := key.validate(); err != nil {
		return Key{}, err
	}
	return key, nil
}

func (k Key) validate() error {
	if !isIdentifier(k.Name) {
		return fmt.Errorf("serializable: invalid type name %q", k.Name)
	}
	if k.Module == "" {
		return fmt.Errorf("serializable: module path is required for %q", k.Name)
	}
	for _, segment := range strings.Split(k.Module, ".") {
		if !isIdentifier(segment) {
			return fmt.Errorf("serializable: invalid module path %q", k.Module)
		}
	}
	return nil
}

func isIdentifier(value string) bool {
	if value == "" {
		return false
	}
	for idx, r := range value {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case idx > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
