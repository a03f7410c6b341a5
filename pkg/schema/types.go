package schema

import (
	"sort"
)

// AttributeType names the kind of value an attribute accepts.
type AttributeType string

const (
	TypeString     AttributeType = "string"
	TypeNumber     AttributeType = "number"
	TypeInteger    AttributeType = "integer"
	TypeBoolean    AttributeType = "boolean"
	TypeColor      AttributeType = "color"
	TypeEnumerated AttributeType = "enumerated"
)

func (t AttributeType) valid() bool {
	switch t {
	case TypeString, TypeNumber, TypeInteger, TypeBoolean, TypeColor, TypeEnumerated:
		return true
	}
	return false
}

// Attribute declares a single attribute of a type.
type Attribute struct {
	Name        string        `json:"-" yaml:"-"`
	Type        AttributeType `json:"type" yaml:"type"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Min         *float64      `json:"min,omitempty" yaml:"min,omitempty"`
	Max         *float64      `json:"max,omitempty" yaml:"max,omitempty"`
	Values      []string      `json:"values,omitempty" yaml:"values,omitempty"`
	NoBlank     bool          `json:"noBlank,omitempty" yaml:"noBlank,omitempty"`
	Sanitize    bool          `json:"sanitize,omitempty" yaml:"sanitize,omitempty"`
	Default     any           `json:"default,omitempty" yaml:"default,omitempty"`
}

// TypeSchema lists the attributes accepted by one registered type.
type TypeSchema struct {
	// Name is the qualified type name, e.g.
	// "plotly.graph_objs.layout.polar.radialaxis.title.Font".
	Name        string
	Description string
	Source      string
	Attributes  map[string]Attribute
}

// AttributeNames returns the declared attribute names in sorted order.
func (s TypeSchema) AttributeNames() []string {
	names := make([]string, 0, len(s.Attributes))
	for name := range s.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Attribute returns the declaration for name.
func (s TypeSchema) Attribute(name string) (Attribute, bool) {
	attr, ok := s.Attributes[name]
	return attr, ok
}

// Defaults returns the declared default values, keyed by attribute name.
// Numbers are returned as float64 to match decoded JSON.
func (s TypeSchema) Defaults() map[string]any {
	out := make(map[string]any)
	for name, attr := range s.Attributes {
		if attr.Default == nil {
			continue
		}
		value, err := attr.Coerce(attr.Default)
		if err != nil {
			continue
		}
		out[name] = value
	}
	return out
}
