package schema

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPI compiles the type schema into a kin-openapi object schema. Unknown
// attributes are rejected.
func (s TypeSchema) OpenAPI() *openapi3.Schema {
	obj := openapi3.NewObjectSchema().WithoutAdditionalProperties()
	obj.Title = s.Name
	obj.Description = s.Description
	for _, name := range s.AttributeNames() {
		obj.WithProperty(name, s.Attributes[name].openAPI())
	}
	return obj
}

func (a Attribute) openAPI() *openapi3.Schema {
	var prop *openapi3.Schema
	switch a.Type {
	case TypeNumber:
		prop = openapi3.NewFloat64Schema()
	case TypeInteger:
		prop = openapi3.NewIntegerSchema()
	case TypeBoolean:
		prop = openapi3.NewBoolSchema()
	case TypeEnumerated:
		values := make([]any, 0, len(a.Values))
		for _, value := range a.Values {
			values = append(values, value)
		}
		prop = openapi3.NewStringSchema().WithEnum(values...)
	default:
		prop = openapi3.NewStringSchema()
		if a.NoBlank {
			prop.WithMinLength(1)
		}
	}
	if a.Min != nil {
		prop.WithMin(*a.Min)
	}
	if a.Max != nil {
		prop.WithMax(*a.Max)
	}
	prop.Description = a.Description
	return prop
}
