package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Issue is a single validation failure.
type Issue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationError collects every issue found while validating a value.
type ValidationError struct {
	Type   string
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "schema: validation failed"
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Field == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, issue.Field+": "+issue.Message)
	}
	return fmt.Sprintf("schema: %s is invalid: %s", e.Type, strings.Join(parts, "; "))
}

// Validate checks attrs against the schema. A *ValidationError is returned
// when any attribute is unknown or fails its constraints.
func (s TypeSchema) Validate(attrs map[string]any) error {
	doc, err := toJSONValue(attrs)
	if err != nil {
		return fmt.Errorf("schema: %s: %w", s.Name, err)
	}

	var issues []Issue
	if err := s.OpenAPI().VisitJSON(doc, openapi3.MultiErrors()); err != nil {
		issues = append(issues, issuesFromOpenAPI(err)...)
	}
	issues = append(issues, s.checkExtended(doc)...)

	if len(issues) == 0 {
		return nil
	}
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Field < issues[j].Field
	})
	return &ValidationError{Type: s.Name, Issues: issues}
}

// checkExtended covers the constraints kin-openapi cannot express: color
// syntax and whitespace-only strings.
func (s TypeSchema) checkExtended(doc map[string]any) []Issue {
	var issues []Issue
	for _, name := range s.AttributeNames() {
		attr := s.Attributes[name]
		value, ok := doc[name]
		if !ok {
			continue
		}
		text, isString := value.(string)
		if !isString {
			continue
		}
		if attr.Type == TypeColor && !IsColor(text) {
			issues = append(issues, Issue{Field: name, Message: fmt.Sprintf("%q is not a valid color", text)})
			continue
		}
		if attr.NoBlank && text != "" && strings.TrimSpace(text) == "" {
			issues = append(issues, Issue{Field: name, Message: "must not be blank"})
		}
	}
	return issues
}

func issuesFromOpenAPI(err error) []Issue {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		var out []Issue
		for _, item := range multi {
			out = append(out, issuesFromOpenAPI(item)...)
		}
		return out
	}
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		return []Issue{{
			Field:   strings.Join(schemaErr.JSONPointer(), "."),
			Message: schemaErr.Reason,
		}}
	}
	return []Issue{{Message: err.Error()}}
}

func toJSONValue(attrs map[string]any) (map[string]any, error) {
	if attrs == nil {
		return map[string]any{}, nil
	}
	data, err := json.Marshal(attrs)
	if err != nil {
		return nil, fmt.Errorf("encode attributes: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode attributes: %w", err)
	}
	return out, nil
}
