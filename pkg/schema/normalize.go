package schema

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// Normalize returns a copy of attrs with string attributes trimmed, markup
// stripped from sanitized attributes, color names lower-cased, and numeric
// strings coerced for numeric attributes. Unknown attributes are copied as-is
// so Validate can still report them.
func (s TypeSchema) Normalize(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for name, value := range attrs {
		attr, ok := s.Attributes[name]
		if !ok {
			out[name] = value
			continue
		}
		out[name] = attr.normalize(value)
	}
	return out
}

func (a Attribute) normalize(value any) any {
	switch a.Type {
	case TypeString, TypeEnumerated, TypeColor:
		text, ok := value.(string)
		if !ok {
			return value
		}
		text = strings.TrimSpace(text)
		if a.Sanitize {
			text = stripMarkup(text)
		}
		if a.Type == TypeColor {
			text = normalizeColor(text)
		}
		return text
	case TypeNumber, TypeInteger, TypeBoolean:
		if _, isString := value.(string); !isString {
			return value
		}
		coerced, err := a.Coerce(value)
		if err != nil {
			return value
		}
		return coerced
	default:
		return value
	}
}

func stripMarkup(raw string) string {
	if !strings.ContainsAny(raw, "<>") {
		return raw
	}
	cleaned := markupSanitizer().Sanitize(raw)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		markupPolicy = bluemonday.StrictPolicy()
	})
	return markupPolicy
}
