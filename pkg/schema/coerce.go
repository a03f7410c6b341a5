package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coerce converts value into the JSON-compatible representation of the
// attribute type. Strings are parsed for numeric and boolean attributes so
// values coming from theme tokens or prompts can be fed in directly.
func (a Attribute) Coerce(value any) (any, error) {
	switch a.Type {
	case TypeString, TypeColor, TypeEnumerated:
		text, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("schema: attribute %q expects a string, got %T", a.Name, value)
		}
		return text, nil
	case TypeNumber, TypeInteger:
		number, err := toFloat(value)
		if err != nil {
			return nil, fmt.Errorf("schema: attribute %q: %w", a.Name, err)
		}
		if a.Type == TypeInteger && number != math.Trunc(number) {
			return nil, fmt.Errorf("schema: attribute %q expects an integer, got %v", a.Name, number)
		}
		return number, nil
	case TypeBoolean:
		switch typed := value.(type) {
		case bool:
			return typed, nil
		case string:
			parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
			if err != nil {
				return nil, fmt.Errorf("schema: attribute %q expects a boolean, got %q", a.Name, typed)
			}
			return parsed, nil
		default:
			return nil, fmt.Errorf("schema: attribute %q expects a boolean, got %T", a.Name, value)
		}
	default:
		return nil, fmt.Errorf("schema: attribute %q has unknown type %q", a.Name, a.Type)
	}
}

func toFloat(value any) (float64, error) {
	switch typed := value.(type) {
	case float64:
		return typed, nil
	case float32:
		return float64(typed), nil
	case int:
		return float64(typed), nil
	case int32:
		return float64(typed), nil
	case int64:
		return float64(typed), nil
	case uint:
		return float64(typed), nil
	case uint64:
		return float64(typed), nil
	case json.Number:
		return typed.Float64()
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, fmt.Errorf("expected a number, got %q", typed)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", value)
	}
}
