package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/benetherington/anvil-runtime/pkg/schema"
)

const unsetOption = "(unset)"

// Attributes asks for every attribute declared by ts, offering defaults as
// the initial answers. Blank answers leave the attribute unset.
func Attributes(ctx context.Context, driver Driver, ts schema.TypeSchema, defaults map[string]any) (map[string]any, error) {
	if driver == nil {
		return nil, fmt.Errorf("prompt: driver is required")
	}
	out := make(map[string]any)
	for _, name := range ts.AttributeNames() {
		attr, _ := ts.Attribute(name)
		value, set, err := ask(ctx, driver, questionFor(attr, defaults[name]))
		if err != nil {
			return nil, fmt.Errorf("prompt: %s: %w", name, err)
		}
		if set {
			out[name] = value
		}
	}
	return out, nil
}

func questionFor(attr schema.Attribute, fallback any) Question {
	q := Question{Attribute: attr, Default: fallback}
	switch attr.Type {
	case schema.TypeEnumerated:
		q.Options = append([]string{unsetOption}, attr.Values...)
		if fallback == nil {
			q.Default = unsetOption
		}
	case schema.TypeBoolean:
	default:
		q.Validate = validatorFor(attr)
	}
	return q
}

func ask(ctx context.Context, driver Driver, q Question) (any, bool, error) {
	switch q.Attribute.Type {
	case schema.TypeEnumerated:
		answer, err := driver.Choose(ctx, q)
		if err != nil {
			return nil, false, err
		}
		if answer == "" || answer == unsetOption {
			return nil, false, nil
		}
		value, err := q.Attribute.Coerce(answer)
		if err != nil {
			return nil, false, err
		}
		return value, true, nil
	case schema.TypeBoolean:
		answer, err := driver.Confirm(ctx, q)
		if err != nil {
			return nil, false, err
		}
		return answer, true, nil
	default:
		answer, err := driver.Text(ctx, q)
		if err != nil {
			return nil, false, err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return nil, false, nil
		}
		value, err := q.Attribute.Coerce(answer)
		if err != nil {
			return nil, false, err
		}
		return value, true, nil
	}
}

func validatorFor(attr schema.Attribute) func(string) error {
	single := schema.TypeSchema{
		Name:       attr.Name,
		Attributes: map[string]schema.Attribute{attr.Name: attr},
	}
	return func(answer string) error {
		trimmed := strings.TrimSpace(answer)
		if trimmed == "" {
			return nil
		}
		value, err := attr.Coerce(trimmed)
		if err != nil {
			return err
		}
		return single.Validate(single.Normalize(map[string]any{attr.Name: value}))
	}
}
