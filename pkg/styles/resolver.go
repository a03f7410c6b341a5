package styles

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/benetherington/anvil-runtime/pkg/schema"
	"github.com/benetherington/anvil-runtime/pkg/serializable"
	"github.com/benetherington/anvil-runtime/pkg/wrapped"
)

// ErrUnknownVariant is returned when the selected manifest has no variant by
// the requested name.
var ErrUnknownVariant = errors.New("styles: unknown theme variant")

// Resolver combines schema defaults with theme tokens.
type Resolver struct {
	selector theme.ThemeSelector
	schemas  *schema.Store
}

// NewResolver builds a Resolver. A nil selector limits defaults to those
// declared in the schema store.
func NewResolver(selector theme.ThemeSelector, schemas *schema.Store) *Resolver {
	return &Resolver{selector: selector, schemas: schemas}
}

// Defaults returns default attribute values for key. Without a selector only
// schema defaults are returned. opts are passed to the selector, e.g.
// theme.WithVersion.
func (r *Resolver) Defaults(ctx context.Context, key serializable.Key, themeName, variant string, opts ...theme.QueryOption) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ts, ok := r.schemas.Type(key.Qualified())
	if !ok {
		return nil, fmt.Errorf("styles: no schema for %s", key)
	}
	out := ts.Defaults()
	if r.selector == nil {
		return out, nil
	}

	selection, err := r.selector.Select(themeName, variant, opts...)
	if err != nil {
		return nil, fmt.Errorf("styles: select theme: %w", err)
	}
	if selection.Variant != "" && selection.Manifest != nil {
		if _, ok := selection.Manifest.Variants[selection.Variant]; !ok {
			return nil, fmt.Errorf("%w: %q in theme %q", ErrUnknownVariant, selection.Variant, selection.Manifest.Name)
		}
	}
	tokens := selection.Tokens()
	for _, name := range ts.AttributeNames() {
		raw, token, found := lookupToken(tokens, key, name)
		if !found {
			continue
		}
		attr, _ := ts.Attribute(name)
		value, err := attr.Coerce(raw)
		if err != nil {
			return nil, fmt.Errorf("styles: token %q: %w", token, err)
		}
		out[name] = ts.Normalize(map[string]any{name: value})[name]
	}

	if err := ts.Validate(out); err != nil {
		return nil, fmt.Errorf("styles: theme defaults for %s: %w", key, err)
	}
	return out, nil
}

// Apply fills attributes missing on obj with the resolved defaults.
func (r *Resolver) Apply(ctx context.Context, obj *wrapped.Object, key serializable.Key, themeName, variant string, opts ...theme.QueryOption) error {
	if obj == nil {
		return nil
	}
	defaults, err := r.Defaults(ctx, key, themeName, variant, opts...)
	if err != nil {
		return err
	}
	obj.Merge(wrapped.NewObject(defaults))
	return nil
}

func lookupToken(tokens map[string]string, key serializable.Key, attr string) (string, string, bool) {
	candidates := []string{key.Qualified() + "." + attr}
	if key.Name == "Font" {
		candidates = append(candidates, "font."+attr)
	}
	for _, token := range candidates {
		if value, ok := tokens[token]; ok {
			return value, token, true
		}
	}
	return "", "", false
}
