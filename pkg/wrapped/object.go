package wrapped

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Object stores arbitrary attributes keyed by name. The zero value is ready
// to use. Objects are not safe for concurrent mutation.
type Object struct {
	attrs map[string]any
}

// NewObject builds an Object seeded with a copy of attrs. Nested maps and
// slices are wrapped; blank keys are dropped.
func NewObject(attrs map[string]any) *Object {
	obj := &Object{}
	for key, value := range attrs {
		obj.Set(key, value)
	}
	return obj
}

// Get returns the attribute stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil || o.attrs == nil {
		return nil, false
	}
	value, ok := o.attrs[strings.TrimSpace(key)]
	return value, ok
}

// Set stores a copy of value under key. Blank keys are ignored.
func (o *Object) Set(key string, value any) {
	name := strings.TrimSpace(key)
	if o == nil || name == "" {
		return
	}
	if o.attrs == nil {
		o.attrs = make(map[string]any)
	}
	o.attrs[name] = Wrap(value)
}

// Delete removes key when present.
func (o *Object) Delete(key string) {
	if o == nil || o.attrs == nil {
		return
	}
	delete(o.attrs, strings.TrimSpace(key))
}

// Has reports whether key is set.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Keys returns the attribute names in sorted order.
func (o *Object) Keys() []string {
	if o == nil || len(o.attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(o.attrs))
	for key := range o.attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of attributes.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.attrs)
}

// Map returns a deep copy of the attributes with nested Objects and Lists
// converted back to plain maps and slices.
func (o *Object) Map() map[string]any {
	if o == nil || len(o.attrs) == 0 {
		return map[string]any{}
	}
	out := make(map[string]any, len(o.attrs))
	for key, value := range o.attrs {
		out[key] = Unwrap(value)
	}
	return out
}

// Clone returns a deep copy of o.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	return NewObject(o.Map())
}

// Merge copies attributes from other that are not already present on o.
func (o *Object) Merge(other *Object) {
	if o == nil || other == nil {
		return
	}
	for key, value := range other.attrs {
		if o.Has(key) {
			continue
		}
		o.Set(key, Unwrap(value))
	}
}

// Reset replaces every attribute with attrs.
func (o *Object) Reset(attrs map[string]any) {
	if o == nil {
		return
	}
	o.attrs = nil
	for key, value := range attrs {
		o.Set(key, value)
	}
}

// MarshalJSON encodes the attributes as a flat JSON object.
func (o *Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Map())
}

// UnmarshalJSON replaces the attributes with the decoded JSON object.
func (o *Object) UnmarshalJSON(data []byte) error {
	if o == nil {
		return errors.New("wrapped: unmarshal into nil object")
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("wrapped: decode object: %w", err)
	}
	switch typed := raw.(type) {
	case nil:
		o.attrs = nil
		return nil
	case map[string]any:
		o.Reset(typed)
		return nil
	default:
		return fmt.Errorf("wrapped: expected JSON object, got %T", raw)
	}
}
