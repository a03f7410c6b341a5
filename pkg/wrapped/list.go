package wrapped

import (
	"encoding/json"
	"errors"
	"fmt"
)

// List is an ordered sequence of wrapped values.
type List struct {
	items []any
}

// NewList builds a List holding items.
func NewList(items ...any) *List {
	list := &List{}
	for _, item := range items {
		list.Append(item)
	}
	return list
}

// Append adds value to the end of the list.
func (l *List) Append(value any) {
	if l == nil {
		return
	}
	l.items = append(l.items, Wrap(value))
}

// At returns the element at idx.
func (l *List) At(idx int) (any, bool) {
	if l == nil || idx < 0 || idx >= len(l.items) {
		return nil, false
	}
	return l.items[idx], true
}

// Len returns the number of elements.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Items returns a deep copy of the elements, unwrapped.
func (l *List) Items() []any {
	if l == nil {
		return []any{}
	}
	out := make([]any, len(l.items))
	for idx, item := range l.items {
		out[idx] = Unwrap(item)
	}
	return out
}

// Clone returns a deep copy of l.
func (l *List) Clone() *List {
	if l == nil {
		return nil
	}
	return NewList(l.Items()...)
}

// MarshalJSON encodes the list as a JSON array.
func (l *List) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Items())
}

// UnmarshalJSON replaces the elements with the decoded JSON array.
func (l *List) UnmarshalJSON(data []byte) error {
	if l == nil {
		return errors.New("wrapped: unmarshal into nil list")
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("wrapped: decode list: %w", err)
	}
	switch typed := raw.(type) {
	case nil:
		l.items = nil
		return nil
	case []any:
		l.items = nil
		for _, item := range typed {
			l.Append(item)
		}
		return nil
	default:
		return fmt.Errorf("wrapped: expected JSON array, got %T", raw)
	}
}
