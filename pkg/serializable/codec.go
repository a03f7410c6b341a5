package serializable

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/benetherington/anvil-runtime/pkg/wrapped"
)

// Attributer is implemented by types whose state lives in a wrapped.Object.
type Attributer interface {
	Attributes() *wrapped.Object
}

// Envelope is the remote representation of a registered value: the
// qualified type name plus its attributes.
type Envelope struct {
	Type  string         `json:"type"`
	Value map[string]any `json:"value"`
}

// Encode converts t into an Envelope. t must be registered and expose its
// attributes.
func (r *Registry) Encode(t Type) (Envelope, error) {
	if t == nil {
		return Envelope{}, errors.New("serializable: cannot encode nil value")
	}
	key := KeyOf(t)
	if _, err := r.Lookup(key); err != nil {
		return Envelope{}, err
	}
	attributer, ok := t.(Attributer)
	if !ok {
		return Envelope{}, fmt.Errorf("%w: %s", ErrUnsupported, key)
	}
	return Envelope{
		Type:  key.Qualified(),
		Value: attributer.Attributes().Map(),
	}, nil
}

// Decode instantiates the type named by env and loads its attributes.
func (r *Registry) Decode(env Envelope) (Type, error) {
	if strings.TrimSpace(env.Type) == "" {
		return nil, errors.New("serializable: envelope type is required")
	}
	desc, err := r.LookupQualified(env.Type)
	if err != nil {
		return nil, err
	}
	value := desc.New()
	attributer, ok := value.(Attributer)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, desc.Key())
	}
	attrs := attributer.Attributes()
	if attrs == nil {
		return nil, fmt.Errorf("%w: %s has nil attributes", ErrUnsupported, desc.Key())
	}
	attrs.Reset(env.Value)
	return value, nil
}

// Marshal encodes t as a JSON envelope.
func (r *Registry) Marshal(t Type) ([]byte, error) {
	env, err := r.Encode(t)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("serializable: marshal %s: %w", env.Type, err)
	}
	return data, nil
}

// Unmarshal decodes a JSON envelope produced by Marshal.
func (r *Registry) Unmarshal(data []byte) (Type, error) {
	env, err := ParseEnvelope(data)
	if err != nil {
		return nil, err
	}
	return r.Decode(env)
}

// ParseEnvelope decodes raw JSON into an Envelope without resolving the type.
// Unknown top-level fields are rejected.
func ParseEnvelope(data []byte) (Envelope, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Envelope{}, errors.New("serializable: envelope payload is empty")
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var env Envelope
	if err := decoder.Decode(&env); err != nil {
		return Envelope{}, fmt.Errorf("serializable: decode envelope: %w", err)
	}
	return env, nil
}
