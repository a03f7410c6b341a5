package title

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/benetherington/anvil-runtime/pkg/serializable"
)

func TestFont_Identity(t *testing.T) {
	fonts := []*Font{
		{},
		NewFont(nil),
		NewFont(map[string]any{"family": "Arial", "size": 12.0}),
	}
	for idx, font := range fonts {
		if got := font.SerializableName(); got != "Font" {
			t.Fatalf("font %d: name want %q, got %q", idx, "Font", got)
		}
		if got := font.SerializableModule(); got != "plotly.graph_objs.layout.polar.radialaxis.title" {
			t.Fatalf("font %d: module want %q, got %q", idx, Module, got)
		}
	}

	var nilFont *Font
	if nilFont.SerializableName() != FontName || nilFont.SerializableModule() != Module {
		t.Fatalf("identity should not depend on the receiver")
	}
	if nilFont.Attributes() != nil {
		t.Fatalf("nil font should expose nil attributes")
	}
}

func TestAll(t *testing.T) {
	if diff := cmp.Diff([]string{"Font"}, All()); diff != "" {
		t.Fatalf("exports mismatch (-want +got):\n%s", diff)
	}

	exports := All()
	exports[0] = "Mutated"
	if All()[0] != "Font" {
		t.Fatalf("All should return a fresh slice")
	}
}

func TestFont_Attributes(t *testing.T) {
	font := NewFont(map[string]any{"family": "Arial"})
	font.Set("color", "#444")

	if got, ok := font.Attributes().Get("color"); !ok || got != "#444" {
		t.Fatalf("expected color through Attributes, got %v (ok=%v)", got, ok)
	}

	data, err := json.Marshal(font)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"color":"#444","family":"Arial"}` {
		t.Fatalf("unexpected JSON: %s", data)
	}
}

func TestRegister(t *testing.T) {
	reg := serializable.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}

	desc, err := reg.Lookup(serializable.Key{Name: FontName, Module: Module})
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if _, ok := desc.New().(*Font); !ok {
		t.Fatalf("descriptor should build *Font, got %T", desc.New())
	}

	if err := Register(reg); !errors.Is(err, serializable.ErrDuplicate) {
		t.Fatalf("expected duplicate error on second registration, got %v", err)
	}
}

func TestFont_RoundTrip(t *testing.T) {
	reg := serializable.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}

	data, err := reg.Marshal(NewFont(map[string]any{"family": "Courier New", "size": 18.0, "color": "red"}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, err := reg.Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	font, ok := decoded.(*Font)
	if !ok {
		t.Fatalf("expected *Font, got %T", decoded)
	}
	want := map[string]any{"family": "Courier New", "size": 18.0, "color": "red"}
	if diff := cmp.Diff(want, font.Map()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
