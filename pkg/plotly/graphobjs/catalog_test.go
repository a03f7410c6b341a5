package graphobjs

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/benetherington/anvil-runtime/pkg/schema"
	"github.com/benetherington/anvil-runtime/pkg/serializable"
)

func TestNewRegistry_RegistersCatalog(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	var got []string
	for _, key := range reg.Keys() {
		got = append(got, key.Qualified())
	}
	want := []string{"plotly.graph_objs.layout.polar.radialaxis.title.Font"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("registered keys mismatch (-want +got):\n%s", diff)
	}
}

func TestRegisterAll_Twice(t *testing.T) {
	reg := serializable.NewRegistry()
	if err := RegisterAll(reg); err != nil {
		t.Fatalf("register all: %v", err)
	}
	if err := RegisterAll(reg); !errors.Is(err, serializable.ErrDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestExports(t *testing.T) {
	want := map[string][]string{
		"plotly.graph_objs.layout.polar.radialaxis.title": {"Font"},
	}
	if diff := cmp.Diff(want, Exports()); diff != "" {
		t.Fatalf("exports mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_EveryExportRegisteredWithSchema(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	store, err := schema.Embedded()
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}

	for path, exports := range Exports() {
		for _, name := range exports {
			key := serializable.Key{Name: name, Module: path}
			if !reg.Has(key) {
				t.Fatalf("export %s is not registered", key)
			}
			if _, ok := store.Type(key.Qualified()); !ok {
				t.Fatalf("export %s has no attribute schema", key)
			}
		}
	}
}
