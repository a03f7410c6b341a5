// Package graphobjs assembles the plotly graph-object namespace. Every
// schema module is listed explicitly in modules; callers register them into
// a serializable.Registry during start-up with RegisterAll.
package graphobjs

import (
	"fmt"
	"sort"

	"github.com/benetherington/anvil-runtime/pkg/plotly/graphobjs/layout/polar/radialaxis/title"
	"github.com/benetherington/anvil-runtime/pkg/serializable"
)

// Module describes one graph-object module: its dotted path, the symbols it
// exports and the function registering its types.
type Module struct {
	Path     string
	Exports  func() []string
	Register func(reg *serializable.Registry) error
}

// modules is the definitive list of graph-object modules compiled into the
// binary.
var modules = []Module{
	{Path: title.Module, Exports: title.All, Register: title.Register},
}

// Modules returns the known graph-object modules sorted by path.
func Modules() []Module {
	out := append([]Module(nil), modules...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out
}

// RegisterAll registers every module into reg.
func RegisterAll(reg *serializable.Registry) error {
	for _, mod := range Modules() {
		if err := mod.Register(reg); err != nil {
			return fmt.Errorf("graphobjs: register %s: %w", mod.Path, err)
		}
	}
	return nil
}

// NewRegistry returns a registry with every graph-object module registered.
func NewRegistry(opts ...serializable.Option) (*serializable.Registry, error) {
	reg := serializable.NewRegistry(opts...)
	if err := RegisterAll(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Exports maps each module path to its exported symbols.
func Exports() map[string][]string {
	out := make(map[string][]string, len(modules))
	for _, mod := range modules {
		out[mod.Path] = mod.Exports()
	}
	return out
}
