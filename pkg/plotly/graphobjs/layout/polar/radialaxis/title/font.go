// Package title holds the schema nodes nested under a polar radial axis
// title (plotly.graph_objs.layout.polar.radialaxis.title).
package title

import (
	"github.com/benetherington/anvil-runtime/pkg/serializable"
	"github.com/benetherington/anvil-runtime/pkg/wrapped"
)

const (
	// Module is the dotted module path every type in this package is
	// registered under.
	Module = "plotly.graph_objs.layout.polar.radialaxis.title"

	// FontName is the registered name of Font.
	FontName = "Font"
)

// All returns the exported symbols of this module.
func All() []string {
	return []string{FontName}
}

// Font styles the title text of a polar radial axis. Its attributes (color,
// family, size, ...) live in the embedded wrapped.Object.
type Font struct {
	wrapped.Object
}

var _ serializable.Type = (*Font)(nil)
var _ serializable.Attributer = (*Font)(nil)

// NewFont builds a Font seeded with attrs.
func NewFont(attrs map[string]any) *Font {
	font := &Font{}
	font.Reset(attrs)
	return font
}

func (*Font) SerializableName() string { return FontName }

func (*Font) SerializableModule() string { return Module }

// Attributes exposes the attribute storage to the codec.
func (f *Font) Attributes() *wrapped.Object {
	if f == nil {
		return nil
	}
	return &f.Object
}

// FontDescriptor returns the registry descriptor for Font.
func FontDescriptor() serializable.Descriptor {
	return serializable.Descriptor{
		Name:        FontName,
		Module:      Module,
		Description: "Sets the font of the polar radial axis title.",
		New:         func() serializable.Type { return &Font{} },
	}
}

// Register adds every type of this module to reg.
func Register(reg *serializable.Registry) error {
	return reg.Register(FontDescriptor())
}
