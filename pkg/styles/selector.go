package styles

import (
	"errors"
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"
)

// NewSelector registers manifests in a go-theme registry and selects over
// it. The first manifest names the default theme, so unknown or empty theme
// names resolve to it. Registering the same name twice keeps both versions;
// selection picks the latest unless theme.WithVersion is passed.
func NewSelector(manifests ...*theme.Manifest) (theme.Selector, error) {
	registry := theme.NewRegistry()
	selector := theme.Selector{Registry: registry}
	for _, manifest := range manifests {
		if manifest == nil {
			return theme.Selector{}, errors.New("styles: manifest is required")
		}
		if err := registry.Register(manifest); err != nil {
			return theme.Selector{}, fmt.Errorf("styles: register theme %q: %w", manifest.Name, err)
		}
		if selector.DefaultTheme == "" {
			selector.DefaultTheme = manifest.Name
		}
	}
	return selector, nil
}

// LoadSelector reads manifests from fsys (JSON or YAML, by extension) and
// builds a selector over them.
func LoadSelector(fsys fs.FS, paths ...string) (theme.Selector, error) {
	if len(paths) == 0 {
		return theme.Selector{}, errors.New("styles: at least one manifest path is required")
	}
	manifests := make([]*theme.Manifest, 0, len(paths))
	for _, path := range paths {
		manifest, err := theme.LoadFile(fsys, path)
		if err != nil {
			return theme.Selector{}, fmt.Errorf("styles: %w", err)
		}
		manifests = append(manifests, manifest)
	}
	return NewSelector(manifests...)
}
