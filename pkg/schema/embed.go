package schema

import (
	"embed"
	"io/fs"
)

//go:embed plotly/*.yaml
var embeddedSchema embed.FS

// EmbeddedFS returns the bundled plotly schema documents. Callers may pass
// this filesystem to LoadFS.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedSchema, "plotly")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Embedded loads the bundled plotly schema documents.
func Embedded() (*Store, error) {
	return LoadFS(EmbeddedFS())
}
