package presets

import (
	"embed"
	"io/fs"
)

//go:embed presets/*.yaml
var embeddedPresets embed.FS

// EmbeddedFS exposes the built-in preset catalog used by the demo apps and
// the CLI.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedPresets, "presets")
	if err != nil {
		return embeddedPresets
	}
	return sub
}

// MustLoadEmbedded loads the embedded catalog, panicking on failure. The
// embedded documents are validated in tests, so a failure here means a
// build-time packaging problem.
func MustLoadEmbedded() *Store {
	store, err := LoadFS(EmbeddedFS())
	if err != nil {
		panic(err)
	}
	return store
}
