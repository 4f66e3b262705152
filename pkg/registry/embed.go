package registry

import (
	"embed"
	"io/fs"
)

//go:embed defaults
var embeddedCatalog embed.FS

// EmbeddedFS exposes the default field-type catalog shipped with the module.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedCatalog, "defaults")
	if err != nil {
		return embeddedCatalog
	}
	return sub
}
