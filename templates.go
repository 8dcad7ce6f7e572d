package soldoc

import (
	"io/fs"

	"github.com/forgekit/go-soldoc/pkg/renderers/markdown"
)

// EmbeddedTemplates exposes the built-in markdown renderer templates so
// callers can reuse or extend them without importing the renderer package
// directly.
func EmbeddedTemplates() fs.FS {
	return markdown.TemplatesFS()
}
