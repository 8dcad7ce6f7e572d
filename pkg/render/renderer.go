package render

import (
	"context"

	"github.com/forgekit/go-soldoc/pkg/model"
)

// Renderer converts a file document into a byte representation (Markdown,
// ANSI, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc model.FileDoc, options RenderOptions) ([]byte, error)
}
