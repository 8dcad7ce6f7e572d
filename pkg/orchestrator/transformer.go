package orchestrator

import (
	"context"

	"github.com/forgekit/go-soldoc/pkg/model"
)

// Transformer mutates a file doc after validation but before decorators run.
// Implementations can rename contracts, strip members, or perform arbitrary
// rewrites.
type Transformer interface {
	Transform(ctx context.Context, doc *model.FileDoc) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, doc *model.FileDoc) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, doc *model.FileDoc) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, doc)
}
