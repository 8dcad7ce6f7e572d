// Package soldoc renders already-extracted contract documentation models
// (natspec metadata, grouped methods, events, and errors) into Markdown
// pages and terminal previews. Parsing sources and extracting metadata happen
// upstream; this module consumes the finished model and produces deterministic
// output in the order supplied.
package soldoc

import (
	"context"

	"github.com/forgekit/go-soldoc/pkg/model"
	"github.com/forgekit/go-soldoc/pkg/orchestrator"
	"github.com/forgekit/go-soldoc/pkg/overlay"
	"github.com/forgekit/go-soldoc/pkg/render"
	"github.com/forgekit/go-soldoc/pkg/renderers/markdown"
)

// FileDoc aliases the top-level document model for convenience.
type FileDoc = model.FileDoc

// ContractDoc aliases the per-contract model.
type ContractDoc = model.ContractDoc

// RenderOptions describes per-request overrides such as the fenced-block
// language or theme configuration.
type RenderOptions = render.RenderOptions

// OverlayContract and OverlayMember alias the overlay configuration types so
// callers can assemble stores programmatically.
type OverlayContract = overlay.Contract
type OverlayMember = overlay.Member

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers that want the full pipeline with defaults.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateMarkdown validates, normalises, and renders one document using the
// named renderer (the built-in markdown renderer when rendererName is empty).
// It is the simplest entry point for callers that just want Markdown output.
func GenerateMarkdown(ctx context.Context, doc model.FileDoc, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: doc,
		Renderer: rendererName,
	})
}

// GenerateSummary builds the mdBook-style index listing for the supplied
// document names, preserving their order.
func GenerateSummary(names []string) ([]byte, error) {
	return markdown.RenderSummary(names)
}
