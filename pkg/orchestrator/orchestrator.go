package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"golang.org/x/sync/errgroup"

	"github.com/forgekit/go-soldoc/pkg/model"
	"github.com/forgekit/go-soldoc/pkg/overlay"
	"github.com/forgekit/go-soldoc/pkg/render"
	"github.com/forgekit/go-soldoc/pkg/renderers/markdown"
)

const defaultRendererName = markdown.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformer registers a Transformer that can mutate documents after
// validation but before overlay decorators run.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithDecorators registers decorators that should run against the document
// before rendering.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithOverlayFS supplies an fs.FS holding documentation overlay files. The
// loaded overlays run as a decorator ahead of any registered with
// WithDecorators.
func WithOverlayFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.overlayFS = fsys
	}
}

// Orchestrator coordinates the pipeline from supplied document model to
// rendered output. It applies sensible defaults (markdown renderer, embedded
// templates) while remaining open to dependency injection for advanced
// callers.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	transformer     Transformer
	decorators      []model.Decorator
	overlayFS       fs.FS
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render one document.
type Request struct {
	// Document is the fully-populated file doc supplied by the metadata
	// extraction step.
	Document model.FileDoc

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request instructions such as the fenced-block
	// language or theme configuration. When omitted, renderers receive the
	// zero-value struct.
	RenderOptions render.RenderOptions
}

// Generate executes the validate → transform → decorate → normalize →
// render sequence and returns the rendered bytes (Markdown for the default
// renderer). Malformed documents abort before any output is produced.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	doc := req.Document
	if err := model.Validate(doc); err != nil {
		return nil, fmt.Errorf("orchestrator: validate document: %w", err)
	}

	if err := o.applyTransformer(ctx, &doc); err != nil {
		return nil, err
	}
	if err := o.applyDecorators(&doc); err != nil {
		return nil, err
	}
	model.Normalize(&doc)

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, doc, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return output, nil
}

// GenerateAll renders every request concurrently, one goroutine per document,
// and returns the outputs in request order. Rendering is independent per
// document, so parallelism never affects result ordering; any failure aborts
// the whole batch.
func (o *Orchestrator) GenerateAll(ctx context.Context, reqs []Request) ([][]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if len(reqs) == 0 {
		return nil, nil
	}

	results := make([][]byte, len(reqs))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		group.Go(func() error {
			output, err := o.Generate(groupCtx, req)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			results[i] = output
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	// List is sorted, so the fallback is the alphabetically first renderer.
	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(doc *model.FileDoc) error {
	if len(o.decorators) == 0 || doc == nil {
		return nil
	}
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(doc); err != nil {
			return fmt.Errorf("orchestrator: decorate document: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, doc *model.FileDoc) error {
	if o.transformer == nil || doc == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, doc); err != nil {
		return fmt.Errorf("orchestrator: transform document: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := markdown.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.ensureOverlayDecorator()

	o.defaultsApplied = true
}

func (o *Orchestrator) ensureOverlayDecorator() {
	if o.overlayFS == nil {
		return
	}

	store, err := overlay.LoadFS(o.overlayFS)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: load overlays: %w", err)
		return
	}
	if store.Empty() {
		return
	}

	o.decorators = append([]model.Decorator{overlay.NewDecorator(store)}, o.decorators...)
}
