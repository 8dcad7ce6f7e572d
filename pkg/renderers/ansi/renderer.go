package ansi

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/forgekit/go-soldoc/pkg/model"
	"github.com/forgekit/go-soldoc/pkg/render"
	"github.com/forgekit/go-soldoc/pkg/renderers/markdown"
)

// Name is the identifier this renderer registers under.
const Name = "ansi"

const (
	defaultStyle    = "auto"
	defaultWordWrap = 100
)

type Option func(*Renderer)

// WithStyle selects a glamour standard style ("dark", "light", "dracula",
// ...). A theme supplied through RenderOptions takes precedence per request.
func WithStyle(style string) Option {
	return func(r *Renderer) {
		if style != "" {
			r.style = style
		}
	}
}

// WithWordWrap overrides the wrap column for flowed text. Zero disables
// wrapping.
func WithWordWrap(width int) Option {
	return func(r *Renderer) {
		if width >= 0 {
			r.wordWrap = width
		}
	}
}

// WithMarkdownRenderer injects the renderer that produces the intermediate
// Markdown. Defaults to the built-in markdown renderer.
func WithMarkdownRenderer(renderer render.Renderer) Option {
	return func(r *Renderer) {
		if renderer != nil {
			r.source = renderer
		}
	}
}

// Renderer produces styled terminal output by piping the Markdown renderer's
// result through glamour.
type Renderer struct {
	source   render.Renderer
	style    string
	wordWrap int
}

// New constructs the ansi renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		style:    defaultStyle,
		wordWrap: defaultWordWrap,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.source == nil {
		source, err := markdown.New()
		if err != nil {
			return nil, fmt.Errorf("ansi renderer: configure markdown source: %w", err)
		}
		r.source = source
	}

	return r, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render produces ANSI-styled terminal output for doc.
func (r *Renderer) Render(ctx context.Context, doc model.FileDoc, options render.RenderOptions) ([]byte, error) {
	if r.source == nil {
		return nil, errors.New("ansi renderer: markdown source is nil")
	}

	page, err := r.source.Render(ctx, doc, options)
	if err != nil {
		return nil, fmt.Errorf("ansi renderer: render markdown: %w", err)
	}

	term, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.styleFor(options)),
		glamour.WithWordWrap(r.wordWrap),
	)
	if err != nil {
		return nil, fmt.Errorf("ansi renderer: configure glamour: %w", err)
	}

	out, err := term.RenderBytes(page)
	if err != nil {
		return nil, fmt.Errorf("ansi renderer: style output: %w", err)
	}
	return out, nil
}

// styleFor resolves the glamour style name, preferring the per-request theme.
func (r *Renderer) styleFor(options render.RenderOptions) string {
	if options.Theme != nil && options.Theme.Theme != "" {
		return options.Theme.Theme
	}
	return r.style
}
