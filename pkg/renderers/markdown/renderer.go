package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/forgekit/go-soldoc/pkg/model"
	"github.com/forgekit/go-soldoc/pkg/render"
	rendertemplate "github.com/forgekit/go-soldoc/pkg/render/template"
	gotemplate "github.com/forgekit/go-soldoc/pkg/render/template/gotemplate"
)

// Name is the identifier this renderer registers under.
const Name = "markdown"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces one Markdown document per file doc using the embedded
// pongo2 templates.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the markdown renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("markdown renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	if err := registerFilters(renderer); err != nil {
		return nil, err
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

// Render produces the Markdown document for doc. The document must already be
// validated and normalised; rendering itself never mutates it.
func (r *Renderer) Render(_ context.Context, doc model.FileDoc, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("markdown renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate("templates/doc.tmpl", map[string]any{
		"file":     doc,
		"language": options.Language(),
	})
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: render template: %w", err)
	}
	return []byte(tidy(result)), nil
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// tidy normalises template output: control tags leave behind bare newlines, so
// runs of blank lines collapse to a single separator and the document gains a
// single trailing newline.
func tidy(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	s = strings.TrimLeft(s, "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return s
	}
	return s + "\n"
}
