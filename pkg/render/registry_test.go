package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/forgekit/go-soldoc/pkg/model"
	"github.com/forgekit/go-soldoc/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, model.FileDoc, render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(stubRenderer{name: "markdown"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("markdown")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "markdown" {
		t.Fatalf("unexpected renderer: %s", renderer.Name())
	}
	if !registry.Has("markdown") {
		t.Fatal("expected Has to report registered renderer")
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(stubRenderer{name: "markdown"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := registry.Register(stubRenderer{name: "markdown"})
	if err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegistry_RejectsUnnamedRenderer(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("expected error for renderer without name")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected error for nil renderer")
	}
}

func TestRegistry_ListIsSorted(t *testing.T) {
	registry := render.NewRegistry()
	for _, name := range []string{"zeta", "ansi", "markdown"} {
		if err := registry.Register(stubRenderer{name: name}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}

	names := registry.List()
	want := []string{"ansi", "markdown", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("unexpected list: %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("unexpected list order: %v", names)
		}
	}
}

func TestRenderOptions_Language(t *testing.T) {
	var opts render.RenderOptions
	if opts.Language() != render.DefaultCodeLanguage {
		t.Fatalf("unexpected default language: %s", opts.Language())
	}
	opts.CodeLanguage = "vyper"
	if opts.Language() != "vyper" {
		t.Fatalf("unexpected language override: %s", opts.Language())
	}
}
