package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgmodel "github.com/forgekit/go-soldoc/pkg/model"
)

// MustLoadFileDoc loads a JSON fixture into a FileDoc structure. Testing
// helpers fail the test on error to keep contract tests concise.
func MustLoadFileDoc(t *testing.T, path string) pkgmodel.FileDoc {
	t.Helper()

	doc, err := LoadFileDoc(path)
	if err != nil {
		t.Fatalf("load file doc: %v", err)
	}
	return doc
}

// LoadFileDoc reads a JSON fixture into a FileDoc, returning an error for
// callers managing setup outside of *testing.T.
func LoadFileDoc(path string) (pkgmodel.FileDoc, error) {
	if path == "" {
		return pkgmodel.FileDoc{}, errors.New("testsupport: file doc path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pkgmodel.FileDoc{}, fmt.Errorf("testsupport: read file doc: %w", err)
	}
	var out pkgmodel.FileDoc
	if err := json.Unmarshal(data, &out); err != nil {
		return pkgmodel.FileDoc{}, fmt.Errorf("testsupport: unmarshal file doc: %w", err)
	}
	return out, nil
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns the background context used across renderer tests.
func Context() context.Context {
	return context.Background()
}
