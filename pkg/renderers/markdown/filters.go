package markdown

import (
	"fmt"
	"strings"

	rendertemplate "github.com/forgekit/go-soldoc/pkg/render/template"
)

// paramTableMode selects the event layout with its extra Indexed column.
const paramTableModeIndexed = "indexed"

// registerFilters installs the table filters the embedded templates rely on.
// Registration is idempotent on the pongo2-backed engine, so constructing
// multiple renderers is safe.
func registerFilters(engine rendertemplate.TemplateRenderer) error {
	if err := engine.RegisterFilter("param_table", paramTableFilter); err != nil {
		return fmt.Errorf("markdown: register param_table filter: %w", err)
	}
	return nil
}

// paramTableFilter renders a parameter collection as a Markdown table. The
// optional filter argument "indexed" adds the Indexed column used by event
// parameters, where an unset flag renders as "-".
func paramTableFilter(input any, param any) (any, error) {
	params, err := paramMaps(input)
	if err != nil {
		return nil, err
	}

	indexed := false
	if mode, ok := param.(string); ok && mode == paramTableModeIndexed {
		indexed = true
	}

	var b strings.Builder
	if indexed {
		b.WriteString("| Name | Type | Indexed | Description |\n")
		b.WriteString("|------|------|---------|-------------|")
	} else {
		b.WriteString("| Name | Type | Description |\n")
		b.WriteString("|------|------|-------------|")
	}

	for _, p := range params {
		b.WriteString("\n| ")
		b.WriteString(cell(stringField(p, "name")))
		b.WriteString(" | ")
		b.WriteString(cell(stringField(p, "kind")))
		if indexed {
			b.WriteString(" | ")
			b.WriteString(indexedCell(p))
		}
		b.WriteString(" | ")
		b.WriteString(cell(stringField(p, "doc")))
		b.WriteString(" |")
	}

	return b.String(), nil
}

func paramMaps(input any) ([]map[string]any, error) {
	items, ok := input.([]any)
	if !ok {
		return nil, fmt.Errorf("markdown: param_table expects a parameter list, got %T", input)
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("markdown: param_table expects parameter objects, got %T", item)
		}
		out = append(out, m)
	}
	return out, nil
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func indexedCell(m map[string]any) string {
	v, ok := m["indexed"]
	if !ok || v == nil {
		return "-"
	}
	if flag, ok := v.(bool); ok {
		if flag {
			return "true"
		}
		return "false"
	}
	return "-"
}

// cell makes arbitrary documentation text safe inside a table row: pipes are
// escaped and newlines collapse to spaces so a cell never breaks the grid.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.TrimSpace(s)
}
