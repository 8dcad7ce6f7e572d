package render

import theme "github.com/goliatone/go-theme"

// DefaultCodeLanguage is the language tag applied to fenced signature blocks
// when the caller does not override it.
const DefaultCodeLanguage = "solidity"

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the document pipeline.
type RenderOptions struct {
	// CodeLanguage overrides the language tag on fenced signature blocks.
	// Empty selects DefaultCodeLanguage.
	CodeLanguage string
	// Theme carries resolved theme configuration for renderers that style
	// their output (the ansi renderer maps Theme.Theme onto a glamour
	// standard style). Markdown output ignores it.
	Theme *theme.RendererConfig
}

// Language returns the effective fenced-block language tag.
func (o RenderOptions) Language() string {
	if o.CodeLanguage != "" {
		return o.CodeLanguage
	}
	return DefaultCodeLanguage
}
