package markdown

import (
	"fmt"
	"strings"

	"github.com/forgekit/go-soldoc/pkg/model"
)

const summaryIndent = "    "

// RenderSummary builds an mdBook-style SUMMARY listing for the supplied
// document names, in supplied order. Names are slash-separated paths without
// extension ("tokens/Token"); directory entries are emitted once, before
// their first child, and nest four spaces per level. Writing the result to
// disk is the caller's concern.
func RenderSummary(names []string) ([]byte, error) {
	var b strings.Builder
	seen := make(map[string]struct{})

	for _, name := range names {
		trimmed := strings.Trim(strings.TrimSpace(name), "/")
		if trimmed == "" {
			return nil, fmt.Errorf("%w: summary entry name is required", model.ErrMalformedInput)
		}

		segments := strings.Split(trimmed, "/")
		for i := 0; i < len(segments)-1; i++ {
			dir := strings.Join(segments[:i+1], "/")
			if _, ok := seen[dir]; ok {
				continue
			}
			seen[dir] = struct{}{}
			writeSummaryEntry(&b, i, segments[i], dir)
		}
		writeSummaryEntry(&b, len(segments)-1, segments[len(segments)-1], trimmed)
	}

	return []byte(b.String()), nil
}

func writeSummaryEntry(b *strings.Builder, depth int, base, path string) {
	b.WriteString(strings.Repeat(summaryIndent, depth))
	b.WriteString("- [")
	b.WriteString(base)
	b.WriteString("](")
	b.WriteString(path)
	b.WriteString(".md)\n")
}
