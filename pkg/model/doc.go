// Package model defines the typed contract documentation model consumed by
// renderers. Documents arrive fully populated from an external extraction
// step; this package only validates the structure, normalises renderer-facing
// defaults (anonymous parameters and missing descriptions render as "-",
// missing source text gets a synthesised signature), and preserves supplied
// ordering. Groups are slices rather than maps so contracts, member groups,
// and overloads always render in the exact order the caller provided.
package model
