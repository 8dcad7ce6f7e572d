// Package overlay loads and applies documentation overlays that supplement
// contract models with out-of-band natspec text. The renderer pipeline stays
// unaware of optional overlays while orchestrator callers can opt in with a
// single option.
package overlay
