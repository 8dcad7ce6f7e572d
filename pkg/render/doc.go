// Package render defines the renderer contract shared by all output formats
// plus the registry orchestrator callers use to discover them.
package render
