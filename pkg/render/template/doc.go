// Package template defines renderer-agnostic template interfaces and adapters
// so output formats stay decoupled from the concrete template engine.
package template
