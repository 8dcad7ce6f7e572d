// Package orchestrator wires the validate → transform → decorate → render
// pipeline, providing dependency injection friendly helpers for consumers
// that prefer a single entry point.
package orchestrator
