package model

import internalmodel "github.com/forgekit/go-soldoc/internal/model"

type ParamDoc = internalmodel.ParamDoc
type MethodDoc = internalmodel.MethodDoc
type EventDoc = internalmodel.EventDoc
type ErrorDoc = internalmodel.ErrorDoc
type MethodGroup = internalmodel.MethodGroup
type EventGroup = internalmodel.EventGroup
type ErrorGroup = internalmodel.ErrorGroup
type ContractDoc = internalmodel.ContractDoc
type FileDoc = internalmodel.FileDoc

// ErrMalformedInput re-exports the sentinel used for structural validation
// failures.
var ErrMalformedInput = internalmodel.ErrMalformedInput

// Validate checks the structural invariants of a document before rendering.
func Validate(doc FileDoc) error {
	return internalmodel.Validate(doc)
}

// Normalize fills renderer-facing defaults ("-" cells, synthesised
// signatures) in place.
func Normalize(doc *FileDoc) {
	internalmodel.Normalize(doc)
}

// MethodSignature, EventSignature, and ErrorSignature expose the signature
// synthesis used by Normalize for callers that render source text themselves.
func MethodSignature(method MethodDoc) string {
	return internalmodel.MethodSignature(method)
}

func EventSignature(event EventDoc) string {
	return internalmodel.EventSignature(event)
}

func ErrorSignature(errDoc ErrorDoc) string {
	return internalmodel.ErrorSignature(errDoc)
}
