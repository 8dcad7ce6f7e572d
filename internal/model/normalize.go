package model

// emptyCell is the placeholder used where a parameter has no name or no
// documentation text.
const emptyCell = "-"

// Normalize fills renderer-facing defaults in place: anonymous parameters and
// missing documentation strings become "-" table cells, and members without
// rendered source get a synthesised signature. Supplied values are never
// overwritten, so normalising twice is a no-op.
func Normalize(doc *FileDoc) {
	if doc == nil {
		return
	}
	for c := range doc.Contracts {
		contract := &doc.Contracts[c]
		for g := range contract.Methods {
			group := &contract.Methods[g]
			for m := range group.Methods {
				method := &group.Methods[m]
				normalizeParams(method.Params)
				normalizeParams(method.Returns)
				if method.Source == "" {
					method.Source = MethodSignature(*method)
				}
			}
		}
		for g := range contract.Events {
			group := &contract.Events[g]
			for e := range group.Events {
				event := &group.Events[e]
				normalizeParams(event.Params)
				if event.Source == "" {
					event.Source = EventSignature(*event)
				}
			}
		}
		for g := range contract.Errors {
			group := &contract.Errors[g]
			for e := range group.Errors {
				errDoc := &group.Errors[e]
				normalizeParams(errDoc.Params)
				if errDoc.Source == "" {
					errDoc.Source = ErrorSignature(*errDoc)
				}
			}
		}
	}
}

func normalizeParams(params []ParamDoc) {
	for i := range params {
		if params[i].Name == "" {
			params[i].Name = emptyCell
		}
		if params[i].Doc == "" {
			params[i].Doc = emptyCell
		}
	}
}
