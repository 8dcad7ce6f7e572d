package model

import "strings"

// MethodSignature builds the canonical external signature text used inside
// fenced code blocks when the caller did not supply rendered source.
func MethodSignature(method MethodDoc) string {
	var b strings.Builder
	b.WriteString("function ")
	b.WriteString(method.Name)
	b.WriteString("(")
	b.WriteString(paramList(method.Params))
	b.WriteString(") external")
	if method.StateMutability != "" {
		b.WriteString(" ")
		b.WriteString(method.StateMutability)
	}
	if len(method.Returns) > 0 {
		b.WriteString(" returns (")
		b.WriteString(paramList(method.Returns))
		b.WriteString(")")
	}
	return b.String()
}

// EventSignature builds the declaration text for an event.
func EventSignature(event EventDoc) string {
	return "event " + event.Name + "(" + paramList(event.Params) + ")"
}

// ErrorSignature builds the declaration text for a custom error.
func ErrorSignature(errDoc ErrorDoc) string {
	return "error " + errDoc.Name + "(" + paramList(errDoc.Params) + ")"
}

func paramList(params []ParamDoc) string {
	fragments := make([]string, 0, len(params))
	for _, param := range params {
		fragments = append(fragments, paramFragment(param))
	}
	return strings.Join(fragments, ", ")
}

// paramFragment renders "kind name", dropping the name when the source left
// the parameter anonymous.
func paramFragment(param ParamDoc) string {
	if param.Name == "" || param.Name == "-" {
		return param.Kind
	}
	return param.Kind + " " + param.Name
}
