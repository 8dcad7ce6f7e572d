package model

// ParamDoc describes a single method, event, or error parameter together with
// its documentation text. Struct fields are annotated so renderers and
// fixtures can serialise them directly.
type ParamDoc struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Doc  string `json:"doc,omitempty"`
	// InternalType carries the source-level type when it differs from Kind
	// (structs, enums, contract references).
	InternalType string `json:"internalType,omitempty"`
	// Indexed is only meaningful for event parameters. Nil renders as "-".
	Indexed *bool `json:"indexed,omitempty"`
}

// MethodDoc captures one overload of a named method. Source holds the rendered
// signature text placed inside the fenced code block; when empty it is
// synthesised from Name, StateMutability, Params, and Returns.
type MethodDoc struct {
	Name            string     `json:"name"`
	Source          string     `json:"source,omitempty"`
	StateMutability string     `json:"stateMutability,omitempty"`
	Details         string     `json:"details,omitempty"`
	Notice          string     `json:"notice,omitempty"`
	Params          []ParamDoc `json:"params,omitempty"`
	Returns         []ParamDoc `json:"returns,omitempty"`
}

// EventDoc captures one overload of a named event.
type EventDoc struct {
	Name    string     `json:"name"`
	Source  string     `json:"source,omitempty"`
	Details string     `json:"details,omitempty"`
	Notice  string     `json:"notice,omitempty"`
	Params  []ParamDoc `json:"params,omitempty"`
}

// ErrorDoc captures one overload of a named custom error.
type ErrorDoc struct {
	Name    string     `json:"name"`
	Source  string     `json:"source,omitempty"`
	Details string     `json:"details,omitempty"`
	Notice  string     `json:"notice,omitempty"`
	Params  []ParamDoc `json:"params,omitempty"`
}

// MethodGroup holds the overloads sharing one method name. Groups are slices
// rather than maps so the order supplied by the caller survives rendering.
type MethodGroup struct {
	Name    string      `json:"name"`
	Methods []MethodDoc `json:"methods"`
}

// EventGroup holds the overloads sharing one event name.
type EventGroup struct {
	Name   string     `json:"name"`
	Events []EventDoc `json:"events"`
}

// ErrorGroup holds the overloads sharing one error name.
type ErrorGroup struct {
	Name   string     `json:"name"`
	Errors []ErrorDoc `json:"errors"`
}

// ContractDoc combines a contract's identity, its natspec metadata, and the
// grouped member documentation renderers consume.
type ContractDoc struct {
	Name    string        `json:"name"`
	Title   string        `json:"title,omitempty"`
	Author  string        `json:"author,omitempty"`
	Details string        `json:"details,omitempty"`
	Notice  string        `json:"notice,omitempty"`
	Methods []MethodGroup `json:"methods,omitempty"`
	Events  []EventGroup  `json:"events,omitempty"`
	Errors  []ErrorGroup  `json:"errors,omitempty"`
}

// FileDoc is the top-level unit renderers consume: every contract declared in
// one source file, in declaration order. Name is the file identifier without
// extension, possibly slash-separated ("tokens/Token").
type FileDoc struct {
	Name      string        `json:"name"`
	Contracts []ContractDoc `json:"contracts"`
}
