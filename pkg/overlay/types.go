package overlay

// Store keeps parsed overlay documents keyed by contract name. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	contracts map[string]Contract
}

// Contract returns the overlay for the supplied contract name.
func (s *Store) Contract(name string) (Contract, bool) {
	if s == nil {
		return Contract{}, false
	}
	c, ok := s.contracts[name]
	return c, ok
}

// Empty reports whether the store holds any overlays.
func (s *Store) Empty() bool {
	return s == nil || len(s.contracts) == 0
}

// Contract supplements a contract's natspec metadata out-of-band. Only fields
// the source documentation left empty are filled in; extracted natspec always
// wins.
type Contract struct {
	Title   string            `json:"title,omitempty" yaml:"title,omitempty"`
	Author  string            `json:"author,omitempty" yaml:"author,omitempty"`
	Details string            `json:"details,omitempty" yaml:"details,omitempty"`
	Notice  string            `json:"notice,omitempty" yaml:"notice,omitempty"`
	Methods map[string]Member `json:"methods,omitempty" yaml:"methods,omitempty"`
	Events  map[string]Member `json:"events,omitempty" yaml:"events,omitempty"`
	Errors  map[string]Member `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Member supplements one member group (every overload of the name). Params
// maps parameter names to description text.
type Member struct {
	Details string            `json:"details,omitempty" yaml:"details,omitempty"`
	Notice  string            `json:"notice,omitempty" yaml:"notice,omitempty"`
	Params  map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}
