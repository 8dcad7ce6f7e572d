package model

import (
	"errors"
	"fmt"
)

// ErrMalformedInput marks structural problems in a supplied document: a
// required field is missing where the model demands one. Renders abort rather
// than emit partial output; callers can test with errors.Is.
var ErrMalformedInput = errors.New("model: malformed input")

// Validate checks the structural invariants of a document before rendering.
// Optional natspec fields and empty collections are fine; missing identifiers
// are not.
func Validate(doc FileDoc) error {
	if doc.Name == "" {
		return fmt.Errorf("%w: document name is required", ErrMalformedInput)
	}
	for i, contract := range doc.Contracts {
		if err := validateContract(contract); err != nil {
			return fmt.Errorf("contract %d: %w", i, err)
		}
	}
	return nil
}

func validateContract(contract ContractDoc) error {
	if contract.Name == "" {
		return fmt.Errorf("%w: contract name is required", ErrMalformedInput)
	}
	for _, group := range contract.Methods {
		if group.Name == "" {
			return fmt.Errorf("%w: contract %s: method group name is required", ErrMalformedInput, contract.Name)
		}
		for _, method := range group.Methods {
			if method.Name == "" {
				return fmt.Errorf("%w: contract %s: method in group %s has no name", ErrMalformedInput, contract.Name, group.Name)
			}
			if err := validateParams(method.Params); err != nil {
				return fmt.Errorf("contract %s: method %s: %w", contract.Name, method.Name, err)
			}
			if err := validateParams(method.Returns); err != nil {
				return fmt.Errorf("contract %s: method %s returns: %w", contract.Name, method.Name, err)
			}
		}
	}
	for _, group := range contract.Events {
		if group.Name == "" {
			return fmt.Errorf("%w: contract %s: event group name is required", ErrMalformedInput, contract.Name)
		}
		for _, event := range group.Events {
			if event.Name == "" {
				return fmt.Errorf("%w: contract %s: event in group %s has no name", ErrMalformedInput, contract.Name, group.Name)
			}
			if err := validateParams(event.Params); err != nil {
				return fmt.Errorf("contract %s: event %s: %w", contract.Name, event.Name, err)
			}
		}
	}
	for _, group := range contract.Errors {
		if group.Name == "" {
			return fmt.Errorf("%w: contract %s: error group name is required", ErrMalformedInput, contract.Name)
		}
		for _, errDoc := range group.Errors {
			if errDoc.Name == "" {
				return fmt.Errorf("%w: contract %s: error in group %s has no name", ErrMalformedInput, contract.Name, group.Name)
			}
			if err := validateParams(errDoc.Params); err != nil {
				return fmt.Errorf("contract %s: error %s: %w", contract.Name, errDoc.Name, err)
			}
		}
	}
	return nil
}

func validateParams(params []ParamDoc) error {
	for i, param := range params {
		if param.Kind == "" {
			return fmt.Errorf("%w: parameter %d has no type", ErrMalformedInput, i)
		}
	}
	return nil
}
