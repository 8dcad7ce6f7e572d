package model

// Decorator enriches a file document with additional metadata after the
// canonical structure has been validated and normalised.
type Decorator interface {
	Decorate(*FileDoc) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*FileDoc) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(doc *FileDoc) error {
	return fn(doc)
}
