// Package form carries the bound-field model components consume: field
// state handed over from the host application's form layer, error
// visibility gating, and the translation hook for error messages.
package form

// FieldError is one validation message with its interpolation payload.
type FieldError struct {
	Message string
	Count   *int              // plural count, when the message carries one
	Vars    map[string]string // values for %{name} slots
}

// Field is the view of one bound form field. Used reports whether the
// field has been interacted with; validation errors stay hidden until
// then.
type Field struct {
	Name   string
	ID     string
	Value  string
	Errors []FieldError
	Used   bool
}

// VisibleErrors returns the errors a component may show. Untouched
// fields show nothing regardless of validation state.
func (f *Field) VisibleErrors() []FieldError {
	if f == nil || !f.Used {
		return nil
	}
	return f.Errors
}

// Truthy normalizes a raw form value into a checked state: empty and
// "false" are false, anything else is true.
func Truthy(raw string) bool {
	return raw != "" && raw != "false"
}
