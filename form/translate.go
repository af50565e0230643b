package form

import (
	"strconv"
	"strings"
)

// Translator renders one field error into user-facing text. The host
// application injects its own backend; components fall back to
// Passthrough when none is given.
type Translator interface {
	Translate(e FieldError) string
}

// TranslatorFunc adapts a plain function to the Translator interface.
type TranslatorFunc func(e FieldError) string

func (f TranslatorFunc) Translate(e FieldError) string { return f(e) }

// Passthrough interpolates %{name} slots from the error's vars and, when
// a plural count is present, the %{count} slot. Pluralization itself is
// left to count-aware backends.
var Passthrough Translator = TranslatorFunc(func(e FieldError) string {
	msg := e.Message
	if e.Count != nil {
		msg = strings.ReplaceAll(msg, "%{count}", strconv.Itoa(*e.Count))
	}
	for k, v := range e.Vars {
		msg = strings.ReplaceAll(msg, "%{"+k+"}", v)
	}
	return msg
})

// Translate runs e through t, falling back to Passthrough when t is nil.
func Translate(t Translator, e FieldError) string {
	if t == nil {
		t = Passthrough
	}
	return t.Translate(e)
}
