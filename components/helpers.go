package components

import (
	"github.com/rohanthewiz/element"

	"plume/form"
	"plume/ui"
)

// FieldLabel renders a label element when there is text to show.
type FieldLabel struct {
	For      string
	Text     string
	Required bool
	Class    string
}

func (l FieldLabel) Render(b *element.Builder) (x any) {
	if l.Text == "" {
		return
	}
	b.Label("for", l.For, "class", ui.Classes("block mb-1 font-medium", l.Class)).R(
		b.T(l.Text),
		b.Wrap(func() {
			if l.Required {
				b.Span("class", "text-danger-500 ms-0.5", "aria-hidden", "true").T("*")
			}
		}),
	)
	return
}

// ErrorList renders the visible validation errors of a field. Callers
// pass the already-gated slice (Field.VisibleErrors), so an untouched
// field renders nothing here.
type ErrorList struct {
	For        string // owning control id, used to derive the list id
	Errors     []form.FieldError
	Translator form.Translator
	Icon       string
	Class      string
}

func (el ErrorList) Render(b *element.Builder) (x any) {
	if len(el.Errors) == 0 {
		return
	}
	attrs := []string{"class", ui.Classes(
		"mt-1.5 space-y-1 text-sm text-danger-600 dark:text-danger-400", el.Class)}
	if el.For != "" {
		attrs = append(attrs, "id", el.For+"-errors")
	}
	b.Div(attrs...).R(
		element.ForEach(el.Errors, func(e form.FieldError) {
			b.P("class", "flex items-center gap-1.5").R(
				RenderIcon(b, el.Icon, "w-4 h-4 shrink-0"),
				b.T(form.Translate(el.Translator, e)),
			)
		}),
	)
	return
}
