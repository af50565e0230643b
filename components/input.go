package components

import (
	"strconv"

	"github.com/rohanthewiz/element"

	"plume/form"
	"plume/ui"
)

// SelectOption is one choice in a select input.
type SelectOption struct {
	Value    string
	Label    string
	Disabled bool
}

// Input is the form field family. Type picks the branch: "checkbox",
// "select", "textarea", or any text-like input type (text, email,
// password, date, ...), which all share the text branch. A bound Field
// supplies name, id, value, and errors unless set explicitly; error
// visibility follows the field's touched flag.
type Input struct {
	Type        string
	ID          string
	Name        string
	Value       string
	Label       string
	Placeholder string
	Description string
	Field       *form.Field
	Floating    ui.Floating
	Color       ui.Color
	Size        ui.Size
	Rounded     ui.Rounded
	Border      ui.Border
	Required    bool
	Disabled    bool
	Readonly    bool
	Checked     *bool          // checkbox only; derived from Value when nil
	Options     []SelectOption // select only
	Rows        int            // textarea only
	ErrorIcon   string
	Translator  form.Translator
	Class       string
}

func (in Input) normalize() Input {
	if in.Field != nil {
		if in.Name == "" {
			in.Name = in.Field.Name
		}
		if in.ID == "" {
			in.ID = in.Field.ID
		}
		if in.Value == "" {
			in.Value = in.Field.Value
		}
	}
	in.ID = ui.EnsureID(in.ID, "input")
	if in.Color == "" {
		in.Color = ui.ColorNatural
	}
	if in.Rounded == "" {
		in.Rounded = ui.RoundedMedium
	}
	if in.Border == "" {
		in.Border = ui.BorderExtraSmall
	}
	if in.Floating == "" {
		in.Floating = ui.FloatingNone
	}
	if in.Rows == 0 {
		in.Rows = 4
	}
	if in.ErrorIcon == "" {
		in.ErrorIcon = "warning"
	}
	if in.Type == "checkbox" && in.Checked == nil {
		v := form.Truthy(in.Value)
		in.Checked = &v
	}
	return in
}

// kind collapses Type onto the render branch. The union is closed:
// anything not named here is a text-like input.
func (in Input) kind() string {
	switch in.Type {
	case "checkbox", "select", "textarea":
		return in.Type
	default:
		return "text"
	}
}

func (in Input) Render(b *element.Builder) (x any) {
	in = in.normalize()
	switch in.kind() {
	case "checkbox":
		return in.renderCheckbox(b)
	case "select":
		return in.renderSelect(b)
	case "textarea":
		return in.renderTextarea(b)
	default:
		return in.renderText(b)
	}
}

func (in Input) shellClass(hasErr bool) string {
	return ui.Classes(
		"relative flex items-center gap-2 px-3 bg-white dark:bg-[#18181b]",
		ui.JoinTokens(ui.ResolveField(in.Color, in.Floating)),
		ui.SizeClass(in.Size), ui.RoundedClass(in.Rounded), ui.BorderClass(in.Border),
		ui.ClassIf(hasErr, "border-danger-500 dark:border-danger-500"),
		ui.ClassIf(in.Disabled, "opacity-60"),
	)
}

func (in Input) controlClass(extra string) string {
	return ui.Classes(
		"peer w-full bg-transparent border-0 focus:outline-none",
		ui.ClassIf(in.Floating == ui.FloatingInner, "pt-5 pb-1"),
		ui.ClassIf(in.Floating != ui.FloatingInner, "py-2.5"),
		extra,
	)
}

func (in Input) placeholder() string {
	if in.Floating != ui.FloatingNone && in.Placeholder == "" {
		return " "
	}
	return in.Placeholder
}

// flagAttrs appends the boolean control attributes in paired form.
func (in Input) flagAttrs(attrs []string) []string {
	if in.Required {
		attrs = append(attrs, "required", "required")
	}
	if in.Disabled {
		attrs = append(attrs, "disabled", "disabled")
	}
	if in.Readonly {
		attrs = append(attrs, "readonly", "readonly")
	}
	return attrs
}

func (in Input) ariaAttrs(attrs []string, hasErr bool) []string {
	if hasErr {
		attrs = append(attrs, "aria-invalid", "true", "aria-describedby", in.ID+"-errors")
	}
	return attrs
}

func (in Input) renderText(b *element.Builder) (x any) {
	errs := in.Field.VisibleErrors()
	typ := in.Type
	if typ == "" {
		typ = "text"
	}
	b.Div("class", ui.Classes("w-full", in.Class)).R(
		in.renderTopLabel(b),
		b.Div("class", in.shellClass(len(errs) > 0)).R(
			b.Wrap(func() {
				attrs := []string{"type", typ, "id", in.ID, "name", in.Name,
					"value", in.Value, "placeholder", in.placeholder(),
					"class", in.controlClass("")}
				attrs = in.ariaAttrs(attrs, len(errs) > 0)
				attrs = in.flagAttrs(attrs)
				b.Input(attrs...)
				in.renderFloatLabel(b)
			}),
		),
		in.renderFooter(b, errs),
	)
	return
}

func (in Input) renderCheckbox(b *element.Builder) (x any) {
	errs := in.Field.VisibleErrors()
	attrs := []string{"type", "checkbox", "id", in.ID, "name", in.Name, "value", "true",
		"class", ui.Classes("rounded", controlSizeClass(in.Size), accentColor(in.Color))}
	if in.Checked != nil && *in.Checked {
		attrs = append(attrs, "checked", "checked")
	}
	attrs = in.ariaAttrs(attrs, len(errs) > 0)
	attrs = in.flagAttrs(attrs)
	b.Div("class", ui.Classes("w-full", in.Class)).R(
		b.Div("class", "flex items-center gap-2").R(
			// The hidden pair makes unchecked boxes submit "false".
			b.Input("type", "hidden", "name", in.Name, "value", "false"),
			b.Input(attrs...),
			element.RenderComponents(b, FieldLabel{
				For: in.ID, Text: in.Label, Required: in.Required, Class: "mb-0",
			}),
		),
		in.renderFooter(b, errs),
	)
	return
}

func (in Input) renderSelect(b *element.Builder) (x any) {
	errs := in.Field.VisibleErrors()
	b.Div("class", ui.Classes("w-full", in.Class)).R(
		in.renderTopLabel(b),
		b.Div("class", in.shellClass(len(errs) > 0)).R(
			b.Wrap(func() {
				attrs := []string{"id", in.ID, "name", in.Name,
					"class", in.controlClass("appearance-none")}
				attrs = in.ariaAttrs(attrs, len(errs) > 0)
				attrs = in.flagAttrs(attrs)
				b.Select(attrs...).R(
					b.Wrap(func() {
						for _, o := range in.Options {
							in.renderOption(b, o)
						}
					}),
				)
				in.renderFloatLabel(b)
				RenderIcon(b, "chevron-down", "w-4 h-4 shrink-0 pointer-events-none")
			}),
		),
		in.renderFooter(b, errs),
	)
	return
}

func (in Input) renderOption(b *element.Builder, o SelectOption) {
	attrs := []string{"value", o.Value}
	if o.Value == in.Value && in.Value != "" {
		attrs = append(attrs, "selected", "selected")
	}
	if o.Disabled {
		attrs = append(attrs, "disabled", "disabled")
	}
	b.Option(attrs...).T(o.Label)
}

func (in Input) renderTextarea(b *element.Builder) (x any) {
	errs := in.Field.VisibleErrors()
	b.Div("class", ui.Classes("w-full", in.Class)).R(
		in.renderTopLabel(b),
		b.Div("class", ui.Classes(in.shellClass(len(errs) > 0), "items-start")).R(
			b.Wrap(func() {
				attrs := []string{"id", in.ID, "name", in.Name,
					"rows", strconv.Itoa(in.Rows), "placeholder", in.placeholder(),
					"class", in.controlClass("resize-y")}
				attrs = in.ariaAttrs(attrs, len(errs) > 0)
				attrs = in.flagAttrs(attrs)
				b.TextArea(attrs...).T(in.Value)
				in.renderFloatLabel(b)
			}),
		),
		in.renderFooter(b, errs),
	)
	return
}

func (in Input) renderTopLabel(b *element.Builder) (x any) {
	if in.Floating != ui.FloatingNone {
		return
	}
	return FieldLabel{For: in.ID, Text: in.Label, Required: in.Required}.Render(b)
}

func (in Input) renderFloatLabel(b *element.Builder) {
	if in.Floating == ui.FloatingNone || in.Label == "" {
		return
	}
	cls := "absolute start-3 top-1 text-xs pointer-events-none transition-all"
	if in.Floating == ui.FloatingOuter {
		cls = "absolute start-2 -top-2 px-1 text-xs bg-white dark:bg-[#18181b] pointer-events-none"
	}
	b.Label("for", in.ID, "class", cls).T(in.Label)
}

func (in Input) renderFooter(b *element.Builder, errs []form.FieldError) (x any) {
	if in.Description != "" {
		b.P("class", "mt-1 text-sm text-natural-500 dark:text-natural-400").T(in.Description)
	}
	return ErrorList{
		For: in.ID, Errors: errs, Translator: in.Translator, Icon: in.ErrorIcon,
	}.Render(b)
}
