package components

import (
	"strconv"

	"github.com/rohanthewiz/element"

	"plume/form"
	"plume/ui"
)

// RadioOption is one choice in a RadioGroup.
type RadioOption struct {
	Value    string
	Label    string
	Disabled bool
}

// RadioGroup renders a labeled set of radio inputs bound to one field.
// The checked option follows the group value; errors render through the
// shared helper once the field has been touched.
type RadioGroup struct {
	ID         string
	Name       string
	Legend     string
	Value      string
	Field      *form.Field
	Options    []RadioOption
	Color      ui.Color
	Size       ui.Size
	Space      ui.Space
	Reverse    bool // control after the label
	ErrorIcon  string
	Translator form.Translator
	Class      string
}

func (g RadioGroup) normalize() RadioGroup {
	g.ID = ui.EnsureID(g.ID, "radio")
	if g.Field != nil {
		if g.Name == "" {
			g.Name = g.Field.Name
		}
		if g.Value == "" {
			g.Value = g.Field.Value
		}
	}
	if g.Color == "" {
		g.Color = ui.ColorNatural
	}
	if g.Space == "" {
		g.Space = ui.SpaceSmall
	}
	if g.ErrorIcon == "" {
		g.ErrorIcon = "warning"
	}
	return g
}

func (g RadioGroup) Render(b *element.Builder) (x any) {
	g = g.normalize()
	legendID := g.ID + "-legend"
	attrs := []string{"id", g.ID, "role", "radiogroup",
		"class", ui.Classes(ui.SpaceClass(g.Space), ui.SizeClass(g.Size), g.Class)}
	if g.Legend != "" {
		attrs = append(attrs, "aria-labelledby", legendID)
	}
	b.Div(attrs...).R(
		b.Wrap(func() {
			if g.Legend != "" {
				b.P("id", legendID, "class", "font-medium mb-2").T(g.Legend)
			}
			for i, o := range g.Options {
				g.renderOption(b, i, o)
			}
		}),
		element.RenderComponents(b, ErrorList{
			For:        g.ID,
			Errors:     g.Field.VisibleErrors(),
			Translator: g.Translator,
			Icon:       g.ErrorIcon,
		}),
	)
	return
}

func (g RadioGroup) renderOption(b *element.Builder, idx int, o RadioOption) (x any) {
	optID := g.ID + "-opt-" + strconv.Itoa(idx+1)
	attrs := []string{"type", "radio", "id", optID, "name", g.Name, "value", o.Value,
		"class", ui.Classes(controlSizeClass(g.Size), accentColor(g.Color))}
	if o.Value == g.Value && g.Value != "" {
		attrs = append(attrs, "checked", "checked")
	}
	if o.Disabled {
		attrs = append(attrs, "disabled", "disabled")
	}
	rowCls := "flex items-center gap-2"
	if g.Reverse {
		rowCls += " flex-row-reverse justify-end"
	}
	b.Div("class", rowCls).R(
		b.Input(attrs...),
		b.Label("for", optID, "class", ui.ClassIf(o.Disabled, "opacity-60")).T(o.Label),
	)
	return
}
