package components

import (
	"github.com/rohanthewiz/element"

	"plume/ui"
)

// Dropdown pairs a trigger with a hidden panel the behavior script
// toggles. The panel is free-form; a List with link items is the common
// filling.
type Dropdown struct {
	ID       string
	Position ui.Position
	Mode     string // ui.TriggerClick or ui.TriggerHover
	Variant  ui.Variant
	Color    ui.Color
	Size     ui.Size
	Rounded  ui.Rounded
	Padding  ui.Padding
	Trigger  element.Component
	Content  element.Component
	Class    string
}

func (d Dropdown) normalize() Dropdown {
	d.ID = ui.EnsureID(d.ID, "dropdown")
	if d.Position == "" {
		d.Position = ui.PositionBottom
	}
	if d.Mode == "" {
		d.Mode = ui.TriggerClick
	}
	if d.Variant == "" {
		d.Variant = ui.VariantBase
	}
	if d.Color == "" {
		d.Color = ui.ColorNatural
	}
	if d.Rounded == "" {
		d.Rounded = ui.RoundedMedium
	}
	if d.Padding == "" {
		d.Padding = ui.PaddingSmall
	}
	return d
}

func (d Dropdown) Render(b *element.Builder) (x any) {
	d = d.normalize()
	menuID := d.ID + "-menu"
	panelCls := ui.Classes(
		"absolute z-20 min-w-[12rem] border shadow-lg",
		ui.JoinTokens(ui.Resolve(d.Variant, d.Color)),
		ui.SizeClass(d.Size), ui.RoundedClass(d.Rounded), ui.PaddingClass(d.Padding),
	)
	b.Div("id", d.ID, "class", ui.Classes("relative inline-block", d.Class),
		ui.DataTrigger, d.Mode,
		ui.DataPosition, string(d.Position)).R(
		b.Span("class", "inline-flex",
			"aria-haspopup", "true",
			"aria-expanded", "false",
			"aria-controls", menuID).R(
			b.Wrap(func() {
				if d.Trigger != nil {
					element.RenderComponents(b, d.Trigger)
				}
			}),
		),
		d.renderPanel(b, menuID, panelCls),
	)
	return
}

func (d Dropdown) renderPanel(b *element.Builder, menuID, cls string) (x any) {
	b.Div("id", menuID, "class", cls, "hidden").R(
		b.Wrap(func() {
			if d.Content != nil {
				element.RenderComponents(b, d.Content)
			}
		}),
	)
	return
}
