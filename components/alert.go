package components

import (
	"github.com/rohanthewiz/element"

	"plume/ui"
)

// Alert is a prominent status message. Dismissible alerts carry a
// data-dismiss-target the behavior script removes on click.
type Alert struct {
	ID          string
	Variant     ui.Variant
	Color       ui.Color
	Size        ui.Size
	Rounded     ui.Rounded
	Border      ui.Border
	Padding     ui.Padding
	Icon        string
	Title       string
	Text        string
	Content     element.Component // wins over Text when both are set
	Dismissible bool
	Class       string
}

func (a Alert) normalize() Alert {
	a.ID = ui.EnsureID(a.ID, "alert")
	if a.Variant == "" {
		a.Variant = ui.VariantBordered
	}
	if a.Color == "" {
		a.Color = ui.ColorNatural
	}
	if a.Rounded == "" {
		a.Rounded = ui.RoundedMedium
	}
	if a.Padding == "" {
		a.Padding = ui.PaddingLarge
	}
	return a
}

func (a Alert) Render(b *element.Builder) (x any) {
	a = a.normalize()
	cls := ui.Classes(
		"flex items-start gap-3",
		ui.JoinTokens(ui.Resolve(a.Variant, a.Color)),
		ui.SizeClass(a.Size), ui.RoundedClass(a.Rounded), ui.BorderClass(a.Border),
		ui.PaddingClass(a.Padding), a.Class,
	)
	b.Div("id", a.ID, "role", "alert", "class", cls).R(
		RenderIcon(b, a.Icon, iconSizeClass(a.Size)+" shrink-0 mt-0.5"),
		b.Div("class", "flex-1 min-w-0").R(
			b.Wrap(func() {
				if a.Title != "" {
					b.P("class", "font-semibold").T(a.Title)
				}
				if a.Content != nil {
					element.RenderComponents(b, a.Content)
				} else if a.Text != "" {
					b.P().T(a.Text)
				}
			}),
		),
		a.renderDismiss(b),
	)
	return
}

func (a Alert) renderDismiss(b *element.Builder) (x any) {
	if !a.Dismissible {
		return
	}
	b.Button("type", "button",
		"class", "ms-auto shrink-0 opacity-60 hover:opacity-100",
		ui.DataDismissTarget, "#"+a.ID,
		"aria-label", "Dismiss").R(
		RenderIcon(b, "close", "w-4 h-4"),
	)
	return
}
