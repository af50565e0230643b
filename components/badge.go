package components

import (
	"github.com/rohanthewiz/element"

	"plume/ui"
)

// Badge is a compact status chip.
type Badge struct {
	ID          string
	Variant     ui.Variant
	Color       ui.Color
	Size        ui.Size
	Rounded     ui.Rounded
	Icon        string
	Text        string
	Dismissible bool
	Class       string
}

func (bd Badge) normalize() Badge {
	bd.ID = ui.EnsureID(bd.ID, "badge")
	if bd.Variant == "" {
		bd.Variant = ui.VariantBordered
	}
	if bd.Color == "" {
		bd.Color = ui.ColorNatural
	}
	if bd.Rounded == "" {
		bd.Rounded = ui.RoundedFull
	}
	return bd
}

func (bd Badge) sizeClass() string {
	switch bd.Size {
	case ui.SizeExtraSmall:
		return "px-1.5 py-0.5 text-[10px]"
	case ui.SizeSmall:
		return "px-2 py-0.5 text-xs"
	case ui.SizeLarge:
		return "px-3 py-1 text-base"
	case ui.SizeExtraLarge:
		return "px-3.5 py-1.5 text-lg"
	default:
		return "px-2.5 py-1 text-sm"
	}
}

func (bd Badge) Render(b *element.Builder) (x any) {
	bd = bd.normalize()
	cls := ui.Classes(
		"inline-flex items-center gap-1 font-medium border",
		ui.JoinTokens(ui.Resolve(bd.Variant, bd.Color)),
		bd.sizeClass(), ui.RoundedClass(bd.Rounded), bd.Class,
	)
	b.Span("id", bd.ID, "class", cls).R(
		RenderIcon(b, bd.Icon, "w-3.5 h-3.5"),
		b.T(bd.Text),
		bd.renderDismiss(b),
	)
	return
}

func (bd Badge) renderDismiss(b *element.Builder) (x any) {
	if !bd.Dismissible {
		return
	}
	b.Button("type", "button", "class", "opacity-60 hover:opacity-100",
		ui.DataDismissTarget, "#"+bd.ID, "aria-label", "Remove").R(
		RenderIcon(b, "close", "w-3 h-3"),
	)
	return
}
