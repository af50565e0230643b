package components

import (
	"github.com/rohanthewiz/element"

	"plume/ui"
)

// Button is a clickable action, rendered as an anchor when Href is set.
// Attrs is an escape hatch for extra attribute pairs, e.g. hx-* wiring.
type Button struct {
	ID        string
	Type      string // button or submit
	Variant   ui.Variant
	Color     ui.Color
	Size      ui.Size
	Rounded   ui.Rounded
	FullWidth bool
	Disabled  bool
	Icon      string
	Href      string
	Text      string
	Content   element.Component
	Attrs     []string
	Class     string
}

func (bt Button) normalize() Button {
	if bt.Type == "" {
		bt.Type = "button"
	}
	if bt.Variant == "" {
		bt.Variant = ui.VariantDefault
	}
	if bt.Color == "" {
		bt.Color = ui.ColorPrimary
	}
	if bt.Rounded == "" {
		bt.Rounded = ui.RoundedMedium
	}
	return bt
}

func (bt Button) sizeClass() string {
	switch bt.Size {
	case ui.SizeExtraSmall:
		return "px-2.5 py-1 text-xs"
	case ui.SizeSmall:
		return "px-3 py-1.5 text-sm"
	case ui.SizeLarge:
		return "px-5 py-2.5 text-lg"
	case ui.SizeExtraLarge:
		return "px-6 py-3 text-xl"
	default:
		return "px-4 py-2 text-base"
	}
}

func (bt Button) Render(b *element.Builder) (x any) {
	bt = bt.normalize()
	cls := ui.Classes(
		"inline-flex items-center justify-center gap-2 font-medium transition-colors",
		ui.JoinTokens(ui.Resolve(bt.Variant, bt.Color)),
		bt.sizeClass(), ui.RoundedClass(bt.Rounded),
		ui.ClassIf(bt.Variant == ui.VariantOutline || bt.Variant == ui.VariantBordered, "border"),
		ui.ClassIf(bt.FullWidth, "w-full"),
		ui.ClassIf(bt.Disabled, "opacity-60 pointer-events-none"),
		bt.Class,
	)
	attrs := []string{"class", cls}
	if bt.ID != "" {
		attrs = append(attrs, "id", bt.ID)
	}
	attrs = append(attrs, bt.Attrs...)
	if bt.Href != "" {
		attrs = append(attrs, "href", bt.Href, "role", "button")
		b.A(attrs...).R(bt.renderInner(b))
		return
	}
	attrs = append(attrs, "type", bt.Type)
	if bt.Disabled {
		attrs = append(attrs, "disabled", "disabled")
	}
	b.Button(attrs...).R(bt.renderInner(b))
	return
}

func (bt Button) renderInner(b *element.Builder) (x any) {
	RenderIcon(b, bt.Icon, iconSizeClass(bt.Size))
	if bt.Content != nil {
		element.RenderComponents(b, bt.Content)
	} else if bt.Text != "" {
		b.Span().T(bt.Text)
	}
	return
}
