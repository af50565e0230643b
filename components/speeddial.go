package components

import (
	"github.com/rohanthewiz/element"

	"plume/ui"
)

// SpeedDialItem is one action in the dial: an icon button, rendered as a
// link when Href is set.
type SpeedDialItem struct {
	ID    string
	Icon  string
	Label string
	Href  string
}

// SpeedDial is a corner-anchored action button that fans out its items
// when triggered.
type SpeedDial struct {
	ID      string
	Corner  ui.Corner
	Mode    string // ui.TriggerClick or ui.TriggerHover
	Icon    string
	Variant ui.Variant
	Color   ui.Color
	Size    ui.Size
	Rounded ui.Rounded
	Items   []SpeedDialItem
	Class   string
}

func (sd SpeedDial) normalize() SpeedDial {
	sd.ID = ui.EnsureID(sd.ID, "speed-dial")
	if sd.Corner == "" {
		sd.Corner = ui.CornerBottomEnd
	}
	if sd.Mode == "" {
		sd.Mode = ui.TriggerClick
	}
	if sd.Icon == "" {
		sd.Icon = "plus"
	}
	if sd.Variant == "" {
		sd.Variant = ui.VariantDefault
	}
	if sd.Color == "" {
		sd.Color = ui.ColorPrimary
	}
	if sd.Rounded == "" {
		sd.Rounded = ui.RoundedFull
	}
	items := make([]SpeedDialItem, len(sd.Items))
	copy(items, sd.Items)
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = ui.EnsureID("", sd.ID+"-action")
		}
	}
	sd.Items = items
	return sd
}

func cornerClass(c ui.Corner) string {
	switch c {
	case ui.CornerTopStart:
		return "top-6 start-6"
	case ui.CornerTopEnd:
		return "top-6 end-6"
	case ui.CornerBottomStart:
		return "bottom-6 start-6"
	default:
		return "bottom-6 end-6"
	}
}

func (sd SpeedDial) dialSize() string {
	switch sd.Size {
	case ui.SizeExtraSmall:
		return "w-9 h-9"
	case ui.SizeSmall:
		return "w-11 h-11"
	case ui.SizeLarge:
		return "w-16 h-16"
	case ui.SizeExtraLarge:
		return "w-[4.5rem] h-[4.5rem]"
	default:
		return "w-14 h-14"
	}
}

func (sd SpeedDial) Render(b *element.Builder) (x any) {
	sd = sd.normalize()
	menuID := sd.ID + "-menu"
	surface := ui.Classes(
		"inline-flex items-center justify-center",
		ui.JoinTokens(ui.Resolve(sd.Variant, sd.Color)),
		ui.RoundedClass(sd.Rounded),
	)
	b.Div("id", sd.ID,
		"class", ui.Classes("fixed z-30 flex flex-col items-center gap-3", cornerClass(sd.Corner), sd.Class),
		ui.DataTrigger, sd.Mode,
		ui.DataPosition, string(sd.Corner)).R(
		b.Div("id", menuID, "class", "flex flex-col items-center gap-2", "hidden").R(
			element.ForEach(sd.Items, func(it SpeedDialItem) {
				sd.renderAction(b, it, surface)
			}),
		),
		b.Button("type", "button",
			"class", ui.Classes(surface, sd.dialSize(), "shadow-lg"),
			"aria-controls", menuID,
			"aria-expanded", "false",
			"aria-label", "Open actions").R(
			RenderIcon(b, sd.Icon, "w-6 h-6 transition-transform"),
		),
	)
	return
}

func (sd SpeedDial) renderAction(b *element.Builder, it SpeedDialItem, surface string) (x any) {
	cls := ui.Classes(surface, "w-11 h-11 shadow-md")
	inner := func() {
		b.Wrap(func() {
			RenderIcon(b, it.Icon, "w-5 h-5")
			b.Span("class", "sr-only").T(it.Label)
		})
	}
	if it.Href != "" {
		b.A("href", it.Href, "id", it.ID, "class", cls, "title", it.Label).R(
			b.Wrap(inner),
		)
		return
	}
	b.Button("type", "button", "id", it.ID, "class", cls, "title", it.Label).R(
		b.Wrap(inner),
	)
	return
}
