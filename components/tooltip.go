package components

import (
	"strconv"

	"github.com/rohanthewiz/element"

	"plume/ui"
)

// Tooltip wraps a trigger with a hidden bubble the behavior script shows
// on hover or focus. Delays are in milliseconds; a clickable tooltip
// stays open while the pointer is over the bubble.
type Tooltip struct {
	ID        string
	Position  ui.Position
	ShowDelay int
	HideDelay int
	Clickable bool
	Variant   ui.Variant
	Color     ui.Color
	Size      ui.Size
	Rounded   ui.Rounded
	Padding   ui.Padding
	Trigger   element.Component
	Text      string
	Content   element.Component // wins over Text when both are set
	Class     string
}

func (tt Tooltip) normalize() Tooltip {
	tt.ID = ui.EnsureID(tt.ID, "tooltip")
	if tt.Position == "" {
		tt.Position = ui.PositionTop
	}
	if tt.Variant == "" {
		tt.Variant = ui.VariantDefault
	}
	if tt.Color == "" {
		tt.Color = ui.ColorDark
	}
	if tt.Rounded == "" {
		tt.Rounded = ui.RoundedSmall
	}
	if tt.Padding == "" {
		tt.Padding = ui.PaddingSmall
	}
	if tt.Size == "" {
		tt.Size = ui.SizeSmall
	}
	return tt
}

func (tt Tooltip) Render(b *element.Builder) (x any) {
	tt = tt.normalize()
	bubbleCls := ui.Classes(
		"absolute z-10 w-max max-w-xs",
		ui.JoinTokens(ui.Resolve(tt.Variant, tt.Color)),
		ui.SizeClass(tt.Size), ui.RoundedClass(tt.Rounded), ui.PaddingClass(tt.Padding),
	)
	b.Span("class", ui.Classes("relative inline-block", tt.Class),
		ui.DataPosition, string(tt.Position),
		ui.DataShowDelay, strconv.Itoa(tt.ShowDelay),
		ui.DataHideDelay, strconv.Itoa(tt.HideDelay),
		ui.DataClickable, ui.BoolAttr(tt.Clickable)).R(
		b.Span("aria-describedby", tt.ID).R(
			b.Wrap(func() {
				if tt.Trigger != nil {
					element.RenderComponents(b, tt.Trigger)
				}
			}),
		),
		tt.renderBubble(b, bubbleCls),
	)
	return
}

func (tt Tooltip) renderBubble(b *element.Builder, cls string) (x any) {
	b.Div("id", tt.ID, "role", "tooltip", "class", cls, "hidden").R(
		b.Wrap(func() {
			if tt.Content != nil {
				element.RenderComponents(b, tt.Content)
			} else {
				b.T(tt.Text)
			}
		}),
		b.SpanClass("tooltip-arrow").R(),
	)
	return
}
