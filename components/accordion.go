package components

import (
	"fmt"
	"strconv"

	"github.com/rohanthewiz/element"

	"plume/ui"
)

// AccordionItem is one titled panel. Content renders inside the panel
// body; Open marks the panel expanded on first paint.
type AccordionItem struct {
	ID      string
	Title   string
	Icon    string
	Open    bool
	Content element.Component
}

// Accordion renders titled panels the behavior script expands and
// collapses. Server-side it only decides the initial state; everything
// the script needs travels in the data attributes.
type Accordion struct {
	ID          string
	Variant     ui.Variant
	Color       ui.Color
	Size        ui.Size
	Rounded     ui.Rounded
	Border      ui.Border
	Padding     ui.Padding
	Space       ui.Space
	Multiple    bool     // several panels may stay open at once
	Collapsible bool     // the last open panel may be closed
	InitialOpen []string // item ids expanded on first paint
	Duration    int      // expand animation, milliseconds
	Items       []AccordionItem
	Class       string
}

func (a Accordion) normalize() Accordion {
	a.ID = ui.EnsureID(a.ID, "accordion")
	if a.Variant == "" {
		a.Variant = ui.VariantBase
	}
	if a.Color == "" {
		a.Color = ui.ColorNatural
	}
	if a.Rounded == "" {
		a.Rounded = ui.RoundedMedium
	}
	if a.Border == "" {
		a.Border = ui.BorderExtraSmall
	}
	if a.Duration == 0 {
		a.Duration = 300
	}
	items := make([]AccordionItem, len(a.Items))
	copy(items, a.Items)
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = fmt.Sprintf("%s-item-%d", a.ID, i+1)
		}
	}
	a.Items = items
	return a
}

// initialOpen serializes the ids expanded on first paint: the explicit
// list wins, otherwise the items flagged Open.
func (a Accordion) initialOpen() string {
	if len(a.InitialOpen) > 0 {
		return ui.JoinIDs(a.InitialOpen)
	}
	var ids []string
	for _, it := range a.Items {
		if it.Open {
			ids = append(ids, it.ID)
		}
	}
	return ui.JoinIDs(ids)
}

func (a Accordion) Render(b *element.Builder) (x any) {
	a = a.normalize()
	cls := ui.Classes(
		ui.JoinTokens(ui.Resolve(a.Variant, a.Color)),
		ui.SizeClass(a.Size), ui.RoundedClass(a.Rounded), ui.BorderClass(a.Border),
		ui.SpaceClass(a.Space), "overflow-hidden", a.Class,
	)
	b.Div("id", a.ID, "class", cls,
		ui.DataMultiple, ui.BoolAttr(a.Multiple),
		ui.DataCollapsible, ui.BoolAttr(a.Collapsible),
		ui.DataInitialOpen, a.initialOpen(),
		ui.DataDuration, strconv.Itoa(a.Duration)).R(
		element.ForEach(a.Items, func(it AccordionItem) {
			a.renderItem(b, it)
		}),
	)
	return
}

func (a Accordion) renderItem(b *element.Builder, it AccordionItem) (x any) {
	panelID := it.ID + "-panel"
	b.Div("class", "group").R(
		b.H3().R(
			b.Button("type", "button", "id", it.ID,
				"class", "flex w-full items-center justify-between gap-2 px-4 py-3 text-start font-medium",
				"aria-expanded", ui.BoolAttr(it.Open),
				"aria-controls", panelID).R(
				b.Span("class", "flex items-center gap-2").R(
					RenderIcon(b, it.Icon, iconSizeClass(a.Size)+" shrink-0"),
					b.T(it.Title),
				),
				RenderIcon(b, "chevron-down", "w-4 h-4 shrink-0 transition-transform"),
			),
		),
		a.renderPanel(b, it, panelID),
	)
	return
}

func (a Accordion) renderPanel(b *element.Builder, it AccordionItem, panelID string) (x any) {
	attrs := []string{
		"id", panelID, "role", "region", "aria-labelledby", it.ID,
		"class", ui.Classes("px-4 pb-4", ui.PaddingClass(a.Padding)),
	}
	if !it.Open {
		attrs = append(attrs, "hidden")
	}
	b.Div(attrs...).R(
		b.Wrap(func() {
			if it.Content != nil {
				element.RenderComponents(b, it.Content)
			}
		}),
	)
	return
}
