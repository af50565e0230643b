package pages

import (
	"strings"

	"github.com/rohanthewiz/element"

	"plume/components"
	"plume/models"
	"plume/ui"
)

// Playground lets a visitor dial in a component configuration, preview
// it live, and save the result as a named snapshot.
type Playground struct {
	Site
	Component    string
	Attrs        map[string]string
	Saved        bool
	SnapshotName string
	Snapshots    []models.Snapshot
}

func (p Playground) Render() string {
	b := element.NewBuilder()

	name := p.Component
	if !KnownComponent(name) {
		name = "button"
	}
	v := pickVariant(p.Attrs["variant"], ui.VariantBase)
	c := pickColor(p.Attrs["color"], ui.ColorPrimary)
	size := pickSize(p.Attrs["size"], ui.SizeMedium)

	p.Document(b, "/playground", "Playground", func() {
		b.H1("class", "text-2xl font-semibold mb-2").T("Playground")
		b.P("class", "text-natural-500 dark:text-natural-400 mb-8").T(
			"Configure a component, preview the rendered result, and keep configurations you like as snapshots.")

		if p.Saved {
			b.DivClass("mb-6 max-w-xl").R(
				element.RenderComponents(b, components.Alert{
					ID:          "pg-saved",
					Color:       ui.ColorSuccess,
					Icon:        "check-circle",
					Title:       "Snapshot saved",
					Text:        "It now shows up in the list below and through the API.",
					Dismissible: true,
				}),
			)
		}

		b.Form("method", "get", "action", "/playground",
			"class", "grid gap-4 sm:grid-cols-2 lg:grid-cols-5 items-end mb-8").R(
			element.RenderComponents(b,
				components.Input{ID: "pg-component", Type: "select", Name: "component", Label: "Component",
					Value: name, Options: choiceOptions(catalogNames())},
				components.Input{ID: "pg-variant", Type: "select", Name: "variant", Label: "Variant",
					Value: string(v), Options: variantOptions()},
				components.Input{ID: "pg-color", Type: "select", Name: "color", Label: "Color",
					Value: string(c), Options: colorOptions()},
				components.Input{ID: "pg-size", Type: "select", Name: "size", Label: "Size",
					Value: string(size), Options: sizeOptions()},
				components.Button{Type: "submit", Text: "Apply"},
			),
		)

		b.DivClass("border border-natural-200 dark:border-natural-700 rounded-lg overflow-hidden mb-8").R(
			b.DivClass("flex items-center gap-2 px-4 py-2 border-b border-natural-200 dark:border-natural-700 bg-natural-50 dark:bg-natural-900").R(
				b.Span("class", "text-sm font-medium").T("Preview"),
				b.Wrap(func() {
					if p.SnapshotName != "" {
						element.RenderComponents(b, components.Badge{
							Color: ui.ColorPrimary,
							Size:  ui.SizeExtraSmall,
							Text:  "snapshot: " + p.SnapshotName,
						})
					}
				}),
			),
			b.DivClass("p-10 flex items-start justify-center min-h-40").R(
				b.Wrap(func() {
					renderPlaygroundSample(b, name, v, c, size)
				}),
			),
		)

		b.Form("method", "post", "action", "/playground/save",
			"class", "flex flex-wrap items-end gap-4 mb-12").R(
			element.RenderComponents(b, components.Input{
				ID: "pg-name", Name: "name", Label: "Snapshot name",
				Placeholder: "e.g. danger pill", Required: true,
			}),
			b.Input("type", "hidden", "name", "component", "value", name),
			b.Input("type", "hidden", "name", "variant", "value", string(v)),
			b.Input("type", "hidden", "name", "color", "value", string(c)),
			b.Input("type", "hidden", "name", "size", "value", string(size)),
			element.RenderComponents(b, components.Button{
				Type: "submit", Text: "Save snapshot", Color: ui.ColorSecondary,
			}),
		)

		renderSnapshotList(b, p.Snapshots)
	})

	return b.String()
}

func catalogNames() []string {
	names := make([]string, 0, len(CatalogComponents))
	for _, c := range CatalogComponents {
		names = append(names, c.Name)
	}
	return names
}

func pickSize(s string, fallback ui.Size) ui.Size {
	if s == "" {
		return fallback
	}
	size := ui.Size(s)
	for _, known := range ui.AllSizes {
		if size == known {
			return size
		}
	}
	return fallback
}

func sizeOptions() []components.SelectOption {
	opts := make([]components.SelectOption, 0, len(ui.AllSizes))
	for _, s := range ui.AllSizes {
		opts = append(opts, components.SelectOption{Value: string(s), Label: string(s)})
	}
	return opts
}

// renderPlaygroundSample builds one representative instance of the
// chosen component. Components without a variant axis ignore it.
func renderPlaygroundSample(b *element.Builder, name string, v ui.Variant, c ui.Color, size ui.Size) {
	switch name {
	case "input":
		element.RenderComponents(b, components.Input{
			ID: "pg-sample-input", Label: "Sample field", Placeholder: "Type here", Color: c, Size: size,
		})
	case "accordion":
		element.RenderComponents(b, components.Accordion{
			ID: "pg-sample-acc", Variant: v, Color: c, Size: size,
			Items: []components.AccordionItem{
				{Title: "First panel", Open: true, Content: prose{s: "Open by default."}},
				{Title: "Second panel", Content: prose{s: "Closed until clicked."}},
			},
		})
	case "alert":
		element.RenderComponents(b, components.Alert{
			ID: "pg-sample-alert", Variant: v, Color: c, Size: size, Icon: "info",
			Title: "Alert", Text: "Configured from the playground.",
		})
	case "tooltip":
		element.RenderComponents(b, components.Tooltip{
			ID: "pg-sample-tip", Variant: v, Color: c, Size: size,
			Text:    "Configured tooltip",
			Trigger: components.Button{Text: "Hover me", Variant: ui.VariantOutline, Color: ui.ColorNatural},
		})
	case "dropdown":
		element.RenderComponents(b, components.Dropdown{
			ID: "pg-sample-dd", Variant: v, Color: c, Size: size,
			Trigger: components.Button{Text: "Open menu", Icon: "chevron-down", Color: c},
			Content: menu{items: []string{"First", "Second", "Third"}},
		})
	case "speed-dial":
		element.RenderComponents(b, components.SpeedDial{
			ID: "pg-sample-dial", Variant: v, Color: c, Size: size, Corner: ui.CornerBottomEnd,
			Items: []components.SpeedDialItem{
				{Icon: "plus", Label: "Create", Href: "#"},
				{Icon: "star", Label: "Favorite", Href: "#"},
			},
		})
	case "rating":
		element.RenderComponents(b, components.Rating{
			ID: "pg-sample-rate", Select: 3.5, Color: c, Size: size,
		})
	case "list":
		element.RenderComponents(b, components.List{
			ID: "pg-sample-list", Variant: v, Color: c, Size: size,
			Items: []components.ListItem{
				{Icon: "check", Text: "First row"},
				{Icon: "check", Text: "Second row"},
			},
		})
	case "radio-group":
		element.RenderComponents(b, components.RadioGroup{
			ID: "pg-sample-radio", Name: "pg-choice", Legend: "Pick one", Color: c, Size: size,
			Options: []components.RadioOption{
				{Value: "a", Label: "Option A"},
				{Value: "b", Label: "Option B"},
			},
		})
	case "badge":
		element.RenderComponents(b, components.Badge{
			ID: "pg-sample-badge", Variant: v, Color: c, Size: size, Text: "badge",
		})
	default:
		element.RenderComponents(b, components.Button{
			ID: "pg-sample-btn", Variant: v, Color: c, Size: size, Text: "Button",
		})
	}
}

type snapshotRow struct{ snap models.Snapshot }

func (r snapshotRow) Render(b *element.Builder) (x any) {
	b.DivClass("flex flex-wrap items-center gap-3 w-full").R(
		b.A("href", "/playground?snapshot="+r.snap.GUID, "class", "font-medium hover:underline").T(r.snap.Name),
		element.RenderComponents(b, components.Badge{
			Color: ui.ColorSilver, Size: ui.SizeExtraSmall, Text: r.snap.Component,
		}),
		b.Span("class", "text-sm text-natural-500 dark:text-natural-400").T(attrSummary(r.snap.Attrs)),
		b.Span("class", "ml-auto text-xs text-natural-400 dark:text-natural-500").T(
			r.snap.UpdatedAt.Format("Jan 2, 2006 15:04")),
	)
	return
}

func renderSnapshotList(b *element.Builder, snaps []models.Snapshot) {
	if len(snaps) == 0 {
		return
	}
	items := make([]components.ListItem, 0, len(snaps))
	for _, s := range snaps {
		items = append(items, components.ListItem{Content: snapshotRow{snap: s}})
	}
	b.H2("class", "text-lg font-medium mb-4").T("Saved snapshots")
	element.RenderComponents(b, components.List{
		ID:      "pg-snapshots",
		Variant: ui.VariantOutlineSeparated,
		Color:   ui.ColorNatural,
		Items:   items,
	})
}

func attrSummary(attrs map[string]string) string {
	parts := make([]string, 0, 3)
	for _, k := range []string{"variant", "color", "size"} {
		if val := attrs[k]; val != "" {
			parts = append(parts, val)
		}
	}
	return strings.Join(parts, " / ")
}
