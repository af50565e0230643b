package pages

import (
	"github.com/rohanthewiz/element"
	"github.com/sergi/go-diff/diffmatchpatch"

	"plume/components"
	"plume/ui"
)

// Compare renders two treatments of one component side by side,
// followed by a diff of the markup each treatment produces.
type Compare struct {
	Site
	Component    string
	LeftVariant  string
	LeftColor    string
	RightVariant string
	RightColor   string
}

// Components whose styled surface is visible without interaction.
var compareChoices = []string{"button", "badge", "alert", "accordion", "list"}

func (p Compare) Render() string {
	b := element.NewBuilder()

	name := p.Component
	if !canCompare(name) {
		name = "button"
	}
	lv := pickVariant(p.LeftVariant, ui.VariantBase)
	lc := pickColor(p.LeftColor, ui.ColorPrimary)
	rv := pickVariant(p.RightVariant, ui.VariantOutline)
	rc := pickColor(p.RightColor, ui.ColorSecondary)

	p.Document(b, "/compare", "Compare", func() {
		b.H1("class", "text-2xl font-semibold mb-2").T("Compare")
		b.P("class", "text-natural-500 dark:text-natural-400 mb-8").T(
			"Pick a component and two variant and color pairs to see how the resolver treats each one.")

		b.Form("method", "get", "action", "/compare",
			"class", "grid gap-4 sm:grid-cols-2 lg:grid-cols-6 items-end mb-10").R(
			element.RenderComponents(b,
				components.Input{ID: "cmp-component", Type: "select", Name: "component", Label: "Component",
					Value: name, Options: choiceOptions(compareChoices)},
				components.Input{ID: "cmp-lv", Type: "select", Name: "lv", Label: "Left variant",
					Value: string(lv), Options: variantOptions()},
				components.Input{ID: "cmp-lc", Type: "select", Name: "lc", Label: "Left color",
					Value: string(lc), Options: colorOptions()},
				components.Input{ID: "cmp-rv", Type: "select", Name: "rv", Label: "Right variant",
					Value: string(rv), Options: variantOptions()},
				components.Input{ID: "cmp-rc", Type: "select", Name: "rc", Label: "Right color",
					Value: string(rc), Options: colorOptions()},
				components.Button{Type: "submit", Text: "Compare"},
			),
		)

		b.DivClass("grid gap-6 sm:grid-cols-2").R(
			renderPane(b, "Left", name, lv, lc),
			renderPane(b, "Right", name, rv, rc),
		)

		renderMarkupDiff(b, name, lv, lc, rv, rc)
	})

	return b.String()
}

func canCompare(name string) bool {
	for _, c := range compareChoices {
		if c == name {
			return true
		}
	}
	return false
}

func pickVariant(s string, fallback ui.Variant) ui.Variant {
	if s == "" {
		return fallback
	}
	v := ui.Variant(s)
	for _, known := range ui.AllVariants {
		if v == known {
			return v
		}
	}
	return fallback
}

func pickColor(s string, fallback ui.Color) ui.Color {
	if s == "" {
		return fallback
	}
	c := ui.Color(s)
	if ui.Known(c) {
		return c
	}
	return fallback
}

func renderPane(b *element.Builder, side, name string, v ui.Variant, c ui.Color) (x any) {
	b.DivClass("border border-natural-200 dark:border-natural-700 rounded-lg overflow-hidden").R(
		b.DivClass("flex items-center gap-2 px-4 py-2 border-b border-natural-200 dark:border-natural-700 bg-natural-50 dark:bg-natural-900").R(
			b.Span("class", "text-sm font-medium").T(side),
			element.RenderComponents(b, components.Badge{
				Color: ui.ColorSilver,
				Size:  ui.SizeExtraSmall,
				Text:  string(v) + " / " + string(c),
			}),
		),
		b.DivClass("p-6").R(
			b.Wrap(func() {
				renderSample(b, "pane-"+side, name, v, c)
			}),
		),
	)
	return
}

// renderMarkupDiff diffs the two renditions' HTML. Both sides use the
// same element id so only resolver output shows up in the diff.
func renderMarkupDiff(b *element.Builder, name string, lv ui.Variant, lc ui.Color, rv ui.Variant, rc ui.Color) {
	left := sampleMarkup(name, lv, lc)
	right := sampleMarkup(name, rv, rc)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(left, right, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	b.DivClass("mt-12").R(
		b.H2("class", "text-lg font-medium mb-2").T("Markup diff"),
		b.P("class", "text-sm text-natural-500 dark:text-natural-400 mb-4").T(
			"Red text exists only on the left, green text only on the right. Matching markup is unstyled."),
		b.Div("class", "rounded-lg border border-natural-200 bg-white text-natural-900 p-4 text-xs font-mono whitespace-pre-wrap break-all").R(
			b.T(dmp.DiffPrettyHtml(diffs)),
		),
	)
}

func sampleMarkup(name string, v ui.Variant, c ui.Color) string {
	sb := element.NewBuilder()
	renderSample(sb, "sample", name, v, c)
	return sb.String()
}

func renderSample(b *element.Builder, idPrefix, name string, v ui.Variant, c ui.Color) {
	switch name {
	case "badge":
		element.RenderComponents(b, components.Badge{
			ID: idPrefix + "-badge", Variant: v, Color: c, Icon: "check", Text: "badge",
		})
	case "alert":
		element.RenderComponents(b, components.Alert{
			ID: idPrefix + "-alert", Variant: v, Color: c, Icon: "info",
			Title: "Alert", Text: "The same alert under two treatments.",
		})
	case "accordion":
		element.RenderComponents(b, components.Accordion{
			ID: idPrefix + "-acc", Variant: v, Color: c,
			Items: []components.AccordionItem{
				{Title: "First panel", Open: true, Content: prose{s: "Open by default."}},
				{Title: "Second panel", Content: prose{s: "Closed until clicked."}},
			},
		})
	case "list":
		element.RenderComponents(b, components.List{
			ID: idPrefix + "-list", Variant: v, Color: c,
			Items: []components.ListItem{
				{Icon: "check", Text: "First row"},
				{Icon: "check", Text: "Second row"},
				{Icon: "check", Text: "Third row"},
			},
		})
	default:
		element.RenderComponents(b, components.Button{
			ID: idPrefix + "-btn", Variant: v, Color: c, Text: "Button",
		})
	}
}

func choiceOptions(names []string) []components.SelectOption {
	opts := make([]components.SelectOption, 0, len(names))
	for _, n := range names {
		opts = append(opts, components.SelectOption{Value: n, Label: componentTitle(n)})
	}
	return opts
}

func variantOptions() []components.SelectOption {
	opts := make([]components.SelectOption, 0, len(ui.AllVariants))
	for _, v := range ui.AllVariants {
		opts = append(opts, components.SelectOption{Value: string(v), Label: string(v)})
	}
	return opts
}

func colorOptions() []components.SelectOption {
	opts := make([]components.SelectOption, 0, len(ui.AllColors))
	for _, c := range ui.AllColors {
		opts = append(opts, components.SelectOption{Value: string(c), Label: string(c)})
	}
	return opts
}
