package pages

import (
	"fmt"

	"plume/components"
	"plume/models"
	"plume/ui"

	"github.com/rohanthewiz/element"
)

// Component renders one catalog entry's demo page
type Component struct {
	Site    Site
	Name    string
	Summary models.RatingSummary
}

// Render generates the complete HTML for a component demo page
func (p Component) Render() string {
	b := element.NewBuilder()

	p.Site.Document(b, "/", componentTitle(p.Name), func() {
		b.DivClass("flex items-center justify-between mb-8").R(
			b.H1("class", "text-2xl font-semibold").T(componentTitle(p.Name)),
			b.DivClass("flex gap-2").R(
				element.RenderComponents(b,
					components.Button{
						Href:    "/compare?component=" + p.Name,
						Text:    "Compare",
						Variant: ui.VariantOutline,
						Color:   ui.ColorNatural,
						Size:    ui.SizeSmall,
					},
					components.Button{
						Href:    "/playground?component=" + p.Name,
						Text:    "Playground",
						Variant: ui.VariantOutline,
						Color:   ui.ColorPrimary,
						Size:    ui.SizeSmall,
					},
				),
			),
		)

		renderDemos(b, p.Name)

		b.DivClass("mt-12 border-t border-natural-200 dark:border-natural-700 pt-6").R(
			b.H2("class", "text-lg font-medium mb-4").T("Rate this component"),
			b.Wrap(func() {
				renderRatingWidget(b, p.Name, p.Summary, "")
			}),
		)
	})

	return b.String()
}

// RatingWidget renders the rating fragment standalone. Rate POSTs
// return it as the HTMX swap body.
func RatingWidget(name string, summary models.RatingSummary, errMsg string) string {
	b := element.NewBuilder()
	renderRatingWidget(b, name, summary, errMsg)
	return b.String()
}

func renderRatingWidget(b *element.Builder, name string, sum models.RatingSummary, errMsg string) {
	widgetID := "rate-" + name

	b.Div("id", widgetID, "class", "max-w-md").R(
		b.Form("hx-post", "/components/"+name+"/rate", "hx-target", "#"+widgetID, "hx-swap", "outerHTML",
			"class", "flex items-center gap-4").R(
			element.RenderComponents(b, components.Rating{
				ID:          widgetID + "-stars",
				Interactive: true,
				Name:        "score",
				Select:      sum.Average,
				Size:        ui.SizeLarge,
			}),
			element.RenderComponents(b, components.Button{
				Type: "submit",
				Text: "Rate",
				Size: ui.SizeSmall,
			}),
		),
		b.P("class", "mt-2 text-sm text-natural-500 dark:text-natural-400").T(
			fmt.Sprintf("%.1f from %d ratings", sum.Average, sum.Count)),
		b.Wrap(func() {
			if errMsg != "" {
				b.P("class", "mt-1 text-sm text-danger-600 dark:text-danger-400").T(errMsg)
			}
		}),
	)
}

// NotFound is the 404 page for unknown component names
type NotFound struct {
	Site Site
	Path string
}

// Render generates the 404 page
func (p NotFound) Render() string {
	b := element.NewBuilder()

	p.Site.Document(b, "", "Not Found", func() {
		b.H1("class", "text-2xl font-semibold mb-2").T("Page not found")
		b.P("class", "text-natural-600 dark:text-natural-300").T("Nothing lives at " + p.Path + ".")
		b.DivClass("mt-6").R(
			element.RenderComponents(b, components.Button{Href: "/", Text: "Back to the catalog"}),
		)
	})

	return b.String()
}
