package pages

import (
	"fmt"

	"plume/components"
	"plume/models"
	"plume/ui"

	"github.com/rohanthewiz/element"
)

// Catalog is the home page: one card per component, each showing its
// community rating.
type Catalog struct {
	Site      Site
	Summaries []models.RatingSummary
}

// Render generates the complete HTML for the catalog page
func (p Catalog) Render() string {
	b := element.NewBuilder()

	p.Site.Document(b, "/", "", func() {
		b.H1("class", "text-2xl font-semibold mb-2").T("Components")
		b.P("class", "text-natural-600 dark:text-natural-300 mb-8").T(
			"Server-rendered, themeable building blocks. Every example on these pages comes out of the variant resolver, not hand-written markup.")
		b.DivClass("grid gap-4 sm:grid-cols-2 lg:grid-cols-3").R(
			element.ForEach(CatalogComponents, func(c ComponentInfo) {
				p.renderCard(b, c)
			}),
		)
	})

	return b.String()
}

// summaryFor finds the aggregate for one component, zero when unrated
func (p Catalog) summaryFor(name string) models.RatingSummary {
	for _, s := range p.Summaries {
		if s.Component == name {
			return s
		}
	}
	return models.RatingSummary{Component: name}
}

func (p Catalog) renderCard(b *element.Builder, c ComponentInfo) {
	sum := p.summaryFor(c.Name)

	cardClass := ui.Classes(
		ui.JoinTokens(ui.Resolve(ui.VariantBase, ui.ColorNatural)),
		"block border rounded-lg p-5 hover:border-primary-400 dark:hover:border-primary-500 transition-colors",
	)

	b.A("href", "/components/"+c.Name, "class", cardClass).R(
		b.DivClass("flex items-center justify-between mb-2").R(
			b.H2("class", "font-medium").T(c.Title),
			element.RenderComponents(b, components.Badge{
				Text:  fmt.Sprintf("%d ratings", sum.Count),
				Color: ui.ColorSilver,
				Size:  ui.SizeExtraSmall,
			}),
		),
		b.P("class", "text-sm text-natural-500 dark:text-natural-400 mb-4").T(c.Blurb),
		element.RenderComponents(b, components.Rating{
			ID:     "card-rating-" + c.Name,
			Select: sum.Average,
			Size:   ui.SizeSmall,
		}),
	)
}
