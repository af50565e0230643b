package pages

import (
	"fmt"

	"github.com/rohanthewiz/element"

	"plume/components"
	"plume/models"
	"plume/ui"
)

// AdminLogin is the sign-in page for the curator account.
type AdminLogin struct {
	Site
	Username string
	Failed   bool
}

func (p AdminLogin) Render() string {
	b := element.NewBuilder()

	p.Document(b, "", "Admin sign in", func() {
		b.DivClass("max-w-sm mx-auto mt-12").R(
			b.H1("class", "text-2xl font-semibold mb-2").T("Admin sign in"),
			b.P("class", "text-natural-500 dark:text-natural-400 mb-6").T(
				"Sign in to review ratings and manage snapshots."),
			b.Wrap(func() {
				if p.Failed {
					b.DivClass("mb-6").R(
						element.RenderComponents(b, components.Alert{
							ID:    "login-failed",
							Color: ui.ColorDanger,
							Icon:  "x-circle",
							Title: "Sign in failed",
							Text:  "Check the username and password.",
						}),
					)
				}
			}),
			b.Form("method", "post", "action", "/admin/login", "class", "flex flex-col gap-4").R(
				element.RenderComponents(b,
					components.Input{
						ID: "login-username", Name: "username", Label: "Username",
						Value: p.Username, Required: true,
					},
					components.Input{
						ID: "login-password", Type: "password", Name: "password", Label: "Password",
						Required: true,
					},
					components.Button{Type: "submit", Text: "Sign in", FullWidth: true},
				),
			),
		)
	})

	return b.String()
}

// AdminDashboard shows rating totals and stored snapshots to a
// signed-in curator.
type AdminDashboard struct {
	Site
	Username  string
	Summaries []models.RatingSummary
	Snapshots []models.Snapshot
}

func (p AdminDashboard) Render() string {
	b := element.NewBuilder()

	totalRatings := 0
	for _, s := range p.Summaries {
		totalRatings += s.Count
	}

	p.Document(b, "", "Admin", func() {
		b.H1("class", "text-2xl font-semibold mb-2").T("Admin")
		b.P("class", "text-natural-500 dark:text-natural-400 mb-8").F(
			"Signed in as %s.", p.Username)

		b.DivClass("grid gap-4 sm:grid-cols-3 mb-10").R(
			statCard(b, "Components rated", len(p.Summaries)),
			statCard(b, "Ratings received", totalRatings),
			statCard(b, "Snapshots", len(p.Snapshots)),
		)

		b.H2("class", "text-lg font-medium mb-4").T("Component ratings")
		b.Wrap(func() {
			if len(p.Summaries) == 0 {
				b.P("class", "text-natural-500 dark:text-natural-400 mb-10").T(
					"No ratings yet. They will appear here as visitors vote.")
				return
			}
			items := make([]components.ListItem, 0, len(p.Summaries))
			for _, s := range p.Summaries {
				items = append(items, components.ListItem{Content: summaryRow{sum: s}})
			}
			b.DivClass("mb-10").R(
				element.RenderComponents(b, components.List{
					ID:      "admin-ratings",
					Variant: ui.VariantOutlineSeparated,
					Color:   ui.ColorNatural,
					Items:   items,
				}),
			)
		})

		renderSnapshotList(b, p.Snapshots)
	})

	return b.String()
}

func statCard(b *element.Builder, label string, value int) (x any) {
	b.DivClass("border border-natural-200 dark:border-natural-700 rounded-lg p-5").R(
		b.DivClass("text-3xl font-semibold").T(fmt.Sprintf("%d", value)),
		b.DivClass("text-sm text-natural-500 dark:text-natural-400").T(label),
	)
	return
}

type summaryRow struct{ sum models.RatingSummary }

func (r summaryRow) Render(b *element.Builder) (x any) {
	b.DivClass("flex flex-wrap items-center gap-3 w-full").R(
		b.A("href", "/components/"+r.sum.Component, "class", "font-medium hover:underline").T(
			componentTitle(r.sum.Component)),
		element.RenderComponents(b, components.Rating{
			ID:     "admin-rate-" + r.sum.Component,
			Select: r.sum.Average,
			Size:   ui.SizeSmall,
		}),
		b.Span("class", "ml-auto text-sm text-natural-500 dark:text-natural-400").F(
			"%.1f avg from %d", r.sum.Average, r.sum.Count),
	)
	return
}
