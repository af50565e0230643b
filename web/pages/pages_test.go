package pages

import (
	"strings"
	"testing"
	"time"

	"plume/models"
)

func testSite() Site {
	return Site{Title: "Plume UI", Scheme: "light"}
}

// TestCatalogListsEveryComponent verifies each catalog entry gets a card and link
func TestCatalogListsEveryComponent(t *testing.T) {
	html := Catalog{Site: testSite()}.Render()

	for _, c := range CatalogComponents {
		if !strings.Contains(html, "/components/"+c.Name) {
			t.Errorf("Catalog should link to /components/%s", c.Name)
		}
		if !strings.Contains(html, c.Title) {
			t.Errorf("Catalog should show the %s title", c.Name)
		}
	}
}

// TestCatalogShowsRatingCounts verifies summaries surface on the cards
func TestCatalogShowsRatingCounts(t *testing.T) {
	page := Catalog{
		Site: testSite(),
		Summaries: []models.RatingSummary{
			{Component: "accordion", Average: 4.0, Count: 12},
		},
	}
	html := page.Render()

	if !strings.Contains(html, "12 ratings") {
		t.Error("Catalog should show the rating count for a rated component")
	}
}

// TestComponentPageRendersDemosAndRating verifies the detail page structure
func TestComponentPageRendersDemosAndRating(t *testing.T) {
	page := Component{
		Site:    testSite(),
		Name:    "button",
		Summary: models.RatingSummary{Component: "button", Average: 3.5, Count: 4},
	}
	html := page.Render()

	if !strings.Contains(html, "Variants") {
		t.Error("Button page should contain the Variants demo section")
	}
	if !strings.Contains(html, "Rate this component") {
		t.Error("Component page should contain the rating section")
	}
	if !strings.Contains(html, `hx-post="/components/button/rate"`) {
		t.Error("Rating form should post to the component rate endpoint")
	}
	if !strings.Contains(html, "3.5 from 4 ratings") {
		t.Error("Component page should show the current average")
	}
}

// TestRatingWidgetSwapTargets verifies the standalone widget targets itself
func TestRatingWidgetSwapTargets(t *testing.T) {
	html := RatingWidget("badge", models.RatingSummary{Component: "badge"}, "")

	if !strings.Contains(html, `id="rate-badge"`) {
		t.Error("Widget should carry its own element id")
	}
	if !strings.Contains(html, `hx-target="#rate-badge"`) {
		t.Error("Widget form should target the widget wrapper")
	}
	if !strings.Contains(html, `hx-swap="outerHTML"`) {
		t.Error("Widget form should swap itself out")
	}

	withErr := RatingWidget("badge", models.RatingSummary{Component: "badge"}, "Pick a star first")
	if !strings.Contains(withErr, "Pick a star first") {
		t.Error("Widget should show the error message when one is set")
	}
}

// TestNotFoundShowsPath verifies the 404 page names the missing path
func TestNotFoundShowsPath(t *testing.T) {
	html := NotFound{Site: testSite(), Path: "/nowhere"}.Render()

	if !strings.Contains(html, "Page not found") {
		t.Error("NotFound should contain the heading")
	}
	if !strings.Contains(html, "/nowhere") {
		t.Error("NotFound should echo the requested path")
	}
}

// TestCompareDefaults verifies the page falls back to a sane pairing
func TestCompareDefaults(t *testing.T) {
	html := Compare{Site: testSite()}.Render()

	if !strings.Contains(html, "base / primary") {
		t.Error("Compare should default the left side to base / primary")
	}
	if !strings.Contains(html, "outline / secondary") {
		t.Error("Compare should default the right side to outline / secondary")
	}
	if !strings.Contains(html, "Markup diff") {
		t.Error("Compare should include the markup diff section")
	}
}

// TestCompareRespectsParams verifies chosen pairings flow into the panes
func TestCompareRespectsParams(t *testing.T) {
	page := Compare{
		Site:        testSite(),
		Component:   "badge",
		LeftVariant: "gradient",
		LeftColor:   "danger",
	}
	html := page.Render()

	if !strings.Contains(html, "gradient / danger") {
		t.Error("Compare should label the left pane with the chosen pairing")
	}
	if !strings.Contains(html, "pane-Left-badge") {
		t.Error("Compare should render the chosen component in the left pane")
	}
}

// TestCompareFallsBackOnGarbage verifies unknown params never leak through
func TestCompareFallsBackOnGarbage(t *testing.T) {
	page := Compare{
		Site:        testSite(),
		Component:   "carousel",
		LeftVariant: "sparkly",
		LeftColor:   "mauve",
	}
	html := page.Render()

	if !strings.Contains(html, "base / primary") {
		t.Error("Compare should fall back to defaults for unknown params")
	}
	if !strings.Contains(html, "pane-Left-btn") {
		t.Error("Compare should fall back to the button sample")
	}
	if strings.Contains(html, "sparkly") || strings.Contains(html, "mauve") {
		t.Error("Unknown variant and color names should not reach the markup")
	}
}

// TestPlaygroundDefaults verifies the empty playground renders a button preview
func TestPlaygroundDefaults(t *testing.T) {
	html := Playground{Site: testSite()}.Render()

	if !strings.Contains(html, "Preview") {
		t.Error("Playground should contain the preview panel")
	}
	if !strings.Contains(html, "pg-sample-btn") {
		t.Error("Playground should preview a button by default")
	}
	if !strings.Contains(html, "Save snapshot") {
		t.Error("Playground should offer the save form")
	}
}

// TestPlaygroundRendersChosenComponent verifies attrs reach the preview
func TestPlaygroundRendersChosenComponent(t *testing.T) {
	page := Playground{
		Site:      testSite(),
		Component: "badge",
		Attrs:     map[string]string{"variant": "gradient", "color": "danger"},
	}
	html := page.Render()

	if !strings.Contains(html, "pg-sample-badge") {
		t.Error("Playground should preview the chosen component")
	}
	if !strings.Contains(html, `value="gradient"`) {
		t.Error("Save form should carry the chosen variant")
	}
}

// TestPlaygroundShowsSavedNotice verifies the post-save confirmation
func TestPlaygroundShowsSavedNotice(t *testing.T) {
	html := Playground{Site: testSite(), Saved: true}.Render()

	if !strings.Contains(html, "Snapshot saved") {
		t.Error("Playground should confirm a fresh save")
	}

	plain := Playground{Site: testSite()}.Render()
	if strings.Contains(plain, "Snapshot saved") {
		t.Error("Playground should not show the notice without a save")
	}
}

// TestPlaygroundListsSnapshots verifies stored snapshots get load links
func TestPlaygroundListsSnapshots(t *testing.T) {
	page := Playground{
		Site: testSite(),
		Snapshots: []models.Snapshot{
			{
				GUID:      "abc-123",
				Name:      "Danger pill",
				Component: "button",
				Attrs:     map[string]string{"variant": "outline", "color": "danger"},
				UpdatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			},
		},
	}
	html := page.Render()

	if !strings.Contains(html, "/playground?snapshot=abc-123") {
		t.Error("Snapshot rows should link to the load URL")
	}
	if !strings.Contains(html, "Danger pill") {
		t.Error("Snapshot rows should show the snapshot name")
	}
	if !strings.Contains(html, "outline / danger") {
		t.Error("Snapshot rows should summarize the stored attrs")
	}
}

// TestAdminLoginFailedState verifies the failure alert is gated
func TestAdminLoginFailedState(t *testing.T) {
	failed := AdminLogin{Site: testSite(), Username: "curator", Failed: true}.Render()
	if !strings.Contains(failed, "Sign in failed") {
		t.Error("Login page should show the failure alert after a bad attempt")
	}
	if !strings.Contains(failed, `value="curator"`) {
		t.Error("Login page should keep the attempted username")
	}

	fresh := AdminLogin{Site: testSite()}.Render()
	if strings.Contains(fresh, "Sign in failed") {
		t.Error("Login page should not show the failure alert initially")
	}
}

// TestAdminDashboardTotals verifies the stat cards aggregate correctly
func TestAdminDashboardTotals(t *testing.T) {
	page := AdminDashboard{
		Site:     testSite(),
		Username: "curator",
		Summaries: []models.RatingSummary{
			{Component: "button", Average: 4.0, Count: 3},
			{Component: "badge", Average: 2.5, Count: 7},
		},
	}
	html := page.Render()

	if !strings.Contains(html, "Signed in as curator.") {
		t.Error("Dashboard should greet the signed-in admin")
	}
	if !strings.Contains(html, ">10<") {
		t.Error("Dashboard should sum rating counts across components")
	}
	if !strings.Contains(html, "4.0 avg from 3") {
		t.Error("Dashboard should show per-component averages")
	}
}

// TestLayoutHeadAssets verifies every page pulls the shared assets
func TestLayoutHeadAssets(t *testing.T) {
	html := Catalog{Site: testSite()}.Render()

	for _, asset := range []string{
		"cdn.tailwindcss.com",
		"/static/js/palette.js",
		"htmx.org",
		"/static/css/app.css",
		"/static/js/behavior.js",
	} {
		if !strings.Contains(html, asset) {
			t.Errorf("Layout should reference %s", asset)
		}
	}
}

// TestLayoutSchemeHandling verifies the scheme setting changes the html tag
func TestLayoutSchemeHandling(t *testing.T) {
	dark := Catalog{Site: Site{Title: "Plume UI", Scheme: "dark"}}.Render()
	if !strings.Contains(dark, `lang="en" class="dark"`) {
		t.Error("Dark scheme should set the dark class on the html tag")
	}

	system := Catalog{Site: Site{Title: "Plume UI", Scheme: "system"}}.Render()
	if !strings.Contains(system, "matchMedia") {
		t.Error("System scheme should include the media query script")
	}

	light := Catalog{Site: Site{Title: "Plume UI", Scheme: "light"}}.Render()
	if strings.Contains(light, `class="dark"`) {
		t.Error("Light scheme should not set the dark class")
	}
	if strings.Contains(light, "matchMedia") {
		t.Error("Light scheme should not include the media query script")
	}
}

// TestLayoutAdminCorner verifies the header reflects the session state
func TestLayoutAdminCorner(t *testing.T) {
	anon := Catalog{Site: testSite()}.Render()
	if !strings.Contains(anon, "/admin/login") {
		t.Error("Anonymous visitors should get the admin sign-in link")
	}

	admin := Catalog{Site: Site{Title: "Plume UI", Scheme: "light", Admin: "curator"}}.Render()
	if !strings.Contains(admin, "Sign out") {
		t.Error("Signed-in admins should get the sign-out control")
	}
	if !strings.Contains(admin, "curator") {
		t.Error("Header should show the admin username")
	}
}
