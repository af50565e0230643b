package pages

import (
	"github.com/rohanthewiz/element"
)

// Site carries the data every page shares: branding, the configured
// color scheme, and the signed-in admin (empty when anonymous).
type Site struct {
	Title  string
	Scheme string
	Admin  string
}

// navLink pairs a label with its path for the header nav
type navLink struct {
	Label string
	Path  string
}

var navLinks = []navLink{
	{"Components", "/"},
	{"Compare", "/compare"},
	{"Playground", "/playground"},
}

// Document wraps page content in the shared HTML shell
func (s Site) Document(b *element.Builder, active string, pageTitle string, content func()) {
	title := s.Title
	if pageTitle != "" {
		title = pageTitle + " - " + s.Title
	}

	b.Html(s.htmlAttrs()...).R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
			b.Title().T(title),
			// Tailwind via CDN; palette.js must follow it directly so the
			// showcase color families exist before first paint
			b.Script("src", "https://cdn.tailwindcss.com").R(),
			b.Script("src", "/static/js/palette.js?v=1").R(),
			// HTMX drives the rating widget swap
			b.Script("src", "https://unpkg.com/htmx.org@1.9.12").R(),
			b.Link("rel", "stylesheet", "href", "/static/css/app.css?v=1"),
			s.schemeScript(b),
		),
		b.Body("class", "min-h-screen flex flex-col bg-white text-natural-900 dark:bg-[#18181b] dark:text-natural-100").R(
			s.renderHeader(b, active),
			b.Main("class", "flex-1 w-full max-w-6xl mx-auto px-4 py-8").R(
				b.Wrap(content),
			),
			s.renderFooter(b),
			// Client behavior for accordions, tooltips, dropdowns, dials
			b.Script("src", "/static/js/behavior.js?v=1").R(),
		),
	)
}

func (s Site) htmlAttrs() []string {
	attrs := []string{"lang", "en"}
	if s.Scheme == "dark" {
		attrs = append(attrs, "class", "dark")
	}
	return attrs
}

// schemeScript emits the system-scheme toggle. Fixed light and dark
// schemes need nothing at runtime.
func (s Site) schemeScript(b *element.Builder) (x any) {
	if s.Scheme != "system" {
		return
	}
	b.Script().T(`if (window.matchMedia('(prefers-color-scheme: dark)').matches) document.documentElement.classList.add('dark');`)
	return
}

func (s Site) renderHeader(b *element.Builder, active string) (x any) {
	b.Header("class", "border-b border-natural-200 dark:border-natural-700").R(
		b.DivClass("max-w-6xl mx-auto px-4 py-3 flex items-center gap-6").R(
			b.A("href", "/", "class", "text-lg font-semibold tracking-tight").T(s.Title),
			b.Nav("class", "flex gap-4 text-sm").R(
				element.ForEach(navLinks, func(l navLink) {
					b.A("href", l.Path, "class", navClass(l.Path == active)).T(l.Label)
				}),
			),
			b.DivClass("ml-auto flex items-center gap-3 text-sm").R(
				s.renderAdminCorner(b),
			),
		),
	)
	return
}

func navClass(active bool) string {
	if active {
		return "text-primary-600 dark:text-primary-400 font-medium"
	}
	return "text-natural-600 dark:text-natural-300 hover:text-primary-600 dark:hover:text-primary-400"
}

func (s Site) renderAdminCorner(b *element.Builder) (x any) {
	if s.Admin == "" {
		b.A("href", "/admin/login", "class", "text-natural-500 hover:text-primary-600 dark:text-natural-400").T("Admin")
		return
	}

	b.SpanClass("text-natural-500 dark:text-natural-400").T(s.Admin)
	b.Form("action", "/admin/logout", "method", "post", "class", "inline").R(
		b.Button("type", "submit", "class", "text-natural-500 hover:text-danger-600 dark:text-natural-400").T("Sign out"),
	)
	return
}

func (s Site) renderFooter(b *element.Builder) (x any) {
	b.Footer("class", "border-t border-natural-200 dark:border-natural-700 py-6 mt-12").R(
		b.DivClass("max-w-6xl mx-auto px-4 text-sm text-natural-500 dark:text-natural-400 flex justify-between").R(
			b.Span().T(s.Title+" - server-rendered UI components"),
			b.Span().T("Scheme: "+s.Scheme),
		),
	)
	return
}
