package components

import "github.com/rohanthewiz/element"

// IconSet maps icon names to SVG path data. DefaultIcons can be swapped
// wholesale or extended by the host application; components only ever
// look glyphs up by name.
type IconSet map[string]string

// DefaultIcons is the built-in glyph source. Paths are 24x24 stroke
// outlines except the solid star used by the rating strip.
var DefaultIcons = IconSet{
	"chevron-down":  "m6 9 6 6 6-6",
	"chevron-up":    "m18 15-6-6-6 6",
	"chevron-right": "m9 18 6-6-6-6",
	"close":         "M6 6l12 12M18 6 6 18",
	"check":         "m5 13 4 4L19 7",
	"check-circle":  "m9 12 2 2 4-4M22 12a10 10 0 1 1-20 0 10 10 0 0 1 20 0",
	"x-circle":      "m15 9-6 6m0-6 6 6M22 12a10 10 0 1 1-20 0 10 10 0 0 1 20 0",
	"info":          "M12 16v-4m0-4h.01M22 12a10 10 0 1 1-20 0 10 10 0 0 1 20 0",
	"warning":       "M12 9v4m0 4h.01M10.29 3.86 1.82 18a2 2 0 0 0 1.71 3h16.94a2 2 0 0 0 1.71-3L13.71 3.86a2 2 0 0 0-3.42 0",
	"question":      "M9.09 9a3 3 0 0 1 5.83 1c0 2-3 3-3 3m.08 4h.01M22 12a10 10 0 1 1-20 0 10 10 0 0 1 20 0",
	"plus":          "M12 5v14m-7-7h14",
	"dots":          "M12 5h.01M12 12h.01M12 19h.01",
	"star":          "M11.48 3.5a.56.56 0 0 1 1.04 0l2.12 5.1 5.51.44c.5.04.7.66.32.98l-4.2 3.6 1.28 5.37a.56.56 0 0 1-.84.61L12 16.71l-4.71 2.89a.56.56 0 0 1-.84-.6l1.28-5.38-4.2-3.6a.56.56 0 0 1 .32-.98l5.51-.44z",
}

// RenderIcon embeds the named icon inline. Unknown names render nothing,
// so a bad icon attribute degrades silently instead of breaking markup.
func RenderIcon(b *element.Builder, name, class string) (x any) {
	path, ok := DefaultIcons[name]
	if !ok {
		return
	}
	cls := ""
	if class != "" {
		cls = ` class="` + class + `"`
	}
	b.T(`<svg` + cls + ` xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"><path d="` + path + `"/></svg>`)
	return
}

// Icon renders a glyph as a standalone component.
type Icon struct {
	Name  string
	Class string
}

func (ic Icon) Render(b *element.Builder) (x any) {
	return RenderIcon(b, ic.Name, ic.Class)
}
