package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rohanthewiz/element"

	"plume/form"
	"plume/ui"
)

// Rating paints a strip of stars for a selection value. Partial stars
// come from a width-clipped overlay, so fractional selections need no
// extra glyphs. Interactive ratings render hidden radios and submit like
// any other form control.
type Rating struct {
	ID          string
	Count       int
	Select      float64
	Color       ui.Color
	Size        ui.Size
	Interactive bool
	Name        string
	Field       *form.Field
	Translator  form.Translator
	Class       string
}

func (r Rating) normalize() Rating {
	r.ID = ui.EnsureID(r.ID, "rating")
	if r.Count == 0 {
		r.Count = 5
	}
	if r.Color == "" {
		r.Color = ui.ColorWarning
	}
	if r.Field != nil {
		if r.Name == "" {
			r.Name = r.Field.Name
		}
		if r.Select == 0 && r.Field.Value != "" {
			if v, err := strconv.ParseFloat(strings.TrimSpace(r.Field.Value), 64); err == nil {
				r.Select = v
			}
		}
	}
	return r
}

func (r Rating) starSize() string {
	switch r.Size {
	case ui.SizeExtraSmall:
		return "w-4 h-4"
	case ui.SizeSmall:
		return "w-5 h-5"
	case ui.SizeLarge:
		return "w-7 h-7"
	case ui.SizeExtraLarge:
		return "w-8 h-8"
	default:
		return "w-6 h-6"
	}
}

func starColor(c ui.Color) string {
	switch c {
	case ui.ColorWhite:
		return "text-white"
	case ui.ColorDark:
		return "text-[#282828]"
	}
	if !ui.Known(c) {
		return string(c)
	}
	return "text-" + string(c) + "-400"
}

func starSvg(class string) string {
	return `<svg class="` + class + `" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="currentColor" aria-hidden="true"><path d="` + DefaultIcons["star"] + `"/></svg>`
}

func (r Rating) Render(b *element.Builder) (x any) {
	r = r.normalize()
	if r.Interactive {
		return r.renderInput(b)
	}
	b.Div("id", r.ID, "role", "img",
		"aria-label", fmt.Sprintf("%.1f out of %d stars", r.Select, r.Count),
		"class", ui.Classes("inline-flex items-center gap-1", r.Class)).R(
		b.Wrap(func() {
			for i := 1; i <= r.Count; i++ {
				r.renderStar(b, i)
			}
		}),
	)
	return
}

func (r Rating) renderInput(b *element.Builder) (x any) {
	selected := int(math.Round(r.Select))
	b.Div("id", r.ID, "class", ui.Classes("inline-block", r.Class)).R(
		b.Div("role", "radiogroup", "class", "flex items-center gap-1").R(
			b.Wrap(func() {
				for i := 1; i <= r.Count; i++ {
					optID := fmt.Sprintf("%s-star-%d", r.ID, i)
					attrs := []string{"type", "radio", "id", optID, "name", r.Name,
						"value", strconv.Itoa(i), "class", "sr-only"}
					if i == selected {
						attrs = append(attrs, "checked")
					}
					b.Input(attrs...)
					b.Label("for", optID, "class", "cursor-pointer",
						"aria-label", fmt.Sprintf("Rate %d", i)).R(
						r.renderStar(b, i),
					)
				}
			}),
		),
		element.RenderComponents(b, ErrorList{
			For:        r.ID,
			Errors:     r.Field.VisibleErrors(),
			Translator: r.Translator,
			Icon:       "warning",
		}),
	)
	return
}

func (r Rating) renderStar(b *element.Builder, star int) (x any) {
	fill := ui.FillPercent(star, r.Select)
	size := r.starSize()
	b.Span("class", "relative inline-block "+size).R(
		b.T(starSvg(size+" text-natural-300 dark:text-natural-600")),
		b.Wrap(func() {
			if fill > 0 {
				b.Span("class", "absolute inset-0 overflow-hidden",
					"style", fmt.Sprintf("width:%d%%", fill)).R(
					b.T(starSvg(size + " " + starColor(r.Color))),
				)
			}
		}),
	)
	return
}
