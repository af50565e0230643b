package components

import (
	"github.com/rohanthewiz/element"

	"plume/ui"
)

// ListItem is one entry. Content wins over Text; Color overrides the
// list color for this item only.
type ListItem struct {
	Icon    string
	Text    string
	Color   ui.Color
	Class   string
	Content element.Component
}

// List renders ordered or unordered item stacks. Block variants share
// one surface with dividers; separated variants give each item its own
// bordered surface.
type List struct {
	ID        string
	Variant   ui.Variant
	Color     ui.Color
	Size      ui.Size
	Rounded   ui.Rounded
	Border    ui.Border
	Padding   ui.Padding
	Space     ui.Space
	Hoverable bool
	Ordered   bool
	Items     []ListItem
	Class     string
}

func (l List) normalize() List {
	if l.Variant == "" {
		l.Variant = ui.VariantDefault
	}
	if l.Color == "" {
		l.Color = ui.ColorNatural
	}
	if l.Rounded == "" {
		l.Rounded = ui.RoundedMedium
	}
	if l.Padding == "" {
		l.Padding = ui.PaddingSmall
	}
	if l.Variant.Separated() && l.Space == "" {
		l.Space = ui.SpaceSmall
	}
	return l
}

func (l List) Render(b *element.Builder) (x any) {
	l = l.normalize()
	cls := ui.Classes(
		ui.JoinTokens(ui.ResolveList(l.Variant, l.Color, l.Hoverable)),
		ui.SizeClass(l.Size), ui.SpaceClass(l.Space),
		ui.ClassIf(!l.Variant.Separated(),
			ui.Classes(ui.RoundedClass(l.Rounded), ui.BorderClass(l.Border), "overflow-hidden")),
		ui.ClassIf(l.Ordered, "list-decimal list-inside"),
		ui.ClassIf(!l.Ordered, "list-none"),
		l.Class,
	)
	attrs := []string{"class", cls, "role", "list"}
	if l.ID != "" {
		attrs = append(attrs, "id", l.ID)
	}
	b.Ul(attrs...).R(
		element.ForEach(l.Items, func(it ListItem) {
			l.renderItem(b, it)
		}),
	)
	return
}

func (l List) renderItem(b *element.Builder, it ListItem) (x any) {
	cls := ui.Classes(
		"flex items-center gap-2",
		ui.PaddingClass(l.Padding),
		ui.JoinTokens(ui.ResolveListItem(l.Variant, l.Color)),
		ui.ClassIf(l.Variant.Separated(), ui.Classes("border", ui.RoundedClass(l.Rounded))),
		itemColor(it.Color),
		it.Class,
	)
	b.Li("class", cls).R(
		RenderIcon(b, it.Icon, iconSizeClass(l.Size)+" shrink-0"),
		b.Wrap(func() {
			if it.Content != nil {
				element.RenderComponents(b, it.Content)
			} else {
				b.T(it.Text)
			}
		}),
	)
	return
}

func itemColor(c ui.Color) string {
	switch c {
	case "":
		return ""
	case ui.ColorWhite:
		return "text-white dark:text-white"
	case ui.ColorDark:
		return "text-[#282828] dark:text-[#a1a1aa]"
	}
	if !ui.Known(c) {
		return string(c)
	}
	n := string(c)
	return "text-" + n + "-600 dark:text-" + n + "-400"
}
