// Package components is the catalog of server-rendered UI components.
// Each component is an element.Component: a plain struct whose fields are
// its attributes, normalized with defaults at the top of Render. Styling
// comes from the ui token tables; interactive pieces carry the data-*
// contract for the client behavior script and render sensibly without it.
package components

import "plume/ui"

func iconSizeClass(s ui.Size) string {
	switch s {
	case ui.SizeExtraSmall:
		return "w-3.5 h-3.5"
	case ui.SizeSmall:
		return "w-4 h-4"
	case ui.SizeLarge:
		return "w-6 h-6"
	case ui.SizeExtraLarge:
		return "w-7 h-7"
	default:
		return "w-5 h-5"
	}
}

func controlSizeClass(s ui.Size) string {
	switch s {
	case ui.SizeExtraSmall:
		return "w-3.5 h-3.5"
	case ui.SizeSmall:
		return "w-4 h-4"
	case ui.SizeLarge:
		return "w-5 h-5"
	case ui.SizeExtraLarge:
		return "w-6 h-6"
	default:
		return "w-[1.125rem] h-[1.125rem]"
	}
}

func accentColor(c ui.Color) string {
	switch c {
	case ui.ColorWhite:
		return "accent-white"
	case ui.ColorDark:
		return "accent-[#282828]"
	}
	if !ui.Known(c) {
		return string(c)
	}
	return "accent-" + string(c) + "-600"
}
