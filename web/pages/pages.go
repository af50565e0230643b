// Package pages renders the showcase's server-side HTML: the catalog,
// per-component demo pages, the compare and playground tools, and the
// admin area.
package pages

// ComponentInfo describes one catalog entry
type ComponentInfo struct {
	Name  string
	Title string
	Blurb string
}

// CatalogComponents lists every component page in display order
var CatalogComponents = []ComponentInfo{
	{"input", "Input", "Text, checkbox, select, and textarea fields with floating labels"},
	{"accordion", "Accordion", "Collapsible panels with single or multiple open sections"},
	{"alert", "Alert", "Callouts for success, warning, danger, and info messaging"},
	{"tooltip", "Tooltip", "Positioned hover and click hints with configurable delays"},
	{"dropdown", "Dropdown", "Anchored menus that open on click or hover"},
	{"speed-dial", "Speed Dial", "Corner-pinned quick actions behind one floating button"},
	{"rating", "Rating", "Star scores with fractional fills"},
	{"list", "List", "Block and separated lists with optional hover states"},
	{"radio-group", "Radio Group", "Grouped options with a legend and error slot"},
	{"button", "Button", "Actions and links across the full variant range"},
	{"badge", "Badge", "Compact status labels, optionally dismissible"},
}

// KnownComponent reports whether a catalog page exists for name
func KnownComponent(name string) bool {
	for _, c := range CatalogComponents {
		if c.Name == name {
			return true
		}
	}
	return false
}

// componentTitle returns the display title for a catalog name
func componentTitle(name string) string {
	for _, c := range CatalogComponents {
		if c.Name == name {
			return c.Title
		}
	}
	return name
}

// PlaygroundAttrs builds an attribute map from playground form values,
// dropping anything left empty
func PlaygroundAttrs(variant, color, size string) map[string]string {
	attrs := map[string]string{}
	if variant != "" {
		attrs["variant"] = variant
	}
	if color != "" {
		attrs["color"] = color
	}
	if size != "" {
		attrs["size"] = size
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}
