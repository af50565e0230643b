package pages

import (
	"fmt"

	"plume/components"
	"plume/form"
	"plume/ui"

	"github.com/rohanthewiz/element"
)

// renderDemos dispatches to the demo gallery for one component
func renderDemos(b *element.Builder, name string) {
	switch name {
	case "input":
		inputDemos(b)
	case "accordion":
		accordionDemos(b)
	case "alert":
		alertDemos(b)
	case "tooltip":
		tooltipDemos(b)
	case "dropdown":
		dropdownDemos(b)
	case "speed-dial":
		speedDialDemos(b)
	case "rating":
		ratingDemos(b)
	case "list":
		listDemos(b)
	case "radio-group":
		radioGroupDemos(b)
	case "button":
		buttonDemos(b)
	case "badge":
		badgeDemos(b)
	}
}

// demoSection frames one group of examples
func demoSection(b *element.Builder, title string, content func()) {
	b.DivClass("mb-10").R(
		b.H2("class", "text-lg font-medium mb-4").T(title),
		b.DivClass("flex flex-wrap items-start gap-4").R(
			b.Wrap(content),
		),
	)
}

// menu renders a simple link stack for dropdown demos
type menu struct{ items []string }

func (m menu) Render(b *element.Builder) (x any) {
	element.ForEach(m.items, func(it string) {
		b.A("href", "#", "class", "block px-3 py-1.5 text-sm rounded hover:bg-natural-100 dark:hover:bg-natural-800").T(it)
	})
	return
}

// prose renders a short paragraph used as panel content
type prose struct{ s string }

func (p prose) Render(b *element.Builder) (x any) {
	b.P("class", "text-sm leading-relaxed").T(p.s)
	return
}

func inputDemos(b *element.Builder) {
	demoSection(b, "Text fields", func() {
		element.RenderComponents(b,
			components.Input{ID: "demo-in-name", Label: "Name", Placeholder: "Ada Lovelace"},
			components.Input{ID: "demo-in-req", Type: "email", Label: "Email", Required: true, Color: ui.ColorPrimary},
			components.Input{ID: "demo-in-ro", Label: "Reference", Value: "PLM-0042", Readonly: true, Color: ui.ColorSilver},
		)
	})

	demoSection(b, "Floating labels", func() {
		element.RenderComponents(b,
			components.Input{ID: "demo-in-float-in", Label: "Inner float", Floating: ui.FloatingInner, Color: ui.ColorPrimary},
			components.Input{ID: "demo-in-float-out", Label: "Outer float", Floating: ui.FloatingOuter, Color: ui.ColorSecondary},
		)
	})

	demoSection(b, "Validation state", func() {
		field := &form.Field{
			Name:   "email",
			Value:  "not-an-address",
			Used:   true,
			Errors: []form.FieldError{{Message: "Enter a valid email address"}},
		}
		element.RenderComponents(b, components.Input{
			ID:        "demo-in-err",
			Type:      "email",
			Label:     "Email",
			Field:     field,
			ErrorIcon: "warning",
		})
	})

	demoSection(b, "Choices", func() {
		element.RenderComponents(b,
			components.Input{ID: "demo-in-check", Type: "checkbox", Label: "Subscribe to updates", Value: "true", Color: ui.ColorSuccess},
			components.Input{
				ID: "demo-in-select", Type: "select", Label: "Tier", Value: "pro",
				Options: []components.SelectOption{
					{Value: "free", Label: "Free"},
					{Value: "pro", Label: "Pro"},
					{Value: "team", Label: "Team", Disabled: true},
				},
			},
			components.Input{ID: "demo-in-area", Type: "textarea", Label: "Notes", Rows: 3, Placeholder: "Anything else?"},
		)
	})
}

func accordionDemos(b *element.Builder) {
	demoSection(b, "Single open", func() {
		element.RenderComponents(b, components.Accordion{
			ID: "demo-acc-single",
			Items: []components.AccordionItem{
				{Title: "What renders the markup?", Open: true, Content: prose{s: "Every panel on this page is composed server-side and shipped as plain HTML."}},
				{Title: "Where does styling come from?", Content: prose{s: "The variant resolver maps variant and color to a fixed utility class list."}},
				{Title: "What runs in the browser?", Content: prose{s: "A small script that only reads data attributes and toggles the hidden attribute."}},
			},
		})
	})

	demoSection(b, "Multiple and collapsible", func() {
		element.RenderComponents(b, components.Accordion{
			ID:          "demo-acc-multi",
			Variant:     ui.VariantBordered,
			Color:       ui.ColorPrimary,
			Multiple:    true,
			Collapsible: true,
			InitialOpen: []string{"demo-acc-multi-item-1", "demo-acc-multi-item-3"},
			Duration:    150,
			Items: []components.AccordionItem{
				{Title: "Shipping", Icon: "info", Content: prose{s: "Orders leave the warehouse within two working days."}},
				{Title: "Returns", Icon: "info", Content: prose{s: "Thirty days, no questions asked."}},
				{Title: "Warranty", Icon: "info", Content: prose{s: "Two years on everything except consumables."}},
			},
		})
	})
}

func alertDemos(b *element.Builder) {
	demoSection(b, "Statuses", func() {
		element.RenderComponents(b,
			components.Alert{ID: "demo-alert-ok", Color: ui.ColorSuccess, Icon: "check-circle", Title: "Saved", Text: "Your snapshot is safe."},
			components.Alert{ID: "demo-alert-warn", Color: ui.ColorWarning, Icon: "warning", Title: "Heads up", Text: "This action reruns all migrations."},
			components.Alert{ID: "demo-alert-err", Color: ui.ColorDanger, Icon: "x-circle", Title: "Failed", Text: "The database did not answer in time."},
			components.Alert{ID: "demo-alert-info", Color: ui.ColorInfo, Icon: "info", Text: "Plain informational note without a title."},
		)
	})

	demoSection(b, "Dismissible", func() {
		element.RenderComponents(b, components.Alert{
			ID:          "demo-alert-dismiss",
			Variant:     ui.VariantDefault,
			Color:       ui.ColorPrimary,
			Icon:        "info",
			Title:       "New in this release",
			Text:        "Close this with the button on the right.",
			Dismissible: true,
		})
	})

	demoSection(b, "Variants", func() {
		element.ForEach(ui.AllVariants, func(v ui.Variant) {
			element.RenderComponents(b, components.Alert{
				ID:      "demo-alert-" + string(v),
				Variant: v,
				Color:   ui.ColorSecondary,
				Text:    string(v),
			})
		})
	})
}

func tooltipDemos(b *element.Builder) {
	demoSection(b, "Positions", func() {
		positions := []ui.Position{ui.PositionTop, ui.PositionBottom, ui.PositionLeft, ui.PositionRight}
		element.ForEach(positions, func(pos ui.Position) {
			element.RenderComponents(b, components.Tooltip{
				ID:       "demo-tip-" + string(pos),
				Position: pos,
				Text:     "Anchored " + string(pos),
				Trigger:  components.Button{Text: string(pos), Variant: ui.VariantOutline, Color: ui.ColorNatural, Size: ui.SizeSmall},
			})
		})
	})

	demoSection(b, "Delays and clickable", func() {
		element.RenderComponents(b,
			components.Tooltip{
				ID:        "demo-tip-slow",
				ShowDelay: 400,
				HideDelay: 200,
				Color:     ui.ColorPrimary,
				Text:      "Takes a moment to appear",
				Trigger:   components.Button{Text: "Patient hover", Size: ui.SizeSmall},
			},
			components.Tooltip{
				ID:        "demo-tip-click",
				Trigger:   components.Button{Text: "Click me", Variant: ui.VariantBordered, Color: ui.ColorInfo, Size: ui.SizeSmall},
				Clickable: true,
				Color:     ui.ColorInfo,
				Content:   prose{s: "Clickable tooltips stay open while the pointer is inside them."},
			},
		)
	})
}

func dropdownDemos(b *element.Builder) {
	demoSection(b, "Click and hover", func() {
		element.RenderComponents(b,
			components.Dropdown{
				ID:      "demo-dd-click",
				Trigger: components.Button{Text: "Actions", Icon: "chevron-down", Size: ui.SizeSmall},
				Content: menu{items: []string{"Duplicate", "Rename", "Archive"}},
			},
			components.Dropdown{
				ID:      "demo-dd-hover",
				Mode:    ui.TriggerHover,
				Trigger: components.Button{Text: "Hover menu", Variant: ui.VariantOutline, Color: ui.ColorNatural, Size: ui.SizeSmall, Icon: "chevron-down"},
				Content: menu{items: []string{"Profile", "Settings", "Sign out"}},
			},
		)
	})

	demoSection(b, "Placement", func() {
		element.RenderComponents(b,
			components.Dropdown{
				ID:       "demo-dd-right",
				Position: ui.PositionRight,
				Trigger:  components.Button{Text: "Opens right", Variant: ui.VariantBordered, Color: ui.ColorPrimary, Size: ui.SizeSmall},
				Content:  menu{items: []string{"One", "Two"}},
			},
			components.Dropdown{
				ID:       "demo-dd-top",
				Position: ui.PositionTop,
				Trigger:  components.Button{Text: "Opens up", Variant: ui.VariantBordered, Color: ui.ColorSecondary, Size: ui.SizeSmall},
				Content:  menu{items: []string{"Alpha", "Beta"}},
			},
		)
	})
}

func speedDialDemos(b *element.Builder) {
	demoSection(b, "Quick actions", func() {
		b.P("class", "text-sm text-natural-500 dark:text-natural-400 max-w-prose").T(
			"The dial below is pinned to the bottom right corner of this page. Open it to see the action stack; every action is a plain link or button.")
		element.RenderComponents(b, components.SpeedDial{
			ID:     "demo-dial",
			Corner: ui.CornerBottomEnd,
			Color:  ui.ColorPrimary,
			Items: []components.SpeedDialItem{
				{Icon: "plus", Label: "New snapshot", Href: "/playground"},
				{Icon: "star", Label: "Rate components", Href: "/"},
				{Icon: "question", Label: "Compare variants", Href: "/compare"},
			},
		})
	})
}

func ratingDemos(b *element.Builder) {
	demoSection(b, "Fractional fills", func() {
		values := []float64{2, 3.05, 3.5, 4.9}
		element.ForEach(values, func(v float64) {
			b.DivClass("flex flex-col items-start gap-1").R(
				element.RenderComponents(b, components.Rating{
					ID:     fmt.Sprintf("demo-rate-%g", v),
					Select: v,
				}),
				b.Small("class", "text-natural-500 dark:text-natural-400").T(fmt.Sprintf("%.2f", v)),
			)
		})
	})

	demoSection(b, "Sizes and colors", func() {
		element.RenderComponents(b,
			components.Rating{ID: "demo-rate-sm", Select: 4, Size: ui.SizeSmall},
			components.Rating{ID: "demo-rate-lg", Select: 4, Size: ui.SizeLarge},
			components.Rating{ID: "demo-rate-danger", Select: 3.5, Color: ui.ColorDanger},
			components.Rating{ID: "demo-rate-ten", Select: 7.5, Count: 10, Color: ui.ColorInfo},
		)
	})

	demoSection(b, "Interactive", func() {
		element.RenderComponents(b, components.Rating{
			ID:          "demo-rate-live",
			Interactive: true,
			Name:        "demo-score",
			Select:      3,
			Size:        ui.SizeLarge,
		})
	})
}

func listDemos(b *element.Builder) {
	demoSection(b, "Block lists", func() {
		element.RenderComponents(b,
			components.List{
				ID: "demo-list-plain",
				Items: []components.ListItem{
					{Icon: "check", Text: "Server-side rendering"},
					{Icon: "check", Text: "Dark mode pairs"},
					{Icon: "check", Text: "No client framework"},
				},
			},
			components.List{
				ID:        "demo-list-hover",
				Variant:   ui.VariantBordered,
				Color:     ui.ColorPrimary,
				Hoverable: true,
				Items: []components.ListItem{
					{Text: "Hover highlights rows"},
					{Text: "Using one arbitrary variant"},
					{Text: "Scoped to direct children"},
				},
			},
		)
	})

	demoSection(b, "Separated", func() {
		element.RenderComponents(b, components.List{
			ID:      "demo-list-sep",
			Variant: ui.VariantBorderedSeparated,
			Color:   ui.ColorSuccess,
			Items: []components.ListItem{
				{Icon: "check-circle", Text: "Each row is its own card"},
				{Icon: "check-circle", Text: "Spacing comes from the space scale"},
				{Icon: "check-circle", Text: "Rows keep the color accent", Color: ui.ColorDanger},
			},
		})
	})

	demoSection(b, "Ordered", func() {
		element.RenderComponents(b, components.List{
			ID:      "demo-list-ordered",
			Ordered: true,
			Color:   ui.ColorSilver,
			Items: []components.ListItem{
				{Text: "Resolve variant and color"},
				{Text: "Compose scale classes"},
				{Text: "Render and ship"},
			},
		})
	})
}

func radioGroupDemos(b *element.Builder) {
	demoSection(b, "Basic", func() {
		element.RenderComponents(b, components.RadioGroup{
			ID:     "demo-radio-basic",
			Name:   "delivery",
			Legend: "Delivery speed",
			Value:  "standard",
			Color:  ui.ColorPrimary,
			Options: []components.RadioOption{
				{Value: "standard", Label: "Standard (3-5 days)"},
				{Value: "express", Label: "Express (next day)"},
				{Value: "pickup", Label: "Pickup", Disabled: true},
			},
		})
	})

	demoSection(b, "Reversed", func() {
		element.RenderComponents(b, components.RadioGroup{
			ID:      "demo-radio-rev",
			Name:    "align",
			Legend:  "Label first",
			Reverse: true,
			Color:   ui.ColorSecondary,
			Options: []components.RadioOption{
				{Value: "a", Label: "Control sits after the label"},
				{Value: "b", Label: "Useful for settings rows"},
			},
		})
	})

	demoSection(b, "Validation state", func() {
		field := &form.Field{
			Name:   "plan",
			Used:   true,
			Errors: []form.FieldError{{Message: "Pick a plan to continue"}},
		}
		element.RenderComponents(b, components.RadioGroup{
			ID:        "demo-radio-err",
			Legend:    "Plan",
			Field:     field,
			ErrorIcon: "warning",
			Options: []components.RadioOption{
				{Value: "free", Label: "Free"},
				{Value: "pro", Label: "Pro"},
			},
		})
	})
}

func buttonDemos(b *element.Builder) {
	demoSection(b, "Variants", func() {
		element.ForEach(ui.AllVariants, func(v ui.Variant) {
			element.RenderComponents(b, components.Button{
				ID:      "demo-btn-" + string(v),
				Variant: v,
				Color:   ui.ColorPrimary,
				Text:    string(v),
			})
		})
	})

	demoSection(b, "Colors", func() {
		colors := []ui.Color{ui.ColorNatural, ui.ColorSuccess, ui.ColorWarning, ui.ColorDanger, ui.ColorInfo, ui.ColorMisc, ui.ColorDawn}
		element.ForEach(colors, func(c ui.Color) {
			element.RenderComponents(b, components.Button{
				ID:    "demo-btn-" + string(c),
				Color: c,
				Text:  string(c),
			})
		})
	})

	demoSection(b, "Shapes and states", func() {
		element.RenderComponents(b,
			components.Button{ID: "demo-btn-sm", Text: "Small", Size: ui.SizeSmall},
			components.Button{ID: "demo-btn-lg", Text: "Large", Size: ui.SizeLarge},
			components.Button{ID: "demo-btn-pill", Text: "Pill", Rounded: ui.RoundedFull, Color: ui.ColorSecondary},
			components.Button{ID: "demo-btn-icon", Text: "With icon", Icon: "plus", Color: ui.ColorSuccess},
			components.Button{ID: "demo-btn-off", Text: "Disabled", Disabled: true},
			components.Button{ID: "demo-btn-link", Text: "Link button", Href: "/compare", Variant: ui.VariantOutline, Color: ui.ColorInfo},
		)
	})
}

func badgeDemos(b *element.Builder) {
	demoSection(b, "Colors", func() {
		colors := []ui.Color{ui.ColorNatural, ui.ColorPrimary, ui.ColorSuccess, ui.ColorWarning, ui.ColorDanger, ui.ColorSilver}
		element.ForEach(colors, func(c ui.Color) {
			element.RenderComponents(b, components.Badge{
				ID:    "demo-badge-" + string(c),
				Color: c,
				Text:  string(c),
			})
		})
	})

	demoSection(b, "Variants and extras", func() {
		element.RenderComponents(b,
			components.Badge{ID: "demo-badge-solid", Variant: ui.VariantDefault, Color: ui.ColorPrimary, Text: "solid"},
			components.Badge{ID: "demo-badge-out", Variant: ui.VariantOutline, Color: ui.ColorDanger, Text: "outline"},
			components.Badge{ID: "demo-badge-icon", Icon: "check", Color: ui.ColorSuccess, Text: "verified"},
			components.Badge{ID: "demo-badge-x", Color: ui.ColorInfo, Text: "dismissible", Dismissible: true},
		)
	})
}
