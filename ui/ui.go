// Package ui holds the style vocabulary shared by every component: the
// color and variant enums, the token tables that map them to utility
// classes, the sizing scales, and the data-* attribute contract consumed
// by the client behavior script.
package ui

import "strings"

// Color is a semantic palette name. Unrecognized values pass through the
// resolver verbatim so callers can hand in raw utility classes.
type Color string

const (
	ColorNatural   Color = "natural"
	ColorPrimary   Color = "primary"
	ColorSecondary Color = "secondary"
	ColorSuccess   Color = "success"
	ColorWarning   Color = "warning"
	ColorDanger    Color = "danger"
	ColorInfo      Color = "info"
	ColorMisc      Color = "misc"
	ColorDawn      Color = "dawn"
	ColorSilver    Color = "silver"
	ColorWhite     Color = "white"
	ColorDark      Color = "dark"
)

// AllColors lists every declared color in display order.
var AllColors = []Color{
	ColorNatural, ColorPrimary, ColorSecondary, ColorSuccess, ColorWarning,
	ColorDanger, ColorInfo, ColorMisc, ColorDawn, ColorSilver,
	ColorWhite, ColorDark,
}

// Variant selects a surface treatment for a component.
type Variant string

const (
	VariantBase        Variant = "base"
	VariantDefault     Variant = "default"
	VariantOutline     Variant = "outline"
	VariantShadow      Variant = "shadow"
	VariantBordered    Variant = "bordered"
	VariantGradient    Variant = "gradient"
	VariantTransparent Variant = "transparent"

	// List-only variants. Separated lists drop the shared dividers and
	// give each item its own bordered surface.
	VariantDefaultSeparated  Variant = "default_separated"
	VariantOutlineSeparated  Variant = "outline_separated"
	VariantBorderedSeparated Variant = "bordered_separated"
)

// AllVariants lists the surface variants every component family supports.
var AllVariants = []Variant{
	VariantBase, VariantDefault, VariantOutline, VariantShadow,
	VariantBordered, VariantGradient, VariantTransparent,
}

// AllListVariants lists the variants the List component accepts.
var AllListVariants = []Variant{
	VariantDefault, VariantOutline, VariantBordered, VariantTransparent,
	VariantDefaultSeparated, VariantOutlineSeparated, VariantBorderedSeparated,
}

// Separated reports whether the variant renders list items as individual
// bordered surfaces instead of a divided block.
func (v Variant) Separated() bool {
	return strings.HasSuffix(string(v), "_separated")
}

// Size is the shared sizing scale.
type Size string

const (
	SizeExtraSmall Size = "extra_small"
	SizeSmall      Size = "small"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeExtraLarge Size = "extra_large"
)

// AllSizes lists the sizing steps from smallest to largest.
var AllSizes = []Size{SizeExtraSmall, SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge}

// Rounded selects a corner radius.
type Rounded string

const (
	RoundedNone       Rounded = "none"
	RoundedExtraSmall Rounded = "extra_small"
	RoundedSmall      Rounded = "small"
	RoundedMedium     Rounded = "medium"
	RoundedLarge      Rounded = "large"
	RoundedExtraLarge Rounded = "extra_large"
	RoundedFull       Rounded = "full"
)

// Border selects a border width.
type Border string

const (
	BorderNone       Border = "none"
	BorderExtraSmall Border = "extra_small"
	BorderSmall      Border = "small"
	BorderMedium     Border = "medium"
	BorderLarge      Border = "large"
	BorderExtraLarge Border = "extra_large"
)

// Padding selects inner spacing.
type Padding string

const (
	PaddingNone       Padding = "none"
	PaddingExtraSmall Padding = "extra_small"
	PaddingSmall      Padding = "small"
	PaddingMedium     Padding = "medium"
	PaddingLarge      Padding = "large"
	PaddingExtraLarge Padding = "extra_large"
)

// Space selects the gap between stacked children.
type Space string

const (
	SpaceNone       Space = "none"
	SpaceExtraSmall Space = "extra_small"
	SpaceSmall      Space = "small"
	SpaceMedium     Space = "medium"
	SpaceLarge      Space = "large"
	SpaceExtraLarge Space = "extra_large"
)

// Floating is the floating-label placement for input fields.
type Floating string

const (
	FloatingNone  Floating = "none"
	FloatingInner Floating = "inner"
	FloatingOuter Floating = "outer"
)

// Position places a floating element relative to its trigger.
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionLeft   Position = "left"
	PositionRight  Position = "right"
)

// Corner anchors a speed dial to a corner of its container.
type Corner string

const (
	CornerTopStart    Corner = "top-start"
	CornerTopEnd      Corner = "top-end"
	CornerBottomStart Corner = "bottom-start"
	CornerBottomEnd   Corner = "bottom-end"
)
