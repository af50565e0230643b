package ui

// Token tables for the variant resolver. Each entry is a fixed list of
// utility classes covering background, text, border, and their dark-mode
// counterparts. The tables are keyed by variant then color; lookups that
// miss fall through to the verbatim pass-through in Resolve.
//
// The ten palette colors share a shade pattern per variant, so their rows
// are built by the small helpers below. White and dark are literal colors
// and carry identity dark-mode counterparts to keep the pairing uniform.

func baseTokens(c Color) []string {
	n := string(c)
	return []string{
		"bg-white", "text-" + n + "-700", "border-" + n + "-200",
		"dark:bg-[#18181b]", "dark:text-" + n + "-300", "dark:border-" + n + "-800",
	}
}

func solidTokens(c Color) []string {
	n := string(c)
	return []string{
		"bg-" + n + "-500", "text-white",
		"dark:bg-" + n + "-600", "dark:text-white",
	}
}

func outlineTokens(c Color) []string {
	n := string(c)
	return []string{
		"bg-transparent", "text-" + n + "-600", "border-" + n + "-600",
		"dark:bg-transparent", "dark:text-" + n + "-400", "dark:border-" + n + "-400",
	}
}

func shadowTokens(c Color) []string {
	n := string(c)
	return []string{
		"bg-" + n + "-500", "text-white", "shadow-md", "shadow-" + n + "-500/30",
		"dark:bg-" + n + "-600", "dark:text-white", "dark:shadow-" + n + "-900/40",
	}
}

func borderedTokens(c Color) []string {
	n := string(c)
	return []string{
		"bg-" + n + "-50", "text-" + n + "-700", "border-" + n + "-300",
		"dark:bg-" + n + "-950", "dark:text-" + n + "-200", "dark:border-" + n + "-800",
	}
}

func gradientTokens(c Color) []string {
	n := string(c)
	return []string{
		"bg-gradient-to-br", "from-" + n + "-400", "to-" + n + "-600", "text-white",
		"dark:bg-gradient-to-br", "dark:from-" + n + "-500", "dark:to-" + n + "-700", "dark:text-white",
	}
}

func transparentTokens(c Color) []string {
	n := string(c)
	return []string{
		"bg-transparent", "text-" + n + "-600",
		"dark:bg-transparent", "dark:text-" + n + "-400",
	}
}

var surfaceTokens = map[Variant]map[Color][]string{
	VariantBase: {
		ColorNatural:   baseTokens(ColorNatural),
		ColorPrimary:   baseTokens(ColorPrimary),
		ColorSecondary: baseTokens(ColorSecondary),
		ColorSuccess:   baseTokens(ColorSuccess),
		ColorWarning:   baseTokens(ColorWarning),
		ColorDanger:    baseTokens(ColorDanger),
		ColorInfo:      baseTokens(ColorInfo),
		ColorMisc:      baseTokens(ColorMisc),
		ColorDawn:      baseTokens(ColorDawn),
		ColorSilver:    baseTokens(ColorSilver),
		ColorWhite: {
			"bg-white", "text-[#3e3e3e]", "border-[#dadada]",
			"dark:bg-white", "dark:text-[#3e3e3e]", "dark:border-[#dadada]",
		},
		ColorDark: {
			"bg-[#282828]", "text-white", "border-[#727272]",
			"dark:bg-[#282828]", "dark:text-white", "dark:border-[#727272]",
		},
	},
	VariantDefault: {
		ColorNatural:   solidTokens(ColorNatural),
		ColorPrimary:   solidTokens(ColorPrimary),
		ColorSecondary: solidTokens(ColorSecondary),
		ColorSuccess:   solidTokens(ColorSuccess),
		ColorWarning:   solidTokens(ColorWarning),
		ColorDanger:    solidTokens(ColorDanger),
		ColorInfo:      solidTokens(ColorInfo),
		ColorMisc:      solidTokens(ColorMisc),
		ColorDawn:      solidTokens(ColorDawn),
		ColorSilver:    solidTokens(ColorSilver),
		ColorWhite: {
			"bg-white", "text-[#3e3e3e]",
			"dark:bg-white", "dark:text-[#3e3e3e]",
		},
		ColorDark: {
			"bg-[#282828]", "text-white",
			"dark:bg-[#282828]", "dark:text-white",
		},
	},
	VariantOutline: {
		ColorNatural:   outlineTokens(ColorNatural),
		ColorPrimary:   outlineTokens(ColorPrimary),
		ColorSecondary: outlineTokens(ColorSecondary),
		ColorSuccess:   outlineTokens(ColorSuccess),
		ColorWarning:   outlineTokens(ColorWarning),
		ColorDanger:    outlineTokens(ColorDanger),
		ColorInfo:      outlineTokens(ColorInfo),
		ColorMisc:      outlineTokens(ColorMisc),
		ColorDawn:      outlineTokens(ColorDawn),
		ColorSilver:    outlineTokens(ColorSilver),
		ColorWhite: {
			"bg-transparent", "text-white", "border-white",
			"dark:bg-transparent", "dark:text-white", "dark:border-white",
		},
		ColorDark: {
			"bg-transparent", "text-[#282828]", "border-[#282828]",
			"dark:bg-transparent", "dark:text-[#a1a1aa]", "dark:border-[#a1a1aa]",
		},
	},
	VariantShadow: {
		ColorNatural:   shadowTokens(ColorNatural),
		ColorPrimary:   shadowTokens(ColorPrimary),
		ColorSecondary: shadowTokens(ColorSecondary),
		ColorSuccess:   shadowTokens(ColorSuccess),
		ColorWarning:   shadowTokens(ColorWarning),
		ColorDanger:    shadowTokens(ColorDanger),
		ColorInfo:      shadowTokens(ColorInfo),
		ColorMisc:      shadowTokens(ColorMisc),
		ColorDawn:      shadowTokens(ColorDawn),
		ColorSilver:    shadowTokens(ColorSilver),
		ColorWhite: {
			"bg-white", "text-[#3e3e3e]", "shadow-md", "shadow-black/20",
			"dark:bg-white", "dark:text-[#3e3e3e]", "dark:shadow-black/30",
		},
		ColorDark: {
			"bg-[#282828]", "text-white", "shadow-md", "shadow-black/30",
			"dark:bg-[#282828]", "dark:text-white", "dark:shadow-black/50",
		},
	},
	VariantBordered: {
		ColorNatural:   borderedTokens(ColorNatural),
		ColorPrimary:   borderedTokens(ColorPrimary),
		ColorSecondary: borderedTokens(ColorSecondary),
		ColorSuccess:   borderedTokens(ColorSuccess),
		ColorWarning:   borderedTokens(ColorWarning),
		ColorDanger:    borderedTokens(ColorDanger),
		ColorInfo:      borderedTokens(ColorInfo),
		ColorMisc:      borderedTokens(ColorMisc),
		ColorDawn:      borderedTokens(ColorDawn),
		ColorSilver:    borderedTokens(ColorSilver),
		ColorWhite: {
			"bg-white", "text-[#3e3e3e]", "border-[#dadada]",
			"dark:bg-white", "dark:text-[#3e3e3e]", "dark:border-[#dadada]",
		},
		ColorDark: {
			"bg-[#282828]", "text-white", "border-[#727272]",
			"dark:bg-[#282828]", "dark:text-white", "dark:border-[#727272]",
		},
	},
	VariantGradient: {
		ColorNatural:   gradientTokens(ColorNatural),
		ColorPrimary:   gradientTokens(ColorPrimary),
		ColorSecondary: gradientTokens(ColorSecondary),
		ColorSuccess:   gradientTokens(ColorSuccess),
		ColorWarning:   gradientTokens(ColorWarning),
		ColorDanger:    gradientTokens(ColorDanger),
		ColorInfo:      gradientTokens(ColorInfo),
		ColorMisc:      gradientTokens(ColorMisc),
		ColorDawn:      gradientTokens(ColorDawn),
		ColorSilver:    gradientTokens(ColorSilver),
		ColorWhite: {
			"bg-gradient-to-br", "from-white", "to-[#e9e9e9]", "text-[#3e3e3e]",
			"dark:bg-gradient-to-br", "dark:from-white", "dark:to-[#e9e9e9]", "dark:text-[#3e3e3e]",
		},
		ColorDark: {
			"bg-gradient-to-br", "from-[#3a3a3a]", "to-[#1c1c1c]", "text-white",
			"dark:bg-gradient-to-br", "dark:from-[#3a3a3a]", "dark:to-[#1c1c1c]", "dark:text-white",
		},
	},
	VariantTransparent: {
		ColorNatural:   transparentTokens(ColorNatural),
		ColorPrimary:   transparentTokens(ColorPrimary),
		ColorSecondary: transparentTokens(ColorSecondary),
		ColorSuccess:   transparentTokens(ColorSuccess),
		ColorWarning:   transparentTokens(ColorWarning),
		ColorDanger:    transparentTokens(ColorDanger),
		ColorInfo:      transparentTokens(ColorInfo),
		ColorMisc:      transparentTokens(ColorMisc),
		ColorDawn:      transparentTokens(ColorDawn),
		ColorSilver:    transparentTokens(ColorSilver),
		ColorWhite: {
			"bg-transparent", "text-white",
			"dark:bg-transparent", "dark:text-white",
		},
		ColorDark: {
			"bg-transparent", "text-[#282828]",
			"dark:bg-transparent", "dark:text-[#a1a1aa]",
		},
	},
}

func listBlockTokens(c Color, border string) []string {
	n := string(c)
	return []string{
		"divide-y", "divide-" + n + "-200", "text-" + n + "-700",
		"dark:divide-" + n + "-800", "dark:text-" + n + "-300",
		"border-" + n + "-" + border, "dark:border-" + n + "-800",
	}
}

func listSeparatedTokens(c Color) []string {
	n := string(c)
	return []string{"text-" + n + "-700", "dark:text-" + n + "-300"}
}

func listItemTokens(c Color) []string {
	n := string(c)
	return []string{
		"bg-" + n + "-50", "border-" + n + "-200",
		"dark:bg-" + n + "-950", "dark:border-" + n + "-800",
	}
}

var listWhiteBlock = []string{
	"divide-y", "divide-[#dadada]", "text-[#3e3e3e]", "border-[#dadada]",
	"dark:divide-[#dadada]", "dark:text-[#3e3e3e]", "dark:border-[#dadada]",
}

var listDarkBlock = []string{
	"divide-y", "divide-[#727272]", "text-white", "border-[#727272]",
	"dark:divide-[#727272]", "dark:text-white", "dark:border-[#727272]",
}

func listTable() map[Variant]map[Color][]string {
	t := map[Variant]map[Color][]string{
		VariantDefault:           {},
		VariantOutline:           {},
		VariantBordered:          {},
		VariantTransparent:       {},
		VariantDefaultSeparated:  {},
		VariantOutlineSeparated:  {},
		VariantBorderedSeparated: {},
	}
	palette := []Color{
		ColorNatural, ColorPrimary, ColorSecondary, ColorSuccess, ColorWarning,
		ColorDanger, ColorInfo, ColorMisc, ColorDawn, ColorSilver,
	}
	for _, c := range palette {
		t[VariantDefault][c] = listBlockTokens(c, "200")
		t[VariantOutline][c] = listBlockTokens(c, "600")
		t[VariantBordered][c] = listBlockTokens(c, "300")
		t[VariantTransparent][c] = listSeparatedTokens(c)
		t[VariantDefaultSeparated][c] = listSeparatedTokens(c)
		t[VariantOutlineSeparated][c] = listSeparatedTokens(c)
		t[VariantBorderedSeparated][c] = listSeparatedTokens(c)
	}
	for _, v := range []Variant{VariantDefault, VariantOutline, VariantBordered} {
		t[v][ColorWhite] = listWhiteBlock
		t[v][ColorDark] = listDarkBlock
	}
	for _, v := range []Variant{VariantTransparent, VariantDefaultSeparated, VariantOutlineSeparated, VariantBorderedSeparated} {
		t[v][ColorWhite] = []string{"text-[#3e3e3e]", "dark:text-[#3e3e3e]"}
		t[v][ColorDark] = []string{"text-white", "dark:text-white"}
	}
	return t
}

var listTokens = listTable()

func fieldTokens(c Color) []string {
	n := string(c)
	return []string{
		"border-" + n + "-400", "text-" + n + "-900", "focus-within:border-" + n + "-600",
		"dark:border-" + n + "-600", "dark:text-" + n + "-100", "dark:focus-within:border-" + n + "-400",
	}
}

func fieldFloatTokens(c Color) []string {
	n := string(c)
	return []string{"peer-focus:text-" + n + "-600", "dark:peer-focus:text-" + n + "-400"}
}

var fieldBase = map[Color][]string{
	ColorNatural:   fieldTokens(ColorNatural),
	ColorPrimary:   fieldTokens(ColorPrimary),
	ColorSecondary: fieldTokens(ColorSecondary),
	ColorSuccess:   fieldTokens(ColorSuccess),
	ColorWarning:   fieldTokens(ColorWarning),
	ColorDanger:    fieldTokens(ColorDanger),
	ColorInfo:      fieldTokens(ColorInfo),
	ColorMisc:      fieldTokens(ColorMisc),
	ColorDawn:      fieldTokens(ColorDawn),
	ColorSilver:    fieldTokens(ColorSilver),
	ColorWhite: {
		"border-[#dadada]", "text-[#3e3e3e]", "focus-within:border-[#3e3e3e]",
		"dark:border-[#dadada]", "dark:text-[#3e3e3e]", "dark:focus-within:border-[#3e3e3e]",
	},
	ColorDark: {
		"border-[#282828]", "text-[#282828]", "focus-within:border-[#050505]",
		"dark:border-[#727272]", "dark:text-white", "dark:focus-within:border-[#a1a1aa]",
	},
}

var fieldFloat = map[Color][]string{
	ColorNatural:   fieldFloatTokens(ColorNatural),
	ColorPrimary:   fieldFloatTokens(ColorPrimary),
	ColorSecondary: fieldFloatTokens(ColorSecondary),
	ColorSuccess:   fieldFloatTokens(ColorSuccess),
	ColorWarning:   fieldFloatTokens(ColorWarning),
	ColorDanger:    fieldFloatTokens(ColorDanger),
	ColorInfo:      fieldFloatTokens(ColorInfo),
	ColorMisc:      fieldFloatTokens(ColorMisc),
	ColorDawn:      fieldFloatTokens(ColorDawn),
	ColorSilver:    fieldFloatTokens(ColorSilver),
	ColorWhite:     {"peer-focus:text-[#3e3e3e]", "dark:peer-focus:text-[#3e3e3e]"},
	ColorDark:      {"peer-focus:text-[#282828]", "dark:peer-focus:text-white"},
}
