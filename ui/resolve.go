package ui

// Resolve maps a variant and color to its surface token list. Lookups that
// miss the table return the color verbatim as a single token, so raw
// utility classes (or one-off hex colors) flow straight through to the
// class attribute. Resolution never fails.
func Resolve(v Variant, c Color) []string {
	if m, ok := surfaceTokens[v]; ok {
		if toks, ok := m[c]; ok {
			return toks
		}
	}
	return []string{string(c)}
}

// ResolveField returns the wrapper tokens for an input field. The
// peer-focus label pair is only present when a floating-label placement is
// active.
func ResolveField(c Color, f Floating) []string {
	base, ok := fieldBase[c]
	if !ok {
		return []string{string(c)}
	}
	if f == FloatingNone || f == "" {
		return base
	}
	out := make([]string, 0, len(base)+2)
	out = append(out, base...)
	out = append(out, fieldFloat[c]...)
	return out
}

// ResolveList returns the container tokens for a list. Hover tokens are
// appended only when the list is hoverable.
func ResolveList(v Variant, c Color, hoverable bool) []string {
	m, ok := listTokens[v]
	if !ok {
		return []string{string(c)}
	}
	toks, ok := m[c]
	if !ok {
		return []string{string(c)}
	}
	if !hoverable {
		return toks
	}
	out := make([]string, 0, len(toks)+2)
	out = append(out, toks...)
	out = append(out, listHoverTokens(c)...)
	return out
}

// ResolveListItem returns the per-item surface for separated list variants
// and nil for block variants, where items share the container surface.
func ResolveListItem(v Variant, c Color) []string {
	if !v.Separated() {
		return nil
	}
	switch c {
	case ColorWhite:
		return []string{"bg-white", "border-[#dadada]", "dark:bg-white", "dark:border-[#dadada]"}
	case ColorDark:
		return []string{"bg-[#282828]", "border-[#727272]", "dark:bg-[#282828]", "dark:border-[#727272]"}
	}
	if !Known(c) {
		return []string{string(c)}
	}
	return listItemTokens(c)
}

func listHoverTokens(c Color) []string {
	switch c {
	case ColorWhite:
		return []string{"[&>li]:hover:bg-[#f3f3f3]", "dark:[&>li]:hover:bg-[#f3f3f3]"}
	case ColorDark:
		return []string{"[&>li]:hover:bg-[#3a3a3a]", "dark:[&>li]:hover:bg-[#3a3a3a]"}
	}
	n := string(c)
	return []string{"[&>li]:hover:bg-" + n + "-100", "dark:[&>li]:hover:bg-" + n + "-900"}
}

// Known reports whether c is one of the declared palette colors. Callers
// building per-color classes outside the tables use it to decide between
// composing a class and passing the raw value through.
func Known(c Color) bool {
	_, ok := fieldBase[c]
	return ok
}
