package ui

import "strings"

// JoinTokens flattens a resolved token list into a class attribute value.
func JoinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}

// Classes joins class fragments into one attribute value, skipping
// empties.
func Classes(fragments ...string) string {
	var b strings.Builder
	for _, f := range fragments {
		if f == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f)
	}
	return b.String()
}

// ClassIf returns class when cond holds, else the empty string.
func ClassIf(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
