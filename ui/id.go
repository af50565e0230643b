package ui

import (
	"strings"

	"github.com/google/uuid"
)

// EnsureID returns id unchanged when set, otherwise synthesizes a
// prefixed id so aria wiring and behavior targets always have something
// to point at.
func EnsureID(id, prefix string) string {
	if id != "" {
		return id
	}
	return prefix + "-" + uuid.New().String()[:8]
}

// BoolAttr serializes a flag for the data-* contract.
func BoolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// JoinIDs serializes an id list for the data-* contract: comma-joined,
// no spaces.
func JoinIDs(ids []string) string {
	return strings.Join(ids, ",")
}
