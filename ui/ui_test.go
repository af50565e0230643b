package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleLookups(t *testing.T) {
	assert.Equal(t, "rounded-full", RoundedClass(RoundedFull))
	assert.Equal(t, "rounded-[22px]", RoundedClass("rounded-[22px]"))
	assert.Equal(t, "", RoundedClass(""))
	assert.Equal(t, "border-2", BorderClass(BorderSmall))
	assert.Equal(t, "p-4", PaddingClass(PaddingLarge))
	assert.Equal(t, "space-y-3", SpaceClass(SpaceMedium))
	assert.Equal(t, "text-sm", SizeClass(SizeSmall))
	assert.Equal(t, "text-[15px]", SizeClass("text-[15px]"))
}

func TestEnsureID(t *testing.T) {
	assert.Equal(t, "keep-me", EnsureID("keep-me", "acc"))
	id := EnsureID("", "acc")
	assert.True(t, strings.HasPrefix(id, "acc-"))
	assert.NotEqual(t, id, EnsureID("", "acc"))
}

func TestAttrSerialization(t *testing.T) {
	assert.Equal(t, "true", BoolAttr(true))
	assert.Equal(t, "false", BoolAttr(false))
	assert.Equal(t, "a,b", JoinIDs([]string{"a", "b"}))
	assert.Equal(t, "", JoinIDs(nil))
}

func TestClasses(t *testing.T) {
	assert.Equal(t, "a b", Classes("a", "", "b"))
	assert.Equal(t, "x", ClassIf(true, "x"))
	assert.Equal(t, "", ClassIf(false, "x"))
	assert.Equal(t, "bg-primary-500 text-white", JoinTokens([]string{"bg-primary-500", "text-white"}))
}

func TestSeparatedVariants(t *testing.T) {
	assert.True(t, VariantOutlineSeparated.Separated())
	assert.False(t, VariantOutline.Separated())
}
