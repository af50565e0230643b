package ui

// Scale lookups. Unset values produce no class; unrecognized raw strings
// pass through verbatim like colors do in the resolver.

func RoundedClass(r Rounded) string {
	switch r {
	case "":
		return ""
	case RoundedNone:
		return "rounded-none"
	case RoundedExtraSmall:
		return "rounded-sm"
	case RoundedSmall:
		return "rounded"
	case RoundedMedium:
		return "rounded-md"
	case RoundedLarge:
		return "rounded-lg"
	case RoundedExtraLarge:
		return "rounded-xl"
	case RoundedFull:
		return "rounded-full"
	default:
		return string(r)
	}
}

func BorderClass(w Border) string {
	switch w {
	case "":
		return ""
	case BorderNone:
		return "border-0"
	case BorderExtraSmall:
		return "border"
	case BorderSmall:
		return "border-2"
	case BorderMedium:
		return "border-[3px]"
	case BorderLarge:
		return "border-4"
	case BorderExtraLarge:
		return "border-[5px]"
	default:
		return string(w)
	}
}

func PaddingClass(p Padding) string {
	switch p {
	case "":
		return ""
	case PaddingNone:
		return "p-0"
	case PaddingExtraSmall:
		return "p-1"
	case PaddingSmall:
		return "p-2"
	case PaddingMedium:
		return "p-3"
	case PaddingLarge:
		return "p-4"
	case PaddingExtraLarge:
		return "p-5"
	default:
		return string(p)
	}
}

func SpaceClass(s Space) string {
	switch s {
	case "":
		return ""
	case SpaceNone:
		return "space-y-0"
	case SpaceExtraSmall:
		return "space-y-1"
	case SpaceSmall:
		return "space-y-2"
	case SpaceMedium:
		return "space-y-3"
	case SpaceLarge:
		return "space-y-4"
	case SpaceExtraLarge:
		return "space-y-5"
	default:
		return string(s)
	}
}

func SizeClass(s Size) string {
	switch s {
	case "":
		return ""
	case SizeExtraSmall:
		return "text-xs"
	case SizeSmall:
		return "text-sm"
	case SizeMedium:
		return "text-base"
	case SizeLarge:
		return "text-lg"
	case SizeExtraLarge:
		return "text-xl"
	default:
		return string(s)
	}
}
