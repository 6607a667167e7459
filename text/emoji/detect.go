package emoji

// IsEmoji reports whether r can appear in an emoji, either as a pictograph
// or as a sequence component.
func IsEmoji(r rune) bool {
	return isEmojiPresentation(r) || isEmojiComponent(r) || isTextPresentationEmoji(r)
}

// IsEmojiPresentation reports whether r is shown as an emoji without a
// variation selector.
func IsEmojiPresentation(r rune) bool {
	return isEmojiPresentation(r) || isDefaultEmojiBMP(r)
}

// IsEmojiModifier reports whether r is a Fitzpatrick skin tone modifier.
func IsEmojiModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

// IsZWJ reports whether r is the zero width joiner.
func IsZWJ(r rune) bool {
	return r == zwj
}

// IsRegionalIndicator reports whether r is one of the 26 flag letters.
func IsRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

// IsVariationSelector reports whether r is U+FE0E or U+FE0F.
func IsVariationSelector(r rune) bool {
	return r == vs15 || r == vs16
}

// IsTextPresentation reports whether r is the text variation selector.
func IsTextPresentation(r rune) bool {
	return r == vs15
}

// IsEmojiVariation reports whether r is the emoji variation selector.
func IsEmojiVariation(r rune) bool {
	return r == vs16
}

// IsKeycapBase reports whether r can start a keycap sequence.
func IsKeycapBase(r rune) bool {
	return (r >= '0' && r <= '9') || r == '#' || r == '*'
}

// IsCombiningEnclosingKeycap reports whether r is U+20E3.
func IsCombiningEnclosingKeycap(r rune) bool {
	return r == 0x20E3
}

// IsTagCharacter reports whether r is a subdivision flag tag.
func IsTagCharacter(r rune) bool {
	return r >= 0xE0020 && r <= 0xE007E
}

// IsCancelTag reports whether r terminates a tag sequence.
func IsCancelTag(r rune) bool {
	return r == 0xE007F
}

// IsBlackFlag reports whether r is the base of a subdivision flag.
func IsBlackFlag(r rune) bool {
	return r == 0x1F3F4
}

const (
	zwj  = 0x200D
	vs15 = 0xFE0E
	vs16 = 0xFE0F
)

func isEmojiBase(r rune) bool {
	return isEmojiPresentation(r) || isTextPresentationEmoji(r)
}

func isEmojiOrEmojiComponent(r rune) bool {
	return isEmojiPresentation(r) || isEmojiComponent(r) || isTextPresentationEmoji(r)
}

func isEmojiComponent(r rune) bool {
	switch {
	case IsEmojiModifier(r), IsRegionalIndicator(r):
		return true
	case r >= 0xE0020 && r <= 0xE007F:
		return true
	case r == zwj, r == vs15, r == vs16, r == 0x20E3:
		return true
	}
	return false
}

// isEmojiPresentation covers the supplementary-plane pictograph blocks.
func isEmojiPresentation(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F64F: // pictographs, emoticons
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // transport
		return true
	case r >= 0x1F900 && r <= 0x1FAFF: // supplemental, extended-A/B
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	case r == 0x1F004 || r == 0x1F0CF: // mahjong red dragon, joker
		return true
	case r >= 0x1F170 && r <= 0x1F251: // enclosed alphanumerics and ideographs
		return true
	}
	return false
}

// isDefaultEmojiBMP lists the BMP characters whose default presentation is
// emoji. Everything else in the BMP needs U+FE0F to become an emoji.
func isDefaultEmojiBMP(r rune) bool {
	switch r {
	case 0x231A, 0x231B, 0x23E9, 0x23EA, 0x23EB, 0x23EC, 0x23F0, 0x23F3,
		0x25FD, 0x25FE, 0x2614, 0x2615, 0x267F, 0x2693, 0x26A1, 0x26AA,
		0x26AB, 0x26BD, 0x26BE, 0x26C4, 0x26C5, 0x26CE, 0x26D4, 0x26EA,
		0x26F2, 0x26F3, 0x26F5, 0x26FA, 0x26FD, 0x2705, 0x270A, 0x270B,
		0x2728, 0x274C, 0x274E, 0x2753, 0x2754, 0x2755, 0x2757, 0x2795,
		0x2796, 0x2797, 0x27B0, 0x27BF, 0x2B1B, 0x2B1C, 0x2B50, 0x2B55:
		return true
	}
	return r >= 0x2648 && r <= 0x2653 // zodiac
}

// isTextPresentationEmoji reports characters that are emoji but render as
// text unless followed by U+FE0F.
func isTextPresentationEmoji(r rune) bool {
	switch {
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r >= 0x2194 && r <= 0x2199, r == 0x21A9, r == 0x21AA:
		return true
	case r == 0x203C, r == 0x2049, r == 0x2122, r == 0x2139, r == 0x24C2:
		return true
	case r >= 0x231A && r <= 0x23FA: // misc technical
		return true
	case r == 0x25AA, r == 0x25AB, r == 0x25B6, r == 0x25C0:
		return true
	case r >= 0x25FB && r <= 0x25FE:
		return true
	case r == 0x2934, r == 0x2935:
		return true
	case r >= 0x2B05 && r <= 0x2B07, r == 0x2B1B, r == 0x2B1C, r == 0x2B50, r == 0x2B55:
		return true
	case r == 0x3030, r == 0x303D, r == 0x3297, r == 0x3299:
		return true
	case r == 0x00A9, r == 0x00AE:
		return true
	}
	return false
}
