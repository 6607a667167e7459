package emoji

// SequenceType indicates the shape of an emoji sequence.
type SequenceType int

const (
	// SequenceSimple is a single pictograph.
	SequenceSimple SequenceType = iota

	// SequenceZWJ joins several emoji with U+200D (families, professions).
	SequenceZWJ

	// SequenceFlag is a pair of regional indicators.
	SequenceFlag

	// SequenceKeycap is a digit, # or * followed by U+20E3.
	SequenceKeycap

	// SequenceModified is a base followed by a skin tone modifier.
	SequenceModified

	// SequenceTag is a black flag followed by tags and a cancel tag.
	SequenceTag

	// SequencePresentation is a text-default character forced to emoji
	// with U+FE0F.
	SequencePresentation
)

var sequenceTypeNames = [...]string{
	SequenceSimple:       "Simple",
	SequenceZWJ:          "ZWJ",
	SequenceFlag:         "Flag",
	SequenceKeycap:       "Keycap",
	SequenceModified:     "Modified",
	SequenceTag:          "Tag",
	SequencePresentation: "Presentation",
}

func (t SequenceType) String() string {
	if t >= 0 && int(t) < len(sequenceTypeNames) {
		return sequenceTypeNames[t]
	}
	return "Unknown"
}

// Sequence is one emoji, possibly made of several code points.
type Sequence struct {
	Codepoints []rune
	Type       SequenceType

	// Modifier is the skin tone modifier of the base, or zero.
	Modifier rune
}

func (s Sequence) String() string {
	return string(s.Codepoints)
}

// Classify decides whether a grapheme cluster is an emoji. The whole
// cluster must form a single well-formed sequence, and text-default
// characters only count when they carry U+FE0F or join a larger sequence.
func Classify(runes []rune) (Sequence, bool) {
	seq, n := parseSequenceAt(runes)
	if n == 0 || n != len(runes) {
		return Sequence{}, false
	}
	if seq.Type == SequenceSimple && !IsEmojiPresentation(runes[0]) {
		return Sequence{}, false
	}
	return seq, true
}

// parseSequenceAt parses the longest emoji sequence at the start of runes
// and returns it with the number of runes consumed.
func parseSequenceAt(runes []rune) (Sequence, int) {
	if len(runes) == 0 {
		return Sequence{}, 0
	}
	r := runes[0]

	switch {
	case IsRegionalIndicator(r):
		if len(runes) >= 2 && IsRegionalIndicator(runes[1]) {
			return Sequence{Codepoints: runes[:2], Type: SequenceFlag}, 2
		}
		return Sequence{Codepoints: runes[:1], Type: SequenceSimple}, 1
	case IsBlackFlag(r):
		if seq, n := parseTagSequenceAt(runes); n > 0 {
			return seq, n
		}
	case IsKeycapBase(r):
		return parseKeycapSequenceAt(runes)
	}
	return parseExtendedSequenceAt(runes)
}

// parseTagSequenceAt parses BLACK_FLAG TAG+ CANCEL_TAG.
func parseTagSequenceAt(runes []rune) (Sequence, int) {
	i := 1
	for i < len(runes) && IsTagCharacter(runes[i]) {
		i++
	}
	if i == 1 || i >= len(runes) || !IsCancelTag(runes[i]) {
		return Sequence{}, 0
	}
	i++
	return Sequence{Codepoints: runes[:i], Type: SequenceTag}, i
}

// parseKeycapSequenceAt parses KEYCAP_BASE [FE0F] 20E3.
func parseKeycapSequenceAt(runes []rune) (Sequence, int) {
	i := 1
	if i < len(runes) && IsEmojiVariation(runes[i]) {
		i++
	}
	if i < len(runes) && IsCombiningEnclosingKeycap(runes[i]) {
		i++
		return Sequence{Codepoints: runes[:i], Type: SequenceKeycap}, i
	}
	return Sequence{}, 0
}

// parseExtendedSequenceAt parses BASE [VS] [MODIFIER] (ZWJ ELEMENT)*.
// Modifiers are accepted after any base: the grapheme segmenter has already
// grouped them, and the CDN rejects combinations it has no image for.
func parseExtendedSequenceAt(runes []rune) (Sequence, int) {
	if !isEmojiBase(runes[0]) {
		return Sequence{}, 0
	}

	i := 1
	typ := SequenceSimple
	var modifier rune

	if i < len(runes) && IsVariationSelector(runes[i]) {
		if IsTextPresentation(runes[i]) {
			return Sequence{}, 0
		}
		typ = SequencePresentation
		i++
	}
	if i < len(runes) && IsEmojiModifier(runes[i]) {
		modifier = runes[i]
		typ = SequenceModified
		i++
	}

	joined := false
	for i+1 < len(runes) && IsZWJ(runes[i]) {
		n := parseAfterZWJ(runes[i+1:])
		if n == 0 {
			break
		}
		i += 1 + n
		joined = true
	}
	if joined {
		typ = SequenceZWJ
	}

	return Sequence{Codepoints: runes[:i], Type: typ, Modifier: modifier}, i
}

func parseAfterZWJ(runes []rune) int {
	if len(runes) == 0 || !isEmojiOrEmojiComponent(runes[0]) {
		return 0
	}
	i := 1
	if i < len(runes) && IsVariationSelector(runes[i]) {
		if IsTextPresentation(runes[i]) {
			return 0
		}
		i++
	}
	if i < len(runes) && IsEmojiModifier(runes[i]) {
		i++
	}
	return i
}
