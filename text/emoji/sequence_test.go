package emoji

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		in     []rune
		want   SequenceType
		wantOK bool
	}{
		{"empty", nil, 0, false},
		{"simple", []rune{0x1F600}, SequenceSimple, true},
		{"flag", []rune{0x1F1FA, 0x1F1F8}, SequenceFlag, true},
		{"lone regional indicator", []rune{0x1F1FA}, SequenceSimple, true},
		{"keycap", []rune{'#', 0xFE0F, 0x20E3}, SequenceKeycap, true},
		{"keycap without vs", []rune{'7', 0x20E3}, SequenceKeycap, true},
		{"digit", []rune{'7'}, 0, false},
		{"modified", []rune{0x1F44B, 0x1F3FB}, SequenceModified, true},
		{"presentation", []rune{0x2764, 0xFE0F}, SequencePresentation, true},
		{"text presentation", []rune{0x2764, 0xFE0E}, 0, false},
		{"text default", []rune{0x2764}, 0, false},
		{"zwj", []rune{0x1F469, 0x200D, 0x1F4BB}, SequenceZWJ, true},
		{"text default joined", []rune{0x2764, 0xFE0F, 0x200D, 0x1F525}, SequenceZWJ, true},
		{"tag", []rune{0x1F3F4, 0xE0067, 0xE0062, 0xE0073, 0xE0063, 0xE0074, 0xE007F}, SequenceTag, true},
		{"black flag", []rune{0x1F3F4}, SequenceSimple, true},
		{"letter", []rune{'a'}, 0, false},
		{"trailing junk", []rune{0x1F600, 'a'}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, ok := Classify(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("Classify(%U) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && seq.Type != tt.want {
				t.Errorf("Classify(%U) type = %v, want %v", tt.in, seq.Type, tt.want)
			}
		})
	}
}

func TestClassifyModifier(t *testing.T) {
	seq, ok := Classify([]rune{0x1F44D, 0x1F3FD})
	if !ok || seq.Modifier != 0x1F3FD {
		t.Errorf("Classify(thumbs up, medium) = %+v, %v", seq, ok)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		fn   func(rune) bool
		yes  []rune
		no   []rune
	}{
		{"IsEmoji", IsEmoji, []rune{0x1F600, 0x2764, 0x200D, 0x00A9}, []rune{'a', ' ', 0x4E2D}},
		{"IsEmojiPresentation", IsEmojiPresentation, []rune{0x1F680, 0x2705, 0x2B50}, []rune{0x2764, 0x00A9, 'x'}},
		{"IsEmojiModifier", IsEmojiModifier, []rune{0x1F3FB, 0x1F3FF}, []rune{0x1F3FA, 0x1F400}},
		{"IsRegionalIndicator", IsRegionalIndicator, []rune{0x1F1E6, 0x1F1FF}, []rune{0x1F1E5, 0x1F200}},
		{"IsKeycapBase", IsKeycapBase, []rune{'0', '9', '#', '*'}, []rune{'a', '+'}},
		{"IsTagCharacter", IsTagCharacter, []rune{0xE0020, 0xE007E}, []rune{0xE007F}},
	}
	for _, tt := range tests {
		for _, r := range tt.yes {
			if !tt.fn(r) {
				t.Errorf("%s(%U) = false", tt.name, r)
			}
		}
		for _, r := range tt.no {
			if tt.fn(r) {
				t.Errorf("%s(%U) = true", tt.name, r)
			}
		}
	}
}
