package emoji

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScan(t *testing.T) {
	type span struct {
		Kind Kind
		Text string
	}
	tests := []struct {
		name string
		in   string
		want []span
	}{
		{"empty", "", nil},
		{"plain", "print(x)", []span{{KindText, "print(x)"}}},
		{"trailing emoji", "ship it 🚀", []span{{KindText, "ship it "}, {KindEmoji, "🚀"}}},
		{"adjacent emoji stay separate", "🎉🎉", []span{{KindEmoji, "🎉"}, {KindEmoji, "🎉"}}},
		{"zwj family", "a👨‍👩‍👧b", []span{{KindText, "a"}, {KindEmoji, "👨‍👩‍👧"}, {KindText, "b"}}},
		{"skin tone", "👍🏽!", []span{{KindEmoji, "👍🏽"}, {KindText, "!"}}},
		{"flag", "🇺🇸", []span{{KindEmoji, "🇺🇸"}}},
		{"keycap", "1️⃣ 2", []span{{KindEmoji, "1️⃣"}, {KindText, " 2"}}},
		{"heart with vs16", "❤️", []span{{KindEmoji, "❤️"}}},
		{"bare heart is text", "❤", []span{{KindText, "❤"}}},
		{"copyright is text", "© 2024", []span{{KindText, "© 2024"}}},
		{"combining accent is text", "café", []span{{KindText, "café"}}},
		{"default emoji in bmp", "✅ ok", []span{{KindEmoji, "✅"}, {KindText, " ok"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []span
			for _, sp := range Scan(tt.in) {
				got = append(got, span{sp.Kind, sp.Text})
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Scan(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestScanOffsetsCoverInput(t *testing.T) {
	in := "x := \"héllo 🌍\" // 👩🏾‍💻 done 🏴󠁧󠁢󠁳󠁣󠁴󠁿"
	var b strings.Builder
	prevEnd := 0
	for _, sp := range Scan(in) {
		if sp.Start != prevEnd {
			t.Fatalf("span %q starts at %d, previous ended at %d", sp.Text, sp.Start, prevEnd)
		}
		if in[sp.Start:sp.End] != sp.Text {
			t.Errorf("span %q does not match offsets [%d:%d]", sp.Text, sp.Start, sp.End)
		}
		if (sp.Kind == KindEmoji) != (sp.Runes != nil) {
			t.Errorf("span %q: kind %v with runes %v", sp.Text, sp.Kind, sp.Runes)
		}
		prevEnd = sp.End
		b.WriteString(sp.Text)
	}
	if b.String() != in {
		t.Errorf("spans join to %q, want %q", b.String(), in)
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"🚀", "1f680"},
		{"❤️", "2764"},
		{"1️⃣", "31-20e3"},
		{"🇺🇸", "1f1fa-1f1f8"},
		{"👍🏽", "1f44d-1f3fd"},
		{"👨‍👩‍👧", "1f468-200d-1f469-200d-1f467"},
		{"🏳️‍🌈", "1f3f3-fe0f-200d-1f308"},
	}
	for _, tt := range tests {
		if got := Key([]rune(tt.in)); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHasEmoji(t *testing.T) {
	if HasEmoji("return nil") {
		t.Error("HasEmoji(code) = true")
	}
	if !HasEmoji("// TODO 🔥") {
		t.Error("HasEmoji(comment with emoji) = false")
	}
}
