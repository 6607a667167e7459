package layout

import (
	"errors"
	"image"
	"testing"
)

func testOptions() Options {
	return Options{
		Width:        800,
		Padding:      32,
		OuterPadding: 64,
		FontSize:     16,
		ShowChrome:   true,
		Scale:        1,
	}
}

func TestComputeFormulas(t *testing.T) {
	m, err := Compute(10, testOptions())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	// lineHeight 24, contentH 240, windowH 240+64+36 = 340
	want := Metrics{
		Canvas:     Rect{W: 928, H: 468},
		Window:     Rect{X: 64, Y: 64, W: 800, H: 340},
		ChromeBar:  Rect{X: 64, Y: 64, W: 800, H: 36},
		Content:    Rect{X: 96, Y: 132, W: 736, H: 240},
		LineHeight: 24,
		Scale:      1,
		Lines:      10,
	}
	if m != want {
		t.Errorf("Compute(10) = %+v, want %+v", m, want)
	}
	if got := m.CanvasSize(); got != image.Pt(928, 468) {
		t.Errorf("CanvasSize() = %v, want (928,468)", got)
	}
}

func TestComputeInvariants(t *testing.T) {
	scales := []float64{1, 1.5, 2, 3}
	chrome := []bool{true, false}

	for lines := 0; lines <= 40; lines += 7 {
		for _, s := range scales {
			for _, c := range chrome {
				opts := testOptions()
				opts.Scale = s
				opts.ShowChrome = c

				m, err := Compute(lines, opts)
				if err != nil {
					t.Fatalf("Compute(%d, scale=%v) error = %v", lines, s, err)
				}

				outer := opts.OuterPadding * s
				if m.Canvas.W != m.Window.W+2*outer {
					t.Errorf("lines=%d scale=%v: canvas.W = %v, want %v", lines, s, m.Canvas.W, m.Window.W+2*outer)
				}
				if m.Canvas.H != m.Window.H+2*outer {
					t.Errorf("lines=%d scale=%v: canvas.H = %v, want %v", lines, s, m.Canvas.H, m.Window.H+2*outer)
				}
				if !m.Window.StrictlyIn(m.Canvas) {
					t.Errorf("lines=%d scale=%v: window %+v not strictly in canvas %+v", lines, s, m.Window, m.Canvas)
				}
				if lines > 0 && !m.Content.StrictlyIn(m.Window) {
					t.Errorf("lines=%d scale=%v: content %+v not strictly in window %+v", lines, s, m.Content, m.Window)
				}
				if !m.Content.In(m.Window) {
					t.Errorf("lines=%d scale=%v: content %+v escapes window %+v", lines, s, m.Content, m.Window)
				}
			}
		}
	}
}

func TestComputeScalesLinearly(t *testing.T) {
	base, err := Compute(12, testOptions())
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range []float64{2, 3, 4} {
		opts := testOptions()
		opts.Scale = s
		m, err := Compute(12, opts)
		if err != nil {
			t.Fatal(err)
		}

		pairs := []struct {
			name      string
			got, want Rect
		}{
			{"canvas", m.Canvas, base.Canvas.Scaled(s)},
			{"window", m.Window, base.Window.Scaled(s)},
			{"chrome", m.ChromeBar, base.ChromeBar.Scaled(s)},
			{"content", m.Content, base.Content.Scaled(s)},
		}
		for _, p := range pairs {
			if p.got != p.want {
				t.Errorf("scale %v: %s = %+v, want %+v", s, p.name, p.got, p.want)
			}
		}
		if m.LineHeight != base.LineHeight*s {
			t.Errorf("scale %v: LineHeight = %v, want %v", s, m.LineHeight, base.LineHeight*s)
		}
	}
}

func TestComputeEmptyCode(t *testing.T) {
	m, err := Compute(0, testOptions())
	if err != nil {
		t.Fatalf("Compute(0) error = %v", err)
	}
	if m.Content.H != 0 {
		t.Errorf("Content.H = %v, want 0", m.Content.H)
	}
	if m.Window.Empty() {
		t.Errorf("Window = %+v, want a drawable window", m.Window)
	}
	if m.Window.H != 2*32+ChromeBarHeight {
		t.Errorf("Window.H = %v, want %v", m.Window.H, 2*32+ChromeBarHeight)
	}
}

func TestComputeWithoutChrome(t *testing.T) {
	opts := testOptions()
	opts.ShowChrome = false
	m, err := Compute(3, opts)
	if err != nil {
		t.Fatal(err)
	}
	if m.ChromeBar != (Rect{}) {
		t.Errorf("ChromeBar = %+v, want zero", m.ChromeBar)
	}
	if m.Content.Y != opts.OuterPadding+opts.Padding {
		t.Errorf("Content.Y = %v, want %v", m.Content.Y, opts.OuterPadding+opts.Padding)
	}
}

func TestComputeCustomLineHeight(t *testing.T) {
	opts := testOptions()
	opts.LineHeight = 2
	m, err := Compute(4, opts)
	if err != nil {
		t.Fatal(err)
	}
	if m.LineHeight != 32 {
		t.Errorf("LineHeight = %v, want 32", m.LineHeight)
	}
	if m.Content.H != 128 {
		t.Errorf("Content.H = %v, want 128", m.Content.H)
	}
}

func TestComputeInvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		lines  int
		mutate func(*Options)
		field  string
	}{
		{"zero font size", 1, func(o *Options) { o.FontSize = 0 }, "FontSize"},
		{"negative font size", 1, func(o *Options) { o.FontSize = -4 }, "FontSize"},
		{"scale below one", 1, func(o *Options) { o.Scale = 0.5 }, "Scale"},
		{"negative padding", 1, func(o *Options) { o.Padding = -1 }, "Padding"},
		{"negative outer padding", 1, func(o *Options) { o.OuterPadding = -1 }, "OuterPadding"},
		{"width too small", 1, func(o *Options) { o.Width = 64 }, "Width"},
		{"negative line height", 1, func(o *Options) { o.LineHeight = -1 }, "LineHeight"},
		{"negative lines", -1, func(*Options) {}, "lineCount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			tt.mutate(&opts)
			_, err := Compute(tt.lines, opts)

			var lerr *Error
			if !errors.As(err, &lerr) {
				t.Fatalf("Compute() error = %v, want *Error", err)
			}
			if lerr.Field != tt.field {
				t.Errorf("Error.Field = %q, want %q", lerr.Field, tt.field)
			}
		})
	}
}

func TestRectImage(t *testing.T) {
	r := Rect{X: 1.5, Y: 2.25, W: 10, H: 4.5}
	if got, want := r.Image(), image.Rect(1, 2, 12, 7); got != want {
		t.Errorf("Image() = %v, want %v", got, want)
	}
}
