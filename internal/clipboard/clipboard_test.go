package clipboard

import (
	"image"
	"testing"
)

func TestRectsRoundTrip(t *testing.T) {
	in := []image.Rectangle{image.Rect(0, 0, 16, 16), image.Rect(32, 8, 40, 24)}
	text := FormatRects(in)
	if text != "0 0 16 16\n32 8 8 16\n" {
		t.Fatalf("text = %q", text)
	}
	out, err := ParseRects(text)
	if err != nil {
		t.Fatalf("ParseRects: %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Fatalf("rects = %v", out)
	}
}

func TestParseRectsAcceptsCommas(t *testing.T) {
	out, err := ParseRects("\n4, 4, 8, 2\n\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0] != image.Rect(4, 4, 12, 6) {
		t.Fatalf("rects = %v", out)
	}
}

func TestParseRectsErrors(t *testing.T) {
	for _, in := range []string{"", "1 2 3", "a b c d", "0 0 0 5"} {
		if _, err := ParseRects(in); err == nil {
			t.Errorf("ParseRects(%q) succeeded", in)
		}
	}
}
