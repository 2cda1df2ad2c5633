package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/spriteanim/internal/animation"
	"github.com/example/spriteanim/internal/geometry"
	"github.com/example/spriteanim/internal/theme"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	Fill(img, img.Bounds(), c)
	return img
}

func TestCheckerboardAnchoredAtRect(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	Checkerboard(dst, image.Rect(3, 3, 19, 19), 4, red, blue)
	if dst.RGBAAt(3, 3) != red || dst.RGBAAt(7, 3) != blue || dst.RGBAAt(7, 7) != red {
		t.Fatalf("pattern = %v %v %v", dst.RGBAAt(3, 3), dst.RGBAAt(7, 3), dst.RGBAAt(7, 7))
	}
	if dst.RGBAAt(1, 1).A != 0 {
		t.Fatal("painted outside rect")
	}
}

func TestRectOutline(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	Rect(dst, image.Rect(2, 2, 8, 8), red, 1)
	for _, p := range []image.Point{{2, 2}, {7, 2}, {7, 7}, {2, 7}, {5, 2}} {
		if dst.RGBAAt(p.X, p.Y) != red {
			t.Errorf("edge pixel %v not drawn", p)
		}
	}
	if dst.RGBAAt(5, 5).A != 0 {
		t.Fatal("interior painted")
	}
}

func TestDashedRectAlternates(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 4))
	DashedRect(dst, image.Rect(0, 0, 20, 4), 2, red, blue)
	if dst.RGBAAt(0, 0) != red || dst.RGBAAt(2, 0) != blue || dst.RGBAAt(4, 0) != red {
		t.Fatalf("dashes = %v %v %v", dst.RGBAAt(0, 0), dst.RGBAAt(2, 0), dst.RGBAAt(4, 0))
	}
}

func TestSheetScalesPixels(t *testing.T) {
	sheet := image.NewRGBA(image.Rect(0, 0, 4, 4))
	sheet.SetRGBA(1, 1, red)
	view := geometry.NewViewport(image.Pt(4, 4), image.Pt(8, 8))
	view.SetScale(2)
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	area := image.Rect(10, 10, 18, 18)
	Sheet(dst, area, sheet, view, theme.Default())
	for _, p := range []image.Point{{12, 12}, {13, 13}} {
		if dst.RGBAAt(p.X, p.Y) != red {
			t.Fatalf("pixel %v = %v, want red", p, dst.RGBAAt(p.X, p.Y))
		}
	}
	if dst.RGBAAt(14, 14) == red {
		t.Fatal("scaled pixel too large")
	}
	if dst.RGBAAt(5, 5).A != 0 {
		t.Fatal("drew outside area")
	}
}

func TestFramesMarksActive(t *testing.T) {
	th := theme.Default()
	p := animation.NewProject("sheet.png")
	seq := p.NewSequence("walk", true)
	a := animation.NewFrame(image.Rect(2, 2, 30, 30))
	b := animation.NewFrame(image.Rect(40, 2, 48, 10))
	seq.AddFrame(a)
	seq.AddFrame(b)
	_ = seq.SetActiveFrame(a)
	view := geometry.NewViewport(image.Pt(64, 64), image.Pt(64, 64))
	dst := image.NewRGBA(image.Rect(0, 0, 64, 64))
	outlines := Outlines(p)
	if len(outlines) != 2 || outlines[1].Kind != OutlineActive || outlines[1].Rect != a.Rect {
		t.Fatalf("outlines = %v", outlines)
	}
	Frames(dst, dst.Bounds(), outlines, view, th, OverlayOptions{HandleSize: 4, Handles: true})
	if dst.RGBAAt(10, 2) != th.FrameActive {
		t.Fatalf("active edge = %v", dst.RGBAAt(10, 2))
	}
	if dst.RGBAAt(44, 2) != th.FrameBorder {
		t.Fatalf("other edge = %v", dst.RGBAAt(44, 2))
	}
	// Handle boxes are drawn centred on the corners.
	if dst.RGBAAt(0, 0) != th.HandleBorder {
		t.Fatalf("handle border = %v", dst.RGBAAt(0, 0))
	}
}

func TestPreviewScaleAndShift(t *testing.T) {
	area := image.Rect(0, 0, 100, 60)
	if s := PreviewScale(area, image.Pt(10, 10), image.Point{}); s != 6 {
		t.Fatalf("scale = %d", s)
	}
	if s := PreviewScale(area, image.Pt(10, 10), image.Pt(0, 5)); s != 3 {
		t.Fatalf("scale with shift = %d", s)
	}
	if s := PreviewScale(image.Rect(0, 0, 4, 4), image.Pt(10, 10), image.Point{}); s != 1 {
		t.Fatalf("minimum scale = %d", s)
	}
	f := animation.NewFrame(image.Rect(0, 0, 10, 10))
	f.SetShift(image.Pt(2, -1))
	if r := PreviewRect(area, f, 2); r != image.Rect(44, 18, 64, 38) {
		t.Fatalf("rect = %v", r)
	}
}

func TestPreviewDrawsFrameAndGhost(t *testing.T) {
	th := theme.Default()
	sheet := solid(8, 4, red)
	Fill(sheet, image.Rect(4, 0, 8, 4), blue)
	cur := animation.NewFrame(image.Rect(0, 0, 4, 4))
	ghost := animation.NewFrame(image.Rect(4, 0, 8, 4))
	ghost.SetShift(image.Pt(4, 0))
	dst := image.NewRGBA(image.Rect(0, 0, 100, 40))
	Preview(dst, dst.Bounds(), sheet, cur, ghost, th, PreviewOptions{Ghost: true})
	if dst.RGBAAt(50, 20) != red {
		t.Fatalf("centre = %v", dst.RGBAAt(50, 20))
	}
	g := dst.RGBAAt(80, 20)
	if g == th.PreviewBackground || g == blue {
		t.Fatalf("ghost pixel = %v, want a blend", g)
	}
	dst = image.NewRGBA(image.Rect(0, 0, 100, 40))
	Preview(dst, dst.Bounds(), sheet, cur, ghost, th, PreviewOptions{})
	if dst.RGBAAt(80, 20) != th.PreviewBackground {
		t.Fatal("ghost drawn while disabled")
	}
}

func TestAlertWraps(t *testing.T) {
	lines := wrap("one two three four five six seven eight nine ten", 70)
	if len(lines) < 2 {
		t.Fatalf("lines = %q", lines)
	}
	dst := image.NewRGBA(image.Rect(0, 0, 400, 300))
	box := Alert(dst, dst.Bounds(), "Invalid project file", "sequences missing", theme.Default())
	if !box.In(dst.Bounds()) || box.Empty() {
		t.Fatalf("box = %v", box)
	}
}
