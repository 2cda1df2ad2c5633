package geometry

import (
	"image"
	"testing"
)

func TestToSheetToView(t *testing.T) {
	cases := []struct {
		v      image.Point
		scale  float64
		camera image.Point
		want   image.Point
	}{
		{image.Pt(0, 0), 1, image.Pt(0, 0), image.Pt(0, 0)},
		{image.Pt(25, 39), 2, image.Pt(0, 0), image.Pt(12, 19)},
		{image.Pt(25, 39), 2, image.Pt(5, 7), image.Pt(17, 26)},
		{image.Pt(14, 3), 1.5, image.Pt(0, 0), image.Pt(9, 2)},
		{image.Pt(-1, -1), 2, image.Pt(0, 0), image.Pt(-1, -1)},
	}
	for _, c := range cases {
		if got := ToSheet(c.v, c.scale, c.camera); got != c.want {
			t.Errorf("ToSheet(%v, %v, %v) = %v, want %v", c.v, c.scale, c.camera, got, c.want)
		}
	}
	if got := ToView(image.Pt(17, 26), 2, image.Pt(5, 7)); got != image.Pt(24, 38) {
		t.Errorf("ToView = %v", got)
	}
}

func TestRoundTripWithinOneUnit(t *testing.T) {
	scales := []float64{1, 1.5, 2, 2.5, 3.7, 10}
	cameras := []image.Point{{0, 0}, {3, 9}, {120, 4}}
	for _, s := range scales {
		for _, c := range cameras {
			for x := 0; x < 60; x += 7 {
				for y := 0; y < 60; y += 5 {
					p := image.Pt(x, y)
					back := ToView(ToSheet(p, s, c), s, c)
					if d := p.X - back.X; d < 0 || float64(d) >= s+1 {
						t.Fatalf("scale %v camera %v: x %d -> %d", s, c, p.X, back.X)
					}
					if d := p.Y - back.Y; d < 0 || float64(d) >= s+1 {
						t.Fatalf("scale %v camera %v: y %d -> %d", s, c, p.Y, back.Y)
					}
					q := image.Pt(x+c.X, y+c.Y)
					qq := ToSheet(ToView(q, s, c), s, c)
					if dx, dy := q.X-qq.X, q.Y-qq.Y; dx < 0 || dx > 1 || dy < 0 || dy > 1 {
						t.Fatalf("scale %v camera %v: sheet %v -> %v", s, c, q, qq)
					}
				}
			}
		}
	}
}

func TestClampScale(t *testing.T) {
	cases := map[float64]float64{
		0.2:   1,
		1.04:  1,
		2.56:  2.6,
		10:    10,
		12.5:  10,
		4.449: 4.4,
	}
	for in, want := range cases {
		if got := ClampScale(in, 1, 10); got != want {
			t.Errorf("ClampScale(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestZoomKeepsCursorPixel(t *testing.T) {
	v := NewViewport(image.Pt(1000, 800), image.Pt(200, 150))
	v.Camera = image.Pt(100, 100)
	cursors := []image.Point{{0, 0}, {37, 91}, {199, 149}, {100, 75}}
	for _, cur := range cursors {
		for step := 0; step < 8; step++ {
			before := v.ToSheet(cur)
			if !v.ZoomIn(cur) {
				break
			}
			if after := v.ToSheet(cur); after != before {
				t.Fatalf("zoom in at %v moved pixel %v -> %v (scale %v)", cur, before, after, v.Scale)
			}
			if view := v.ToView(before); cur.X-view.X < 0 || float64(cur.X-view.X) >= v.Scale+1 {
				t.Fatalf("view position %v too far from cursor %v", view, cur)
			}
		}
		for v.ZoomOut(cur) {
		}
		if v.Scale != v.ScaleMin {
			t.Fatalf("scale = %v after zooming out", v.Scale)
		}
	}
}

func TestClampSmallSheet(t *testing.T) {
	v := NewViewport(image.Pt(64, 64), image.Pt(400, 300))
	v.PanTo(image.Pt(30, -20))
	if v.Camera != (image.Point{}) {
		t.Fatalf("camera = %v, want origin", v.Camera)
	}
	v.SetScale(4)
	v.PanTo(image.Pt(63, 63))
	// 400/4 = 100 > 64 so x clamps to 0; 300/4 = 75 > 64 so y too.
	if v.Camera != (image.Point{}) {
		t.Fatalf("camera = %v after scale 4", v.Camera)
	}
	v.SetScale(10)
	v.PanTo(image.Pt(63, 63))
	if v.Camera != image.Pt(24, 34) {
		t.Fatalf("camera = %v, want (24,34)", v.Camera)
	}
}

func TestCenterOn(t *testing.T) {
	v := NewViewport(image.Pt(1000, 1000), image.Pt(200, 100))
	v.SetScale(2)
	v.CenterOn(image.Pt(500, 500))
	if v.Camera != image.Pt(450, 475) {
		t.Fatalf("camera = %v", v.Camera)
	}
	vis := v.Visible()
	if c := image.Pt((vis.Min.X+vis.Max.X)/2, (vis.Min.Y+vis.Max.Y)/2); c != image.Pt(500, 500) {
		t.Fatalf("visible centre = %v", c)
	}
}

func TestCentroid(t *testing.T) {
	if _, ok := Centroid(nil); ok {
		t.Fatal("expected no centroid for empty input")
	}
	c, ok := Centroid([]image.Rectangle{image.Rect(0, 0, 10, 10), image.Rect(20, 20, 30, 30)})
	if !ok || c != image.Pt(15, 15) {
		t.Fatalf("centroid = %v %v", c, ok)
	}
}
