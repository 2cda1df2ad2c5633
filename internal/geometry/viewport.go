package geometry

import (
	"image"
	"math"
)

// Viewport is the pan and zoom state of one view onto a spritesheet.
// Camera is the sheet point drawn at the view's top-left corner.
type Viewport struct {
	Scale  float64
	Camera image.Point

	// ViewSize is the size of the drawing area in view pixels.
	ViewSize image.Point
	// SheetSize is the size of the spritesheet in sheet pixels.
	SheetSize image.Point

	ScaleMin  float64
	ScaleMax  float64
	ScaleStep float64
}

// NewViewport returns a viewport at scale 1 looking at the sheet origin.
func NewViewport(sheet, view image.Point) *Viewport {
	return &Viewport{
		Scale:     DefaultScaleMin,
		ViewSize:  view,
		SheetSize: sheet,
		ScaleMin:  DefaultScaleMin,
		ScaleMax:  DefaultScaleMax,
		ScaleStep: DefaultScaleStep,
	}
}

// ToSheet converts a point relative to the view origin into sheet space.
func (v *Viewport) ToSheet(p image.Point) image.Point {
	return ToSheet(p, v.Scale, v.Camera)
}

// ToView converts a sheet point into view space.
func (v *Viewport) ToView(p image.Point) image.Point {
	return ToView(p, v.Scale, v.Camera)
}

// RectToView converts a sheet rectangle into view space.
func (v *Viewport) RectToView(r image.Rectangle) image.Rectangle {
	return RectToView(r, v.Scale, v.Camera)
}

// Visible returns the part of sheet space covered by the view. It may extend
// past the sheet when the view is larger than the sheet.
func (v *Viewport) Visible() image.Rectangle {
	w := int(math.Ceil(float64(v.ViewSize.X) / v.Scale))
	h := int(math.Ceil(float64(v.ViewSize.Y) / v.Scale))
	return image.Rect(v.Camera.X, v.Camera.Y, v.Camera.X+w, v.Camera.Y+h)
}

// SetViewSize records a new view size and re-clamps the camera.
func (v *Viewport) SetViewSize(size image.Point) {
	v.ViewSize = size
	v.Clamp()
}

// SetSheetSize records a new sheet size and re-clamps the camera.
func (v *Viewport) SetSheetSize(size image.Point) {
	v.SheetSize = size
	v.Clamp()
}

// SetScale sets the zoom level keeping the camera unchanged. It reports
// whether the scale changed.
func (v *Viewport) SetScale(s float64) bool {
	s = ClampScale(s, v.ScaleMin, v.ScaleMax)
	if s == v.Scale {
		return false
	}
	v.Scale = s
	v.Clamp()
	return true
}

// ZoomAt changes the scale by delta while keeping the sheet pixel under
// cursor (view space) under the cursor. It reports whether the scale changed.
func (v *Viewport) ZoomAt(cursor image.Point, delta float64) bool {
	s := ClampScale(v.Scale+delta, v.ScaleMin, v.ScaleMax)
	if s == v.Scale {
		return false
	}
	q := v.ToSheet(cursor)
	v.Scale = s
	v.Camera = image.Point{
		X: q.X - int(math.Floor(float64(cursor.X)/s)),
		Y: q.Y - int(math.Floor(float64(cursor.Y)/s)),
	}
	v.Clamp()
	return true
}

// ZoomIn zooms one step towards cursor.
func (v *Viewport) ZoomIn(cursor image.Point) bool { return v.ZoomAt(cursor, v.ScaleStep) }

// ZoomOut zooms one step away from cursor.
func (v *Viewport) ZoomOut(cursor image.Point) bool { return v.ZoomAt(cursor, -v.ScaleStep) }

// PanTo moves the camera to c and clamps it.
func (v *Viewport) PanTo(c image.Point) {
	v.Camera = c
	v.Clamp()
}

// CenterOn moves the camera so p is in the middle of the view.
func (v *Viewport) CenterOn(p image.Point) {
	v.Camera = image.Point{
		X: p.X - int(math.Floor(float64(v.ViewSize.X)/(2*v.Scale))),
		Y: p.Y - int(math.Floor(float64(v.ViewSize.Y)/(2*v.Scale))),
	}
	v.Clamp()
}

// Clamp keeps the camera inside the sheet. When the view is larger than the
// sheet along an axis the camera for that axis is 0.
func (v *Viewport) Clamp() {
	v.Camera.X = clampAxis(v.Camera.X, v.SheetSize.X, v.ViewSize.X, v.Scale)
	v.Camera.Y = clampAxis(v.Camera.Y, v.SheetSize.Y, v.ViewSize.Y, v.Scale)
}

func clampAxis(c, sheet, view int, scale float64) int {
	max := sheet - int(math.Ceil(float64(view)/scale))
	if max < 0 {
		max = 0
	}
	if c > max {
		c = max
	}
	if c < 0 {
		c = 0
	}
	return c
}
