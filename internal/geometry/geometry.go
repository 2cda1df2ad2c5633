// Package geometry maps between view pixels and spritesheet pixels.
package geometry

import (
	"image"
	"math"
)

// Scale limits used when a Viewport is created without overrides.
const (
	DefaultScaleMin  = 1.0
	DefaultScaleMax  = 10.0
	DefaultScaleStep = 0.5
)

// ToSheet converts a view-space point into spritesheet space.
func ToSheet(v image.Point, scale float64, camera image.Point) image.Point {
	return image.Point{
		X: int(math.Floor(float64(v.X)/scale)) + camera.X,
		Y: int(math.Floor(float64(v.Y)/scale)) + camera.Y,
	}
}

// ToView converts a spritesheet point into view space.
func ToView(p image.Point, scale float64, camera image.Point) image.Point {
	return image.Point{
		X: int(math.Floor(float64(p.X-camera.X) * scale)),
		Y: int(math.Floor(float64(p.Y-camera.Y) * scale)),
	}
}

// RectToView converts both corners of a sheet rectangle. The result keeps the
// orientation of r, so a non-canonical rectangle stays non-canonical.
func RectToView(r image.Rectangle, scale float64, camera image.Point) image.Rectangle {
	return image.Rectangle{
		Min: ToView(r.Min, scale, camera),
		Max: ToView(r.Max, scale, camera),
	}
}

// ClampScale rounds s to one decimal place and clamps it to [min, max].
func ClampScale(s, min, max float64) float64 {
	s = math.Round(s*10) / 10
	if s < min {
		return min
	}
	if s > max {
		return max
	}
	return s
}

// Centroid returns the integer mean of the centres of rects. ok is false when
// rects is empty.
func Centroid(rects []image.Rectangle) (image.Point, bool) {
	if len(rects) == 0 {
		return image.Point{}, false
	}
	var sx, sy int
	for _, r := range rects {
		r = r.Canon()
		sx += (r.Min.X + r.Max.X) / 2
		sy += (r.Min.Y + r.Max.Y) / 2
	}
	return image.Pt(sx/len(rects), sy/len(rects)), true
}
