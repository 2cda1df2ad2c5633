// Package animation holds the sprite animation model: frames cut from a
// spritesheet, sequences of frames and the project that owns them.
package animation

import (
	"fmt"
	"image"
)

// Frame is a rectangle of the spritesheet plus the offset used when the frame
// is drawn in the preview. Rect.Max is exclusive. While a drag is in progress
// Rect may be non-canonical; Normalize restores it.
type Frame struct {
	Rect  image.Rectangle
	Shift image.Point
}

// NewFrame returns a frame covering the given rectangle.
func NewFrame(r image.Rectangle) *Frame {
	return &Frame{Rect: r}
}

// NewFrameAt returns a zero-sized frame anchored at p.
func NewFrameAt(p image.Point) *Frame {
	return &Frame{Rect: image.Rectangle{Min: p, Max: p}}
}

// Position is the top-left corner of the frame.
func (f *Frame) Position() image.Point { return f.Rect.Min }

// Size is the signed extent of the frame. Width or height are negative only
// during a drag.
func (f *Frame) Size() image.Point { return f.Rect.Max.Sub(f.Rect.Min) }

// Bounds returns the canonical rectangle.
func (f *Frame) Bounds() image.Rectangle { return f.Rect.Canon() }

// Normalize swaps the corners along any axis with negative extent.
func (f *Frame) Normalize() {
	if f.Rect.Min.X > f.Rect.Max.X {
		f.Rect.Min.X, f.Rect.Max.X = f.Rect.Max.X, f.Rect.Min.X
	}
	if f.Rect.Min.Y > f.Rect.Max.Y {
		f.Rect.Min.Y, f.Rect.Max.Y = f.Rect.Max.Y, f.Rect.Min.Y
	}
}

// Normalized reports whether the rectangle has non-negative extent.
func (f *Frame) Normalized() bool {
	return f.Rect.Min.X <= f.Rect.Max.X && f.Rect.Min.Y <= f.Rect.Max.Y
}

// Empty reports whether the frame has zero width or height.
func (f *Frame) Empty() bool {
	return f.Rect.Min.X == f.Rect.Max.X || f.Rect.Min.Y == f.Rect.Max.Y
}

// Translate moves the frame geometry. Shift is unchanged.
func (f *Frame) Translate(dx, dy int) {
	f.Rect = f.Rect.Add(image.Pt(dx, dy))
}

// Contains reports whether p lies inside the frame.
func (f *Frame) Contains(p image.Point) bool {
	return p.In(f.Rect.Canon())
}

// Center returns the middle of the frame, rounded towards the top-left.
func (f *Frame) Center() image.Point {
	r := f.Rect.Canon()
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// SetShift replaces the display offset.
func (f *Frame) SetShift(p image.Point) { f.Shift = p }

// MoveShift adjusts the display offset.
func (f *Frame) MoveShift(dx, dy int) { f.Shift = f.Shift.Add(image.Pt(dx, dy)) }

func (f *Frame) String() string {
	s := f.Size()
	return fmt.Sprintf("pos=%d,%d size=%dx%d shift=%d,%d", f.Rect.Min.X, f.Rect.Min.Y, s.X, s.Y, f.Shift.X, f.Shift.Y)
}
