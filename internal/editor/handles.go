package editor

import "image"

// Handle identifies one of the eight sizing boxes around a frame.
type Handle int

const (
	HandleNone Handle = iota - 1
	HandleTL
	HandleT
	HandleTR
	HandleR
	HandleBR
	HandleB
	HandleBL
	HandleL
)

// DefaultHandleSize is the edge length of a sizing box in view pixels.
const DefaultHandleSize = 10

var handleNames = [...]string{"tl", "t", "tr", "r", "br", "b", "bl", "l"}

func (h Handle) String() string {
	if h < HandleTL || h > HandleL {
		return "none"
	}
	return handleNames[h]
}

// HandleRects returns the sizing boxes for the view-space rectangle r in
// Handle order.
func HandleRects(r image.Rectangle, size int) [8]image.Rectangle {
	hs := size / 2
	cx := (r.Min.X + r.Max.X) / 2
	cy := (r.Min.Y + r.Max.Y) / 2
	return [8]image.Rectangle{
		image.Rect(r.Min.X-hs, r.Min.Y-hs, r.Min.X+hs, r.Min.Y+hs), // tl
		image.Rect(cx-hs, r.Min.Y-hs, cx+hs, r.Min.Y+hs),           // t
		image.Rect(r.Max.X-hs, r.Min.Y-hs, r.Max.X+hs, r.Min.Y+hs), // tr
		image.Rect(r.Max.X-hs, cy-hs, r.Max.X+hs, cy+hs),           // r
		image.Rect(r.Max.X-hs, r.Max.Y-hs, r.Max.X+hs, r.Max.Y+hs), // br
		image.Rect(cx-hs, r.Max.Y-hs, cx+hs, r.Max.Y+hs),           // b
		image.Rect(r.Min.X-hs, r.Max.Y-hs, r.Min.X+hs, r.Max.Y+hs), // bl
		image.Rect(r.Min.X-hs, cy-hs, r.Min.X+hs, cy+hs),           // l
	}
}

// HandleAt returns the first handle of r containing p.
func HandleAt(r image.Rectangle, size int, p image.Point) Handle {
	for i, hr := range HandleRects(r, size) {
		if p.In(hr) {
			return Handle(i)
		}
	}
	return HandleNone
}

// resize moves the edges of start that belong to h by d. The result is not
// normalized.
func resize(start image.Rectangle, h Handle, d image.Point) image.Rectangle {
	r := start
	switch h {
	case HandleTL:
		r.Min.X = start.Min.X + d.X
		r.Min.Y = start.Min.Y + d.Y
	case HandleT:
		r.Min.Y = start.Min.Y + d.Y
	case HandleTR:
		r.Min.Y = start.Min.Y + d.Y
		r.Max.X = start.Max.X + d.X
	case HandleR:
		r.Max.X = start.Max.X + d.X
	case HandleBR:
		r.Max.X = start.Max.X + d.X
		r.Max.Y = start.Max.Y + d.Y
	case HandleB:
		r.Max.Y = start.Max.Y + d.Y
	case HandleBL:
		r.Min.X = start.Min.X + d.X
		r.Max.Y = start.Max.Y + d.Y
	case HandleL:
		r.Min.X = start.Min.X + d.X
	}
	return r
}
