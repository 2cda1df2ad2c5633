// Package render draws the sheet view, frame overlays and the animation
// preview into RGBA buffers.
package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Fill paints rect with col.
func Fill(dst *image.RGBA, rect image.Rectangle, col color.Color) {
	draw.Draw(dst, rect, &image.Uniform{col}, image.Point{}, draw.Src)
}

// Blend composites col over rect.
func Blend(dst *image.RGBA, rect image.Rectangle, col color.Color) {
	draw.Draw(dst, rect, &image.Uniform{col}, image.Point{}, draw.Over)
}

// Checkerboard fills rect of dst with squares of the given size, anchored at
// rect.Min so the pattern does not crawl when the area moves.
func Checkerboard(dst *image.RGBA, rect image.Rectangle, size int, light, dark color.Color) {
	if size < 1 {
		size = 1
	}
	rect = rect.Intersect(dst.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if ((x-rect.Min.X)/size+(y-rect.Min.Y)/size)%2 == 0 {
				dst.Set(x, y, light)
			} else {
				dst.Set(x, y, dark)
			}
		}
	}
}

func setThickPixel(img *image.RGBA, x, y, thick int, col color.Color) {
	r := thick / 2
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if p := image.Pt(x+dx, y+dy); p.In(img.Bounds()) {
				img.Set(p.X, p.Y, col)
			}
		}
	}
}

// Line draws a Bresenham line.
func Line(img *image.RGBA, x0, y0, x1, y1 int, col color.Color, thick int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Rect outlines rect; the outline sits on the rectangle's inner edge.
func Rect(img *image.RGBA, rect image.Rectangle, col color.Color, thick int) {
	if rect.Empty() {
		return
	}
	Line(img, rect.Min.X, rect.Min.Y, rect.Max.X-1, rect.Min.Y, col, thick)
	Line(img, rect.Max.X-1, rect.Min.Y, rect.Max.X-1, rect.Max.Y-1, col, thick)
	Line(img, rect.Max.X-1, rect.Max.Y-1, rect.Min.X, rect.Max.Y-1, col, thick)
	Line(img, rect.Min.X, rect.Max.Y-1, rect.Min.X, rect.Min.Y, col, thick)
}

// DashedRect outlines rect with alternating dashes of c1 and c2.
func DashedRect(img *image.RGBA, rect image.Rectangle, dash int, c1, c2 color.Color) {
	if rect.Empty() {
		return
	}
	if dash < 1 {
		dash = 1
	}
	x0, y0, x1, y1 := rect.Min.X, rect.Min.Y, rect.Max.X-1, rect.Max.Y-1
	i := 0
	plot := func(x, y int) {
		col := c1
		if (i/dash)%2 == 1 {
			col = c2
		}
		if image.Pt(x, y).In(img.Bounds()) {
			img.Set(x, y, col)
		}
		i++
	}
	for x := x0; x <= x1; x++ {
		plot(x, y0)
	}
	for y := y0 + 1; y <= y1; y++ {
		plot(x1, y)
	}
	for x := x1 - 1; x >= x0 && y1 > y0; x-- {
		plot(x, y1)
	}
	for y := y1 - 1; y > y0 && x1 > x0; y-- {
		plot(x0, y)
	}
}
