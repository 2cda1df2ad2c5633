package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/example/spriteanim/internal/animation"
	"github.com/example/spriteanim/internal/spritesheet"
	"github.com/example/spriteanim/internal/theme"
)

// PreviewOptions toggles the preview decorations.
type PreviewOptions struct {
	Ghost  bool
	Axis   bool
	Border bool
}

// PreviewScale is the largest whole scale at which a frame of size, moved
// by shift in either direction, fits in area. It is at least 1.
func PreviewScale(area image.Rectangle, size, shift image.Point) int {
	w := size.X + 2*abs(shift.X)
	h := size.Y + 2*abs(shift.Y)
	if w <= 0 || h <= 0 {
		return 1
	}
	s := area.Dx() / w
	if t := area.Dy() / h; t < s {
		s = t
	}
	if s < 1 {
		s = 1
	}
	return s
}

// PreviewRect is where f is drawn in area at scale s: centred on the middle
// of area and moved by the frame's shift.
func PreviewRect(area image.Rectangle, f *animation.Frame, s int) image.Rectangle {
	size := f.Bounds().Size().Mul(s)
	c := image.Pt((area.Min.X+area.Max.X)/2, (area.Min.Y+area.Max.Y)/2)
	min := c.Sub(size.Div(2)).Add(f.Shift.Mul(s))
	return image.Rectangle{Min: min, Max: min.Add(size)}
}

// Preview draws frame cut from sheet in the middle of area. ghost, when
// non-nil and enabled, is drawn underneath at the ghost tint's alpha. The
// scale is chosen from frame so the preview does not jump while playing
// frames of similar size.
func Preview(dst *image.RGBA, area image.Rectangle, sheet *image.RGBA, frame, ghost *animation.Frame, th *theme.Theme, opts PreviewOptions) {
	Fill(dst, area, th.PreviewBackground)
	clip, ok := dst.SubImage(area).(*image.RGBA)
	if !ok {
		return
	}
	c := image.Pt((area.Min.X+area.Max.X)/2, (area.Min.Y+area.Max.Y)/2)
	if opts.Axis {
		Line(clip, area.Min.X, c.Y, area.Max.X-1, c.Y, th.Axis, 1)
		Line(clip, c.X, area.Min.Y, c.X, area.Max.Y-1, th.Axis, 1)
	}
	if sheet == nil || frame == nil || frame.Empty() {
		return
	}
	s := PreviewScale(area, frame.Bounds().Size(), frame.Shift)
	if opts.Ghost && ghost != nil && ghost != frame && !ghost.Empty() {
		g := scaled(spritesheet.Frame(sheet, ghost), s)
		mask := image.NewUniform(color.Alpha{A: th.Ghost.A})
		r := PreviewRect(area, ghost, s)
		draw.DrawMask(clip, r, g, image.Point{}, mask, image.Point{}, draw.Over)
	}
	r := PreviewRect(area, frame, s)
	draw.Draw(clip, r, scaled(spritesheet.Frame(sheet, frame), s), image.Point{}, draw.Over)
	if opts.Border {
		Rect(clip, r.Inset(-1), th.PreviewBorder, 1)
	}
}

func scaled(img *image.RGBA, s int) *image.RGBA {
	if s == 1 {
		return img
	}
	out := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx()*s, img.Bounds().Dy()*s))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out
}
