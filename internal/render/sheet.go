package render

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/example/spriteanim/internal/animation"
	"github.com/example/spriteanim/internal/editor"
	"github.com/example/spriteanim/internal/geometry"
	"github.com/example/spriteanim/internal/theme"
)

// Sheet draws the part of sheet visible through view into area of dst over
// a checkerboard. Sheet pixels are scaled with nearest neighbour sampling so
// individual pixels stay sharp.
func Sheet(dst *image.RGBA, area image.Rectangle, sheet *image.RGBA, view *geometry.Viewport, th *theme.Theme) {
	Checkerboard(dst, area, 8, th.CheckerLight, th.CheckerDark)
	if sheet == nil {
		return
	}
	src := view.Visible().Intersect(sheet.Bounds())
	if src.Empty() {
		return
	}
	target := view.RectToView(src).Add(area.Min)
	clip, ok := dst.SubImage(area).(*image.RGBA)
	if !ok {
		return
	}
	xdraw.NearestNeighbor.Scale(clip, target, sheet, src, draw.Over, nil)
}

// OutlineKind says how a frame outline is drawn.
type OutlineKind int

const (
	// OutlineOther is a frame of a selected sequence that is not active.
	OutlineOther OutlineKind = iota
	OutlineNormal
	OutlineSelected
	OutlineActive
)

// Outline is a frame rectangle in sheet space and how to draw it.
type Outline struct {
	Rect image.Rectangle
	Kind OutlineKind
}

// Outlines lists the frames of every selected sequence, then those of the
// active sequence, with the active frame last so it is drawn on top. The
// result is a copy and may be handed to another goroutine.
func Outlines(p *animation.Project) []Outline {
	if p == nil {
		return nil
	}
	var out []Outline
	active := p.ActiveSequence()
	for _, seq := range p.SelectedSequences() {
		if seq == active {
			continue
		}
		for _, f := range seq.Frames() {
			out = append(out, Outline{Rect: f.Bounds(), Kind: OutlineOther})
		}
	}
	if active == nil {
		return out
	}
	var last *Outline
	for _, f := range active.Frames() {
		o := Outline{Rect: f.Bounds(), Kind: OutlineNormal}
		switch {
		case f == active.ActiveFrame():
			o.Kind = OutlineActive
			last = &o
			continue
		case active.IsSelected(f):
			o.Kind = OutlineSelected
		}
		out = append(out, o)
	}
	if last != nil {
		out = append(out, *last)
	}
	return out
}

// OverlayOptions controls what Frames draws.
type OverlayOptions struct {
	HandleSize int
	// Handles is false while a drag is in progress.
	Handles bool
}

// Frames draws outlines over the sheet view. Selected frames are dashed and
// the active frame gets its resize handles.
func Frames(dst *image.RGBA, area image.Rectangle, outlines []Outline, view *geometry.Viewport, th *theme.Theme, opts OverlayOptions) {
	clip, ok := dst.SubImage(area).(*image.RGBA)
	if !ok {
		return
	}
	for _, o := range outlines {
		r := view.RectToView(o.Rect).Add(area.Min)
		switch o.Kind {
		case OutlineOther:
			Rect(clip, r, th.FrameOther, 1)
		case OutlineNormal:
			Rect(clip, r, th.FrameBorder, 1)
		case OutlineSelected:
			DashedRect(clip, r, 4, th.FrameSelected, th.FrameBorder)
		case OutlineActive:
			Rect(clip, r, th.FrameActive, 2)
			if !opts.Handles {
				continue
			}
			size := opts.HandleSize
			if size <= 0 {
				size = editor.DefaultHandleSize
			}
			for _, hr := range editor.HandleRects(r, size) {
				Fill(clip, hr, th.HandleFill)
				Rect(clip, hr, th.HandleBorder, 1)
			}
		}
	}
}
