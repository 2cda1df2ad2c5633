package render

import (
	"image"
	"strings"

	"github.com/example/spriteanim/internal/theme"
)

// Alert draws a centred box with a title and message over bounds. Long
// messages are wrapped on spaces to fit half the width of bounds.
func Alert(dst *image.RGBA, bounds image.Rectangle, title, text string, th *theme.Theme) image.Rectangle {
	maxW := bounds.Dx() / 2
	if maxW < 200 {
		maxW = bounds.Dx() - 16
	}
	lines := wrap(text, maxW)
	tm := TitleFace.Metrics()
	lm := LabelFace.Metrics()
	titleH := tm.Ascent.Ceil() + tm.Descent.Ceil()
	lineH := lm.Ascent.Ceil() + lm.Descent.Ceil() + 2

	w := MeasureText(TitleFace, title)
	for _, l := range lines {
		if lw := MeasureText(LabelFace, l); lw > w {
			w = lw
		}
	}
	h := titleH + 8 + lineH*len(lines)
	x := bounds.Min.X + (bounds.Dx()-w)/2
	y := bounds.Min.Y + (bounds.Dy()-h)/2
	box := image.Rect(x-12, y-12, x+w+12, y+h+12)
	Blend(dst, box, th.AlertBackground)
	Rect(dst, box, th.AlertText, 2)
	Text(dst, TitleFace, x, y+tm.Ascent.Ceil(), title, th.AlertText)
	ly := y + titleH + 8 + lm.Ascent.Ceil()
	for _, l := range lines {
		Text(dst, LabelFace, x, ly, l, th.AlertText)
		ly += lineH
	}
	return box
}

func wrap(text string, width int) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			next := word
			if line != "" {
				next = line + " " + word
			}
			if line != "" && MeasureText(LabelFace, next) > width {
				out = append(out, line)
				line = word
				continue
			}
			line = next
		}
		out = append(out, line)
	}
	return out
}
