package render

import (
	"image"
	"image/color"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LabelFace is the small bitmap face used for toolbar, list and status text.
var LabelFace font.Face = basicfont.Face7x13

// TitleFace is the larger face used for alert titles.
var TitleFace font.Face = basicfont.Face7x13

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("parse font: %v", err)
		return
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 20, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Printf("font face: %v", err)
		return
	}
	TitleFace = face
}

// MeasureText returns the advance width of s in face.
func MeasureText(face font.Face, s string) int {
	return (&font.Drawer{Face: face}).MeasureString(s).Ceil()
}

// Text draws s with its baseline at (x, y).
func Text(dst *image.RGBA, face font.Face, x, y int, s string, col color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face, Dot: fixed.P(x, y)}
	d.DrawString(s)
}

// Label draws s in LabelFace inside rect, vertically centred and inset by
// four pixels. Text past the right edge is cut off.
func Label(dst *image.RGBA, rect image.Rectangle, s string, col color.Color) {
	m := LabelFace.Metrics()
	asc, desc := m.Ascent.Ceil(), m.Descent.Ceil()
	y := rect.Min.Y + (rect.Dy()-asc-desc)/2 + asc
	clip, ok := dst.SubImage(rect).(*image.RGBA)
	if !ok {
		return
	}
	Text(clip, LabelFace, rect.Min.X+4, y, s, col)
}
