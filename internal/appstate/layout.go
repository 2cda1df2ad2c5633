package appstate

import "image"

const (
	toolbarHeight = 28
	statusHeight  = 22
	sideWidth     = 220
	rowHeight     = 20
	buttonGap     = 4
)

// layout divides the window into the toolbar along the top, the status bar
// along the bottom, the sheet view on the left and a side column holding the
// sequence list above the preview.
type layout struct {
	size    image.Point
	toolbar image.Rectangle
	sheet   image.Rectangle
	list    image.Rectangle
	preview image.Rectangle
	status  image.Rectangle
}

func computeLayout(w, h int) layout {
	if w < 1 {
		w = 1
	}
	if h < toolbarHeight+statusHeight+1 {
		h = toolbarHeight + statusHeight + 1
	}
	side := sideWidth
	if w < 3*side {
		side = w / 3
	}
	top, bottom := toolbarHeight, h-statusHeight
	mid := top + (bottom-top)/2
	return layout{
		size:    image.Pt(w, h),
		toolbar: image.Rect(0, 0, w, top),
		sheet:   image.Rect(0, top, w-side, bottom),
		list:    image.Rect(w-side, top, w, mid),
		preview: image.Rect(w-side, mid, w, bottom),
		status:  image.Rect(0, bottom, w, h),
	}
}

// visibleRows is how many sequence rows fit in the list.
func (l layout) visibleRows() int {
	n := l.list.Dy() / rowHeight
	if n < 1 {
		n = 1
	}
	return n
}

// rowAt returns the list row under p, counting from the first visible row.
func (l layout) rowAt(p image.Point) (int, bool) {
	if !p.In(l.list) {
		return 0, false
	}
	return (p.Y - l.list.Min.Y) / rowHeight, true
}
