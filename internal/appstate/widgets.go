package appstate

import (
	"image"

	"golang.org/x/mobile/event/key"

	"github.com/example/spriteanim/internal/editor"
	"github.com/example/spriteanim/internal/render"
)

// KeyShortcut describes a keyboard combination that triggers an action.
// Plain keys are matched by Rune; combinations with Control are matched by
// Code so they work whatever rune the driver reports.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive toolbar element.
// Activate performs the button's action when clicked.
type Button interface {
	Label() string
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
	// Active reports whether the button shows a latched state, such as the
	// current tool or a toggle that is on.
	Active() bool
}

// ToolButton selects an editor tool.
type ToolButton struct {
	label  string
	tool   editor.Tool
	rect   image.Rectangle
	editor *editor.Editor
}

func (tb *ToolButton) Label() string             { return tb.label }
func (tb *ToolButton) Rect() image.Rectangle     { return tb.rect }
func (tb *ToolButton) SetRect(r image.Rectangle) { tb.rect = r }
func (tb *ToolButton) Activate()                 { tb.editor.SetTool(tb.tool) }
func (tb *ToolButton) Active() bool              { return tb.editor.Tool() == tb.tool }

// ActionButton runs a registered action. on, when set, latches the button.
type ActionButton struct {
	label      string
	rect       image.Rectangle
	onActivate func()
	on         func() bool
}

func (ab *ActionButton) Label() string             { return ab.label }
func (ab *ActionButton) Rect() image.Rectangle     { return ab.rect }
func (ab *ActionButton) SetRect(r image.Rectangle) { ab.rect = r }

func (ab *ActionButton) Activate() {
	if ab.onActivate != nil {
		ab.onActivate()
	}
}

func (ab *ActionButton) Active() bool { return ab.on != nil && ab.on() }

// buttonFace is what the paint worker needs to draw a button.
type buttonFace struct {
	label string
	rect  image.Rectangle
	state ButtonState
}

// placeButtons lays the buttons out left to right inside bar.
func placeButtons(buttons []Button, bar image.Rectangle) {
	x := bar.Min.X + buttonGap
	for _, b := range buttons {
		w := render.MeasureText(render.LabelFace, b.Label()) + 12
		b.SetRect(image.Rect(x, bar.Min.Y+buttonGap, x+w, bar.Max.Y-buttonGap))
		x += w + buttonGap
	}
}

func buttonAt(buttons []Button, p image.Point) int {
	for i, b := range buttons {
		if p.In(b.Rect()) {
			return i
		}
	}
	return -1
}
