package editor

import (
	"unicode"

	"golang.org/x/mobile/event/key"

	"github.com/example/spriteanim/internal/animation"
)

const shiftModifiers = key.ModControl | key.ModAlt

// HandleKey applies editing keys. Arrows move the selected frames one sheet
// pixel; with Ctrl or Alt held they move the active frame's shift instead.
// It reports whether the key was used.
func (e *Editor) HandleKey(ev key.Event) bool {
	if ev.Direction == key.DirRelease {
		return false
	}
	var dx, dy int
	switch ev.Code {
	case key.CodeEscape:
		return e.Cancel()
	case key.CodeLeftArrow:
		dx = -1
	case key.CodeRightArrow:
		dx = 1
	case key.CodeUpArrow:
		dy = -1
	case key.CodeDownArrow:
		dy = 1
	case key.CodeDeleteForward, key.CodeDeleteBackspace:
		if e.Dragging() {
			return false
		}
		return e.project.DeleteSelectedFrames() > 0
	case key.CodeTab:
		seq := e.project.ActiveSequence()
		if seq == nil || e.Dragging() {
			return false
		}
		if ev.Modifiers&key.ModShift != 0 {
			seq.PrevFrame()
		} else {
			seq.NextFrame()
		}
		return true
	default:
		if ev.Modifiers == 0 && unicode.ToLower(ev.Rune) == 'f' {
			return e.Recenter()
		}
		return false
	}
	if e.Dragging() {
		return false
	}
	if ev.Modifiers&shiftModifiers != 0 {
		return e.ShiftActive(dx, dy)
	}
	return e.Nudge(dx, dy)
}

// Nudge translates every selected frame by dx, dy.
func (e *Editor) Nudge(dx, dy int) bool {
	moved := false
	e.project.ForEachSelected(func(s *animation.Sequence, f *animation.Frame) {
		if s.TranslateFrame(f, dx, dy) == nil {
			moved = true
		}
	})
	return moved
}

// ShiftActive adjusts the display offset of the active frame.
func (e *Editor) ShiftActive(dx, dy int) bool {
	seq := e.project.ActiveSequence()
	if seq == nil || seq.ActiveFrame() == nil {
		return false
	}
	return seq.MoveFrameShift(seq.ActiveFrame(), dx, dy) == nil
}
