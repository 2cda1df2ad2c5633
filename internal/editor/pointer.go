package editor

import (
	"image"
	"math"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/spriteanim/internal/animation"
)

// HandleMouse feeds a window mouse event to the editor. origin is the window
// position of the view's top-left corner. It reports whether the view needs
// repainting.
func (e *Editor) HandleMouse(ev mouse.Event, origin image.Point) bool {
	v := image.Pt(int(math.Floor(float64(ev.X))), int(math.Floor(float64(ev.Y)))).Sub(origin)
	if ev.Button.IsWheel() {
		if ev.Direction == mouse.DirRelease {
			return false
		}
		switch ev.Button {
		case mouse.ButtonWheelUp:
			return e.view.ZoomIn(v)
		case mouse.ButtonWheelDown:
			return e.view.ZoomOut(v)
		}
		return false
	}
	switch ev.Direction {
	case mouse.DirPress:
		return e.PointerDown(v, ev.Button, ev.Modifiers)
	case mouse.DirRelease:
		return e.PointerUp(v, ev.Button)
	case mouse.DirNone:
		return e.PointerMove(v)
	}
	return false
}

// PointerDown starts a gesture at view point v.
func (e *Editor) PointerDown(v image.Point, b mouse.Button, mods key.Modifiers) bool {
	if e.state != stateIdle {
		return false
	}
	if b == mouse.ButtonMiddle || (b == mouse.ButtonRight && e.tool != ToolZoom) {
		e.state = statePanning
		e.pressView = v
		e.camera = e.view.Camera
		return false
	}
	switch e.tool {
	case ToolZoom:
		switch b {
		case mouse.ButtonLeft:
			return e.view.ZoomIn(v)
		case mouse.ButtonRight:
			return e.view.ZoomOut(v)
		}
	case ToolNewFrame:
		if b == mouse.ButtonLeft {
			e.beginFrame(e.view.ToSheet(v))
			return true
		}
	case ToolAlterSelection:
		if b == mouse.ButtonLeft {
			return e.pressSelect(v, mods)
		}
	}
	return false
}

func (e *Editor) beginFrame(p image.Point) {
	seq := e.project.ActiveSequence()
	if seq == nil {
		seq = e.project.NewSequence("", true)
	}
	f := animation.NewFrameAt(p)
	seq.AddFrame(f)
	e.state = stateDrawing
	e.press = p
	e.seq = seq
	e.frame = f
}

func (e *Editor) pressSelect(v image.Point, mods key.Modifiers) bool {
	seq := e.project.ActiveSequence()
	if seq == nil {
		return false
	}
	p := e.view.ToSheet(v)
	if f := seq.ActiveFrame(); f != nil {
		if h := HandleAt(e.view.RectToView(f.Bounds()), e.handleSize, v); h != HandleNone {
			e.state = stateResizing
			e.handle = h
			e.press = p
			e.seq = seq
			e.frame = f
			e.captured = []captured{{seq: seq, frame: f, rect: f.Rect}}
			return true
		}
		if f.Contains(p) {
			e.state = stateMoving
			e.press = p
			e.seq = seq
			e.frame = f
			e.captured = e.captureSelection(seq, f)
			return true
		}
	}
	hit := seq.FrameAt(p)
	switch {
	case hit == nil:
		seq.DeselectAll()
		_ = seq.SetActiveFrame(nil)
	case mods&key.ModControl != 0:
		_ = seq.Select(hit)
	case mods&key.ModShift != 0:
		if prev, ok := seq.ActiveFrameIndex(); ok {
			seq.SelectRange(prev, seq.IndexOf(hit))
		}
		_ = seq.Select(hit)
	default:
		_ = seq.SetSole(hit)
	}
	return true
}

// captureSelection records every selected frame of every selected sequence
// plus the active frame.
func (e *Editor) captureSelection(seq *animation.Sequence, active *animation.Frame) []captured {
	var out []captured
	seen := make(map[*animation.Frame]bool)
	e.project.ForEachSelected(func(s *animation.Sequence, f *animation.Frame) {
		if seen[f] {
			return
		}
		seen[f] = true
		out = append(out, captured{seq: s, frame: f, rect: f.Rect})
	})
	if !seen[active] {
		out = append(out, captured{seq: seq, frame: active, rect: active.Rect})
	}
	return out
}

// PointerMove updates the gesture in progress.
func (e *Editor) PointerMove(v image.Point) bool {
	switch e.state {
	case stateDrawing:
		cur := e.view.ToSheet(v)
		_ = e.seq.SetFrameRect(e.frame, image.Rectangle{Min: e.press, Max: cur})
		return true
	case stateResizing:
		d := e.view.ToSheet(v).Sub(e.press)
		c := e.captured[0]
		_ = c.seq.SetFrameRect(c.frame, resize(c.rect, e.handle, d))
		return true
	case stateMoving:
		d := e.view.ToSheet(v).Sub(e.press)
		for _, c := range e.captured {
			_ = c.seq.SetFrameRect(c.frame, c.rect.Add(d))
		}
		return true
	case statePanning:
		d := v.Sub(e.pressView)
		e.view.PanTo(image.Point{
			X: e.camera.X - int(math.Round(float64(d.X)/e.view.Scale)),
			Y: e.camera.Y - int(math.Round(float64(d.Y)/e.view.Scale)),
		})
		return true
	}
	return false
}

// PointerUp finishes the gesture in progress. The frame that was drawn,
// resized or grabbed is normalized and removed if it has no area.
func (e *Editor) PointerUp(v image.Point, b mouse.Button) bool {
	if e.state == stateIdle {
		return false
	}
	if e.state == statePanning {
		if b != mouse.ButtonMiddle && b != mouse.ButtonRight {
			return false
		}
		e.reset()
		return true
	}
	if b != mouse.ButtonLeft {
		return false
	}
	e.PointerMove(v)
	if e.seq != nil && e.frame != nil && e.seq.Has(e.frame) {
		_ = e.seq.NormalizeFrame(e.frame)
		if e.frame.Empty() {
			_ = e.seq.RemoveFrame(e.frame)
		}
	}
	e.reset()
	return true
}
