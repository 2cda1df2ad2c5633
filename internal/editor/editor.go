// Package editor turns pointer and keyboard input on the sheet view into
// changes to an animation project.
package editor

import (
	"fmt"
	"image"
	"strings"

	"github.com/example/spriteanim/internal/animation"
	"github.com/example/spriteanim/internal/geometry"
)

// Tool selects how a primary-button press on the sheet is interpreted.
type Tool int

const (
	ToolNewFrame Tool = iota
	ToolAlterSelection
	ToolZoom
)

func (t Tool) String() string {
	switch t {
	case ToolNewFrame:
		return "new frame"
	case ToolAlterSelection:
		return "select"
	case ToolZoom:
		return "zoom"
	}
	return "unknown"
}

// ParseTool is the inverse of Tool.String.
func ParseTool(s string) (Tool, error) {
	for _, t := range []Tool{ToolNewFrame, ToolAlterSelection, ToolZoom} {
		if strings.EqualFold(strings.TrimSpace(s), t.String()) {
			return t, nil
		}
	}
	return ToolAlterSelection, fmt.Errorf("unknown tool %q", s)
}

type state int

const (
	stateIdle state = iota
	stateDrawing
	stateResizing
	stateMoving
	statePanning
)

// captured is a frame rectangle recorded when a drag starts.
type captured struct {
	seq   *animation.Sequence
	frame *animation.Frame
	rect  image.Rectangle
}

// Editor is the editing state machine for one sheet view.
type Editor struct {
	project *animation.Project
	view    *geometry.Viewport

	tool       Tool
	handleSize int
	onTool     func(Tool)

	state  state
	handle Handle
	// press is the sheet point of the press that started the drag.
	press     image.Point
	pressView image.Point
	camera    image.Point
	seq       *animation.Sequence
	frame     *animation.Frame
	captured  []captured
}

// Option configures an Editor.
type Option func(*Editor)

// WithTool sets the initial tool.
func WithTool(t Tool) Option { return func(e *Editor) { e.tool = t } }

// WithHandleSize sets the sizing box edge length in view pixels.
func WithHandleSize(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.handleSize = n
		}
	}
}

// WithToolListener registers fn to be called when the tool changes.
func WithToolListener(fn func(Tool)) Option { return func(e *Editor) { e.onTool = fn } }

// New returns an editor for project p shown through view.
func New(p *animation.Project, view *geometry.Viewport, opts ...Option) *Editor {
	e := &Editor{
		project:    p,
		view:       view,
		tool:       ToolAlterSelection,
		handleSize: DefaultHandleSize,
		handle:     HandleNone,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Project returns the project being edited.
func (e *Editor) Project() *animation.Project { return e.project }

// SetProject replaces the project and abandons any drag in progress.
func (e *Editor) SetProject(p *animation.Project) {
	e.reset()
	e.project = p
}

// View returns the viewport the editor maps input through.
func (e *Editor) View() *geometry.Viewport { return e.view }

// Tool returns the current tool.
func (e *Editor) Tool() Tool { return e.tool }

// SetTool switches tools. A drag in progress is cancelled first.
func (e *Editor) SetTool(t Tool) {
	if t == e.tool {
		return
	}
	e.Cancel()
	e.tool = t
	if e.onTool != nil {
		e.onTool(t)
	}
}

// HandleSize returns the sizing box edge length.
func (e *Editor) HandleSize() int { return e.handleSize }

// Dragging reports whether a gesture is in progress.
func (e *Editor) Dragging() bool { return e.state != stateIdle }

// ActiveHandles returns the view-space sizing boxes of the active frame.
func (e *Editor) ActiveHandles() ([8]image.Rectangle, bool) {
	f := e.project.ActiveFrame()
	if f == nil {
		return [8]image.Rectangle{}, false
	}
	return HandleRects(e.view.RectToView(f.Bounds()), e.handleSize), true
}

// Cancel abandons the gesture in progress. Frames return to the rectangles
// they had when it started and a frame being drawn is removed.
func (e *Editor) Cancel() bool {
	switch e.state {
	case stateIdle:
		return false
	case stateDrawing:
		if e.seq != nil && e.frame != nil {
			_ = e.seq.RemoveFrame(e.frame)
		}
	case stateResizing, stateMoving:
		for _, c := range e.captured {
			_ = c.seq.SetFrameRect(c.frame, c.rect)
		}
	case statePanning:
		e.view.PanTo(e.camera)
	}
	e.reset()
	return true
}

func (e *Editor) reset() {
	e.state = stateIdle
	e.handle = HandleNone
	e.seq = nil
	e.frame = nil
	e.captured = nil
}

// Recenter moves the view to the centroid of the selected frames.
func (e *Editor) Recenter() bool {
	var rects []image.Rectangle
	for _, f := range e.project.SelectedFrames() {
		rects = append(rects, f.Bounds())
	}
	c, ok := geometry.Centroid(rects)
	if !ok {
		return false
	}
	e.view.CenterOn(c)
	return true
}
