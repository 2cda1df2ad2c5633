package editor

import (
	"image"
	"testing"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/spriteanim/internal/animation"
	"github.com/example/spriteanim/internal/geometry"
)

func newEditor(sheet image.Point, opts ...Option) (*Editor, *animation.Project) {
	p := animation.NewProject("sheet.png")
	vp := geometry.NewViewport(sheet, image.Pt(200, 200))
	return New(p, vp, opts...), p
}

func click(e *Editor, at image.Point, mods key.Modifiers) {
	e.PointerDown(at, mouse.ButtonLeft, mods)
	e.PointerUp(at, mouse.ButtonLeft)
}

func drag(e *Editor, from, to image.Point) {
	e.PointerDown(from, mouse.ButtonLeft, 0)
	e.PointerMove(to)
	e.PointerUp(to, mouse.ButtonLeft)
}

func TestNewFrameScenario(t *testing.T) {
	e, p := newEditor(image.Pt(64, 64), WithTool(ToolNewFrame))
	drag(e, image.Pt(10, 10), image.Pt(20, 30))
	seq := p.ActiveSequence()
	if seq == nil || seq.Name() != "Sequence_0" {
		t.Fatalf("expected an auto-created active sequence, got %v", seq)
	}
	f := p.ActiveFrame()
	if f == nil {
		t.Fatal("no active frame after drawing")
	}
	if f.Position() != image.Pt(10, 10) || f.Size() != image.Pt(10, 20) {
		t.Fatalf("frame pos %v size %v", f.Position(), f.Size())
	}

	e.SetTool(ToolAlterSelection)
	// Bottom-right handle dragged onto the top-left corner.
	drag(e, image.Pt(20, 30), image.Pt(10, 10))
	if seq.Len() != 0 {
		t.Fatalf("zero-size frame kept: %v", seq.Frames())
	}
	if p.ActiveFrame() != nil {
		t.Fatalf("active frame = %v, want none", p.ActiveFrame())
	}
}

func TestNewFrameNormalizesBackwardDrag(t *testing.T) {
	e, p := newEditor(image.Pt(64, 64), WithTool(ToolNewFrame))
	e.PointerDown(image.Pt(30, 30), mouse.ButtonLeft, 0)
	e.PointerMove(image.Pt(20, 25))
	if f := p.ActiveFrame(); f.Normalized() {
		t.Fatalf("frame should be inverted mid-drag: %v", f.Rect)
	}
	e.PointerUp(image.Pt(20, 25), mouse.ButtonLeft)
	f := p.ActiveFrame()
	if f.Rect != image.Rect(20, 25, 30, 30) {
		t.Fatalf("rect = %v", f.Rect)
	}
}

func TestClickWithoutDragDeletesFrame(t *testing.T) {
	e, p := newEditor(image.Pt(64, 64), WithTool(ToolNewFrame))
	click(e, image.Pt(5, 5), 0)
	if n := p.FrameCount(); n != 0 {
		t.Fatalf("frames = %d", n)
	}
}

// fourFrames lays out frames large enough that their centres are clear of
// the sizing boxes at scale 1.
func fourFrames(p *animation.Project) (*animation.Sequence, []*animation.Frame) {
	seq := p.NewSequence("walk", true)
	var frames []*animation.Frame
	for i := 0; i < 4; i++ {
		f := animation.NewFrame(image.Rect(i*50, 0, i*50+40, 40))
		seq.AddFrame(f)
		frames = append(frames, f)
	}
	return seq, frames
}

func centre(f *animation.Frame) image.Point { return f.Center() }

func TestCtrlClickThenPlainClick(t *testing.T) {
	e, p := newEditor(image.Pt(400, 400))
	seq, fr := fourFrames(p)
	click(e, centre(fr[0]), 0)
	click(e, centre(fr[1]), key.ModControl)
	if got := seq.SelectedFrames(); len(got) != 2 || seq.ActiveFrame() != fr[1] {
		t.Fatalf("after ctrl-click selected = %v active = %v", got, seq.ActiveFrame())
	}
	click(e, centre(fr[2]), 0)
	got := seq.SelectedFrames()
	if len(got) != 1 || got[0] != fr[2] || seq.ActiveFrame() != fr[2] {
		t.Fatalf("plain click left selection %v", got)
	}
}

func TestShiftClickSelectsRange(t *testing.T) {
	e, p := newEditor(image.Pt(400, 400))
	seq, fr := fourFrames(p)
	click(e, centre(fr[3]), 0)
	click(e, centre(fr[1]), key.ModShift)
	got := seq.SelectedFrames()
	if len(got) != 3 || got[0] != fr[1] || got[2] != fr[3] {
		t.Fatalf("range = %v", got)
	}
	if seq.ActiveFrame() != fr[1] {
		t.Fatalf("active = %v", seq.ActiveFrame())
	}
}

func TestClickEmptyClearsSelection(t *testing.T) {
	e, p := newEditor(image.Pt(400, 400))
	seq, _ := fourFrames(p)
	click(e, image.Pt(300, 300), 0)
	if len(seq.SelectedFrames()) != 0 || seq.ActiveFrame() != nil {
		t.Fatalf("selection = %v active = %v", seq.SelectedFrames(), seq.ActiveFrame())
	}
}

func TestMoveTranslatesSelection(t *testing.T) {
	e, p := newEditor(image.Pt(400, 400))
	seq, fr := fourFrames(p)
	click(e, centre(fr[0]), 0)
	click(e, centre(fr[1]), key.ModControl)
	drag(e, centre(fr[1]), centre(fr[1]).Add(image.Pt(5, 10)))
	if fr[0].Rect != image.Rect(5, 10, 45, 50) || fr[1].Rect != image.Rect(55, 10, 95, 50) {
		t.Fatalf("rects %v %v", fr[0].Rect, fr[1].Rect)
	}
	if fr[2].Rect != image.Rect(100, 0, 140, 40) {
		t.Fatalf("unselected frame moved: %v", fr[2].Rect)
	}
	if len(seq.SelectedFrames()) != 2 {
		t.Fatalf("move changed selection")
	}
}

func TestResizeEdgeHandle(t *testing.T) {
	e, p := newEditor(image.Pt(400, 400))
	_, fr := fourFrames(p)
	click(e, centre(fr[0]), 0)
	// Right edge midpoint of (0,0)-(40,40).
	drag(e, image.Pt(40, 20), image.Pt(60, 90))
	if fr[0].Rect != image.Rect(0, 0, 60, 40) {
		t.Fatalf("rect = %v", fr[0].Rect)
	}
}

func TestEscapeRestoresDrag(t *testing.T) {
	e, p := newEditor(image.Pt(400, 400))
	_, fr := fourFrames(p)
	click(e, centre(fr[0]), 0)
	e.PointerDown(centre(fr[0]), mouse.ButtonLeft, 0)
	e.PointerMove(image.Pt(150, 150))
	if !e.HandleKey(key.Event{Code: key.CodeEscape, Direction: key.DirPress}) {
		t.Fatal("escape ignored during drag")
	}
	if fr[0].Rect != image.Rect(0, 0, 40, 40) {
		t.Fatalf("rect after cancel = %v", fr[0].Rect)
	}
	if e.Dragging() {
		t.Fatal("still dragging")
	}

	e.SetTool(ToolNewFrame)
	n := p.FrameCount()
	e.PointerDown(image.Pt(300, 300), mouse.ButtonLeft, 0)
	e.PointerMove(image.Pt(320, 320))
	e.Cancel()
	if p.FrameCount() != n {
		t.Fatalf("cancelled frame kept")
	}
}

func TestZoomTool(t *testing.T) {
	e, _ := newEditor(image.Pt(1000, 1000), WithTool(ToolZoom))
	vp := e.View()
	at := image.Pt(120, 80)
	before := vp.ToSheet(at)
	if !e.PointerDown(at, mouse.ButtonLeft, 0) {
		t.Fatal("zoom in reported no change")
	}
	if vp.Scale != 1.5 || vp.ToSheet(at) != before {
		t.Fatalf("scale %v sheet point %v want %v", vp.Scale, vp.ToSheet(at), before)
	}
	e.PointerDown(at, mouse.ButtonRight, 0)
	if vp.Scale != 1 {
		t.Fatalf("scale after zoom out = %v", vp.Scale)
	}
}

func TestMiddleDragPans(t *testing.T) {
	e, _ := newEditor(image.Pt(1000, 1000))
	e.PointerDown(image.Pt(100, 100), mouse.ButtonMiddle, 0)
	e.PointerMove(image.Pt(50, 70))
	e.PointerUp(image.Pt(50, 70), mouse.ButtonMiddle)
	if got := e.View().Camera; got != image.Pt(50, 30) {
		t.Fatalf("camera = %v", got)
	}
}

func TestWheelZooms(t *testing.T) {
	e, _ := newEditor(image.Pt(1000, 1000))
	ev := mouse.Event{X: 30, Y: 40, Button: mouse.ButtonWheelUp, Direction: mouse.DirStep}
	if !e.HandleMouse(ev, image.Pt(10, 10)) {
		t.Fatal("wheel ignored")
	}
	if e.View().Scale != 1.5 {
		t.Fatalf("scale = %v", e.View().Scale)
	}
}

func TestArrowKeys(t *testing.T) {
	e, p := newEditor(image.Pt(400, 400))
	seq, fr := fourFrames(p)
	_ = seq.SetSole(fr[0])
	_ = seq.Select(fr[1])
	e.HandleKey(key.Event{Code: key.CodeRightArrow, Direction: key.DirPress})
	e.HandleKey(key.Event{Code: key.CodeDownArrow, Direction: key.DirPress})
	if fr[0].Position() != image.Pt(1, 1) || fr[1].Position() != image.Pt(51, 1) {
		t.Fatalf("positions %v %v", fr[0].Position(), fr[1].Position())
	}
	e.HandleKey(key.Event{Code: key.CodeLeftArrow, Modifiers: key.ModControl, Direction: key.DirPress})
	if fr[1].Shift != image.Pt(-1, 0) || fr[1].Position() != image.Pt(51, 1) {
		t.Fatalf("shift %v pos %v", fr[1].Shift, fr[1].Position())
	}
	if fr[0].Shift != (image.Point{}) {
		t.Fatalf("inactive frame shifted")
	}
}

func TestTabAndDelete(t *testing.T) {
	e, p := newEditor(image.Pt(400, 400))
	seq, fr := fourFrames(p)
	e.HandleKey(key.Event{Code: key.CodeTab, Direction: key.DirPress})
	if seq.ActiveFrame() != fr[0] {
		t.Fatalf("tab should wrap to first frame")
	}
	e.HandleKey(key.Event{Code: key.CodeTab, Modifiers: key.ModShift, Direction: key.DirPress})
	if seq.ActiveFrame() != fr[3] {
		t.Fatalf("shift-tab should wrap to last frame")
	}
	_ = seq.SetSole(fr[2])
	e.HandleKey(key.Event{Code: key.CodeDeleteForward, Direction: key.DirPress})
	if seq.Len() != 3 || seq.Has(fr[2]) {
		t.Fatalf("delete left %v", seq.Frames())
	}
}

func TestRecenter(t *testing.T) {
	e, p := newEditor(image.Pt(1000, 1000))
	seq := p.NewSequence("", true)
	a := animation.NewFrame(image.Rect(500, 500, 520, 520))
	b := animation.NewFrame(image.Rect(700, 600, 720, 620))
	seq.AddFrame(a)
	seq.AddFrame(b)
	seq.SelectAll()
	if !e.HandleKey(key.Event{Rune: 'f', Direction: key.DirPress}) {
		t.Fatal("recenter ignored")
	}
	// Centroid (610,560) minus half the 200px view.
	if got := e.View().Camera; got != image.Pt(510, 460) {
		t.Fatalf("camera = %v", got)
	}
}

func TestHandleAtOrder(t *testing.T) {
	r := image.Rect(0, 0, 100, 60)
	cases := map[image.Point]Handle{
		{0, 0}:    HandleTL,
		{50, 0}:   HandleT,
		{100, 0}:  HandleTR,
		{100, 30}: HandleR,
		{100, 60}: HandleBR,
		{50, 60}:  HandleB,
		{0, 60}:   HandleBL,
		{0, 30}:   HandleL,
		{50, 30}:  HandleNone,
	}
	for p, want := range cases {
		if got := HandleAt(r, DefaultHandleSize, p); got != want {
			t.Errorf("HandleAt(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestParseTool(t *testing.T) {
	for _, tool := range []Tool{ToolNewFrame, ToolAlterSelection, ToolZoom} {
		got, err := ParseTool(tool.String())
		if err != nil || got != tool {
			t.Errorf("ParseTool(%q) = %v, %v", tool.String(), got, err)
		}
	}
	if _, err := ParseTool("lasso"); err == nil {
		t.Error("expected error for unknown tool")
	}
}
