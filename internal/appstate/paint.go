package appstate

import (
	"context"
	"fmt"
	"image"
	"log"

	"golang.org/x/exp/shiny/screen"

	"github.com/example/spriteanim/internal/animation"
	"github.com/example/spriteanim/internal/geometry"
	"github.com/example/spriteanim/internal/render"
	"github.com/example/spriteanim/internal/theme"
)

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

type listRow struct {
	name     string
	frames   int
	speed    int
	active   bool
	selected bool
	hover    bool
}

// paintState is a copy of everything drawFrame needs. The sheet image and
// theme are never modified after start-up and are shared.
type paintState struct {
	layout     layout
	th         *theme.Theme
	sheet      *image.RGBA
	view       geometry.Viewport
	outlines   []render.Outline
	handles    bool
	handleSize int
	buttons    []buttonFace
	rows       []listRow
	preview    *animation.Frame
	ghost      *animation.Frame
	previewOpt render.PreviewOptions
	status     string
	message    string
	alertTitle string
	alertText  string
}

func copyFrame(f *animation.Frame) *animation.Frame {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

func (s *session) snapshot() paintState {
	st := paintState{
		layout:     s.layout,
		th:         s.th,
		sheet:      s.sheet,
		view:       *s.view,
		outlines:   render.Outlines(s.project),
		handles:    !s.editor.Dragging(),
		handleSize: s.editor.HandleSize(),
		previewOpt: render.PreviewOptions{Ghost: s.ghost, Axis: s.axis, Border: s.border},
		status:     s.statusText(),
		alertTitle: s.alertTitle,
		alertText:  s.alertText,
	}
	if s.message != "" && s.now().Before(s.messageUntil) {
		st.message = s.message
	}
	for i, b := range s.buttons {
		state := StateDefault
		switch {
		case b.Active():
			state = StatePressed
		case i == s.hoverButton:
			state = StateHover
		}
		st.buttons = append(st.buttons, buttonFace{label: b.Label(), rect: b.Rect(), state: state})
	}
	seqs := s.project.Sequences()
	for i := s.listTop; i < len(seqs) && i < s.listTop+s.layout.visibleRows(); i++ {
		seq := seqs[i]
		st.rows = append(st.rows, listRow{
			name:     seq.Name(),
			frames:   seq.Len(),
			speed:    seq.Speed(),
			active:   seq == s.project.ActiveSequence(),
			selected: s.project.IsSelected(seq),
			hover:    i == s.hoverRow,
		})
	}
	if seq := s.project.ActiveSequence(); seq != nil {
		st.preview = copyFrame(seq.ActiveFrame())
		if g, ok := s.player.GhostIndex(); ok && s.ghost {
			st.ghost = copyFrame(seq.Frame(g))
		}
	}
	return st
}

func (s *session) statusText() string {
	out := fmt.Sprintf("%s  %.0f%%  %s %s", s.editor.Tool(), s.view.Scale*100, s.player.State(), s.player.Mode())
	if seq := s.project.ActiveSequence(); seq != nil {
		pos := "-"
		if i, ok := seq.ActiveFrameIndex(); ok {
			pos = fmt.Sprint(i + 1)
		}
		out += fmt.Sprintf("  %s %s/%d @ %d fps", seq.Name(), pos, seq.Len(), seq.Speed())
	}
	if s.project.Dirty() {
		out += "  *"
	}
	return out
}

// paintInto renders st into dst. It returns false if ctx was cancelled
// before the frame was complete.
func paintInto(ctx context.Context, dst *image.RGBA, st paintState) bool {
	th, l := st.th, st.layout
	render.Fill(dst, dst.Bounds(), th.Background)
	render.Sheet(dst, l.sheet, st.sheet, &st.view, th)
	if ctx.Err() != nil {
		return false
	}
	render.Frames(dst, l.sheet, st.outlines, &st.view, th, render.OverlayOptions{HandleSize: st.handleSize, Handles: st.handles})
	if ctx.Err() != nil {
		return false
	}
	drawToolbar(dst, l.toolbar, st.buttons, th)
	drawList(dst, l.list, st.rows, th)
	render.Preview(dst, l.preview, st.sheet, st.preview, st.ghost, th, st.previewOpt)
	render.Rect(dst, l.preview, th.PreviewBorder, 1)
	drawStatus(dst, l.status, st.status, st.message, th)
	if ctx.Err() != nil {
		return false
	}
	if st.alertTitle != "" {
		render.Alert(dst, dst.Bounds(), st.alertTitle, st.alertText, th)
	}
	return ctx.Err() == nil
}

func drawToolbar(dst *image.RGBA, bar image.Rectangle, buttons []buttonFace, th *theme.Theme) {
	render.Fill(dst, bar, th.ToolbarBackground)
	for _, b := range buttons {
		bg := th.ButtonBackground
		switch b.state {
		case StateHover:
			bg = th.ButtonBackgroundHover
		case StatePressed:
			bg = th.ButtonActive
		}
		render.Fill(dst, b.rect, bg)
		render.Rect(dst, b.rect, th.ButtonBorder, 1)
		render.Label(dst, b.rect.Inset(1), b.label, th.ButtonText)
	}
}

func drawList(dst *image.RGBA, area image.Rectangle, rows []listRow, th *theme.Theme) {
	render.Fill(dst, area, th.ListBackground)
	y := area.Min.Y
	for _, r := range rows {
		rect := image.Rect(area.Min.X, y, area.Max.X, y+rowHeight)
		switch {
		case r.active:
			render.Fill(dst, rect, th.ListActive)
		case r.selected:
			render.Fill(dst, rect, th.ListSelected)
		case r.hover:
			render.Fill(dst, rect, th.ButtonBackgroundHover)
		}
		render.Label(dst, rect, fmt.Sprintf("%s (%d) %dfps", r.name, r.frames, r.speed), th.ListText)
		y += rowHeight
	}
	render.Rect(dst, area, th.ButtonBorder, 1)
}

func drawStatus(dst *image.RGBA, bar image.Rectangle, status, message string, th *theme.Theme) {
	render.Fill(dst, bar, th.StatusBackground)
	render.Label(dst, bar, status, th.StatusText)
	if message == "" {
		return
	}
	w := render.MeasureText(render.LabelFace, message) + 8
	r := image.Rect(bar.Max.X-w-4, bar.Min.Y, bar.Max.X, bar.Max.Y)
	render.Fill(dst, r, th.StatusBackground)
	render.Label(dst, r, message, th.StatusText)
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState) {
	b, err := s.NewBuffer(st.layout.size)
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	if !paintInto(ctx, b.RGBA(), st) {
		return
	}
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}
