package animation

import (
	"fmt"
	"image"
)

// DefaultSpeed is the playback rate of a new sequence in frames per second.
const DefaultSpeed = 20

// Sequence is an ordered list of frames played back at one speed. The list
// order is both the playback order and the hit-test order.
type Sequence struct {
	name     string
	frames   []*Frame
	speed    int
	active   *Frame
	selected map[*Frame]struct{}

	owner *Project
}

// NewSequence returns an empty sequence that is not attached to a project.
func NewSequence(name string) *Sequence {
	return &Sequence{
		name:     name,
		speed:    DefaultSpeed,
		selected: make(map[*Frame]struct{}),
	}
}

func (s *Sequence) emit(kind EventKind, f *Frame) {
	if s.owner != nil {
		s.owner.emit(Event{Kind: kind, Sequence: s, Frame: f})
	}
}

// Name returns the sequence name.
func (s *Sequence) Name() string { return s.name }

// SetName renames the sequence.
func (s *Sequence) SetName(name string) {
	if name == s.name {
		return
	}
	s.name = name
	s.emit(SequenceChanged, nil)
}

// Speed returns the playback rate in frames per second.
func (s *Sequence) Speed() int { return s.speed }

// SetSpeed changes the playback rate. Range checks belong to the caller.
func (s *Sequence) SetSpeed(fps int) {
	if fps == s.speed {
		return
	}
	s.speed = fps
	s.emit(SequenceChanged, nil)
}

// Len returns the number of frames.
func (s *Sequence) Len() int { return len(s.frames) }

// Frames returns a copy of the frame list.
func (s *Sequence) Frames() []*Frame {
	out := make([]*Frame, len(s.frames))
	copy(out, s.frames)
	return out
}

// Frame returns the frame at index i or nil when i is out of range.
func (s *Sequence) Frame(i int) *Frame {
	if i < 0 || i >= len(s.frames) {
		return nil
	}
	return s.frames[i]
}

// IndexOf returns the position of f or -1.
func (s *Sequence) IndexOf(f *Frame) int {
	for i, fr := range s.frames {
		if fr == f {
			return i
		}
	}
	return -1
}

// Has reports whether f belongs to the sequence.
func (s *Sequence) Has(f *Frame) bool { return f != nil && s.IndexOf(f) >= 0 }

// AddFrame appends f and makes it the active and only selected frame.
func (s *Sequence) AddFrame(f *Frame) {
	s.frames = append(s.frames, f)
	s.emit(FrameAdded, f)
	s.setSole(f)
}

// RemoveFrame deletes f from the sequence, its selection and the active
// pointer.
func (s *Sequence) RemoveFrame(f *Frame) error {
	i := s.IndexOf(f)
	if i < 0 {
		return fmt.Errorf("remove frame: %w", ErrNotFound)
	}
	s.frames = append(s.frames[:i], s.frames[i+1:]...)
	_, wasSelected := s.selected[f]
	delete(s.selected, f)
	s.emit(FrameRemoved, f)
	if wasSelected {
		s.emit(FrameSelectionChanged, nil)
	}
	if s.active == f {
		s.setActive(nil)
	}
	return nil
}

// RemoveSelected deletes every selected frame and returns how many went.
func (s *Sequence) RemoveSelected() int {
	n := 0
	for _, f := range s.SelectedFrames() {
		if s.RemoveFrame(f) == nil {
			n++
		}
	}
	return n
}

// ActiveFrame returns the active frame or nil.
func (s *Sequence) ActiveFrame() *Frame { return s.active }

// ActiveFrameIndex returns the index of the active frame.
func (s *Sequence) ActiveFrameIndex() (int, bool) {
	if s.active == nil {
		return 0, false
	}
	i := s.IndexOf(s.active)
	return i, i >= 0
}

// SetActiveFrame makes f the active frame. A nil f clears it.
func (s *Sequence) SetActiveFrame(f *Frame) error {
	if f != nil && !s.Has(f) {
		return fmt.Errorf("set active frame: %w", ErrInvalidReference)
	}
	s.setActive(f)
	return nil
}

func (s *Sequence) setActive(f *Frame) {
	if s.active == f {
		return
	}
	s.active = f
	s.emit(ActiveFrameChanged, f)
}

// IsSelected reports whether f is selected.
func (s *Sequence) IsSelected(f *Frame) bool {
	_, ok := s.selected[f]
	return ok
}

// SelectedFrames returns the selected frames in list order.
func (s *Sequence) SelectedFrames() []*Frame {
	var out []*Frame
	for _, f := range s.frames {
		if _, ok := s.selected[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Select adds f to the selection and makes it active.
func (s *Sequence) Select(f *Frame) error {
	if !s.Has(f) {
		return fmt.Errorf("select frame: %w", ErrNotFound)
	}
	s.selectFrame(f)
	return nil
}

// SelectIndex selects the frame at i. Out of range indexes are ignored.
func (s *Sequence) SelectIndex(i int) {
	if f := s.Frame(i); f != nil {
		s.selectFrame(f)
	}
}

func (s *Sequence) selectFrame(f *Frame) {
	if _, ok := s.selected[f]; !ok {
		s.selected[f] = struct{}{}
		s.emit(FrameSelectionChanged, f)
	}
	s.setActive(f)
}

// Deselect removes f from the selection. If f was active the active frame is
// cleared.
func (s *Sequence) Deselect(f *Frame) error {
	if !s.Has(f) {
		return fmt.Errorf("deselect frame: %w", ErrNotFound)
	}
	s.deselectFrame(f)
	return nil
}

// DeselectIndex deselects the frame at i. Out of range indexes are ignored.
func (s *Sequence) DeselectIndex(i int) {
	if f := s.Frame(i); f != nil {
		s.deselectFrame(f)
	}
}

func (s *Sequence) deselectFrame(f *Frame) {
	if _, ok := s.selected[f]; ok {
		delete(s.selected, f)
		s.emit(FrameSelectionChanged, f)
	}
	if s.active == f {
		s.setActive(nil)
	}
}

// SelectAll selects every frame. The active frame is unchanged.
func (s *Sequence) SelectAll() {
	changed := false
	for _, f := range s.frames {
		if _, ok := s.selected[f]; !ok {
			s.selected[f] = struct{}{}
			changed = true
		}
	}
	if changed {
		s.emit(FrameSelectionChanged, nil)
	}
}

// DeselectAll clears the selection. The active frame is unchanged.
func (s *Sequence) DeselectAll() {
	if len(s.selected) == 0 {
		return
	}
	s.selected = make(map[*Frame]struct{})
	s.emit(FrameSelectionChanged, nil)
}

// SelectRange selects every frame between indexes a and b inclusive. The
// bounds may be given in either order and are clipped to the list.
func (s *Sequence) SelectRange(a, b int) {
	if a > b {
		a, b = b, a
	}
	if a < 0 {
		a = 0
	}
	if b >= len(s.frames) {
		b = len(s.frames) - 1
	}
	for i := a; i <= b; i++ {
		s.selectFrame(s.frames[i])
	}
}

// SetSole makes f the only selected frame and the active frame.
func (s *Sequence) SetSole(f *Frame) error {
	if !s.Has(f) {
		return fmt.Errorf("set sole frame: %w", ErrNotFound)
	}
	s.setSole(f)
	return nil
}

func (s *Sequence) setSole(f *Frame) {
	only := len(s.selected) == 1 && s.IsSelected(f)
	if !only {
		s.selected = map[*Frame]struct{}{f: {}}
		s.emit(FrameSelectionChanged, f)
	}
	s.setActive(f)
}

// NextFrame moves the active pointer forward, wrapping at the end.
func (s *Sequence) NextFrame() { s.step(1) }

// PrevFrame moves the active pointer back, wrapping at the start.
func (s *Sequence) PrevFrame() { s.step(-1) }

func (s *Sequence) step(d int) {
	n := len(s.frames)
	if n == 0 {
		return
	}
	i, ok := s.ActiveFrameIndex()
	if !ok {
		s.setActive(s.frames[0])
		return
	}
	s.setActive(s.frames[((i+d)%n+n)%n])
}

// FrameAt returns the first frame in list order containing p.
func (s *Sequence) FrameAt(p image.Point) *Frame {
	for _, f := range s.frames {
		if f.Contains(p) {
			return f
		}
	}
	return nil
}

// SetFrameRect replaces the geometry of f.
func (s *Sequence) SetFrameRect(f *Frame, r image.Rectangle) error {
	if !s.Has(f) {
		return fmt.Errorf("set frame rect: %w", ErrNotFound)
	}
	if f.Rect == r {
		return nil
	}
	f.Rect = r
	s.emit(FrameAltered, f)
	return nil
}

// TranslateFrame moves f by dx, dy.
func (s *Sequence) TranslateFrame(f *Frame, dx, dy int) error {
	if !s.Has(f) {
		return fmt.Errorf("translate frame: %w", ErrNotFound)
	}
	if dx == 0 && dy == 0 {
		return nil
	}
	f.Translate(dx, dy)
	s.emit(FrameAltered, f)
	return nil
}

// NormalizeFrame normalizes f, emitting a change only if it had to swap.
func (s *Sequence) NormalizeFrame(f *Frame) error {
	if !s.Has(f) {
		return fmt.Errorf("normalize frame: %w", ErrNotFound)
	}
	if f.Normalized() {
		return nil
	}
	f.Normalize()
	s.emit(FrameAltered, f)
	return nil
}

// SetFrameShift replaces the display offset of f.
func (s *Sequence) SetFrameShift(f *Frame, p image.Point) error {
	if !s.Has(f) {
		return fmt.Errorf("set frame shift: %w", ErrNotFound)
	}
	if f.Shift == p {
		return nil
	}
	f.SetShift(p)
	s.emit(FrameAltered, f)
	return nil
}

// MoveFrameShift adjusts the display offset of f.
func (s *Sequence) MoveFrameShift(f *Frame, dx, dy int) error {
	if !s.Has(f) {
		return fmt.Errorf("move frame shift: %w", ErrNotFound)
	}
	return s.SetFrameShift(f, f.Shift.Add(image.Pt(dx, dy)))
}

// MoveFrameIndex moves f to position to in the playback order.
func (s *Sequence) MoveFrameIndex(f *Frame, to int) error {
	from := s.IndexOf(f)
	if from < 0 {
		return fmt.Errorf("reorder frame: %w", ErrNotFound)
	}
	if to < 0 || to >= len(s.frames) {
		return fmt.Errorf("reorder frame: index %d out of range: %w", to, ErrInvalidReference)
	}
	if from == to {
		return nil
	}
	s.frames = append(s.frames[:from], s.frames[from+1:]...)
	s.frames = append(s.frames[:to], append([]*Frame{f}, s.frames[to:]...)...)
	s.emit(FrameAltered, f)
	return nil
}
