package animation

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Project is a spritesheet with the sequences cut from it.
type Project struct {
	spritesheet string
	sequences   []*Sequence
	active      *Sequence
	selected    map[*Sequence]struct{}
	dirty       bool

	subs   []subscription
	nextID int
}

// NewProject returns an empty project for the spritesheet at path.
func NewProject(path string) *Project {
	return &Project{
		spritesheet: path,
		selected:    make(map[*Sequence]struct{}),
	}
}

// Subscribe registers fn for every change. The returned function removes it.
func (p *Project) Subscribe(fn Listener) (unsubscribe func()) {
	p.nextID++
	id := p.nextID
	p.subs = append(p.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range p.subs {
			if s.id == id {
				p.subs = append(p.subs[:i:i], p.subs[i+1:]...)
				return
			}
		}
	}
}

func (p *Project) emit(e Event) {
	if e.Kind.structural() {
		p.dirty = true
	}
	subs := p.subs
	for _, s := range subs {
		s.fn(e)
	}
}

// SpritesheetPath returns the path of the source image.
func (p *Project) SpritesheetPath() string { return p.spritesheet }

// SpritesheetName returns the image file name without directory or extension.
func (p *Project) SpritesheetName() string {
	base := filepath.Base(p.spritesheet)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Dirty reports whether the project changed since it was created, loaded or
// last marked saved.
func (p *Project) Dirty() bool { return p.dirty }

// MarkSaved clears the dirty flag.
func (p *Project) MarkSaved() { p.dirty = false }

// Sequences returns a copy of the sequence list.
func (p *Project) Sequences() []*Sequence {
	out := make([]*Sequence, len(p.sequences))
	copy(out, p.sequences)
	return out
}

// Sequence returns the sequence at index i or nil.
func (p *Project) Sequence(i int) *Sequence {
	if i < 0 || i >= len(p.sequences) {
		return nil
	}
	return p.sequences[i]
}

// SequenceByName returns the first sequence called name.
func (p *Project) SequenceByName(name string) (*Sequence, bool) {
	for _, s := range p.sequences {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}

// IndexOf returns the position of s or -1.
func (p *Project) IndexOf(s *Sequence) int {
	for i, sq := range p.sequences {
		if sq == s {
			return i
		}
	}
	return -1
}

// NewSequence appends a sequence. An empty name becomes "Sequence_<n>" where n
// is the number of sequences before this one. With makeActive the sequence
// becomes the active sequence and the only selected one.
func (p *Project) NewSequence(name string, makeActive bool) *Sequence {
	if name == "" {
		name = fmt.Sprintf("Sequence_%d", len(p.sequences))
	}
	s := NewSequence(name)
	s.owner = p
	p.sequences = append(p.sequences, s)
	p.emit(Event{Kind: SequenceAdded, Sequence: s})
	if makeActive {
		p.selected = map[*Sequence]struct{}{s: {}}
		p.emit(Event{Kind: SequenceSelectionChanged, Sequence: s})
		p.setActive(s)
	}
	return s
}

// DeleteSequence removes s and every weak reference to it.
func (p *Project) DeleteSequence(s *Sequence) error {
	i := p.IndexOf(s)
	if i < 0 {
		return fmt.Errorf("delete sequence: %w", ErrNotFound)
	}
	if p.active == s {
		p.setActive(nil)
	}
	p.sequences = append(p.sequences[:i], p.sequences[i+1:]...)
	_, wasSelected := p.selected[s]
	delete(p.selected, s)
	p.emit(Event{Kind: SequenceRemoved, Sequence: s})
	if wasSelected {
		p.emit(Event{Kind: SequenceSelectionChanged})
	}
	s.owner = nil
	return nil
}

// RenameSequence renames s.
func (p *Project) RenameSequence(s *Sequence, name string) error {
	if p.IndexOf(s) < 0 {
		return fmt.Errorf("rename sequence: %w", ErrNotFound)
	}
	s.SetName(name)
	return nil
}

// ActiveSequence returns the active sequence or nil.
func (p *Project) ActiveSequence() *Sequence { return p.active }

// SetActiveSequence makes s the active sequence. A nil s clears it.
func (p *Project) SetActiveSequence(s *Sequence) error {
	if s != nil && p.IndexOf(s) < 0 {
		return fmt.Errorf("set active sequence: %w", ErrInvalidReference)
	}
	p.setActive(s)
	return nil
}

func (p *Project) setActive(s *Sequence) {
	if p.active == s {
		return
	}
	p.active = s
	p.emit(Event{Kind: ActiveSequenceChanged, Sequence: s})
}

// ActiveFrame returns the active frame of the active sequence.
func (p *Project) ActiveFrame() *Frame {
	if p.active == nil {
		return nil
	}
	return p.active.active
}

// IsSelected reports whether s is selected.
func (p *Project) IsSelected(s *Sequence) bool {
	_, ok := p.selected[s]
	return ok
}

// Select adds the sequence called name to the selection.
func (p *Project) Select(name string) error {
	s, ok := p.SequenceByName(name)
	if !ok {
		return fmt.Errorf("select sequence %q: %w", name, ErrNotFound)
	}
	if _, ok := p.selected[s]; !ok {
		p.selected[s] = struct{}{}
		p.emit(Event{Kind: SequenceSelectionChanged, Sequence: s})
	}
	return nil
}

// Deselect removes the sequence called name from the selection.
func (p *Project) Deselect(name string) error {
	s, ok := p.SequenceByName(name)
	if !ok {
		return fmt.Errorf("deselect sequence %q: %w", name, ErrNotFound)
	}
	if _, ok := p.selected[s]; ok {
		delete(p.selected, s)
		p.emit(Event{Kind: SequenceSelectionChanged, Sequence: s})
	}
	return nil
}

// SelectAll selects every sequence.
func (p *Project) SelectAll() {
	changed := false
	for _, s := range p.sequences {
		if _, ok := p.selected[s]; !ok {
			p.selected[s] = struct{}{}
			changed = true
		}
	}
	if changed {
		p.emit(Event{Kind: SequenceSelectionChanged})
	}
}

// DeselectAll clears the sequence selection and the active sequence.
func (p *Project) DeselectAll() {
	if len(p.selected) > 0 {
		p.selected = make(map[*Sequence]struct{})
		p.emit(Event{Kind: SequenceSelectionChanged})
	}
	p.setActive(nil)
}

// SelectedSequences returns the selected sequences in list order.
func (p *Project) SelectedSequences() []*Sequence {
	var out []*Sequence
	for _, s := range p.sequences {
		if _, ok := p.selected[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// SelectedFrames flattens the frame selection of every selected sequence.
func (p *Project) SelectedFrames() []*Frame {
	var out []*Frame
	p.ForEachSelected(func(_ *Sequence, f *Frame) { out = append(out, f) })
	return out
}

// ForEachSelected calls fn for each selected frame of each selected sequence
// in the order used by SelectedFrames.
func (p *Project) ForEachSelected(fn func(*Sequence, *Frame)) {
	for _, s := range p.SelectedSequences() {
		for _, f := range s.SelectedFrames() {
			fn(s, f)
		}
	}
}

// DeleteSelectedFrames removes every selected frame of every selected
// sequence and returns how many were removed.
func (p *Project) DeleteSelectedFrames() int {
	n := 0
	for _, s := range p.SelectedSequences() {
		n += s.RemoveSelected()
	}
	return n
}

// FrameCount returns the number of frames across all sequences.
func (p *Project) FrameCount() int {
	n := 0
	for _, s := range p.sequences {
		n += len(s.frames)
	}
	return n
}
