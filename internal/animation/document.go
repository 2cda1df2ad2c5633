package animation

import (
	"encoding/json"
	"image"
)

// Document is the persisted form of a project.
type Document struct {
	FPath     string         `json:"fpath"`
	Sequences []SequenceData `json:"sequences"`
}

// SequenceData is the persisted form of a sequence.
type SequenceData struct {
	Name   string      `json:"name"`
	Speed  int         `json:"speed"`
	Frames []FrameData `json:"frames"`
}

// FrameData is the persisted form of a frame.
type FrameData struct {
	Pos   [2]int `json:"pos"`
	Size  [2]int `json:"size"`
	Shift [2]int `json:"shift"`
}

// ExportData captures the project in list order.
func (p *Project) ExportData() Document {
	doc := Document{FPath: p.spritesheet, Sequences: make([]SequenceData, 0, len(p.sequences))}
	for _, s := range p.sequences {
		sd := SequenceData{Name: s.name, Speed: s.speed, Frames: make([]FrameData, 0, len(s.frames))}
		for _, f := range s.frames {
			sd.Frames = append(sd.Frames, frameData(f))
		}
		doc.Sequences = append(doc.Sequences, sd)
	}
	return doc
}

func frameData(f *Frame) FrameData {
	r := f.Rect.Canon()
	return FrameData{
		Pos:   [2]int{r.Min.X, r.Min.Y},
		Size:  [2]int{r.Dx(), r.Dy()},
		Shift: [2]int{f.Shift.X, f.Shift.Y},
	}
}

func (fd FrameData) frame() *Frame {
	min := image.Pt(fd.Pos[0], fd.Pos[1])
	return &Frame{
		Rect:  image.Rectangle{Min: min, Max: min.Add(image.Pt(fd.Size[0], fd.Size[1]))},
		Shift: image.Pt(fd.Shift[0], fd.Shift[1]),
	}
}

// ImportData decodes project JSON and builds a project from it.
func ImportData(data []byte) (*Project, error) {
	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc), nil
}

// FromDocument builds a project from doc. The first sequence ends up active
// and solely selected, and every sequence has its first frame active and
// solely selected. The new project is not dirty.
func FromDocument(doc Document) *Project {
	p := NewProject(doc.FPath)
	p.appendDocument(doc)
	if first := p.Sequence(0); first != nil {
		p.selected = map[*Sequence]struct{}{first: {}}
		p.active = first
	}
	p.dirty = false
	return p
}

// MergeDocument appends the sequences in doc to p. The project's spritesheet
// is unchanged. The first merged sequence becomes active.
func (p *Project) MergeDocument(doc Document) []*Sequence {
	added := p.appendDocument(doc)
	if len(added) > 0 {
		p.selected = map[*Sequence]struct{}{added[0]: {}}
		p.emit(Event{Kind: SequenceSelectionChanged, Sequence: added[0]})
		p.setActive(added[0])
	}
	return added
}

func (p *Project) appendDocument(doc Document) []*Sequence {
	var added []*Sequence
	for _, sd := range doc.Sequences {
		s := p.NewSequence(sd.Name, true)
		s.speed = sd.Speed
		for _, fd := range sd.Frames {
			s.AddFrame(fd.frame())
		}
		if first := s.Frame(0); first != nil {
			s.setSole(first)
		}
		added = append(added, s)
	}
	return added
}

// raw mirrors Document with pointers so absent keys can be told apart from
// zero values.
type rawDocument struct {
	FPath     *string        `json:"fpath"`
	Sequences *[]rawSequence `json:"sequences"`
}

type rawSequence struct {
	Name   *string     `json:"name"`
	Speed  *int        `json:"speed"`
	Frames *[]rawFrame `json:"frames"`
}

type rawFrame struct {
	Pos   []int `json:"pos"`
	Size  []int `json:"size"`
	Shift []int `json:"shift"`
}

// DecodeDocument parses project JSON and checks every required key.
func DecodeDocument(data []byte) (Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, formatErr("%v", err)
	}
	if raw.FPath == nil {
		return Document{}, formatErr("missing key %q", "fpath")
	}
	if raw.Sequences == nil {
		return Document{}, formatErr("missing key %q", "sequences")
	}
	doc := Document{FPath: *raw.FPath, Sequences: make([]SequenceData, 0, len(*raw.Sequences))}
	for i, rs := range *raw.Sequences {
		switch {
		case rs.Name == nil:
			return Document{}, formatErr("sequence %d: missing key %q", i, "name")
		case rs.Speed == nil:
			return Document{}, formatErr("sequence %d: missing key %q", i, "speed")
		case rs.Frames == nil:
			return Document{}, formatErr("sequence %d: missing key %q", i, "frames")
		}
		sd := SequenceData{Name: *rs.Name, Speed: *rs.Speed, Frames: make([]FrameData, 0, len(*rs.Frames))}
		for j, rf := range *rs.Frames {
			var fd FrameData
			for _, field := range []struct {
				name string
				in   []int
				out  *[2]int
			}{
				{"pos", rf.Pos, &fd.Pos},
				{"size", rf.Size, &fd.Size},
				{"shift", rf.Shift, &fd.Shift},
			} {
				if len(field.in) != 2 {
					return Document{}, formatErr("sequence %d frame %d: %q must hold two integers", i, j, field.name)
				}
				*field.out = [2]int{field.in[0], field.in[1]}
			}
			if fd.Size[0] < 0 || fd.Size[1] < 0 {
				return Document{}, formatErr("sequence %d frame %d: negative size", i, j)
			}
			sd.Frames = append(sd.Frames, fd)
		}
		doc.Sequences = append(doc.Sequences, sd)
	}
	return doc, nil
}

// EncodeDocument renders doc as indented JSON.
func EncodeDocument(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
