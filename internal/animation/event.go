package animation

// EventKind identifies a change to a Project.
type EventKind int

const (
	SequenceAdded EventKind = iota
	SequenceRemoved
	SequenceChanged
	FrameAdded
	FrameRemoved
	FrameAltered
	ActiveSequenceChanged
	ActiveFrameChanged
	FrameSelectionChanged
	SequenceSelectionChanged
)

var eventNames = [...]string{
	SequenceAdded:            "sequence-added",
	SequenceRemoved:          "sequence-removed",
	SequenceChanged:          "sequence-changed",
	FrameAdded:               "frame-added",
	FrameRemoved:             "frame-removed",
	FrameAltered:             "frame-altered",
	ActiveSequenceChanged:    "active-sequence-changed",
	ActiveFrameChanged:       "active-frame-changed",
	FrameSelectionChanged:    "frame-selection-changed",
	SequenceSelectionChanged: "sequence-selection-changed",
}

func (k EventKind) String() string {
	if int(k) >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// structural reports whether the event changes saved data.
func (k EventKind) structural() bool {
	switch k {
	case SequenceAdded, SequenceRemoved, SequenceChanged, FrameAdded, FrameRemoved, FrameAltered:
		return true
	}
	return false
}

// Event describes one change. Sequence and Frame are set when relevant.
type Event struct {
	Kind     EventKind
	Sequence *Sequence
	Frame    *Frame
}

// Listener receives events synchronously on the goroutine that made the change.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}
