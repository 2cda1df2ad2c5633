// Package playback steps the active sequence of a project at its frame rate.
package playback

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/spriteanim/internal/animation"
)

// Mode is the repeat policy.
type Mode int

const (
	Loop Mode = iota
	BackAndForth
)

func (m Mode) String() string {
	if m == BackAndForth {
		return "back_and_forth"
	}
	return "loop"
}

// ParseMode accepts "loop" and "back_and_forth" (or "back-and-forth").
func ParseMode(s string) (Mode, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "", "loop":
		return Loop, nil
	case "back_and_forth", "backandforth", "pingpong":
		return BackAndForth, nil
	}
	return Loop, fmt.Errorf("unknown playback mode %q", s)
}

// State is whether the scheduler is running.
type State int

const (
	Stopped State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "stopped"
}

// Tick is posted by the timer goroutine. The owner of the event loop hands it
// back to Scheduler.Tick.
type Tick struct {
	gen uint64
}

// Scheduler advances the active frame of the active sequence on a timer.
// Apart from the timer goroutine, which only posts Tick values, every method
// must be called from the goroutine that owns the project.
type Scheduler struct {
	project *animation.Project
	post    func(any)
	onState func(State)

	mode    Mode
	state   State
	index   int
	forward bool

	gen       uint64
	ticker    *time.Ticker
	cancel    context.CancelFunc
	advancing bool
	unsub     func()
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithMode sets the initial repeat policy.
func WithMode(m Mode) Option { return func(s *Scheduler) { s.mode = m } }

// WithStateListener registers fn for play and stop transitions.
func WithStateListener(fn func(State)) Option { return func(s *Scheduler) { s.onState = fn } }

// New returns a stopped scheduler for p. post delivers ticks to the owning
// event loop and must not block.
func New(p *animation.Project, post func(any), opts ...Option) *Scheduler {
	s := &Scheduler{project: p, post: post, forward: true}
	for _, o := range opts {
		o(s)
	}
	s.unsub = p.Subscribe(s.handle)
	s.snap()
	return s
}

// Close stops playback and detaches from the project.
func (s *Scheduler) Close() {
	s.Stop()
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
}

func (s *Scheduler) State() State  { return s.state }
func (s *Scheduler) Playing() bool { return s.state == Playing }
func (s *Scheduler) Mode() Mode    { return s.mode }

// Index is the playback position in the active sequence.
func (s *Scheduler) Index() int { return s.index }

// SetMode changes the repeat policy.
func (s *Scheduler) SetMode(m Mode) {
	s.mode = m
	if m == Loop {
		s.forward = true
	}
}

// ToggleMode flips between Loop and BackAndForth.
func (s *Scheduler) ToggleMode() Mode {
	if s.mode == Loop {
		s.SetMode(BackAndForth)
	} else {
		s.SetMode(Loop)
	}
	return s.mode
}

func interval(fps int) time.Duration {
	if fps < 1 {
		fps = 1
	}
	d := time.Duration(1000/fps) * time.Millisecond
	if d <= 0 {
		d = time.Millisecond
	}
	return d
}

// Start begins playback from the active frame of the active sequence. It
// reports false when there is nothing to play.
func (s *Scheduler) Start() bool {
	if s.state == Playing {
		return true
	}
	seq := s.project.ActiveSequence()
	if seq == nil || seq.Len() == 0 {
		return false
	}
	s.snap()
	s.forward = true
	s.gen++
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.ticker = time.NewTicker(interval(seq.Speed()))
	go run(ctx, s.ticker, s.post, Tick{gen: s.gen})
	s.setState(Playing)
	return true
}

func run(ctx context.Context, t *time.Ticker, post func(any), tick Tick) {
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			post(tick)
		}
	}
}

// Stop halts the timer. The playback position is kept.
func (s *Scheduler) Stop() {
	if s.state != Playing {
		return
	}
	s.gen++
	s.cancel()
	s.cancel = nil
	s.ticker = nil
	s.setState(Stopped)
}

// Toggle starts or stops playback.
func (s *Scheduler) Toggle() State {
	if s.state == Playing {
		s.Stop()
	} else {
		s.Start()
	}
	return s.state
}

// Reset stops playback and moves the position back to the active frame.
func (s *Scheduler) Reset() {
	s.Stop()
	s.snap()
	s.forward = true
}

func (s *Scheduler) setState(st State) {
	s.state = st
	if s.onState != nil {
		s.onState(st)
	}
}

// SetSpeed changes the frame rate of the active sequence. While playing the
// timer interval follows without restarting playback.
func (s *Scheduler) SetSpeed(fps int) {
	if seq := s.project.ActiveSequence(); seq != nil {
		seq.SetSpeed(fps)
	}
}

// Tick applies a timer tick. Ticks left over from an earlier run are
// ignored. It reports whether the active frame moved.
func (s *Scheduler) Tick(t Tick) bool {
	if t.gen != s.gen || s.state != Playing {
		return false
	}
	return s.Step()
}

// Step advances one frame under the current mode, whether or not the timer
// is running.
func (s *Scheduler) Step() bool {
	seq := s.project.ActiveSequence()
	if seq == nil {
		return false
	}
	n := seq.Len()
	if n == 0 {
		return false
	}
	if s.index >= n {
		s.index = n - 1
	}
	s.index = s.next(s.index, n)
	s.advancing = true
	err := seq.SetActiveFrame(seq.Frame(s.index))
	s.advancing = false
	return err == nil
}

func (s *Scheduler) next(i, n int) int {
	if n == 1 {
		return 0
	}
	if s.mode == Loop {
		return (i + 1) % n
	}
	if s.forward {
		if i+1 >= n {
			s.forward = false
			return i - 1
		}
		return i + 1
	}
	if i-1 < 0 {
		s.forward = true
		return i + 1
	}
	return i - 1
}

// Next and Prev step the active frame by hand, wrapping at the ends.
func (s *Scheduler) Next() {
	if seq := s.project.ActiveSequence(); seq != nil {
		seq.NextFrame()
	}
}

func (s *Scheduler) Prev() {
	if seq := s.project.ActiveSequence(); seq != nil {
		seq.PrevFrame()
	}
}

// GhostIndex is the frame shown before the current one, used for onion
// skinning. ok is false for sequences shorter than two frames.
func (s *Scheduler) GhostIndex() (int, bool) {
	seq := s.project.ActiveSequence()
	if seq == nil || seq.Len() < 2 {
		return 0, false
	}
	n := seq.Len()
	i := s.index
	if i >= n {
		i = n - 1
	}
	if s.mode == BackAndForth {
		switch {
		case s.forward && i == 0:
			return 1, true
		case !s.forward && i == n-1:
			return n - 2, true
		case !s.forward:
			return i + 1, true
		}
	}
	return (i - 1 + n) % n, true
}

func (s *Scheduler) snap() {
	s.index = 0
	if seq := s.project.ActiveSequence(); seq != nil {
		if i, ok := seq.ActiveFrameIndex(); ok {
			s.index = i
		}
	}
}

func (s *Scheduler) handle(e animation.Event) {
	active := s.project.ActiveSequence()
	switch e.Kind {
	case animation.ActiveSequenceChanged:
		s.Stop()
		s.snap()
		s.forward = true
	case animation.ActiveFrameChanged:
		if s.advancing || e.Sequence != active {
			return
		}
		if e.Frame != nil {
			s.snap()
		}
	case animation.SequenceChanged:
		if e.Sequence == active && s.state == Playing && s.ticker != nil {
			s.ticker.Reset(interval(active.Speed()))
		}
	case animation.FrameRemoved:
		if e.Sequence == active && s.index >= active.Len() {
			s.index = 0
			if active.Len() == 0 {
				s.Stop()
			}
		}
	}
}
