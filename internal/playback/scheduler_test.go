package playback

import (
	"image"
	"testing"
	"time"

	"github.com/example/spriteanim/internal/animation"
)

func project(n int) (*animation.Project, *animation.Sequence) {
	p := animation.NewProject("sheet.png")
	seq := p.NewSequence("walk", true)
	for i := 0; i < n; i++ {
		seq.AddFrame(animation.NewFrame(image.Rect(i*8, 0, i*8+8, 8)))
	}
	_ = seq.SetActiveFrame(seq.Frame(0))
	return p, seq
}

func discard(any) {}

func visits(s *Scheduler, seq *animation.Sequence, steps int) []int {
	out := []int{s.Index()}
	for i := 0; i < steps; i++ {
		s.Step()
		idx, _ := seq.ActiveFrameIndex()
		out = append(out, idx)
	}
	return out
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBackAndForthOrder(t *testing.T) {
	p, seq := project(3)
	s := New(p, discard, WithMode(BackAndForth))
	defer s.Close()
	got := visits(s, seq, 8)
	want := []int{0, 1, 2, 1, 0, 1, 2, 1, 0}
	if !equal(got, want) {
		t.Fatalf("visits = %v, want %v", got, want)
	}
}

func TestLoopOrder(t *testing.T) {
	p, seq := project(3)
	s := New(p, discard)
	defer s.Close()
	got := visits(s, seq, 5)
	want := []int{0, 1, 2, 0, 1, 2}
	if !equal(got, want) {
		t.Fatalf("visits = %v, want %v", got, want)
	}
}

func TestSingleFrameStays(t *testing.T) {
	p, seq := project(1)
	s := New(p, discard, WithMode(BackAndForth))
	defer s.Close()
	if got := visits(s, seq, 3); !equal(got, []int{0, 0, 0, 0}) {
		t.Fatalf("visits = %v", got)
	}
}

func TestStartRequiresFrames(t *testing.T) {
	p, _ := project(0)
	s := New(p, discard)
	defer s.Close()
	if s.Start() || s.Playing() {
		t.Fatal("started on an empty sequence")
	}
}

func TestTimerTicks(t *testing.T) {
	p, seq := project(3)
	ticks := make(chan any, 16)
	post := func(v any) {
		select {
		case ticks <- v:
		default:
		}
	}
	var states []State
	s := New(p, post, WithStateListener(func(st State) { states = append(states, st) }))
	defer s.Close()
	seq.SetSpeed(200)
	if !s.Start() {
		t.Fatal("Start failed")
	}
	var tick Tick
	select {
	case v := <-ticks:
		tick = v.(Tick)
	case <-time.After(2 * time.Second):
		t.Fatal("no tick posted")
	}
	if !s.Tick(tick) {
		t.Fatal("current tick ignored")
	}
	if idx, _ := seq.ActiveFrameIndex(); idx != 1 {
		t.Fatalf("active index = %d", idx)
	}
	s.Stop()
	if s.Tick(tick) {
		t.Fatal("stale tick applied after stop")
	}
	if s.Index() != 1 {
		t.Fatalf("stop should keep position, index = %d", s.Index())
	}
	if len(states) != 2 || states[0] != Playing || states[1] != Stopped {
		t.Fatalf("states = %v", states)
	}
}

func TestStaleGenerationAfterRestart(t *testing.T) {
	p, _ := project(3)
	s := New(p, discard)
	defer s.Close()
	s.Start()
	old := Tick{gen: s.gen}
	s.Stop()
	s.Start()
	if s.Tick(old) {
		t.Fatal("tick from previous run applied")
	}
	if !s.Tick(Tick{gen: s.gen}) {
		t.Fatal("tick from current run ignored")
	}
}

func TestActiveSequenceChangeStopsAndSnaps(t *testing.T) {
	p, _ := project(3)
	other := p.NewSequence("idle", false)
	other.AddFrame(animation.NewFrame(image.Rect(0, 0, 4, 4)))
	other.AddFrame(animation.NewFrame(image.Rect(4, 0, 8, 4)))
	_ = other.SetActiveFrame(other.Frame(1))
	s := New(p, discard)
	defer s.Close()
	s.Start()
	s.Step()
	if err := p.SetActiveSequence(other); err != nil {
		t.Fatal(err)
	}
	if s.Playing() {
		t.Fatal("still playing after sequence switch")
	}
	if s.Index() != 1 {
		t.Fatalf("index = %d, want other's active index 1", s.Index())
	}
}

func TestExternalFrameChangeSnaps(t *testing.T) {
	p, seq := project(4)
	s := New(p, discard)
	defer s.Close()
	_ = seq.SetActiveFrame(seq.Frame(2))
	if s.Index() != 2 {
		t.Fatalf("index = %d", s.Index())
	}
	s.Step()
	if idx, _ := seq.ActiveFrameIndex(); idx != 3 {
		t.Fatalf("active = %d", idx)
	}
}

func TestSetSpeedWhilePlaying(t *testing.T) {
	p, seq := project(2)
	s := New(p, discard)
	defer s.Close()
	s.Start()
	gen := s.gen
	s.SetSpeed(60)
	if seq.Speed() != 60 {
		t.Fatalf("speed = %d", seq.Speed())
	}
	if !s.Playing() || s.gen != gen {
		t.Fatal("speed change restarted playback")
	}
}

func TestResetSnapsToActive(t *testing.T) {
	p, seq := project(3)
	s := New(p, discard)
	defer s.Close()
	s.Start()
	s.Step()
	s.Step()
	_ = seq.SetActiveFrame(seq.Frame(0))
	s.Reset()
	if s.Playing() || s.Index() != 0 {
		t.Fatalf("after reset playing=%v index=%d", s.Playing(), s.Index())
	}
}

func TestGhostIndex(t *testing.T) {
	p, _ := project(3)
	s := New(p, discard, WithMode(BackAndForth))
	defer s.Close()
	if g, ok := s.GhostIndex(); !ok || g != 1 {
		t.Fatalf("ghost at start = %d %v", g, ok)
	}
	s.Step()
	s.Step()
	s.Step()
	// Now at 1 going backwards, previously showed 2.
	if g, _ := s.GhostIndex(); g != 2 {
		t.Fatalf("ghost = %d", g)
	}
	s.SetMode(Loop)
	if g, _ := s.GhostIndex(); g != 0 {
		t.Fatalf("loop ghost = %d", g)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"loop": Loop, "back-and-forth": BackAndForth, "BACK_AND_FORTH": BackAndForth} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMode("shuffle"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
