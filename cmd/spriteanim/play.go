package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/example/spriteanim/internal/playback"
)

// playCmd runs the playback scheduler without a window and prints the frame
// index after every tick.
type playCmd struct {
	project  string
	sequence string
	mode     string
	ticks    int
	start    int
	realtime bool
	*root
	fs *flag.FlagSet
}

func (p *playCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func parsePlayCmd(args []string, r *root) (*playCmd, error) {
	fs := r.newFlagSet("play")
	p := &playCmd{root: r, fs: fs}
	fs.Usage = usageFunc(p)
	fs.StringVar(&p.project, "project", "", "project file")
	fs.StringVar(&p.sequence, "seq", "", "sequence to play (default: the first)")
	fs.StringVar(&p.mode, "mode", r.config.Playback.Mode, "loop or back_and_forth")
	fs.IntVar(&p.ticks, "ticks", 10, "number of ticks to run")
	fs.IntVar(&p.start, "start", 0, "frame index to start from")
	fs.BoolVar(&p.realtime, "realtime", false, "wait for the timer at the sequence frame rate")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if p.project == "" || p.ticks < 0 {
		return nil, &UsageError{of: p}
	}
	return p, nil
}

func (p *playCmd) Run() error {
	proj, err := p.openProject(p.project)
	if err != nil {
		return err
	}
	seq, err := findSequence(proj, p.sequence)
	if err != nil {
		return err
	}
	mode, err := playback.ParseMode(p.mode)
	if err != nil {
		return err
	}
	if err := proj.SetActiveSequence(seq); err != nil {
		return err
	}
	start, err := findFrame(seq, p.start)
	if err != nil {
		return err
	}
	if err := seq.SetActiveFrame(start); err != nil {
		return err
	}

	ticks := make(chan any, 1)
	post := func(v any) {
		select {
		case ticks <- v:
		default:
		}
	}
	s := playback.New(proj, post, playback.WithMode(mode))
	defer s.Close()

	fmt.Fprintf(p.stdout, "%s %s %d fps\n", seq.Name(), mode, seq.Speed())
	fmt.Fprintln(p.stdout, s.Index())
	if p.realtime && !s.Start() {
		return fmt.Errorf("sequence %q has nothing to play", seq.Name())
	}
	for i := 0; i < p.ticks; i++ {
		if p.realtime {
			select {
			case v := <-ticks:
				t, ok := v.(playback.Tick)
				if !ok || !s.Tick(t) {
					i--
					continue
				}
			case <-time.After(5 * time.Second):
				return fmt.Errorf("timed out waiting for tick %d", i+1)
			}
		} else if !s.Step() {
			return fmt.Errorf("sequence %q has nothing to play", seq.Name())
		}
		fmt.Fprintln(p.stdout, s.Index())
	}
	return nil
}
