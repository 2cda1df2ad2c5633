package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

const (
	minSpeed = 1
	maxSpeed = 120
)

// sequenceCmd adds, removes, renames and retimes sequences.
type sequenceCmd struct {
	op      string
	project string
	speed   int
	args    []string
	*root
	fs *flag.FlagSet
}

func (s *sequenceCmd) FlagSet() *flag.FlagSet {
	return s.fs
}

func parseSequenceCmd(args []string, r *root) (*sequenceCmd, error) {
	fs := r.newFlagSet("sequence")
	s := &sequenceCmd{root: r, fs: fs}
	fs.Usage = usageFunc(s)
	fs.StringVar(&s.project, "project", "", "project file")
	fs.IntVar(&s.speed, "speed", 0, "frame rate for a new sequence (default from config)")
	if len(args) < 1 {
		return nil, &UsageError{of: s}
	}
	s.op = strings.ToLower(args[0])
	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	s.args = fs.Args()
	if s.project == "" {
		return nil, &UsageError{of: s}
	}
	want := map[string]int{"add": -1, "list": 0, "remove": 1, "rename": 2, "speed": 2}
	n, ok := want[s.op]
	if !ok || (n >= 0 && len(s.args) != n) || (n < 0 && len(s.args) > 1) {
		return nil, &UsageError{of: s}
	}
	return s, nil
}

func checkSpeed(fps int) error {
	if fps < minSpeed || fps > maxSpeed {
		return fmt.Errorf("speed %d out of range [%d, %d]", fps, minSpeed, maxSpeed)
	}
	return nil
}

func (s *sequenceCmd) Run() error {
	p, err := s.openProject(s.project)
	if err != nil {
		return err
	}
	switch s.op {
	case "list":
		for _, seq := range p.Sequences() {
			fmt.Fprintf(s.stdout, "%s\t%d\t%d\n", seq.Name(), seq.Len(), seq.Speed())
		}
		return nil
	case "add":
		name := ""
		if len(s.args) == 1 {
			name = s.args[0]
		}
		if _, exists := p.SequenceByName(name); exists && name != "" {
			return fmt.Errorf("sequence %q already exists", name)
		}
		speed := s.speed
		if speed == 0 {
			speed = s.config.Editor.DefaultSpeed
		}
		if err := checkSpeed(speed); err != nil {
			return err
		}
		seq := p.NewSequence(name, true)
		seq.SetSpeed(speed)
		fmt.Fprintf(s.stdout, "added %s\n", seq.Name())
	case "remove":
		seq, err := findSequence(p, s.args[0])
		if err != nil {
			return err
		}
		if err := p.DeleteSequence(seq); err != nil {
			return err
		}
		fmt.Fprintf(s.stdout, "removed %s\n", seq.Name())
	case "rename":
		seq, err := findSequence(p, s.args[0])
		if err != nil {
			return err
		}
		if err := p.RenameSequence(seq, s.args[1]); err != nil {
			return err
		}
		fmt.Fprintf(s.stdout, "renamed %s to %s\n", s.args[0], seq.Name())
	case "speed":
		seq, err := findSequence(p, s.args[0])
		if err != nil {
			return err
		}
		fps, err := strconv.Atoi(s.args[1])
		if err != nil {
			return fmt.Errorf("invalid speed %q: %w", s.args[1], err)
		}
		if err := checkSpeed(fps); err != nil {
			return err
		}
		seq.SetSpeed(fps)
		fmt.Fprintf(s.stdout, "%s plays at %d fps\n", seq.Name(), fps)
	}
	return s.saveProject(p, s.project)
}
