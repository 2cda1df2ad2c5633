package main

import (
	"flag"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/example/spriteanim/internal/animation"
)

// frameCmd edits the frames of one sequence in a project file.
type frameCmd struct {
	op       string
	project  string
	sequence string
	index    int
	to       int
	relative bool
	args     []string
	*root
	fs *flag.FlagSet
}

func (f *frameCmd) FlagSet() *flag.FlagSet {
	return f.fs
}

func parseFrameCmd(args []string, r *root) (*frameCmd, error) {
	fs := r.newFlagSet("frame")
	f := &frameCmd{root: r, fs: fs}
	fs.Usage = usageFunc(f)
	fs.StringVar(&f.project, "project", "", "project file")
	fs.StringVar(&f.sequence, "seq", "", "sequence name (default: the active sequence)")
	fs.IntVar(&f.index, "index", -1, "frame index (default: the last frame)")
	fs.IntVar(&f.to, "to", -1, "destination index for move")
	fs.BoolVar(&f.relative, "relative", false, "add dx dy to the current shift instead of replacing it")
	if len(args) < 1 {
		return nil, &UsageError{of: f}
	}
	f.op = strings.ToLower(args[0])
	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	f.args = fs.Args()
	if f.project == "" {
		return nil, &UsageError{of: f}
	}
	switch f.op {
	case "add":
		if len(f.args) != 4 {
			return nil, &UsageError{of: f}
		}
	case "shift":
		if len(f.args) != 2 {
			return nil, &UsageError{of: f}
		}
	case "move":
		if f.to < 0 {
			return nil, &UsageError{of: f}
		}
	case "remove":
	default:
		return nil, &UsageError{of: f}
	}
	return f, nil
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		out[i] = n
	}
	return out, nil
}

func (f *frameCmd) target(s *animation.Sequence) (*animation.Frame, error) {
	i := f.index
	if i < 0 {
		i = s.Len() - 1
	}
	return findFrame(s, i)
}

func (f *frameCmd) Run() error {
	p, err := f.openProject(f.project)
	if err != nil {
		return err
	}
	s, err := findSequence(p, f.sequence)
	if err != nil {
		return err
	}
	nums, err := parseInts(f.args)
	if err != nil {
		return err
	}
	switch f.op {
	case "add":
		if nums[2] <= 0 || nums[3] <= 0 {
			return fmt.Errorf("frame size must be positive, got %dx%d", nums[2], nums[3])
		}
		fr := animation.NewFrame(image.Rect(nums[0], nums[1], nums[0]+nums[2], nums[1]+nums[3]))
		s.AddFrame(fr)
		fmt.Fprintf(f.stdout, "added frame %d to %s: %s\n", s.Len()-1, s.Name(), fr)
	case "remove":
		fr, err := f.target(s)
		if err != nil {
			return err
		}
		if err := s.RemoveFrame(fr); err != nil {
			return err
		}
		fmt.Fprintf(f.stdout, "removed %s from %s\n", fr, s.Name())
	case "shift":
		fr, err := f.target(s)
		if err != nil {
			return err
		}
		if f.relative {
			err = s.MoveFrameShift(fr, nums[0], nums[1])
		} else {
			err = s.SetFrameShift(fr, image.Pt(nums[0], nums[1]))
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(f.stdout, "shift of frame %d is %v\n", s.IndexOf(fr), fr.Shift)
	case "move":
		fr, err := f.target(s)
		if err != nil {
			return err
		}
		if err := s.MoveFrameIndex(fr, f.to); err != nil {
			return err
		}
		fmt.Fprintf(f.stdout, "moved %s to index %d\n", fr, s.IndexOf(fr))
	}
	return f.saveProject(p, f.project)
}
