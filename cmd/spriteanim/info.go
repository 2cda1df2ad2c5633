package main

import (
	"flag"
	"fmt"
)

type infoCmd struct {
	project string
	frames  bool
	*root
	fs *flag.FlagSet
}

func (i *infoCmd) FlagSet() *flag.FlagSet {
	return i.fs
}

func parseInfoCmd(args []string, r *root) (*infoCmd, error) {
	fs := r.newFlagSet("info")
	i := &infoCmd{root: r, fs: fs}
	fs.Usage = usageFunc(i)
	fs.StringVar(&i.project, "project", "", "project file")
	fs.BoolVar(&i.frames, "frames", false, "list every frame")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if i.project == "" && fs.NArg() > 0 {
		i.project = fs.Arg(0)
	}
	if i.project == "" {
		return nil, &UsageError{of: i}
	}
	return i, nil
}

func (i *infoCmd) Run() error {
	p, err := i.openProject(i.project)
	if err != nil {
		return err
	}
	fmt.Fprintf(i.stdout, "spritesheet: %s\n", p.SpritesheetPath())
	fmt.Fprintf(i.stdout, "sequences: %d, frames: %d\n", len(p.Sequences()), p.FrameCount())
	for _, s := range p.Sequences() {
		marker := " "
		if s == p.ActiveSequence() {
			marker = "*"
		}
		fmt.Fprintf(i.stdout, "%s %s: %d frames @ %d fps\n", marker, s.Name(), s.Len(), s.Speed())
		if !i.frames {
			continue
		}
		for n, f := range s.Frames() {
			fmt.Fprintf(i.stdout, "    %3d %s\n", n, f)
		}
	}
	return nil
}
