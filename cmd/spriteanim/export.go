package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/example/spriteanim/internal/spritesheet"
)

type exportCmd struct {
	project string
	dir     string
	jobs    int
	*root
	fs *flag.FlagSet
}

func (e *exportCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func parseExportCmd(args []string, r *root) (*exportCmd, error) {
	fs := r.newFlagSet("export-frames")
	e := &exportCmd{root: r, fs: fs}
	fs.Usage = usageFunc(e)
	fs.StringVar(&e.project, "project", "", "project file")
	fs.StringVar(&e.dir, "dir", "", "output directory (default: frames next to the project)")
	fs.IntVar(&e.jobs, "jobs", 0, "frames encoded at once (default: number of CPUs)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if e.project == "" {
		return nil, &UsageError{of: e}
	}
	if e.dir == "" {
		e.dir = filepath.Join(filepath.Dir(e.project), "frames")
	}
	return e, nil
}

func (e *exportCmd) Run() error {
	p, err := e.openProject(e.project)
	if err != nil {
		return err
	}
	sheet, err := openSheet(p, e.project)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	paths, err := spritesheet.ExportFrames(ctx, sheet, p, e.dir, e.jobs)
	if err != nil {
		return fmt.Errorf("export frames: %w", err)
	}
	for _, path := range paths {
		fmt.Fprintln(e.stdout, path)
	}
	var preview image.Image
	if f := p.ActiveFrame(); f != nil {
		preview = spritesheet.Frame(sheet, f)
	}
	e.notifier.Export(e.dir, len(paths), preview)
	return nil
}
