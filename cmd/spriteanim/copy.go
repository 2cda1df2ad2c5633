package main

import (
	"flag"
	"fmt"
	"image"

	"github.com/example/spriteanim/internal/animation"
	"github.com/example/spriteanim/internal/clipboard"
	"github.com/example/spriteanim/internal/spritesheet"
)

// copyCmd puts a frame image, the frame rectangles of a sequence or the
// whole project document on the clipboard.
type copyCmd struct {
	project  string
	sequence string
	index    int
	json     bool
	rects    bool
	*root
	fs *flag.FlagSet
}

func (c *copyCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

// clipboard writers, replaced in tests.
var (
	writeImage = clipboard.WriteImage
	writeText  = clipboard.WriteText
)

func parseCopyCmd(args []string, r *root) (*copyCmd, error) {
	fs := r.newFlagSet("copy")
	c := &copyCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.project, "project", "", "project file")
	fs.StringVar(&c.sequence, "seq", "", "sequence name (default: the first)")
	fs.IntVar(&c.index, "index", 0, "frame index")
	fs.BoolVar(&c.json, "json", false, "copy the project document")
	fs.BoolVar(&c.rects, "rects", false, "copy the sequence's frame rectangles as text")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.project == "" || (c.json && c.rects) {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *copyCmd) Run() error {
	p, err := c.openProject(c.project)
	if err != nil {
		return err
	}
	if c.json {
		data, err := animation.EncodeDocument(p.ExportData())
		if err != nil {
			return err
		}
		if err := writeText(string(data)); err != nil {
			return fmt.Errorf("failed to copy project: %w", err)
		}
		c.notifier.Copy("project", nil)
		fmt.Fprintf(c.stdout, "copied %s\n", c.project)
		return nil
	}
	seq, err := findSequence(p, c.sequence)
	if err != nil {
		return err
	}
	if c.rects {
		rects := make([]image.Rectangle, 0, seq.Len())
		for _, f := range seq.Frames() {
			rects = append(rects, f.Bounds())
		}
		if err := writeText(clipboard.FormatRects(rects)); err != nil {
			return fmt.Errorf("failed to copy frames: %w", err)
		}
		c.notifier.Copy(fmt.Sprintf("%d frame rectangles", len(rects)), nil)
		fmt.Fprintf(c.stdout, "copied %d frames of %s\n", len(rects), seq.Name())
		return nil
	}
	f, err := findFrame(seq, c.index)
	if err != nil {
		return err
	}
	sheet, err := openSheet(p, c.project)
	if err != nil {
		return err
	}
	img := spritesheet.Frame(sheet, f)
	if err := writeImage(img); err != nil {
		return fmt.Errorf("failed to copy frame: %w", err)
	}
	c.notifier.Copy("frame "+f.String(), img)
	fmt.Fprintf(c.stdout, "copied frame %d of %s\n", c.index, seq.Name())
	return nil
}
