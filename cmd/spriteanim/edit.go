package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/example/spriteanim/internal/animation"
	"github.com/example/spriteanim/internal/appstate"
	"github.com/example/spriteanim/internal/clipboard"
	"github.com/example/spriteanim/internal/spritesheet"
)

// editCmd opens the editor window.
type editCmd struct {
	project   string
	image     string
	exportDir string
	*root
	fs *flag.FlagSet
}

func (e *editCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := r.newFlagSet("edit")
	e := &editCmd{root: r, fs: fs}
	fs.Usage = usageFunc(e)
	fs.StringVar(&e.project, "project", "", "project file to open")
	fs.StringVar(&e.image, "image", "", "spritesheet to start a new project from")
	fs.StringVar(&e.exportDir, "export-dir", "", "directory frame images are exported to")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if e.project == "" && e.image == "" && fs.NArg() > 0 {
		e.project = fs.Arg(0)
	}
	if e.project == "" && e.image == "" && r.recent != nil {
		e.project = r.recent.Session().LastProject
	}
	if e.project == "" && e.image == "" {
		return nil, &UsageError{of: e}
	}
	return e, nil
}

// load returns the project, its path and the sheet to edit.
func (e *editCmd) load() (*animation.Project, string, *image.RGBA, error) {
	if e.project != "" {
		p, err := e.openProject(e.project)
		if err != nil {
			return nil, "", nil, err
		}
		sheet, err := openSheet(p, e.project)
		if err != nil {
			return nil, "", nil, err
		}
		e.notifier.Load(e.project)
		return p, e.project, sheet, nil
	}
	abs, err := filepath.Abs(e.image)
	if err != nil {
		return nil, "", nil, err
	}
	sheet, err := spritesheet.Load(abs)
	if err != nil {
		return nil, "", nil, err
	}
	return animation.NewProject(abs), "", sheet, nil
}

func (e *editCmd) Run() error {
	p, path, sheet, err := e.load()
	if err != nil {
		return err
	}
	if e.recent != nil && path != "" {
		sess := e.recent.Session()
		sess.LastProject = path
		e.recent.SetSession(sess)
	}
	st := appstate.New(
		appstate.WithProject(p, path),
		appstate.WithSheet(sheet),
		appstate.WithExportDir(e.exportDir),
		appstate.WithConfig(e.config),
		appstate.WithTheme(e.activeTheme),
		appstate.WithRecent(e.recent),
		appstate.WithNotifier(e.notifier),
		appstate.WithOnClose(func() {
			if p.Dirty() {
				fmt.Fprintln(e.stderr, "warning: closed with unsaved changes")
			}
		}),
	)
	st.Run()
	return nil
}

// newCmd creates an empty project for a spritesheet.
type newCmd struct {
	image         string
	output        string
	sequence      string
	fromClipboard bool
	*root
	fs *flag.FlagSet
}

func (n *newCmd) FlagSet() *flag.FlagSet {
	return n.fs
}

func parseNewCmd(args []string, r *root) (*newCmd, error) {
	fs := r.newFlagSet("new")
	n := &newCmd{root: r, fs: fs}
	fs.Usage = usageFunc(n)
	fs.StringVar(&n.image, "image", "", "spritesheet image")
	fs.StringVar(&n.output, "output", "", "project file to write (default: image name with .json)")
	fs.StringVar(&n.sequence, "seq", "", "name of an empty sequence to create")
	fs.BoolVar(&n.fromClipboard, "from-clipboard", false, "write the clipboard image to -image first")
	fs.BoolVar(&n.fromClipboard, "from-clip", false, "write the clipboard image to -image first (alias)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if n.image == "" {
		return nil, &UsageError{of: n}
	}
	if n.output == "" {
		n.output = projectPathFor(n.image)
	}
	return n, nil
}

func projectPathFor(img string) string {
	return img[:len(img)-len(filepath.Ext(img))] + ".json"
}

// sheetRef names img relative to the directory of the project file, so the
// pair can be moved together.
func sheetRef(img, project string) string {
	absImg, err := filepath.Abs(img)
	if err != nil {
		return img
	}
	absProject, err := filepath.Abs(project)
	if err != nil {
		return absImg
	}
	rel, err := filepath.Rel(filepath.Dir(absProject), absImg)
	if err != nil {
		return absImg
	}
	return rel
}

func (n *newCmd) Run() error {
	if n.fromClipboard {
		img, err := clipboard.ReadImage()
		if err != nil {
			return fmt.Errorf("failed to read clipboard: %w", err)
		}
		data, err := spritesheet.EncodePNG(img)
		if err != nil {
			return err
		}
		if err := os.WriteFile(n.image, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", n.image, err)
		}
	}
	sheet, err := spritesheet.Load(n.image)
	if err != nil {
		return err
	}
	p := animation.NewProject(sheetRef(n.image, n.output))
	if n.sequence != "" {
		p.NewSequence(n.sequence, true).SetSpeed(n.config.Editor.DefaultSpeed)
	}
	if err := n.saveProject(p, n.output); err != nil {
		return err
	}
	b := sheet.Bounds()
	fmt.Fprintf(n.stdout, "created %s for %s (%dx%d)\n", n.output, n.image, b.Dx(), b.Dy())
	return nil
}
