package main

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/example/spriteanim/internal/animation"
	"github.com/example/spriteanim/internal/spritesheet"
)

// openProject loads a project file and remembers it in the recent list.
func (r *root) openProject(path string) (*animation.Project, error) {
	p, err := animation.Load(path)
	if err != nil {
		return nil, err
	}
	r.remember(path, p)
	return p, nil
}

// openSheet loads the spritesheet a project names.
func openSheet(p *animation.Project, projectPath string) (*image.RGBA, error) {
	path, err := animation.ResolveSpritesheet(p.SpritesheetPath(), filepath.Dir(projectPath))
	if err != nil {
		return nil, err
	}
	return spritesheet.Load(path)
}

// saveProject writes p to path, clears its dirty flag and notifies.
func (r *root) saveProject(p *animation.Project, path string) error {
	if err := animation.Save(p, path); err != nil {
		return err
	}
	p.MarkSaved()
	r.remember(path, p)
	r.notifier.Save(path)
	return nil
}

func (r *root) remember(path string, p *animation.Project) {
	if r.recent == nil {
		return
	}
	r.recent.Add(path, p.SpritesheetPath())
	if err := r.recent.Save(); err != nil {
		fmt.Fprintf(r.stderr, "[Recent] Warning: %v\n", err)
	}
}

// findSequence looks a sequence up by name. An empty name means the active
// sequence.
func findSequence(p *animation.Project, name string) (*animation.Sequence, error) {
	if name == "" {
		if s := p.ActiveSequence(); s != nil {
			return s, nil
		}
		return nil, fmt.Errorf("project has no sequences: %w", animation.ErrNotFound)
	}
	s, ok := p.SequenceByName(name)
	if !ok {
		return nil, fmt.Errorf("sequence %q: %w", name, animation.ErrNotFound)
	}
	return s, nil
}

// findFrame returns the frame at index i of s.
func findFrame(s *animation.Sequence, i int) (*animation.Frame, error) {
	f := s.Frame(i)
	if f == nil {
		return nil, fmt.Errorf("frame %d of %q: %w", i, s.Name(), animation.ErrNotFound)
	}
	return f, nil
}
