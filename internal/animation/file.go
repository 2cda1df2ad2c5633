package animation

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load reads a project file. The spritesheet it names must exist, either as
// written or relative to the project file's directory. Nothing is returned
// on failure.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project %s: %w", path, err)
	}
	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if _, err := ResolveSpritesheet(doc.FPath, filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return FromDocument(doc), nil
}

// ResolveSpritesheet finds the image named by a project. Relative paths are
// tried against the working directory first and then against dir.
func ResolveSpritesheet(fpath, dir string) (string, error) {
	if fpath == "" {
		return "", fmt.Errorf("%w: project names no spritesheet", ErrMissingResource)
	}
	candidates := []string{fpath}
	if !filepath.IsAbs(fpath) && dir != "" {
		candidates = append(candidates, filepath.Join(dir, fpath))
	}
	for _, c := range candidates {
		if st, err := os.Stat(c); err == nil && !st.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: spritesheet %s does not exist", ErrMissingResource, fpath)
}

// Save writes p to path. The data goes to a temporary file in the same
// directory which is renamed over path once it is complete, so path never
// holds a partial project. The dirty flag is left for the caller.
func Save(p *Project, path string) error {
	data, err := EncodeDocument(p.ExportData())
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
