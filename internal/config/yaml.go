package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/example/spriteanim/internal/theme"
)

// yamlConfig is the YAML layout. Themes map a theme name to colour keys.
type yamlConfig struct {
	Theme      string                       `yaml:"theme,omitempty"`
	ProjectDir string                       `yaml:"project_dir,omitempty"`
	Editor     Editor                       `yaml:"editor"`
	Playback   Playback                     `yaml:"playback"`
	Notify     Notify                       `yaml:"notify"`
	Themes     map[string]map[string]string `yaml:"themes,omitempty"`
}

// ParseYAML reads configuration in YAML format. Keys that are absent keep
// their defaults.
func ParseYAML(r io.Reader) (*Config, error) {
	cfg := New()
	y := yamlConfig{Editor: cfg.Editor, Playback: cfg.Playback, Notify: cfg.Notify}
	if err := yaml.NewDecoder(r).Decode(&y); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode yaml config: %w", err)
	}
	cfg.Theme = y.Theme
	cfg.ProjectDir = y.ProjectDir
	cfg.Editor = y.Editor
	cfg.Playback = y.Playback
	cfg.Notify = y.Notify
	for name, fields := range y.Themes {
		t := theme.Default()
		t.Name = name
		for k, v := range fields {
			if err := theme.SetField(t, k, v); err != nil {
				return nil, fmt.Errorf("theme %s: %w", name, err)
			}
		}
		cfg.Themes[name] = t
	}
	return cfg, nil
}

// MarshalYAML renders c in the layout read by ParseYAML.
func (c *Config) MarshalYAML() (interface{}, error) {
	y := yamlConfig{
		Theme:      c.Theme,
		ProjectDir: c.ProjectDir,
		Editor:     c.Editor,
		Playback:   c.Playback,
		Notify:     c.Notify,
	}
	if len(c.Themes) > 0 {
		y.Themes = make(map[string]map[string]string, len(c.Themes))
		for _, name := range c.themeNames() {
			t := c.Themes[name]
			fields := map[string]string{"Name": t.Name}
			for _, f := range theme.Fields(t) {
				fields[f.Name] = theme.Hex(f.Color)
			}
			y.Themes[name] = fields
		}
	}
	return y, nil
}

// YAML returns c encoded as YAML.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
