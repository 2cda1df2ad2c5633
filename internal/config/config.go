// Package config reads and writes the editor settings file.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/spriteanim/internal/theme"
)

// Editor holds sheet view settings.
type Editor struct {
	HandleSize   int     `yaml:"handle_size"`
	ScaleStep    float64 `yaml:"scale_step"`
	ScaleMin     float64 `yaml:"scale_min"`
	ScaleMax     float64 `yaml:"scale_max"`
	DefaultSpeed int     `yaml:"default_speed"`
}

// Playback holds preview settings.
type Playback struct {
	Mode   string `yaml:"mode"`
	Ghost  bool   `yaml:"ghost"`
	Axis   bool   `yaml:"axis"`
	Border bool   `yaml:"border"`
}

// Notify holds notification settings.
type Notify struct {
	Save   bool `yaml:"save"`
	Load   bool `yaml:"load"`
	Export bool `yaml:"export"`
	Copy   bool `yaml:"copy"`
}

// Config holds the application configuration.
type Config struct {
	Theme      string
	ProjectDir string
	Editor     Editor
	Playback   Playback
	Notify     Notify
	Themes     map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // Default to empty to allow fallback to Env/Default
		Editor: Editor{
			HandleSize:   10,
			ScaleStep:    0.5,
			ScaleMin:     1,
			ScaleMax:     10,
			DefaultSpeed: 20,
		},
		Playback: Playback{
			Mode:  "loop",
			Ghost: true,
		},
		Notify: Notify{
			Save:   true,
			Export: true,
			Copy:   true,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.ProjectDir != "" {
		fmt.Fprintf(&sb, "project_dir = %s\n", c.ProjectDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[editor]\n")
	fmt.Fprintf(&sb, "handle_size = %d\n", c.Editor.HandleSize)
	fmt.Fprintf(&sb, "scale_step = %g\n", c.Editor.ScaleStep)
	fmt.Fprintf(&sb, "scale_min = %g\n", c.Editor.ScaleMin)
	fmt.Fprintf(&sb, "scale_max = %g\n", c.Editor.ScaleMax)
	fmt.Fprintf(&sb, "default_speed = %d\n", c.Editor.DefaultSpeed)
	sb.WriteString("\n")

	sb.WriteString("[playback]\n")
	fmt.Fprintf(&sb, "mode = %s\n", c.Playback.Mode)
	fmt.Fprintf(&sb, "ghost = %v\n", c.Playback.Ghost)
	fmt.Fprintf(&sb, "axis = %v\n", c.Playback.Axis)
	fmt.Fprintf(&sb, "border = %v\n", c.Playback.Border)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "load = %v\n", c.Notify.Load)
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	for _, name := range c.themeNames() {
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		_ = theme.Write(&sb, c.Themes[name])
		sb.WriteString("\n")
	}

	return sb.String()
}

func (c *Config) themeNames() []string {
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
