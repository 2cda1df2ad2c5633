package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
project_dir = /tmp/sprites

[editor]
handle_size = 12
scale_step = 0.25
default_speed = 30

[playback]
mode = back_and_forth
ghost = false
axis = true

[notify]
save = false
copy = true

[theme.my_custom_theme]
Background = #111111
FrameActive = orange
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.ProjectDir != "/tmp/sprites" {
		t.Errorf("Expected project_dir '/tmp/sprites', got '%s'", cfg.ProjectDir)
	}
	if cfg.Editor.HandleSize != 12 || cfg.Editor.ScaleStep != 0.25 || cfg.Editor.DefaultSpeed != 30 {
		t.Errorf("editor = %+v", cfg.Editor)
	}
	if cfg.Editor.ScaleMax != 10 {
		t.Errorf("unset scale_max lost its default: %v", cfg.Editor.ScaleMax)
	}
	if cfg.Playback.Mode != "back_and_forth" || cfg.Playback.Ghost || !cfg.Playback.Axis {
		t.Errorf("playback = %+v", cfg.Playback)
	}
	if cfg.Notify.Save || !cfg.Notify.Copy || !cfg.Notify.Export {
		t.Errorf("notify = %+v", cfg.Notify)
	}
	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background.R != 0x11 || th.FrameActive.R != 255 || th.FrameActive.G != 165 {
		t.Errorf("Unexpected theme colours: %+v %+v", th.Background, th.FrameActive)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	for _, in := range []string{
		"[notify]\nsave = maybe\n",
		"[editor]\nhandle_size = -1\n",
		"[playback]\nghost = 2x\n",
		"[theme.x]\nBackground = #12\n",
	} {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Errorf("Parse(%q) succeeded", in)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
project_dir = /home/user/sprites

[playback]
mode = loop
border = true

[notify]
load = true

[theme.custom]
Name = custom
Background = #000000
Ghost = #00000080
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}
	cfg2, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}
	if cfg.Theme != cfg2.Theme || cfg.ProjectDir != cfg2.ProjectDir {
		t.Errorf("root mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Editor != cfg2.Editor || cfg.Playback != cfg2.Playback || cfg.Notify != cfg2.Notify {
		t.Errorf("section mismatch")
	}
	t1, t2 := cfg.Themes["custom"], cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := New()
	cfg.Theme = "dark"
	cfg.Editor.HandleSize = 14
	cfg.Playback.Mode = "back_and_forth"
	cfg.Notify.Load = true
	th, _ := Parse(strings.NewReader("[theme.neon]\nFrameBorder = #00FF00\n"))
	cfg.Themes["neon"] = th.Themes["neon"]

	data, err := cfg.YAML()
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseYAML(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("ParseYAML: %v\n%s", err, data)
	}
	if got.Theme != "dark" || got.Editor != cfg.Editor || got.Playback != cfg.Playback || got.Notify != cfg.Notify {
		t.Fatalf("yaml round trip = %+v", got)
	}
	if got.Themes["neon"] == nil || *got.Themes["neon"] != *cfg.Themes["neon"] {
		t.Fatalf("theme round trip = %+v", got.Themes["neon"])
	}
}

func TestParseYAMLPartial(t *testing.T) {
	cfg, err := ParseYAML(strings.NewReader("editor:\n  handle_size: 8\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Editor.HandleSize != 8 || cfg.Editor.ScaleMax != 10 || !cfg.Notify.Save {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if _, err := ParseYAML(strings.NewReader("")); err != nil {
		t.Fatalf("empty yaml: %v", err)
	}
}

func TestLoaderFindsXDGConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	l := NewLoader("1.0", "")
	if p := l.GetConfigPath(); p != "" {
		t.Fatalf("unexpected config %q", p)
	}
	path := filepath.Join(home, ".config", "spriteanim", "config.yaml")
	cfg := New()
	cfg.Theme = "high_contrast"
	if err := Save(cfg, path); err != nil {
		t.Fatal(err)
	}
	if p := l.GetConfigPath(); p != path {
		t.Fatalf("config path = %q", p)
	}
	loaded, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Theme != "high_contrast" {
		t.Fatalf("theme = %q", loaded.Theme)
	}
}

func TestLoaderOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.rc")
	if err := os.WriteFile(path, []byte("theme = dark\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewLoader("1.0", path).Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "dark" {
		t.Fatalf("theme = %q", cfg.Theme)
	}
}
