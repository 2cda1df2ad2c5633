package theme

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := map[string]color.RGBA{
		"#FF0000":   {255, 0, 0, 255},
		"#00FF0080": {0, 255, 0, 128},
		"teal":      {0, 128, 128, 255},
		" Red ":     {255, 0, 0, 255},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil || got != want {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	for _, bad := range []string{"", "#12", "FF0000", "#GGGGGG"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) succeeded", bad)
		}
	}
}

func TestParseIgnoresUnknownKeys(t *testing.T) {
	th, err := Parse(strings.NewReader("Name: Mine\nframeactive: #010203\nWhatever: #FFFFFF\n# comment\n"))
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "Mine" || th.FrameActive != (color.RGBA{1, 2, 3, 255}) {
		t.Fatalf("theme = %+v", th)
	}
	if th.FrameBorder != Default().FrameBorder {
		t.Fatalf("unset key lost its default")
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	src := Default()
	src.Name = "copy"
	src.Ghost = color.RGBA{1, 2, 3, 4}
	var buf bytes.Buffer
	if err := Write(&buf, src); err != nil {
		t.Fatal(err)
	}
	got, err := Parse(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *src {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", got, src)
	}
}

func TestEmbeddedThemesLoad(t *testing.T) {
	names := Names()
	if len(names) < 3 {
		t.Fatalf("embedded themes = %v", names)
	}
	l := &Loader{}
	for _, n := range names {
		if _, err := l.Load(n); err != nil {
			t.Errorf("Load(%q): %v", n, err)
		}
	}
	dark, _ := l.Load("dark")
	if dark.Name != "Dark" {
		t.Fatalf("dark name = %q", dark.Name)
	}
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mine.theme"), []byte("Name: FromDir\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: dir, Extra: map[string]*Theme{"inline": {Name: "Inline"}}}
	if th, err := l.Load("mine"); err != nil || th.Name != "FromDir" {
		t.Fatalf("config dir theme = %v, %v", th, err)
	}
	if th, _ := l.Load("inline"); th.Name != "Inline" {
		t.Fatalf("inline theme = %v", th)
	}
	if th, err := l.Load(filepath.Join(dir, "mine.theme")); err != nil || th.Name != "FromDir" {
		t.Fatalf("path theme = %v, %v", th, err)
	}
	if _, err := l.Load("nope"); err == nil {
		t.Fatal("expected missing theme error")
	}
}
