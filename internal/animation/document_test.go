package animation

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleProject() *Project {
	p := NewProject("sheet.png")
	walk := p.NewSequence("walk", true)
	walk.SetSpeed(12)
	walk.AddFrame(&Frame{Rect: image.Rect(0, 0, 16, 24), Shift: image.Pt(1, -2)})
	walk.AddFrame(&Frame{Rect: image.Rect(16, 0, 32, 24)})
	idle := p.NewSequence("idle", true)
	idle.AddFrame(&Frame{Rect: image.Rect(0, 24, 16, 48), Shift: image.Pt(0, 3)})
	return p
}

func TestExportImportRoundTrip(t *testing.T) {
	p := sampleProject()
	data, err := EncodeDocument(p.ExportData())
	if err != nil {
		t.Fatal(err)
	}
	q, err := ImportData(data)
	if err != nil {
		t.Fatalf("ImportData: %v", err)
	}
	if q.SpritesheetPath() != p.SpritesheetPath() {
		t.Fatalf("fpath = %q", q.SpritesheetPath())
	}
	ps, qs := p.Sequences(), q.Sequences()
	if len(ps) != len(qs) {
		t.Fatalf("sequence count %d vs %d", len(ps), len(qs))
	}
	for i := range ps {
		if ps[i].Name() != qs[i].Name() || ps[i].Speed() != qs[i].Speed() {
			t.Fatalf("sequence %d: %s/%d vs %s/%d", i, ps[i].Name(), ps[i].Speed(), qs[i].Name(), qs[i].Speed())
		}
		pf, qf := ps[i].Frames(), qs[i].Frames()
		if len(pf) != len(qf) {
			t.Fatalf("sequence %d frame count", i)
		}
		for j := range pf {
			if pf[j].Rect != qf[j].Rect || pf[j].Shift != qf[j].Shift {
				t.Fatalf("frame %d/%d: %v vs %v", i, j, pf[j], qf[j])
			}
		}
	}
	if q.Dirty() {
		t.Fatalf("imported project should be clean")
	}
}

func TestImportActiveRule(t *testing.T) {
	q := FromDocument(sampleProject().ExportData())
	first := q.Sequence(0)
	if q.ActiveSequence() != first {
		t.Fatalf("active sequence = %v", q.ActiveSequence())
	}
	if sel := q.SelectedSequences(); len(sel) != 1 || sel[0] != first {
		t.Fatalf("selection = %v", sel)
	}
	for _, s := range q.Sequences() {
		if s.ActiveFrame() != s.Frame(0) {
			t.Fatalf("%s: active frame is not the first", s.Name())
		}
		if got := s.SelectedFrames(); len(got) != 1 || got[0] != s.Frame(0) {
			t.Fatalf("%s: selection = %v", s.Name(), got)
		}
	}
}

func TestDecodeDocumentErrors(t *testing.T) {
	cases := map[string]string{
		"not json":       `{`,
		"no fpath":       `{"sequences": []}`,
		"no sequences":   `{"fpath": "a.png"}`,
		"no name":        `{"fpath": "a.png", "sequences": [{"speed": 1, "frames": []}]}`,
		"no speed":       `{"fpath": "a.png", "sequences": [{"name": "x", "frames": []}]}`,
		"no frames":      `{"fpath": "a.png", "sequences": [{"name": "x", "speed": 3}]}`,
		"short pos":      `{"fpath": "a.png", "sequences": [{"name": "x", "speed": 3, "frames": [{"pos": [1], "size": [1,1], "shift": [0,0]}]}]}`,
		"missing shift":  `{"fpath": "a.png", "sequences": [{"name": "x", "speed": 3, "frames": [{"pos": [1,1], "size": [1,1]}]}]}`,
		"negative size":  `{"fpath": "a.png", "sequences": [{"name": "x", "speed": 3, "frames": [{"pos": [1,1], "size": [-1,1], "shift": [0,0]}]}]}`,
		"string in size": `{"fpath": "a.png", "sequences": [{"name": "x", "speed": 3, "frames": [{"pos": [1,1], "size": ["a",1], "shift": [0,0]}]}]}`,
	}
	for name, in := range cases {
		if _, err := ImportData([]byte(in)); !errors.Is(err, ErrFormat) {
			t.Errorf("%s: err = %v, want ErrFormat", name, err)
		}
	}
}

func writeSheet(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, filepath.Join(dir, "sheet.png"))
	p := sampleProject()
	path := filepath.Join(dir, "project.json")
	if err := Save(p, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("temporary file left behind: %s", e.Name())
		}
	}
	// The sheet path is relative, so it resolves against the project directory.
	q, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(q.Sequences()) != 2 || q.FrameCount() != 3 {
		t.Fatalf("loaded %d sequences, %d frames", len(q.Sequences()), q.FrameCount())
	}
}

func TestLoadMissingSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.json")
	if err := Save(sampleProject(), path); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrMissingResource) {
		t.Fatalf("err = %v, want ErrMissingResource", err)
	}
	title, _ := Describe(err)
	if title != "Spritesheet not found" {
		t.Fatalf("title = %q", title)
	}
}

func TestSaveFailureLeavesDirty(t *testing.T) {
	p := sampleProject()
	if !p.Dirty() {
		t.Fatal("sample should be dirty")
	}
	err := Save(p, filepath.Join(t.TempDir(), "missing", "project.json"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !p.Dirty() {
		t.Fatalf("failed save cleared the dirty flag")
	}
}

func TestMergeDocument(t *testing.T) {
	p := NewProject("sheet.png")
	p.NewSequence("base", true)
	added := p.MergeDocument(sampleProject().ExportData())
	if len(added) != 2 || len(p.Sequences()) != 3 {
		t.Fatalf("merge added %d, total %d", len(added), len(p.Sequences()))
	}
	if p.ActiveSequence() != added[0] || p.SpritesheetPath() != "sheet.png" {
		t.Fatalf("merge active = %v", p.ActiveSequence())
	}
}
