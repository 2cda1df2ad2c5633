package recent

import (
	"fmt"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openManager(t *testing.T) *gdata.Manager {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	m, err := gdata.Open(gdata.Config{AppName: "test_spriteanim_recent"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

func TestMemoryOnly(t *testing.T) {
	s := New(nil)
	s.Add("/p/a.json", "a.png")
	if err := s.Save(); err != nil {
		t.Fatalf("Save without manager: %v", err)
	}
	if s.Persistent() {
		t.Fatal("nil manager reported as persistent")
	}
	if len(s.Entries()) != 1 {
		t.Fatalf("entries = %v", s.Entries())
	}
}

func TestAddOrderAndLimit(t *testing.T) {
	s := New(nil)
	for i := 0; i < DefaultLimit+3; i++ {
		s.Add(fmt.Sprintf("/p/%d.json", i), "")
	}
	s.Add("/p/5.json", "")
	got := s.Entries()
	if len(got) != DefaultLimit {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].Path != "/p/5.json" || got[1].Path != fmt.Sprintf("/p/%d.json", DefaultLimit+2) {
		t.Fatalf("order = %v", got[:2])
	}
	seen := map[string]bool{}
	for _, e := range got {
		if seen[e.Path] {
			t.Fatalf("duplicate %s", e.Path)
		}
		seen[e.Path] = true
	}
	if s.Session().LastProject != "/p/5.json" {
		t.Fatalf("last project = %q", s.Session().LastProject)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	m := openManager(t)
	s := New(m)
	s.Add("/p/walk.json", "/p/hero.png")
	sess := s.Session()
	sess.Tool = "zoom"
	sess.Scale = 2.5
	sess.Ghost = true
	s.SetSession(sess)
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	again := New(m)
	got := again.Entries()
	if len(got) != 1 || got[0].Path != "/p/walk.json" || got[0].Sheet != "/p/hero.png" {
		t.Fatalf("entries = %+v", got)
	}
	if again.Session() != sess {
		t.Fatalf("session = %+v, want %+v", again.Session(), sess)
	}
	if !again.Remove("/p/walk.json") || again.Remove("/p/walk.json") {
		t.Fatal("Remove reported wrong result")
	}
}
