// Package recent remembers recently opened projects and the last editor
// session between runs.
package recent

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory.
const AppName = "spriteanim"

// DefaultLimit is how many projects are remembered.
const DefaultLimit = 10

const (
	recentObject    = "recent"
	projectsProp    = "projects"
	sessionProperty = "session"
)

// Entry is one remembered project.
type Entry struct {
	Path   string    `yaml:"path"`
	Sheet  string    `yaml:"sheet"`
	Opened time.Time `yaml:"opened"`
}

// Session is the editor state restored at start-up.
type Session struct {
	LastProject  string  `yaml:"lastProject"`
	Tool         string  `yaml:"tool"`
	Scale        float64 `yaml:"scale"`
	PlaybackMode string  `yaml:"playbackMode"`
	Ghost        bool    `yaml:"ghost"`
}

// Store keeps the recent list in memory and persists it through gdata. A
// Store with no manager works in memory only.
type Store struct {
	manager *gdata.Manager
	limit   int
	entries []Entry
	session Session
}

// Open creates a gdata manager for AppName and loads the stored data. When
// the manager cannot be created the store runs in memory.
func Open() *Store {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[Recent] Warning: persistent storage unavailable: %v", err)
		m = nil
	}
	return New(m)
}

// New returns a store backed by m, which may be nil.
func New(m *gdata.Manager) *Store {
	s := &Store{manager: m, limit: DefaultLimit}
	if err := s.Load(); err != nil {
		log.Printf("[Recent] Warning: failed to load recent projects: %v (starting empty)", err)
	}
	return s
}

func (s *Store) load(prop string, v any) error {
	if !s.manager.ObjectPropExists(recentObject, prop) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(recentObject, prop)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", prop, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", prop, err)
	}
	return nil
}

// Load reads the stored list and session.
func (s *Store) Load() error {
	s.entries = nil
	s.session = Session{}
	if s.manager == nil {
		return nil
	}
	var entries []Entry
	if err := s.load(projectsProp, &entries); err != nil {
		return err
	}
	var session Session
	if err := s.load(sessionProperty, &session); err != nil {
		return err
	}
	s.entries = entries
	s.session = session
	return nil
}

// Save writes the list and session. Without a manager it does nothing.
func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}
	for prop, v := range map[string]any{projectsProp: s.entries, sessionProperty: s.session} {
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", prop, err)
		}
		if err := s.manager.SaveObjectProp(recentObject, prop, data); err != nil {
			return fmt.Errorf("failed to save %s: %w", prop, err)
		}
	}
	return nil
}

// Add moves path to the front of the list.
func (s *Store) Add(path, sheet string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	s.Remove(path)
	s.entries = append([]Entry{{Path: path, Sheet: sheet, Opened: time.Now().UTC()}}, s.entries...)
	if len(s.entries) > s.limit {
		s.entries = s.entries[:s.limit]
	}
	s.session.LastProject = path
}

// Remove forgets path.
func (s *Store) Remove(path string) bool {
	for i, e := range s.entries {
		if e.Path == path {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Clear forgets every project.
func (s *Store) Clear() { s.entries = nil }

// Entries returns the list, most recent first.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Session returns the remembered editor state.
func (s *Store) Session() Session { return s.session }

// SetSession replaces the remembered editor state.
func (s *Store) SetSession(sess Session) { s.session = sess }

// Persistent reports whether the store writes to disk.
func (s *Store) Persistent() bool { return s.manager != nil }
