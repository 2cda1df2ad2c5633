// Package notify posts desktop notifications for project file activity.
package notify

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/spriteanim/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	EventSave   Event = "save"
	EventLoad   Event = "load"
	EventExport Event = "export"
	// EventCopy fires when a frame is placed on the clipboard.
	EventCopy Event = "copy"
)

// Events lists every trigger in display order.
var Events = []Event{EventSave, EventLoad, EventExport, EventCopy}

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: platform.AppName,
		Events: map[Event]EventPreference{
			EventSave:   {Template: "Saved %s"},
			EventLoad:   {Template: "Opened %s"},
			EventExport: {Template: "Exported %s"},
			EventCopy:   {Template: "Copied %s to clipboard"},
		},
	}
}

// LoadPreferences reads SPRITEANIM_NOTIFY_TITLE and
// SPRITEANIM_NOTIFY_<EVENT>_TEXT from the environment.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("SPRITEANIM_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	for _, event := range Events {
		key := "SPRITEANIM_NOTIFY_" + strings.ToUpper(string(event)) + "_TEXT"
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			p := prefs.Events[event]
			p.Template = v
			prefs.Events[event] = p
		}
	}
	return prefs
}

// send is swapped out by tests.
var send = platform.Notify

// Notifier sends OS-level notifications based on the configured preferences.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
}

// New creates a Notifier with every event disabled.
func New(prefs Preferences) *Notifier {
	cloned := Preferences{Title: prefs.Title, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool)}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Enabled reports whether event will produce a notification.
func (n *Notifier) Enabled(event Event) bool {
	return n.enabledFor(event)
}

// Save announces a project file written to path.
func (n *Notifier) Save(path string) {
	n.file(EventSave, path)
}

// Load announces a project file read from path.
func (n *Notifier) Load(path string) {
	n.file(EventLoad, path)
}

func (n *Notifier) file(event Event, path string) {
	if !n.enabledFor(event) {
		return
	}
	detail := strings.TrimSpace(path)
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
	}
	n.dispatch(event, detail, platform.Options{})
}

// Export announces count frame images written to dir. preview, when set, is
// shown as the notification icon.
func (n *Notifier) Export(dir string, count int, preview image.Image) {
	if !n.enabledFor(EventExport) {
		return
	}
	noun := "frames"
	if count == 1 {
		noun = "frame"
	}
	n.withPreview(EventExport, fmt.Sprintf("%d %s to %s", count, noun, dir), preview)
}

// Copy sends a clipboard notification with an optional image preview.
func (n *Notifier) Copy(detail string, img image.Image) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "frame"
	}
	n.withPreview(EventCopy, detail, img)
}

func (n *Notifier) withPreview(event Event, detail string, img image.Image) {
	opts := platform.Options{}
	if img != nil && !img.Bounds().Empty() {
		if path, cleanup, err := createPreview(img); err != nil {
			log.Printf("notification preview: %v", err)
		} else {
			defer cleanup()
			opts.IconPath = path
		}
	}
	n.dispatch(event, detail, opts)
}

func (n *Notifier) enabledFor(event Event) bool {
	if n == nil || n.enabled == nil {
		return false
	}
	return n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	template := strings.TrimSpace(n.template(event))
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	if err := send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

func (n *Notifier) template(event Event) string {
	if pref, ok := n.prefs.Events[event]; ok {
		return pref.Template
	}
	return ""
}

func createPreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "spriteanim-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove preview: %v", err)
		}
	}
	return path, cleanup, nil
}
