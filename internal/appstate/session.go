package appstate

import (
	"context"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"

	"github.com/example/spriteanim/internal/animation"
	"github.com/example/spriteanim/internal/clipboard"
	"github.com/example/spriteanim/internal/config"
	"github.com/example/spriteanim/internal/editor"
	"github.com/example/spriteanim/internal/geometry"
	"github.com/example/spriteanim/internal/notify"
	"github.com/example/spriteanim/internal/playback"
	"github.com/example/spriteanim/internal/recent"
	"github.com/example/spriteanim/internal/spritesheet"
	"github.com/example/spriteanim/internal/theme"
)

const (
	messageDuration = 2 * time.Second
	minSpeed        = 1
	maxSpeed        = 120
)

// session is the state of one open window. Everything here runs on the
// window's event goroutine; the paint worker only sees paintState copies.
type session struct {
	cfg      *config.Config
	th       *theme.Theme
	recent   *recent.Store
	notifier *notify.Notifier
	post     func(any)
	now      func() time.Time

	project     *animation.Project
	projectPath string
	exportDir   string
	sheet       *image.RGBA

	view   *geometry.Viewport
	editor *editor.Editor
	player *playback.Scheduler
	unsub  func()

	layout      layout
	buttons     []Button
	hoverButton int
	hoverRow    int
	listTop     int

	actions       map[string]func()
	keys          map[KeyShortcut]string
	confirmDelete bool

	ghost  bool
	axis   bool
	border bool

	message      string
	messageUntil time.Time
	alertTitle   string
	alertText    string

	quit bool
}

func newSession(a *AppState, post func(any), size image.Point) *session {
	cfg := a.Config
	if cfg == nil {
		cfg = config.New()
	}
	th := a.Theme
	if th == nil {
		th = theme.Default()
	}
	p := a.Project
	if p == nil {
		p = animation.NewProject("")
	}
	s := &session{
		cfg:         cfg,
		th:          th,
		recent:      a.Recent,
		notifier:    a.Notifier,
		post:        post,
		now:         time.Now,
		project:     p,
		projectPath: a.ProjectPath,
		exportDir:   a.ExportDir,
		sheet:       a.Sheet,
		hoverButton: -1,
		hoverRow:    -1,
		ghost:       cfg.Playback.Ghost,
		axis:        cfg.Playback.Axis,
		border:      cfg.Playback.Border,
	}
	s.layout = computeLayout(size.X, size.Y)

	var sheetSize image.Point
	if s.sheet != nil {
		sheetSize = s.sheet.Bounds().Size()
	}
	s.view = geometry.NewViewport(sheetSize, s.layout.sheet.Size())
	if e := cfg.Editor; e.ScaleMin > 0 && e.ScaleMax >= e.ScaleMin {
		s.view.ScaleMin, s.view.ScaleMax = e.ScaleMin, e.ScaleMax
		s.view.Scale = e.ScaleMin
	}
	if cfg.Editor.ScaleStep > 0 {
		s.view.ScaleStep = cfg.Editor.ScaleStep
	}

	tool := editor.ToolAlterSelection
	modeName := cfg.Playback.Mode
	if s.recent != nil {
		sess := s.recent.Session()
		if t, err := editor.ParseTool(sess.Tool); err == nil && sess.Tool != "" {
			tool = t
		}
		if sess.Scale > 0 {
			s.view.SetScale(sess.Scale)
		}
		if sess.PlaybackMode != "" {
			modeName = sess.PlaybackMode
			s.ghost = sess.Ghost
		}
	}
	mode, err := playback.ParseMode(modeName)
	if err != nil {
		log.Printf("playback mode: %v", err)
	}

	s.editor = editor.New(p, s.view,
		editor.WithTool(tool),
		editor.WithHandleSize(cfg.Editor.HandleSize),
		editor.WithToolListener(func(t editor.Tool) { s.flash("tool: " + t.String()) }),
	)
	s.player = playback.New(p, post,
		playback.WithMode(mode),
		playback.WithStateListener(func(st playback.State) { log.Printf("playback %s", st) }),
	)
	s.unsub = p.Subscribe(s.onProjectEvent)

	s.registerActions()
	s.buttons = []Button{
		&ToolButton{label: "New frame", tool: editor.ToolNewFrame, editor: s.editor},
		&ToolButton{label: "Select", tool: editor.ToolAlterSelection, editor: s.editor},
		&ToolButton{label: "Zoom", tool: editor.ToolZoom, editor: s.editor},
		s.actionButton("Play", "play", s.player.Playing),
		s.actionButton("Back&forth", "mode", func() bool { return s.player.Mode() == playback.BackAndForth }),
		s.actionButton("Ghost", "ghost", func() bool { return s.ghost }),
		s.actionButton("Axis", "axis", func() bool { return s.axis }),
		s.actionButton("Border", "border", func() bool { return s.border }),
		s.actionButton("+Seq", "newseq", nil),
		s.actionButton("-Seq", "delseq", nil),
		s.actionButton("Save", "save", nil),
		s.actionButton("Export", "export", nil),
	}
	placeButtons(s.buttons, s.layout.toolbar)
	return s
}

func (s *session) actionButton(label, action string, on func() bool) *ActionButton {
	return &ActionButton{label: label, on: on, onActivate: func() { s.trigger(action) }}
}

// close stops playback and records the session for the next start.
func (s *session) close() {
	s.player.Close()
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
	if s.recent == nil {
		return
	}
	sess := s.recent.Session()
	sess.Tool = s.editor.Tool().String()
	sess.Scale = s.view.Scale
	sess.PlaybackMode = s.player.Mode().String()
	sess.Ghost = s.ghost
	s.recent.SetSession(sess)
	if err := s.recent.Save(); err != nil {
		log.Printf("[Recent] Warning: %v", err)
	}
}

func (s *session) onProjectEvent(e animation.Event) {
	switch e.Kind {
	case animation.SequenceAdded:
		if sp := s.cfg.Editor.DefaultSpeed; sp > 0 && e.Sequence != nil {
			e.Sequence.SetSpeed(sp)
		}
		s.scrollToActive()
	case animation.ActiveSequenceChanged:
		s.scrollToActive()
	}
}

func (s *session) register(name string, keys KeyboardShortcuts, fn func()) {
	s.actions[name] = fn
	if keys != nil {
		for _, sc := range keys.KeyboardShortcuts() {
			s.keys[sc] = name
		}
	}
}

func (s *session) registerActions() {
	s.actions = map[string]func(){}
	s.keys = map[KeyShortcut]string{}
	ctrl := key.ModControl

	s.register("save", shortcutList{{Code: key.CodeS, Modifiers: ctrl}}, s.save)
	s.register("copy", shortcutList{{Code: key.CodeC, Modifiers: ctrl}}, s.copyFrame)
	s.register("copyjson", shortcutList{{Code: key.CodeC, Modifiers: ctrl | key.ModShift}}, s.copyJSON)
	s.register("copyframes", shortcutList{{Code: key.CodeC, Modifiers: ctrl | key.ModAlt}}, s.copyFrames)
	s.register("paste", shortcutList{{Code: key.CodeV, Modifiers: ctrl}}, s.paste)
	s.register("export", shortcutList{{Code: key.CodeE, Modifiers: ctrl}}, s.export)
	s.register("newseq", shortcutList{{Code: key.CodeN, Modifiers: ctrl}}, func() {
		seq := s.project.NewSequence("", true)
		s.flash("added " + seq.Name())
	})
	s.register("delseq", shortcutList{{Code: key.CodeD, Modifiers: ctrl}}, func() {
		if s.project.ActiveSequence() == nil {
			return
		}
		if !s.confirmDelete {
			s.confirmDelete = true
			s.flash("press Ctrl+D again to delete the sequence")
			return
		}
		s.confirmDelete = false
		s.deleteSequence()
	})
	s.register("quit", shortcutList{{Rune: 'q'}, {Code: key.CodeQ, Modifiers: ctrl}}, func() { s.quit = true })

	s.register("play", shortcutList{{Code: key.CodeSpacebar}}, func() {
		was := s.player.Playing()
		if s.player.Toggle() == playback.Stopped && !was {
			s.flash("nothing to play")
		}
	})
	s.register("reset", shortcutList{{Rune: 'r'}}, s.player.Reset)
	s.register("mode", shortcutList{{Rune: 'm'}}, func() {
		s.flash("playback: " + s.player.ToggleMode().String())
	})
	s.register("ghost", shortcutList{{Rune: 'g'}}, func() { s.ghost = !s.ghost })
	s.register("axis", shortcutList{{Rune: 'x'}}, func() { s.axis = !s.axis })
	s.register("border", shortcutList{{Rune: 'b'}}, func() { s.border = !s.border })
	s.register("next", shortcutList{{Rune: '.'}}, s.player.Next)
	s.register("prev", shortcutList{{Rune: ','}}, s.player.Prev)
	s.register("faster", shortcutList{{Rune: ']'}}, func() { s.changeSpeed(1) })
	s.register("slower", shortcutList{{Rune: '['}}, func() { s.changeSpeed(-1) })

	s.register("toolnew", shortcutList{{Rune: 'n'}}, func() { s.editor.SetTool(editor.ToolNewFrame) })
	s.register("toolselect", shortcutList{{Rune: 's'}}, func() { s.editor.SetTool(editor.ToolAlterSelection) })
	s.register("toolzoom", shortcutList{{Rune: 'z'}}, func() { s.editor.SetTool(editor.ToolZoom) })
	s.register("zoomin", shortcutList{{Rune: '+'}, {Rune: '='}}, func() { s.view.ZoomIn(s.viewCentre()) })
	s.register("zoomout", shortcutList{{Rune: '-'}}, func() { s.view.ZoomOut(s.viewCentre()) })
}

func (s *session) trigger(name string) {
	if name != "delseq" {
		s.confirmDelete = false
	}
	if fn, ok := s.actions[name]; ok {
		fn()
	}
}

func (s *session) lookup(e key.Event) (string, bool) {
	mods := e.Modifiers & (key.ModControl | key.ModShift | key.ModAlt | key.ModMeta)
	if mods&(key.ModControl|key.ModAlt|key.ModMeta) == 0 && e.Rune > ' ' {
		if name, ok := s.keys[KeyShortcut{Rune: unicode.ToLower(e.Rune)}]; ok {
			return name, true
		}
	}
	name, ok := s.keys[KeyShortcut{Code: e.Code, Modifiers: mods}]
	return name, ok
}

func (s *session) viewCentre() image.Point {
	return s.layout.sheet.Size().Div(2)
}

func (s *session) flash(msg string) {
	s.message = msg
	s.messageUntil = s.now().Add(messageDuration)
	log.Print(msg)
	if s.post != nil {
		time.AfterFunc(messageDuration+50*time.Millisecond, func() { s.post(paint.Event{}) })
	}
}

func (s *session) alert(err error) {
	s.alertTitle, s.alertText = animation.Describe(err)
}

func (s *session) dismissAlert() {
	s.alertTitle, s.alertText = "", ""
}

// resize lays the window out again for a new size.
func (s *session) resize(w, h int) {
	s.layout = computeLayout(w, h)
	s.view.SetViewSize(s.layout.sheet.Size())
	placeButtons(s.buttons, s.layout.toolbar)
	s.scrollToActive()
}

func (s *session) handleTick(t playback.Tick) bool {
	return s.player.Tick(t)
}

// handleKey reports whether the window needs repainting.
func (s *session) handleKey(e key.Event) bool {
	if e.Direction == key.DirRelease {
		return false
	}
	if s.alertTitle != "" {
		s.dismissAlert()
		return true
	}
	if name, ok := s.lookup(e); ok {
		s.trigger(name)
		return true
	}
	s.confirmDelete = false
	return s.editor.HandleKey(e)
}

// handleMouse reports whether the window needs repainting.
func (s *session) handleMouse(e mouse.Event) bool {
	p := image.Pt(int(e.X), int(e.Y))
	if s.alertTitle != "" {
		if e.Direction == mouse.DirPress {
			s.dismissAlert()
			return true
		}
		return false
	}
	if s.editor.Dragging() {
		return s.editor.HandleMouse(e, s.layout.sheet.Min)
	}
	switch {
	case p.In(s.layout.toolbar):
		return s.toolbarMouse(p, e)
	case p.In(s.layout.list):
		return s.listMouse(p, e)
	case p.In(s.layout.preview):
		changed := s.clearHover()
		if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
			s.trigger("play")
			return true
		}
		return changed
	case p.In(s.layout.sheet):
		changed := s.clearHover()
		return s.editor.HandleMouse(e, s.layout.sheet.Min) || changed
	}
	return s.clearHover()
}

func (s *session) clearHover() bool {
	changed := s.hoverButton != -1 || s.hoverRow != -1
	s.hoverButton, s.hoverRow = -1, -1
	return changed
}

func (s *session) toolbarMouse(p image.Point, e mouse.Event) bool {
	idx := buttonAt(s.buttons, p)
	changed := idx != s.hoverButton || s.hoverRow != -1
	s.hoverButton, s.hoverRow = idx, -1
	if idx >= 0 && e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
		s.buttons[idx].Activate()
		return true
	}
	return changed
}

func (s *session) listMouse(p image.Point, e mouse.Event) bool {
	if e.Button.IsWheel() {
		if e.Direction == mouse.DirRelease {
			return false
		}
		switch e.Button {
		case mouse.ButtonWheelUp:
			s.scrollList(-1)
		case mouse.ButtonWheelDown:
			s.scrollList(1)
		}
		return true
	}
	row, _ := s.layout.rowAt(p)
	i := s.listTop + row
	changed := i != s.hoverRow || s.hoverButton != -1
	s.hoverRow, s.hoverButton = i, -1
	if e.Button != mouse.ButtonLeft || e.Direction != mouse.DirPress {
		return changed
	}
	seq := s.project.Sequence(i)
	if seq == nil {
		return changed
	}
	s.confirmDelete = false
	if e.Modifiers&key.ModControl != 0 {
		var err error
		if s.project.IsSelected(seq) {
			err = s.project.Deselect(seq.Name())
		} else {
			err = s.project.Select(seq.Name())
		}
		if err != nil {
			log.Printf("select sequence: %v", err)
		}
		return true
	}
	s.project.DeselectAll()
	if err := s.project.Select(seq.Name()); err != nil {
		log.Printf("select sequence: %v", err)
	}
	if err := s.project.SetActiveSequence(seq); err != nil {
		log.Printf("select sequence: %v", err)
	}
	return true
}

func (s *session) scrollList(d int) {
	s.listTop += d
	if max := len(s.project.Sequences()) - s.layout.visibleRows(); s.listTop > max {
		s.listTop = max
	}
	if s.listTop < 0 {
		s.listTop = 0
	}
}

func (s *session) scrollToActive() {
	i := s.project.IndexOf(s.project.ActiveSequence())
	if i < 0 {
		s.scrollList(0)
		return
	}
	rows := s.layout.visibleRows()
	switch {
	case i < s.listTop:
		s.listTop = i
	case i >= s.listTop+rows:
		s.listTop = i - rows + 1
	}
	s.scrollList(0)
}

func (s *session) changeSpeed(d int) {
	seq := s.project.ActiveSequence()
	if seq == nil {
		return
	}
	sp := seq.Speed() + d
	if sp < minSpeed {
		sp = minSpeed
	}
	if sp > maxSpeed {
		sp = maxSpeed
	}
	s.player.SetSpeed(sp)
}

func (s *session) deleteSequence() {
	seq := s.project.ActiveSequence()
	if seq == nil {
		return
	}
	i := s.project.IndexOf(seq)
	if err := s.project.DeleteSequence(seq); err != nil {
		log.Printf("delete sequence: %v", err)
		return
	}
	n := len(s.project.Sequences())
	if n > 0 {
		if i >= n {
			i = n - 1
		}
		next := s.project.Sequence(i)
		if err := s.project.Select(next.Name()); err != nil {
			log.Printf("delete sequence: %v", err)
		}
		if err := s.project.SetActiveSequence(next); err != nil {
			log.Printf("delete sequence: %v", err)
		}
	}
	s.flash("deleted " + seq.Name())
}

// defaultProjectPath names a project after its spritesheet.
func defaultProjectPath(sheet string) string {
	if sheet == "" {
		return "project.json"
	}
	return strings.TrimSuffix(sheet, filepath.Ext(sheet)) + ".json"
}

func (s *session) save() {
	path := s.projectPath
	if path == "" {
		path = defaultProjectPath(s.project.SpritesheetPath())
	}
	if err := animation.Save(s.project, path); err != nil {
		log.Printf("save: %v", err)
		s.alert(err)
		return
	}
	s.project.MarkSaved()
	s.projectPath = path
	if s.recent != nil {
		s.recent.Add(path, s.project.SpritesheetPath())
		if err := s.recent.Save(); err != nil {
			log.Printf("[Recent] Warning: %v", err)
		}
	}
	s.notifier.Save(path)
	s.flash(fmt.Sprintf("saved %s", path))
}

func (s *session) activeFrameImage() (*image.RGBA, *animation.Frame) {
	f := s.project.ActiveFrame()
	if f == nil || s.sheet == nil {
		return nil, nil
	}
	return spritesheet.Frame(s.sheet, f), f
}

func (s *session) copyFrame() {
	img, f := s.activeFrameImage()
	if img == nil {
		s.flash("no active frame")
		return
	}
	if err := clipboard.WriteImage(img); err != nil {
		log.Printf("copy: %v", err)
		s.flash("copy failed")
		return
	}
	s.notifier.Copy("frame "+f.String(), img)
	s.flash("frame copied to clipboard")
}

func (s *session) copyJSON() {
	data, err := animation.EncodeDocument(s.project.ExportData())
	if err != nil {
		log.Printf("copy: %v", err)
		return
	}
	if err := clipboard.WriteText(string(data)); err != nil {
		log.Printf("copy: %v", err)
		s.flash("copy failed")
		return
	}
	s.notifier.Copy("project", nil)
	s.flash("project copied to clipboard")
}

// selectionRects is the selected frames of the active sequence, or all of
// its frames when none is selected.
func (s *session) selectionRects() []image.Rectangle {
	seq := s.project.ActiveSequence()
	if seq == nil {
		return nil
	}
	frames := seq.SelectedFrames()
	if len(frames) == 0 {
		frames = seq.Frames()
	}
	rects := make([]image.Rectangle, len(frames))
	for i, f := range frames {
		rects[i] = f.Bounds()
	}
	return rects
}

func (s *session) copyFrames() {
	rects := s.selectionRects()
	if len(rects) == 0 {
		s.flash("no frames to copy")
		return
	}
	if err := clipboard.WriteRects(rects); err != nil {
		log.Printf("copy: %v", err)
		s.flash("copy failed")
		return
	}
	s.notifier.Copy(fmt.Sprintf("%d frame rectangles", len(rects)), nil)
	s.flash(fmt.Sprintf("%d frames copied", len(rects)))
}

func (s *session) paste() {
	text, err := clipboard.ReadText()
	if err != nil {
		log.Printf("paste: %v", err)
		s.flash("clipboard is empty")
		return
	}
	s.pasteText(text)
}

// pasteText merges a project document, or failing that adds frame
// rectangles to the active sequence.
func (s *session) pasteText(text string) {
	if doc, err := animation.DecodeDocument([]byte(text)); err == nil {
		added := s.project.MergeDocument(doc)
		s.flash(fmt.Sprintf("pasted %d sequences", len(added)))
		return
	}
	rects, err := clipboard.ParseRects(text)
	if err != nil {
		log.Printf("paste: %v", err)
		s.flash("clipboard holds no frames")
		return
	}
	seq := s.project.ActiveSequence()
	if seq == nil {
		seq = s.project.NewSequence("", true)
	}
	for _, r := range rects {
		seq.AddFrame(animation.NewFrame(r))
	}
	s.flash(fmt.Sprintf("pasted %d frames", len(rects)))
}

func (s *session) exportDirectory() string {
	if s.exportDir != "" {
		return s.exportDir
	}
	base := "."
	if s.projectPath != "" {
		base = filepath.Dir(s.projectPath)
	}
	return filepath.Join(base, "frames")
}

func (s *session) export() {
	if s.sheet == nil {
		s.flash("no spritesheet loaded")
		return
	}
	dir := s.exportDirectory()
	paths, err := spritesheet.ExportFrames(context.Background(), s.sheet, s.project, dir, 0)
	if err != nil {
		log.Printf("export: %v", err)
		s.alert(err)
		return
	}
	var preview image.Image
	if img, _ := s.activeFrameImage(); img != nil {
		preview = img
	}
	s.notifier.Export(dir, len(paths), preview)
	s.flash(fmt.Sprintf("exported %d frames to %s", len(paths), dir))
}
