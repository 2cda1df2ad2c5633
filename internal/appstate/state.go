// Package appstate runs the editor window: the sheet view, the toolbar, the
// sequence list and the animation preview.
package appstate

import (
	"context"
	"image"
	"log"
	"sync"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/spriteanim/internal/animation"
	"github.com/example/spriteanim/internal/config"
	"github.com/example/spriteanim/internal/notify"
	"github.com/example/spriteanim/internal/playback"
	"github.com/example/spriteanim/internal/recent"
	"github.com/example/spriteanim/internal/theme"
)

// AppState holds what the editor window is opened with.
type AppState struct {
	Project     *animation.Project
	ProjectPath string
	Sheet       *image.RGBA
	ExportDir   string
	Config      *config.Config
	Theme       *theme.Theme
	Recent      *recent.Store
	Notifier    *notify.Notifier

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithProject sets the project and the path it is saved to. path may be
// empty for a project that has never been saved.
func WithProject(p *animation.Project, path string) Option {
	return func(a *AppState) { a.Project, a.ProjectPath = p, path }
}

// WithSheet sets the spritesheet image the frames are cut from.
func WithSheet(img *image.RGBA) Option { return func(a *AppState) { a.Sheet = img } }

// WithExportDir sets where frame images are exported.
func WithExportDir(dir string) Option { return func(a *AppState) { a.ExportDir = dir } }

func WithConfig(c *config.Config) Option { return func(a *AppState) { a.Config = c } }
func WithTheme(t *theme.Theme) Option    { return func(a *AppState) { a.Theme = t } }

// WithRecent sets the store the recent project list and session go to.
func WithRecent(r *recent.Store) Option { return func(a *AppState) { a.Recent = r } }

// WithNotifier sets the desktop notifier used for save and export.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.Notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{}
	for _, o := range opts {
		o(a)
	}
	return a
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// windowSize fits the sheet at scale 1 plus the side column, within limits.
func (a *AppState) windowSize() (int, int) {
	w, h := 800, 600
	if a.Sheet != nil {
		b := a.Sheet.Bounds()
		w = clamp(b.Dx()+sideWidth, 800, 1600)
		h = clamp(b.Dy()+toolbarHeight+statusHeight, 600, 1000)
	}
	return w, h
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (a *AppState) title() string {
	if a.Project != nil && a.Project.SpritesheetName() != "" {
		return "Sprite Animator - " + a.Project.SpritesheetName()
	}
	return "Sprite Animator"
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

func (a *AppState) Main(s screen.Screen) {
	width, height := a.windowSize()
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: a.title()})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	sess := newSession(a, func(v any) { w.Send(v) }, image.Pt(width, height))
	defer sess.close()

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan paintState, 1)
	defer close(paintCh)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			drawFrame(ctx, s, w, st)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
			cancel()
		}
	}()
	stopPaint := func() {
		paintMu.Lock()
		if paintCancel != nil {
			paintCancel()
		}
		paintMu.Unlock()
	}

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				stopPaint()
				return
			}
		case size.Event:
			sess.resize(e.WidthPx, e.HeightPx)
			w.Send(paint.Event{})
		case paint.Event:
			paintMu.Lock()
			if paintCancel != nil && dropCount < frameDropThreshold {
				paintCancel()
				dropCount++
			}
			paintMu.Unlock()
			st := sess.snapshot()
			select {
			case paintCh <- st:
			default:
				<-paintCh
				paintCh <- st
			}
		case playback.Tick:
			if sess.handleTick(e) {
				w.Send(paint.Event{})
			}
		case mouse.Event:
			if sess.handleMouse(e) {
				w.Send(paint.Event{})
			}
		case key.Event:
			if sess.handleKey(e) {
				w.Send(paint.Event{})
			}
			if sess.quit {
				stopPaint()
				return
			}
		case error:
			log.Print(e)
		}
	}
}
