package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/spriteanim/internal/config"
	"github.com/example/spriteanim/internal/notify"
	"github.com/example/spriteanim/internal/recent"
	"github.com/example/spriteanim/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	notifier    *notify.Notifier
	config      *config.Config
	recent      *recent.Store
	saveAlerts  bool
	loadAlerts  bool
	exportAlert bool
	copyAlerts  bool
	themeName   string
	activeTheme *theme.Theme
	stdout      io.Writer
	stderr      io.Writer
	stdin       io.Reader
	handling    flag.ErrorHandling
}

func (r *root) Program() string {
	return r.program
}

func (r *root) subcommand(name string) *root {
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &root{
		program:     program,
		notifier:    r.notifier,
		config:      r.config,
		recent:      r.recent,
		saveAlerts:  r.saveAlerts,
		loadAlerts:  r.loadAlerts,
		exportAlert: r.exportAlert,
		copyAlerts:  r.copyAlerts,
		themeName:   r.themeName,
		activeTheme: r.activeTheme,
		stdout:      r.stdout,
		stderr:      r.stderr,
		stdin:       r.stdin,
		handling:    r.handling,
	}
}

// newFlagSet creates a flag set for a subcommand that reports to stderr.
func (r *root) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, r.handling)
	fs.SetOutput(r.stderr)
	return fs
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	r := &root{
		program:  "spriteanim",
		notifier: notify.New(prefs),
		config:   cfg,
		recent:   recent.Open(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		stdin:    os.Stdin,
		handling: flag.ExitOnError,
	}
	r.initFlags()
	return r
}

func (r *root) initFlags() {
	cfg := r.config
	r.fs = r.newFlagSet(r.program)
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving a project")
	r.fs.BoolVar(&r.loadAlerts, "notify-load", cfg.Notify.Load, "show a desktop notification after opening a project")
	r.fs.BoolVar(&r.exportAlert, "notify-export", cfg.Notify.Export, "show a desktop notification after exporting frames")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")

	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (default, dark, high_contrast)")
	r.fs.Usage = usageFunc(r)
}

// loadTheme resolves the theme from the flag, SPRITEANIM_THEME or the config,
// looking in the config's own themes before the theme loader.
func (r *root) loadTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("SPRITEANIM_THEME")
	}
	if name == "" {
		name = r.config.Theme
	}
	if t, ok := r.config.Themes[name]; ok {
		return t
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		if name != "" && name != "default" {
			fmt.Fprintf(r.stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		}
		return theme.Default()
	}
	return t
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventSave, r.saveAlerts)
		r.notifier.Enable(notify.EventLoad, r.loadAlerts)
		r.notifier.Enable(notify.EventExport, r.exportAlert)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}
	if r.activeTheme == nil {
		r.activeTheme = r.loadTheme()
	}

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "edit":
		cmd, err = parseEditCmd(subArgs, r)
	case "new":
		cmd, err = parseNewCmd(subArgs, r)
	case "info":
		cmd, err = parseInfoCmd(subArgs, r)
	case "frame":
		cmd, err = parseFrameCmd(subArgs, r)
	case "sequence", "seq":
		cmd, err = parseSequenceCmd(subArgs, r)
	case "export-frames":
		cmd, err = parseExportCmd(subArgs, r)
	case "play":
		cmd, err = parsePlayCmd(subArgs, r)
	case "copy":
		cmd, err = parseCopyCmd(subArgs, r)
	case "recent":
		cmd, err = parseRecentCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "interactive":
		cmd, err = parseInteractiveCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
