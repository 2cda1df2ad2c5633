package main

import (
	"bytes"
	"embed"
	"flag"
	"fmt"
	"log"
	"sync"
	"text/template"
)

//go:embed templates/*.txt
var helpFS embed.FS

var (
	helpOnce sync.Once
	helpTmpl *template.Template
)

func parseHelpTemplates() {
	helpTmpl = template.Must(template.New("").Funcs(map[string]any{
		"flags": func(fs *flag.FlagSet) []flagInfo {
			result := []flagInfo{}
			if fs == nil {
				return result
			}
			fs.VisitAll(func(f *flag.Flag) {
				result = append(result, flagInfo{f.Name, f.DefValue, f.Usage})
			})
			return result
		},
	}).ParseFS(helpFS, "templates/*.txt"))
}

type flagInfo struct {
	Name     string
	DefValue string
	Usage    string
}

type HelpData interface {
	Program() string
	Template() string
	FlagSet() *flag.FlagSet
}

type UsageError struct {
	of HelpData
}

func (e *UsageError) Error() string {
	help, err := e.renderHelp()
	if err != nil {
		return err.Error()
	}
	return help
}

func (e *UsageError) renderHelp() (string, error) {
	helpOnce.Do(parseHelpTemplates)
	var buf bytes.Buffer
	if err := helpTmpl.ExecuteTemplate(&buf, e.of.Template(), e.of); err != nil {
		log.Printf("error rendering help template: %v", err)
		return "", err
	}
	return buf.String(), nil
}

// usageFunc renders the help template of h, for use as a FlagSet's Usage.
func usageFunc(h HelpData) func() {
	return func() {
		out := flag.CommandLine.Output()
		if fs := h.FlagSet(); fs != nil {
			out = fs.Output()
		}
		fmt.Fprint(out, (&UsageError{of: h}).Error())
	}
}

func (r *root) Template() string           { return "root.txt" }
func (e *editCmd) Template() string        { return "edit.txt" }
func (n *newCmd) Template() string         { return "new.txt" }
func (i *infoCmd) Template() string        { return "info.txt" }
func (f *frameCmd) Template() string       { return "frame.txt" }
func (s *sequenceCmd) Template() string    { return "sequence.txt" }
func (e *exportCmd) Template() string      { return "export-frames.txt" }
func (p *playCmd) Template() string        { return "play.txt" }
func (c *copyCmd) Template() string        { return "copy.txt" }
func (r *recentCmd) Template() string      { return "recent.txt" }
func (c *configCmd) Template() string      { return "config.txt" }
func (i *interactiveCmd) Template() string { return "interactive.txt" }
func (v *versionCmd) Template() string     { return "version.txt" }
