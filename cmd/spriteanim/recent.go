package main

import (
	"flag"
	"fmt"
	"path/filepath"
)

type recentCmd struct {
	clear  bool
	remove string
	*root
	fs *flag.FlagSet
}

func (r *recentCmd) FlagSet() *flag.FlagSet {
	return r.fs
}

func parseRecentCmd(args []string, r *root) (*recentCmd, error) {
	fs := r.newFlagSet("recent")
	c := &recentCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.BoolVar(&c.clear, "clear", false, "forget every recent project")
	fs.StringVar(&c.remove, "remove", "", "forget one project")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *recentCmd) Run() error {
	store := r.root.recent
	if store == nil {
		return fmt.Errorf("recent projects are not available")
	}
	switch {
	case r.clear:
		store.Clear()
		return store.Save()
	case r.remove != "":
		path := r.remove
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if !store.Remove(path) && !store.Remove(r.remove) {
			return fmt.Errorf("%s is not in the recent list", r.remove)
		}
		return store.Save()
	}
	for _, e := range store.Entries() {
		fmt.Fprintf(r.stdout, "%s\t%s\t%s\n", e.Opened.Local().Format("2006-01-02 15:04"), e.Path, e.Sheet)
	}
	if last := store.Session().LastProject; last != "" {
		fmt.Fprintf(r.stdout, "last: %s\n", last)
	}
	return nil
}
