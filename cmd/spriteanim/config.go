package main

import (
	"flag"
	"fmt"

	"github.com/example/spriteanim/internal/config"
)

type configCmd struct {
	*root
	fs     *flag.FlagSet
	output string
	format string
}

func (c *configCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := r.newFlagSet("config")
	c := &configCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.output, "output", "", "file to save to (default: the loaded config or ~/.config/spriteanim/config.rc)")
	fs.StringVar(&c.format, "format", "rc", "output format: rc or yaml")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.format != "rc" && c.format != "yaml" {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: c}
	}

	switch args[0] {
	case "print":
		return c.runPrint()
	case "save":
		return c.runSave()
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}

func (c *configCmd) runPrint() error {
	if c.format == "yaml" {
		data, err := c.root.config.YAML()
		if err != nil {
			return err
		}
		_, err = c.stdout.Write(data)
		return err
	}
	fmt.Fprint(c.stdout, c.root.config.String())
	return nil
}

func (c *configCmd) runSave() error {
	path := c.output
	if path == "" {
		// If the loader found a config file, save there.
		path = config.NewLoader(version, configPathOverride).GetConfigPath()
	}
	if path == "" {
		path = config.DefaultPath()
		if c.format == "yaml" {
			path = path[:len(path)-len(".rc")] + ".yaml"
		}
	}
	if err := config.Save(c.root.config, path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	fmt.Fprintf(c.stderr, "Configuration saved to %s\n", path)
	return nil
}
