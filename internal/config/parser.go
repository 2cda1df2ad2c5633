package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/spriteanim/internal/theme"
)

// Parse reads configuration in RC format from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	var currentTheme *theme.Theme

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(line, "["), "]"))
			currentTheme = nil

			if name, ok := strings.CutPrefix(currentSection, "theme."); ok {
				// Start with defaults so missing keys are fine
				currentTheme = theme.Default()
				currentTheme.Name = name
				cfg.Themes[name] = currentTheme
			}
			continue
		}

		// Key = Value or Key: Value
		var key, value string
		if k, v, ok := strings.Cut(line, "="); ok {
			key, value = k, v
		} else if k, v, ok := strings.Cut(line, ":"); ok {
			key, value = k, v
		} else {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") && len(value) >= 2 {
			value = value[1 : len(value)-1]
		}

		var err error
		switch {
		case currentTheme != nil:
			err = theme.SetField(currentTheme, key, value)
		case currentSection == "editor":
			err = setEditorField(&cfg.Editor, key, value)
		case currentSection == "playback":
			err = setPlaybackField(&cfg.Playback, key, value)
		case currentSection == "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		case currentSection == "":
			setRootField(cfg, key, value)
		}
		if err != nil {
			if currentSection == "" {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
			return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "project_dir":
		cfg.ProjectDir = value
	}
}

func setEditorField(e *Editor, key, value string) error {
	switch strings.ToLower(key) {
	case "handle_size", "default_speed":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid positive integer for key %s: %q", key, value)
		}
		if strings.EqualFold(key, "handle_size") {
			e.HandleSize = n
		} else {
			e.DefaultSpeed = n
		}
	case "scale_step", "scale_min", "scale_max":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("invalid positive number for key %s: %q", key, value)
		}
		switch strings.ToLower(key) {
		case "scale_step":
			e.ScaleStep = f
		case "scale_min":
			e.ScaleMin = f
		case "scale_max":
			e.ScaleMax = f
		}
	}
	return nil
}

func setPlaybackField(p *Playback, key, value string) error {
	if strings.EqualFold(key, "mode") {
		p.Mode = value
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "ghost":
		p.Ghost = b
	case "axis":
		p.Axis = b
	case "border":
		p.Border = b
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "save":
		n.Save = b
	case "load":
		n.Load = b
	case "export":
		n.Export = b
	case "copy":
		n.Copy = b
	}
	return nil
}
