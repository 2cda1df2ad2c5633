// Package theme holds the editor colour palettes.
package theme

import (
	"image/color"
)

// Theme defines the colours used to draw the editor.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window background behind the panels
	Foreground color.RGBA // Main text colour

	// Toolbar
	ToolbarBackground     color.RGBA
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonActive          color.RGBA // Button of the current tool
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	// Sequence list
	ListBackground color.RGBA
	ListText       color.RGBA
	ListSelected   color.RGBA
	ListActive     color.RGBA

	// Sheet view
	CheckerLight  color.RGBA
	CheckerDark   color.RGBA
	FrameBorder   color.RGBA // Frames of the active sequence
	FrameOther    color.RGBA // Frames of other selected sequences
	FrameSelected color.RGBA
	FrameActive   color.RGBA
	HandleFill    color.RGBA
	HandleBorder  color.RGBA

	// Preview
	PreviewBackground color.RGBA
	PreviewBorder     color.RGBA
	Ghost             color.RGBA // Tint of the onion-skin frame; alpha sets its strength
	Axis              color.RGBA

	// Status bar and alerts
	StatusBackground color.RGBA
	StatusText       color.RGBA
	AlertBackground  color.RGBA
	AlertText        color.RGBA
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonActive:          color.RGBA{160, 190, 230, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		ListBackground:        color.RGBA{235, 235, 235, 255},
		ListText:              color.RGBA{0, 0, 0, 255},
		ListSelected:          color.RGBA{200, 215, 240, 255},
		ListActive:            color.RGBA{160, 190, 230, 255},
		CheckerLight:          color.RGBA{220, 220, 220, 255},
		CheckerDark:           color.RGBA{192, 192, 192, 255},
		FrameBorder:           color.RGBA{0, 120, 255, 255},
		FrameOther:            color.RGBA{120, 120, 120, 255},
		FrameSelected:         color.RGBA{255, 160, 0, 255},
		FrameActive:           color.RGBA{255, 0, 0, 255},
		HandleFill:            color.RGBA{255, 255, 255, 255},
		HandleBorder:          color.RGBA{0, 0, 0, 255},
		PreviewBackground:     color.RGBA{245, 245, 245, 255},
		PreviewBorder:         color.RGBA{0, 0, 0, 255},
		Ghost:                 color.RGBA{0, 0, 255, 80},
		Axis:                  color.RGBA{255, 0, 255, 255},
		StatusBackground:      color.RGBA{200, 200, 200, 255},
		StatusText:            color.RGBA{0, 0, 0, 255},
		AlertBackground:       color.RGBA{60, 0, 0, 230},
		AlertText:             color.RGBA{255, 255, 255, 255},
	}
}
