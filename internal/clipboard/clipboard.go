// Package clipboard moves frame images and frame rectangles through the
// system clipboard.
package clipboard

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strconv"
	"strings"
)

// WriteImage encodes the provided image as PNG and publishes it to the clipboard.
func WriteImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return writeImageData(buf.Bytes())
}

// ReadImage retrieves PNG image data from the clipboard and decodes it.
func ReadImage() (image.Image, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	data, err := readImageData()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("clipboard does not contain image data")
	}
	return png.Decode(bytes.NewReader(data))
}

// WriteText writes text data to the clipboard.
func WriteText(text string) error {
	if err := ensureInit(); err != nil {
		return err
	}
	return writeTextData([]byte(text))
}

// ReadText returns UTF-8 text data from the clipboard.
func ReadText() (string, error) {
	if err := ensureInit(); err != nil {
		return "", err
	}
	data, err := readTextData()
	if err != nil {
		return "", err
	}
	// Some applications include a trailing NUL in STRING responses.
	data = bytes.TrimRight(data, "\x00")
	if len(data) == 0 {
		return "", fmt.Errorf("clipboard does not contain text data")
	}
	return string(data), nil
}

// WriteRects copies frame rectangles as text, one "x y w h" line each.
func WriteRects(rects []image.Rectangle) error {
	return WriteText(FormatRects(rects))
}

// ReadRects parses rectangles previously written by WriteRects.
func ReadRects() ([]image.Rectangle, error) {
	text, err := ReadText()
	if err != nil {
		return nil, err
	}
	return ParseRects(text)
}

// FormatRects renders rects in the clipboard text form.
func FormatRects(rects []image.Rectangle) string {
	var b strings.Builder
	for _, r := range rects {
		r = r.Canon()
		fmt.Fprintf(&b, "%d %d %d %d\n", r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	}
	return b.String()
}

// ParseRects reads the clipboard text form. Blank lines are skipped; commas
// are accepted as separators.
func ParseRects(text string) ([]image.Rectangle, error) {
	var out []image.Rectangle
	s := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for s.Scan() {
		line++
		fields := strings.Fields(strings.ReplaceAll(s.Text(), ",", " "))
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: want x y w h, got %q", line, s.Text())
		}
		var v [4]int
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			v[i] = n
		}
		if v[2] <= 0 || v[3] <= 0 {
			return nil, fmt.Errorf("line %d: empty rectangle", line)
		}
		out = append(out, image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]))
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("clipboard does not contain frame rectangles")
	}
	return out, nil
}
