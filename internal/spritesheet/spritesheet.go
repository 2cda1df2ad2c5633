// Package spritesheet loads sheet images and cuts frames out of them.
package spritesheet

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/example/spriteanim/internal/animation"
)

// Load decodes the image at path into an RGBA buffer with a zero origin.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(f)
	if cerr := f.Close(); cerr != nil {
		log.Printf("error closing %q: %v", path, cerr)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ToRGBA(img), nil
}

// Decode reads an image from memory.
func Decode(data []byte) (*image.RGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return ToRGBA(img), nil
}

// ToRGBA converts img to an RGBA buffer whose bounds start at the origin.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Crop returns a copy of rect from img. Parts of rect outside img are left
// transparent.
func Crop(img *image.RGBA, rect image.Rectangle) *image.RGBA {
	rect = rect.Canon()
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	src := rect.Intersect(img.Bounds())
	if !src.Empty() {
		draw.Draw(out, src.Sub(rect.Min), img, src.Min, draw.Src)
	}
	return out
}

// Frame cuts f out of img.
func Frame(img *image.RGBA, f *animation.Frame) *image.RGBA {
	return Crop(img, f.Bounds())
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FrameFileName is the name ExportFrames gives frame i of seq.
func FrameFileName(seq string, i int) string {
	return fmt.Sprintf("%s_%03d.png", sanitize(seq), i)
}

func sanitize(name string) string {
	b := []byte(name)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_', c == '.':
		default:
			b[i] = '_'
		}
	}
	if len(b) == 0 {
		return "sequence"
	}
	return string(b)
}

// ExportFrames writes every frame of every sequence in p to dir as PNG files.
// At most jobs files are encoded at once; jobs <= 0 uses GOMAXPROCS. It
// returns the paths written in sequence and frame order.
func ExportFrames(ctx context.Context, img *image.RGBA, p *animation.Project, dir string, jobs int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	type job struct {
		path  string
		frame *animation.Frame
	}
	var work []job
	for _, seq := range p.Sequences() {
		for i, f := range seq.Frames() {
			work = append(work, job{path: filepath.Join(dir, FrameFileName(seq.Name(), i)), frame: f})
		}
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, j := range work {
		rect := j.frame.Bounds()
		path := j.path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := EncodePNG(Crop(img, rect))
			if err != nil {
				return fmt.Errorf("encode %s: %w", path, err)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	paths := make([]string, len(work))
	for i, j := range work {
		paths[i] = j.path
	}
	return paths, nil
}
