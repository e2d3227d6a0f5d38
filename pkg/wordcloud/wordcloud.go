// Package wordcloud renders token frequency maps as word-cloud images.
// Rendering is delegated to github.com/psykhi/wordclouds; this package
// only shapes options and file output around it.
package wordcloud

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"image/png"

	"github.com/psykhi/wordclouds"

	"github.com/ugohsu/colab-nlp-templates/pkg/storage"
)

// ErrNoFont is returned when no font path is configured. CJK glyphs are
// not covered by the renderer's default font, so a Japanese-capable font
// file is required.
var ErrNoFont = errors.New("font_path is required: pass the path to a Japanese font file (e.g. NotoSansCJK)")

// ErrEmptyInput is returned when there is nothing to draw.
var ErrEmptyInput = errors.New("no words to render: check the token output and stopword filters")

// Options configures a rendering.
type Options struct {
	FontPath   string
	Width      int
	Height     int
	Background color.Color
	Colors     []color.Color
}

func (o *Options) defaults() {
	if o.Width <= 0 {
		o.Width = 1200
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	if o.Background == nil {
		o.Background = color.White
	}
	if len(o.Colors) == 0 {
		o.Colors = []color.Color{
			color.RGBA{0x1f, 0x77, 0xb4, 0xff},
			color.RGBA{0xff, 0x7f, 0x0e, 0xff},
			color.RGBA{0x2c, 0xa0, 0x2c, 0xff},
			color.RGBA{0xd6, 0x27, 0x28, 0xff},
			color.RGBA{0x94, 0x67, 0xbd, 0xff},
		}
	}
}

// Render draws a word cloud from word counts and saves it as a PNG.
func Render(counts map[string]int, outPath string, opts Options) error {
	if opts.FontPath == "" {
		return ErrNoFont
	}
	if len(counts) == 0 {
		return ErrEmptyInput
	}
	opts.defaults()

	w := wordclouds.NewWordcloud(
		counts,
		wordclouds.FontFile(opts.FontPath),
		wordclouds.Width(opts.Width),
		wordclouds.Height(opts.Height),
		wordclouds.BackgroundColor(opts.Background),
		wordclouds.Colors(opts.Colors),
		wordclouds.FontMaxSize(128),
		wordclouds.FontMinSize(12),
		wordclouds.RandomPlacement(false),
	)

	img := w.Draw()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	s := &storage.Storage{}
	if err := s.SaveFile(outPath, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
