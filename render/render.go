// Package render rasterizes corpus lines into PNG images with ground-truth
// labels, producing synthetic training material for the recognition model.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Config struct {
	// Raw OpenType/TrueType font data. The font must cover the Ukrainian
	// alphabet.
	FontBytes []byte
	// Font size in points. Default is 48
	FontSize float64
	// Height of every rendered image in pixels. Default is 64
	Height int
	// Horizontal padding around the text in pixels. Default is 10
	Padding int
}

func DefaultConfig() Config {
	return Config{
		FontSize: 48,
		Height:   64,
		Padding:  10,
	}
}

// Renderer draws single lines of text as black-on-white images.
type Renderer struct {
	face    font.Face
	height  int
	padding int
	size    float64
}

func New(config Config) (*Renderer, error) {
	if len(config.FontBytes) == 0 {
		return nil, errors.New("font data is required")
	}
	if config.FontSize <= 0 {
		config.FontSize = 48
	}
	if config.Height <= 0 {
		config.Height = 64
	}
	if config.Padding <= 0 {
		config.Padding = 10
	}

	parsedFont, err := opentype.Parse(config.FontBytes)
	if err != nil {
		return nil, errors.Join(errors.New("failed to parse font"), err)
	}

	face, err := opentype.NewFace(parsedFont, &opentype.FaceOptions{
		Size:    config.FontSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to create font face"), err)
	}

	return &Renderer{
		face:    face,
		height:  config.Height,
		padding: config.Padding,
		size:    config.FontSize,
	}, nil
}

func (r *Renderer) Close() error {
	return r.face.Close()
}

// RenderLine draws one line of text on a white background. Image width
// follows the measured text width plus padding.
func (r *Renderer) RenderLine(text string) (image.Image, error) {
	if strings.ContainsAny(text, "\r\n") {
		return nil, errors.New("text must be a single line")
	}

	drawer := &font.Drawer{Face: r.face}
	width := drawer.MeasureString(text).Ceil() + 2*r.padding
	if width <= 2*r.padding {
		width = 2 * r.padding
	}

	img := image.NewRGBA(image.Rect(0, 0, width, r.height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	drawer = &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: r.face,
		Dot:  fixed.P(r.padding, int(r.size)+8),
	}
	drawer.DrawString(text)

	return img, nil
}

// WriteDataset renders every line to outDir/img_<N>.png and records the
// ground truth in outDir/labels.txt, one "img_<N>.png <text>" entry per
// line. N is 1-based. Any render or write failure aborts the batch.
func (r *Renderer) WriteDataset(outDir string, lines []string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Join(errors.New("failed to create image dataset directory"), err)
	}

	labels, err := os.Create(filepath.Join(outDir, "labels.txt"))
	if err != nil {
		return errors.Join(errors.New("failed to create labels file"), err)
	}
	defer labels.Close()

	for i, line := range lines {
		img, err := r.RenderLine(line)
		if err != nil {
			return errors.Join(fmt.Errorf("failed to render line %d", i+1), err)
		}

		name := fmt.Sprintf("img_%d.png", i+1)
		file, err := os.Create(filepath.Join(outDir, name))
		if err != nil {
			return errors.Join(errors.New("failed to create image file"), err)
		}
		if err := png.Encode(file, img); err != nil {
			file.Close()
			return errors.Join(errors.New("failed to encode image"), err)
		}
		if err := file.Close(); err != nil {
			return errors.Join(errors.New("failed to finalize image file"), err)
		}

		if _, err := fmt.Fprintf(labels, "%s %s\n", name, line); err != nil {
			return errors.Join(errors.New("failed to write label"), err)
		}
	}

	return nil
}
