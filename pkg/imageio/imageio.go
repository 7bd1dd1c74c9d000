package imageio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Codec loads and saves icon images. PNG and JPEG go through imaging's
// registered decoders; WebP has an explicit fallback path because icon sets
// occasionally ship it.
type Codec struct {
	config Config
}

// Config holds configuration for image encoding
type Config struct {
	// JPEGQuality applies when re-encoding jpg/jpeg files (1-100).
	JPEGQuality int
	// Atomic writes to a sibling temp file and renames into place, so a
	// failed save never leaves a half-written icon behind.
	Atomic bool
}

// New creates a Codec with default configuration
func New() *Codec {
	return &Codec{
		config: Config{
			JPEGQuality: 90,
			Atomic:      true,
		},
	}
}

// NewWithConfig creates a Codec with custom configuration
func NewWithConfig(config Config) *Codec {
	if config.JPEGQuality < 1 || config.JPEGQuality > 100 {
		config.JPEGQuality = 90
	}
	return &Codec{config: config}
}

// Load decodes the image at path into an NRGBA buffer ready for drawing
func (c *Codec) Load(path string) (*image.NRGBA, error) {
	img, err := c.open(path)
	if err != nil {
		return nil, err
	}
	return imaging.Clone(img), nil
}

func (c *Codec) open(path string) (image.Image, error) {
	// Try imaging.Open (registered decoders)
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".webp") {
		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
		if _, err := f.Seek(0, 0); err != nil {
			return nil, err
		}
	}
	if img, _, err := image.Decode(f); err == nil {
		return img, nil
	}
	return nil, fmt.Errorf("image: unknown format for %s", path)
}

// Save re-encodes img to path, choosing the format from the file extension.
// With atomic mode on, the bytes land in a temp file in the same directory
// first and are renamed over the destination.
func (c *Codec) Save(img image.Image, path string) error {
	target := path
	if c.config.Atomic {
		target = path + ".tmp"
	}

	if err := c.encode(img, target, path); err != nil {
		if c.config.Atomic {
			os.Remove(target)
		}
		return fmt.Errorf("failed to encode image: %w", err)
	}

	if c.config.Atomic {
		if err := os.Rename(target, path); err != nil {
			os.Remove(target)
			return fmt.Errorf("failed to replace image file: %w", err)
		}
	}
	return nil
}

// encode writes img to target; the output format comes from the extension of
// name, which may differ from target when an atomic temp file is in play.
func (c *Codec) encode(img image.Image, target, name string) error {
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "webp":
		return webp.Encode(f, img, &webp.Options{Quality: float32(c.config.JPEGQuality)})
	default:
		format, err := imaging.FormatFromFilename(name)
		if err != nil {
			return fmt.Errorf("unsupported output format: %w", err)
		}
		return imaging.Encode(f, img, format, imaging.JPEGQuality(c.config.JPEGQuality))
	}
}
