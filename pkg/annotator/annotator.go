package annotator

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/aurawave/iconmark/pkg/imageio"
	"github.com/aurawave/iconmark/pkg/overlay"
	"github.com/aurawave/iconmark/pkg/typeface"
)

// Variant identifies which member of an icon pair a file is.
type Variant int

const (
	// Standard is the base-resolution icon.
	Standard Variant = iota
	// HighRes is the @2x double-resolution icon.
	HighRes
)

// String returns the conventional suffix-style name of the variant
func (v Variant) String() string {
	if v == HighRes {
		return "@2x"
	}
	return "standard"
}

// Annotator stamps a centered outlined text overlay onto icon files in place
type Annotator struct {
	config  Config
	codec   *imageio.Codec
	fonts   *typeface.Source
	stamper *overlay.Stamper
	log     *zap.Logger
}

// Config holds configuration for the annotator
type Config struct {
	// FontSizeRatio scales image height into the overlay point size.
	FontSizeRatio float64
	// Overlay configures the stamped text and halo.
	Overlay overlay.Config
	// Fonts configures system font resolution.
	Fonts typeface.Config
	// Codec configures re-encoding of the modified file.
	Codec imageio.Config
}

// DefaultConfig returns the configuration used by New
func DefaultConfig() Config {
	return Config{
		FontSizeRatio: 0.4,
		Overlay: overlay.Config{
			Text:       "<->",
			HaloRadius: 2,
		},
		Fonts: typeface.Config{
			CandidatePaths: typeface.DefaultCandidatePaths(),
			DPI:            72,
		},
		Codec: imageio.Config{
			JPEGQuality: 90,
			Atomic:      true,
		},
	}
}

// New creates an Annotator with default configuration
func New(log *zap.Logger) *Annotator {
	return NewWithConfig(DefaultConfig(), log)
}

// NewWithConfig creates an Annotator with custom configuration
func NewWithConfig(config Config, log *zap.Logger) *Annotator {
	if config.FontSizeRatio <= 0 {
		config.FontSizeRatio = 0.4
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Annotator{
		config:  config,
		codec:   imageio.NewWithConfig(config.Codec),
		fonts:   typeface.NewWithConfig(config.Fonts),
		stamper: overlay.NewWithConfig(config.Overlay),
		log:     log,
	}
}

// FontSize computes the overlay point size for an image height. The same
// formula applies to both variants; the high-res icon simply gets a
// proportionally larger size from its doubled pixel height.
func (a *Annotator) FontSize(height int, variant Variant) float64 {
	return math.Round(float64(height) * a.config.FontSizeRatio)
}

// Annotate loads the image at path, stamps the overlay centered on it, and
// overwrites the file. The operation is destructive; no backup of the
// original is kept. A missing system font silently degrades to the embedded
// fallback face and never fails the call.
func (a *Annotator) Annotate(path string, variant Variant) error {
	img, err := a.codec.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	size := a.FontSize(bounds.Dy(), variant)

	face, err := a.fonts.Load(size)
	if err != nil {
		return fmt.Errorf("failed to resolve font: %w", err)
	}

	if err := a.stamper.Stamp(img, face); err != nil {
		return fmt.Errorf("failed to draw overlay: %w", err)
	}

	if err := a.codec.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	a.log.Info("icon annotated",
		zap.String("path", path),
		zap.String("variant", variant.String()),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
		zap.Float64("font_size", size))

	return nil
}
