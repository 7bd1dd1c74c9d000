package typeface

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Source resolves a font face for overlay rendering. It tries a list of
// candidate TrueType files on disk first and degrades to an embedded face
// when none of them can be loaded.
type Source struct {
	config Config
}

// Config holds configuration for font resolution
type Config struct {
	// CandidatePaths are TTF/OTF files tried in order. Relative paths are
	// resolved against the working directory.
	CandidatePaths []string
	// DPI used when sizing faces. 72 makes point size equal pixel size.
	DPI float64
}

// DefaultCandidatePaths lists the font files tried by default, covering the
// common locations of Arial plus the usual Linux substitute.
func DefaultCandidatePaths() []string {
	return []string{
		"arial.ttf",
		`C:\Windows\Fonts\arial.ttf`,
		"/Library/Fonts/Arial.ttf",
		"/usr/share/fonts/truetype/msttcorefonts/Arial.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	}
}

// New creates a Source with default configuration
func New() *Source {
	return &Source{
		config: Config{
			CandidatePaths: DefaultCandidatePaths(),
			DPI:            72,
		},
	}
}

// NewWithConfig creates a Source with custom configuration
func NewWithConfig(config Config) *Source {
	if config.DPI <= 0 {
		config.DPI = 72
	}
	return &Source{config: config}
}

// Load returns a font face at the given pixel size. Missing or unreadable
// candidate files are skipped silently; when none load, the embedded Go
// Regular face is used at the same size, and as a last resort the fixed-size
// 7x13 bitmap face. The returned face always renders, so a missing system
// font degrades fidelity without failing the caller.
func (s *Source) Load(size float64) (font.Face, error) {
	for _, path := range s.config.CandidatePaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		face, err := s.faceFromBytes(data, size)
		if err != nil {
			continue
		}
		return face, nil
	}

	face, err := s.faceFromBytes(goregular.TTF, size)
	if err != nil {
		return basicfont.Face7x13, nil
	}
	return face, nil
}

func (s *Source) faceFromBytes(data []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     s.config.DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// Extent is the tight pixel bounding box of a rendered string, together with
// the drawer dot offset that places the box's top-left corner at the origin.
type Extent struct {
	Width  int
	Height int
	// Origin is subtracted from the desired top-left pixel position to get
	// the baseline dot passed to font.Drawer.
	Origin fixed.Point26_6
}

// Measure computes the rendered extent of text under face
func Measure(face font.Face, text string) Extent {
	bounds, _ := font.BoundString(face, text)
	return Extent{
		Width:  (bounds.Max.X - bounds.Min.X).Ceil(),
		Height: (bounds.Max.Y - bounds.Min.Y).Ceil(),
		Origin: bounds.Min,
	}
}

// DotFor returns the baseline dot that draws text with its bounding box
// anchored at pixel (x, y).
func (e Extent) DotFor(x, y int) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.I(x) - e.Origin.X,
		Y: fixed.I(y) - e.Origin.Y,
	}
}
