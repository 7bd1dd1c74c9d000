package overlay

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"

	"github.com/aurawave/iconmark/pkg/typeface"
)

// Stamper draws outlined text centered on an image. The outline is produced
// by stamping the text in the halo color at every small pixel offset around
// the anchor, then drawing the fill color once on top.
type Stamper struct {
	config Config
}

// Config holds configuration for overlay stamping
type Config struct {
	Text       string
	HaloRadius int
	Halo       color.Color
	Fill       color.Color
}

// New creates a Stamper with default configuration: "<->" in white with a
// 2px black halo.
func New() *Stamper {
	return &Stamper{
		config: Config{
			Text:       "<->",
			HaloRadius: 2,
			Halo:       color.Black,
			Fill:       color.White,
		},
	}
}

// NewWithConfig creates a Stamper with custom configuration
func NewWithConfig(config Config) *Stamper {
	if config.Text == "" {
		config.Text = "<->"
	}
	if config.Halo == nil {
		config.Halo = color.Black
	}
	if config.Fill == nil {
		config.Fill = color.White
	}
	return &Stamper{config: config}
}

// Text returns the overlay text
func (s *Stamper) Text() string {
	return s.config.Text
}

// Anchor computes the top-left pixel position that centers an extent of the
// given size on a width x height image. Integer division, matching the
// center-minus-half-extent placement.
func Anchor(width, height, textWidth, textHeight int) (int, int) {
	return width/2 - textWidth/2, height/2 - textHeight/2
}

// Stamp draws the configured text centered on img using face. The image is
// mutated in place. Stamping twice overdraws the first overlay; callers that
// need a pristine image must keep their own copy.
func (s *Stamper) Stamp(img *image.NRGBA, face font.Face) error {
	if img == nil {
		return fmt.Errorf("nil image")
	}

	bounds := img.Bounds()
	ext := typeface.Measure(face, s.config.Text)
	x, y := Anchor(bounds.Dx(), bounds.Dy(), ext.Width, ext.Height)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(s.config.Halo),
		Face: face,
	}

	// Halo: brute-force stamps around the anchor, skipping the center
	r := s.config.HaloRadius
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawer.Dot = ext.DotFor(x+dx, y+dy)
			drawer.DrawString(s.config.Text)
		}
	}

	drawer.Src = image.NewUniform(s.config.Fill)
	drawer.Dot = ext.DotFor(x, y)
	drawer.DrawString(s.config.Text)

	return nil
}
