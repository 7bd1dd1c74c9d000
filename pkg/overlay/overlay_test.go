package overlay

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"
)

var background = color.NRGBA{120, 120, 120, 255}

// createTestImage creates a uniform gray image for stamping
func createTestImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, background)
		}
	}
	return img
}

func TestNew(t *testing.T) {
	stamper := New()
	if stamper == nil {
		t.Fatal("New() returned nil")
	}

	if stamper.config.Text != "<->" {
		t.Errorf("Expected default text \"<->\", got %q", stamper.config.Text)
	}

	if stamper.config.HaloRadius != 2 {
		t.Errorf("Expected default halo radius 2, got %d", stamper.config.HaloRadius)
	}
}

func TestNewWithConfigDefaults(t *testing.T) {
	stamper := NewWithConfig(Config{})
	if stamper.config.Text != "<->" {
		t.Errorf("Expected empty text to default to \"<->\", got %q", stamper.config.Text)
	}
	if stamper.config.Halo == nil || stamper.config.Fill == nil {
		t.Error("Expected nil colors to default to black/white")
	}
}

func TestAnchor(t *testing.T) {
	tests := []struct {
		width, height         int
		textWidth, textHeight int
		wantX, wantY          int
	}{
		{144, 144, 40, 20, 52, 62},
		{72, 72, 21, 13, 26, 30},
		{100, 50, 30, 10, 35, 20},
		{10, 10, 20, 20, -5, -5}, // text larger than image still anchors
	}

	for _, tt := range tests {
		x, y := Anchor(tt.width, tt.height, tt.textWidth, tt.textHeight)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("Anchor(%d,%d,%d,%d) = (%d,%d), want (%d,%d)",
				tt.width, tt.height, tt.textWidth, tt.textHeight, x, y, tt.wantX, tt.wantY)
		}

		// Center alignment holds up to rounding
		if tt.wantX >= 0 && abs((x+tt.textWidth/2)-tt.width/2) > 1 {
			t.Errorf("Anchor x=%d does not center %dpx text in %dpx image", x, tt.textWidth, tt.width)
		}
	}
}

func TestStampModifiesCenterOnly(t *testing.T) {
	img := createTestImage(144, 144)
	stamper := New()

	if err := stamper.Stamp(img, basicfont.Face7x13); err != nil {
		t.Fatalf("Stamp failed: %v", err)
	}

	// The center region must change
	changed := false
	for y := 50; y < 94 && !changed; y++ {
		for x := 50; x < 94; x++ {
			if img.NRGBAAt(x, y) != background {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Error("Expected pixels near the image center to change")
	}

	// Corners stay untouched
	corners := [][2]int{{0, 0}, {143, 0}, {0, 143}, {143, 143}}
	for _, c := range corners {
		if img.NRGBAAt(c[0], c[1]) != background {
			t.Errorf("Expected corner (%d,%d) to be unchanged", c[0], c[1])
		}
	}
}

func TestStampDrawsHaloAndFill(t *testing.T) {
	img := createTestImage(96, 96)
	stamper := New()

	if err := stamper.Stamp(img, basicfont.Face7x13); err != nil {
		t.Fatalf("Stamp failed: %v", err)
	}

	haloSeen, fillSeen := false, false
	for y := 0; y < 96; y++ {
		for x := 0; x < 96; x++ {
			switch img.NRGBAAt(x, y) {
			case (color.NRGBA{0, 0, 0, 255}):
				haloSeen = true
			case (color.NRGBA{255, 255, 255, 255}):
				fillSeen = true
			}
		}
	}

	if !haloSeen {
		t.Error("Expected black halo pixels in stamped image")
	}
	if !fillSeen {
		t.Error("Expected white fill pixels in stamped image")
	}
}

func TestStampTwice(t *testing.T) {
	// A second stamp overdraws the first; the operation must still succeed
	// and the image stays modified relative to the pristine background.
	img := createTestImage(64, 64)
	stamper := New()

	if err := stamper.Stamp(img, basicfont.Face7x13); err != nil {
		t.Fatalf("First stamp failed: %v", err)
	}
	if err := stamper.Stamp(img, basicfont.Face7x13); err != nil {
		t.Fatalf("Second stamp failed: %v", err)
	}

	if img.NRGBAAt(32, 32) == background {
		t.Error("Expected center pixel to differ from background after stamping")
	}
}

func TestStampNilImage(t *testing.T) {
	stamper := New()
	if err := stamper.Stamp(nil, basicfont.Face7x13); err == nil {
		t.Error("Expected error for nil image")
	}
}

func TestStampCustomConfig(t *testing.T) {
	img := createTestImage(64, 64)
	stamper := NewWithConfig(Config{
		Text:       "x",
		HaloRadius: 0,
		Halo:       color.Black,
		Fill:       color.NRGBA{255, 0, 0, 255},
	})

	if err := stamper.Stamp(img, basicfont.Face7x13); err != nil {
		t.Fatalf("Stamp failed: %v", err)
	}

	// Radius zero means no halo stamps at all
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if img.NRGBAAt(x, y) == (color.NRGBA{0, 0, 0, 255}) {
				t.Fatal("Expected no halo pixels with radius 0")
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
