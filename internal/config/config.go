package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/aurawave/iconmark/internal/utils"
)

// Config holds the application configuration
type Config struct {
	// Dir is the icon directory all pair filenames resolve against. It has
	// no default: the caller must supply it.
	Dir     string
	Pairs   []Pair
	Overlay OverlayConfig
	Output  OutputConfig
}

// Pair names the two resolution variants of one icon asset
type Pair struct {
	Standard string
	HighRes  string
}

// OverlayConfig holds configuration for the stamped overlay
type OverlayConfig struct {
	Text          string
	HaloRadius    int
	FontSizeRatio float64
	FontPaths     []string
}

// OutputConfig holds configuration for re-encoding annotated files
type OutputConfig struct {
	JPEGQuality int
	Atomic      bool
}

// DefaultPairs returns the icon pairs annotated when none are configured
func DefaultPairs() []Pair {
	return []Pair{
		{Standard: "icon.png", HighRes: "icon@2x.png"},
		{Standard: "key.png", HighRes: "key@2x.png"},
	}
}

// Load builds the configuration from environment variables with defaults
// for everything except the icon directory.
func Load() (*Config, error) {
	viper.SetDefault("ICONMARK_PAIRS", []string{"icon.png:icon@2x.png", "key.png:key@2x.png"})
	viper.SetDefault("ICONMARK_TEXT", "<->")
	viper.SetDefault("ICONMARK_HALO_RADIUS", 2)
	viper.SetDefault("ICONMARK_FONT_SIZE_RATIO", 0.4)
	viper.SetDefault("ICONMARK_JPEG_QUALITY", 90)
	viper.SetDefault("ICONMARK_ATOMIC_WRITE", true)

	viper.AutomaticEnv()

	pairs, err := ParsePairs(viper.GetStringSlice("ICONMARK_PAIRS"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse icon pairs: %w", err)
	}

	cfg := &Config{
		Dir:   viper.GetString("ICONMARK_DIR"),
		Pairs: pairs,
		Overlay: OverlayConfig{
			Text:          viper.GetString("ICONMARK_TEXT"),
			HaloRadius:    viper.GetInt("ICONMARK_HALO_RADIUS"),
			FontSizeRatio: viper.GetFloat64("ICONMARK_FONT_SIZE_RATIO"),
			FontPaths:     viper.GetStringSlice("ICONMARK_FONT_PATHS"),
		},
		Output: OutputConfig{
			JPEGQuality: viper.GetInt("ICONMARK_JPEG_QUALITY"),
			Atomic:      viper.GetBool("ICONMARK_ATOMIC_WRITE"),
		},
	}

	return cfg, nil
}

// ParsePairs parses "standard:highres" filename pairs
func ParsePairs(specs []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid pair %q (want standard:highres)", spec)
		}
		pairs = append(pairs, Pair{Standard: parts[0], HighRes: parts[1]})
	}
	return pairs, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("dir is required: set ICONMARK_DIR or pass -dir")
	}

	if !utils.DirExists(c.Dir) {
		return fmt.Errorf("dir does not exist: %s", c.Dir)
	}

	if len(c.Pairs) == 0 {
		return fmt.Errorf("pairs cannot be empty")
	}

	for _, pair := range c.Pairs {
		for _, name := range []string{pair.Standard, pair.HighRes} {
			if !utils.IsImageFile(name) {
				return fmt.Errorf("pair entry %q is not an image filename", name)
			}
		}
	}

	if c.Overlay.Text == "" {
		return fmt.Errorf("overlay.text cannot be empty")
	}

	if c.Overlay.HaloRadius < 0 || c.Overlay.HaloRadius > 10 {
		return fmt.Errorf("overlay.halo_radius must be between 0 and 10")
	}

	if c.Overlay.FontSizeRatio <= 0 || c.Overlay.FontSizeRatio > 1 {
		return fmt.Errorf("overlay.font_size_ratio must be between 0 and 1")
	}

	if c.Output.JPEGQuality < 1 || c.Output.JPEGQuality > 100 {
		return fmt.Errorf("output.jpeg_quality must be between 1 and 100")
	}

	return nil
}
