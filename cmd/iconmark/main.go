package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/aurawave/iconmark"
	"github.com/aurawave/iconmark/internal/config"
)

func main() {
	var dir, pairSpec, text string
	var halo int
	var ratio float64
	var quality int
	var atomic bool
	var verbose bool

	flag.StringVar(&dir, "dir", "", "icon directory (required; env ICONMARK_DIR)")
	flag.StringVar(&pairSpec, "pairs", "", "comma-separated standard:highres filename pairs")
	flag.StringVar(&text, "text", "", "overlay text (default \"<->\")")
	flag.IntVar(&halo, "halo", -1, "outline halo radius in pixels (default 2)")
	flag.Float64Var(&ratio, "ratio", 0, "font size as a fraction of image height (default 0.4)")
	flag.IntVar(&quality, "quality", 0, "JPEG/WebP re-encode quality 1-100 (default 90)")
	flag.BoolVar(&atomic, "atomic", true, "write via temp file and rename into place")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Flags override environment
	if dir != "" {
		cfg.Dir = dir
	}
	if pairSpec != "" {
		pairs, err := config.ParsePairs(strings.Split(pairSpec, ","))
		if err != nil {
			log.Fatal(err)
		}
		cfg.Pairs = pairs
	}
	if text != "" {
		cfg.Overlay.Text = text
	}
	if halo >= 0 {
		cfg.Overlay.HaloRadius = halo
	}
	if ratio > 0 {
		cfg.Overlay.FontSizeRatio = ratio
	}
	if quality > 0 {
		cfg.Output.JPEGQuality = quality
	}
	cfg.Output.Atomic = atomic

	if cfg.Dir == "" {
		log.Fatalf("usage: %s -dir icon_directory [-pairs icon.png:icon@2x.png,...] [-text \"<->\"] [-halo 2] [-ratio 0.4]", filepath.Base(os.Args[0]))
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := newLogger(verbose)
	defer logger.Sync()

	marker := iconmark.NewFromConfig(cfg, logger)
	requests := iconmark.PairRequests(cfg.Dir, cfg.Pairs)

	fmt.Printf("Adding %s overlay to icons in %s...\n\n", cfg.Overlay.Text, cfg.Dir)

	for _, result := range marker.Process(requests) {
		fmt.Println(result)
	}

	// Per-file failures are reported above; the exit code stays zero.
	fmt.Println("\nDone!")
}

func newLogger(verbose bool) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	return logger
}
