// Package iconmark stamps a centered, outlined text overlay onto icon image
// files in place.
//
// The overlay is the literal text "<->" by default, drawn in white over a
// black halo so it stays readable against any icon background. The halo is
// produced by brute-force stamping of the glyphs at every small pixel offset
// around the anchor rather than by a stroke or dilate pass.
//
// Basic usage:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/aurawave/iconmark"
//	)
//
//	func main() {
//		marker := iconmark.New(nil)
//
//		requests := iconmark.PairRequests("./imgs/actions/txgain", iconmark.DefaultPairs())
//		for _, result := range marker.Process(requests) {
//			fmt.Println(result)
//		}
//		log.Println("Done!")
//	}
//
// The package consists of four components:
//
// 1. Annotator (pkg/annotator): the per-file load, stamp, save transform
// 2. Typeface (pkg/typeface): system font resolution with embedded fallback
// 3. Overlay (pkg/overlay): outlined-text drawing onto a pixel buffer
// 4. Imageio (pkg/imageio): decoding and atomic re-encoding of icon files
//
// Annotation is destructive: the source file is overwritten and a second run
// over the same file stamps a second overlay on top of the first. Files are
// processed strictly sequentially and independently; one file's failure never
// stops the rest of the batch.
package iconmark

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/aurawave/iconmark/internal/config"
	"github.com/aurawave/iconmark/internal/utils"
	"github.com/aurawave/iconmark/pkg/annotator"
	"github.com/aurawave/iconmark/pkg/imageio"
	"github.com/aurawave/iconmark/pkg/overlay"
	"github.com/aurawave/iconmark/pkg/typeface"
)

// Version of the iconmark library
const Version = "1.0.0"

// Variant identifies which member of an icon pair a file is.
type Variant = annotator.Variant

// Variant values re-exported from pkg/annotator.
const (
	Standard = annotator.Standard
	HighRes  = annotator.HighRes
)

// Pair names the two resolution variants of one icon asset.
type Pair = config.Pair

// Request is one file to annotate.
type Request struct {
	Path    string
	Variant Variant
}

// Status classifies the outcome of a single request.
type Status int

const (
	// StatusAnnotated means the file was modified and saved.
	StatusAnnotated Status = iota
	// StatusNotFound means the file did not exist and was skipped.
	StatusNotFound
	// StatusFailed means loading, drawing, or saving the file failed.
	StatusFailed
)

// Result is the outcome of one request. Results are independent; a failed
// request never affects its siblings.
type Result struct {
	Request Request
	Status  Status
	Err     error
}

// String renders the result as the conventional one-line console status
func (r Result) String() string {
	name := filepath.Base(r.Request.Path)
	switch r.Status {
	case StatusAnnotated:
		return fmt.Sprintf("✓ Modified: %s", name)
	case StatusNotFound:
		return fmt.Sprintf("✗ File not found: %s", name)
	default:
		return fmt.Sprintf("✗ Error processing %s: %v", r.Request.Path, r.Err)
	}
}

// Marker provides a high-level interface for annotating batches of icon files
type Marker struct {
	annotator *annotator.Annotator
	log       *zap.Logger
}

// New creates a Marker with default configuration. A nil logger disables
// structured logging.
func New(log *zap.Logger) *Marker {
	return NewWithConfig(annotator.DefaultConfig(), log)
}

// NewWithConfig creates a Marker with custom configuration
func NewWithConfig(cfg annotator.Config, log *zap.Logger) *Marker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Marker{
		annotator: annotator.NewWithConfig(cfg, log),
		log:       log,
	}
}

// NewFromConfig creates a Marker from the application configuration
func NewFromConfig(cfg *config.Config, log *zap.Logger) *Marker {
	ac := annotator.DefaultConfig()
	ac.FontSizeRatio = cfg.Overlay.FontSizeRatio
	ac.Overlay = overlay.Config{
		Text:       cfg.Overlay.Text,
		HaloRadius: cfg.Overlay.HaloRadius,
	}
	if len(cfg.Overlay.FontPaths) > 0 {
		ac.Fonts = typeface.Config{CandidatePaths: cfg.Overlay.FontPaths}
	}
	ac.Codec = imageio.Config{
		JPEGQuality: cfg.Output.JPEGQuality,
		Atomic:      cfg.Output.Atomic,
	}
	return NewWithConfig(ac, log)
}

// DefaultPairs returns the icon pairs annotated when none are configured
func DefaultPairs() []Pair {
	return config.DefaultPairs()
}

// PairRequests expands (standard, high-res) filename pairs against a base
// directory into the flat request sequence, standard member first.
func PairRequests(dir string, pairs []Pair) []Request {
	requests := make([]Request, 0, 2*len(pairs))
	for _, pair := range pairs {
		requests = append(requests,
			Request{Path: filepath.Join(dir, pair.Standard), Variant: Standard},
			Request{Path: filepath.Join(dir, pair.HighRes), Variant: HighRes},
		)
	}
	return requests
}

// Annotate stamps the overlay onto a single file
func (m *Marker) Annotate(path string, variant Variant) error {
	return m.annotator.Annotate(path, variant)
}

// Process annotates each request in order and reports one Result per
// request. Missing files are reported as not found without being touched;
// failures are recorded and processing always continues through the full
// sequence.
func (m *Marker) Process(requests []Request) []Result {
	results := make([]Result, 0, len(requests))
	for _, req := range requests {
		results = append(results, m.process(req))
	}
	return results
}

func (m *Marker) process(req Request) Result {
	if !utils.FileExists(req.Path) {
		m.log.Debug("icon file missing", zap.String("path", req.Path))
		return Result{Request: req, Status: StatusNotFound}
	}

	if err := m.annotator.Annotate(req.Path, req.Variant); err != nil {
		m.log.Warn("icon annotation failed",
			zap.String("path", req.Path),
			zap.Error(err))
		return Result{Request: req, Status: StatusFailed, Err: err}
	}

	return Result{Request: req, Status: StatusAnnotated}
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
