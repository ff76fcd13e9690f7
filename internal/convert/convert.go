// Package convert implements the batch conversion pipeline between image
// and PDF representations.
package convert

import (
	"errors"
	"io"
	"os"

	"github.com/book-expert/logger"
)

var (
	// ErrNoInputFiles is returned when a conversion is requested with an
	// empty input list.
	ErrNoInputFiles = errors.New("no input files provided")
	// ErrUnreadableImage is returned when an input image cannot be
	// opened or decoded.
	ErrUnreadableImage = errors.New("unreadable image")
	// ErrInvalidRotation is returned when a rotation spec is malformed or
	// references an index outside the input list.
	ErrInvalidRotation = errors.New("invalid rotation spec")
	// ErrRasterizationFailed is returned when the rasterization engine
	// cannot render a PDF's pages.
	ErrRasterizationFailed = errors.New("rasterization failed")
	// ErrEncodingFailed is returned when an output image or PDF cannot be
	// encoded.
	ErrEncodingFailed = errors.New("encoding failed")
	// ErrUnsupportedFormat is returned for image formats outside the
	// supported set.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrPDFZeroPages is returned when a PDF reports no pages.
	ErrPDFZeroPages = errors.New("pdf has no pages")
)

const (
	defaultDPI         = 200
	defaultFormat      = "png"
	defaultJPEGQuality = 95
)

// Options holds all configurable parameters for a Converter.
type Options struct {
	// ProgressOutput is the writer where progress bars are rendered.
	// Defaults to os.Stdout. Tests set io.Discard.
	ProgressOutput io.Writer
	// Format is the output image format for PDF-to-image conversion.
	// One of png, jpg, jpeg. Defaults to png.
	Format string
	// DPI is the rasterization resolution for PDF-to-image conversion.
	// Defaults to 200.
	DPI int
	// JPEGQuality is the encoder quality used for jpg output. Defaults
	// to 95.
	JPEGQuality int
}

// Converter runs image-to-PDF and PDF-to-image batch conversions.
type Converter struct {
	log    *logger.Logger
	config Options
}

// New creates a Converter, filling zero-value fields in opts with
// defaults.
func New(opts *Options, log *logger.Logger) *Converter {
	applyDefaultOptions(opts)

	return &Converter{
		config: *opts,
		log:    log,
	}
}

func applyDefaultOptions(opts *Options) {
	if opts.DPI <= 0 {
		opts.DPI = defaultDPI
	}

	if opts.Format == "" {
		opts.Format = defaultFormat
	}

	if opts.JPEGQuality <= 0 {
		opts.JPEGQuality = defaultJPEGQuality
	}

	if opts.ProgressOutput == nil {
		opts.ProgressOutput = os.Stdout
	}
}
