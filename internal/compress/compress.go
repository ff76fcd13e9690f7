// Package compress shrinks PDF files by invoking Ghostscript with a
// named quality preset.
package compress

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/book-expert/logger"
)

const ghostscriptBinary = "gs"

var (
	// ErrInputNotFound is returned when the input PDF does not exist.
	ErrInputNotFound = errors.New("input pdf not found")
	// ErrUnknownQuality is returned for a quality preset outside the
	// Ghostscript set.
	ErrUnknownQuality = errors.New("unknown quality preset")
	// ErrDependencyMissing is returned when the Ghostscript binary is
	// not installed.
	ErrDependencyMissing = errors.New("ghostscript binary not found")
)

// qualityPresets are the Ghostscript -dPDFSETTINGS profiles, ordered from
// smallest output to highest fidelity.
var qualityPresets = []string{"screen", "ebook", "printer", "prepress"}

// Result describes a completed compression run.
type Result struct {
	OutputPath      string
	OriginalBytes   int64
	CompressedBytes int64
	Elapsed         time.Duration
}

// Ratio returns the size reduction as a percentage of the original size.
func (r Result) Ratio() float64 {
	if r.OriginalBytes == 0 {
		return 0
	}

	saved := r.OriginalBytes - r.CompressedBytes

	return float64(saved) / float64(r.OriginalBytes) * 100
}

// Compressor runs Ghostscript to re-encode a PDF at a quality preset.
type Compressor struct {
	executor CommandExecutor
	log      *logger.Logger
}

// New creates a Compressor using the real command executor.
func New(log *logger.Logger) *Compressor {
	return &Compressor{
		executor: &defaultExecutor{},
		log:      log,
	}
}

// Compress re-encodes inputPath at the given quality preset. An empty
// outputPath defaults to "<stem>_compressed<ext>" next to the input; an
// empty quality defaults to "printer".
func (c *Compressor) Compress(
	ctx context.Context,
	inputPath, outputPath, quality string,
) (Result, error) {
	if quality == "" {
		quality = "printer"
	}

	if !validQuality(quality) {
		return Result{}, fmt.Errorf(
			"%w: %s (expected one of %s)",
			ErrUnknownQuality,
			quality,
			strings.Join(qualityPresets, ", "),
		)
	}

	inputInfo, statErr := os.Stat(inputPath)
	if statErr != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath)
	}

	started := time.Now()

	args := buildGhostscriptArgs(quality, outputPath, inputPath)

	outputBytes, execErr := c.executor.RunCombined(ctx, ghostscriptBinary, args...)
	if execErr != nil {
		if errors.Is(execErr, exec.ErrNotFound) {
			return Result{}, fmt.Errorf(
				"%w: install ghostscript to use compress",
				ErrDependencyMissing,
			)
		}

		return Result{}, fmt.Errorf(
			"ghostscript execution failed: %w. Output: %s",
			execErr,
			string(outputBytes),
		)
	}

	outputInfo, outStatErr := os.Stat(outputPath)
	if outStatErr != nil {
		return Result{}, fmt.Errorf(
			"ghostscript produced no output at %s: %w",
			outputPath,
			outStatErr,
		)
	}

	result := Result{
		OutputPath:      outputPath,
		OriginalBytes:   inputInfo.Size(),
		CompressedBytes: outputInfo.Size(),
		Elapsed:         time.Since(started),
	}

	c.log.Success(
		"Compressed %s: %.2f MB -> %.2f MB (%.1f%%) in %.2fs",
		filepath.Base(inputPath),
		megabytes(result.OriginalBytes),
		megabytes(result.CompressedBytes),
		result.Ratio(),
		result.Elapsed.Seconds(),
	)

	return result, nil
}

// buildGhostscriptArgs constructs the argument list for the Ghostscript
// process. The downsampling and font flags match the pdfwrite profile the
// tool has always shipped with.
func buildGhostscriptArgs(quality, outputPath, inputPath string) []string {
	return []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		fmt.Sprintf("-dPDFSETTINGS=/%s", quality),
		"-dNOPAUSE",
		"-dBATCH",
		"-dQUIET",
		"-dAutoRotatePages=/None",
		"-dColorImageDownsampleType=/Bicubic",
		"-dGrayImageDownsampleType=/Bicubic",
		"-dMonoImageDownsampleType=/Subsample",
		"-dEmbedAllFonts=true",
		"-dSubsetFonts=true",
		fmt.Sprintf("-sOutputFile=%s", outputPath),
		inputPath,
	}
}

// defaultOutputPath derives "<stem>_compressed<ext>" alongside the input.
func defaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)

	return base + "_compressed" + ext
}

func validQuality(quality string) bool {
	for _, preset := range qualityPresets {
		if preset == quality {
			return true
		}
	}

	return false
}

func megabytes(n int64) float64 {
	return float64(n) / 1024 / 1024
}
