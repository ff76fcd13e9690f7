package convert

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/gen2brain/go-fitz"

	"github.com/book-expert/pdf-tools/internal/progress"
)

const outputDirMode = 0o750

// FileResult is the per-input outcome of a PDF-to-image batch: the list
// of image files produced for the PDF, or the error that stopped it.
type FileResult struct {
	Err     error
	Input   string
	Outputs []string
}

// Failed reports whether this input produced an error.
func (r FileResult) Failed() bool {
	return r.Err != nil
}

// PDFsToImages converts each input PDF into a directory of per-page
// images under outputRoot. Files are processed sequentially in input
// order; a failure is recorded in that file's FileResult and the batch
// continues with the remaining PDFs. The returned error covers only
// batch-level conditions (empty input, bad format, canceled context),
// never a single file's failure.
func (c *Converter) PDFsToImages(
	ctx context.Context,
	pdfPaths []string,
	outputRoot string,
) ([]FileResult, error) {
	if len(pdfPaths) == 0 {
		return nil, ErrNoInputFiles
	}

	ext, formatErr := normalizeFormat(c.config.Format)
	if formatErr != nil {
		return nil, formatErr
	}

	if outputRoot == "" {
		outputRoot = "."
	}

	started := time.Now()

	bar := progress.New(len(pdfPaths), c.config.ProgressOutput)
	defer bar.Finish()

	results := make([]FileResult, 0, len(pdfPaths))

	for _, pdfPath := range pdfPaths {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}

		bar.Increment()

		outputs, convertErr := c.convertOnePDF(pdfPath, outputRoot, ext)
		if convertErr != nil {
			c.log.Error(
				"Failed to convert %s: %v",
				filepath.Base(pdfPath),
				convertErr,
			)
		} else {
			c.log.Success(
				"Converted %s: %d page(s)",
				filepath.Base(pdfPath),
				len(outputs),
			)
		}

		results = append(results, FileResult{
			Input:   pdfPath,
			Outputs: outputs,
			Err:     convertErr,
		})
	}

	c.log.Info(
		"Batch done: %d file(s) in %.2fs",
		len(pdfPaths),
		time.Since(started).Seconds(),
	)

	return results, nil
}

// convertOnePDF rasterizes every page of one PDF at the configured DPI
// and writes each page into a subdirectory named after the PDF's stem.
func (c *Converter) convertOnePDF(pdfPath, outputRoot, ext string) ([]string, error) {
	doc, openErr := fitz.New(pdfPath)
	if openErr != nil {
		return nil, fmt.Errorf(
			"%w: %s: %v",
			ErrRasterizationFailed,
			pdfPath,
			openErr,
		)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	if pageCount <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrPDFZeroPages, pdfPath)
	}

	outputDir := filepath.Join(outputRoot, stem(pdfPath))

	mkdirErr := os.MkdirAll(outputDir, outputDirMode)
	if mkdirErr != nil {
		return nil, fmt.Errorf(
			"failed to create output directory %s: %w",
			outputDir,
			mkdirErr,
		)
	}

	outputs := make([]string, 0, pageCount)

	for page := 1; page <= pageCount; page++ {
		img, renderErr := doc.ImageDPI(page-1, float64(c.config.DPI))
		if renderErr != nil {
			return nil, fmt.Errorf(
				"%w: %s page %d: %v",
				ErrRasterizationFailed,
				pdfPath,
				page,
				renderErr,
			)
		}

		name := PageFileName(stem(pdfPath), page, pageCount, ext)
		outPath := filepath.Join(outputDir, name)

		writeErr := c.writeImage(outPath, img, ext)
		if writeErr != nil {
			return nil, writeErr
		}

		outputs = append(outputs, outPath)
	}

	return outputs, nil
}

// writeImage encodes a page image to disk. Existing files at the target
// path are overwritten silently; that is documented behavior.
func (c *Converter) writeImage(path string, img image.Image, ext string) error {
	file, createErr := os.Create(path)
	if createErr != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncodingFailed, path, createErr)
	}

	var encodeErr error

	switch ext {
	case "jpg":
		encodeErr = jpeg.Encode(file, img, &jpeg.Options{
			Quality: c.config.JPEGQuality,
		})
	default:
		encodeErr = png.Encode(file, img)
	}

	closeErr := file.Close()

	if encodeErr != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncodingFailed, path, encodeErr)
	}

	if closeErr != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncodingFailed, path, closeErr)
	}

	return nil
}
