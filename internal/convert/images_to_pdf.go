package convert

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"

	"github.com/book-expert/pdf-tools/internal/progress"
)

// pixelsPerInch is the assumed screen density when sizing PDF pages from
// image pixel dimensions.
const pixelsPerInch = 96.0

const pointsPerInch = 72.0

// ImagesToPDF converts an ordered list of image files into a single
// multi-page PDF at outputPath, one page per image, each page sized to
// its (possibly rotated) image. No file is written until every input has
// been decoded, so a failing input never leaves a partial PDF behind.
// It returns the concrete output path, which gets a ".pdf" extension when
// the requested path has none.
func (c *Converter) ImagesToPDF(
	ctx context.Context,
	imagePaths []string,
	specs []RotationSpec,
	outputPath string,
) (string, error) {
	if len(imagePaths) == 0 {
		return "", ErrNoInputFiles
	}

	angles, rotationErr := rotationByIndex(specs, len(imagePaths))
	if rotationErr != nil {
		return "", rotationErr
	}

	outputPath = ensurePDFExtension(outputPath)
	started := time.Now()

	images, loadErr := c.loadImages(ctx, imagePaths, angles)
	if loadErr != nil {
		return "", loadErr
	}

	encodeErr := writePDF(images, outputPath)
	if encodeErr != nil {
		return "", encodeErr
	}

	c.log.Success(
		"Wrote %s: %d page(s) in %.2fs",
		filepath.Base(outputPath),
		len(images),
		time.Since(started).Seconds(),
	)

	return outputPath, nil
}

// loadImages decodes every input in order, applying rotation where a spec
// targets the image's index.
func (c *Converter) loadImages(
	ctx context.Context,
	imagePaths []string,
	angles map[int]float64,
) ([]image.Image, error) {
	bar := progress.New(len(imagePaths), c.config.ProgressOutput)
	defer bar.Finish()

	images := make([]image.Image, 0, len(imagePaths))

	for i, path := range imagePaths {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		img, openErr := imaging.Open(path)
		if openErr != nil {
			return nil, fmt.Errorf(
				"%w: %s: %v",
				ErrUnreadableImage,
				path,
				openErr,
			)
		}

		if angle, ok := angles[i]; ok {
			img = imaging.Rotate(img, angle, color.White)
		}

		images = append(images, img)
		bar.Increment()
	}

	return images, nil
}

// writePDF composes the loaded images into one PDF document, first image
// as the base page and the rest appended in order.
func writePDF(images []image.Image, outputPath string) error {
	doc := gofpdf.New("P", "pt", "A4", "")

	for i, img := range images {
		appendErr := appendImagePage(doc, img, i)
		if appendErr != nil {
			return appendErr
		}
	}

	outputErr := doc.OutputFileAndClose(outputPath)
	if outputErr != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncodingFailed, outputPath, outputErr)
	}

	return nil
}

// appendImagePage adds one page sized to the image and draws the image
// over the full page.
func appendImagePage(doc *gofpdf.Fpdf, img image.Image, index int) error {
	var buf bytes.Buffer

	encodeErr := png.Encode(&buf, img)
	if encodeErr != nil {
		return fmt.Errorf(
			"%w: page %d: %v",
			ErrEncodingFailed,
			index+1,
			encodeErr,
		)
	}

	bounds := img.Bounds()
	widthPt := float64(bounds.Dx()) * pointsPerInch / pixelsPerInch
	heightPt := float64(bounds.Dy()) * pointsPerInch / pixelsPerInch

	imageName := fmt.Sprintf("page-%d", index+1)
	options := gofpdf.ImageOptions{ImageType: "PNG"}

	doc.RegisterImageOptionsReader(imageName, options, &buf)
	doc.AddPageFormat("P", gofpdf.SizeType{Wd: widthPt, Ht: heightPt})
	doc.ImageOptions(imageName, 0, 0, widthPt, heightPt, false, options, 0, "")

	if doc.Err() {
		return fmt.Errorf("%w: page %d: %v", ErrEncodingFailed, index+1, doc.Error())
	}

	return nil
}
