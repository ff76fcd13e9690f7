package convert

import (
	"fmt"
	"path/filepath"
	"strings"
)

const minPageIndexWidth = 3

// stem returns the file name without directory or extension.
func stem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// ensurePDFExtension appends ".pdf" when the output path carries no
// extension at all.
func ensurePDFExtension(path string) string {
	if filepath.Ext(path) == "" {
		return path + ".pdf"
	}

	return path
}

// PageFileName maps a page of a source PDF to its output image name.
// A single-page PDF keeps the bare stem; multi-page PDFs get a
// zero-padded page suffix wide enough for the page count, so the files
// sort lexicographically in page order.
func PageFileName(sourceStem string, page, pageCount int, ext string) string {
	if pageCount == 1 {
		return fmt.Sprintf("%s.%s", sourceStem, ext)
	}

	width := pageIndexWidth(pageCount)

	return fmt.Sprintf("%s_page_%0*d.%s", sourceStem, width, page, ext)
}

// pageIndexWidth returns the zero-pad width for a page index, never less
// than three digits.
func pageIndexWidth(pageCount int) int {
	width := len(fmt.Sprintf("%d", pageCount))
	if width < minPageIndexWidth {
		return minPageIndexWidth
	}

	return width
}

// normalizeFormat validates an output image format and returns the file
// extension to use for it.
func normalizeFormat(format string) (string, error) {
	switch strings.ToLower(format) {
	case "png":
		return "png", nil
	case "jpg", "jpeg":
		return "jpg", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
