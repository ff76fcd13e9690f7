// Package mergepdf merges PDF files through pdfcpu's merge primitive.
package mergepdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/book-expert/logger"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var (
	// ErrNoInputFiles is returned when there is nothing to merge.
	ErrNoInputFiles = errors.New("no input pdf files to merge")
	// ErrInputNotFound is returned when one or more input files are
	// missing. Every missing path is listed in the error message.
	ErrInputNotFound = errors.New("input pdf not found")
)

// Merge concatenates the given PDF files, in order, into a single PDF at
// outputPath. All inputs are checked for existence up front so the user
// sees the complete list of missing files at once. A single input
// degrades to a plain byte copy.
func Merge(ctx context.Context, inputs []string, outputPath string, log *logger.Logger) error {
	if len(inputs) == 0 {
		return ErrNoInputFiles
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	missing := missingFiles(inputs)
	if len(missing) > 0 {
		return fmt.Errorf(
			"%w: %s",
			ErrInputNotFound,
			strings.Join(missing, ", "),
		)
	}

	started := time.Now()

	if len(inputs) == 1 {
		copyErr := copyFile(inputs[0], outputPath)
		if copyErr != nil {
			return copyErr
		}
	} else {
		conf := model.NewDefaultConfiguration()
		conf.ValidationMode = model.ValidationRelaxed

		mergeErr := api.MergeCreateFile(inputs, outputPath, false, conf)
		if mergeErr != nil {
			return fmt.Errorf("failed to merge PDFs: %w", mergeErr)
		}
	}

	log.Success(
		"Merged %d file(s) into %s in %.2fs",
		len(inputs),
		filepath.Base(outputPath),
		time.Since(started).Seconds(),
	)

	return nil
}

// DiscoverPDFs walks a directory tree and returns every PDF file found,
// case-insensitive on the extension, sorted by path so the merge order is
// deterministic.
func DiscoverPDFs(root string) ([]string, error) {
	var pdfPaths []string

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() &&
			strings.HasSuffix(strings.ToLower(d.Name()), ".pdf") {

			pdfPaths = append(pdfPaths, path)
		}

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("could not walk directory %s: %w", root, walkErr)
	}

	sort.Strings(pdfPaths)

	return pdfPaths, nil
}

func missingFiles(paths []string) []string {
	var missing []string

	for _, path := range paths {
		_, statErr := os.Stat(path)
		if statErr != nil {
			missing = append(missing, path)
		}
	}

	return missing
}

func copyFile(src, dst string) error {
	in, openErr := os.Open(src)
	if openErr != nil {
		return fmt.Errorf("could not open %s: %w", src, openErr)
	}
	defer in.Close()

	out, createErr := os.Create(dst)
	if createErr != nil {
		return fmt.Errorf("could not create %s: %w", dst, createErr)
	}

	_, copyErr := io.Copy(out, in)

	closeErr := out.Close()

	if copyErr != nil {
		return fmt.Errorf("could not copy %s to %s: %w", src, dst, copyErr)
	}

	if closeErr != nil {
		return fmt.Errorf("could not close %s: %w", dst, closeErr)
	}

	return nil
}
