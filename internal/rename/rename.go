// Package rename normalizes date-stamped PDF file names in a directory.
package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/book-expert/logger"
)

// datePattern matches a "YYYY-MM-DD__YYYY-MM-DD" range anywhere in a file
// name.
var datePattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})__(\d{4}-\d{2}-\d{2})`)

// Rename records one planned or performed rename.
type Rename struct {
	From string
	To   string
}

// Run renames every PDF in dir whose name carries a date range from
// "<start>__<end>" form to "<start> ~ <end>.pdf". With dryRun set, the
// planned renames are returned and logged but the filesystem is left
// untouched. Files without a date range are skipped.
func Run(dir string, dryRun bool, log *logger.Logger) ([]Rename, error) {
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		return nil, fmt.Errorf("could not read directory %s: %w", dir, readErr)
	}

	var renames []Rename

	for _, entry := range entries {
		if entry.IsDir() ||
			!strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {

			continue
		}

		newName, ok := normalizedName(entry.Name())
		if !ok {
			continue
		}

		rename := Rename{
			From: filepath.Join(dir, entry.Name()),
			To:   filepath.Join(dir, newName),
		}

		if dryRun {
			log.Info("Would rename: %s -> %s", entry.Name(), newName)
		} else {
			renameErr := os.Rename(rename.From, rename.To)
			if renameErr != nil {
				return renames, fmt.Errorf(
					"could not rename %s: %w",
					entry.Name(),
					renameErr,
				)
			}

			log.Info("Renamed: %s -> %s", entry.Name(), newName)
		}

		renames = append(renames, rename)
	}

	return renames, nil
}

// normalizedName maps a date-stamped name to its normalized form, or
// reports false when the name carries no date range.
func normalizedName(name string) (string, bool) {
	match := datePattern.FindStringSubmatch(name)
	if match == nil {
		return "", false
	}

	return fmt.Sprintf("%s ~ %s.pdf", match[1], match[2]), true
}
