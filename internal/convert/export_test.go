package convert

// Exported test-only accessors for unexported functions and fields.
// This file is compiled only during tests and does not affect the public API.

// StemForTest exposes stem for tests in the external package.
func StemForTest(path string) string { return stem(path) }

// EnsurePDFExtensionForTest exposes ensurePDFExtension.
func EnsurePDFExtensionForTest(path string) string { return ensurePDFExtension(path) }

// PageIndexWidthForTest exposes pageIndexWidth.
func PageIndexWidthForTest(pageCount int) int { return pageIndexWidth(pageCount) }

// NormalizeFormatForTest exposes normalizeFormat.
func NormalizeFormatForTest(format string) (string, error) {
	return normalizeFormat(format)
}

// RotationByIndexForTest exposes rotationByIndex.
func RotationByIndexForTest(
	specs []RotationSpec,
	inputCount int,
) (map[int]float64, error) {
	return rotationByIndex(specs, inputCount)
}

// ConfigForTest returns a copy of the converter configuration for
// assertions in tests.
func (c *Converter) ConfigForTest() Options { return c.config }
