package compress

// Exported test-only accessors for unexported functions and fields.
// This file is compiled only during tests and does not affect the public API.

// BuildGhostscriptArgsForTest exposes buildGhostscriptArgs for tests in
// the external package.
func BuildGhostscriptArgsForTest(quality, outputPath, inputPath string) []string {
	return buildGhostscriptArgs(quality, outputPath, inputPath)
}

// DefaultOutputPathForTest exposes defaultOutputPath.
func DefaultOutputPathForTest(inputPath string) string {
	return defaultOutputPath(inputPath)
}

// SetExecutorForTest allows tests to inject a fake executor.
func (c *Compressor) SetExecutorForTest(executor CommandExecutor) {
	c.executor = executor
}
