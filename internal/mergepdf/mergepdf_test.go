package mergepdf_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/book-expert/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book-expert/pdf-tools/internal/mergepdf"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()

	log, err := logger.New(t.TempDir(), "test.log")
	require.NoError(t, err)

	return log
}

func TestMerge_EmptyInput(t *testing.T) {
	t.Parallel()

	err := mergepdf.Merge(context.Background(), nil, "out.pdf", newTestLogger(t))
	require.ErrorIs(t, err, mergepdf.ErrNoInputFiles)
}

func TestMerge_ReportsAllMissingFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	present := filepath.Join(dir, "present.pdf")
	require.NoError(t, os.WriteFile(present, []byte("%PDF-1.4"), 0o600))

	err := mergepdf.Merge(
		context.Background(),
		[]string{present, filepath.Join(dir, "gone1.pdf"), filepath.Join(dir, "gone2.pdf")},
		filepath.Join(dir, "out.pdf"),
		newTestLogger(t),
	)
	require.ErrorIs(t, err, mergepdf.ErrInputNotFound)
	assert.Contains(t, err.Error(), "gone1.pdf")
	assert.Contains(t, err.Error(), "gone2.pdf")
}

func TestMerge_SingleInputCopies(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "only.pdf")
	content := []byte("%PDF-1.4 single file body")
	require.NoError(t, os.WriteFile(input, content, 0o600))

	output := filepath.Join(dir, "merged.pdf")

	err := mergepdf.Merge(
		context.Background(),
		[]string{input},
		output,
		newTestLogger(t),
	)
	require.NoError(t, err)

	got, readErr := os.ReadFile(output)
	require.NoError(t, readErr)
	assert.Equal(t, content, got)
}

func TestMerge_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mergepdf.Merge(ctx, []string{"a.pdf"}, "out.pdf", newTestLogger(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscoverPDFs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.pdf"), []byte(""), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.PDF"), []byte(""), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "c.pdf"), []byte(""), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(""), 0o600))

	found, err := mergepdf.DiscoverPDFs(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.PDF"),
		filepath.Join(dir, "b.pdf"),
		filepath.Join(nested, "c.pdf"),
	}, found)
}

func TestDiscoverPDFs_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := mergepdf.DiscoverPDFs(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
