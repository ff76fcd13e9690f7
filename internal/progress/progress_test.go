package progress_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book-expert/pdf-tools/internal/progress"
)

func TestBarCountsWorkItems(t *testing.T) {
	t.Parallel()

	bar := progress.New(3, io.Discard)

	bar.Increment()
	bar.Increment()
	assert.Equal(t, int64(2), bar.Current())

	bar.Increment()
	bar.Finish()
	assert.Equal(t, int64(3), bar.Current())
}

func TestBarWritesToInjectedWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	bar := progress.New(2, &buf)
	bar.Increment()
	bar.Increment()
	bar.Finish()

	require.NotEmpty(t, buf.String())
}

func TestBarFinishWithoutWorkDoesNotPanic(t *testing.T) {
	t.Parallel()

	bar := progress.New(5, io.Discard)
	bar.Finish()
	assert.Equal(t, int64(0), bar.Current())
}
