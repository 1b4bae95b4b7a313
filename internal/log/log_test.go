package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePanicReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := writePanicReport(dir, "render", "boom", []byte("goroutine 1"))
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(path))
	require.True(t, strings.HasPrefix(filepath.Base(path), "powermsg-panic-render-"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "Panic in render: boom")
	require.Contains(t, string(data), "goroutine 1")
}

func TestRecoverPanicRunsCleanup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cleaned := false
	func() {
		defer RecoverPanic("test", dir, func() { cleaned = true })
		panic("boom")
	}()
	require.True(t, cleaned)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
