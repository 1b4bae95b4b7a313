package fsext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
}

func TestGlob(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root,
		"motd.pm",
		"lobby/welcome.pm",
		"lobby/deep/rules.pm",
		"lobby/notes.txt",
		"node_modules/dep/x.pm",
		".hidden/secret.pm",
		"drafts/wip.pm",
		"skipme.pm",
	)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("drafts/\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, IgnoreFile), []byte("skipme.pm\n"), 0o644))

	found, err := Glob(root, "**/*.pm")
	require.NoError(t, err)

	var rel []string
	for _, f := range found {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	require.Equal(t, []string{"lobby/deep/rules.pm", "lobby/welcome.pm", "motd.pm"}, rel)
}

func TestGlobNestedIgnoreIsRelative(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, "a/keep.pm", "a/drop.pm", "drop.pm")
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", ".gitignore"), []byte("/drop.pm\n"), 0o644))

	found, err := Glob(root, "**/*.pm")
	require.NoError(t, err)
	require.Len(t, found, 2)
	require.Equal(t, filepath.Join(root, "a", "keep.pm"), found[0])
	require.Equal(t, filepath.Join(root, "drop.pm"), found[1])
}

func TestGlobInvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := Glob(t.TempDir(), "[")
	require.Error(t, err)
}
