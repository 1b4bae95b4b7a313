package fsext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupClosest(t *testing.T) {
	t.Parallel()

	t.Run("在起始目录中找到目标", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, ".powermsg")
		require.NoError(t, os.Mkdir(target, 0o755))

		found, ok := LookupClosest(dir, ".powermsg")
		require.True(t, ok)
		require.Equal(t, target, found)
	})

	t.Run("在父目录中找到目标", func(t *testing.T) {
		dir := t.TempDir()
		sub := filepath.Join(dir, "a", "b")
		require.NoError(t, os.MkdirAll(sub, 0o755))
		target := filepath.Join(dir, "powermsg.json")
		require.NoError(t, os.WriteFile(target, []byte("{}"), 0o644))

		found, ok := LookupClosest(sub, "powermsg.json")
		require.True(t, ok)
		require.Equal(t, target, found)
	})

	t.Run("未找到目标", func(t *testing.T) {
		found, ok := LookupClosest(t.TempDir(), "does-not-exist-7f3a")
		require.False(t, ok)
		require.Empty(t, found)
	})

	t.Run("无效的起始目录", func(t *testing.T) {
		_, ok := LookupClosest("/does/not/exist/7f3a", "x")
		require.False(t, ok)
	})
}

func TestLookup(t *testing.T) {
	t.Parallel()

	t.Run("无目标时返回空", func(t *testing.T) {
		found, err := Lookup(t.TempDir())
		require.NoError(t, err)
		require.Nil(t, found)
	})

	t.Run("多个层级按距离排序", func(t *testing.T) {
		dir := t.TempDir()
		sub := filepath.Join(dir, "sub")
		require.NoError(t, os.Mkdir(sub, 0o755))
		outer := filepath.Join(dir, "powermsg.json")
		inner := filepath.Join(sub, ".powermsg.json")
		require.NoError(t, os.WriteFile(outer, []byte("{}"), 0o644))
		require.NoError(t, os.WriteFile(inner, []byte("{}"), 0o644))

		found, err := Lookup(sub, "powermsg.json", ".powermsg.json")
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(found), 2)
		require.Equal(t, inner, found[0])
		require.Equal(t, outer, found[1])
	})

	t.Run("无效的起始目录", func(t *testing.T) {
		_, err := Lookup("/does/not/exist/7f3a", "x")
		require.Error(t, err)
	})
}

func TestOwnedBy(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	owner, err := Owner(dir)
	require.NoError(t, err)
	require.NoError(t, ownedBy(file, owner))
	require.NoError(t, ownedBy(file, -1))
	require.ErrorIs(t, ownedBy(filepath.Join(dir, "missing"), owner), os.ErrNotExist)
}

func TestAncestors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	parents, err := ancestors(sub)
	require.NoError(t, err)

	var got []string
	for p := range parents {
		got = append(got, p)
	}
	require.Equal(t, sub, got[0])
	require.Equal(t, filepath.Join(dir, "a"), got[1])
	require.Equal(t, dir, got[2])
	require.Equal(t, filepath.Dir(got[len(got)-1]), got[len(got)-1])
}
