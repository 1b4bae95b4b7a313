package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/fakeconfig")
	t.Setenv("XDG_DATA_HOME", "/tmp/fakedata")
	t.Setenv("POWERMSG_GLOBAL_CONFIG", "")
	t.Setenv("POWERMSG_GLOBAL_DATA", "")

	configDir := filepath.FromSlash("/tmp/fakeconfig/powermsg")
	dataDir := filepath.FromSlash("/tmp/fakedata/powermsg")

	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"dirs"}, want: configDir + "\n" + dataDir + "\n"},
		{args: []string{"dirs", "config"}, want: configDir + "\n"},
		{args: []string{"dirs", "data"}, want: dataDir + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.args[len(tt.args)-1], func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestDirsGlobalOverride(t *testing.T) {
	cfg := t.TempDir()
	t.Setenv("POWERMSG_GLOBAL_CONFIG", cfg)

	out, _, err := execute(t, "", "dirs", "config")
	require.NoError(t, err)
	require.Equal(t, cfg+"\n", out)
}
