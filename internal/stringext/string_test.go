package stringext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapitalize(t *testing.T) {
	require.Equal(t, "Dark Blue", Capitalize("dark blue"))
	require.Equal(t, "Gold", Capitalize("gold"))
}

func TestTrimInput(t *testing.T) {
	require.Equal(t, "  hello\nworld ", TrimInput("  hello\r\nworld \r\n\n"))
	require.Equal(t, "", TrimInput("\n"))
}
