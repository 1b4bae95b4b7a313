package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseJSONRoundTrip(t *testing.T) {
	t.Parallel()

	m, err := NewBuilder().
		Then("&l&cWarning: ").
		Then("&7click &nhere").Link("https://example.com").Tooltip("opens a page").
		Build()
	require.NoError(t, err)
	want, err := m.JSON()
	require.NoError(t, err)

	decoded, err := ParseJSON(want)
	require.NoError(t, err)
	got, err := decoded.JSON()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestParseJSONSingleAndString(t *testing.T) {
	t.Parallel()

	m, err := ParseJSON(`{"text":"solo","italic":true,"bold":false}`)
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())
	require.Equal(t, []ColorToken{Italic}, m.Snippets()[0].Styles())

	m, err = ParseJSON(`"just text"`)
	require.NoError(t, err)
	require.Equal(t, "just text", m.Text())

	m, err = ParseJSON(`{"text":"","extra":[]}`)
	require.NoError(t, err)
	require.Equal(t, 0, m.Len())
}

func TestParseJSONNestedInheritance(t *testing.T) {
	t.Parallel()

	m, err := ParseJSON(`{"text":"A","color":"gold","bold":true,` +
		`"clickEvent":{"action":"open_url","value":"https://parent"},` +
		`"extra":["B",{"text":"C","bold":false,"clickEvent":{"action":"run_command","value":"/child"}}]}`)
	require.NoError(t, err)

	snippets := m.Snippets()
	require.Len(t, snippets, 3)
	require.Equal(t, "ABC", m.Text())
	require.Equal(t, []ColorToken{Gold, Bold}, snippets[1].Styles())
	require.Equal(t, []ColorToken{Gold}, snippets[2].Styles())

	_, ok := snippets[1].Event(Click, ActionOpenURL)
	require.True(t, ok)
	_, ok = snippets[2].Event(Click, ActionOpenURL)
	require.False(t, ok)
	e, ok := snippets[2].Event(Click, ActionRunCommand)
	require.True(t, ok)
	require.Equal(t, "/child", e.Value)
}

func TestParseJSONKeepsRepeatedColours(t *testing.T) {
	t.Parallel()

	m, err := ParseJSON(`{"text":"x","color":"red","color":"blue"}`)
	require.NoError(t, err)
	require.Equal(t, []ColorToken{Red, Blue}, m.Snippets()[0].Styles())
}

func TestParseJSONErrors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{`{"text":`, `42`, `{"text":"x","color":"mauve"}`} {
		_, err := ParseJSON(in)
		require.ErrorIs(t, err, ErrMalformed, in)
	}
}
