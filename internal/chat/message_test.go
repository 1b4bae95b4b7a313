package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessagePlainTextJSON(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"hello", "with \"quotes\"", "a<b> & c", "§ alone"} {
		m := New()
		m.Then(text)
		out, err := m.JSON()
		require.NoError(t, err)

		want, err := NewSnippet(text).JSON()
		require.NoError(t, err)
		require.Equal(t, want, out)
		require.Equal(t, 1, m.Len())
	}
}

func TestMessageTwoAppends(t *testing.T) {
	t.Parallel()

	m := New()
	m.Then("one")
	m.Then("two")
	out, err := m.JSON()
	require.NoError(t, err)
	require.Equal(t, `{"text":"","extra":[{"text":"one"},{"text":"two"}]}`, out)
}

func TestMessageEmpty(t *testing.T) {
	t.Parallel()

	m := New()
	g := m.Then("")
	require.NoError(t, g.Err())
	require.Equal(t, 0, g.Len())
	require.Equal(t, 0, m.Len())

	out, err := m.JSON()
	require.NoError(t, err)
	require.Equal(t, `{"text":"","extra":[]}`, out)
}

func TestMessageColourSplitting(t *testing.T) {
	t.Parallel()

	m := New()
	g := m.Then("&cRed&9Blue")
	require.Equal(t, 0, g.Start())
	require.Equal(t, 2, g.End())

	snippets := m.Snippets()
	require.Len(t, snippets, 2)
	require.Equal(t, "Red", snippets[0].Text())
	require.Equal(t, []ColorToken{Red}, snippets[0].Styles())
	require.Equal(t, "Blue", snippets[1].Text())
	// Styles accumulate across markers within one call; the last colour wins on the client.
	require.Equal(t, []ColorToken{Red, Blue}, snippets[1].Styles())

	out, err := m.JSON()
	require.NoError(t, err)
	require.Equal(t, `{"text":"","extra":[{"text":"Red","color":"red"},{"text":"Blue","color":"red","color":"blue"}]}`, out)
}

func TestMessageResetClearsStyles(t *testing.T) {
	t.Parallel()

	m := New()
	m.Then("&l&cA&rB")
	snippets := m.Snippets()
	require.Len(t, snippets, 2)
	require.Equal(t, []ColorToken{Bold, Red}, snippets[0].Styles())
	require.Empty(t, snippets[1].Styles())
}

func TestMessageKeepsTrailingCharacter(t *testing.T) {
	t.Parallel()

	m := New()
	m.Then("&cab&9c")
	require.Equal(t, 2, m.Len())
	s, err := m.Snippet(1)
	require.NoError(t, err)
	require.Equal(t, "c", s.Text())
}

func TestMessageAlternateChar(t *testing.T) {
	t.Parallel()

	m := New(WithAlternateChar('$'))
	m.Then("$aGreen&cStill")
	require.Equal(t, 1, m.Len())
	s, err := m.Snippet(0)
	require.NoError(t, err)
	require.Equal(t, "Green&cStill", s.Text())
	require.Equal(t, []ColorToken{Green}, s.Styles())
}

func TestMessageNewTextIsVerbatim(t *testing.T) {
	t.Parallel()

	m := NewText("&cnot parsed")
	require.Equal(t, 1, m.Len())
	out, err := m.JSON()
	require.NoError(t, err)
	require.Equal(t, `{"text":"&cnot parsed"}`, out)
}

func TestMessagePlainRoundTrip(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"&cRed&9Blue",
		"&lBold&rPlain",
		"&c&lX",
		"a&cb&lc&rd",
		"no colours",
	} {
		m := New()
		m.Then(in)
		m.Last(1).Tooltip("ignored")
		plain := m.Plain()
		require.Equal(t, TranslateAlternate('&', in), plain)

		again := New()
		again.Then(plain)
		require.Equal(t, plain, again.Plain())
	}
}

func TestMessagePlainAcrossAppends(t *testing.T) {
	t.Parallel()

	m := New()
	m.Then("&cRed")
	m.Then("&9Blue")
	m.Then("none")
	require.Equal(t, "§cRed§r§9Blue§rnone", m.Plain())
	require.Equal(t, "RedBluenone", m.Text())
	require.Equal(t, m.Plain(), m.String())
}

func TestMessageCacheInvalidation(t *testing.T) {
	t.Parallel()

	m := New()
	g := m.Then("a")
	first, err := m.JSON()
	require.NoError(t, err)
	require.Equal(t, `{"text":"a"}`, first)

	g.Colour(Gold)
	second, err := m.JSON()
	require.NoError(t, err)
	require.Equal(t, `{"text":"a","color":"gold"}`, second)

	m.Then("b")
	third, err := m.JSON()
	require.NoError(t, err)
	require.Equal(t, `{"text":"","extra":[{"text":"a","color":"gold"},{"text":"b"}]}`, third)
}

func TestMessageFailedJSONIsNotCached(t *testing.T) {
	t.Parallel()

	m := New()
	m.Then("a")
	_, err := m.JSON()
	require.NoError(t, err)

	m.Last(1).Link("")
	_, err = m.JSON()
	require.ErrorIs(t, err, ErrValidation)
	require.False(t, m.cacheValid)
	require.Empty(t, m.cache)
}

func TestMessageSnippetsAreCopies(t *testing.T) {
	t.Parallel()

	m := New()
	m.Then("&ca")
	snippets := m.Snippets()
	snippets[0].SetText("changed")
	snippets[0].AddStyles(Bold)

	s, err := m.Snippet(0)
	require.NoError(t, err)
	require.Equal(t, "a", s.Text())
	require.Equal(t, []ColorToken{Red}, s.Styles())

	_, err = m.Snippet(5)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMessageAddSnippetAndClone(t *testing.T) {
	t.Parallel()

	s := NewSnippet("x", Aqua)
	m := New()
	g := m.AddSnippet(s)
	require.Equal(t, 1, g.Len())
	s.SetText("outside")

	c := m.Clone()
	c.All().SetText("cloned")
	require.Equal(t, "x", m.Text())
	require.Equal(t, "cloned", c.Text())
}

func TestMessageClear(t *testing.T) {
	t.Parallel()

	m := New()
	g := m.Then("&ca&9b")
	m.Clear()
	require.Equal(t, 0, m.Len())

	g.Tooltip("stale")
	require.ErrorIs(t, g.Err(), ErrInvalidArgument)
}
