package markup

import (
	"testing"

	"github.com/charmbracelet/x/exp/golden"
	"github.com/purpose168/powermessage/internal/chat"
	"github.com/stretchr/testify/require"
)

func TestParseExample(t *testing.T) {
	t.Parallel()

	m, err := Parse("Hello world[txt:&6Hover text!]. &3Click to perform a command[cmd:say Hello world!]")
	require.NoError(t, err)
	out, err := m.JSON()
	require.NoError(t, err)
	golden.RequireEqual(t, []byte(out))
}

func TestParseTagAttachesToPrecedingText(t *testing.T) {
	t.Parallel()

	m, err := Parse("Hello[txt:Tip text]")
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())
	out, err := m.JSON()
	require.NoError(t, err)
	require.Equal(t, `{"text":"Hello","hoverEvent":{"action":"show_text","value":"Tip text"}}`, out)
}

func TestParseKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		markup   string
		category chat.Category
		action   string
		value    string
	}{
		{"a[txt:tip]", chat.Hover, chat.ActionShowText, "tip"},
		{"a[file:logs/latest.log]", chat.Click, chat.ActionOpenFile, "logs/latest.log"},
		{"a[url:https://example.com]", chat.Click, chat.ActionOpenURL, "https://example.com"},
		{"a[cmd:/spawn]", chat.Click, chat.ActionRunCommand, "/spawn"},
		{"a[scmd:/msg ]", chat.Click, chat.ActionSuggestCommand, "/msg "},
		{"a[TXT:upper]", chat.Hover, chat.ActionShowText, "upper"},
		{"a[Url:https://mixed]", chat.Click, chat.ActionOpenURL, "https://mixed"},
		{"a[txt:&cred]", chat.Hover, chat.ActionShowText, "§cred"},
	}
	for _, tt := range tests {
		t.Run(tt.markup, func(t *testing.T) {
			m, err := Parse(tt.markup)
			require.NoError(t, err)
			require.Equal(t, 1, m.Len())
			e, ok := m.Snippets()[0].Event(tt.category, tt.action)
			require.True(t, ok)
			require.Equal(t, tt.value, e.Value)
		})
	}
}

func TestParseWithoutTags(t *testing.T) {
	t.Parallel()

	m, err := Parse("&aplain [not a tag] text")
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())
	require.Equal(t, "plain [not a tag] text", m.Text())
	require.Empty(t, m.Snippets()[0].Events())
}

func TestParseTrailingTextAndMultipleTags(t *testing.T) {
	t.Parallel()

	m, err := Parse("a[url:https://x][txt:both]b")
	require.NoError(t, err)
	snippets := m.Snippets()
	require.Len(t, snippets, 2)
	require.Len(t, snippets[0].Events(), 2)
	require.Empty(t, snippets[1].Events())
	require.Equal(t, "b", snippets[1].Text())
}

func TestParseTagAfterColourOnlyText(t *testing.T) {
	t.Parallel()

	m, err := Parse("A[txt:x]&c[txt:y]B")
	require.NoError(t, err)
	out, err := m.JSON()
	require.NoError(t, err)
	require.Equal(t, `{"text":"","extra":[{"text":"A","hoverEvent":{"action":"show_text","value":"x"}},{"text":"B"}]}`, out)

	m, err = Parse("&c[txt:lost]text")
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())
	s, err := m.Snippet(0)
	require.NoError(t, err)
	require.Empty(t, s.Events())
}

func TestParseLeadingTagFails(t *testing.T) {
	t.Parallel()

	_, err := Parse("[txt:orphan]text")
	require.ErrorIs(t, err, chat.ErrNullState)
}

func TestParseEmptyPayloadIsText(t *testing.T) {
	t.Parallel()

	m, err := Parse("a[txt:]")
	require.NoError(t, err)
	require.Equal(t, "a[txt:]", m.Text())
}

func TestParserAlternateChar(t *testing.T) {
	t.Parallel()

	m, err := NewParser('$').Parse("$ctext[txt:$etip]")
	require.NoError(t, err)
	s := m.Snippets()[0]
	require.Equal(t, []chat.ColorToken{chat.Red}, s.Styles())
	e, ok := s.Event(chat.Hover, chat.ActionShowText)
	require.True(t, ok)
	require.Equal(t, "§etip", e.Value)
}

func TestBuilderAccumulates(t *testing.T) {
	t.Parallel()

	m, err := NewBuilder().WithText("Visit ").WithText("&9site[url:https://example.com]").Build()
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())
	require.Equal(t, "Visit site", m.Text())
	for _, s := range m.Snippets() {
		_, ok := s.Event(chat.Click, chat.ActionOpenURL)
		require.True(t, ok)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"Hello[txt:Tip text]",
		"&cwarn[cmd:/stop][txt:really?] &rthen[url:https://example.com]",
		"&lbold&9blue[scmd:/msg ]",
	} {
		m, err := Parse(in)
		require.NoError(t, err)
		rendered := Render(m, '&')

		again, err := Parse(rendered)
		require.NoError(t, err)
		want, err := m.JSON()
		require.NoError(t, err)
		got, err := again.JSON()
		require.NoError(t, err)
		require.Equal(t, want, got, rendered)
	}
}

func TestRenderDropsUnrepresentableEvents(t *testing.T) {
	t.Parallel()

	m := chat.New()
	m.Then("ach").AchievementTooltip("openInventory").Tooltip("a]b").Link("https://ok")
	require.Equal(t, "ach[url:https://ok]", Render(m, '&'))
}
