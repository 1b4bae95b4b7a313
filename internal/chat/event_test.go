package chat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionEventJSON(t *testing.T) {
	t.Parallel()

	e := NewActionEvent(Click).WithName(ActionOpenURL).WithData("https://example.com/?a=1&b=<2>")
	out, err := e.JSON()
	require.NoError(t, err)
	require.Equal(t, `{"clickEvent":{"action":"open_url","value":"https://example.com/?a=1&b=<2>"}}`, out)
}

func TestActionEventValidation(t *testing.T) {
	t.Parallel()

	_, err := NewActionEvent(Hover).WithName(ActionShowText).JSON()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrValidation))

	_, err = NewActionEvent(Hover).WithData("value").JSON()
	require.ErrorIs(t, err, ErrValidation)
}
