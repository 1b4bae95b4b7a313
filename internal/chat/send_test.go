package chat

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingRecipient struct{ rich bool }

func (f failingRecipient) SupportsRich() bool       { return f.rich }
func (f failingRecipient) DeliverText(string) error { return errors.New("text down") }
func (f failingRecipient) DeliverRich(string) error { return errors.New("rich down") }

func TestSendRoutesByCapability(t *testing.T) {
	t.Parallel()

	m := New()
	m.Then("&cRed").Tooltip("tip")

	var rich, legacy bytes.Buffer
	err := m.Send(WriterRecipient{W: &rich, Rich: true}, WriterRecipient{W: &legacy})
	require.NoError(t, err)
	require.Equal(t, `{"text":"Red","color":"red","hoverEvent":{"action":"show_text","value":"tip"}}`+"\n", rich.String())
	require.Equal(t, "§cRed\n", legacy.String())
}

func TestSendJoinsDeliveryErrors(t *testing.T) {
	t.Parallel()

	m := New()
	m.Then("x")

	var out bytes.Buffer
	err := m.Send(failingRecipient{rich: true}, WriterRecipient{W: &out, Rich: true}, failingRecipient{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "rich down")
	require.Contains(t, err.Error(), "text down")
	require.Equal(t, `{"text":"x"}`+"\n", out.String())
}

func TestSendInvalidMessageStillDeliversText(t *testing.T) {
	t.Parallel()

	m := New()
	m.Then("&cx").Link("")

	var rich, first, last bytes.Buffer
	err := m.Send(
		failingRecipient{},
		WriterRecipient{W: &rich, Rich: true},
		WriterRecipient{W: &first},
		WriterRecipient{W: &last},
	)
	require.ErrorIs(t, err, ErrValidation)
	require.Contains(t, err.Error(), "text down")
	require.Empty(t, rich.String())
	require.Equal(t, "§cx\n", first.String())
	require.Equal(t, "§cx\n", last.String())
}
