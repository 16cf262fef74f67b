package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arebrov/GoatGroupBot/game"
)

// dispatchMatch builds a NatsMatch around a plain recording receiver; the
// dispatch path never touches the NATS connection.
func dispatchMatch(t *testing.T) (*NatsMatch, *game.ReceiverLog) {
	t.Helper()
	received := game.NewReceiverLog()
	match := game.NewMatch("dispatch-test", 101, received)
	return &NatsMatch{matchID: match.ID(), match: match}, received
}

func TestDispatchJoinAndDeal(t *testing.T) {
	n, received := dispatchMatch(t)

	for _, playerID := range []uint64{102, 103, 104} {
		require.NoError(t, n.dispatch(&PlayerMessage{MessageType: MsgJoinMatch, PlayerID: playerID}))
	}
	err := n.dispatch(&PlayerMessage{MessageType: MsgJoinMatch, PlayerID: 105})
	assert.ErrorAs(t, err, &game.CapacityExceededError{})

	require.NoError(t, n.dispatch(&PlayerMessage{MessageType: MsgFirstDeal}))
	require.Len(t, received.TrumpRequests, 1)

	owner := received.TrumpRequests[0]
	err = n.dispatch(&PlayerMessage{MessageType: MsgSelectTrump, PlayerID: owner, Trump: "нет такой масти"})
	assert.Error(t, err)
	require.NoError(t, n.dispatch(&PlayerMessage{MessageType: MsgSelectTrump, PlayerID: owner, Trump: "♠"}))
	assert.False(t, n.match.IsWaitingForTrump())
}

func TestDispatchRejectsBadMessages(t *testing.T) {
	n, _ := dispatchMatch(t)

	err := n.dispatch(&PlayerMessage{MessageType: "NO_SUCH_TYPE", PlayerID: 101})
	assert.ErrorAs(t, err, &game.ProtocolViolationError{})

	err = n.dispatch(&PlayerMessage{MessageType: MsgPlayCard, PlayerID: 101, Cards: []string{"Т♦", "К♦"}})
	assert.ErrorAs(t, err, &game.InvalidCardError{})

	err = n.dispatch(&PlayerMessage{MessageType: MsgPlayCard, PlayerID: 101, Cards: []string{"не карта"}})
	assert.Error(t, err)

	// Deal labels are checked before the match sees the choice.
	err = n.dispatch(&PlayerMessage{MessageType: MsgChooseDeal, PlayerID: 101, DealLabel: "по пять"})
	require.ErrorAs(t, err, &game.ProtocolViolationError{})
	assert.Contains(t, err.Error(), "unknown deal type")
}
