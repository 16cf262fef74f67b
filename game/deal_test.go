package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arebrov/GoatGroupBot/cards"
)

func TestFullDealOwnerFollowsAceOfDiamonds(t *testing.T) {
	hands := [4][]cards.Card{
		mustHand(t, "К♦", "10♦", "9♦", "8♦", "6♦", "Т♥", "К♥", "10♥"),
		mustHand(t, "Д♦", "Д♥", "Д♠", "Д♣", "В♦", "В♥", "В♠", "В♣"),
		mustHand(t, "Т♦", "9♥", "8♥", "6♥", "Т♠", "К♠", "10♠", "9♠"),
		mustHand(t, "8♠", "6♠", "Т♣", "К♣", "10♣", "9♣", "8♣", "6♣"),
	}
	notifier := newSeatNotifierLog()
	d := newDeal(fullDeal{}, 0, notifier, deckFromHands(t, hands))
	require.NoError(t, d.ProcessDeal())

	assert.Equal(t, 2, d.Owner())
	assert.Equal(t, []int{2}, notifier.trumpRequests)
	assert.Equal(t, []int{2}, notifier.handsSent)
	assert.True(t, d.IsWaitingForTrump())
	assert.Equal(t, hands[2], d.GetPlayerCards(2))
}

func TestDealRejectsDoubleProcessing(t *testing.T) {
	d := newDeal(fullDeal{}, 0, newSeatNotifierLog(), nil)
	require.NoError(t, d.ProcessDeal())
	err := d.ProcessDeal()
	assert.ErrorAs(t, err, &ProtocolViolationError{})
}

func TestSetTrumpGuards(t *testing.T) {
	d := newDeal(fullDeal{}, 0, newSeatNotifierLog(), nil)
	err := d.SetTrump(cards.Hearts)
	assert.ErrorAs(t, err, &ProtocolViolationError{})

	require.NoError(t, d.ProcessDeal())
	require.NoError(t, d.SetTrump(cards.Hearts))
	err = d.SetTrump(cards.Spades)
	assert.ErrorAs(t, err, &ProtocolViolationError{})
	assert.False(t, d.IsWaitingForTrump())
}

func TestNoTrumpIsALegalChoice(t *testing.T) {
	d := newDeal(fullDeal{}, 0, newSeatNotifierLog(), nil)
	require.NoError(t, d.ProcessDeal())
	require.NoError(t, d.SetTrump(cards.NoSuit))
	assert.False(t, d.IsWaitingForTrump())
	assert.Equal(t, cards.NoSuit, d.Trump())
}

func TestJackpotEndsTheDeal(t *testing.T) {
	// Seat 2 plays the queen of clubs into a trick seat 3 finishes with the
	// six of clubs.
	hands := [4][]cards.Card{
		mustHand(t, "Т♦", "К♦", "10♦", "9♦", "8♦", "6♦", "Т♥", "К♥"),
		mustHand(t, "В♦", "9♠", "Д♠", "Д♥", "Д♦", "В♣", "В♠", "В♥"),
		mustHand(t, "10♥", "Д♣", "9♥", "8♥", "6♥", "Т♠", "К♠", "10♠"),
		mustHand(t, "10♣", "6♣", "Т♣", "К♣", "9♣", "8♣", "8♠", "6♠"),
	}
	notifier := newSeatNotifierLog()
	d := newDeal(fullDeal{}, 0, notifier, deckFromHands(t, hands))
	require.NoError(t, d.ProcessDeal())
	require.Equal(t, 0, d.Owner())
	require.NoError(t, d.SetTrump(cards.Spades))

	require.Equal(t, StepSuccess, d.DoPlayerStep(0, mustCard(t, "Т♦")))
	require.Equal(t, StepSuccess, d.DoPlayerStep(1, mustCard(t, "В♦")))
	require.Equal(t, StepSuccess, d.DoPlayerStep(2, mustCard(t, "10♥")))
	require.Equal(t, StepSuccess, d.DoPlayerStep(3, mustCard(t, "10♣")))

	// The jack of diamonds took the trick for seat 1.
	require.Equal(t, []int{1}, notifier.trickSeats)
	require.Equal(t, 1, d.CurrentSeat())

	require.Equal(t, StepSuccess, d.DoPlayerStep(1, mustCard(t, "9♠")))
	require.Equal(t, StepSuccess, d.DoPlayerStep(2, mustCard(t, "Д♣")))
	require.Equal(t, StepJackpot, d.DoPlayerStep(3, mustCard(t, "6♣")))

	assert.True(t, d.Finished())
	assert.False(t, d.IsCompleted())
	assert.Equal(t, 1, d.JackpotWinnerTeam())
	assert.True(t, notifier.bonusShown)
	assert.Equal(t, 3, notifier.bonusWinnerSeat)
	assert.Equal(t, 2, notifier.bonusLoserSeat)

	// The interrupted trick is archived without being captured.
	assert.Equal(t, 33, d.GetTeamScore(1))
	assert.Equal(t, 0, d.GetTeamScore(0))
	assert.Equal(t, StepError, d.DoPlayerStep(1, mustCard(t, "Д♠")))
}

func TestFullDealPlayoutPartitionsAllPoints(t *testing.T) {
	// The queen and the six of clubs sit in the same hand, so the bonus can
	// never fire and the deal runs all eight tricks.
	hands := [4][]cards.Card{
		mustHand(t, "Т♦", "Д♣", "6♣", "К♦", "10♦", "9♦", "8♦", "6♦"),
		mustHand(t, "Д♦", "Д♥", "Д♠", "В♦", "В♥", "В♠", "В♣", "Т♥"),
		mustHand(t, "К♥", "10♥", "9♥", "8♥", "6♥", "Т♠", "К♠", "10♠"),
		mustHand(t, "9♠", "8♠", "6♠", "Т♣", "К♣", "10♣", "9♣", "8♣"),
	}
	notifier := newSeatNotifierLog()
	d := newDeal(fullDeal{}, 0, notifier, deckFromHands(t, hands))
	require.NoError(t, d.ProcessDeal())
	require.NoError(t, d.SetTrump(cards.Hearts))

	for steps := 0; !d.Finished(); steps++ {
		require.Less(t, steps, cards.DeckSize, "deal did not terminate")
		seat := d.CurrentSeat()
		hand := d.GetPlayerCards(seat)
		require.NotEmpty(t, hand)
		result := d.DoPlayerStep(seat, hand[0])
		require.NotEqual(t, StepError, result)
		require.NotEqual(t, StepJackpot, result)
	}

	assert.True(t, d.IsCompleted())
	assert.Len(t, notifier.trickSeats, 8)
	assert.Equal(t, 120, d.GetTeamScore(0)+d.GetTeamScore(1))
	assert.Zero(t, len(d.captured[0])%4)
	assert.Equal(t, cards.DeckSize, len(d.captured[0])+len(d.captured[1]))
	for seat := 0; seat < 4; seat++ {
		assert.Empty(t, d.GetPlayerCards(seat))
	}
}

func TestStepRejectsWrongSeatAndPhase(t *testing.T) {
	hands := [4][]cards.Card{
		mustHand(t, "Т♦", "Д♣", "6♣", "К♦", "10♦", "9♦", "8♦", "6♦"),
		mustHand(t, "Д♦", "Д♥", "Д♠", "В♦", "В♥", "В♠", "В♣", "Т♥"),
		mustHand(t, "К♥", "10♥", "9♥", "8♥", "6♥", "Т♠", "К♠", "10♠"),
		mustHand(t, "9♠", "8♠", "6♠", "Т♣", "К♣", "10♣", "9♣", "8♣"),
	}
	d := newDeal(fullDeal{}, 0, newSeatNotifierLog(), deckFromHands(t, hands))
	require.NoError(t, d.ProcessDeal())

	// No step before trump.
	assert.Equal(t, StepError, d.DoPlayerStep(0, mustCard(t, "Т♦")))

	require.NoError(t, d.SetTrump(cards.Clubs))
	assert.Equal(t, StepError, d.DoPlayerStep(1, mustCard(t, "Д♦")))
	assert.False(t, d.IsWaitingForCard(1))
	assert.True(t, d.IsWaitingForCard(0))
}

func TestTableDataTracksProvisionalTop(t *testing.T) {
	hands := [4][]cards.Card{
		mustHand(t, "Т♦", "Д♣", "6♣", "К♦", "10♦", "9♦", "8♦", "6♦"),
		mustHand(t, "Д♦", "Д♥", "Д♠", "В♦", "В♥", "В♠", "В♣", "Т♥"),
		mustHand(t, "К♥", "10♥", "9♥", "8♥", "6♥", "Т♠", "К♠", "10♠"),
		mustHand(t, "9♠", "8♠", "6♠", "Т♣", "К♣", "10♣", "9♣", "8♣"),
	}
	d := newDeal(fullDeal{}, 0, newSeatNotifierLog(), deckFromHands(t, hands))
	require.NoError(t, d.ProcessDeal())
	require.NoError(t, d.SetTrump(cards.Hearts))

	require.Equal(t, StepSuccess, d.DoPlayerStep(0, mustCard(t, "Т♦")))
	trick, top, topSeat := d.GetTableData()
	assert.Len(t, trick, 1)
	assert.Equal(t, mustCard(t, "Т♦"), top)
	assert.Equal(t, 0, topSeat)

	require.Equal(t, StepSuccess, d.DoPlayerStep(1, mustCard(t, "Д♦")))
	_, top, topSeat = d.GetTableData()
	assert.Equal(t, mustCard(t, "Д♦"), top)
	assert.Equal(t, 1, topSeat)
}
