package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arebrov/GoatGroupBot/cards"
)

func seatedMatch(t *testing.T) (*Match, *ReceiverLog) {
	t.Helper()
	received := NewReceiverLog()
	m := NewMatch("test-match", 101, received)
	require.NoError(t, m.AddPlayer(102))
	require.NoError(t, m.AddPlayer(103))
	require.NoError(t, m.AddPlayer(104))
	return m, received
}

// jackpotDeck seats the ace of diamonds with player 101 and lets the queen
// and the six of clubs meet in the second trick.
func jackpotDeck(t *testing.T) *cards.Deck {
	t.Helper()
	return deckFromHands(t, [4][]cards.Card{
		mustHand(t, "Т♦", "К♦", "10♦", "9♦", "8♦", "6♦", "Т♥", "К♥"),
		mustHand(t, "В♦", "9♠", "Д♠", "Д♥", "Д♦", "В♣", "В♠", "В♥"),
		mustHand(t, "10♥", "Д♣", "9♥", "8♥", "6♥", "Т♠", "К♠", "10♠"),
		mustHand(t, "10♣", "6♣", "Т♣", "К♣", "9♣", "8♣", "8♠", "6♠"),
	})
}

func TestMatchSeating(t *testing.T) {
	m := NewMatch("test-match", 101, NewReceiverLog())
	assert.Equal(t, 3, m.NeedPlayerCount())

	err := m.AddPlayer(101)
	assert.ErrorAs(t, err, &ProtocolViolationError{})

	require.NoError(t, m.AddPlayer(102))
	require.NoError(t, m.AddPlayer(103))
	assert.Equal(t, 1, m.NeedPlayerCount())
	require.NoError(t, m.AddPlayer(104))
	assert.Zero(t, m.NeedPlayerCount())

	err = m.AddPlayer(105)
	assert.ErrorAs(t, err, &CapacityExceededError{})
}

func TestFirstDealNeedsFullTable(t *testing.T) {
	m := NewMatch("test-match", 101, NewReceiverLog())
	require.NoError(t, m.AddPlayer(102))
	err := m.FirstDeal()
	assert.ErrorAs(t, err, &ProtocolViolationError{})
}

func TestFirstDealRunsOnce(t *testing.T) {
	m, received := seatedMatch(t)
	m.SetTestDeck(jackpotDeck(t))
	require.NoError(t, m.FirstDeal())

	assert.Equal(t, []uint64{101}, received.TrumpRequests)
	assert.Len(t, m.GetHand(101), 8)
	assert.Nil(t, m.GetHand(999))

	err := m.FirstDeal()
	assert.ErrorAs(t, err, &ProtocolViolationError{})
}

func TestTrumpComesFromTheOwnerOnly(t *testing.T) {
	m, _ := seatedMatch(t)
	m.SetTestDeck(jackpotDeck(t))
	require.NoError(t, m.FirstDeal())

	err := m.SelectTrump(102, cards.Spades)
	assert.ErrorAs(t, err, &ProtocolViolationError{})
	require.True(t, m.IsWaitingForTrump())

	require.NoError(t, m.SelectTrump(101, cards.Spades))
	assert.False(t, m.IsWaitingForTrump())

	err = m.SelectTrump(101, cards.Hearts)
	assert.ErrorAs(t, err, &ProtocolViolationError{})
}

func TestPlayCardValidation(t *testing.T) {
	m, _ := seatedMatch(t)
	m.SetTestDeck(jackpotDeck(t))
	require.NoError(t, m.FirstDeal())
	require.NoError(t, m.SelectTrump(101, cards.Spades))

	err := m.PlayCard(999, mustCard(t, "Т♦"))
	assert.ErrorAs(t, err, &ProtocolViolationError{})

	err = m.PlayCard(102, mustCard(t, "В♦"))
	assert.ErrorAs(t, err, &ProtocolViolationError{})

	err = m.PlayCard(101, mustCard(t, "Т♣"))
	assert.ErrorAs(t, err, &InvalidCardError{})

	require.NoError(t, m.PlayCard(101, mustCard(t, "Т♦")))
	assert.True(t, m.IsWaitingForCard(102))
}

func TestJackpotScoresAndAsksForNextDeal(t *testing.T) {
	m, received := seatedMatch(t)
	m.SetTestDeck(jackpotDeck(t))
	require.NoError(t, m.FirstDeal())
	require.NoError(t, m.SelectTrump(101, cards.Spades))

	for _, step := range []struct {
		player uint64
		card   string
	}{
		{101, "Т♦"}, {102, "В♦"}, {103, "10♥"}, {104, "10♣"},
		{102, "9♠"}, {103, "Д♣"}, {104, "6♣"},
	} {
		require.NoError(t, m.PlayCard(step.player, mustCard(t, step.card)))
	}

	teamA, teamB := m.Scores()
	assert.Zero(t, teamA)
	assert.Equal(t, 4, teamB)
	assert.Equal(t, [][2]int{{0, 4}}, received.TotalScores)
	require.Len(t, received.BonusResults, 1)
	assert.Equal(t, uint64(104), received.BonusResults[0].WinnerPlayerID)
	assert.Equal(t, uint64(103), received.BonusResults[0].LoserPlayerID)

	// The seat left of the owner picks the next deal.
	assert.Equal(t, []uint64{102}, received.DealChoiceRequests)
	assert.True(t, m.IsWaitingForDealChoice(102))
	assert.False(t, m.IsWaitingForDealChoice(103))
}

func TestChooseNextDeal(t *testing.T) {
	m, received := seatedMatch(t)
	m.SetTestDeck(jackpotDeck(t))
	require.NoError(t, m.FirstDeal())
	require.NoError(t, m.SelectTrump(101, cards.Spades))
	for _, step := range []struct {
		player uint64
		card   string
	}{
		{101, "Т♦"}, {102, "В♦"}, {103, "10♥"}, {104, "10♣"},
		{102, "9♠"}, {103, "Д♣"}, {104, "6♣"},
	} {
		require.NoError(t, m.PlayCard(step.player, mustCard(t, step.card)))
	}

	err := m.ChooseNextDeal(103, LabelTwoCards)
	assert.ErrorAs(t, err, &ProtocolViolationError{})

	err = m.ChooseNextDeal(102, "такой раздачи нет")
	assert.ErrorAs(t, err, &ProtocolViolationError{})

	// The label match is case-insensitive.
	require.NoError(t, m.ChooseNextDeal(102, "по 2"))
	assert.True(t, m.IsWaitingForTrump())
	assert.Equal(t, []uint64{101, 102}, received.TrumpRequests)
	assert.Len(t, m.GetHand(102), 2)
}

func TestChooseNextDealNeedsFinishedDeal(t *testing.T) {
	m, _ := seatedMatch(t)
	m.SetTestDeck(jackpotDeck(t))
	require.NoError(t, m.FirstDeal())
	require.NoError(t, m.SelectTrump(101, cards.Spades))

	err := m.ChooseNextDeal(102, LabelTwoCards)
	assert.ErrorAs(t, err, &ProtocolViolationError{})
	assert.False(t, m.IsWaitingForDealChoice(102))
}

func TestSettlement(t *testing.T) {
	tests := []struct {
		name          string
		teamACaptured []string
		teamBCaptured []string
		wantA, wantB  int
	}{
		{
			name:          "loser above thirty pays two",
			teamACaptured: []string{"Т♦", "Т♥", "10♦", "В♦"},
			teamBCaptured: []string{"Т♣", "Т♠", "10♥", "10♠", "10♣", "К♦", "К♥", "К♠", "К♣", "Д♦", "Д♥", "Д♠", "Д♣", "В♥", "В♠", "В♣"},
			wantA:         0,
			wantB:         2,
		},
		{
			name:          "loser under thirty pays four",
			teamACaptured: []string{"Т♦", "Т♥", "Т♠", "Т♣", "10♦", "10♥"},
			teamBCaptured: []string{"К♦", "Д♦", "В♦"},
			wantA:         4,
			wantB:         0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatch("test-match", 101, NewReceiverLog())
			m.deal = &Deal{}
			for _, code := range tt.teamACaptured {
				m.deal.captured[0] = append(m.deal.captured[0], playedCard{Card: mustCard(t, code)})
			}
			for _, code := range tt.teamBCaptured {
				m.deal.captured[1] = append(m.deal.captured[1], playedCard{Card: mustCard(t, code)})
			}
			m.settleDeal()
			teamA, teamB := m.Scores()
			assert.Equal(t, tt.wantA, teamA)
			assert.Equal(t, tt.wantB, teamB)
		})
	}
}

func TestManager(t *testing.T) {
	manager := NewManager()
	m := manager.NewMatch(101, NewReceiverLog())
	require.NotNil(t, m)
	assert.Equal(t, 1, manager.MatchCount())

	found, ok := manager.GetMatch(m.ID())
	require.True(t, ok)
	assert.Same(t, m, found)

	_, ok = manager.GetMatch("no-such-match")
	assert.False(t, ok)

	manager.EndMatch(m.ID())
	assert.Zero(t, manager.MatchCount())
}
