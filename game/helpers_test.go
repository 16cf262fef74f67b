package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arebrov/GoatGroupBot/cards"
)

// seatNotifierLog records the seat-level notifications a deal emits.
type seatNotifierLog struct {
	trumpRequests []int
	handsSent     []int
	stepRequests  []int

	trickTops  []cards.Card
	trickSeats []int

	pantsTopLeft      cards.Card
	pantsTopLeftSeat  int
	pantsTopRight     cards.Card
	pantsTopRightSeat int
	pantsNextSeat     int
	pantsShown        bool

	currentPants [][][]cards.Card

	bonusWinnerSeat int
	bonusLoserSeat  int
	bonusShown      bool
}

func newSeatNotifierLog() *seatNotifierLog {
	return &seatNotifierLog{bonusWinnerSeat: -1, bonusLoserSeat: -1}
}

func (n *seatNotifierLog) RequestTrump(seat int) {
	n.trumpRequests = append(n.trumpRequests, seat)
}

func (n *seatNotifierLog) SendHand(seat int) {
	n.handsSent = append(n.handsSent, seat)
}

func (n *seatNotifierLog) RequestStep(seat int) {
	n.stepRequests = append(n.stepRequests, seat)
}

func (n *seatNotifierLog) ShowTrickResult(trick []cards.Card, topCard cards.Card, topSeat int) {
	n.trickTops = append(n.trickTops, topCard)
	n.trickSeats = append(n.trickSeats, topSeat)
}

func (n *seatNotifierLog) ShowPantsResult(left []cards.Card, topLeft cards.Card, topLeftSeat int,
	right []cards.Card, topRight cards.Card, topRightSeat int, next int) {
	n.pantsTopLeft = topLeft
	n.pantsTopLeftSeat = topLeftSeat
	n.pantsTopRight = topRight
	n.pantsTopRightSeat = topRightSeat
	n.pantsNextSeat = next
	n.pantsShown = true
}

func (n *seatNotifierLog) ShowCurrentPants(piles [][]cards.Card) {
	n.currentPants = append(n.currentPants, piles)
}

func (n *seatNotifierLog) ShowBonusResult(winnerSeat int, loserSeat int) {
	n.bonusWinnerSeat = winnerSeat
	n.bonusLoserSeat = loserSeat
	n.bonusShown = true
}

func mustCard(t *testing.T, code string) cards.Card {
	t.Helper()
	card, err := cards.ParseCard(code)
	require.NoError(t, err)
	return card
}

func mustHand(t *testing.T, codes ...string) []cards.Card {
	t.Helper()
	hand := make([]cards.Card, 0, len(codes))
	for _, code := range codes {
		hand = append(hand, mustCard(t, code))
	}
	return hand
}

// allCards is the 32-card deck in its unshuffled order.
func allCards() []cards.Card {
	deck := cards.NewDeck()
	result := make([]cards.Card, 0, cards.DeckSize)
	for i := 0; i < cards.DeckSize; i++ {
		result = append(result, deck.DrawFront())
	}
	return result
}

// deckStartingWith builds a full deck whose front holds the given cards;
// the remaining cards follow in their natural order.
func deckStartingWith(t *testing.T, codes ...string) *cards.Deck {
	t.Helper()
	front := mustHand(t, codes...)
	placed := map[cards.Card]bool{}
	for _, c := range front {
		require.False(t, placed[c], "duplicate %s", c)
		placed[c] = true
	}
	order := front
	for _, c := range allCards() {
		if !placed[c] {
			order = append(order, c)
		}
	}
	require.Len(t, order, cards.DeckSize)
	return cards.NewDeckFromCards(order)
}

// deckFromHands interleaves four 8-card hands so that the full deal's
// round-robin drawing reproduces them exactly.
func deckFromHands(t *testing.T, hands [4][]cards.Card) *cards.Deck {
	t.Helper()
	order := make([]cards.Card, 0, cards.DeckSize)
	for i := 0; i < 8; i++ {
		for seat := 0; seat < 4; seat++ {
			require.Len(t, hands[seat], 8)
			order = append(order, hands[seat][i])
		}
	}
	return cards.NewDeckFromCards(order)
}

// exchangeReadyDeal builds a pants deal with fixed hands, skipping the
// double-ended dealing machinery.
func exchangeReadyDeal(t *testing.T, policy pantsPolicy, hands [4][]cards.Card, trump cards.Suit) (*Deal, *seatNotifierLog) {
	t.Helper()
	notifier := newSeatNotifierLog()
	d := newDeal(policy, 0, notifier, cards.NewDeck())
	d.hands = hands
	d.dealt = true
	require.NoError(t, d.SetTrump(trump))
	return d, notifier
}
