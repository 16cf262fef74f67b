package game

import (
	"github.com/arebrov/GoatGroupBot/cards"
)

// trumpCard marks the deal owner in the full deal: whoever is dealt the
// ace of diamonds chooses trump and leads.
var trumpCard = cards.Card{Kind: cards.Ace, Suit: cards.Diamonds}

// fullDeal hands out all 32 cards at once, 8 per seat. The trick winner
// leads the next trick.
type fullDeal struct{}

func (fullDeal) kind() DealKind {
	return DealClassic
}

func (fullDeal) deal(d *Deal) {
	for i := 0; i < 8; i++ {
		for seat := 0; seat < 4; seat++ {
			d.hands[seat] = append(d.hands[seat], d.deck.DrawFront())
		}
	}
	// The nominal constructor owner is overridden by the ace of diamonds.
	for seat := range d.hands {
		if d.handHolds(seat, trumpCard) {
			d.owner = seat
			d.current = seat
			break
		}
	}
	d.notifier.SendHand(d.owner)
	d.notifier.RequestTrump(d.owner)
}

func (fullDeal) afterSetTrump(d *Deal) {
	for seat := 0; seat < 4; seat++ {
		if seat == d.owner {
			continue
		}
		d.notifier.SendHand(seat)
	}
	d.current = d.owner
	d.notifier.RequestStep(d.owner)
}

func (fullDeal) nextLeader(d *Deal, winnerSeat int) int {
	return winnerSeat
}

func (fullDeal) canDealMore(d *Deal) bool {
	return false
}

func (fullDeal) dealMore(d *Deal) {}
