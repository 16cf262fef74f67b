package game

// numDeal is the staged variant: the owner draws cardCount cards, then the
// other three seats draw cardCount each in seat order. Trump is requested
// once, right after the first batch. The owner always leads the next trick
// regardless of who took the previous one.
type numDeal struct {
	cardCount int
}

func (p numDeal) kind() DealKind {
	return DealClassic
}

func (p numDeal) deal(d *Deal) {
	p.dealBatch(d)
	d.notifier.SendHand(d.owner)
	d.notifier.RequestTrump(d.owner)
}

func (p numDeal) afterSetTrump(d *Deal) {
	for seat := 0; seat < 4; seat++ {
		if seat == d.owner {
			continue
		}
		d.notifier.SendHand(seat)
	}
	d.current = d.owner
	d.notifier.RequestStep(d.owner)
}

func (p numDeal) nextLeader(d *Deal, winnerSeat int) int {
	return d.owner
}

func (p numDeal) canDealMore(d *Deal) bool {
	return d.deck.RestCount() > 0
}

// dealMore repeats a batch for a mid-round re-deal. Everyone gets their
// refreshed hand; trump stays as chosen.
func (p numDeal) dealMore(d *Deal) {
	p.dealBatch(d)
	for seat := 0; seat < 4; seat++ {
		d.notifier.SendHand(seat)
	}
}

func (p numDeal) dealBatch(d *Deal) {
	for i := 0; i < p.cardCount; i++ {
		d.hands[d.owner] = append(d.hands[d.owner], d.deck.DrawFront())
	}
	for offset := 1; offset < 4; offset++ {
		seat := (d.owner + offset) % 4
		for i := 0; i < p.cardCount; i++ {
			d.hands[seat] = append(d.hands[seat], d.deck.DrawFront())
		}
	}
}
