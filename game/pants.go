package game

import (
	"github.com/arebrov/GoatGroupBot/cards"
)

// pantsBase carries the dealing machinery shared by the two pants
// variants: double-ended starting draws, swap-backs to the teammate when a
// hand fills up, and the remainder going to whichever seat holds the
// fewest cards.
type pantsBase struct {
	startFront int
	startBack  int
	swapAt     int
	acceptMax  int
	done       bool
}

func (p *pantsBase) kind() DealKind {
	return DealPants
}

func (p *pantsBase) canDealMore(d *Deal) bool {
	return false
}

func (p *pantsBase) dealMore(d *Deal) {}

func (p *pantsBase) exchangeDone() bool {
	return p.done
}

func (p *pantsBase) dealCards(d *Deal) {
	for offset := 0; offset < 4; offset++ {
		seat := (d.owner + offset) % 4
		for i := 0; i < p.startFront; i++ {
			d.hands[seat] = append(d.hands[seat], d.deck.DrawFront())
		}
		for i := 0; i < p.startBack; i++ {
			d.hands[seat] = append(d.hands[seat], d.deck.DrawBack())
		}
	}
	for d.deck.RestCount() >= 2 {
		progressed := false
		for offset := 0; offset < 4 && d.deck.RestCount() >= 2; offset++ {
			if p.stepCards(d, (d.owner+offset)%4) {
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
	for d.deck.RestCount() > 0 {
		seat := minHandSeat(d)
		d.hands[seat] = append(d.hands[seat], d.deck.DrawFront())
	}
	d.notifier.SendHand(d.owner)
	d.notifier.RequestTrump(d.owner)
}

// stepCards gives a seat its next double-ended pair. A full hand first
// hands its two oldest cards back to the teammate, and only when the
// teammate has room for them.
func (p *pantsBase) stepCards(d *Deal, seat int) bool {
	if len(d.hands[seat]) >= p.swapAt {
		mate := (seat + 2) % 4
		if len(d.hands[mate]) > p.acceptMax {
			return false
		}
		d.hands[mate] = append(d.hands[mate], d.hands[seat][0], d.hands[seat][1])
		d.hands[seat] = d.hands[seat][2:]
	}
	d.hands[seat] = append(d.hands[seat], d.deck.DrawFront(), d.deck.DrawBack())
	return true
}

func (p *pantsBase) openExchange(d *Deal) {
	for seat := 0; seat < 4; seat++ {
		if seat == d.owner {
			continue
		}
		d.notifier.SendHand(seat)
	}
	d.current = d.owner
	d.notifier.RequestStep(d.owner)
}

func minHandSeat(d *Deal) int {
	best := d.owner
	for offset := 1; offset < 4; offset++ {
		seat := (d.owner + offset) % 4
		if len(d.hands[seat]) < len(d.hands[best]) {
			best = seat
		}
	}
	return best
}

// eligibleExchangeCards are the cards a seat may put into the pants: any
// card that is not trump under the chosen suit.
func eligibleExchangeCards(d *Deal, seat int) []cards.Card {
	var result []cards.Card
	for _, c := range d.hands[seat] {
		if !c.IsTrump(d.trump) {
			result = append(result, c)
		}
	}
	return result
}

// topByKind resolves an exchange pile: the highest card with no trump
// involved (the pile cannot contain trumps).
func topByKind(pile []playedCard) (cards.Card, int) {
	top := pile[0]
	for _, pc := range pile[1:] {
		if pc.Card.GreaterThan(top.Card, cards.NoSuit) {
			top = pc
		}
	}
	return top.Card, top.Seat
}

func checkExchangeCard(d *Deal, seat int, card cards.Card) error {
	if card.IsTrump(d.trump) {
		return InvalidCardError{Card: card.String(), Msg: "trump cards cannot go to the pants"}
	}
	if !d.handHolds(seat, card) {
		return InvalidCardError{Card: card.String(), Msg: "card is not in hand"}
	}
	return nil
}

// singlePants: every seat contributes one non-trump card to a single pile.
type singlePants struct {
	pantsBase
	pile []playedCard
}

func newSinglePants() *singlePants {
	return &singlePants{pantsBase: pantsBase{startFront: 1, startBack: 1, swapAt: 8, acceptMax: 4}}
}

func (p *singlePants) deal(d *Deal) {
	p.dealCards(d)
}

func (p *singlePants) afterSetTrump(d *Deal) {
	p.openExchange(d)
}

func (p *singlePants) nextLeader(d *Deal, winnerSeat int) int {
	return winnerSeat
}

func (p *singlePants) playExchange(d *Deal, seat int, played []cards.Card) error {
	if len(played) != 1 {
		return InvalidCardError{Card: cards.CardsToString(played), Msg: "exchange takes exactly one card"}
	}
	card := played[0]
	if err := checkExchangeCard(d, seat, card); err != nil {
		return err
	}
	d.removeFromHand(seat, card)
	p.pile = append(p.pile, playedCard{Card: card, Seat: seat})
	if len(p.pile) < 4 {
		d.current = nextSeat(d.current)
		d.notifier.ShowCurrentPants(p.visiblePiles())
		d.notifier.RequestStep(d.current)
		return nil
	}
	topCard, topSeat := topByKind(p.pile)
	team := teamOf(topSeat)
	d.captured[team] = append(d.captured[team], p.pile...)
	d.history = append(d.history, p.pile)
	// The winner leads into trick play unless its team already owns the
	// deal; then the owner does.
	if team != teamOf(d.owner) {
		d.current = topSeat
	} else {
		d.current = d.owner
	}
	p.done = true
	d.notifier.ShowPantsResult(cardsOf(p.pile), topCard, topSeat, nil, cards.Card{}, -1, d.current)
	d.notifier.RequestStep(d.current)
	return nil
}

func (p *singlePants) exchangeOptions(d *Deal, seat int) [][]cards.Card {
	eligible := eligibleExchangeCards(d, seat)
	options := make([][]cards.Card, 0, len(eligible))
	for _, c := range eligible {
		options = append(options, []cards.Card{c})
	}
	return options
}

// visiblePiles hides the opening contribution; only the follow-ups are
// shown while the exchange is in progress.
func (p *singlePants) visiblePiles() [][]cards.Card {
	if len(p.pile) < 2 {
		return nil
	}
	piles := make([][]cards.Card, 0, len(p.pile)-1)
	for _, pc := range p.pile[1:] {
		piles = append(piles, []cards.Card{pc.Card})
	}
	return piles
}

// doublePants: every seat contributes an ordered pair of non-trump cards;
// the left and right piles resolve independently.
type doublePants struct {
	pantsBase
	left  []playedCard
	right []playedCard
}

func newDoublePants() *doublePants {
	return &doublePants{pantsBase: pantsBase{startFront: 2, startBack: 2, swapAt: 4, acceptMax: 2}}
}

func (p *doublePants) deal(d *Deal) {
	p.dealCards(d)
}

func (p *doublePants) afterSetTrump(d *Deal) {
	p.openExchange(d)
}

func (p *doublePants) nextLeader(d *Deal, winnerSeat int) int {
	return winnerSeat
}

func (p *doublePants) playExchange(d *Deal, seat int, played []cards.Card) error {
	if len(played) != 2 {
		return InvalidCardError{Card: cards.CardsToString(played), Msg: "exchange takes exactly two cards"}
	}
	leftCard, rightCard := played[0], played[1]
	if leftCard == rightCard {
		return InvalidCardError{Card: leftCard.String(), Msg: "the pair must be two different cards"}
	}
	if err := checkExchangeCard(d, seat, leftCard); err != nil {
		return err
	}
	if err := checkExchangeCard(d, seat, rightCard); err != nil {
		return err
	}
	d.removeFromHand(seat, leftCard)
	d.removeFromHand(seat, rightCard)
	p.left = append(p.left, playedCard{Card: leftCard, Seat: seat})
	p.right = append(p.right, playedCard{Card: rightCard, Seat: seat})
	if len(p.left) < 4 {
		d.current = nextSeat(d.current)
		d.notifier.ShowCurrentPants(p.visiblePiles())
		d.notifier.RequestStep(d.current)
		return nil
	}
	topLeft, topLeftSeat := topByKind(p.left)
	topRight, topRightSeat := topByKind(p.right)
	leftTeam := teamOf(topLeftSeat)
	rightTeam := teamOf(topRightSeat)
	d.captured[leftTeam] = append(d.captured[leftTeam], p.left...)
	d.captured[rightTeam] = append(d.captured[rightTeam], p.right...)
	d.history = append(d.history, p.left, p.right)
	ownerTeam := teamOf(d.owner)
	switch {
	case leftTeam != ownerTeam && rightTeam != ownerTeam:
		d.current = nextSeat(d.owner)
	case leftTeam != ownerTeam:
		d.current = topLeftSeat
	case rightTeam != ownerTeam:
		d.current = topRightSeat
	default:
		d.current = d.owner
	}
	p.done = true
	d.notifier.ShowPantsResult(cardsOf(p.left), topLeft, topLeftSeat,
		cardsOf(p.right), topRight, topRightSeat, d.current)
	d.notifier.RequestStep(d.current)
	return nil
}

func (p *doublePants) exchangeOptions(d *Deal, seat int) [][]cards.Card {
	eligible := eligibleExchangeCards(d, seat)
	var options [][]cards.Card
	for i, first := range eligible {
		for j, second := range eligible {
			if i == j {
				continue
			}
			options = append(options, []cards.Card{first, second})
		}
	}
	return options
}

func (p *doublePants) visiblePiles() [][]cards.Card {
	if len(p.left) < 2 {
		return nil
	}
	piles := make([][]cards.Card, 0, len(p.left)-1)
	for i := 1; i < len(p.left); i++ {
		piles = append(piles, []cards.Card{p.left[i].Card, p.right[i].Card})
	}
	return piles
}
