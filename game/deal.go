package game

import (
	"github.com/rs/zerolog/log"

	"github.com/arebrov/GoatGroupBot/cards"
	"github.com/arebrov/GoatGroupBot/logging"
)

var dealLogger = log.With().Str("logger_name", "game::deal").Logger()

// dealPolicy is the per-variant capability set layered on the one concrete
// Deal: how cards are distributed, what happens once trump is fixed, and
// who leads after a resolved trick.
type dealPolicy interface {
	kind() DealKind
	// deal distributes the initial cards and requests trump.
	deal(d *Deal)
	// afterSetTrump runs once the trump is fixed and opens play.
	afterSetTrump(d *Deal)
	// nextLeader picks the seat leading the next trick given the winner
	// of the resolved one.
	nextLeader(d *Deal, winnerSeat int) int
	// canDealMore / dealMore are the staged re-deal contract. No control
	// flow invokes dealMore on its own once trick play has begun; the
	// contract is kept for a mid-round re-deal.
	canDealMore(d *Deal) bool
	dealMore(d *Deal)
}

// pantsPolicy extends a dealPolicy with the exchange sub-protocol run by
// the pants variants between trump selection and trick play.
type pantsPolicy interface {
	dealPolicy
	exchangeDone() bool
	playExchange(d *Deal, seat int, played []cards.Card) error
	exchangeOptions(d *Deal, seat int) [][]cards.Card
}

// Deal is one round of the match: four hands, an in-progress trick, the
// two capture piles and the trick history. Its lifecycle is
// AwaitingDeal -> AwaitingTrump -> AwaitingStep(seat) repeated ->
// {Completed | JackpotEnded}.
type Deal struct {
	owner        int
	current      int
	trump        cards.Suit
	trumpSet     bool
	dealt        bool
	started      bool
	jackpotEnded bool

	deck     *cards.Deck
	hands    [4][]cards.Card
	captured [2][]playedCard
	table    []playedCard
	history  [][]playedCard

	policy   dealPolicy
	notifier Notifier
}

func newDeal(policy dealPolicy, ownerSeat int, notifier Notifier, deck *cards.Deck) *Deal {
	if deck == nil {
		deck = cards.NewDeck()
		deck.Shuffle()
	}
	return &Deal{
		owner:    ownerSeat,
		current:  ownerSeat,
		deck:     deck,
		policy:   policy,
		notifier: notifier,
	}
}

// Owner is the deal's initiator and trump chooser. The full deal reassigns
// it to the holder of the ace of diamonds during dealing.
func (d *Deal) Owner() int {
	return d.owner
}

// CurrentSeat is the seat whose action is accepted right now.
func (d *Deal) CurrentSeat() int {
	return d.current
}

// Trump is only meaningful once IsWaitingForTrump is false; the no-trump
// choice is represented as NoSuit.
func (d *Deal) Trump() cards.Suit {
	return d.trump
}

func (d *Deal) Kind() DealKind {
	return d.policy.kind()
}

// ProcessDeal distributes the cards per the variant's policy and triggers
// trump selection.
func (d *Deal) ProcessDeal() error {
	if d.dealt {
		return ProtocolViolationError{Msg: "deal already processed"}
	}
	d.dealt = true
	d.policy.deal(d)
	dealLogger.Debug().
		Int("owner", d.owner).
		Msg("deal processed")
	return nil
}

// SetTrump fixes the trump for the deal. Legal exactly once, after dealing.
func (d *Deal) SetTrump(trump cards.Suit) error {
	if !d.dealt {
		return ProtocolViolationError{Msg: "cards are not dealt yet"}
	}
	if d.trumpSet {
		return ProtocolViolationError{Msg: "trump is already set"}
	}
	d.trump = trump
	d.trumpSet = true
	d.started = true
	dealLogger.Debug().
		Str(logging.TrumpKey, trump.String()).
		Int(logging.SeatNumKey, d.owner).
		Msg("trump set")
	d.policy.afterSetTrump(d)
	return nil
}

// IsWaitingForTrump reports whether the deal is in the AwaitingTrump state.
func (d *Deal) IsWaitingForTrump() bool {
	return d.dealt && !d.trumpSet
}

// DoPlayerStep plays one card from a seat. The caller is trusted to have
// supplied a card the seat actually holds; hand membership is validated at
// the match boundary.
func (d *Deal) DoPlayerStep(seat int, card cards.Card) StepResult {
	if !d.started || d.jackpotEnded {
		return StepError
	}
	if seat != d.current {
		return StepError
	}
	if p, ok := d.policy.(pantsPolicy); ok && !p.exchangeDone() {
		return StepError
	}
	d.table = append(d.table, playedCard{Card: card, Seat: seat})
	d.removeFromHand(seat, card)
	if d.hasJackpotOnTable() {
		winnerSeat, loserSeat := d.jackpotSeats()
		d.archiveTable()
		d.jackpotEnded = true
		dealLogger.Debug().
			Int("winnerSeat", winnerSeat).
			Int("loserSeat", loserSeat).
			Msg("jackpot")
		d.notifier.ShowBonusResult(winnerSeat, loserSeat)
		return StepJackpot
	}
	d.current = nextSeat(d.current)
	if len(d.table) == 4 {
		winnerSeat := d.resolveTrick()
		d.current = d.policy.nextLeader(d, winnerSeat)
		trick, topCard, topSeat := d.GetLastTrickData()
		d.notifier.ShowTrickResult(trick, topCard, topSeat)
		if d.IsCompleted() {
			return StepEnd
		}
	}
	d.notifier.RequestStep(d.current)
	return StepSuccess
}

// IsCompleted reports whether the deal ran to its natural end: started and
// all four hands empty.
func (d *Deal) IsCompleted() bool {
	if !d.started {
		return false
	}
	for seat := range d.hands {
		if len(d.hands[seat]) > 0 {
			return false
		}
	}
	return true
}

// Finished also covers the jackpot interrupt, which ends the deal with
// cards still in hand.
func (d *Deal) Finished() bool {
	return d.jackpotEnded || d.IsCompleted()
}

// GetTeamScore sums the point values captured by a team in this deal.
func (d *Deal) GetTeamScore(teamIndex int) int {
	total := 0
	for _, pc := range d.captured[teamIndex] {
		total += pc.Card.Value()
	}
	return total
}

// GetPlayerCards exposes a seat's current hand.
func (d *Deal) GetPlayerCards(seat int) []cards.Card {
	hand := make([]cards.Card, len(d.hands[seat]))
	copy(hand, d.hands[seat])
	return hand
}

// GetTableData exposes the in-progress trick with its provisional top.
func (d *Deal) GetTableData() ([]cards.Card, cards.Card, int) {
	return trickData(d.table, d.trump)
}

// GetLastTrickData exposes the most recently archived trick.
func (d *Deal) GetLastTrickData() ([]cards.Card, cards.Card, int) {
	if len(d.history) == 0 {
		return nil, cards.Card{}, -1
	}
	return trickData(d.history[len(d.history)-1], d.trump)
}

// JackpotWinnerTeam is the team that held the six of clubs in the trick
// that fired the bonus.
func (d *Deal) JackpotWinnerTeam() int {
	if len(d.history) == 0 {
		return -1
	}
	last := d.history[len(d.history)-1]
	for _, pc := range last {
		if pc.Card.Kind == cards.Six && pc.Card.Suit == cards.Clubs {
			return teamOf(pc.Seat)
		}
	}
	return -1
}

// CanProcessNextDealStep / ProcessNextDealStep expose the staged re-deal
// contract of the numeric deals.
func (d *Deal) CanProcessNextDealStep() bool {
	return d.policy.canDealMore(d)
}

func (d *Deal) ProcessNextDealStep() error {
	if !d.policy.canDealMore(d) {
		return ProtocolViolationError{Msg: "no cards left to deal"}
	}
	d.policy.dealMore(d)
	return nil
}

// PlayPantsCards feeds one exchange contribution into a pants deal.
func (d *Deal) PlayPantsCards(seat int, played []cards.Card) error {
	p, ok := d.policy.(pantsPolicy)
	if !ok {
		return ProtocolViolationError{Msg: "not a pants deal"}
	}
	if !d.started {
		return ProtocolViolationError{Msg: "trump is not set yet"}
	}
	if p.exchangeDone() {
		return ProtocolViolationError{Msg: "pants exchange is over"}
	}
	if seat != d.current {
		return ProtocolViolationError{Msg: "not this seat's turn"}
	}
	return p.playExchange(d, seat, played)
}

// inExchange reports whether a pants deal still waits for exchange
// contributions.
func (d *Deal) inExchange() bool {
	p, ok := d.policy.(pantsPolicy)
	return ok && !p.exchangeDone()
}

// IsWaitingForCard reports whether the deal accepts a trick-play card from
// the seat right now.
func (d *Deal) IsWaitingForCard(seat int) bool {
	return d.started && !d.Finished() && !d.inExchange() && seat == d.current
}

// IsWaitingForPantsCards reports whether the deal accepts an exchange
// contribution from the seat right now.
func (d *Deal) IsWaitingForPantsCards(seat int) bool {
	return d.started && !d.Finished() && d.inExchange() && seat == d.current
}

// GetPantsOptions lists the exchange contributions a seat can offer.
func (d *Deal) GetPantsOptions(seat int) [][]cards.Card {
	p, ok := d.policy.(pantsPolicy)
	if !ok {
		return nil
	}
	return p.exchangeOptions(d, seat)
}

func (d *Deal) removeFromHand(seat int, card cards.Card) {
	hand := d.hands[seat]
	for i := range hand {
		if hand[i] == card {
			d.hands[seat] = append(hand[:i], hand[i+1:]...)
			return
		}
	}
}

func (d *Deal) handHolds(seat int, card cards.Card) bool {
	for _, c := range d.hands[seat] {
		if c == card {
			return true
		}
	}
	return false
}

func (d *Deal) hasJackpotOnTable() bool {
	hasSix := false
	hasQueen := false
	for _, pc := range d.table {
		if pc.Card.Suit != cards.Clubs {
			continue
		}
		if pc.Card.Kind == cards.Six {
			hasSix = true
		}
		if pc.Card.Kind == cards.Queen {
			hasQueen = true
		}
	}
	return hasSix && hasQueen
}

func (d *Deal) jackpotSeats() (winnerSeat int, loserSeat int) {
	winnerSeat, loserSeat = -1, -1
	for _, pc := range d.table {
		if pc.Card.Suit != cards.Clubs {
			continue
		}
		if pc.Card.Kind == cards.Six {
			winnerSeat = pc.Seat
		}
		if pc.Card.Kind == cards.Queen {
			loserSeat = pc.Seat
		}
	}
	return winnerSeat, loserSeat
}

// resolveTrick hands the full table to the winner's team and returns the
// winning seat. The winner holds the card no other table card exceeds.
func (d *Deal) resolveTrick() int {
	top := d.table[0]
	for _, pc := range d.table[1:] {
		if pc.Card.GreaterThan(top.Card, d.trump) {
			top = pc
		}
	}
	team := teamOf(top.Seat)
	d.captured[team] = append(d.captured[team], d.table...)
	d.archiveTable()
	return top.Seat
}

func (d *Deal) archiveTable() {
	archived := make([]playedCard, len(d.table))
	copy(archived, d.table)
	d.history = append(d.history, archived)
	d.table = d.table[:0]
}

func trickData(trick []playedCard, trump cards.Suit) ([]cards.Card, cards.Card, int) {
	if len(trick) == 0 {
		return nil, cards.Card{}, -1
	}
	top := trick[0]
	for _, pc := range trick[1:] {
		if pc.Card.GreaterThan(top.Card, trump) {
			top = pc
		}
	}
	return cardsOf(trick), top.Card, top.Seat
}
