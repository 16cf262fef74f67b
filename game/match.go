package game

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/arebrov/GoatGroupBot/cards"
	"github.com/arebrov/GoatGroupBot/logging"
)

var matchLogger = log.With().Str("logger_name", "game::match").Logger()

// Match seats four players across two fixed partnerships, owns the active
// deal and the cumulative team scores, and translates between seat indices
// and player identities. Exactly one seat's action is accepted at any
// instant; a per-match lock keeps the single-writer model when the process
// serves many matches.
type Match struct {
	matchID    string
	players    [4]uint64
	deal       *Deal
	teamScores [2]int
	receiver   MessageReceiver
	testDeck   *cards.Deck

	lock sync.Mutex
}

// NewMatch seats the initiating player at seat 0. The receiver is fixed
// for the match lifetime; the match builds one seat-translating notifier
// per deal on top of it.
func NewMatch(matchID string, ownerPlayerID uint64, receiver MessageReceiver) *Match {
	m := &Match{
		matchID:  matchID,
		receiver: receiver,
	}
	m.players[0] = ownerPlayerID
	matchLogger.Debug().
		Str(logging.MatchIDKey, matchID).
		Uint64(logging.PlayerIDKey, ownerPlayerID).
		Msg("match created")
	return m
}

func (m *Match) ID() string {
	return m.matchID
}

// AddPlayer fills the next free seat in join order.
func (m *Match) AddPlayer(playerID uint64) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, seated := range m.players {
		if seated == playerID {
			return ProtocolViolationError{Msg: "player is already seated"}
		}
	}
	for seat := 1; seat < 4; seat++ {
		if m.players[seat] == 0 {
			m.players[seat] = playerID
			matchLogger.Debug().
				Str(logging.MatchIDKey, m.matchID).
				Uint64(logging.PlayerIDKey, playerID).
				Int(logging.SeatNumKey, seat).
				Msg("player seated")
			return nil
		}
	}
	return CapacityExceededError{}
}

// NeedPlayerCount is how many more players must join before dealing can
// start.
func (m *Match) NeedPlayerCount() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	count := 3
	for seat := 1; seat < 4; seat++ {
		if m.players[seat] != 0 {
			count--
		}
	}
	return count
}

// FirstDeal starts the match with the full deal once all seats are taken.
func (m *Match) FirstDeal() error {
	m.lock.Lock()
	defer m.lock.Unlock()
	for seat := 1; seat < 4; seat++ {
		if m.players[seat] == 0 {
			return ProtocolViolationError{Msg: "waiting for players to join"}
		}
	}
	if m.deal != nil {
		return ProtocolViolationError{Msg: "match is already running"}
	}
	return m.startDeal(fullDeal{}, 0, LabelAllCards)
}

// SetTestDeck plants a fixed deck order consumed by the next deal; used by
// the scripted test driver.
func (m *Match) SetTestDeck(deck *cards.Deck) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.testDeck = deck
}

// SelectTrump accepts the trump choice from the deal owner.
func (m *Match) SelectTrump(playerID uint64, trump cards.Suit) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.deal == nil || !m.deal.IsWaitingForTrump() {
		return ProtocolViolationError{Msg: "nobody is asked for trump"}
	}
	seat, ok := m.seatOf(playerID)
	if !ok || seat != m.deal.Owner() {
		return ProtocolViolationError{Msg: "only the deal owner chooses trump"}
	}
	return m.deal.SetTrump(trump)
}

// PlayCard feeds a trick-play card into the active deal and settles the
// deal when the step ends it.
func (m *Match) PlayCard(playerID uint64, card cards.Card) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	seat, ok := m.seatOf(playerID)
	if !ok {
		return ProtocolViolationError{Msg: "player is not seated"}
	}
	if m.deal == nil || !m.deal.IsWaitingForCard(seat) {
		return ProtocolViolationError{Msg: "not this player's turn"}
	}
	if !m.deal.handHolds(seat, card) {
		return InvalidCardError{Card: card.String(), Msg: "card is not in hand"}
	}
	switch m.deal.DoPlayerStep(seat, card) {
	case StepJackpot:
		m.teamScores[m.deal.JackpotWinnerTeam()] += 4
		m.completeDeal()
	case StepEnd:
		m.settleDeal()
		m.completeDeal()
	case StepError:
		return ProtocolViolationError{Msg: "not this player's turn"}
	}
	return nil
}

// PlayPantsCards feeds an exchange contribution into a pants deal. Single
// pants takes one card, double pants an ordered pair.
func (m *Match) PlayPantsCards(playerID uint64, played []cards.Card) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	seat, ok := m.seatOf(playerID)
	if !ok {
		return ProtocolViolationError{Msg: "player is not seated"}
	}
	if m.deal == nil {
		return ProtocolViolationError{Msg: "no deal is running"}
	}
	return m.deal.PlayPantsCards(seat, played)
}

// ChooseNextDeal accepts the next deal type from the seat after the
// previous owner, once the previous deal is over.
func (m *Match) ChooseNextDeal(playerID uint64, label string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.deal == nil || !m.deal.Finished() {
		return ProtocolViolationError{Msg: "the current deal is not over"}
	}
	seat, ok := m.seatOf(playerID)
	if !ok || seat != nextSeat(m.deal.Owner()) {
		return ProtocolViolationError{Msg: "not this player's deal choice"}
	}
	policy := policyByLabel(label)
	if policy == nil {
		return ProtocolViolationError{Msg: "unknown deal type: " + label}
	}
	return m.startDeal(policy, seat, label)
}

func (m *Match) IsWaitingForTrump() bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.deal != nil && m.deal.IsWaitingForTrump()
}

func (m *Match) IsWaitingForCard(playerID uint64) bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	seat, ok := m.seatOf(playerID)
	return ok && m.deal != nil && m.deal.IsWaitingForCard(seat)
}

func (m *Match) IsWaitingForPantsCards(playerID uint64) bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	seat, ok := m.seatOf(playerID)
	return ok && m.deal != nil && m.deal.IsWaitingForPantsCards(seat)
}

func (m *Match) IsWaitingForDealChoice(playerID uint64) bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.deal == nil || !m.deal.Finished() {
		return false
	}
	seat, ok := m.seatOf(playerID)
	return ok && seat == nextSeat(m.deal.Owner())
}

// GetHand returns the player's current hand, nil for a spectator.
func (m *Match) GetHand(playerID uint64) []cards.Card {
	m.lock.Lock()
	defer m.lock.Unlock()
	seat, ok := m.seatOf(playerID)
	if !ok || m.deal == nil {
		return nil
	}
	return m.deal.GetPlayerCards(seat)
}

// GetAvailablePantsOptions lists the exchange contributions the player can
// offer in the active pants deal.
func (m *Match) GetAvailablePantsOptions(playerID uint64) [][]cards.Card {
	m.lock.Lock()
	defer m.lock.Unlock()
	seat, ok := m.seatOf(playerID)
	if !ok || m.deal == nil {
		return nil
	}
	return m.deal.GetPantsOptions(seat)
}

// DealLabels lists the registered deal types.
func (m *Match) DealLabels() []string {
	return DealLabels()
}

// Scores returns the cumulative settlement scores of the two teams.
func (m *Match) Scores() (int, int) {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.teamScores[0], m.teamScores[1]
}

func (m *Match) seatOf(playerID uint64) (int, bool) {
	for seat, seated := range m.players {
		if seated != 0 && seated == playerID {
			return seat, true
		}
	}
	return -1, false
}

func (m *Match) playerAt(seat int) uint64 {
	if seat < 0 || seat > 3 {
		return 0
	}
	return m.players[seat]
}

func (m *Match) startDeal(policy dealPolicy, ownerSeat int, label string) error {
	deck := m.testDeck
	m.testDeck = nil
	m.deal = newDeal(policy, ownerSeat, dealNotifier{m: m}, deck)
	matchLogger.Debug().
		Str(logging.MatchIDKey, m.matchID).
		Str(logging.DealLabelKey, label).
		Int(logging.SeatNumKey, ownerSeat).
		Msg("deal started")
	return m.deal.ProcessDeal()
}

// settleDeal converts the captured-card totals into settlement points: 4
// for the winning team when the loser stayed below 30, otherwise 2.
func (m *Match) settleDeal() {
	teamA := m.deal.GetTeamScore(0)
	teamB := m.deal.GetTeamScore(1)
	if teamA > teamB {
		if teamB < 30 {
			m.teamScores[0] += 4
		} else {
			m.teamScores[0] += 2
		}
	} else {
		if teamA < 30 {
			m.teamScores[1] += 4
		} else {
			m.teamScores[1] += 2
		}
	}
}

func (m *Match) completeDeal() {
	m.receiver.ShowTotalScore(m.teamScores[0], m.teamScores[1])
	next := nextSeat(m.deal.Owner())
	m.receiver.RequestDealChoice(m.players[next])
}

// dealNotifier closes over the match to translate seat indices into player
// identities before forwarding to the transport receiver. One is built per
// deal and never mutated.
type dealNotifier struct {
	m *Match
}

func (n dealNotifier) RequestTrump(seat int) {
	n.m.receiver.RequestTrump(n.m.playerAt(seat))
}

func (n dealNotifier) SendHand(seat int) {
	n.m.receiver.SendHand(n.m.playerAt(seat), n.m.deal.GetPlayerCards(seat))
}

func (n dealNotifier) RequestStep(seat int) {
	n.m.receiver.RequestStep(n.m.playerAt(seat))
}

func (n dealNotifier) ShowTrickResult(trick []cards.Card, topCard cards.Card, topSeat int) {
	n.m.receiver.ShowTrickResult(trick, topCard, n.m.playerAt(topSeat))
}

func (n dealNotifier) ShowPantsResult(left []cards.Card, topLeft cards.Card, topLeftSeat int,
	right []cards.Card, topRight cards.Card, topRightSeat int, next int) {
	n.m.receiver.ShowPantsResult(left, topLeft, n.m.playerAt(topLeftSeat),
		right, topRight, n.m.playerAt(topRightSeat), n.m.playerAt(next))
}

func (n dealNotifier) ShowCurrentPants(piles [][]cards.Card) {
	n.m.receiver.ShowCurrentPants(piles)
}

func (n dealNotifier) ShowBonusResult(winnerSeat int, loserSeat int) {
	n.m.receiver.ShowBonusResult(n.m.playerAt(winnerSeat), n.m.playerAt(loserSeat))
}
