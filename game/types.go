package game

import (
	"github.com/arebrov/GoatGroupBot/cards"
)

// StepResult is the outcome of a single card played into a deal.
type StepResult int

const (
	StepError StepResult = iota
	StepSuccess
	StepJackpot
	StepEnd
)

func (r StepResult) String() string {
	switch r {
	case StepSuccess:
		return "SUCCESS"
	case StepJackpot:
		return "JACKPOT"
	case StepEnd:
		return "END"
	default:
		return "ERROR"
	}
}

// DealKind separates the pants deals, which run an exchange sub-protocol
// between trump selection and trick play, from the classic ones.
type DealKind int

const (
	DealClassic DealKind = iota
	DealPants
)

// playedCard is one table entry: a card and the seat that played it.
type playedCard struct {
	Card cards.Card
	Seat int
}

func cardsOf(played []playedCard) []cards.Card {
	result := make([]cards.Card, len(played))
	for i, pc := range played {
		result[i] = pc.Card
	}
	return result
}

// nextSeat advances a seat index with the 3 -> 0 wrap.
func nextSeat(seat int) int {
	seat++
	if seat > 3 {
		seat = 0
	}
	return seat
}

// teamOf maps a seat to its partnership: seats 0 and 2 are team 0, seats 1
// and 3 are team 1.
func teamOf(seat int) int {
	return seat % 2
}

// Notifier receives the deal's outbound notifications with seat indices.
// The match orchestrator builds one per deal that translates seats to
// player identities; the deal never mutates it. Calls are fire-and-forget.
type Notifier interface {
	RequestTrump(seat int)
	SendHand(seat int)
	RequestStep(seat int)
	ShowTrickResult(trick []cards.Card, topCard cards.Card, topSeat int)
	ShowPantsResult(left []cards.Card, topLeft cards.Card, topLeftSeat int,
		right []cards.Card, topRight cards.Card, topRightSeat int, nextSeat int)
	ShowCurrentPants(piles [][]cards.Card)
	ShowBonusResult(winnerSeat int, loserSeat int)
}

// MessageReceiver is the transport side of a match: the same notifications
// with seats already translated to player identities, plus the match-level
// ones. Implemented by the transport layer (NATS adapter, test driver).
type MessageReceiver interface {
	RequestTrump(playerID uint64)
	SendHand(playerID uint64, hand []cards.Card)
	RequestStep(playerID uint64)
	ShowTrickResult(trick []cards.Card, topCard cards.Card, topPlayerID uint64)
	ShowPantsResult(left []cards.Card, topLeft cards.Card, topLeftPlayerID uint64,
		right []cards.Card, topRight cards.Card, topRightPlayerID uint64, nextPlayerID uint64)
	ShowCurrentPants(piles [][]cards.Card)
	ShowBonusResult(winnerPlayerID uint64, loserPlayerID uint64)
	ShowTotalScore(teamAScore int, teamBScore int)
	RequestDealChoice(playerID uint64)
}
