package nats

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	natsgo "github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/arebrov/GoatGroupBot/cards"
	"github.com/arebrov/GoatGroupBot/game"
	"github.com/arebrov/GoatGroupBot/logging"
)

var natsLogger = log.With().Str("logger_name", "nats::match").Logger()

// NatsMatch bridges one match and the NATS server. Players publish
// actions to kozel.<matchID>.player; the match publishes notifications to
// kozel.<matchID>.game. Outbound publishing is fire-and-forget, matching
// the match engine's notification contract.
type NatsMatch struct {
	matchID             string
	match               *game.Match
	player2MatchSubject string
	match2PlayerSubject string

	player2MatchSub *natsgo.Subscription
	nc              *natsgo.Conn
}

func newNatsMatch(nc *natsgo.Conn, manager *game.Manager, ownerPlayerID uint64) (*NatsMatch, error) {
	n := &NatsMatch{nc: nc}
	n.match = manager.NewMatch(ownerPlayerID, n)
	n.matchID = n.match.ID()
	n.player2MatchSubject = fmt.Sprintf("kozel.%s.player", n.matchID)
	n.match2PlayerSubject = fmt.Sprintf("kozel.%s.game", n.matchID)

	sub, err := nc.Subscribe(n.player2MatchSubject, n.player2Match)
	if err != nil {
		natsLogger.Error().
			Str(logging.MatchIDKey, n.matchID).
			Msg(fmt.Sprintf("Failed to subscribe to %s: %v", n.player2MatchSubject, err))
		manager.EndMatch(n.matchID)
		return nil, err
	}
	n.player2MatchSub = sub
	return n, nil
}

func (n *NatsMatch) MatchID() string {
	return n.matchID
}

func (n *NatsMatch) Match() *game.Match {
	return n.match
}

func (n *NatsMatch) cleanup() {
	n.player2MatchSub.Unsubscribe()
}

// player2Match handles one inbound player action.
func (n *NatsMatch) player2Match(msg *natsgo.Msg) {
	natsLogger.Info().
		Str(logging.MatchIDKey, n.matchID).
		Msg(fmt.Sprintf("Player->Match: %s", string(msg.Data)))
	var message PlayerMessage
	if err := jsoniter.Unmarshal(msg.Data, &message); err != nil {
		natsLogger.Error().
			Str(logging.MatchIDKey, n.matchID).
			Msg(fmt.Sprintf("Failed to parse player message: %v", err))
		return
	}
	if err := n.dispatch(&message); err != nil {
		n.publish(&MatchMessage{
			MessageType: MsgError,
			PlayerID:    message.PlayerID,
			Error:       err.Error(),
		})
	}
}

func (n *NatsMatch) dispatch(message *PlayerMessage) error {
	switch message.MessageType {
	case MsgJoinMatch:
		return n.match.AddPlayer(message.PlayerID)
	case MsgFirstDeal:
		return n.match.FirstDeal()
	case MsgSelectTrump:
		trump, err := cards.ParseSuit(message.Trump)
		if err != nil {
			return err
		}
		return n.match.SelectTrump(message.PlayerID, trump)
	case MsgPlayCard:
		played, err := parseCards(message.Cards)
		if err != nil {
			return err
		}
		if len(played) != 1 {
			return game.InvalidCardError{Card: cards.CardsToString(played), Msg: "a step takes exactly one card"}
		}
		return n.match.PlayCard(message.PlayerID, played[0])
	case MsgPlayPantsCards:
		played, err := parseCards(message.Cards)
		if err != nil {
			return err
		}
		return n.match.PlayPantsCards(message.PlayerID, played)
	case MsgChooseDeal:
		if !game.IsDealLabel(message.DealLabel) {
			return game.ProtocolViolationError{Msg: "unknown deal type: " + message.DealLabel}
		}
		return n.match.ChooseNextDeal(message.PlayerID, message.DealLabel)
	default:
		return game.ProtocolViolationError{Msg: "unknown message type: " + message.MessageType}
	}
}

func (n *NatsMatch) publish(message *MatchMessage) {
	message.MatchID = n.matchID
	natsLogger.Info().
		Str(logging.MatchIDKey, n.matchID).
		Str(logging.MsgTypeKey, message.MessageType).
		Msg("Match->Player")
	data, err := jsoniter.Marshal(message)
	if err != nil {
		natsLogger.Error().
			Str(logging.MatchIDKey, n.matchID).
			Msg(fmt.Sprintf("Failed to marshal match message: %v", err))
		return
	}
	if err := n.nc.Publish(n.match2PlayerSubject, data); err != nil {
		natsLogger.Error().
			Str(logging.MatchIDKey, n.matchID).
			Str(logging.MsgTypeKey, message.MessageType).
			Msg(fmt.Sprintf("Failed to publish match message: %v", err))
	}
}

func (n *NatsMatch) RequestTrump(playerID uint64) {
	n.publish(&MatchMessage{MessageType: MsgRequestTrump, PlayerID: playerID})
}

func (n *NatsMatch) SendHand(playerID uint64, hand []cards.Card) {
	n.publish(&MatchMessage{MessageType: MsgHand, PlayerID: playerID, Cards: cardCodes(hand)})
}

func (n *NatsMatch) RequestStep(playerID uint64) {
	n.publish(&MatchMessage{MessageType: MsgRequestStep, PlayerID: playerID})
}

func (n *NatsMatch) ShowTrickResult(trick []cards.Card, topCard cards.Card, topPlayerID uint64) {
	n.publish(&MatchMessage{
		MessageType: MsgTrickResult,
		Trick:       cardCodes(trick),
		TopCard:     topCard.String(),
		TopPlayerID: topPlayerID,
	})
}

func (n *NatsMatch) ShowPantsResult(left []cards.Card, topLeft cards.Card, topLeftPlayerID uint64,
	right []cards.Card, topRight cards.Card, topRightPlayerID uint64, nextPlayerID uint64) {
	message := &MatchMessage{
		MessageType:   MsgPantsResult,
		LeftPile:      cardCodes(left),
		TopLeft:       topLeft.String(),
		TopLeftPlayer: topLeftPlayerID,
		NextPlayerID:  nextPlayerID,
	}
	if len(right) > 0 {
		message.RightPile = cardCodes(right)
		message.TopRight = topRight.String()
		message.TopRightPlayer = topRightPlayerID
	}
	n.publish(message)
}

func (n *NatsMatch) ShowCurrentPants(piles [][]cards.Card) {
	codes := make([][]string, 0, len(piles))
	for _, pile := range piles {
		codes = append(codes, cardCodes(pile))
	}
	n.publish(&MatchMessage{MessageType: MsgCurrentPants, Piles: codes})
}

func (n *NatsMatch) ShowBonusResult(winnerPlayerID uint64, loserPlayerID uint64) {
	n.publish(&MatchMessage{
		MessageType:    MsgBonusResult,
		WinnerPlayerID: winnerPlayerID,
		LoserPlayerID:  loserPlayerID,
	})
}

func (n *NatsMatch) ShowTotalScore(teamAScore int, teamBScore int) {
	n.publish(&MatchMessage{
		MessageType: MsgTotalScore,
		TeamAScore:  teamAScore,
		TeamBScore:  teamBScore,
	})
}

func (n *NatsMatch) RequestDealChoice(playerID uint64) {
	n.publish(&MatchMessage{
		MessageType: MsgRequestDealChoice,
		PlayerID:    playerID,
		DealLabels:  game.DealLabels(),
	})
}

func cardCodes(hand []cards.Card) []string {
	codes := make([]string, 0, len(hand))
	for _, c := range hand {
		codes = append(codes, c.String())
	}
	return codes
}

func parseCards(codes []string) ([]cards.Card, error) {
	parsed := make([]cards.Card, 0, len(codes))
	for _, code := range codes {
		card, err := cards.ParseCard(code)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, card)
	}
	return parsed, nil
}
