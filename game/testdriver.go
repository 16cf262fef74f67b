package game

import (
	"github.com/pkg/errors"

	"github.com/arebrov/GoatGroupBot/cards"
	"github.com/arebrov/GoatGroupBot/gamescript"
)

// ReceiverLog is a MessageReceiver that records every notification, used
// by the scripted driver and the package tests.
type ReceiverLog struct {
	TrumpRequests      []uint64
	HandsSent          map[uint64][]cards.Card
	StepRequests       []uint64
	DealChoiceRequests []uint64
	TrickResults       []TrickResultLog
	PantsResults       []PantsResultLog
	CurrentPants       [][][]cards.Card
	BonusResults       []BonusResultLog
	TotalScores        [][2]int
}

type TrickResultLog struct {
	Trick       []cards.Card
	TopCard     cards.Card
	TopPlayerID uint64
}

type PantsResultLog struct {
	Left           []cards.Card
	TopLeft        cards.Card
	TopLeftPlayer  uint64
	Right          []cards.Card
	TopRight       cards.Card
	TopRightPlayer uint64
	NextPlayer     uint64
}

type BonusResultLog struct {
	WinnerPlayerID uint64
	LoserPlayerID  uint64
}

func NewReceiverLog() *ReceiverLog {
	return &ReceiverLog{HandsSent: make(map[uint64][]cards.Card)}
}

func (r *ReceiverLog) RequestTrump(playerID uint64) {
	r.TrumpRequests = append(r.TrumpRequests, playerID)
}

func (r *ReceiverLog) SendHand(playerID uint64, hand []cards.Card) {
	r.HandsSent[playerID] = hand
}

func (r *ReceiverLog) RequestStep(playerID uint64) {
	r.StepRequests = append(r.StepRequests, playerID)
}

func (r *ReceiverLog) ShowTrickResult(trick []cards.Card, topCard cards.Card, topPlayerID uint64) {
	r.TrickResults = append(r.TrickResults, TrickResultLog{Trick: trick, TopCard: topCard, TopPlayerID: topPlayerID})
}

func (r *ReceiverLog) ShowPantsResult(left []cards.Card, topLeft cards.Card, topLeftPlayer uint64,
	right []cards.Card, topRight cards.Card, topRightPlayer uint64, nextPlayer uint64) {
	r.PantsResults = append(r.PantsResults, PantsResultLog{
		Left: left, TopLeft: topLeft, TopLeftPlayer: topLeftPlayer,
		Right: right, TopRight: topRight, TopRightPlayer: topRightPlayer,
		NextPlayer: nextPlayer,
	})
}

func (r *ReceiverLog) ShowCurrentPants(piles [][]cards.Card) {
	r.CurrentPants = append(r.CurrentPants, piles)
}

func (r *ReceiverLog) ShowBonusResult(winnerPlayerID uint64, loserPlayerID uint64) {
	r.BonusResults = append(r.BonusResults, BonusResultLog{WinnerPlayerID: winnerPlayerID, LoserPlayerID: loserPlayerID})
}

func (r *ReceiverLog) ShowTotalScore(teamAScore int, teamBScore int) {
	r.TotalScores = append(r.TotalScores, [2]int{teamAScore, teamBScore})
}

func (r *ReceiverLog) RequestDealChoice(playerID uint64) {
	r.DealChoiceRequests = append(r.DealChoiceRequests, playerID)
}

// ScriptDriver runs one gamescript against a fresh match and verifies the
// scripted expectations.
type ScriptDriver struct {
	Script   *gamescript.Script
	Match    *Match
	Received *ReceiverLog
}

func NewScriptDriver(script *gamescript.Script) *ScriptDriver {
	received := NewReceiverLog()
	players := script.Match.Players
	match := NewMatch("scripted-match", players[0], received)
	return &ScriptDriver{
		Script:   script,
		Match:    match,
		Received: received,
	}
}

// Run seats the players, deals per the script, selects trump and replays
// every step.
func (d *ScriptDriver) Run() error {
	for _, playerID := range d.Script.Match.Players[1:] {
		if err := d.Match.AddPlayer(playerID); err != nil {
			return errors.Wrap(err, "seating players")
		}
	}
	if len(d.Script.Deck) > 0 {
		d.Match.SetTestDeck(cards.NewDeckFromCards(d.Script.DeckCards()))
	}
	if err := d.startScriptedDeal(); err != nil {
		return err
	}
	if d.Script.Deal.Trump != "" {
		if len(d.Received.TrumpRequests) == 0 {
			return errors.New("nobody was asked for trump")
		}
		chooser := d.Received.TrumpRequests[len(d.Received.TrumpRequests)-1]
		trump, err := d.Script.TrumpSuit()
		if err != nil {
			return err
		}
		if err := d.Match.SelectTrump(chooser, trump); err != nil {
			return errors.Wrap(err, "selecting trump")
		}
	}
	for i, step := range d.Script.Steps {
		played, err := step.ParsedCards()
		if err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
		if d.Match.IsWaitingForPantsCards(step.Player) {
			err = d.Match.PlayPantsCards(step.Player, played)
		} else {
			err = d.Match.PlayCard(step.Player, played[0])
		}
		if err != nil {
			return errors.Wrapf(err, "step %d (player %d)", i+1, step.Player)
		}
	}
	return nil
}

// Verify compares the deal and match state with the script expectations.
func (d *ScriptDriver) Verify() error {
	deal := d.Match.deal
	expected := d.Script.Expected
	switch expected.Result {
	case "end":
		if !deal.IsCompleted() {
			return errors.New("expected the deal to run to its end")
		}
	case "jackpot":
		if !deal.jackpotEnded {
			return errors.New("expected the deal to end with a jackpot")
		}
	case "playing":
		if deal.Finished() {
			return errors.New("expected the deal to still be running")
		}
	case "":
	default:
		return errors.Errorf("unknown expected result %q", expected.Result)
	}
	if captured := deal.GetTeamScore(0); captured != expected.Team1Captured {
		return errors.Errorf("team 1 captured %d points, expected %d", captured, expected.Team1Captured)
	}
	if captured := deal.GetTeamScore(1); captured != expected.Team2Captured {
		return errors.Errorf("team 2 captured %d points, expected %d", captured, expected.Team2Captured)
	}
	teamA, teamB := d.Match.Scores()
	if teamA != expected.Team1Score || teamB != expected.Team2Score {
		return errors.Errorf("total score %d:%d, expected %d:%d",
			teamA, teamB, expected.Team1Score, expected.Team2Score)
	}
	if expected.DeckRest != nil {
		if rest := deal.deck.RestCount(); rest != *expected.DeckRest {
			return errors.Errorf("deck rest %d, expected %d", rest, *expected.DeckRest)
		}
	}
	return nil
}

func (d *ScriptDriver) startScriptedDeal() error {
	label := d.Script.Deal.Label
	if label == "" || label == LabelAllCards {
		return d.Match.FirstDeal()
	}
	policy := policyByLabel(label)
	if policy == nil {
		return errors.Errorf("unknown deal label %q", label)
	}
	d.Match.lock.Lock()
	defer d.Match.lock.Unlock()
	return d.Match.startDeal(policy, 0, label)
}
