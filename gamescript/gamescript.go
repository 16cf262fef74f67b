package gamescript

import (
	"io/ioutil"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/arebrov/GoatGroupBot/cards"
)

// Script contains one scripted deal: a fixed deck order, the action
// sequence and the expected outcome. Used by the scripted test driver.
type Script struct {
	Match    MatchSetup `yaml:"match"`
	Deck     []string   `yaml:"deck"`
	Deal     DealSetup  `yaml:"deal"`
	Steps    []Step     `yaml:"steps"`
	Expected Expected   `yaml:"expected"`
}

type MatchSetup struct {
	Players []uint64 `yaml:"players"`
}

type DealSetup struct {
	Label string `yaml:"label"`
	Trump string `yaml:"trump"`
}

// Step is one player action: a single card for trick play or the pants
// exchange, a pair for the double pants exchange.
type Step struct {
	Player uint64   `yaml:"player"`
	Cards  []string `yaml:"cards"`
}

type Expected struct {
	Result        string `yaml:"result"` // end | jackpot | playing
	Team1Captured int    `yaml:"team1-captured"`
	Team2Captured int    `yaml:"team2-captured"`
	Team1Score    int    `yaml:"team1-score"`
	Team2Score    int    `yaml:"team2-score"`
	DeckRest      *int   `yaml:"deck-rest"`
}

// ReadGameScript reads and validates a script yaml file.
func ReadGameScript(fileName string) (*Script, error) {
	bytes, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "reading game script %s", fileName)
	}
	var script Script
	if err := yaml.Unmarshal(bytes, &script); err != nil {
		return nil, errors.Wrapf(err, "parsing game script %s", fileName)
	}
	if err := script.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid game script %s", fileName)
	}
	return &script, nil
}

func (s *Script) Validate() error {
	if len(s.Match.Players) != 4 {
		return errors.Errorf("script needs 4 players, got %d", len(s.Match.Players))
	}
	if len(s.Deck) != 0 && len(s.Deck) != cards.DeckSize {
		return errors.Errorf("scripted deck needs %d cards, got %d", cards.DeckSize, len(s.Deck))
	}
	seen := mapset.NewSet()
	for _, code := range s.Deck {
		card, err := cards.ParseCard(code)
		if err != nil {
			return err
		}
		if !seen.Add(card) {
			return errors.Errorf("duplicate card in scripted deck: %s", code)
		}
	}
	for i, step := range s.Steps {
		if _, err := step.ParsedCards(); err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
	}
	if s.Deal.Trump != "" {
		if _, err := cards.ParseSuit(s.Deal.Trump); err != nil {
			return err
		}
	}
	return nil
}

// DeckCards is the scripted deck in front-to-back order.
func (s *Script) DeckCards() []cards.Card {
	deck := make([]cards.Card, 0, len(s.Deck))
	for _, code := range s.Deck {
		card, err := cards.ParseCard(code)
		if err != nil {
			// Validate catches this before any driver runs.
			continue
		}
		deck = append(deck, card)
	}
	return deck
}

// TrumpSuit is the scripted trump choice.
func (s *Script) TrumpSuit() (cards.Suit, error) {
	return cards.ParseSuit(s.Deal.Trump)
}

func (st Step) ParsedCards() ([]cards.Card, error) {
	if len(st.Cards) == 0 {
		return nil, errors.New("step without cards")
	}
	parsed := make([]cards.Card, 0, len(st.Cards))
	for _, code := range st.Cards {
		card, err := cards.ParseCard(code)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, card)
	}
	return parsed, nil
}
