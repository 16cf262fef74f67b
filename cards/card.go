package cards

import (
	"strings"

	"github.com/pkg/errors"
)

// Suit of a card. NoSuit is a pseudo-suit used only to express "no trump
// chosen"; a well-formed card never carries it.
type Suit int

const (
	NoSuit Suit = iota
	Diamonds
	Hearts
	Spades
	Clubs
)

// Kind of a card. The declaration order is the kind-rank order used by the
// comparison algebra (six lowest, ace highest), which is not the point-value
// order.
type Kind int

const (
	Six Kind = iota + 1
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Card is an immutable kind+suit value. Cards compare equal iff both fields
// are equal.
type Card struct {
	Kind Kind
	Suit Suit
}

var kindValues = map[Kind]int{
	Ace:   11,
	Ten:   10,
	King:  4,
	Queen: 3,
	Jack:  2,
}

var kindGlyphs = map[Kind]string{
	Ace:   "Т",
	King:  "К",
	Queen: "Д",
	Jack:  "В",
	Ten:   "10",
	Nine:  "9",
	Eight: "8",
	Seven: "7",
	Six:   "6",
}

var glyphKinds = map[string]Kind{}

var suitGlyphs = map[Suit]string{
	Diamonds: "♦",
	Hearts:   "♥",
	Spades:   "♠",
	Clubs:    "♣",
}

var glyphSuits = map[string]Suit{}

var noTrumpWords = map[string]Suit{
	"без козыря": NoSuit,
	"бескозырка": NoSuit,
}

func init() {
	for kind, glyph := range kindGlyphs {
		glyphKinds[glyph] = kind
	}
	for suit, glyph := range suitGlyphs {
		glyphSuits[glyph] = suit
	}
}

// ErrParseFailure is returned for a textual code that does not name a card.
// Callers treat it as "not a card", never as a fatal condition.
var ErrParseFailure = errors.New("not a card")

// Value returns the fixed point value of the card. It does not depend on
// the chosen trump.
func (c Card) Value() int {
	return kindValues[c.Kind]
}

func (c Card) String() string {
	return kindGlyphs[c.Kind] + suitGlyphs[c.Suit]
}

// ParseCard parses a 2-3 rune code <kindGlyph><suitGlyph>. The kind glyph is
// case-insensitive. The kind "7" parses even though no deck deals it.
func ParseCard(text string) (Card, error) {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) < 2 || len(runes) > 3 {
		return Card{}, errors.Wrap(ErrParseFailure, text)
	}
	suit, ok := glyphSuits[string(runes[len(runes)-1])]
	if !ok {
		return Card{}, errors.Wrap(ErrParseFailure, text)
	}
	kind, ok := glyphKinds[strings.ToUpper(string(runes[:len(runes)-1]))]
	if !ok {
		return Card{}, errors.Wrap(ErrParseFailure, text)
	}
	return Card{Kind: kind, Suit: suit}, nil
}

// ParseSuit parses a suit glyph or one of the no-trump words.
func ParseSuit(text string) (Suit, error) {
	text = strings.TrimSpace(text)
	if suit, ok := glyphSuits[text]; ok {
		return suit, nil
	}
	if suit, ok := noTrumpWords[strings.ToLower(text)]; ok {
		return suit, nil
	}
	return NoSuit, errors.Wrap(ErrParseFailure, text)
}

func (s Suit) String() string {
	if glyph, ok := suitGlyphs[s]; ok {
		return glyph
	}
	return "без козыря"
}

// CardsToString renders a card list for logs.
func CardsToString(cards []Card) string {
	var b strings.Builder
	b.Grow(32)
	b.WriteString("[")
	for _, c := range cards {
		b.WriteString(" ")
		b.WriteString(c.String())
		b.WriteString(" ")
	}
	b.WriteString("]")
	return b.String()
}
