package cards

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// DeckSize is the number of cards in a kozel deck: 4 suits by the 8 dealt
// kinds. The kind 7 is parseable but never dealt.
const DeckSize = 32

// Deck is a double-ended draw source. The front cursor deals low to high,
// the back cursor high to low; both wrap as a safety net, which correct
// play never triggers.
type Deck struct {
	cards   []Card
	front   int
	back    int
	randGen *rand.Rand
}

func newSeed() rand.Source {
	var b [8]byte
	_, err := crypto_rand.Read(b[:])
	if err != nil {
		panic("cannot seed math/rand package with cryptographically secure random number generator")
	}
	return rand.NewSource(int64(binary.LittleEndian.Uint64(b[:])))
}

func fullDeckCards() []Card {
	cards := make([]Card, 0, DeckSize)
	for suit := Diamonds; suit <= Clubs; suit++ {
		for kind := Six; kind <= Ace; kind++ {
			if kind == Seven {
				continue
			}
			cards = append(cards, Card{Kind: kind, Suit: suit})
		}
	}
	return cards
}

// NewDeck returns an unshuffled full deck. Shuffle must be called once
// before the first draw.
func NewDeck() *Deck {
	return &Deck{
		cards:   fullDeckCards(),
		back:    DeckSize - 1,
		randGen: rand.New(newSeed()),
	}
}

// NewDeckFromCards builds a deck with a fixed order, used by scripted deals
// and tests. The order is taken as already shuffled.
func NewDeckFromCards(cards []Card) *Deck {
	owned := make([]Card, len(cards))
	copy(owned, cards)
	return &Deck{
		cards:   owned,
		back:    len(owned) - 1,
		randGen: rand.New(newSeed()),
	}
}

// Shuffle randomizes the card order and resets both cursors.
func (d *Deck) Shuffle() {
	for i := range d.cards {
		loc := int(d.randGen.Uint32()) % len(d.cards)
		d.cards[i], d.cards[loc] = d.cards[loc], d.cards[i]
	}
	d.front = 0
	d.back = len(d.cards) - 1
}

// DrawFront returns the card at the front cursor and advances it.
func (d *Deck) DrawFront() Card {
	if d.front == len(d.cards) {
		d.front = 0
	}
	card := d.cards[d.front]
	d.front++
	return card
}

// DrawBack returns the card at the back cursor and regresses it.
func (d *Deck) DrawBack() Card {
	if d.back < 0 {
		d.back = len(d.cards) - 1
	}
	card := d.cards[d.back]
	d.back--
	return card
}

// RestCount is the number of cards not yet drawn from either end.
func (d *Deck) RestCount() int {
	return d.back - d.front + 1
}
