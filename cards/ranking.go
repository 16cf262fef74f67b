package cards

// sixOfClubs outranks every other trump regardless of the chosen suit.
var sixOfClubs = Card{Kind: Six, Suit: Clubs}

// IsPermanentTrump reports whether the card is trump under every chosen
// suit: every queen, every jack and the six of clubs.
func (c Card) IsPermanentTrump() bool {
	if c == sixOfClubs {
		return true
	}
	return c.Kind == Queen || c.Kind == Jack
}

// IsTrump reports whether the card is trump when trump is the chosen suit.
// With NoSuit chosen only the permanent trumps count.
func (c Card) IsTrump(trump Suit) bool {
	if c.IsPermanentTrump() {
		return true
	}
	return trump != NoSuit && c.Suit == trump
}

// greaterByKind is the kind-rank order shared by the trump-internal and the
// plain comparison, with the six of clubs above everything. Cards of the
// same kind fall back to the suit order (clubs highest, diamonds lowest)
// so that the relation stays a strict total order.
func (c Card) greaterByKind(other Card) bool {
	if c == sixOfClubs {
		return true
	}
	if other == sixOfClubs {
		return false
	}
	if c.Kind != other.Kind {
		return c.Kind > other.Kind
	}
	return c.Suit > other.Suit
}

// GreaterThan is the strict trump-aware order. It is asymmetric and only
// meaningful for distinct cards; equal cards compare false both ways.
func (c Card) GreaterThan(other Card, trump Suit) bool {
	if c == other {
		return false
	}
	cTrump := c.IsTrump(trump)
	otherTrump := other.IsTrump(trump)
	if cTrump != otherTrump {
		return cTrump
	}
	return c.greaterByKind(other)
}

// LessThan is the complement of GreaterThan for distinct cards.
func (c Card) LessThan(other Card, trump Suit) bool {
	if c == other {
		return false
	}
	return !c.GreaterThan(other, trump)
}
