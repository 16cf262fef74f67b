package game

import (
	"strings"
)

// Deal-type labels. These are the registry keys a player names when asked
// to choose the next deal; matching is case-insensitive on the exact
// label.
const (
	LabelAllCards    = "По всем"
	LabelTwoCards    = "По 2"
	LabelThreeCards  = "По 3"
	LabelFourCards   = "По 4"
	LabelSinglePants = "Одинарные штаны"
	LabelDoublePants = "Двойные штаны"
)

var dealLabels = []string{
	LabelAllCards,
	LabelTwoCards,
	LabelThreeCards,
	LabelFourCards,
	LabelSinglePants,
	LabelDoublePants,
}

// DealLabels lists the six registered deal types in menu order.
func DealLabels() []string {
	labels := make([]string, len(dealLabels))
	copy(labels, dealLabels)
	return labels
}

// IsDealLabel reports whether the text names a registered deal type.
func IsDealLabel(text string) bool {
	return policyByLabel(text) != nil
}

func policyByLabel(label string) dealPolicy {
	switch {
	case strings.EqualFold(label, LabelAllCards):
		return fullDeal{}
	case strings.EqualFold(label, LabelTwoCards):
		return numDeal{cardCount: 2}
	case strings.EqualFold(label, LabelThreeCards):
		return numDeal{cardCount: 3}
	case strings.EqualFold(label, LabelFourCards):
		return numDeal{cardCount: 4}
	case strings.EqualFold(label, LabelSinglePants):
		return newSinglePants()
	case strings.EqualFold(label, LabelDoublePants):
		return newDoublePants()
	default:
		return nil
	}
}
