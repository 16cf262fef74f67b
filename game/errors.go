package game

import "fmt"

// ProtocolViolationError rejects an action arriving from the wrong seat or
// in the wrong phase. The deal state is unchanged; re-submitting a correct
// action is always safe.
type ProtocolViolationError struct {
	Msg string
}

func (e ProtocolViolationError) Error() string {
	return e.Msg
}

// InvalidCardError rejects a card that cannot serve the current action,
// e.g. a trump offered to the pants exchange or a card the seat does not
// hold.
type InvalidCardError struct {
	Card string
	Msg  string
}

func (e InvalidCardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Msg, e.Card)
}

// CapacityExceededError rejects a fifth player joining a match.
type CapacityExceededError struct{}

func (e CapacityExceededError) Error() string {
	return "all seats are taken"
}
