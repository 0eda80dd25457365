package issue

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidState     = errors.New("invalid state")
	ErrInvalidTimestamp = errors.New("invalid updatedAt timestamp")
)

type State int

const (
	// StateUnknown is what GitHub reports as the literal string "null".
	StateUnknown State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "OPEN"
	case StateClosed:
		return "CLOSED"
	default:
		return "null"
	}
}

// ParseState classifies a raw GraphQL state value. Anything outside the known
// vocabulary means the API contract changed, so it is an error rather than a guess.
func ParseState(raw string) (State, error) {
	switch raw {
	case "OPEN":
		return StateOpen, nil
	case "CLOSED":
		return StateClosed, nil
	case "null":
		return StateUnknown, nil
	default:
		return StateUnknown, fmt.Errorf("%w: %q", ErrInvalidState, raw)
	}
}

func (s State) IsOpen() bool {
	return s == StateOpen
}
