package game

import (
	"errors"
	"fmt"
)

// Phase is a step of the hand lifecycle:
//
//	Dealing → Bidding1 → Bidding2 | Discard | Playing → Playing → Scoring → Rotate
//
// A hand where every seat passes twice ends in Redeal instead.
type Phase int

const (
	PhaseDealing Phase = iota
	PhaseBidding1
	PhaseBidding2
	PhaseDiscard
	PhasePlaying
	PhaseScoring
	PhaseRotate
	PhaseRedeal
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseDealing:
		return "dealing"
	case PhaseBidding1:
		return "bidding (round 1)"
	case PhaseBidding2:
		return "bidding (round 2)"
	case PhaseDiscard:
		return "discard"
	case PhasePlaying:
		return "playing"
	case PhaseScoring:
		return "scoring"
	case PhaseRotate:
		return "rotate"
	case PhaseRedeal:
		return "redeal"
	default:
		return "unknown"
	}
}

// IsBidding returns true during either bidding round
func (p Phase) IsBidding() bool {
	return p == PhaseBidding1 || p == PhaseBidding2
}

// IsOver returns true once the hand needs no further input
func (p Phase) IsOver() bool {
	return p == PhaseRotate || p == PhaseRedeal
}

// MarshalText encodes the phase for snapshots
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

var (
	// ErrNotYourTurn is returned when a seat acts out of turn
	ErrNotYourTurn = errors.New("not your turn")
	// ErrCardNotHeld is returned when a seat plays or discards a card it does not have
	ErrCardNotHeld = errors.New("card not in hand")
)

// PhaseError is returned when an operation is called in the wrong phase.
// It indicates the caller broke the hand's state machine contract.
type PhaseError struct {
	Op    string
	Phase Phase
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s not allowed during %s", e.Op, e.Phase)
}

// InvalidDecisionError reports a decision the rules refuse, such as calling
// the turned-down suit or playing a card that does not follow suit. The
// hand state is unchanged and the decision can be requested again.
type InvalidDecisionError struct {
	Seat   int
	Reason string
	Err    error
}

func (e *InvalidDecisionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid decision from seat %d: %s: %v", e.Seat, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid decision from seat %d: %s", e.Seat, e.Reason)
}

func (e *InvalidDecisionError) Unwrap() error {
	return e.Err
}

// IsInvalidDecision reports whether err is a recoverable invalid decision
func IsInvalidDecision(err error) bool {
	var ide *InvalidDecisionError
	return errors.As(err, &ide)
}
