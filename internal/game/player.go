package game

import (
	"github.com/lox/euchre/euchre"
)

// Table geometry
const (
	NumSeats      = 4
	NumTeams      = 2
	HandSize      = 5
	TricksPerHand = 5
)

// Player represents a seat at the table and its hand for the current deal
type Player struct {
	Seat    int
	Name    string
	Team    int
	Hand    []euchre.Card
	Tricks  int  // Tricks taken this hand
	Alone   bool // Playing without a partner this hand
	Skipped bool // Partner is going alone; sits out the hand
}

// NewPlayer creates a player at seat. Partners sit opposite each other so
// the team is the seat parity.
func NewPlayer(seat int, name string) *Player {
	return &Player{
		Seat: seat,
		Name: name,
		Team: TeamOf(seat),
	}
}

// TeamOf returns the team index for a seat
func TeamOf(seat int) int {
	return seat % NumTeams
}

// Partner returns the seat across the table
func Partner(seat int) int {
	return (seat + 2) % NumSeats
}

// Receive adds cards to the player's hand
func (p *Player) Receive(cards ...euchre.Card) {
	p.Hand = append(p.Hand, cards...)
}

// Holds reports whether the card is in the player's hand
func (p *Player) Holds(c euchre.Card) bool {
	return euchre.Contains(p.Hand, c)
}

// Remove takes a card out of the player's hand
func (p *Player) Remove(c euchre.Card) error {
	idx := euchre.IndexOf(p.Hand, c)
	if idx < 0 {
		return ErrCardNotHeld
	}
	p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
	return nil
}

// ClearHand discards every card held
func (p *Player) ClearHand() {
	p.Hand = nil
}

// IsActive returns true if the player takes part in trick play this hand
func (p *Player) IsActive() bool {
	return !p.Skipped
}

// Reset clears all per-hand state
func (p *Player) Reset() {
	p.Hand = nil
	p.Tricks = 0
	p.Alone = false
	p.Skipped = false
}

func (p *Player) String() string {
	return p.Name
}
