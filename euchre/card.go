package euchre

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Diamonds
	Clubs
	Hearts
)

// Suits lists the four suits in canonical order
var Suits = [4]Suit{Spades, Diamonds, Clubs, Hearts}

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	default:
		return "?"
	}
}

// Name returns the suit name, e.g. "Hearts"
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "Spades"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Hearts:
		return "Hearts"
	default:
		return "Unknown"
	}
}

// Letter returns the single-letter suit code used by ParseCard
func (s Suit) Letter() string {
	switch s {
	case Spades:
		return "s"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	case Hearts:
		return "h"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Spades && s <= Hearts
}

// IsRed returns true for Hearts and Diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Partner returns the other suit of the same color. The jack of the
// partner suit is the left bower when s is trump.
func (s Suit) Partner() Suit {
	switch s {
	case Spades:
		return Clubs
	case Clubs:
		return Spades
	case Hearts:
		return Diamonds
	case Diamonds:
		return Hearts
	default:
		return s
	}
}

// ParseSuit accepts a suit letter, symbol or name (case-insensitive)
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "♠", "spade", "spades":
		return Spades, nil
	case "d", "♦", "diamond", "diamonds":
		return Diamonds, nil
	case "c", "♣", "club", "clubs":
		return Clubs, nil
	case "h", "♥", "heart", "hearts":
		return Hearts, nil
	}
	return 0, fmt.Errorf("invalid suit: %q", s)
}

// Rank represents a card's face value. Only 9 through Ace are in a
// Euchre deck.
type Rank int

const (
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Ranks lists the six ranks from low to high
var Ranks = [6]Rank{Nine, Ten, Jack, Queen, King, Ace}

// String returns the short rank code
func (r Rank) String() string {
	switch r {
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Name returns the rank as a word ("Jack") or number ("10")
func (r Rank) Name() string {
	switch r {
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return "Unknown"
	}
}

// Valid reports whether r is a Euchre rank
func (r Rank) Valid() bool {
	return r >= Nine && r <= Ace
}

// Card is an immutable playing card. Its trump-aware rank is never
// stored on the card; see Trump.EffectiveRank.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the compact form, e.g. "Jd"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Letter()
}

// Name returns the long form, e.g. "Jack of Diamonds"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank.Name(), c.Suit.Name())
}

// Symbol returns the rank followed by the suit symbol, e.g. "J♦"
func (c Card) Symbol() string {
	return c.Rank.String() + c.Suit.String()
}

// Value returns the natural face value (9-14)
func (c Card) Value() int {
	return int(c.Rank)
}

// Valid reports whether the card belongs to a Euchre deck
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// ParseCard parses a two-character card such as "As", "Td" or "9h".
// "10" is accepted as an alias for "T".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "10") {
		s = "T" + s[2:]
	}
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	var rank Rank
	switch strings.ToUpper(s[:1]) {
	case "9":
		rank = Nine
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank in card %q", s)
	}

	suit, err := ParseSuit(s[1:])
	if err != nil {
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a concatenated string of cards, e.g. "JdTs9h"
func ParseCards(s string) ([]Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length %d", len(s))
	}
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// MustParseCard is like ParseCard but panics on error
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Contains reports whether cards holds c
func Contains(cards []Card, c Card) bool {
	return IndexOf(cards, c) >= 0
}

// IndexOf returns the index of c in cards, or -1
func IndexOf(cards []Card, c Card) int {
	for i, card := range cards {
		if card == c {
			return i
		}
	}
	return -1
}

// MarshalText encodes the card in its compact form
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes the compact form written by MarshalText
func (c *Card) UnmarshalText(b []byte) error {
	parsed, err := ParseCard(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText encodes the suit by name
func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.Name()), nil
}

// UnmarshalText accepts any form understood by ParseSuit
func (s *Suit) UnmarshalText(b []byte) error {
	parsed, err := ParseSuit(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
