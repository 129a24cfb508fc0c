package euchre

import (
	"math/rand/v2"
)

// DeckSize is the number of cards in a Euchre deck
const DeckSize = 24

// Deck represents the 24-card Euchre deck
type Deck struct {
	cards [DeckSize]Card
	next  int
	rng   *rand.Rand
}

// FullDeck returns the 24 cards in canonical order (suit-major)
func FullDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}
	d := &Deck{rng: rng}
	copy(d.cards[:], FullDeck())
	d.Shuffle()
	return d
}

// NewOrderedDeck creates an unshuffled deck dealing cards in the given
// order. The cards must be exactly the 24 distinct Euchre cards.
func NewOrderedDeck(cards []Card) (*Deck, error) {
	if err := ValidateDeck(cards); err != nil {
		return nil, err
	}
	d := &Deck{}
	copy(d.cards[:], cards)
	return d, nil
}

// Shuffle shuffles the deck using Fisher-Yates and resets the deal position.
// An ordered deck (no RNG) is only rewound.
func (d *Deck) Shuffle() {
	d.next = 0
	if d.rng == nil {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil if not enough remain
func (d *Deck) Deal(n int) []Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// DealOne deals a single card from the deck
func (d *Deck) DealOne() (Card, bool) {
	if d.next >= len(d.cards) {
		return Card{}, false
	}
	card := d.cards[d.next]
	d.next++
	return card, true
}

// Reset resets and reshuffles the deck
func (d *Deck) Reset() {
	d.Shuffle()
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// Remaining returns a copy of the undealt cards
func (d *Deck) Remaining() []Card {
	out := make([]Card, d.CardsRemaining())
	copy(out, d.cards[d.next:])
	return out
}

// ValidateDeck checks that cards is exactly the 24 distinct Euchre cards
func ValidateDeck(cards []Card) error {
	if len(cards) != DeckSize {
		return &DeckError{Reason: "wrong card count", Count: len(cards)}
	}
	seen := make(map[Card]bool, DeckSize)
	for _, c := range cards {
		if !c.Valid() {
			return &DeckError{Reason: "invalid card " + c.String(), Count: len(cards)}
		}
		if seen[c] {
			return &DeckError{Reason: "duplicate card " + c.String(), Count: len(cards)}
		}
		seen[c] = true
	}
	return nil
}

// DeckError reports a malformed card set
type DeckError struct {
	Reason string
	Count  int
}

func (e *DeckError) Error() string {
	return "invalid deck: " + e.Reason
}
