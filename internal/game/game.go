package game

import (
	"math/rand/v2"

	"github.com/lox/euchre/euchre"
	"github.com/lox/euchre/internal/gameid"
)

// Game holds everything that persists across hands: seats, team scores and
// the dealer rotation.
type Game struct {
	ID           string
	Players      [NumSeats]*Player
	Teams        [NumTeams]*Team
	Turns        *TurnOrder
	WinningScore int

	HandsPlayed int
	Redeals     int

	rng        *rand.Rand
	deckSource func() *euchre.Deck
}

// GameOption configures a Game during creation
type GameOption func(*gameConfig)

type gameConfig struct {
	winningScore int
	dealer       int
	teamNames    [NumTeams]string
	deckSource   func() *euchre.Deck
	id           string
}

// WithWinningScore sets the score that ends the game
func WithWinningScore(score int) GameOption {
	return func(c *gameConfig) {
		c.winningScore = score
	}
}

// WithDealer sets the first dealer
func WithDealer(seat int) GameOption {
	return func(c *gameConfig) {
		c.dealer = seat
	}
}

// WithTeamNames overrides the default team names
func WithTeamNames(names [NumTeams]string) GameOption {
	return func(c *gameConfig) {
		c.teamNames = names
	}
}

// WithDeckSource supplies the deck for every deal, typically a sequence of
// ordered decks from tests. Returning nil falls back to a shuffled deck.
func WithDeckSource(source func() *euchre.Deck) GameOption {
	return func(c *gameConfig) {
		c.deckSource = source
	}
}

// WithID sets the game ID instead of generating one
func WithID(id string) GameOption {
	return func(c *gameConfig) {
		c.id = id
	}
}

// NewGame seats four players. Seats 0 and 2 play seats 1 and 3.
func NewGame(rng *rand.Rand, names [NumSeats]string, opts ...GameOption) *Game {
	if rng == nil {
		panic("rng is required for game creation")
	}

	cfg := &gameConfig{
		winningScore: WinningScore,
		teamNames:    DefaultTeamNames,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.winningScore <= 0 {
		cfg.winningScore = WinningScore
	}
	if cfg.dealer < 0 || cfg.dealer >= NumSeats {
		panic("dealer seat out of range")
	}
	if cfg.id == "" {
		cfg.id = gameid.NewGenerator(nil, rng).Generate()
	}

	g := &Game{
		ID:           cfg.id,
		Teams:        NewTeams(cfg.teamNames),
		Turns:        NewTurnOrder(cfg.dealer),
		WinningScore: cfg.winningScore,
		rng:          rng,
		deckSource:   cfg.deckSource,
	}
	for seat, name := range names {
		g.Players[seat] = NewPlayer(seat, name)
	}
	return g
}

// NewHand starts a hand with the current dealer
func (g *Game) NewHand() *HandState {
	opts := []HandOption{WithTarget(g.WinningScore)}
	if g.deckSource != nil {
		if deck := g.deckSource(); deck != nil {
			opts = append(opts, WithDeck(deck))
		}
	}
	return NewHand(g.rng, g.Players, g.Teams, g.Turns, opts...)
}

// Snapshot describes the table between hands: seats, names and scores
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:  PhaseRotate,
		Dealer: g.Turns.Dealer(),
		Scores: g.Scores(),
	}
	for i, p := range g.Players {
		s.Seats[i] = SeatSnapshot{
			Seat:    p.Seat,
			Name:    p.Name,
			Team:    p.Team,
			Tricks:  p.Tricks,
			Alone:   p.Alone,
			Skipped: p.Skipped,
		}
	}
	return s
}

// Winner returns the winning team once the game is over
func (g *Game) Winner() (int, bool) {
	return CheckWinner(g.Teams, g.WinningScore)
}

// Scores returns both team scores
func (g *Game) Scores() [NumTeams]int {
	return [NumTeams]int{g.Teams[0].Score, g.Teams[1].Score}
}
