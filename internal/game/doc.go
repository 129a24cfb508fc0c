// Package game implements the Euchre hand lifecycle and game loop.
//
// HandState is the state machine for a single deal. Each transition checks
// the phase and returns a *PhaseError when called out of order, or an
// *InvalidDecisionError when the rules refuse the decision (calling the
// turned-down suit, failing to follow suit). Refused decisions leave the
// state untouched so they can simply be asked for again.
//
// # Basic Usage
//
// Drive a hand by hand:
//
//	g := game.NewGame(randutil.New(42), [4]string{"You", "Cow", "Dog", "Cat"})
//	h := g.NewHand()
//	_ = h.Deal()
//	_ = h.Pass(h.CurrentSeat())
//	_ = h.OrderUp(h.CurrentSeat(), false)
//	_ = h.Discard(h.Dealer(), h.Player(h.Dealer()).Hand[0])
//	for h.Phase() == game.PhasePlaying {
//	    seat := h.CurrentSeat()
//	    _, _ = h.Play(seat, h.LegalPlays(seat)[0])
//	}
//	score, _ := h.Score()
//
// Or let the engine run the whole game against four agents:
//
//	engine := game.NewGameEngine(g, agents, logger)
//	engine.GetEventBus().Subscribe(renderer)
//	result, err := engine.PlayGame(ctx)
//
// # Deterministic Testing
//
// Every source of randomness is injected. A fixed seed reproduces a game
// and WithDeck or WithDeckSource fixes the exact deal:
//
//	deck, _ := euchre.NewOrderedDeck(cards)
//	h := game.NewHand(rng, players, teams, game.NewTurnOrder(0), game.WithDeck(deck))
package game
