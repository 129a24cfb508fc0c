// Package euchre implements the card model for the game of Euchre.
//
// Cards are immutable (rank, suit) values from the 24-card deck (9 through
// Ace in four suits). A card's strength depends on the trump context of the
// hand, so it is never stored on the card. Instead a Trump value computes
// effective suits and ranks on demand:
//
//	trump := euchre.NewTrump(euchre.Hearts, 0)
//	trump.EffectiveRank(euchre.MustParseCard("Jh")) // 21, right bower
//	trump.EffectiveRank(euchre.MustParseCard("Jd")) // 20, left bower
//	trump.EffectiveSuit(euchre.MustParseCard("Jd")) // Hearts
//
// # Tricks
//
// LegalPlays filters a hand against the cards already played in a trick and
// ResolveTrick picks the winner:
//
//	legal := euchre.LegalPlays(hand, trick, trump)
//	winner := euchre.ResolveTrick(trick, trump)
//
// # Deterministic Testing
//
// Decks take an explicit RNG so deals can be reproduced:
//
//	d := euchre.NewDeck(randutil.New(42))
//
// or an exact card order via NewOrderedDeck.
package euchre
