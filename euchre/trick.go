package euchre

// Play is a card played by a seat within a trick
type Play struct {
	Seat int  `json:"seat"`
	Card Card `json:"card"`
}

// LedSuit returns the suit a trick must follow: trump when the lead card
// is trump (including a led left bower), otherwise the lead's printed suit.
func (t Trump) LedSuit(lead Card) Suit {
	return t.EffectiveSuit(lead)
}

// LegalPlays filters hand to the cards that may be played given the cards
// already in the trick. With no lead every card is legal. Otherwise only
// cards whose effective suit matches the led suit are legal, so the left
// bower follows trump and never its printed suit. A player void in the
// led suit may play anything. The result is never empty for a non-empty hand.
func LegalPlays(hand []Card, trick []Play, trump Trump) []Card {
	if len(trick) == 0 {
		return append([]Card(nil), hand...)
	}
	led := trump.LedSuit(trick[0].Card)

	var legal []Card
	for _, c := range hand {
		if trump.EffectiveSuit(c) == led {
			legal = append(legal, c)
		}
	}
	if len(legal) == 0 {
		return append([]Card(nil), hand...)
	}
	return legal
}

// IsLegalPlay reports whether card may be played from hand
func IsLegalPlay(hand []Card, trick []Play, trump Trump, card Card) bool {
	return Contains(LegalPlays(hand, trick, trump), card)
}

// Beats reports whether challenger takes the trick from best when led is
// the suit being followed. A trump beats any plain card, trumps compare by
// effective rank, and a plain card only wins by following the led suit
// with a higher face value.
func (t Trump) Beats(challenger, best Card, led Suit) bool {
	chTrump, bestTrump := t.IsTrump(challenger), t.IsTrump(best)
	switch {
	case chTrump && bestTrump:
		return t.EffectiveRank(challenger) > t.EffectiveRank(best)
	case chTrump:
		return true
	case bestTrump:
		return false
	}

	if challenger.Suit != led {
		return false
	}
	if best.Suit != led {
		return true
	}
	return challenger.Value() > best.Value()
}

// ResolveTrick returns the winning play. The lead card starts as the best
// and each later card replaces it only if it Beats it. Resolving an empty
// trick is a programming error and panics.
func ResolveTrick(plays []Play, trump Trump) Play {
	if len(plays) == 0 {
		panic("euchre: ResolveTrick called with no plays")
	}
	led := trump.LedSuit(plays[0].Card)
	best := plays[0]
	for _, p := range plays[1:] {
		if trump.Beats(p.Card, best.Card, led) {
			best = p
		}
	}
	return best
}

// CurrentWinner returns the play currently winning an in-progress trick
// and false when nothing has been played yet.
func CurrentWinner(trick []Play, trump Trump) (Play, bool) {
	if len(trick) == 0 {
		return Play{}, false
	}
	return ResolveTrick(trick, trump), true
}
