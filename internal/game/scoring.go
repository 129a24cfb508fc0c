package game

import (
	"fmt"

	"github.com/lox/euchre/euchre"
)

// Points awarded per hand outcome
const (
	PointsMade      = 1 // makers take 3 or 4 tricks
	PointsMarch     = 2 // makers take all 5
	PointsLoneMarch = 4 // lone maker takes all 5
	PointsEuchre    = 2 // defenders hold makers to 2 or fewer

	// WinningScore is the default game threshold
	WinningScore = 10
)

// ScoreKind classifies a hand outcome
type ScoreKind int

const (
	ScoreMade ScoreKind = iota
	ScoreMarch
	ScoreLoneMarch
	ScoreEuchred
)

func (k ScoreKind) String() string {
	switch k {
	case ScoreMade:
		return "made"
	case ScoreMarch:
		return "march"
	case ScoreLoneMarch:
		return "lone march"
	case ScoreEuchred:
		return "euchred"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind for snapshots
func (k ScoreKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// HandScore is the outcome of a scored hand
type HandScore struct {
	Maker       int       `json:"maker"` // team that named trump
	MakerTricks int       `json:"maker_tricks"`
	Alone       bool      `json:"alone"`
	Team        int       `json:"team"` // team awarded the points
	Points      int       `json:"points"`
	Kind        ScoreKind `json:"kind"`
}

func (s HandScore) String() string {
	return fmt.Sprintf("team %d %s (%d tricks): team %d +%d", s.Maker, s.Kind, s.MakerTricks, s.Team, s.Points)
}

// ScoreHand decides who scores for a finished hand. It only reads trick
// counts; callers apply the points. Scoring a hand that has not played all
// five tricks is a contract violation and panics.
func ScoreHand(players [NumSeats]*Player, trump euchre.Trump) HandScore {
	var tricks [NumTeams]int
	total := 0
	for _, p := range players {
		tricks[p.Team] += p.Tricks
		total += p.Tricks
	}
	if total != TricksPerHand {
		panic(fmt.Sprintf("game: scoring hand with %d tricks", total))
	}

	maker := trump.Maker
	score := HandScore{
		Maker:       maker,
		MakerTricks: tricks[maker],
		Alone:       trump.IsAlone(),
		Team:        maker,
	}
	switch {
	case tricks[maker] < 3:
		score.Team = 1 - maker
		score.Points = PointsEuchre
		score.Kind = ScoreEuchred
	case tricks[maker] < TricksPerHand:
		score.Points = PointsMade
		score.Kind = ScoreMade
	case score.Alone:
		score.Points = PointsLoneMarch
		score.Kind = ScoreLoneMarch
	default:
		score.Points = PointsMarch
		score.Kind = ScoreMarch
	}
	return score
}

// CheckWinner returns the first team whose score meets threshold. It has
// no side effects so repeated calls agree.
func CheckWinner(teams [NumTeams]*Team, threshold int) (int, bool) {
	for i, t := range teams {
		if t.Score >= threshold {
			return i, true
		}
	}
	return 0, false
}
