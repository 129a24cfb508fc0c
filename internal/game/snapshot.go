package game

import (
	"encoding/json"

	"github.com/lox/euchre/euchre"
)

// SeatSnapshot describes one seat at a point in time
type SeatSnapshot struct {
	Seat    int    `json:"seat"`
	Name    string `json:"name"`
	Team    int    `json:"team"`
	Tricks  int    `json:"tricks"`
	Alone   bool   `json:"alone,omitempty"`
	Skipped bool   `json:"skipped,omitempty"`
}

// Snapshot is a pure data view of the table after a state transition.
// It includes every hand; renderers decide what each viewer may see.
type Snapshot struct {
	Phase    Phase                   `json:"phase"`
	Dealer   int                     `json:"dealer"`
	Revealed euchre.Card             `json:"revealed"`
	Seats    [NumSeats]SeatSnapshot  `json:"seats"`
	Hands    [NumSeats][]euchre.Card `json:"hands"`
	Trump    *euchre.Trump           `json:"trump,omitempty"`
	Trick    []euchre.Play           `json:"trick,omitempty"`
	Tricks   []CompletedTrick        `json:"tricks,omitempty"`
	Scores   [NumTeams]int           `json:"scores"`
}

// Snapshot captures the current hand state
func (h *HandState) Snapshot() Snapshot {
	s := Snapshot{
		Phase:    h.phase,
		Dealer:   h.dealer,
		Revealed: h.revealed,
		Trick:    h.CurrentTrick(),
		Tricks:   h.Tricks(),
	}
	if h.trump != nil {
		trump := *h.trump
		s.Trump = &trump
	}
	for i, p := range h.players {
		s.Seats[i] = SeatSnapshot{
			Seat:    p.Seat,
			Name:    p.Name,
			Team:    p.Team,
			Tricks:  p.Tricks,
			Alone:   p.Alone,
			Skipped: p.Skipped,
		}
		s.Hands[i] = append([]euchre.Card(nil), p.Hand...)
	}
	for i, t := range h.teams {
		if t != nil {
			s.Scores[i] = t.Score
		}
	}
	return s
}

// JSON encodes the snapshot
func (s Snapshot) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
