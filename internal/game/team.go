package game

import "fmt"

// DefaultTeamNames are used when no names are configured
var DefaultTeamNames = [NumTeams]string{"Red", "Black"}

// Team is a partnership of two seats with a cumulative score
type Team struct {
	Index int
	Name  string
	Seats [2]int
	Score int
}

// NewTeams builds both teams; team 0 holds seats 0 and 2.
func NewTeams(names [NumTeams]string) [NumTeams]*Team {
	var teams [NumTeams]*Team
	for i := range teams {
		name := names[i]
		if name == "" {
			name = DefaultTeamNames[i]
		}
		teams[i] = &Team{
			Index: i,
			Name:  name,
			Seats: [2]int{i, i + 2},
		}
	}
	return teams
}

// AddPoints increases the score. Scores never decrease so non-positive
// values are ignored.
func (t *Team) AddPoints(points int) {
	if points > 0 {
		t.Score += points
	}
}

// Has reports whether seat belongs to this team
func (t *Team) Has(seat int) bool {
	return t.Seats[0] == seat || t.Seats[1] == seat
}

// Tricks sums the tricks taken by the team's players
func (t *Team) Tricks(players [NumSeats]*Player) int {
	return players[t.Seats[0]].Tricks + players[t.Seats[1]].Tricks
}

func (t *Team) String() string {
	return fmt.Sprintf("Team %s", t.Name)
}
