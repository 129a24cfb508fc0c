package statistics

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/lox/euchre/internal/fileutil"
	"github.com/lox/euchre/internal/game"
)

// TeamStats tracks one partnership across games
type TeamStats struct {
	Wins       int `json:"wins"`
	Points     int `json:"points"`
	Made       int `json:"made"`        // hands this team named trump
	MadeScored int `json:"made_scored"` // of those, hands not euchred
	Euchred    int `json:"euchred"`     // times this team euchred the makers
	Marches    int `json:"marches"`
	LoneTries  int `json:"lone_tries"`
}

// Statistics aggregates simulated games
type Statistics struct {
	Games       int                      `json:"games"`
	Hands       int                      `json:"hands"`
	Redeals     int                      `json:"redeals"`
	Euchres     int                      `json:"euchres"`
	Marches     int                      `json:"marches"`
	LoneMarches int                      `json:"lone_marches"`
	Teams       [game.NumTeams]TeamStats `json:"teams"`

	// Margins holds team 0's final score minus team 1's, one per game
	Margins []float64 `json:"-"`
	SumM    float64   `json:"-"`
	SumM2   float64   `json:"-"` // Sum of squares for variance calculation
}

// Add incorporates a finished game
func (s *Statistics) Add(result *game.GameResult) {
	s.Games++
	s.Hands += len(result.Hands)
	s.Redeals += result.Redeals
	s.Euchres += result.Euchres
	s.Marches += result.Marches
	s.LoneMarches += result.LoneMarches
	s.Teams[result.Winner].Wins++

	for _, h := range result.Hands {
		score := h.Score
		maker := &s.Teams[score.Maker]
		maker.Made++
		if score.Alone {
			maker.LoneTries++
		}
		s.Teams[score.Team].Points += score.Points

		switch score.Kind {
		case game.ScoreEuchred:
			s.Teams[score.Team].Euchred++
		case game.ScoreMarch, game.ScoreLoneMarch:
			maker.Marches++
			maker.MadeScored++
		default:
			maker.MadeScored++
		}
	}

	margin := float64(result.Scores[0] - result.Scores[1])
	s.Margins = append(s.Margins, margin)
	s.SumM += margin
	s.SumM2 += margin * margin
}

// WinRate returns the fraction of games won by team
func (s *Statistics) WinRate(team int) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Teams[team].Wins) / float64(s.Games)
}

// MakerSuccessRate returns how often team scored after naming trump
func (s *Statistics) MakerSuccessRate(team int) float64 {
	t := s.Teams[team]
	if t.Made == 0 {
		return 0
	}
	return float64(t.MadeScored) / float64(t.Made)
}

// Mean returns the mean final margin of team 0 over team 1
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumM / float64(s.Games)
}

// Variance returns the sample variance of the margins
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumM2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of the margins
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	margin := 1.96 * s.StdError()
	return s.Mean() - margin, s.Mean() + margin
}

// Median returns the median margin
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the margin at percentile p (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Margins) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Margins))
	copy(sorted, s.Margins)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the tallies agree with each other
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Margins) != s.Games {
		return fmt.Errorf("margins length (%d) does not match games count (%d)", len(s.Margins), s.Games)
	}
	if wins := s.Teams[0].Wins + s.Teams[1].Wins; wins != s.Games {
		return fmt.Errorf("team wins (%d) do not match games count (%d)", wins, s.Games)
	}
	if made := s.Teams[0].Made + s.Teams[1].Made; made != s.Hands {
		return fmt.Errorf("hands with a maker (%d) do not match hands count (%d)", made, s.Hands)
	}
	euchred := s.Teams[0].Euchred + s.Teams[1].Euchred
	if euchred != s.Euchres {
		return fmt.Errorf("euchres by team (%d) do not match euchres (%d)", euchred, s.Euchres)
	}
	if marches := s.Teams[0].Marches + s.Teams[1].Marches; marches != s.Marches+s.LoneMarches {
		return fmt.Errorf("marches by team (%d) do not match marches (%d)", marches, s.Marches+s.LoneMarches)
	}
	return nil
}

// Report is the JSON document written after a simulation
type Report struct {
	Strategies [game.NumSeats]string  `json:"strategies"`
	Seed       int64                  `json:"seed"`
	Statistics *Statistics            `json:"statistics"`
	WinRate    [game.NumTeams]float64 `json:"win_rate"`
	MakerRate  [game.NumTeams]float64 `json:"maker_success_rate"`
	MeanMargin float64                `json:"mean_margin"`
	CI95       [2]float64             `json:"ci95"`
}

// NewReport builds a report for stats
func NewReport(stats *Statistics, strategies [game.NumSeats]string, seed int64) Report {
	low, high := stats.ConfidenceInterval95()
	r := Report{
		Strategies: strategies,
		Seed:       seed,
		Statistics: stats,
		MeanMargin: stats.Mean(),
		CI95:       [2]float64{low, high},
	}
	for team := range game.NumTeams {
		r.WinRate[team] = stats.WinRate(team)
		r.MakerRate[team] = stats.MakerSuccessRate(team)
	}
	return r
}

// WriteFile writes the report atomically as JSON
func (r Report) WriteFile(filename string) error {
	return fileutil.WriteJSONAtomic(filename, r, 0o644)
}

// ReadReport loads a report written by WriteFile
func ReadReport(filename string) (Report, error) {
	var r Report
	data, err := os.ReadFile(filename)
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("decode %s: %w", filename, err)
	}
	return r, nil
}
