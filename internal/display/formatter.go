package display

import (
	"fmt"
	"strings"

	"github.com/lox/euchre/euchre"
	"github.com/lox/euchre/internal/game"
)

// FormattingOptions controls how events are formatted
type FormattingOptions struct {
	ShowReasoning bool                  // Include bot reasoning after bids
	Perspective   int                   // Seat whose hand is shown, or euchre.NoSeat
	TeamNames     [game.NumTeams]string // Defaults to game.DefaultTeamNames
}

// EventFormatter turns game events into display lines
type EventFormatter struct {
	opts   FormattingOptions
	styles *Styles
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions, styles *Styles) *EventFormatter {
	for i, name := range opts.TeamNames {
		if name == "" {
			opts.TeamNames[i] = game.DefaultTeamNames[i]
		}
	}
	return &EventFormatter{opts: opts, styles: styles}
}

// Format returns the lines describing event. Unknown events yield nothing.
func (ef *EventFormatter) Format(event game.GameEvent) []string {
	switch e := event.(type) {
	case game.HandStartEvent:
		return ef.FormatHandStart(e)
	case game.BidEvent:
		return []string{ef.FormatBid(e)}
	case game.TrumpSetEvent:
		return []string{ef.FormatTrumpSet(e)}
	case game.RedealEvent:
		return []string{ef.FormatRedeal(e)}
	case game.DiscardEvent:
		return []string{ef.FormatDiscard(e)}
	case game.CardPlayedEvent:
		return []string{ef.FormatCardPlayed(e)}
	case game.TrickCompleteEvent:
		return []string{ef.FormatTrickComplete(e)}
	case game.HandEndEvent:
		return ef.FormatHandEnd(e)
	case game.GameEndEvent:
		return ef.FormatGameEnd(e)
	default:
		return nil
	}
}

// FormatHandStart announces the deal and shows the perspective seat's hand
func (ef *EventFormatter) FormatHandStart(e game.HandStartEvent) []string {
	state := e.State()
	lines := []string{
		"",
		ef.styles.Header.Render(fmt.Sprintf("Hand #%d", e.Hand)),
		fmt.Sprintf("%s. Turned up: %s", ef.subject(state, e.Dealer, "deal"), ef.styles.Card(e.Revealed)),
	}
	if seat := ef.opts.Perspective; seat >= 0 && seat < game.NumSeats {
		lines = append(lines, fmt.Sprintf("Your hand: %s", ef.styles.Cards(state.Hands[seat])))
	}
	return lines
}

// FormatBid formats a bid, with reasoning when enabled
func (ef *EventFormatter) FormatBid(e game.BidEvent) string {
	name := ef.name(e.State(), e.Bid.Seat)

	var text string
	switch e.Bid.Action {
	case game.OrderUp:
		text = fmt.Sprintf("%s: orders up %s", name, ef.styles.Card(e.State().Revealed))
	case game.Call:
		text = fmt.Sprintf("%s: calls %s", name, ef.styles.Suit(e.Bid.Suit))
	default:
		text = fmt.Sprintf("%s: passes", name)
	}
	if e.Bid.Alone {
		text += ef.styles.Warning.Render(" and goes alone")
	}

	if ef.opts.ShowReasoning && e.Reasoning != "" && e.Bid.Seat != ef.opts.Perspective {
		text += " " + ef.styles.Reasoning.Render("("+e.Reasoning+")")
	}
	return text
}

// FormatTrumpSet names trump and the team that made it
func (ef *EventFormatter) FormatTrumpSet(e game.TrumpSetEvent) string {
	text := fmt.Sprintf("Trump is %s, made by %s for team %s",
		ef.styles.Trump.Render(e.Trump.Suit.String()+" "+e.Trump.Suit.Name()),
		ef.name(e.State(), e.Seat),
		ef.opts.TeamNames[game.TeamOf(e.Seat)])
	if e.Trump.IsAlone() {
		text += ", " + ef.subject(e.State(), game.Partner(e.Trump.Alone), "sit out")
	}
	return text
}

// FormatRedeal reports an all-pass hand
func (ef *EventFormatter) FormatRedeal(e game.RedealEvent) string {
	next := (e.Dealer + 1) % game.NumSeats
	return ef.styles.Warning.Render(fmt.Sprintf("Everyone passed on %s. %s again.",
		e.TurnedDown.Suit.Name(), ef.subject(e.State(), next, "deal")))
}

// FormatDiscard reports the dealer picking up; the discard stays hidden
func (ef *EventFormatter) FormatDiscard(e game.DiscardEvent) string {
	discards := "discards"
	if e.Seat == ef.opts.Perspective {
		discards = "discard"
	}
	return fmt.Sprintf("%s %s and %s", ef.subject(e.State(), e.Seat, "pick up"), ef.styles.Card(e.State().Revealed), discards)
}

// FormatCardPlayed formats a single card played
func (ef *EventFormatter) FormatCardPlayed(e game.CardPlayedEvent) string {
	return fmt.Sprintf("%s: plays %s", ef.name(e.State(), e.Play.Seat), ef.styles.Card(e.Play.Card))
}

// FormatTrickComplete names the trick winner
func (ef *EventFormatter) FormatTrickComplete(e game.TrickCompleteEvent) string {
	w := e.Trick.Winner
	return ef.styles.Success.Render(fmt.Sprintf("%s trick %d with %s",
		ef.subject(e.State(), w.Seat, "take"), e.Trick.Number, w.Card.Symbol()))
}

// FormatHandEnd describes the hand result and the running score
func (ef *EventFormatter) FormatHandEnd(e game.HandEndEvent) []string {
	s := e.Score
	maker := ef.opts.TeamNames[s.Maker]

	var result string
	switch s.Kind {
	case game.ScoreEuchred:
		result = fmt.Sprintf("Team %s euchred team %s with %d tricks", ef.opts.TeamNames[s.Team], maker, game.TricksPerHand-s.MakerTricks)
	case game.ScoreLoneMarch:
		result = fmt.Sprintf("Team %s marched alone", maker)
	case game.ScoreMarch:
		result = fmt.Sprintf("Team %s marched", maker)
	default:
		result = fmt.Sprintf("Team %s made it with %d tricks", maker, s.MakerTricks)
	}

	return []string{
		"",
		ef.styles.Success.Render(fmt.Sprintf("%s: +%d", result, s.Points)),
		ef.FormatScores(e.Scores),
	}
}

// FormatGameEnd congratulates the winning team
func (ef *EventFormatter) FormatGameEnd(e game.GameEndEvent) []string {
	return []string{
		"",
		ef.FormatScores(e.Scores),
		ef.styles.Banner.Render(Congratulations(ef.opts.TeamNames[e.Winner], teamMembers(e.State(), e.Winner))),
	}
}

// FormatScores renders the running score line
func (ef *EventFormatter) FormatScores(scores [game.NumTeams]int) string {
	parts := make([]string, 0, game.NumTeams)
	for i, score := range scores {
		parts = append(parts, fmt.Sprintf("%s %d", ef.opts.TeamNames[i], score))
	}
	return ef.styles.PlayerInfo.Render("Score: " + strings.Join(parts, ", "))
}

// FormatTable summarizes a decision state for the human prompt
func (ef *EventFormatter) FormatTable(state game.TableState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your hand: %s", ef.styles.Cards(state.Hand))
	if state.Trump != nil {
		fmt.Fprintf(&b, "  Trump: %s", ef.styles.Trump.Render(state.Trump.Suit.String()+" "+state.Trump.Suit.Name()))
	}
	if len(state.Trick) > 0 {
		played := make([]euchre.Card, 0, len(state.Trick))
		for _, p := range state.Trick {
			played = append(played, p.Card)
		}
		fmt.Fprintf(&b, "  Trick: %s", ef.styles.Cards(played))
	}
	return b.String()
}

func (ef *EventFormatter) name(state game.Snapshot, seat int) string {
	if seat < 0 || seat >= game.NumSeats {
		return "Nobody"
	}
	if name := state.Seats[seat].Name; name != "" {
		return name
	}
	return fmt.Sprintf("Seat %d", seat)
}

// subject starts a sentence about seat. The perspective seat is addressed
// as "You"; verb is given in that form.
func (ef *EventFormatter) subject(state game.Snapshot, seat int, verb string) string {
	if seat == ef.opts.Perspective {
		return "You " + verb
	}
	first, rest, _ := strings.Cut(verb, " ")
	s := ef.name(state, seat) + " " + first + "s"
	if rest != "" {
		s += " " + rest
	}
	return s
}

func teamMembers(state game.Snapshot, team int) []string {
	var names []string
	for _, s := range state.Seats {
		if s.Team == team {
			names = append(names, s.Name)
		}
	}
	return names
}

// Banner is the title line shown when a game starts
func Banner() string {
	return "Welcome to the classic card game of Euchre!"
}

// Congratulations announces the winning team and its players
func Congratulations(team string, players []string) string {
	msg := fmt.Sprintf("Team %s HAS WON THE GAME!", team)
	if len(players) > 0 {
		msg += " CONGRATULATIONS " + strings.Join(players, " and ") + "!"
	}
	return msg
}
