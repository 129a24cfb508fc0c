package display

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/euchre/euchre"
)

// Styles contains all styling for terminal output
type Styles struct {
	Header     lipgloss.Style
	Banner     lipgloss.Style
	RedCard    lipgloss.Style
	BlackCard  lipgloss.Style
	Trump      lipgloss.Style
	PlayerInfo lipgloss.Style
	Reasoning  lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// ColorProfile maps a ui.color setting to a termenv profile. "auto"
// returns false so the renderer detects the profile from its output.
func ColorProfile(name string) (termenv.Profile, bool) {
	switch strings.ToLower(name) {
	case "ascii", "none", "never":
		return termenv.Ascii, true
	case "ansi":
		return termenv.ANSI, true
	case "ansi256":
		return termenv.ANSI256, true
	case "truecolor":
		return termenv.TrueColor, true
	default:
		return termenv.Ascii, false
	}
}

// NewStyles builds styles bound to a renderer for w using the named
// color profile.
func NewStyles(w io.Writer, color string) *Styles {
	r := lipgloss.NewRenderer(w)
	if profile, ok := ColorProfile(color); ok {
		r.SetColorProfile(profile)
	}
	return newStyles(r)
}

func newStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Banner: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Foreground(lipgloss.Color("#FFD700")).
			Padding(0, 2).
			Bold(true),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.Color("#C0C0C0")).
			Bold(true),
		Trump: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		PlayerInfo: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		Reasoning: r.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Card renders a card with its suit color
func (s *Styles) Card(c euchre.Card) string {
	if c.Suit.IsRed() {
		return s.RedCard.Render(c.Symbol())
	}
	return s.BlackCard.Render(c.Symbol())
}

// Cards renders cards in brackets, e.g. "[9♠ J♥]"
func (s *Styles) Cards(cards []euchre.Card) string {
	formatted := make([]string, 0, len(cards))
	for _, c := range cards {
		formatted = append(formatted, s.Card(c))
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

// Suit renders a suit symbol and name
func (s *Styles) Suit(suit euchre.Suit) string {
	style := s.BlackCard
	if suit.IsRed() {
		style = s.RedCard
	}
	return style.Render(suit.String() + " " + suit.Name())
}
