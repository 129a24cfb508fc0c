package display

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/euchre/euchre"
	"github.com/lox/euchre/internal/game"
)

// scripted feeds answers in order and counts reads
type scripted struct {
	answers []string
	reads   int
}

func (s *scripted) read(string, string) (string, error) {
	s.reads++
	if len(s.answers) == 0 {
		return "q", nil
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func newScriptedPrompter(answers ...string) (*TerminalPrompter, *scripted, *bytes.Buffer) {
	s := &scripted{answers: answers}
	var out bytes.Buffer
	styles := plainStyles()
	f := NewEventFormatter(FormattingOptions{Perspective: 0}, styles)
	p := NewTerminalPrompter(nil, &out, f, styles, quietLogger(), WithLineReader(s.read))
	return p, s, &out
}

func biddingState() game.TableState {
	return game.TableState{
		Seat:     0,
		Dealer:   3,
		Phase:    game.PhaseBidding1,
		Hand:     euchre.MustParseCards("JhJdAhKh9s"),
		Revealed: euchre.MustParseCard("Th"),
	}
}

func TestPromptOrderRetriesUnreadableAnswers(t *testing.T) {
	t.Parallel()
	p, s, out := newScriptedPrompter("maybe", "Y")

	order, err := p.PromptOrder(biddingState())
	require.NoError(t, err)
	assert.True(t, order)
	assert.Equal(t, 2, s.reads)
	assert.Contains(t, out.String(), "Error: answer y or n")
	assert.Contains(t, out.String(), "Your hand: [J♥ J♦ A♥ K♥ 9♠]")
}

func TestPromptCall(t *testing.T) {
	t.Parallel()

	p, _, _ := newScriptedPrompter("x", "d")
	suit, ok, err := p.PromptCall(biddingState())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, euchre.Diamonds, suit)

	p, _, _ = newScriptedPrompter("pass")
	_, ok, err = p.PromptCall(biddingState())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPromptPlayByNumberOrCard(t *testing.T) {
	t.Parallel()
	legal := euchre.MustParseCards("9sKs")

	p, _, out := newScriptedPrompter("7", "2", "9s")
	card, err := p.PromptPlay(biddingState(), legal)
	require.NoError(t, err)
	assert.Equal(t, legal[1], card)
	assert.Contains(t, out.String(), "choose a number from 1 to 2")

	card, err = p.PromptPlay(biddingState(), legal)
	require.NoError(t, err)
	assert.Equal(t, legal[0], card)
}

func TestPromptQuitStopsAllPrompts(t *testing.T) {
	t.Parallel()

	quits := 0
	s := &scripted{answers: []string{"quit"}}
	styles := plainStyles()
	f := NewEventFormatter(FormattingOptions{Perspective: 0}, styles)
	p := NewTerminalPrompter(nil, &bytes.Buffer{}, f, styles, quietLogger(),
		WithLineReader(s.read), WithQuitHandler(func() { quits++ }))

	_, err := p.PromptAlone(biddingState(), euchre.Hearts)
	require.ErrorIs(t, err, ErrQuit)
	_, err = p.PromptDiscard(biddingState())
	require.ErrorIs(t, err, ErrQuit)

	assert.Equal(t, 1, s.reads)
	assert.Equal(t, 1, quits)
}

func TestHumanAgentRejectsTurnedDownSuit(t *testing.T) {
	t.Parallel()
	p, _, out := newScriptedPrompter("h", "s")
	agent := game.NewHumanAgent(p, quietLogger())

	state := biddingState()
	state.Phase = game.PhaseBidding2
	d := agent.DecideCall(state)
	assert.Equal(t, game.Call, d.Action)
	assert.Equal(t, euchre.Spades, d.Suit)
	assert.Contains(t, out.String(), "Hearts was turned down")
}

func TestParseAnswers(t *testing.T) {
	t.Parallel()

	yes, err := ParseYesNo(" yes ")
	require.NoError(t, err)
	assert.True(t, yes)
	_, err = ParseYesNo("later")
	assert.Error(t, err)

	card, err := ParseCardAnswer("Ad", euchre.MustParseCards("9s"))
	require.NoError(t, err, "cards outside the options are left for the caller to refuse")
	assert.Equal(t, euchre.MustParseCard("Ad"), card)
	_, err = ParseCardAnswer("0", euchre.MustParseCards("9s"))
	assert.Error(t, err)
	_, err = ParseCardAnswer("joker", nil)
	assert.Error(t, err)
}

func TestPromptModel(t *testing.T) {
	t.Parallel()

	var m tea.Model = newPromptModel("Play? ", "hint", plainStyles())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Jh")})
	assert.Contains(t, m.View(), "Jh")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	pm := m.(promptModel)
	assert.True(t, pm.done)
	assert.Equal(t, "Jh", pm.answer)
	assert.Empty(t, pm.View())

	m, _ = newPromptModel("Play? ", "", plainStyles()).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.(promptModel).aborted)
}
