package display

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/euchre/euchre"
	"github.com/lox/euchre/internal/game"
)

// ErrQuit is returned by every prompt once the player has quit
var ErrQuit = errors.New("player quit")

// LineReader reads one answer to question
type LineReader func(question, hint string) (string, error)

// TerminalPrompter asks the human player for decisions on the terminal.
// Answers that cannot be parsed are asked again here; answers the rules
// refuse come back through Reject.
type TerminalPrompter struct {
	out       io.Writer
	formatter *EventFormatter
	styles    *Styles
	logger    *log.Logger
	read      LineReader
	onQuit    func()
	quit      bool
}

var _ game.Prompter = (*TerminalPrompter)(nil)

// PrompterOption configures a TerminalPrompter
type PrompterOption func(*TerminalPrompter)

// WithLineReader replaces the bubbletea input, e.g. for scripted input
func WithLineReader(read LineReader) PrompterOption {
	return func(p *TerminalPrompter) {
		p.read = read
	}
}

// WithQuitHandler is called once when the player quits
func WithQuitHandler(fn func()) PrompterOption {
	return func(p *TerminalPrompter) {
		p.onQuit = fn
	}
}

// NewTerminalPrompter creates a prompter reading from in and writing to out
func NewTerminalPrompter(in io.Reader, out io.Writer, formatter *EventFormatter, styles *Styles, logger *log.Logger, opts ...PrompterOption) *TerminalPrompter {
	if logger == nil {
		logger = log.Default()
	}
	p := &TerminalPrompter{
		out:       out,
		formatter: formatter,
		styles:    styles,
		logger:    logger.WithPrefix("prompt"),
	}
	p.read = p.teaReader(in, out)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PromptOrder asks whether to order up the revealed card
func (p *TerminalPrompter) PromptOrder(state game.TableState) (bool, error) {
	verb := "Order up"
	if state.IsDealer() {
		verb = "Pick up"
	}
	question := fmt.Sprintf("%s the %s? ", verb, p.styles.Card(state.Revealed))
	return p.askYesNo(state, question)
}

// PromptCall asks for a trump suit or a pass
func (p *TerminalPrompter) PromptCall(state game.TableState) (euchre.Suit, bool, error) {
	question := fmt.Sprintf("%s was turned down. Name trump or pass: ", state.Revealed.Suit.Name())
	for attempt := 0; attempt < game.MaxPromptAttempts; attempt++ {
		answer, err := p.ask(state, question, "s/d/c/h to name a suit, p to pass, q to quit")
		if err != nil {
			return 0, false, err
		}
		suit, ok, err := ParseCallAnswer(answer)
		if err == nil {
			return suit, ok, nil
		}
		p.Reject(err.Error())
	}
	return 0, false, errTooManyAnswers
}

// PromptAlone asks whether to go alone
func (p *TerminalPrompter) PromptAlone(state game.TableState, suit euchre.Suit) (bool, error) {
	return p.askYesNo(state, fmt.Sprintf("Go alone with %s as trump? ", p.styles.Suit(suit)))
}

// PromptDiscard asks the dealer which card to drop
func (p *TerminalPrompter) PromptDiscard(state game.TableState) (euchre.Card, error) {
	return p.askCard(state, "Discard which card? ", state.Hand)
}

// PromptPlay asks for a card to play
func (p *TerminalPrompter) PromptPlay(state game.TableState, legal []euchre.Card) (euchre.Card, error) {
	return p.askCard(state, "Play which card? ", legal)
}

// Reject tells the player why their answer was refused
func (p *TerminalPrompter) Reject(reason string) {
	fmt.Fprintln(p.out, p.styles.Error.Render("Error: "+reason))
}

var errTooManyAnswers = errors.New("too many unreadable answers")

func (p *TerminalPrompter) askYesNo(state game.TableState, question string) (bool, error) {
	for attempt := 0; attempt < game.MaxPromptAttempts; attempt++ {
		answer, err := p.ask(state, question, "y or n, q to quit")
		if err != nil {
			return false, err
		}
		yes, err := ParseYesNo(answer)
		if err == nil {
			return yes, nil
		}
		p.Reject(err.Error())
	}
	return false, errTooManyAnswers
}

func (p *TerminalPrompter) askCard(state game.TableState, question string, options []euchre.Card) (euchre.Card, error) {
	hint := numberedCards(p.styles, options) + "  (number or card, q to quit)"
	for attempt := 0; attempt < game.MaxPromptAttempts; attempt++ {
		answer, err := p.ask(state, question, hint)
		if err != nil {
			return euchre.Card{}, err
		}
		card, err := ParseCardAnswer(answer, options)
		if err == nil {
			return card, nil
		}
		p.Reject(err.Error())
	}
	return euchre.Card{}, errTooManyAnswers
}

func (p *TerminalPrompter) ask(state game.TableState, question, hint string) (string, error) {
	if p.quit {
		return "", ErrQuit
	}
	fmt.Fprintln(p.out, p.formatter.FormatTable(state))

	answer, err := p.read(question, hint)
	if err == nil && isQuit(answer) {
		err = ErrQuit
	}
	if errors.Is(err, ErrQuit) {
		p.quit = true
		p.logger.Info("Player quit")
		if p.onQuit != nil {
			p.onQuit()
		}
	}
	return answer, err
}

func isQuit(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "q", "quit", "exit":
		return true
	}
	return false
}

// ParseYesNo parses y/yes/n/no answers
func ParseYesNo(answer string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	case "n", "no", "p", "pass":
		return false, nil
	default:
		return false, fmt.Errorf("answer y or n, not %q", answer)
	}
}

// ParseCallAnswer parses a suit to name, or ok=false for a pass
func ParseCallAnswer(answer string) (euchre.Suit, bool, error) {
	a := strings.ToLower(strings.TrimSpace(answer))
	if a == "p" || a == "pass" || a == "" {
		return 0, false, nil
	}
	suit, err := euchre.ParseSuit(a)
	if err != nil {
		return 0, false, fmt.Errorf("%q is not a suit", answer)
	}
	return suit, true, nil
}

// ParseCardAnswer accepts a 1-based index into options or a card such as
// "Jh". A card outside options is returned as-is so the caller can say
// why it was refused.
func ParseCardAnswer(answer string, options []euchre.Card) (euchre.Card, error) {
	a := strings.TrimSpace(answer)
	if n, err := strconv.Atoi(a); err == nil {
		if n < 1 || n > len(options) {
			return euchre.Card{}, fmt.Errorf("choose a number from 1 to %d", len(options))
		}
		return options[n-1], nil
	}
	card, err := euchre.ParseCard(a)
	if err != nil {
		return euchre.Card{}, fmt.Errorf("%q is not a card", answer)
	}
	return card, nil
}

func numberedCards(styles *Styles, cards []euchre.Card) string {
	parts := make([]string, 0, len(cards))
	for i, c := range cards {
		parts = append(parts, fmt.Sprintf("%d) %s", i+1, styles.Card(c)))
	}
	return strings.Join(parts, " ")
}

// teaReader runs a one-line bubbletea program per question
func (p *TerminalPrompter) teaReader(in io.Reader, out io.Writer) LineReader {
	return func(question, hint string) (string, error) {
		var opts []tea.ProgramOption
		if in != nil {
			opts = append(opts, tea.WithInput(in))
		}
		if out != nil {
			opts = append(opts, tea.WithOutput(out))
		}

		final, err := tea.NewProgram(newPromptModel(question, hint, p.styles), opts...).Run()
		if err != nil {
			return "", fmt.Errorf("prompt failed: %w", err)
		}
		m := final.(promptModel)
		if m.aborted {
			return "", ErrQuit
		}
		return m.answer, nil
	}
}

// promptModel is the Bubble Tea model for a single answer
type promptModel struct {
	input   textinput.Model
	hint    string
	hintSty lipgloss.Style
	answer  string
	done    bool
	aborted bool
}

func newPromptModel(question, hint string, styles *Styles) promptModel {
	ti := textinput.New()
	ti.Prompt = question
	ti.PromptStyle = styles.Success
	ti.CharLimit = 16
	ti.Focus()
	return promptModel{input: ti, hint: hint, hintSty: styles.Info}
}

// Init initializes the prompt
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses; enter submits, ctrl+c and esc quit
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.answer = strings.TrimSpace(m.input.Value())
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt
func (m promptModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return m.input.View() + "\n" + m.hintSty.Render(m.hint) + "\n"
}
