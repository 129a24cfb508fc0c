package display

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/euchre/euchre"
	"github.com/lox/euchre/internal/game"
)

// Renderer prints game events as they are published. It pauses after
// each bot bid or card so a person can follow the table; the engine
// itself never waits.
type Renderer struct {
	out       io.Writer
	formatter *EventFormatter
	logger    *log.Logger
	clock     quartz.Clock
	delay     time.Duration
	human     int
}

var _ game.EventSubscriber = (*Renderer)(nil)

// RendererOption configures a Renderer
type RendererOption func(*Renderer)

// WithClock sets the clock used for bot pauses
func WithClock(clock quartz.Clock) RendererOption {
	return func(r *Renderer) {
		r.clock = clock
	}
}

// WithDelay sets the pause after each bot decision
func WithDelay(d time.Duration) RendererOption {
	return func(r *Renderer) {
		r.delay = d
	}
}

// WithHumanSeat marks the seat whose decisions are not followed by a pause
func WithHumanSeat(seat int) RendererOption {
	return func(r *Renderer) {
		r.human = seat
	}
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer, formatter *EventFormatter, logger *log.Logger, opts ...RendererOption) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	r := &Renderer{
		out:       out,
		formatter: formatter,
		logger:    logger.WithPrefix("display"),
		clock:     quartz.NewReal(),
		human:     euchre.NoSeat,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnEvent implements game.EventSubscriber
func (r *Renderer) OnEvent(event game.GameEvent) {
	for _, line := range r.formatter.Format(event) {
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			r.logger.Warn("Failed to write event", "event", event.EventType(), "error", err)
			return
		}
	}

	if seat, ok := decisionSeat(event); ok && seat != r.human {
		r.pause()
	}
}

func (r *Renderer) pause() {
	if r.delay <= 0 {
		return
	}
	timer := r.clock.NewTimer(r.delay, "display", "pause")
	defer timer.Stop()
	<-timer.C
}

func decisionSeat(event game.GameEvent) (int, bool) {
	switch e := event.(type) {
	case game.BidEvent:
		return e.Bid.Seat, true
	case game.CardPlayedEvent:
		return e.Play.Seat, true
	default:
		return 0, false
	}
}
