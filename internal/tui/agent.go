// Package tui is the interactive table: a Bubble Tea program that renders
// rounds as they play out and feeds the player's bets and actions back into
// the engine through a channel-bridged Agent.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/session"
	"github.com/lox/blackjack/internal/statistics"
)

// Agent implements game.Agent for a human player. The session goroutine
// blocks in BetAmount and ChooseAction while the program prompts; a quit from
// the UI unblocks both with game.ErrQuit.
type Agent struct {
	program *tea.Program
	logger  *log.Logger

	bets    chan int
	actions chan game.Action
	quit    chan struct{}
}

// NewAgent creates the bridge agent. SetProgram must be called with the
// running program before the session starts prompting.
func NewAgent(logger *log.Logger) *Agent {
	return &Agent{
		logger:  logger.WithPrefix("tui"),
		bets:    make(chan int),
		actions: make(chan game.Action),
		quit:    make(chan struct{}),
	}
}

// SetProgram attaches the program prompts are sent to.
func (a *Agent) SetProgram(p *tea.Program) { a.program = p }

// BetAmount prompts for a bet and blocks until the player submits or quits.
func (a *Agent) BetAmount(bankroll int) (int, error) {
	a.program.Send(betPromptMsg{Bankroll: bankroll})
	select {
	case bet := <-a.bets:
		return bet, nil
	case <-a.quit:
		return 0, game.ErrQuit
	}
}

// ChooseAction prompts with the current hand and blocks until the player
// picks an action or quits.
func (a *Agent) ChooseAction(snap game.Snapshot, legal []game.Action) (game.Action, error) {
	a.program.Send(actionPromptMsg{Snapshot: snap, Legal: legal})
	select {
	case action := <-a.actions:
		return action, nil
	case <-a.quit:
		return game.Stand, game.ErrQuit
	}
}

// Quit unblocks any pending prompt with game.ErrQuit. Only called from the
// program's update loop.
func (a *Agent) Quit() {
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
}

// submitBet hands a bet to the waiting session. Returns false if no prompt is
// outstanding.
func (a *Agent) submitBet(bet int) bool {
	select {
	case a.bets <- bet:
		return true
	default:
		return false
	}
}

// submitAction hands an action to the waiting session.
func (a *Agent) submitAction(action game.Action) bool {
	select {
	case a.actions <- action:
		return true
	default:
		return false
	}
}

// Subscriber forwards engine events into the program so the table log updates
// as cards are dealt.
type Subscriber struct {
	program *tea.Program
}

// NewSubscriber creates an event bus subscriber bound to the program.
func NewSubscriber(p *tea.Program) *Subscriber {
	return &Subscriber{program: p}
}

// OnEvent implements game.EventSubscriber.
func (s *Subscriber) OnEvent(event game.Event) {
	s.program.Send(eventMsg{Event: event})
}

// ObserveRounds returns a session observer that forwards each settled round,
// with the post-settlement bankroll and statistics, into the program.
func ObserveRounds(p *tea.Program) session.RoundObserver {
	return func(res *game.Result, bankroll int, stats statistics.Stats) {
		p.Send(roundDoneMsg{Result: res, Bankroll: bankroll, Stats: stats})
	}
}
