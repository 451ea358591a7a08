// Package session owns everything that outlives a single round: the
// bankroll, cumulative statistics, and the persistence hook. It drives rounds
// through the engine and is the only place settlement results are applied.
package session

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/store"
)

// statsInterval is how many settled rounds pass between stats log lines.
const statsInterval = 5

// Session plays rounds against a single bankroll until the player quits or
// goes broke. Abandoned rounds are void: the bankroll and statistics are only
// touched by settled results.
type Session struct {
	logger *log.Logger
	clock  quartz.Clock
	store  store.BankrollStore
	agent  game.Agent
	bus    game.EventBus
	rng    *rand.Rand

	bankroll  int
	stats     statistics.Stats
	rounds    int
	startedAt time.Time
	observer  RoundObserver
}

// Option configures a Session.
type Option func(*Session)

// WithClock injects a clock, real or mock.
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// WithRNG injects the RNG used to shuffle each round's shoe.
func WithRNG(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithEventBus injects a shared event bus so presentation layers can observe
// rounds as they play out.
func WithEventBus(bus game.EventBus) Option {
	return func(s *Session) { s.bus = bus }
}

// RoundObserver is called after each settled round with the applied result
// and the updated bankroll and statistics. Called from the session goroutine.
type RoundObserver func(res *game.Result, bankroll int, stats statistics.Stats)

// WithRoundObserver registers an observer for settled rounds.
func WithRoundObserver(fn RoundObserver) Option {
	return func(s *Session) { s.observer = fn }
}

// New creates a session, loading the bankroll from the store immediately.
func New(st store.BankrollStore, agent game.Agent, logger *log.Logger, opts ...Option) *Session {
	s := &Session{
		logger: logger,
		store:  st,
		agent:  agent,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = quartz.NewReal()
	}
	if s.rng == nil {
		s.rng = randutil.New(time.Now().UnixNano())
	}
	if s.bus == nil {
		s.bus = game.NewEventBus()
	}
	s.bankroll = st.Load()
	return s
}

// Bankroll returns the current bankroll.
func (s *Session) Bankroll() int { return s.bankroll }

// Stats returns a copy of the cumulative session statistics.
func (s *Session) Stats() statistics.Stats { return s.stats }

// EventBus returns the bus rounds publish on.
func (s *Session) EventBus() game.EventBus { return s.bus }

// Run plays rounds until the agent quits, the bankroll hits zero, or the
// context is cancelled. A quit mid-round voids that round.
func (s *Session) Run(ctx context.Context) error {
	s.startedAt = s.clock.Now()
	s.logger.Info("session started", "bankroll", s.bankroll)

	for s.bankroll > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.PlayRound(); err != nil {
			if errors.Is(err, game.ErrQuit) {
				s.logger.Info("player quit")
				break
			}
			return err
		}
		if s.stats.HandsPlayed%statsInterval == 0 {
			s.logger.Info("session stats", "summary", s.stats.Summary())
		}
	}

	s.logger.Info("session over",
		"bankroll", s.bankroll,
		"duration", s.clock.Since(s.startedAt),
		"summary", s.stats.Summary())
	return nil
}

// PlayRound plays a single round with a fresh single-deck shoe. Invalid bets
// and illegal actions re-prompt the agent without state changes; any other
// error (quit, shoe exhaustion) voids the round and is returned. Settlement
// updates the bankroll and statistics and persists the new bankroll.
func (s *Session) PlayRound() (*game.Result, error) {
	s.rounds++
	shoe := deck.NewShoeFromRNG(s.rng)
	round := game.NewRound(shoe, s.bankroll, s.rounds, s.logger, s.bus)

	for {
		bet, err := s.agent.BetAmount(s.bankroll)
		if err != nil {
			return nil, err
		}
		if err := round.PlaceBet(bet); err != nil {
			if errors.Is(err, game.ErrInvalidBet) {
				s.logger.Warn("bet rejected", "bet", bet, "bankroll", s.bankroll)
				continue
			}
			return nil, err
		}
		break
	}

	for round.State() == game.StatePlayerTurn {
		action, err := s.agent.ChooseAction(round.Snapshot(), round.LegalActions())
		if err != nil {
			return nil, err
		}
		if err := round.Apply(action); err != nil {
			if errors.Is(err, game.ErrInvalidAction) {
				s.logger.Warn("illegal action", "action", action)
				continue
			}
			return nil, err
		}
	}

	if !round.Settled() {
		return nil, fmt.Errorf("round %d finished without settling", s.rounds)
	}

	res := round.Result()
	s.applyResult(res)
	if s.observer != nil {
		s.observer(res, s.bankroll, s.stats)
	}
	if err := s.store.Save(s.bankroll); err != nil {
		// Persistence failures should not eat the round; play continues on
		// the in-memory bankroll.
		s.logger.Error("failed to save bankroll", "error", err)
	}
	return res, nil
}

// applyResult is the single mutation point for bankroll and statistics. Wins
// and losses are counted once per settled branch; hands played once per
// round.
func (s *Session) applyResult(res *game.Result) {
	for _, b := range res.Branches {
		switch b.Outcome {
		case game.OutcomeBlackjack:
			s.stats.AddBlackjack()
		case game.OutcomeDealerBust:
			s.stats.AddDealerBust()
			s.stats.AddWin()
		case game.OutcomeWin:
			s.stats.AddWin()
		case game.OutcomeLoss:
			s.stats.AddLoss()
		case game.OutcomePush:
			s.stats.AddPush()
		}
	}
	s.stats.AddRound(res.Net)
	s.bankroll += res.Net
}
