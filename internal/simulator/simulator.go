// Package simulator plays headless blackjack sessions with a fixed-strategy
// agent. Sessions are independent (each owns its bankroll, shoe RNG and
// statistics) so they run concurrently; the engine itself stays
// single-threaded within each session.
package simulator

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/session"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/store"
	"golang.org/x/sync/errgroup"
)

// Config controls a simulation run.
type Config struct {
	Sessions int   // number of independent sessions
	Rounds   int   // rounds per session (fewer if the bankroll busts)
	Bet      int   // flat bet per round, clamped to the remaining bankroll
	Bankroll int   // starting bankroll per session
	Seed     int64 // base seed; session i uses Seed+i
}

// SessionReport is the outcome of one simulated session.
type SessionReport struct {
	Seed          int64
	FinalBankroll int
	Stats         statistics.Stats
}

// Report aggregates all session reports.
type Report struct {
	Sessions []SessionReport
}

// Run executes the configured sessions concurrently and collects a report.
func Run(ctx context.Context, cfg Config, logger *log.Logger) (*Report, error) {
	if cfg.Sessions < 1 || cfg.Rounds < 1 {
		return nil, fmt.Errorf("simulation needs at least one session and one round")
	}
	if cfg.Bet < 1 || cfg.Bankroll < 1 {
		return nil, fmt.Errorf("bet and bankroll must be positive")
	}

	reports := make([]SessionReport, cfg.Sessions)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Sessions; i++ {
		g.Go(func() error {
			seed := cfg.Seed + int64(i)
			rep, err := runSession(ctx, cfg, seed, logger.WithPrefix(fmt.Sprintf("sim-%d", i)))
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{Sessions: reports}, nil
}

func runSession(ctx context.Context, cfg Config, seed int64, logger *log.Logger) (SessionReport, error) {
	st := store.NewMemoryStore(cfg.Bankroll)
	sess := session.New(st, NewFlatBetAgent(cfg.Bet), logger,
		session.WithRNG(randutil.New(seed)))

	for i := 0; i < cfg.Rounds && sess.Bankroll() > 0; i++ {
		if err := ctx.Err(); err != nil {
			return SessionReport{}, err
		}
		if _, err := sess.PlayRound(); err != nil {
			return SessionReport{}, fmt.Errorf("seed %d: %w", seed, err)
		}
	}

	return SessionReport{
		Seed:          seed,
		FinalBankroll: sess.Bankroll(),
		Stats:         sess.Stats(),
	}, nil
}

// Totals sums the per-session statistics.
func (r *Report) Totals() statistics.Stats {
	var total statistics.Stats
	for _, s := range r.Sessions {
		total.HandsPlayed += s.Stats.HandsPlayed
		total.Wins += s.Stats.Wins
		total.Losses += s.Stats.Losses
		total.Pushes += s.Stats.Pushes
		total.Blackjacks += s.Stats.Blackjacks
		total.DealerBusts += s.Stats.DealerBusts
		total.NetWinnings += s.Stats.NetWinnings
	}
	return total
}

// String renders the report for terminal output.
func (r *Report) String() string {
	var b strings.Builder
	for _, s := range r.Sessions {
		fmt.Fprintf(&b, "seed %d: final $%d | %s\n", s.Seed, s.FinalBankroll, s.Stats.Summary())
	}
	total := r.Totals()
	fmt.Fprintf(&b, "total: %s | win rate %.1f%%\n", total.Summary(), total.WinRate()*100)
	return b.String()
}
