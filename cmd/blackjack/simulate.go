package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/simulator"
)

// SimulateCmd plays headless sessions with a fixed-strategy agent.
type SimulateCmd struct {
	Sessions int   `default:"4" help:"Number of concurrent sessions"`
	Rounds   int   `default:"1000" help:"Rounds per session"`
	Bet      int   `default:"10" help:"Flat bet per round"`
	Bankroll int   `default:"1000" help:"Starting bankroll per session"`
	Seed     int64 `default:"0" help:"Base RNG seed (0 for random)"`
	Verbose  bool  `help:"Verbose logging"`
}

func (c *SimulateCmd) Run() error {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	fmt.Printf("Simulating %d sessions x %d rounds (seed %d)\n", c.Sessions, c.Rounds, c.Seed)

	start := time.Now()
	report, err := simulator.Run(context.Background(), simulator.Config{
		Sessions: c.Sessions,
		Rounds:   c.Rounds,
		Bet:      c.Bet,
		Bankroll: c.Bankroll,
		Seed:     c.Seed,
	}, logger)
	if err != nil {
		return err
	}

	fmt.Print(report)
	fmt.Printf("completed in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}
