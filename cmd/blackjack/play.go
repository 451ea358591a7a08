package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/session"
	"github.com/lox/blackjack/internal/store"
	"github.com/lox/blackjack/internal/tui"
)

// PlayCmd runs an interactive table in the terminal.
type PlayCmd struct {
	Config  string `short:"c" default:"blackjack.hcl" help:"Path to HCL config file"`
	Save    string `help:"Bankroll save file (overrides config)"`
	Debug   bool   `help:"Enable debug logging"`
	NoColor bool   `help:"Disable colour output"`
}

func (c *PlayCmd) Run() error {
	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if c.Save != "" {
		cfg.Table.SaveFile = c.Save
	}

	logger, closeLog, err := setupLogger(cfg.Table.LogLevel, c.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	st := store.NewFileStore(cfg.Table.SaveFile, cfg.Table.StartingBankroll, logger)

	bus := game.NewEventBus()
	agent := tui.NewAgent(logger)
	model := tui.NewModel(agent, st.Load(), logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	agent.SetProgram(program)
	bus.Subscribe(tui.NewSubscriber(program))

	sess := session.New(st, agent, logger,
		session.WithEventBus(bus),
		session.WithRoundObserver(tui.ObserveRounds(program)),
	)

	errc := make(chan error, 1)
	go func() {
		err := sess.Run(context.Background())
		errc <- err
		program.Send(tui.SessionDoneMsg{Err: err})
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run tui: %w", err)
	}

	// If the program exited before the session noticed, unblock any pending
	// prompt so the session loop returns.
	agent.Quit()
	if err := <-errc; err != nil {
		return err
	}

	fmt.Printf("Final bankroll: $%d\n", sess.Bankroll())
	stats := sess.Stats()
	fmt.Println(stats.Summary())
	return nil
}
