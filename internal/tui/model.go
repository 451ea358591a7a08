package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/statistics"
)

// mode tracks which prompt, if any, the player owes the engine an answer to.
type mode int

const (
	modeIdle mode = iota
	modeBet
	modeAction
)

// Messages from the session goroutine into the program.

type betPromptMsg struct {
	Bankroll int
}

type actionPromptMsg struct {
	Snapshot game.Snapshot
	Legal    []game.Action
}

type roundDoneMsg struct {
	Result   *game.Result
	Bankroll int
	Stats    statistics.Stats
}

type eventMsg struct {
	Event game.Event
}

// SessionDoneMsg ends the program once the session loop has returned.
type SessionDoneMsg struct {
	Err error
}

// Model is the Bubble Tea model for the table.
type Model struct {
	agent  *Agent
	logger *log.Logger

	logViewport viewport.Model
	betInput    textinput.Model

	mode     mode
	snap     game.Snapshot
	haveSnap bool
	legal    []game.Action
	bankroll int
	stats    statistics.Stats
	tableLog []string
	status   string

	width       int
	height      int
	initialized bool
	quitting    bool
}

// NewModel creates the table model. The bankroll is the loaded starting value
// shown before the first round begins.
func NewModel(agent *Agent, bankroll int, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "bet amount"
	ti.CharLimit = 10
	ti.Width = 20
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "$ "

	return &Model{
		agent:       agent,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		betInput:    ti,
		bankroll:    bankroll,
		tableLog:    []string{},
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case betPromptMsg:
		m.mode = modeBet
		m.bankroll = msg.Bankroll
		m.haveSnap = false
		m.betInput.SetValue("")
		m.betInput.Focus()
		return m, textinput.Blink

	case actionPromptMsg:
		m.mode = modeAction
		m.snap = msg.Snapshot
		m.haveSnap = true
		m.legal = msg.Legal
		m.betInput.Blur()

	case eventMsg:
		if line := formatEvent(msg.Event); line != "" {
			m.addLog(line)
		}

	case roundDoneMsg:
		m.mode = modeIdle
		m.bankroll = msg.Bankroll
		m.stats = msg.Stats
		m.haveSnap = false
		m.addLog(resultLine(msg.Result))
		m.addLog("")

	case SessionDoneMsg:
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	if m.mode == modeBet {
		m.betInput, cmd = m.betInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKey processes key presses that drive the game rather than the
// components. Returns handled=false to let the focused component see the key.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "esc":
		if m.quitting {
			return tea.Quit, true
		}
		m.status = "quitting..."
		m.agent.Quit()
		return nil, true

	case "enter":
		if m.mode != modeBet {
			return nil, true
		}
		value := strings.TrimSpace(m.betInput.Value())
		bet, err := strconv.Atoi(value)
		if err != nil {
			m.status = fmt.Sprintf("not a number: %q", value)
			return nil, true
		}
		if bet < 1 || bet > m.bankroll {
			m.status = fmt.Sprintf("bet must be between $1 and $%d", m.bankroll)
			return nil, true
		}
		if m.agent.submitBet(bet) {
			m.mode = modeIdle
			m.status = ""
			m.betInput.Blur()
		}
		return nil, true
	}

	if m.mode == modeAction {
		var action game.Action
		switch msg.String() {
		case "h":
			action = game.Hit
		case "s":
			action = game.Stand
		case "d":
			action = game.Double
		case "p":
			action = game.Split
		default:
			return nil, true
		}
		if !actionLegal(m.legal, action) {
			m.status = fmt.Sprintf("%s is not available", action)
			return nil, true
		}
		if m.agent.submitAction(action) {
			m.mode = modeIdle
			m.status = ""
		}
		return nil, true
	}

	return nil, false
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := HeaderStyle.Render("BLACKJACK") + "  " +
		BankrollStyle.Render(fmt.Sprintf("Bankroll: $%d", m.bankroll))

	table := m.renderTable()
	prompt := m.renderPrompt()
	footer := StatsStyle.Render(m.stats.Summary())

	logContent := strings.Join(m.tableLog, "\n")
	m.logViewport.SetContent(logContent)

	logHeight := m.height - lipgloss.Height(header) - lipgloss.Height(table) -
		lipgloss.Height(prompt) - lipgloss.Height(footer) - 4
	if logHeight < 1 {
		logHeight = 1
	}
	logWidth := m.width - 2
	if logWidth < 1 {
		logWidth = 1
	}
	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight
	if !m.initialized && logWidth > 1 && logHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(logWidth).
		Height(logHeight)
	logPane := logStyle.Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, table, logPane, prompt, footer)
}

// renderTable renders the dealer and player hands from the last snapshot.
func (m *Model) renderTable() string {
	if !m.haveSnap {
		return "\n"
	}

	var b strings.Builder

	b.WriteString("Dealer: ")
	if m.snap.DealerHidden && len(m.snap.DealerCards) > 0 {
		b.WriteString(formatCards(m.snap.DealerCards[:1]))
		b.WriteString(" ")
		b.WriteString(HiddenCardStyle.Render("[??]"))
	} else {
		b.WriteString(formatCards(m.snap.DealerCards))
		b.WriteString(fmt.Sprintf(" (%d)", m.snap.DealerValue))
	}
	b.WriteString("\n")

	for i, hand := range m.snap.PlayerHands {
		label := "You"
		if len(m.snap.PlayerHands) > 1 {
			label = fmt.Sprintf("Hand %d", i+1)
		}
		line := fmt.Sprintf("%s: %s %s $%d", label, formatCards(hand.Cards), handValueLabel(hand), hand.Bet)
		switch {
		case hand.Busted:
			line += LossStyle.Render(" BUST")
		case hand.Doubled:
			line += StatusStyle.Render(" doubled")
		}
		if i == m.snap.CurrentHand && m.mode == modeAction {
			line = ActiveHandStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// renderPrompt renders the input area for the current mode.
func (m *Model) renderPrompt() string {
	var b strings.Builder

	switch m.mode {
	case modeBet:
		b.WriteString(StatusStyle.Render(fmt.Sprintf("Place your bet (1-%d)", m.bankroll)))
		b.WriteString("\n")
		b.WriteString(m.betInput.View())
	case modeAction:
		b.WriteString(StatusStyle.Render("Your move: "))
		b.WriteString(renderActions(m.legal))
	default:
		b.WriteString(HelpStyle.Render("Waiting..."))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(ErrorStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("esc to quit"))

	return b.String()
}

// renderActions renders the legal action keys.
func renderActions(legal []game.Action) string {
	var parts []string
	for _, action := range legal {
		switch action {
		case game.Hit:
			parts = append(parts, WinStyle.Render("[h]it"))
		case game.Stand:
			parts = append(parts, StatusStyle.Render("[s]tand"))
		case game.Double:
			parts = append(parts, BankrollStyle.Render("[d]ouble"))
		case game.Split:
			parts = append(parts, ActiveHandStyle.Render("s[p]lit"))
		}
	}
	return strings.Join(parts, " ")
}

// formatCards renders cards with suit colouring.
func formatCards(cards []deck.Card) string {
	var formatted []string
	for _, card := range cards {
		if card.IsRed() {
			formatted = append(formatted, RedCardStyle.Render(card.String()))
		} else {
			formatted = append(formatted, BlackCardStyle.Render(card.String()))
		}
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

func handValueLabel(hand game.HandView) string {
	if hand.Soft {
		return fmt.Sprintf("(soft %d)", hand.Value)
	}
	return fmt.Sprintf("(%d)", hand.Value)
}

// formatEvent renders an engine event as a log line. Settlement is reported
// through roundDoneMsg, so RoundSettledEvent yields nothing.
func formatEvent(event game.Event) string {
	switch e := event.(type) {
	case game.RoundStartedEvent:
		return fmt.Sprintf("--- round %d: $%d bet ---", e.Number, e.Bet)
	case game.PlayerActionEvent:
		if e.Card != nil {
			return fmt.Sprintf("%s: drew %s (%d)", e.Action, e.Card, e.Value)
		}
		return fmt.Sprintf("%s (%d)", e.Action, e.Value)
	case game.DealerDrawEvent:
		return fmt.Sprintf("dealer draws %s (%d)", e.Card, e.Value)
	default:
		return ""
	}
}

// resultLine renders the settled round outcome, coloured by net result.
func resultLine(res *game.Result) string {
	line := res.Summary()
	switch {
	case res.Net > 0:
		return WinStyle.Render(line)
	case res.Net < 0:
		return LossStyle.Render(line)
	default:
		return StatusStyle.Render(line)
	}
}

func actionLegal(legal []game.Action, action game.Action) bool {
	for _, a := range legal {
		if a == action {
			return true
		}
	}
	return false
}

func (m *Model) addLog(entry string) {
	m.tableLog = append(m.tableLog, entry)
	m.logViewport.SetContent(strings.Join(m.tableLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}
