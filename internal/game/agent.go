package game

import "errors"

// ErrQuit is returned by an Agent to end the session. At the betting boundary
// it is a clean exit; mid-round it voids the round, which then must not touch
// bankroll or statistics.
var ErrQuit = errors.New("player quit")

// Agent supplies the two decisions the engine cannot make itself: a bet
// before dealing and an action at each PlayerTurn decision point. The engine
// validates both, so an agent returning something illegal is simply asked
// again.
type Agent interface {
	// BetAmount requests the next bet given the current bankroll.
	BetAmount(bankroll int) (int, error)

	// ChooseAction requests one action from the legal set for the current
	// decision point.
	ChooseAction(snap Snapshot, legal []Action) (Action, error)
}
