package simulator

import (
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// FlatBetAgent bets a fixed amount each round and plays a simplified basic
// strategy: split aces and eights, double hard 10/11, hit to hard 17 or soft
// 18. Deliberately dealer-upcard-blind to keep runs cheap and deterministic.
type FlatBetAgent struct {
	bet int
}

// NewFlatBetAgent creates an agent betting the given amount per round.
func NewFlatBetAgent(bet int) *FlatBetAgent {
	return &FlatBetAgent{bet: bet}
}

// BetAmount bets the configured amount, clamped to what is left.
func (a *FlatBetAgent) BetAmount(bankroll int) (int, error) {
	if bankroll < a.bet {
		return bankroll, nil
	}
	return a.bet, nil
}

// ChooseAction picks from the legal set by fixed strategy.
func (a *FlatBetAgent) ChooseAction(snap game.Snapshot, legal []game.Action) (game.Action, error) {
	hand := snap.PlayerHands[snap.CurrentHand]

	if hasAction(legal, game.Split) {
		rank := hand.Cards[0].Rank
		if rank == deck.Ace || rank == deck.Eight {
			return game.Split, nil
		}
	}
	if hasAction(legal, game.Double) && !hand.Soft && (hand.Value == 10 || hand.Value == 11) {
		return game.Double, nil
	}
	if hand.Soft && hand.Value < 18 {
		return game.Hit, nil
	}
	if !hand.Soft && hand.Value < 17 {
		return game.Hit, nil
	}
	return game.Stand, nil
}

func hasAction(set []game.Action, action game.Action) bool {
	for _, a := range set {
		if a == action {
			return true
		}
	}
	return false
}
