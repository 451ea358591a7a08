package simulator

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

func snapshotWith(hand game.HandView) game.Snapshot {
	return game.Snapshot{PlayerHands: []game.HandView{hand}, CurrentHand: 0}
}

func pairView(rank deck.Rank) game.HandView {
	cards := []deck.Card{
		deck.NewCard(deck.Spades, rank),
		deck.NewCard(deck.Hearts, rank),
	}
	return game.HandView{Cards: cards, Value: game.HandValue(cards)}
}

func TestFlatBetAgentBetAmount(t *testing.T) {
	agent := NewFlatBetAgent(10)

	if bet, _ := agent.BetAmount(1000); bet != 10 {
		t.Errorf("Expected flat bet 10, got %d", bet)
	}
	if bet, _ := agent.BetAmount(7); bet != 7 {
		t.Errorf("Bet should clamp to the remaining bankroll, got %d", bet)
	}
}

func TestFlatBetAgentStrategy(t *testing.T) {
	agent := NewFlatBetAgent(10)
	all := []game.Action{game.Hit, game.Stand, game.Double, game.Split}
	withDouble := []game.Action{game.Hit, game.Stand, game.Double}
	hitStand := []game.Action{game.Hit, game.Stand}

	tests := []struct {
		name     string
		hand     game.HandView
		legal    []game.Action
		expected game.Action
	}{
		{"splits aces", pairView(deck.Ace), all, game.Split},
		{"splits eights", pairView(deck.Eight), all, game.Split},
		{"keeps tens together", pairView(deck.Ten), all, game.Stand},
		{"doubles hard eleven", game.HandView{Value: 11}, withDouble, game.Double},
		{"doubles hard ten", game.HandView{Value: 10}, withDouble, game.Double},
		{"hits hard ten without double", game.HandView{Value: 10}, hitStand, game.Hit},
		{"hits soft seventeen", game.HandView{Value: 17, Soft: true}, hitStand, game.Hit},
		{"stands soft eighteen", game.HandView{Value: 18, Soft: true}, hitStand, game.Stand},
		{"hits hard sixteen", game.HandView{Value: 16}, hitStand, game.Hit},
		{"stands hard seventeen", game.HandView{Value: 17}, hitStand, game.Stand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := agent.ChooseAction(snapshotWith(tt.hand), tt.legal)
			if err != nil {
				t.Fatalf("ChooseAction failed: %v", err)
			}
			if action != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, action)
			}
		})
	}
}
