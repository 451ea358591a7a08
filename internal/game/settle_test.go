package game

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
)

func TestSettleBranch(t *testing.T) {
	tests := []struct {
		name        string
		hand        *Hand
		dealerValue int
		outcome     Outcome
		payout      int
	}{
		{
			name:        "busted hand loses even against dealer bust",
			hand:        &Hand{Cards: cards(deck.Ten, deck.Six, deck.King), Bet: 50, Busted: true},
			dealerValue: 26,
			outcome:     OutcomeLoss,
			payout:      -50,
		},
		{
			name:        "dealer bust pays even money",
			hand:        &Hand{Cards: cards(deck.Ten, deck.Eight), Bet: 50},
			dealerValue: 22,
			outcome:     OutcomeDealerBust,
			payout:      50,
		},
		{
			name:        "higher value wins",
			hand:        &Hand{Cards: cards(deck.Ten, deck.Nine), Bet: 50},
			dealerValue: 18,
			outcome:     OutcomeWin,
			payout:      50,
		},
		{
			name:        "lower value loses",
			hand:        &Hand{Cards: cards(deck.Ten, deck.Six), Bet: 50},
			dealerValue: 18,
			outcome:     OutcomeLoss,
			payout:      -50,
		},
		{
			name:        "equal value pushes",
			hand:        &Hand{Cards: cards(deck.Ten, deck.Eight), Bet: 50},
			dealerValue: 18,
			outcome:     OutcomePush,
			payout:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			branch := settleBranch(tt.hand, tt.dealerValue)
			if branch.Outcome != tt.outcome {
				t.Errorf("Expected %s, got %s", tt.outcome, branch.Outcome)
			}
			if branch.Payout != tt.payout {
				t.Errorf("Expected payout %d, got %d", tt.payout, branch.Payout)
			}
		})
	}
}

func TestSettleRoundAggregatesNet(t *testing.T) {
	hands := []*Hand{
		{Cards: cards(deck.Ten, deck.Nine), Bet: 50},
		{Cards: cards(deck.Ten, deck.Six), Bet: 50},
	}

	res := settleRound(3, 100, hands, 18)
	if res.Number != 3 || res.Bet != 100 {
		t.Errorf("Result should carry round number and bet, got %d/%d", res.Number, res.Bet)
	}
	if len(res.Branches) != 2 {
		t.Fatalf("Expected 2 branches, got %d", len(res.Branches))
	}
	if res.Net != 0 {
		t.Errorf("Win and loss at equal stakes should net zero, got %d", res.Net)
	}
	if res.DealerBust {
		t.Error("Dealer 18 is not a bust")
	}
}

func TestOutcomeWon(t *testing.T) {
	if !OutcomeWin.Won() || !OutcomeDealerBust.Won() {
		t.Error("Win and dealer bust count as wins")
	}
	if OutcomeLoss.Won() || OutcomePush.Won() || OutcomeBlackjack.Won() {
		t.Error("Loss, push and blackjack are tracked separately")
	}
}
