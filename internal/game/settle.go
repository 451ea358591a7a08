package game

import (
	"fmt"
	"strings"
)

// Outcome classifies one settled branch.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeLoss
	OutcomePush
	OutcomeBlackjack
	OutcomeDealerBust
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	case OutcomePush:
		return "push"
	case OutcomeBlackjack:
		return "blackjack"
	case OutcomeDealerBust:
		return "dealer_bust"
	default:
		return "unknown"
	}
}

// Won reports whether the outcome counts as a player win for statistics.
// Natural blackjacks are tracked by their own counter instead.
func (o Outcome) Won() bool {
	return o == OutcomeWin || o == OutcomeDealerBust
}

// BranchResult is the settled outcome of one hand (or split branch), with a
// signed payout relative to the stake.
type BranchResult struct {
	Outcome Outcome
	Payout  int
	Value   int
}

// Result ties together the settlement of a whole round. For split rounds
// there is one branch per hand and Net is the sum of their payouts.
type Result struct {
	Number      int
	Bet         int
	Branches    []BranchResult
	DealerValue int
	DealerBust  bool
	Blackjack   bool
	Net         int
}

// Summary returns a one-line human description of the settlement.
func (res *Result) Summary() string {
	if res.Blackjack {
		return fmt.Sprintf("blackjack! you win $%d", res.Net)
	}

	parts := make([]string, len(res.Branches))
	for i, b := range res.Branches {
		switch b.Outcome {
		case OutcomeDealerBust:
			parts[i] = fmt.Sprintf("dealer busts, you win $%d", b.Payout)
		case OutcomeWin:
			parts[i] = fmt.Sprintf("you win $%d", b.Payout)
		case OutcomeLoss:
			parts[i] = fmt.Sprintf("you lose $%d", -b.Payout)
		case OutcomePush:
			parts[i] = "push"
		}
	}
	return strings.Join(parts, "; ")
}

// settleRound classifies every branch against the dealer and aggregates the
// net payout. Busted branches lose their full bet regardless of the dealer,
// who may never have drawn at all.
func settleRound(number, bet int, hands []*Hand, dealerValue int) *Result {
	res := &Result{
		Number:      number,
		Bet:         bet,
		DealerValue: dealerValue,
		DealerBust:  dealerValue > 21,
	}
	for _, h := range hands {
		branch := settleBranch(h, dealerValue)
		res.Branches = append(res.Branches, branch)
		res.Net += branch.Payout
	}
	return res
}

func settleBranch(h *Hand, dealerValue int) BranchResult {
	value := h.Value()
	switch {
	case h.Busted:
		return BranchResult{Outcome: OutcomeLoss, Payout: -h.Bet, Value: value}
	case dealerValue > 21:
		return BranchResult{Outcome: OutcomeDealerBust, Payout: h.Bet, Value: value}
	case value > dealerValue:
		return BranchResult{Outcome: OutcomeWin, Payout: h.Bet, Value: value}
	case value < dealerValue:
		return BranchResult{Outcome: OutcomeLoss, Payout: -h.Bet, Value: value}
	default:
		return BranchResult{Outcome: OutcomePush, Payout: 0, Value: value}
	}
}
