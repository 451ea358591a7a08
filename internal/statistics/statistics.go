// Package statistics tracks cumulative session counters. Counters only ever
// increase; net winnings is the only signed field.
package statistics

import "fmt"

// Stats holds the session counters. Wins and losses count settled branches
// (a split round contributes one per branch); hands played counts rounds.
type Stats struct {
	HandsPlayed int
	Wins        int
	Losses      int
	Pushes      int
	Blackjacks  int
	DealerBusts int
	NetWinnings int
}

// AddWin records one winning branch.
func (s *Stats) AddWin() { s.Wins++ }

// AddLoss records one losing branch.
func (s *Stats) AddLoss() { s.Losses++ }

// AddPush records one pushed branch.
func (s *Stats) AddPush() { s.Pushes++ }

// AddBlackjack records one natural blackjack.
func (s *Stats) AddBlackjack() { s.Blackjacks++ }

// AddDealerBust records one branch settled by a dealer bust.
func (s *Stats) AddDealerBust() { s.DealerBusts++ }

// AddRound records one completed round and its net payout.
func (s *Stats) AddRound(net int) {
	s.HandsPlayed++
	s.NetWinnings += net
}

// WinRate returns wins as a fraction of hands played, or 0 before any play.
func (s *Stats) WinRate() float64 {
	if s.HandsPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.HandsPlayed)
}

// Summary returns a one-line report of the session so far.
func (s *Stats) Summary() string {
	return fmt.Sprintf("hands %d | wins %d | losses %d | pushes %d | blackjacks %d | dealer busts %d | net $%d",
		s.HandsPlayed, s.Wins, s.Losses, s.Pushes, s.Blackjacks, s.DealerBusts, s.NetWinnings)
}
