package game

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// Hand is one ordered set of cards belonging to the player, the dealer or a
// split branch, together with the bet riding on it. Value is always derived
// from the cards, never stored.
type Hand struct {
	Cards     []deck.Card
	Bet       int
	Doubled   bool
	Stood     bool
	Busted    bool
	FromSplit bool

	// Capability flags, fixed at creation time. Split branches get neither:
	// the table offers single-level splits and doubles on the initial hand
	// only.
	MayDouble bool
	MaySplit  bool
}

func newHand(bet int) *Hand {
	return &Hand{
		Cards:     make([]deck.Card, 0, 8),
		Bet:       bet,
		MayDouble: true,
		MaySplit:  true,
	}
}

// HandValue computes the blackjack value of a set of cards. Aces count 11
// provisionally and are demoted to 1 one at a time while the total exceeds
// 21. The result is independent of card order and the function is pure.
func HandValue(cards []deck.Card) int {
	value, _ := handValue(cards)
	return value
}

// handValue returns the value and whether the hand is soft (at least one Ace
// still counted as 11).
func handValue(cards []deck.Card) (int, bool) {
	total := 0
	aces := 0
	for _, c := range cards {
		total += c.Points()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

// IsBlackjack reports whether cards form a natural blackjack: exactly two
// cards valuing 21.
func IsBlackjack(cards []deck.Card) bool {
	return len(cards) == 2 && HandValue(cards) == 21
}

// Value returns the blackjack value of the hand.
func (h *Hand) Value() int {
	return HandValue(h.Cards)
}

// IsSoft reports whether the hand still counts an Ace as 11.
func (h *Hand) IsSoft() bool {
	_, soft := handValue(h.Cards)
	return soft
}

// IsBust reports whether the hand value exceeds 21.
func (h *Hand) IsBust() bool {
	return h.Value() > 21
}

// IsBlackjack reports whether the hand is a natural two-card 21.
func (h *Hand) IsBlackjack() bool {
	return IsBlackjack(h.Cards)
}

// IsPair reports whether the hand is exactly two cards of equal rank.
func (h *Hand) IsPair() bool {
	return len(h.Cards) == 2 && h.Cards[0].Rank == h.Cards[1].Rank
}

// resolved reports whether this hand needs no further player decisions.
func (h *Hand) resolved() bool {
	return h.Stood || h.Busted
}

// String returns the cards joined by spaces, e.g. "A♠ K♥".
func (h *Hand) String() string {
	parts := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
