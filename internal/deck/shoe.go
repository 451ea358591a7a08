package deck

import (
	"errors"
	rand "math/rand/v2"
	"time"

	"github.com/lox/blackjack/internal/randutil"
)

// ErrShoeExhausted is returned when drawing from an empty shoe. A single-deck
// shoe never runs dry under normal play, so hitting this indicates a rules
// violation and callers must abort the round rather than truncate a hand.
var ErrShoeExhausted = errors.New("shoe exhausted")

// ShoeSize is the number of cards in a single-deck shoe.
const ShoeSize = 52

// Shoe is a shuffled, depletable source of cards. One shoe serves exactly one
// round; it is never refilled.
type Shoe struct {
	cards []Card
}

// NewShoe creates a full 52-card shoe in a uniformly random order.
func NewShoe() *Shoe {
	return NewShoeFromRNG(randutil.New(time.Now().UnixNano()))
}

// NewShoeFromRNG creates a full 52-card shoe shuffled with the provided RNG,
// so callers that need reproducible deals can inject a seeded source.
func NewShoeFromRNG(rng *rand.Rand) *Shoe {
	s := &Shoe{cards: make([]Card, 0, ShoeSize)}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			s.cards = append(s.cards, NewCard(suit, rank))
		}
	}
	rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	return s
}

// NewStackedShoe creates a shoe that deals the given cards in order. Intended
// for deterministic tests; the shoe exhausts after the last stacked card.
func NewStackedShoe(cards ...Card) *Shoe {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Shoe{cards: stacked}
}

// Draw removes and returns the top card of the shoe.
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrShoeExhausted
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// Remaining returns the number of cards left in the shoe.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}
