package game

import "github.com/lox/blackjack/internal/deck"

// HandView is the renderable state of one player hand.
type HandView struct {
	Cards     []deck.Card
	Bet       int
	Value     int
	Soft      bool
	Busted    bool
	Stood     bool
	Doubled   bool
	FromSplit bool
}

// Snapshot is the renderable state of a round, emitted for presentation
// layers. The dealer's full hand is always included; DealerHidden tells the
// renderer to conceal everything past the upcard until the dealer has played.
type Snapshot struct {
	State        State
	Number       int
	Bet          int
	Bankroll     int
	PlayerHands  []HandView
	CurrentHand  int
	DealerCards  []deck.Card
	DealerValue  int
	DealerHidden bool
	Status       string
}

// Snapshot builds a copy of the current round state safe to hand to a
// renderer.
func (r *Round) Snapshot() Snapshot {
	snap := Snapshot{
		State:        r.state,
		Number:       r.number,
		Bet:          r.bet,
		Bankroll:     r.bankroll,
		CurrentHand:  r.current,
		DealerCards:  append([]deck.Card(nil), r.dealer...),
		DealerValue:  HandValue(r.dealer),
		DealerHidden: r.state == StatePlayerTurn || r.state == StateDealing,
		Status:       r.status,
	}
	for _, h := range r.hands {
		value, soft := handValue(h.Cards)
		snap.PlayerHands = append(snap.PlayerHands, HandView{
			Cards:     append([]deck.Card(nil), h.Cards...),
			Bet:       h.Bet,
			Value:     value,
			Soft:      soft,
			Busted:    h.Busted,
			Stood:     h.Stood,
			Doubled:   h.Doubled,
			FromSplit: h.FromSplit,
		})
	}
	return snap
}
