package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
)

// State is the lifecycle state of a round. There is no path backwards: a
// round moves from Betting to Settled exactly once, or is abandoned.
type State int

const (
	StateBetting State = iota
	StateDealing
	StatePlayerTurn
	StateDealerTurn
	StateSettled
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case StateBetting:
		return "betting"
	case StateDealing:
		return "dealing"
	case StatePlayerTurn:
		return "player_turn"
	case StateDealerTurn:
		return "dealer_turn"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Action is a player decision during PlayerTurn.
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	case Split:
		return "split"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidBet is returned for a bet outside [1, bankroll]. Recoverable:
	// the round stays in Betting and the caller may re-prompt.
	ErrInvalidBet = errors.New("invalid bet")

	// ErrInvalidAction is returned for an action outside the current legal
	// set. Recoverable: no state changes and the same decision point repeats.
	ErrInvalidAction = errors.New("invalid action")
)

// Round drives one blackjack round from bet placement to settlement. It owns
// its shoe, holds a read-only bankroll snapshot for legality checks, and
// never mutates the bankroll itself; settlement is applied by the session
// from the returned Result.
type Round struct {
	shoe     *deck.Shoe
	logger   *log.Logger
	bus      EventBus
	number   int
	bankroll int

	state   State
	bet     int
	hands   []*Hand
	dealer  []deck.Card
	current int
	result  *Result
	status  string
}

// NewRound creates a round in the Betting state. The bankroll is the amount
// available for bet and double legality checks. The event bus may be nil if
// nothing observes the round.
func NewRound(shoe *deck.Shoe, bankroll, number int, logger *log.Logger, bus EventBus) *Round {
	if bus == nil {
		bus = NewEventBus()
	}
	return &Round{
		shoe:     shoe,
		logger:   logger,
		bus:      bus,
		number:   number,
		bankroll: bankroll,
		state:    StateBetting,
		status:   "place your bet",
	}
}

// State returns the current lifecycle state.
func (r *Round) State() State { return r.state }

// Settled reports whether the round reached settlement. An abandoned or
// aborted round never settles and must not touch bankroll or statistics.
func (r *Round) Settled() bool { return r.state == StateSettled && r.result != nil }

// Result returns the settlement result, or nil before settlement.
func (r *Round) Result() *Result { return r.result }

// PlaceBet validates and records the bet, deals the initial hands, and
// either short-circuits to settlement on a natural blackjack or enters
// PlayerTurn. Shoe errors abort the round without settlement.
func (r *Round) PlaceBet(bet int) error {
	if r.state != StateBetting {
		return fmt.Errorf("%w: cannot bet in state %s", ErrInvalidAction, r.state)
	}
	if bet < 1 || bet > r.bankroll {
		return fmt.Errorf("%w: %d (bankroll %d)", ErrInvalidBet, bet, r.bankroll)
	}

	r.bet = bet
	r.state = StateDealing
	r.bus.Publish(NewRoundStartedEvent(r.number, bet, r.bankroll))
	r.logger.Debug("round started", "round", r.number, "bet", bet)

	return r.deal()
}

func (r *Round) deal() error {
	player := newHand(r.bet)
	for i := 0; i < 2; i++ {
		card, err := r.shoe.Draw()
		if err != nil {
			return fmt.Errorf("dealing player hand: %w", err)
		}
		player.Cards = append(player.Cards, card)
	}
	r.hands = []*Hand{player}

	for i := 0; i < 2; i++ {
		card, err := r.shoe.Draw()
		if err != nil {
			return fmt.Errorf("dealing dealer hand: %w", err)
		}
		r.dealer = append(r.dealer, card)
	}

	// A natural two-card 21 pays 3:2 immediately. The dealer's hole card is
	// never inspected for a competing blackjack; this table simply pays out.
	if player.IsBlackjack() {
		payout := 3 * r.bet / 2
		r.result = &Result{
			Number:      r.number,
			Bet:         r.bet,
			Blackjack:   true,
			DealerValue: HandValue(r.dealer),
			Branches: []BranchResult{{
				Outcome: OutcomeBlackjack,
				Payout:  payout,
				Value:   21,
			}},
			Net: payout,
		}
		player.Stood = true
		r.status = fmt.Sprintf("blackjack! you win $%d", payout)
		r.settle()
		return nil
	}

	r.state = StatePlayerTurn
	r.status = "your move"
	return nil
}

// CurrentHand returns the hand awaiting a decision, or nil outside PlayerTurn.
func (r *Round) CurrentHand() *Hand {
	if r.state != StatePlayerTurn || r.current >= len(r.hands) {
		return nil
	}
	return r.hands[r.current]
}

// LegalActions computes the action set for the current decision point. Hit
// and Stand are always available; Double requires a first-decision two-card
// unsplit hand and enough bankroll to cover the doubled stake; Split requires
// a first-decision equal-rank pair that is not itself a split branch.
func (r *Round) LegalActions() []Action {
	hand := r.CurrentHand()
	if hand == nil {
		return nil
	}

	actions := []Action{Hit, Stand}
	if len(hand.Cards) == 2 && hand.MayDouble && r.totalBet()+hand.Bet <= r.bankroll {
		actions = append(actions, Double)
	}
	if hand.MaySplit && hand.IsPair() && !hand.FromSplit {
		actions = append(actions, Split)
	}
	return actions
}

// Apply performs one player action on the current hand. Illegal actions
// return ErrInvalidAction with no state change, so callers re-prompt the same
// decision point. Shoe errors abort the round without settlement.
func (r *Round) Apply(action Action) error {
	hand := r.CurrentHand()
	if hand == nil {
		return fmt.Errorf("%w: no active hand in state %s", ErrInvalidAction, r.state)
	}
	if !actionIn(action, r.LegalActions()) {
		return fmt.Errorf("%w: %s", ErrInvalidAction, action)
	}

	switch action {
	case Hit:
		if err := r.hit(hand); err != nil {
			return err
		}
	case Stand:
		hand.Stood = true
		r.publishAction(Stand, nil, hand)
	case Double:
		if err := r.double(hand); err != nil {
			return err
		}
	case Split:
		if err := r.split(hand); err != nil {
			return err
		}
		// Both branches remain unresolved; play continues on the first.
		return nil
	}

	return r.advance()
}

func (r *Round) hit(hand *Hand) error {
	card, err := r.shoe.Draw()
	if err != nil {
		return fmt.Errorf("hit: %w", err)
	}
	hand.Cards = append(hand.Cards, card)
	if hand.IsBust() {
		hand.Busted = true
		hand.Stood = true
		r.status = fmt.Sprintf("bust at %d", hand.Value())
	}
	r.publishAction(Hit, &card, hand)
	return nil
}

func (r *Round) double(hand *Hand) error {
	card, err := r.shoe.Draw()
	if err != nil {
		return fmt.Errorf("double: %w", err)
	}
	hand.Bet *= 2
	hand.Doubled = true
	hand.Cards = append(hand.Cards, card)
	if hand.IsBust() {
		hand.Busted = true
		r.status = fmt.Sprintf("bust at %d", hand.Value())
	}
	hand.Stood = true
	r.publishAction(Double, &card, hand)
	return nil
}

// split turns an equal-rank pair into two independent one-card hands, each
// completed with one draw and each carrying half the original bet. Odd bets
// keep the total stake intact: the second branch takes the remainder.
func (r *Round) split(hand *Hand) error {
	first, second := hand.Cards[0], hand.Cards[1]
	half := hand.Bet / 2

	branch := &Hand{
		Cards:     []deck.Card{second},
		Bet:       hand.Bet - half,
		FromSplit: true,
	}
	hand.Cards = []deck.Card{first}
	hand.Bet = half
	hand.FromSplit = true
	hand.MaySplit = false
	hand.MayDouble = false

	for _, h := range []*Hand{hand, branch} {
		card, err := r.shoe.Draw()
		if err != nil {
			return fmt.Errorf("split: %w", err)
		}
		h.Cards = append(h.Cards, card)
	}
	r.hands = append(r.hands[:r.current+1], append([]*Hand{branch}, r.hands[r.current+1:]...)...)

	r.status = "playing first split hand"
	r.publishAction(Split, nil, hand)
	return nil
}

// advance moves to the next unresolved hand, or on to the dealer and
// settlement once every branch has stood or busted. The dealer never draws
// when all branches busted; those losses stand on their own.
func (r *Round) advance() error {
	for r.current < len(r.hands) && r.hands[r.current].resolved() {
		r.current++
	}
	if r.current < len(r.hands) {
		if len(r.hands) > 1 {
			r.status = fmt.Sprintf("playing split hand %d", r.current+1)
		}
		return nil
	}

	allBust := true
	for _, h := range r.hands {
		if !h.Busted {
			allBust = false
			break
		}
	}

	if !allBust {
		r.state = StateDealerTurn
		if err := r.playDealer(); err != nil {
			return err
		}
	}

	dealerValue := HandValue(r.dealer)
	r.result = settleRound(r.number, r.bet, r.hands, dealerValue)
	r.status = r.result.Summary()
	r.settle()
	return nil
}

// playDealer applies the fixed policy: draw while under 17, stand on all 17s.
func (r *Round) playDealer() error {
	for HandValue(r.dealer) < 17 {
		card, err := r.shoe.Draw()
		if err != nil {
			return fmt.Errorf("dealer draw: %w", err)
		}
		r.dealer = append(r.dealer, card)
		r.bus.Publish(NewDealerDrawEvent(card, HandValue(r.dealer)))
	}
	r.logger.Debug("dealer stands", "value", HandValue(r.dealer))
	return nil
}

func (r *Round) settle() {
	r.state = StateSettled
	r.bus.Publish(NewRoundSettledEvent(*r.result))
	r.logger.Debug("round settled",
		"round", r.number,
		"net", r.result.Net,
		"branches", len(r.result.Branches))
}

func (r *Round) totalBet() int {
	total := 0
	for _, h := range r.hands {
		total += h.Bet
	}
	return total
}

func (r *Round) publishAction(action Action, card *deck.Card, hand *Hand) {
	r.bus.Publish(NewPlayerActionEvent(r.current, action, card, hand.Value()))
}

func actionIn(action Action, set []Action) bool {
	for _, a := range set {
		if a == action {
			return true
		}
	}
	return false
}
