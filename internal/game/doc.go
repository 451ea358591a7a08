// Package game implements the blackjack round engine: hand valuation, the
// player turn state machine (including single-level splits), the dealer's
// forced-draw policy and payout settlement. The engine is fully synchronous;
// the only suspension points are the Agent calls that request a bet or an
// action from the caller. Bankroll and session statistics live outside this
// package and are only mutated by applying a settled Result.
package game
