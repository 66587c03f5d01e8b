// Package order implements the order event ledger of the marketplace.
//
// An Order never stores its state. Every change is an immutable Event
// appended to the order's History, and the type of the newest event is the
// current state. A requested transition goes through three tables:
//
//   - the transition table (IsTransitionAuthorized) decides which roles may
//     move from the current event type to the requested one
//   - the history requirements (CheckHistory) demand that some event types
//     did or did not happen before
//   - the application policy (DecideEvents) picks the quantity and price the
//     new event carries
//
// Order.Apply runs them in that order. The tables are package level data
// and are only ever read.
package order
