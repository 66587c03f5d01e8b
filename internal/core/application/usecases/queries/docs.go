// Package queries contains read-only operations over the order ledger.
//
// Query handlers read the database directly with GORM raw SQL. The current
// state of an order is never stored; every query derives it from the newest
// order_events row of the order.
package queries
