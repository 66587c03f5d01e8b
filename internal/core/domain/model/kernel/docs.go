// Package kernel provides the domain primitives shared by every aggregate of
// the marketplace: identifiers and positive decimal amounts.
//
// The package includes:
//   - UUID: a value object for unique identifiers of businesses, products and orders
//   - Amount: a strictly positive decimal used for order quantities and unit prices
//
// Zero values of both types are invalid; use the constructors.
package kernel
