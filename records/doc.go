// Package records defines the typed value objects produced by the
// conversion engine: per-slip records (W-2, 1099 family, K-1s, Schedule E,
// health and mortgage statements), client identity, and the Return
// aggregate with its computed income totals.
//
// Records are pure values with no back-reference to the raw document
// model. Currency amounts use shopspring decimals; absent dates are the
// time.Time zero value.
package records
