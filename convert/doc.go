// Package convert is the disambiguation engine: it turns a parsed
// document into a structured Return by deciding, per form code, which
// numbered slot means what.
//
// Slot numbers are resolved through the mapping table first and
// through documented literal fallback slots second. Every fallback
// chain, presence predicate, and discriminator lives in rules.go as
// data, so the disambiguation policy is reviewable in one place and
// testable apart from the per-form builders.
//
// # Conversion steps
//
// Per supported form the engine:
//
//  1. Filters entries through the form's presence predicate, dropping
//     placeholder and state-only entries that reuse the form code.
//  2. Resolves each value through the table, then the fallback chain.
//  3. Applies the form's disambiguation rules (discriminator slots,
//     pick largest absolute value).
//  4. Computes derived totals from itemized slots rather than trusting
//     a provided total slot.
//  5. Reads the owner discriminator, defaulting to taxpayer.
//
// # Failure semantics
//
// Conversion never fails. Filtered entries are silently excluded,
// coercion misses yield zero values, and unresolved names with no
// fallback read nothing. Configuration variants the rules do not
// document are surfaced as diagnostics, never guessed.
package convert
