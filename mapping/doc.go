// Package mapping provides the declarative table that translates
// semantic field names into the numbered slots used by each form code.
//
// The export grammar identifies fields only by number, and the numbers
// collide across form types: slot 54 is box 1 wages on a wage
// statement and rents received on a rental schedule. The table is the
// single source of truth for those assignments; conversion code asks
// for "box1_wages" and never embeds a slot literal outside an explicit
// fallback chain.
//
// # Key capabilities
//
//   - Form-scoped semantic name -> slot resolution
//   - Advisory declared types (currency, text, date, bool, code)
//   - Embedded default table, loaded once
//   - Per-path cache for externally supplied tables
//   - Structural validation with review diagnostics
//
// # Schema Overview
//
// The table is a YAML document keyed by form_<code>:
//
//	form_180:
//	  name: IRS W-2
//	  fields:
//	    "30": {name: taxpayer_or_spouse, type: code, values: [T, S, J]}
//	    "41": {name: employer_name, type: text}
//	    "54": {name: box1_wages, type: currency}
//	    "54M": box1_wages_note
//
// A bare string value is shorthand for {name: <string>}. Slot ids are
// written as strings because a memo variant carries a trailing M.
//
// # Resolution
//
// Resolve is an exact lookup on (form code, semantic name). A nil or
// empty Table resolves nothing and is safe to query; callers degrade
// to their documented literal fallback slots, so a missing or broken
// table file never takes slot-level access down with it.
package mapping
