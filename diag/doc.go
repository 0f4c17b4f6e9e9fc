// Package diag provides structured warnings, errors, and review notes
// for the mapping table and the conversion engine.
//
// Key capabilities:
//   - Mapping table consistency errors (duplicate names, empty definitions)
//   - Unresolved configuration-variant warnings with candidate slots
//   - Severity-bucketed aggregation across files and forms
package diag
