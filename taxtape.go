// Package taxtape turns the line-oriented export files of a tax
// preparation package into structured, queryable return records.
//
// The work happens in two stages. The tape package tokenizes the flat
// marker grammar into a lazy stream of hierarchical documents, and the
// convert package resolves, per form code, which numbered field means
// what, using the declarative mapping table plus deterministic
// disambiguation rules. This package ties the stages together for the
// common case of one file in, returns out:
//
//	returns, diags, err := taxtape.Returns("clients.exp")
//	if err != nil {
//		return err
//	}
//	for _, ret := range returns {
//		fmt.Println(ret.ClientID, ret.Income.TotalIncome())
//	}
//
// Callers that need the raw document model, a custom mapping table, or
// concurrent batch processing use the tape, mapping, and pipeline
// packages directly.
package taxtape

import (
	"taxtape/convert"
	"taxtape/diag"
	"taxtape/mapping"
	"taxtape/records"
	"taxtape/tape"
)

// ParseFile decodes an export file and returns the lazy document
// stream. Only an unreadable file is an error.
func ParseFile(path string) (*tape.Stream, error) {
	return tape.ParseFile(path)
}

// Returns converts every document in an export file with the embedded
// mapping table. Diagnostics accumulate across all documents in the
// file; conversion itself never fails.
func Returns(path string) ([]*records.Return, diag.Diagnostics, error) {
	return ReturnsWith(path, mapping.Default())
}

// ReturnsWith is Returns with an explicitly loaded mapping table. A
// nil table degrades conversion to literal fallback slots only.
func ReturnsWith(path string, table *mapping.Table) ([]*records.Return, diag.Diagnostics, error) {
	var ds diag.Diagnostics

	stream, err := tape.ParseFile(path)
	if err != nil {
		return nil, ds, err
	}

	conv := convert.New(table)

	var returns []*records.Return
	for doc := range stream.All() {
		ret, docDiags := conv.Convert(doc)
		returns = append(returns, ret)
		ds.Merge(docDiags)
	}

	return returns, ds, nil
}
