// Package tape parses the line-oriented export format produced by tax
// preparation software into a hierarchical document model.
//
// An export file is a flat stream of marker lines with no nesting
// syntax and no escaping:
//
//	**BEGIN,2024:I:ALICE:1,123-45-6789,77,1,
//	\@180 \ IRS W-2
//	\:1
//	\&1
//	.30 T
//	.41 ACME ROBOTICS LLC
//	.54 84,500.00
//
// # Grammar
//
//   - Header: **BEGIN,<year>:<type>:<client>:<seq>,<id>,<office>,<group>,<location>
//   - Form boundary: \@<code> \ <display name>
//   - Section boundary: \:<n>
//   - Entry boundary: \&<n>
//   - Field: .<slot>[M] <text>, where a trailing M marks a memo variant
//
// Unrecognized lines, field lines outside an open entry, and markers
// outside an open document are ignored; the grammar has no error
// states.
//
// # Document model
//
// A Document holds Forms keyed by numeric code; a Form holds repeating
// Entries; an Entry holds Fields keyed by raw slot id. Slot numbers
// collide freely across form codes, so slot meaning is resolved by the
// mapping and convert packages, not here.
//
// # Streaming
//
// Parse returns a Stream that produces one Document per header line,
// scanning the input exactly once and holding one document in memory
// at a time. Multi-client exports of any size can be walked with
// Stream.Next or ranged with Stream.All.
//
// # Encodings
//
// Exports arrive as UTF-16LE, UTF-8 or Windows-1252 depending on the
// exporting system's configuration. DecodeFile tries those candidates
// in order, validating each by looking for the header token near the
// start of the decoded text.
package tape
