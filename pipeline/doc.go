// Package pipeline processes batches of export files concurrently.
//
// Each file is handled by an independent parser and converter pass;
// the mapping table is the only shared resource and it is immutable
// after load, so workers share no mutable state. A file that fails to
// decode produces a Result carrying the error without disturbing the
// rest of the batch.
package pipeline
