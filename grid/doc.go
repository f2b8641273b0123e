// Package grid models the externally produced transaction-grid extraction.
//
// A [Grid] is the row-level ledger an upstream table extractor produces for
// the same statement: dated movement rows grouped by page, with aggregate
// counts. This library never derives grid data itself; it loads, validates,
// and merges what the collaborator supplies.
//
// Loading is strict about JSON syntax and lenient about content: missing
// fields default, and an aggregate row count that disagrees with the actual
// rows is recomputed with a warning rather than rejected. Ledger columns the
// schema does not know are preserved verbatim, so merging never loses data.
package grid
