// Package merge combines a summary record with an externally produced
// transaction grid into one merged statement document.
//
// The summary side carries a transactions placeholder marking where row
// detail belongs. [Merge] replaces that placeholder with a
// transaction_details group holding the grid. When the placeholder is
// missing the details are inserted before total_movimientos, then before
// apartados_vigentes, then appended, so the merged record always reads
// summary, then rows, then totals.
//
// Merging never mutates its inputs and is idempotent: merging an already
// merged record simply refreshes the transaction_details payload in place.
package merge
