// Package tables parses textual table rows from statement sections.
//
// Statement tables arrive as reconstructed row strings, not as gridded
// cells, so parsing anchors on the structurally reliable right edge of each
// row. [ParseLine] strips a trailing column code, then a percentage, then a
// monetary amount, and treats the remainder as the concept label:
//
//	rec, ok := tables.ParseLine("Saldo Inicial 12,383.20 5.29% A")
//	// rec.Concept    == "Saldo Inicial"
//	// rec.Amount     == "12,383.20"
//	// rec.Percentage == "5.29%"
//	// rec.ColumnCode == "A"
//
// A row without a trailing amount is rejected whole; partial records are
// never produced. Numeric tokens keep their original formatting.
//
// The section scanners consume reconstructed rows: [ScanCuadro] reads the
// cuadro resumen block and [ScanInvestments] reads the other-products
// investment table. [ScanPortfolioTotals] picks the apartado count and
// global balance out of running text.
package tables
