// Package amounts recognizes and parses monetary tokens in statement text.
//
// Extraction keeps amounts as their original formatted strings; this package
// exists for the places that need the numeric value behind the string:
// consistency checks between stated balances and reported movement totals,
// and validation of external grid data. Arithmetic uses decimal values, never
// floats, so formatted cents survive round trips exactly.
//
// Parsing honors a profile's currency format (symbol, thousands separator,
// decimal separator), so European-formatted statements parse as correctly as
// the default comma-grouped form.
package amounts
