// Package fields implements boundary-aware labeled-field extraction.
//
// Statement sections often arrive as one concatenated run of text in which
// several labeled values follow each other with no reliable delimiter:
//
//	SUCURSAL: 5389 CIHUATLAN DIRECCION: ALVARO OBREGON 26 PLAZA: CIHUATLAN
//
// Matching a label and capturing "everything after it" would bleed the next
// label and its value into the captured text. The [Extractor] instead scans
// the text once, records the position of every known label occurrence, and
// slices values between consecutive label positions, so a captured value can
// never absorb a neighboring label.
//
// Matching is case and diacritic insensitive ("Dirección" matches
// "DIRECCION") and spans lines. Labels that never occur are simply absent
// from the result; two adjacent labels yield an empty value for the first.
// Empty input yields an empty result, never an error.
package fields
