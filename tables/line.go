package tables

import (
	"regexp"
	"strings"

	"github.com/tsawler/estado/amounts"
)

// LineRecord is one parsed summary-table row. All values keep their
// original textual formatting.
type LineRecord struct {
	Concept    string
	Amount     string
	Percentage string
	ColumnCode string
}

var (
	columnCodePattern = regexp.MustCompile(`^[A-Z0-9]+$`)
	percentagePattern = regexp.MustCompile(`^-?\d+(?:\.\d+)?%$`)
)

// ParseLine parses one cleaned table row of the shape
// "<concept> <amount> <percent>% <columnCode>" by stripping anchors right
// to left: column code, then percentage, then amount. Code and percentage
// are optional; a row without a trailing amount is rejected whole, never
// partially parsed.
func ParseLine(line string) (LineRecord, bool) {
	rest := strings.TrimSpace(line)
	if rest == "" {
		return LineRecord{}, false
	}

	var rec LineRecord
	if token, remainder, ok := lastToken(rest); ok && columnCodePattern.MatchString(token) {
		rec.ColumnCode = token
		rest = remainder
	}
	if token, remainder, ok := lastToken(rest); ok && percentagePattern.MatchString(token) {
		rec.Percentage = token
		rest = remainder
	}
	token, remainder, ok := lastToken(rest)
	if !ok || !amounts.IsAmount(token) {
		return LineRecord{}, false
	}
	rec.Amount = token
	rec.Concept = remainder
	return rec, true
}

// lastToken splits off the final whitespace-delimited token. It reports
// false when nothing remains.
func lastToken(s string) (token, remainder string, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", false
	}
	i := strings.LastIndexAny(s, " \t")
	if i < 0 {
		return s, "", true
	}
	return s[i+1:], strings.TrimSpace(s[:i]), true
}
