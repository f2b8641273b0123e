package amounts

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tsawler/estado/profile"
)

// standardAmount matches a signed, comma-grouped amount with exactly two
// decimal digits, the default format of the statement family.
var standardAmount = regexp.MustCompile(`^-?\d{1,3}(?:,\d{3})*\.\d{2}$`)

// IsAmount reports whether s is a well-formed amount token in the default
// comma-grouped format, e.g. "12,383.20" or "-1,500.00".
func IsAmount(s string) bool {
	return standardAmount.MatchString(strings.TrimSpace(s))
}

// Parse converts a formatted amount string to a decimal value, honoring the
// profile's currency format. The currency symbol, grouping separators, and
// surrounding whitespace are stripped; the decimal separator is normalized.
func Parse(s string, cf profile.CurrencyFormat) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("parse amount: empty input")
	}

	if cf.Symbol != "" {
		cleaned = strings.ReplaceAll(cleaned, cf.Symbol, "")
	}
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.Join(strings.Fields(cleaned), "")

	thousands := cf.ThousandsSep
	if thousands == "" {
		thousands = ","
	}
	decimalSep := cf.DecimalSep
	if decimalSep == "" {
		decimalSep = "."
	}
	cleaned = strings.ReplaceAll(cleaned, thousands, "")
	if decimalSep != "." {
		cleaned = strings.ReplaceAll(cleaned, decimalSep, ".")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}

// Extract returns the first amount substring found in text, in the profile's
// currency format, preserving its original formatting.
func Extract(text string, cf profile.CurrencyFormat) (string, bool) {
	if text == "" {
		return "", false
	}
	m := extractPattern(cf).FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}

// extractPattern builds the in-text amount pattern for a currency format.
// The two common separator conventions get tight patterns; anything else
// falls back to a generic one built from the separators.
func extractPattern(cf profile.CurrencyFormat) *regexp.Regexp {
	thousands := cf.ThousandsSep
	if thousands == "" {
		thousands = ","
	}
	decimalSep := cf.DecimalSep
	if decimalSep == "" {
		decimalSep = "."
	}
	switch {
	case thousands == "," && decimalSep == ".":
		return regexp.MustCompile(`-?[\d,]+\.\d{2}`)
	case thousands == "." && decimalSep == ",":
		return regexp.MustCompile(`-?[\d.]+,\d{2}`)
	default:
		return regexp.MustCompile(`-?[\d` + regexp.QuoteMeta(thousands) + `]+` + regexp.QuoteMeta(decimalSep) + `\d{2}`)
	}
}

// CheckBalance verifies initial + deposits - withdrawals == final over the
// formatted amount strings. The second result reports whether the check
// could run at all; any unparseable input skips the check rather than
// failing it, since absence of a figure is not an inconsistency.
func CheckBalance(initial, deposits, withdrawals, final string, cf profile.CurrencyFormat) (consistent bool, checked bool) {
	in, err := Parse(initial, cf)
	if err != nil {
		return false, false
	}
	dep, err := Parse(deposits, cf)
	if err != nil {
		return false, false
	}
	wd, err := Parse(withdrawals, cf)
	if err != nil {
		return false, false
	}
	fin, err := Parse(final, cf)
	if err != nil {
		return false, false
	}
	return in.Add(dep).Sub(wd).Equal(fin), true
}
