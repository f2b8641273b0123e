package model

import (
	"fmt"
	"strings"
)

// Warning codes emitted by extraction and merge stages.
const (
	WarnGarbledText     = "garbled-text"      // OCR text looks unusable
	WarnRowCountAdjust  = "row-count-adjust"  // grid total_rows disagreed with actual rows
	WarnBalanceMismatch = "balance-mismatch"  // initial + deposits - withdrawals != final
	WarnGridMissing     = "grid-missing"      // no external grid supplied
	WarnPageRange       = "page-range"        // requested page outside document
	WarnEmptyInput      = "empty-input"       // document carries no text
)

// Warning is a non-fatal quality note produced while extracting. Warnings
// never stop processing; they accompany results so callers can decide
// whether output needs manual review.
type Warning struct {
	Code    string // stable machine-readable code
	Message string // human-readable detail
	Page    int    // 1-indexed page, or 0 when not page-specific
}

// Warningf builds a warning with a formatted message
func Warningf(code string, page int, format string, args ...any) Warning {
	return Warning{Code: code, Page: page, Message: fmt.Sprintf(format, args...)}
}

// String renders the warning for logs
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("[%s] page %d: %s", w.Code, w.Page, w.Message)
	}
	return fmt.Sprintf("[%s] %s", w.Code, w.Message)
}

// FormatWarnings renders warnings one per line, for logs or error reports.
// It returns the empty string for an empty slice.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
