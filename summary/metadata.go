package summary

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/estado/model"
	"github.com/tsawler/estado/profile"
)

var accountNumberPattern = regexp.MustCompile(`\b\d{10,18}\b`)

// Statement period range formats, most specific first: the labeled Spanish
// range, then dash-separated ranges with and without years.
var periodRangePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)DEL\s+(\d{1,2}/\d{1,2}/\d{2,4})\s+AL\s+(\d{1,2}/\d{1,2}/\d{2,4})`),
	regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{2,4})\s*[-–]\s*(\d{1,2}/\d{1,2}/\d{2,4})`),
	regexp.MustCompile(`(\d{1,2}/\d{1,2})\s*[-–]\s*(\d{1,2}/\d{1,2})`),
}

var spanishMonths = map[string]time.Month{
	"ENE": time.January, "FEB": time.February, "MAR": time.March,
	"ABR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AGO": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DIC": time.December,
}

var (
	monthTokenPattern = regexp.MustCompile(`^(\d{1,2})/([A-Z]{3})$`)
	dayMonthPattern   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)
)

// Metadata builds the document-level metadata: profile identity, account
// number, page count, language, and statement period. Fields that cannot
// be determined stay zero valued.
func (c *Composer) Metadata(doc *model.Document) model.Metadata {
	meta := model.Metadata{
		DocumentType: c.config.Profile.DocumentType,
		Bank:         c.config.Profile.Name,
	}
	if doc == nil {
		return meta
	}

	meta.TotalPages = doc.PageCount()
	if doc.Metadata.TotalPages > 0 {
		meta.TotalPages = doc.Metadata.TotalPages
	}
	meta.AccountNumber = findAccountNumber(doc)
	meta.Language = doc.Metadata.Language
	if meta.Language == "" {
		meta.Language = profile.DetectLanguage(doc.Text())
	}
	meta.Period = findPeriod(doc)
	return meta
}

// findAccountNumber returns the first long digit run in the document
func findAccountNumber(doc *model.Document) string {
	for _, page := range doc.Pages {
		for _, block := range page.Blocks {
			if m := accountNumberPattern.FindString(block.Text); m != "" {
				return m
			}
		}
	}
	return ""
}

// findPeriod locates the statement period range in block text. The first
// block whose range yields at least one parseable date wins.
func findPeriod(doc *model.Document) *model.Period {
	for _, page := range doc.Pages {
		for _, block := range page.Blocks {
			for _, re := range periodRangePatterns {
				m := re.FindStringSubmatch(block.Text)
				if m == nil {
					continue
				}
				start, sok := parseDateToken(m[1])
				end, eok := parseDateToken(m[2])
				if sok || eok {
					return &model.Period{Start: start, End: end}
				}
			}
		}
	}
	return nil
}

// parseDateToken converts a statement date token to an ISO date. Supported
// shapes: day/month with a Spanish month abbreviation, day/month/year with
// two or four year digits, and bare day/month. Tokens without a year
// resolve against the current year.
func parseDateToken(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	if m := monthTokenPattern.FindStringSubmatch(strings.ToUpper(s)); m != nil {
		if month, ok := spanishMonths[m[2]]; ok {
			day, err := strconv.Atoi(m[1])
			if err == nil && day >= 1 && day <= 31 {
				t := time.Date(time.Now().Year(), month, day, 0, 0, 0, 0, time.UTC)
				return t.Format("2006-01-02"), true
			}
		}
	}

	for _, format := range []string{"2/1/2006", "2/1/06"} {
		if t, err := time.Parse(format, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}

	if m := dayMonthPattern.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if day >= 1 && day <= 31 && month >= 1 && month <= 12 {
			t := time.Date(time.Now().Year(), time.Month(month), day, 0, 0, 0, 0, time.UTC)
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
