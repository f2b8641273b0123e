package summary

import (
	"regexp"

	"github.com/tsawler/estado/model"
)

// figurePattern locates one labeled figure in page text. Patterns are tried
// in order and the first match wins; dual figures capture a count and an
// amount that render as one "count  amount" value.
type figurePattern struct {
	key      string
	dual     bool
	patterns []*regexp.Regexp
}

// singleFigure matches a label followed by an amount on the next line or,
// failing that, on the same line.
func singleFigure(name string) figurePattern {
	q := regexp.QuoteMeta(name)
	return figurePattern{
		key: name,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(q + `\s*\n\s*([0-9,]+\.?\d*)`),
			regexp.MustCompile(q + `\s+([0-9,]+\.?\d*)`),
		},
	}
}

// dualFigure matches a label followed by a count line and an amount line
func dualFigure(name string) figurePattern {
	q := regexp.QuoteMeta(name)
	return figurePattern{
		key:  name,
		dual: true,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(q + `\s*\n\s*(\d+)\s*\n\s*([0-9,]+\.?\d*)`),
		},
	}
}

// rateFigure matches a label whose percent sign sits between label and
// value, as in "Tasa Bruta Anual % 0.000". The sign moves into the key.
func rateFigure(name string) figurePattern {
	q := regexp.QuoteMeta(name)
	return figurePattern{
		key: name + " %",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(q + `\s+%\s+([0-9,]+\.?\d*)`),
		},
	}
}

// scanFigures extracts every matching figure from text, keyed in the order
// the figure list defines.
func scanFigures(text string, figures []figurePattern) *model.SummaryRecord {
	rec := model.NewSummaryRecord()
	for _, f := range figures {
		for _, re := range f.patterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			if f.dual {
				rec.Set(f.key, m[1]+"  "+m[2])
			} else {
				rec.Set(f.key, m[1])
			}
			break
		}
	}
	return rec
}
