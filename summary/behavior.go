package summary

import (
	"regexp"
	"strings"

	"github.com/tsawler/estado/amounts"
	"github.com/tsawler/estado/model"
	"github.com/tsawler/estado/profile"
)

// Figure vocabulary of the Comportamiento section. Balance labels tolerate
// an optional sign in parentheses and a colon or line break before the
// amount; movement counts pair with their amounts across line breaks.
var behaviorFigures = []figurePattern{
	{
		key: "Saldo Anterior",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`Saldo Anterior\s*(?:\([+\s]*\))?\s*(?:\n|:)?\s*([0-9,]+\.?\d*)`),
		},
	},
	{
		key: "Saldo Final",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`Saldo Final\s*(?:\([+\s]*\))?\s*(?:\n|:)?\s*([0-9,]+\.?\d*)`),
		},
	},
	{
		key:  "Depósitos / Abonos (+)",
		dual: true,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`Depósitos / Abonos (?:\(\+\))?\s*\n\s*(\d+)\s*\n\s*([0-9,]+\.?\d*)`),
		},
	},
	{
		key:  "Retiros / Cargos (-)",
		dual: true,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`Retiros / Cargos (?:\(-\))?\s*\n\s*(\d+)\s*\n\s*([0-9,]+\.?\d*)`),
		},
	},
	{
		key: "Saldo Promedio Mínimo Mensual",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`Saldo Promedio Mínimo Mensual:?\s*\n?\s*([0-9,]+\.?\d*)`),
		},
	},
}

// behavior extracts the Comportamiento indicator table from the first page
// that carries it.
func (c *Composer) behavior(doc *model.Document) *model.SummaryRecord {
	for _, page := range doc.Pages {
		text := page.Text()
		if !strings.Contains(text, "Comportamiento") {
			continue
		}
		if rec := scanFigures(text, behaviorFigures); rec.Len() > 0 {
			return rec
		}
	}
	return nil
}

// orderedBalance is one derived balance group in output order
type orderedBalance struct {
	group string
	value string
}

// deriveBalances turns the behavior figures into the four standard balance
// groups. Values normalize to plain two-decimal strings. When all four
// figures are present, the balance equation is verified and an inconsistency
// is reported as a warning, never an error.
func deriveBalances(behavior *model.SummaryRecord, cf profile.CurrencyFormat) ([]orderedBalance, []model.Warning) {
	if behavior == nil {
		return nil, nil
	}

	raw := map[string]string{}
	read := func(key string) string {
		v, ok := behavior.Get(key)
		if !ok {
			return ""
		}
		s, _ := v.(string)
		return s
	}
	raw[model.GroupInitialBalance] = read("Saldo Anterior")
	raw[model.GroupFinalBalance] = read("Saldo Final")
	raw[model.GroupDeposits] = dualAmount(read("Depósitos / Abonos (+)"))
	raw[model.GroupWithdrawals] = dualAmount(read("Retiros / Cargos (-)"))

	var out []orderedBalance
	for _, group := range []string{
		model.GroupInitialBalance,
		model.GroupDeposits,
		model.GroupWithdrawals,
		model.GroupFinalBalance,
	} {
		if raw[group] == "" {
			continue
		}
		dec, err := amounts.Parse(raw[group], cf)
		if err != nil {
			continue
		}
		out = append(out, orderedBalance{group: group, value: dec.StringFixed(2)})
	}

	var warnings []model.Warning
	consistent, checked := amounts.CheckBalance(
		raw[model.GroupInitialBalance],
		raw[model.GroupDeposits],
		raw[model.GroupWithdrawals],
		raw[model.GroupFinalBalance],
		cf,
	)
	if checked && !consistent {
		warnings = append(warnings, model.Warningf(model.WarnBalanceMismatch, 0,
			"initial %s + deposits %s - withdrawals %s does not equal final %s",
			raw[model.GroupInitialBalance], raw[model.GroupDeposits],
			raw[model.GroupWithdrawals], raw[model.GroupFinalBalance]))
	}
	return out, warnings
}

// dualAmount returns the amount part of a "count  amount" figure
func dualAmount(v string) string {
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
