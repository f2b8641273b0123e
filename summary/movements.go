package summary

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/estado/model"
)

// Movement total patterns. Figures sit on the line after their label, with
// amounts keeping thousands separators in the source and counts as plain
// integers.
var (
	totalImporteCargosPattern = regexp.MustCompile(`(?i)TOTAL\s+IMPORTE\s+CARGOS\s*\n\s*([0-9,]+\.?\d*)`)
	totalCountCargosPattern   = regexp.MustCompile(`(?i)TOTAL\s+MOVIMIENTOS\s+CARGOS\s*\n\s*(\d+)`)
	totalImporteAbonosPattern = regexp.MustCompile(`(?i)TOTAL\s+IMPORTE\s+ABONOS\s*\n\s*([0-9,]+\.?\d*)`)
	totalCountAbonosPattern   = regexp.MustCompile(`(?i)TOTAL\s+MOVIMIENTOS\s+ABONOS\s*\n\s*(\d+)`)
)

// movementTotals extracts the Total de Movimientos footer from the first
// page that carries it. Amounts drop their thousands separators and counts
// come back as integers.
func (c *Composer) movementTotals(doc *model.Document) *model.SummaryRecord {
	for _, page := range doc.Pages {
		text := page.Text()
		if !strings.Contains(text, "Total de Movimientos") {
			continue
		}

		rec := model.NewSummaryRecord()
		if m := totalImporteCargosPattern.FindStringSubmatch(text); m != nil {
			rec.Set("total_importe_cargos", strings.ReplaceAll(m[1], ",", ""))
		}
		if m := totalCountCargosPattern.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				rec.Set("total_movimientos_cargos", n)
			}
		}
		if m := totalImporteAbonosPattern.FindStringSubmatch(text); m != nil {
			rec.Set("total_importe_abonos", strings.ReplaceAll(m[1], ",", ""))
		}
		if m := totalCountAbonosPattern.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				rec.Set("total_movimientos_abonos", n)
			}
		}
		if rec.Len() > 0 {
			return rec
		}
	}
	return nil
}
