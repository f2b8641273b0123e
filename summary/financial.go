package summary

import (
	"strings"

	"github.com/tsawler/estado/model"
)

// Figure vocabulary of the Información Financiera section, in document
// order. Keys in the output match the document's own label text.
var (
	rendimientoFigures = []figurePattern{
		singleFigure("Saldo Promedio"),
		singleFigure("Días del Periodo"),
		rateFigure("Tasa Bruta Anual"),
		singleFigure("Saldo Promedio Gravable"),
		singleFigure("Intereses a Favor (+)"),
		singleFigure("ISR Retenido (-)"),
	}
	comisionesFigures = []figurePattern{
		dualFigure("Cheques pagados"),
		singleFigure("Manejo de Cuenta"),
	}
	totalComisionesFigures = []figurePattern{
		singleFigure("Total Comisiones"),
		dualFigure("Cargos Objetados"),
		dualFigure("Abonos Objetados"),
	}
)

// financialInfo extracts the three-part Información Financiera section:
// yield figures, commissions, and commission totals. Subsections that
// match nothing are omitted.
func (c *Composer) financialInfo(doc *model.Document) *model.SummaryRecord {
	for _, page := range doc.Pages {
		text := page.Text()
		if !strings.Contains(text, "Información Financiera") {
			continue
		}

		result := model.NewSummaryRecord()
		if r := scanFigures(text, rendimientoFigures); r.Len() > 0 {
			result.Set("Rendimiento", r)
		}
		if r := scanFigures(text, comisionesFigures); r.Len() > 0 {
			result.Set("Comisiones", r)
		}
		if r := scanFigures(text, totalComisionesFigures); r.Len() > 0 {
			result.Set("Total Comisiones", r)
		}
		if result.Len() > 0 {
			return result
		}
	}
	return nil
}
