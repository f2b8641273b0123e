package tables

import "strings"

// CuadroRow is one row of the cuadro resumen summary table. JSON keys match
// the document's own column headings.
type CuadroRow struct {
	Concepto   string `json:"Concepto"`
	Cantidad   string `json:"Cantidad"`
	Porcentaje string `json:"Porcentaje,omitempty"`
	Columna    string `json:"Columna,omitempty"`
}

// ScanCuadro extracts the cuadro resumen table from reconstructed rows.
// The section starts at its heading (or directly at a Saldo Inicial row)
// and ends at a total or note row. Rows that do not parse as table lines
// are skipped; a missing section yields an empty slice.
func ScanCuadro(rows []string) []CuadroRow {
	var out []CuadroRow
	inTable := false

	for _, row := range rows {
		clean := strings.ToUpper(strings.TrimSpace(row))

		if !inTable {
			switch {
			case strings.Contains(clean, "CUADRO RESUMEN"):
				inTable = true
				continue
			case strings.Contains(clean, "CONCEPTO") && strings.Contains(clean, "CANTIDAD"):
				inTable = true
				continue
			case strings.HasPrefix(clean, "SALDO INICIAL"):
				// Table with its heading lost to OCR; this row is data.
				inTable = true
			default:
				continue
			}
		}

		if strings.HasPrefix(clean, "TOTAL") {
			break
		}
		if strings.Contains(clean, "NOTA") && strings.Contains(clean, ":") {
			break
		}
		if len(clean) < 5 || strings.Contains(clean, "PAGINA") {
			continue
		}

		rec, ok := ParseLine(row)
		if !ok {
			continue
		}
		out = append(out, CuadroRow{
			Concepto:   rec.Concept,
			Cantidad:   rec.Amount,
			Porcentaje: rec.Percentage,
			Columna:    rec.ColumnCode,
		})
	}
	return out
}
