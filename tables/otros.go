package tables

import (
	"regexp"
	"strings"
)

// InvestmentRow is one row of the other-products investment table. JSON
// keys match the document's own column headings.
type InvestmentRow struct {
	Contrato        string `json:"Contrato"`
	Producto        string `json:"Producto"`
	Tasa            string `json:"Tasa de Interés anual"`
	GATNominal      string `json:"GAT Nominal"`
	GATReal         string `json:"GAT Real"`
	TotalComisiones string `json:"Total de comisiones"`
}

// investment table end and header markers
var investmentStops = []string{
	"TOTAL DE APARTADOS",
	"SALDO GLOBAL",
	"DETALLE DE MOVIMIENTOS",
}

var investmentSkips = []string{
	"CONTRATO",
	"GAT RELEASE",
	"ANTES DE IMPUESTOS",
	"GAT REAL ES EL RENDIMIENTO",
}

// ScanInvestments extracts the investment rows of the other-products table
// from reconstructed rows. The table starts after a CONTRATO header row and
// ends at the next section. A row only counts when its first token is a
// contract number or an N/A marker, which filters dates, bank names, and
// stray balances out of the table body.
func ScanInvestments(rows []string) []InvestmentRow {
	var out []InvestmentRow
	inTable := false

	for _, row := range rows {
		clean := strings.ToUpper(strings.TrimSpace(row))

		if !inTable {
			if strings.Contains(clean, "CONTRATO") &&
				(strings.Contains(clean, "PRODUCTO") || strings.Contains(clean, "TASA")) {
				inTable = true
			}
			continue
		}

		if stopsInvestmentTable(clean) {
			break
		}
		if skipsInvestmentRow(clean) {
			continue
		}

		tokens := strings.Fields(row)
		if len(tokens) < 3 {
			continue
		}
		contrato := tokens[0]
		if !validContract(contrato) {
			continue
		}

		item := InvestmentRow{
			Contrato:        contrato,
			Tasa:            "N/A",
			GATNominal:      tokens[len(tokens)-3],
			GATReal:         tokens[len(tokens)-2],
			TotalComisiones: tokens[len(tokens)-1],
		}

		// The rate identifies itself with a percent sign; search backwards
		// from just before the GAT columns.
		tasaIdx := -1
		for i := len(tokens) - 4; i >= 1; i-- {
			if strings.Contains(tokens[i], "%") {
				item.Tasa = tokens[i]
				tasaIdx = i
				break
			}
		}
		if tasaIdx > 0 {
			item.Producto = strings.Join(tokens[1:tasaIdx], " ")
		} else if len(tokens) > 4 {
			item.Producto = strings.Join(tokens[1:len(tokens)-3], " ")
		}

		out = append(out, item)
	}
	return out
}

func stopsInvestmentTable(clean string) bool {
	for _, stop := range investmentStops {
		if strings.Contains(clean, stop) {
			return true
		}
	}
	return strings.Contains(clean, "OPER") && strings.Contains(clean, "LIQ")
}

func skipsInvestmentRow(clean string) bool {
	for _, skip := range investmentSkips {
		if strings.Contains(clean, skip) {
			return true
		}
	}
	return false
}

// validContract accepts contract numbers and the N/A spellings the
// statements use
func validContract(token string) bool {
	upper := strings.ToUpper(token)
	if upper == "NA" || strings.Contains(upper, "N/A") {
		return true
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return token != ""
}

// PortfolioTotals are the footer figures below the investment table
type PortfolioTotals struct {
	TotalApartados string // count of active apartados
	SaldoGlobal    string // "$ <amount>" global balance
	Legacy         string // combined legacy "Total de Apartados en Global" figure
}

var (
	totalApartadosPattern = regexp.MustCompile(`(?i)Total\s+de\s+Apartados\s*[:\s]*(\d+)`)
	saldoGlobalPattern    = regexp.MustCompile(`(?i)Saldo\s+Global\s*[:\s]*\$?\s*([\d,.]+(?:[ \t]+[\d,.]+)*)`)
	legacyGlobalPattern   = regexp.MustCompile(`(?i)Total\s+de\s+Apartados\s+en\s+Global\s*[:\s]*\$?\s*([\d\s,.]+)`)
)

// ScanPortfolioTotals picks the apartado count and global balance out of
// page text. The legacy combined figure is only consulted when neither
// current-format figure is present.
func ScanPortfolioTotals(text string) PortfolioTotals {
	var totals PortfolioTotals
	if m := totalApartadosPattern.FindStringSubmatch(text); m != nil {
		totals.TotalApartados = m[1]
	}
	if m := saldoGlobalPattern.FindStringSubmatch(text); m != nil {
		totals.SaldoGlobal = "$ " + strings.TrimSpace(m[1])
	}
	if totals.TotalApartados == "" && totals.SaldoGlobal == "" {
		if m := legacyGlobalPattern.FindStringSubmatch(text); m != nil {
			totals.Legacy = "$ " + strings.TrimSpace(m[1])
		}
	}
	return totals
}
