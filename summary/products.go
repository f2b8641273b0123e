package summary

import (
	"strings"

	"github.com/tsawler/estado/layout"
	"github.com/tsawler/estado/model"
	"github.com/tsawler/estado/tables"
)

// investmentsGroupKey is the document's own heading for the investment table
const investmentsGroupKey = "Otros productos incluidos en el estado de cuenta (inversiones)"

// otherProducts extracts the other-products section: the investment table
// plus the apartado count and global balance footer figures. Each piece
// keeps its first occurrence across pages.
func (c *Composer) otherProducts(doc *model.Document) *model.SummaryRecord {
	var investments []tables.InvestmentRow
	var totals tables.PortfolioTotals

	for _, page := range doc.Pages {
		text := page.Text()

		if len(investments) == 0 &&
			(strings.Contains(text, "Otros productos incluidos") || strings.Contains(text, "inversiones")) {
			investments = c.scanInvestmentTable(page)
		}

		t := tables.ScanPortfolioTotals(text)
		if totals.TotalApartados == "" {
			totals.TotalApartados = t.TotalApartados
		}
		if totals.SaldoGlobal == "" {
			totals.SaldoGlobal = t.SaldoGlobal
		}
		if totals.Legacy == "" {
			totals.Legacy = t.Legacy
		}
	}

	result := model.NewSummaryRecord()
	if len(investments) > 0 {
		result.Set(investmentsGroupKey, investments)
	}
	if totals.TotalApartados != "" {
		result.Set("Total de Apartados", totals.TotalApartados)
	}
	if totals.SaldoGlobal != "" {
		result.Set("Saldo Global", totals.SaldoGlobal)
	}
	if totals.TotalApartados == "" && totals.SaldoGlobal == "" && totals.Legacy != "" {
		result.Set("Total de Apartados en Global", totals.Legacy)
	}
	if result.Len() == 0 {
		return nil
	}
	return result
}

// scanInvestmentTable reconstructs the page at each configured tolerance
// until one yields investment rows. Dense tables merge under the standard
// tolerance, so the tighter settings run first.
func (c *Composer) scanInvestmentTable(page *model.Page) []tables.InvestmentRow {
	for _, reconstructor := range c.tableRows {
		rows := layout.Texts(reconstructor.Reconstruct(page.Blocks))
		if found := tables.ScanInvestments(rows); len(found) > 0 {
			return found
		}
	}
	return nil
}
