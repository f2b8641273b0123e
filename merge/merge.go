package merge

import (
	"github.com/tsawler/estado/grid"
	"github.com/tsawler/estado/model"
)

// emptyDetails is the transaction_details payload used when no grid was
// supplied, so consumers always find the group with a row count.
type emptyDetails struct {
	TotalRows int         `json:"total_rows"`
	Pages     []grid.Page `json:"pages"`
}

// Merge returns a copy of summary with the transaction grid attached as the
// transaction_details group. The transactions placeholder, if present, fixes
// the position; otherwise the group lands before total_movimientos, before
// apartados_vigentes, or at the end, in that order of preference.
//
// A nil summary starts from an empty record. A nil grid still produces a
// transaction_details group, with zero rows and a warning.
func Merge(summary *model.SummaryRecord, g *grid.Grid) (*model.SummaryRecord, []model.Warning) {
	var out *model.SummaryRecord
	if summary == nil {
		out = model.NewSummaryRecord()
	} else {
		out = summary.Clone()
	}

	var details any
	warnings := g.Validate()
	if g == nil {
		details = emptyDetails{Pages: []grid.Page{}}
	} else {
		details = g
	}

	if out.Has(model.GroupTransactions) {
		i := out.Index(model.GroupTransactions)
		out.Delete(model.GroupTransactions)
		out.InsertAt(i, model.GroupTransactionGrid, details)
		return out, warnings
	}
	if out.Has(model.GroupTransactionGrid) {
		out.Set(model.GroupTransactionGrid, details)
		return out, warnings
	}
	if out.InsertBefore(model.GroupMovementTotals, model.GroupTransactionGrid, details) {
		return out, warnings
	}
	if out.InsertBefore(model.GroupPendingHolds, model.GroupTransactionGrid, details) {
		return out, warnings
	}
	out.Set(model.GroupTransactionGrid, details)
	return out, warnings
}

// BuildDocument wraps a merged summary in the full output document shape.
func BuildDocument(meta model.Metadata, summary *model.SummaryRecord, g *grid.Grid) (*model.MergedDocument, []model.Warning) {
	record, warnings := Merge(summary, g)
	return &model.MergedDocument{
		Metadata:       meta,
		StructuredData: model.StructuredData{AccountSummary: record},
	}, warnings
}
