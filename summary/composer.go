package summary

import (
	"github.com/tsawler/estado/fields"
	"github.com/tsawler/estado/layout"
	"github.com/tsawler/estado/model"
	"github.com/tsawler/estado/profile"
	"github.com/tsawler/estado/tables"
)

// Config controls summary composition
type Config struct {
	// Profile supplies the label vocabulary, exclusion markers, and
	// currency conventions of the statement family being read.
	Profile profile.Profile

	// RowTolerances are tried in order when reconstructing dense tables.
	// The first tolerance that yields table rows wins; dense investment
	// tables need a tighter tolerance than the standard table spacing.
	RowTolerances []float64
}

// DefaultConfig returns composition defaults for the built-in profile
func DefaultConfig() Config {
	return Config{
		Profile:       profile.Default(),
		RowTolerances: []float64{5, 10},
	}
}

// Composer assembles the ordered account-summary record for one document
type Composer struct {
	config    Config
	branches  *fields.Extractor
	selector  *layout.CandidateDetector
	rows      *layout.RowReconstructor
	tableRows []*layout.RowReconstructor
}

// NewComposer creates a composer with default configuration
func NewComposer() *Composer {
	return NewComposerWithConfig(DefaultConfig())
}

// NewComposerWithConfig creates a composer with custom configuration
func NewComposerWithConfig(config Config) *Composer {
	if len(config.RowTolerances) == 0 {
		config.RowTolerances = []float64{5, 10}
	}

	tableRows := make([]*layout.RowReconstructor, 0, len(config.RowTolerances))
	for _, tol := range config.RowTolerances {
		tableRows = append(tableRows, layout.NewRowReconstructorWithConfig(layout.RowConfig{YTolerance: tol}))
	}

	return &Composer{
		config:    config,
		branches:  fields.NewExtractorWithConfig(fields.Config{Labels: config.Profile.BranchLabels}),
		selector:  layout.NewCandidateDetectorWithConfig(layout.CandidateConfigForProfile(config.Profile)),
		rows:      layout.NewRowReconstructor(),
		tableRows: tableRows,
	}
}

// Compose builds the summary record for a document. Field groups that find
// no content are omitted; the record carries a transactions placeholder
// marking where merged transaction detail belongs. The record is never nil,
// and a document without pages yields an empty record plus a warning
// rather than an error.
func (c *Composer) Compose(doc *model.Document) (*model.SummaryRecord, []model.Warning) {
	record := model.NewSummaryRecord()
	if doc == nil || doc.PageCount() == 0 {
		return record, []model.Warning{model.Warningf(model.WarnEmptyInput, 0, "document has no pages")}
	}

	var warnings []model.Warning

	if info := c.customerInfo(doc); info.Len() > 0 {
		record.Set(model.GroupCustomerInfo, info)
	}
	if pages := c.pagesInfo(doc); len(pages) > 0 {
		record.Set(model.GroupPagesInfo, pages)
	}
	if branch := c.branchInfo(doc); branch != nil {
		record.Set(model.GroupBranchInfo, branch)
	}

	behavior := c.behavior(doc)
	balances, balanceWarnings := deriveBalances(behavior, c.config.Profile.Currency)
	warnings = append(warnings, balanceWarnings...)
	for _, b := range balances {
		record.Set(b.group, b.value)
	}

	if fin := c.financialInfo(doc); fin != nil {
		record.Set(model.GroupFinancialInfo, fin)
	}
	if behavior != nil && behavior.Len() > 0 {
		record.Set(model.GroupBehavior, behavior)
	}
	if products := c.otherProducts(doc); products != nil {
		record.Set(model.GroupOtherProducts, products)
	}

	// Position marker for the merge stage.
	record.Set(model.GroupTransactions, []any{})

	if totals := c.movementTotals(doc); totals != nil {
		record.Set(model.GroupMovementTotals, totals)
	}
	if holds := c.pendingHolds(doc); len(holds) > 0 {
		record.Set(model.GroupPendingHolds, holds)
	}
	if cuadro := c.summaryTable(doc); len(cuadro) > 0 {
		record.Set(model.GroupSummaryTable, cuadro)
	}

	return record, warnings
}

// summaryTable extracts the closing cuadro resumen table from the first
// page that yields rows.
func (c *Composer) summaryTable(doc *model.Document) []tables.CuadroRow {
	for _, page := range doc.Pages {
		rows := layout.Texts(c.rows.Reconstruct(page.Blocks))
		if found := tables.ScanCuadro(rows); len(found) > 0 {
			return found
		}
	}
	return nil
}
