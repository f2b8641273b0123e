package estado

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/estado/grid"
	"github.com/tsawler/estado/ingest"
	"github.com/tsawler/estado/model"
	"github.com/tsawler/estado/profile"
)

const statementText = "Comportamiento\n" +
	"Saldo Anterior ( + )\n12,383.20\n" +
	"Depósitos / Abonos (+)\n3\n4,500.00\n" +
	"Retiros / Cargos (-)\n5\n2,500.00\n" +
	"Saldo Final\n14,383.20"

const statementJSON = `{
  "engine": "tesseract",
  "language": "spa",
  "total_pages": 2,
  "pages": [
    {
      "page_number": 1,
      "width": 612,
      "height": 792,
      "text_blocks": [
        {"text": "No. de Cuenta 0123456789", "bbox": [50, 430, 300, 440]},
        {"text": "Periodo DEL 01/01/2025 AL 31/01/2025", "bbox": [50, 450, 350, 460]},
        {"text": "Comportamiento\nSaldo Anterior ( + )\n12,383.20\nDepósitos / Abonos (+)\n3\n4,500.00\nRetiros / Cargos (-)\n5\n2,500.00\nSaldo Final\n14,383.20", "bbox": [50, 470, 560, 560]}
      ]
    },
    {
      "page_number": 2,
      "text_blocks": [
        {"text": "Total de Movimientos", "bbox": [50, 430, 200, 440]}
      ]
    }
  ]
}`

const movementsJSON = `{
  "document_type": "A",
  "total_rows": 2,
  "pages": [
    {
      "page": 0,
      "rows": [
        {"fecha_oper": "02/ENE", "descripcion": "PAGO RECIBIDO", "abonos": "4,500.00"},
        {"fecha_oper": "15/ENE", "descripcion": "RETIRO CAJERO", "cargos": "2,500.00"}
      ]
    }
  ]
}`

// writeTempFile drops content into a fresh temp dir and returns the path
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestOpen(t *testing.T) {
	// Test with non-existent file
	_, _, err := Open("nonexistent.json").Text()
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestOpenDetectsFormat(t *testing.T) {
	// JSON content routed to the OCR JSON adapter
	jsonPath := writeTempFile(t, "statement.json", statementJSON)
	doc, _, err := Open(jsonPath).Document()
	if err != nil {
		t.Fatalf("failed to open JSON statement: %v", err)
	}
	if doc.PageCount() != 2 {
		t.Errorf("expected 2 pages, got %d", doc.PageCount())
	}

	// hOCR content routed to the hOCR adapter, even without an extension hint
	hocr := "<!DOCTYPE html>\n<html><body>" +
		"<div class='ocr_page' title='bbox 0 0 612 792'>" +
		"<span class='ocr_line' title='bbox 50 430 200 440'>" +
		"<span class='ocrx_word' title='bbox 50 430 200 440'>Comportamiento</span>" +
		"</span></div></body></html>"
	hocrPath := writeTempFile(t, "statement.scan", hocr)
	text, _, err := Open(hocrPath).Text()
	if err != nil {
		t.Fatalf("failed to open hOCR statement: %v", err)
	}
	if !strings.Contains(text, "Comportamiento") {
		t.Error("expected text to contain 'Comportamiento'")
	}
}

func TestOpenUnsupportedFormat(t *testing.T) {
	path := writeTempFile(t, "statement.txt", "plain text, no structure")

	_, _, err := Open(path).Text()
	if err == nil {
		t.Error("expected error for unrecognized input format")
	}
}

func TestFromOCRFileMissing(t *testing.T) {
	// Test with non-existent file
	_, _, err := FromOCRFile("nonexistent.json").Summary()
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestSummaryFromText(t *testing.T) {
	record, warnings, err := FromText(statementText).Summary()
	if err != nil {
		t.Fatalf("failed to extract summary: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings for consistent figures, got %v", warnings)
	}

	v, ok := record.Get(model.GroupInitialBalance)
	if !ok || v != "12383.20" {
		t.Errorf("expected initial balance 12383.20, got %v", v)
	}
	v, ok = record.Get(model.GroupFinalBalance)
	if !ok || v != "14383.20" {
		t.Errorf("expected final balance 14383.20, got %v", v)
	}

	// Summary keeps the placeholder that marks the merge position
	if !record.Has(model.GroupTransactions) {
		t.Error("expected transactions placeholder in summary")
	}
}

func TestTextFromOCRFile(t *testing.T) {
	path := writeTempFile(t, "statement.json", statementJSON)

	text, _, err := FromOCRFile(path).Text()
	if err != nil {
		t.Fatalf("failed to extract text: %v", err)
	}

	if !strings.Contains(text, "Comportamiento") {
		t.Error("expected text to contain 'Comportamiento'")
	}
	if !strings.Contains(text, "Total de Movimientos") {
		t.Error("expected text to contain page 2 content")
	}
}

func TestDocument(t *testing.T) {
	path := writeTempFile(t, "statement.json", statementJSON)

	doc, warnings, err := FromOCRFile(path).Document()
	if err != nil {
		t.Fatalf("failed to read document: %v", err)
	}

	if doc == nil {
		t.Fatal("expected non-nil document")
	}
	if doc.PageCount() != 2 {
		t.Errorf("expected 2 pages, got %d", doc.PageCount())
	}
	if doc.Engine != "tesseract" {
		t.Errorf("expected engine tesseract, got %q", doc.Engine)
	}

	// Log warnings for debugging
	if len(warnings) > 0 {
		t.Logf("warnings: %v", warnings)
	}
}

func TestPageCount(t *testing.T) {
	path := writeTempFile(t, "statement.json", statementJSON)

	count, err := FromOCRFile(path).PageCount()
	if err != nil {
		t.Fatalf("failed to get page count: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 pages, got %d", count)
	}

	count, err = FromText(statementText).PageCount()
	if err != nil {
		t.Fatalf("failed to get page count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 page, got %d", count)
	}
}

func TestPageSelection(t *testing.T) {
	path := writeTempFile(t, "statement.json", statementJSON)

	doc, _, err := FromOCRFile(path).WithPages(2).Document()
	if err != nil {
		t.Fatalf("failed to select page 2: %v", err)
	}

	if doc.PageCount() != 1 {
		t.Errorf("expected 1 page, got %d", doc.PageCount())
	}
	if !strings.Contains(doc.Text(), "Total de Movimientos") {
		t.Error("expected the selected page to be page 2")
	}
	// Selected pages renumber from 1
	if doc.Pages[0].Number != 1 {
		t.Errorf("expected selected page renumbered to 1, got %d", doc.Pages[0].Number)
	}
}

func TestPageSelectionKeepsSourceIntact(t *testing.T) {
	source := ingest.FromText("page one")
	source.AddPage(model.NewPage(0, 0))

	_, _, err := FromDocument(source).WithPages(2).Document()
	if err != nil {
		t.Fatalf("failed to select page: %v", err)
	}

	// Selection must not renumber the caller's pages
	if source.Pages[1].Number != 2 {
		t.Errorf("expected source page numbering untouched, got %d", source.Pages[1].Number)
	}
}

func TestInvalidPage(t *testing.T) {
	// Try to select page 1000 (should fail)
	_, _, err := FromText(statementText).WithPages(1000).Document()
	if err == nil {
		t.Error("expected error for invalid page number")
	}

	// Try page 0 (should fail - 1-indexed)
	_, _, err = FromText(statementText).WithPages(0).Document()
	if err == nil {
		t.Error("expected error for page 0 (1-indexed)")
	}
}

func TestMergedWithGridFile(t *testing.T) {
	ocrPath := writeTempFile(t, "statement.json", statementJSON)
	gridPath := writeTempFile(t, "movements.json", movementsJSON)

	merged, warnings, err := FromOCRFile(ocrPath).
		WithGridFile(gridPath).
		Merged()
	if err != nil {
		t.Fatalf("failed to merge: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}

	if merged.Metadata.AccountNumber != "0123456789" {
		t.Errorf("expected account number 0123456789, got %q", merged.Metadata.AccountNumber)
	}

	record := merged.StructuredData.AccountSummary
	if record.Has(model.GroupTransactions) {
		t.Error("expected the transactions placeholder to be replaced")
	}
	v, ok := record.Get(model.GroupTransactionGrid)
	if !ok {
		t.Fatal("expected transaction details in merged output")
	}
	if g, ok := v.(*grid.Grid); !ok || g.RowCount() != 2 {
		t.Errorf("expected a 2 row grid payload, got %v", v)
	}
}

func TestMergedWithGrid(t *testing.T) {
	g := &grid.Grid{
		TotalRows: 1,
		Pages:     []grid.Page{{Page: 0, Rows: []grid.Row{{FechaOper: "02/ENE"}}}},
	}

	merged, _, err := FromText(statementText).WithGrid(g).Merged()
	if err != nil {
		t.Fatalf("failed to merge: %v", err)
	}

	v, ok := merged.StructuredData.AccountSummary.Get(model.GroupTransactionGrid)
	if !ok {
		t.Fatal("expected transaction details in merged output")
	}
	if got, ok := v.(*grid.Grid); !ok || got != g {
		t.Error("expected the supplied grid as the details payload")
	}
}

func TestMergedWithoutGrid(t *testing.T) {
	merged, warnings, err := FromText(statementText).Merged()
	if err != nil {
		t.Fatalf("failed to merge: %v", err)
	}

	found := false
	for _, w := range warnings {
		if w.Code == model.WarnGridMissing {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a grid-missing warning, got %v", warnings)
	}

	// The details section is still present, just empty
	if !merged.StructuredData.AccountSummary.Has(model.GroupTransactionGrid) {
		t.Error("expected an empty transaction details section")
	}
}

func TestMergedWithBadGridFile(t *testing.T) {
	gridPath := writeTempFile(t, "movements.json", `{"pages": [`)

	_, _, err := FromText(statementText).WithGridFile(gridPath).Merged()
	if err == nil {
		t.Error("expected error for malformed grid file")
	}
}

func TestFromDocument(t *testing.T) {
	doc := ingest.FromText(statementText)

	record, _, err := FromDocument(doc).Summary()
	if err != nil {
		t.Fatalf("failed to extract summary: %v", err)
	}
	if !record.Has(model.GroupInitialBalance) {
		t.Error("expected initial balance group")
	}

	// Nil document is an error, not a panic
	_, _, err = FromDocument(nil).Summary()
	if err == nil {
		t.Error("expected error for nil document")
	}
}

func TestFromHOCRFile(t *testing.T) {
	hocr := `<html><body>
<div class='ocr_page' title='image "p1.png"; bbox 0 0 1224 1584'>
<div class='ocr_carea' title='bbox 61 148 367 184'>
<p class='ocr_par' lang='spa' title='bbox 61 148 367 184'>
<span class='ocr_line' title='bbox 61 148 367 166'>
<span class='ocrx_word' title='bbox 61 148 180 166'>Comportamiento</span>
</span>
</p>
</div>
</div>
</body></html>`
	path := writeTempFile(t, "statement.html", hocr)

	text, _, err := FromHOCRFile(path).Text()
	if err != nil {
		t.Fatalf("failed to read hOCR: %v", err)
	}
	if !strings.Contains(text, "Comportamiento") {
		t.Error("expected text to contain 'Comportamiento'")
	}
}

func TestGarbledWarning(t *testing.T) {
	_, warnings, err := FromText(strings.Repeat("©×÷±", 15)).Text()
	if err != nil {
		t.Fatalf("failed to extract text: %v", err)
	}

	found := false
	for _, w := range warnings {
		if w.Code == model.WarnGarbledText {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a garbled-text warning, got %v", warnings)
	}

	// Readable text must not trip the check
	_, warnings, err = FromText(statementText).Text()
	if err != nil {
		t.Fatalf("failed to extract text: %v", err)
	}
	for _, w := range warnings {
		if w.Code == model.WarnGarbledText {
			t.Error("expected no garbled-text warning for readable text")
		}
	}
}

func TestWithProfile(t *testing.T) {
	record, _, err := FromText(statementText).
		WithProfile(profile.Default()).
		Summary()
	if err != nil {
		t.Fatalf("failed to extract with explicit profile: %v", err)
	}
	if !record.Has(model.GroupInitialBalance) {
		t.Error("expected initial balance group")
	}
}

func TestChainImmutability(t *testing.T) {
	// Create base extractor
	base := FromText(statementText)

	// Create derived extractors
	withPage1 := base.WithPages(1)
	withPage2 := base.WithPages(2)
	withGrid := base.WithGrid(&grid.Grid{})

	// Verify they're independent
	if len(base.options.pages) != 0 {
		t.Error("base extractor should have no pages set")
	}
	if base.options.grid != nil {
		t.Error("base extractor should have no grid set")
	}
	if len(withPage1.options.pages) != 1 || withPage1.options.pages[0] != 1 {
		t.Error("withPage1 should have page 1")
	}
	if len(withPage2.options.pages) != 1 || withPage2.options.pages[0] != 2 {
		t.Error("withPage2 should have page 2")
	}
	if withGrid.options.grid == nil {
		t.Error("withGrid should have a grid set")
	}
}

func TestMust(t *testing.T) {
	// Test Must with successful result
	result := Must("hello", nil)
	if result != "hello" {
		t.Errorf("expected 'hello', got %q", result)
	}

	// Test Must with error (should panic)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Must to panic on error")
		}
	}()
	Must("", os.ErrNotExist)
}

func TestMustMerged(t *testing.T) {
	merged := MustMerged(FromText(statementText).Merged())
	if merged == nil {
		t.Fatal("expected non-nil merged document")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected MustMerged to panic on error")
		}
	}()
	MustMerged(FromOCRFile("nonexistent.json").Merged())
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		model.Warningf(model.WarnGridMissing, 0, "no transaction grid supplied"),
		model.Warningf(model.WarnPageRange, 3, "page out of range"),
	}

	formatted := FormatWarnings(warnings)
	if !strings.Contains(formatted, "no transaction grid supplied") {
		t.Errorf("expected formatted warnings to carry messages, got %q", formatted)
	}

	if FormatWarnings(nil) != "" {
		t.Error("expected empty string for no warnings")
	}
}
