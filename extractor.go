package estado

import (
	"errors"
	"fmt"
	"sort"
	"unicode"

	"github.com/tsawler/estado/format"
	"github.com/tsawler/estado/grid"
	"github.com/tsawler/estado/ingest"
	"github.com/tsawler/estado/merge"
	"github.com/tsawler/estado/model"
	"github.com/tsawler/estado/profile"
	"github.com/tsawler/estado/summary"
)

var errNoDocument = errors.New("no document supplied")

// sourceKind selects which input adapter a terminal operation uses.
type sourceKind int

const (
	sourceNone sourceKind = iota
	sourceAuto
	sourceOCRFile
	sourceHOCRFile
	sourceDocument
	sourceText
)

// Extractor provides a fluent interface for extracting structured summaries
// from statement OCR output. Each configuration method returns a new
// Extractor instance, making it safe for concurrent use and allowing method
// chaining.
type Extractor struct {
	// Source
	source   sourceKind
	filename string
	document *model.Document
	text     string

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		source:   e.source,
		filename: e.filename,
		document: e.document,
		text:     e.text,
		options:  e.options.clone(),
		err:      e.err,
		warnings: append([]Warning(nil), e.warnings...),
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithProfile pins extraction to a specific bank profile, bypassing
// detection.
//
// Example:
//
//	record, _, err := estado.FromOCRFile("statement.json").
//	    WithProfile(profile.Default()).
//	    Summary()
func (e *Extractor) WithProfile(p profile.Profile) *Extractor {
	newExt := e.clone()
	newExt.options.profile = &p
	return newExt
}

// WithProfiles adds candidate profiles for per-document detection. The
// best-scoring candidate wins; when none scores high enough the built-in
// default is used. Multiple calls are cumulative.
//
// Example:
//
//	profiles, _, err := profile.LoadFile("banks.yaml")
//	record, _, err := estado.FromOCRFile("statement.json").
//	    WithProfiles(profiles...).
//	    Summary()
func (e *Extractor) WithProfiles(profiles ...profile.Profile) *Extractor {
	newExt := e.clone()
	newExt.options.candidates = append(newExt.options.candidates, profiles...)
	return newExt
}

// WithGrid supplies the externally produced transaction grid to merge into
// the summary. Without a grid, Merged() emits an empty transaction section
// and a warning.
func (e *Extractor) WithGrid(g *grid.Grid) *Extractor {
	newExt := e.clone()
	newExt.options.grid = g
	return newExt
}

// WithGridFile supplies the transaction grid as a JSON file. The file is
// read when a terminal operation runs; a grid supplied via WithGrid wins.
//
// Example:
//
//	merged, _, err := estado.FromOCRFile("statement.json").
//	    WithGridFile("movements.json").
//	    Merged()
func (e *Extractor) WithGridFile(path string) *Extractor {
	newExt := e.clone()
	newExt.options.gridPath = path
	return newExt
}

// WithPages restricts extraction to the given pages (1-indexed).
// Multiple calls are cumulative. Selection is validated when a terminal
// operation runs.
//
// Example:
//
//	record, _, err := estado.FromOCRFile("statement.json").WithPages(1, 2).Summary()
func (e *Extractor) WithPages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageCount returns the number of pages in the source document.
// Note: this reads the source. Page selection does not affect the count.
//
// Example:
//
//	count, err := estado.FromOCRFile("statement.json").PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	doc, err := e.resolveSource()
	if err != nil {
		return 0, err
	}
	return doc.PageCount(), nil
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Document reads the source and returns the document after page selection,
// without extraction.
//
// Returns the document, any warnings encountered, and an error if the
// source could not be read.
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	return e.loadDocument()
}

// Text reads the source and returns the document text, pages separated by
// blank lines.
//
// Example:
//
//	text, warnings, err := estado.FromOCRFile("statement.json").Text()
func (e *Extractor) Text() (string, []Warning, error) {
	if e.err != nil {
		return "", nil, e.err
	}
	doc, warnings, err := e.loadDocument()
	if err != nil {
		return "", warnings, err
	}
	return doc.Text(), warnings, nil
}

// Summary extracts the ordered account summary without transaction data.
// The record still contains the internal transactions placeholder that
// marks where merged details land.
//
// Returns the summary, any warnings encountered during processing, and an
// error if the source could not be read. Warnings indicate non-fatal
// issues (e.g., garbled OCR text) where extraction succeeded but results
// may be imperfect.
//
// Example:
//
//	record, warnings, err := estado.FromOCRFile("statement.json").Summary()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", estado.FormatWarnings(warnings))
//	}
func (e *Extractor) Summary() (*model.SummaryRecord, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	doc, warnings, err := e.loadDocument()
	if err != nil {
		return nil, warnings, err
	}

	record, composeWarnings := e.composer(doc).Compose(doc)
	return record, append(warnings, composeWarnings...), nil
}

// Merged runs the full pipeline: extract the summary, load the transaction
// grid when configured, and merge it in at the transactions position.
//
// Returns the final document with metadata and the ordered account
// summary, any warnings encountered, and an error if a source could not
// be read.
//
// Example:
//
//	merged, warnings, err := estado.FromOCRFile("statement.json").
//	    WithGridFile("movements.json").
//	    Merged()
func (e *Extractor) Merged() (*model.MergedDocument, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	doc, warnings, err := e.loadDocument()
	if err != nil {
		return nil, warnings, err
	}

	composer := e.composer(doc)
	record, composeWarnings := composer.Compose(doc)
	warnings = append(warnings, composeWarnings...)

	g, gridWarnings, err := e.loadGrid()
	if err != nil {
		return nil, warnings, err
	}
	warnings = append(warnings, gridWarnings...)

	merged, mergeWarnings := merge.BuildDocument(composer.Metadata(doc), record, g)
	return merged, append(warnings, mergeWarnings...), nil
}

// ============================================================================
// Internals
// ============================================================================

// loadDocument resolves the configured source, applies page selection, and
// runs the text-quality check.
func (e *Extractor) loadDocument() (*model.Document, []Warning, error) {
	doc, err := e.resolveSource()
	if err != nil {
		return nil, nil, err
	}

	warnings := append([]Warning(nil), e.warnings...)
	doc, err = e.selectPages(doc)
	if err != nil {
		return nil, warnings, err
	}
	if garbledText(doc.Text()) {
		warnings = append(warnings, model.Warningf(model.WarnGarbledText, 0,
			"document text looks garbled; results may be unreliable"))
	}
	return doc, warnings, nil
}

// resolveSource turns the configured input into a document.
func (e *Extractor) resolveSource() (*model.Document, error) {
	switch e.source {
	case sourceAuto:
		f, err := format.DetectFile(e.filename)
		if err != nil {
			return nil, err
		}
		switch f {
		case format.OCRJSON:
			return ingest.FromJSONFile(e.filename)
		case format.HOCR:
			return ingest.FromHOCRFile(e.filename)
		default:
			return nil, fmt.Errorf("unsupported input format: %s", f)
		}
	case sourceOCRFile:
		return ingest.FromJSONFile(e.filename)
	case sourceHOCRFile:
		return ingest.FromHOCRFile(e.filename)
	case sourceDocument:
		if e.document == nil {
			return nil, errNoDocument
		}
		return e.document, nil
	case sourceText:
		return ingest.FromText(e.text), nil
	default:
		return nil, errors.New("no input specified")
	}
}

// selectPages applies the configured 1-indexed page selection: duplicates
// collapse, order is ascending, out-of-range pages are an error. Without a
// selection the document passes through untouched.
func (e *Extractor) selectPages(doc *model.Document) (*model.Document, error) {
	if len(e.options.pages) == 0 {
		return doc, nil
	}

	pageCount := doc.PageCount()
	seen := make(map[int]bool)
	var indices []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		if !seen[p-1] {
			seen[p-1] = true
			indices = append(indices, p-1)
		}
	}
	sort.Ints(indices)

	// Copy page headers so renumbering never touches the caller's document.
	out := model.NewDocument()
	out.Metadata = doc.Metadata
	out.Engine = doc.Engine
	for _, idx := range indices {
		page := *doc.Pages[idx]
		out.AddPage(&page)
	}
	return out, nil
}

// composer builds a summary composer for the resolved profile.
func (e *Extractor) composer(doc *model.Document) *summary.Composer {
	cfg := summary.DefaultConfig()
	cfg.Profile = e.resolveProfile(doc)
	return summary.NewComposerWithConfig(cfg)
}

// resolveProfile picks the extraction profile: an explicit profile wins,
// then detection over the configured candidates, then the default.
func (e *Extractor) resolveProfile(doc *model.Document) profile.Profile {
	if e.options.profile != nil {
		return *e.options.profile
	}
	if len(e.options.candidates) > 0 {
		return profile.Detect(doc.Text(), e.options.candidates)
	}
	return profile.Default()
}

// loadGrid resolves the configured grid source. A grid value wins over a
// file path; with neither configured the merge stage handles the absence.
func (e *Extractor) loadGrid() (*grid.Grid, []Warning, error) {
	if e.options.grid != nil {
		return e.options.grid, nil, nil
	}
	if e.options.gridPath != "" {
		return grid.LoadFile(e.options.gridPath)
	}
	return nil, nil, nil
}

// garbledText reports whether OCR text looks unusable. Text qualifies when
// under half of its non-space runes are letters, digits, or punctuation;
// very short text never qualifies.
func garbledText(text string) bool {
	total, readable := 0, 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsPunct(r) {
			readable++
		}
	}
	if total < 40 {
		return false
	}
	return float64(readable)/float64(total) < 0.5
}
