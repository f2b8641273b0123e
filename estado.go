// Package estado provides a fluent API for turning bank-statement OCR
// output into ordered, structured account summaries.
//
// Basic usage:
//
//	merged, warnings, err := estado.FromOCRFile("statement.json").
//	    WithGridFile("movements.json").
//	    Merged()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", estado.FormatWarnings(warnings))
//	}
//
// Extraction keeps every summary group in the statement's canonical order,
// and the externally produced transaction grid is merged in at the
// transactions position. For advanced use cases, the lower-level ingest,
// summary, grid, and merge packages are also available.
package estado

import "github.com/tsawler/estado/model"

// Warning is a non-fatal quality note produced during extraction. It is an
// alias for [model.Warning], re-exported so root-level callers rarely need
// the model package.
type Warning = model.Warning

// FormatWarnings renders warnings one per line, for logs or error reports.
func FormatWarnings(warnings []Warning) string {
	return model.FormatWarnings(warnings)
}

// Open creates an Extractor for the statement file at path, detecting the
// input format (OCR JSON or hOCR) from the file content with an extension
// fallback. The file is read when a terminal operation like Summary() or
// Merged() runs.
//
// Example:
//
//	merged, warnings, err := estado.Open("statement.json").
//	    WithGridFile("movements.json").
//	    Merged()
func Open(path string) *Extractor {
	return &Extractor{
		source:   sourceAuto,
		filename: path,
		options:  defaultOptions(),
	}
}

// FromOCRFile creates an Extractor reading OCR service JSON from a file.
// The file is read when a terminal operation like Summary() or Merged()
// runs.
//
// Example:
//
//	merged, warnings, err := estado.FromOCRFile("statement.json").Merged()
func FromOCRFile(path string) *Extractor {
	return &Extractor{
		source:   sourceOCRFile,
		filename: path,
		options:  defaultOptions(),
	}
}

// FromHOCRFile creates an Extractor reading Tesseract hOCR output from a
// file. The file is read when a terminal operation runs.
//
// Example:
//
//	record, warnings, err := estado.FromHOCRFile("statement.hocr").Summary()
func FromHOCRFile(path string) *Extractor {
	return &Extractor{
		source:   sourceHOCRFile,
		filename: path,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor over an already built document, for
// callers that ingest or construct documents themselves.
//
// Example:
//
//	doc, err := ingest.FromJSON(r)
//	if err != nil {
//	    // handle error
//	}
//	record, warnings, err := estado.FromDocument(doc).Summary()
func FromDocument(doc *model.Document) *Extractor {
	ext := &Extractor{
		source:   sourceDocument,
		document: doc,
		options:  defaultOptions(),
	}
	if doc == nil {
		ext.err = errNoDocument
	}
	return ext
}

// FromText creates an Extractor over plain statement text. The text becomes
// a single-page document, so spatial extraction degrades gracefully while
// the text-pattern sections still work.
//
// Example:
//
//	record, warnings, err := estado.FromText(pageText).Summary()
func FromText(text string) *Extractor {
	return &Extractor{
		source:  sourceText,
		text:    text,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := estado.Must(estado.FromOCRFile("statement.json").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustMerged is a helper that wraps a call to a terminal operation like
// Merged() or Summary() and panics if the error is non-nil. It discards
// warnings and returns just the value. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	merged := estado.MustMerged(estado.FromOCRFile("statement.json").Merged())
func MustMerged[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
