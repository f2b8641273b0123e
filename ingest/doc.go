// Package ingest adapts external text sources into [model.Document] values.
//
// Three input shapes are supported: the JSON documents an upstream OCR
// service emits ([FromJSON]), Tesseract hOCR output ([FromHOCR]), and plain
// text ([FromText]). All adapters are strict about syntax and lenient about
// content: unreadable input is an error, while missing dimensions default
// and malformed block geometry degrades to a zero box rather than dropping
// the text.
package ingest
