package ingest

import "github.com/tsawler/estado/model"

// FromText wraps plain text in a single-page document. The text becomes one
// full-page block, so downstream extraction sees the same shape OCR input
// produces. Empty text yields a document with one blank page.
func FromText(text string) *model.Document {
	doc := model.NewDocument()
	page := model.NewPage(0, 0)
	if text != "" {
		page.AddBlock(model.TextBlock{
			Text: text,
			BBox: model.NewBBox(0, 0, page.Width, page.Height),
		})
	}
	doc.AddPage(page)
	return doc
}
