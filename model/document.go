package model

import "strings"

// Document represents a complete statement document with extracted structure
type Document struct {
	Metadata Metadata
	Engine   string // OCR engine that produced the input, when reported
	Pages    []*Page
}

// Metadata contains document-level information carried into the final output
type Metadata struct {
	DocumentType  string  `json:"document_type"`
	Bank          string  `json:"bank"`
	AccountNumber string  `json:"account_number"`
	TotalPages    int     `json:"total_pages"`
	Language      string  `json:"language,omitempty"`
	Period        *Period `json:"period,omitempty"`
}

// Period is the statement period as ISO dates
type Period struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Text returns all page text concatenated, pages separated by blank lines
func (d *Document) Text() string {
	var sb strings.Builder
	for i, page := range d.Pages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(page.Text())
	}
	return sb.String()
}
