package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/estado/model"
)

// ocrDocument is the wire shape of the upstream OCR service output
type ocrDocument struct {
	Engine     string    `json:"engine"`
	Language   string    `json:"language"`
	TotalPages int       `json:"total_pages"`
	Pages      []ocrPage `json:"pages"`
}

type ocrPage struct {
	PageNumber int        `json:"page_number"`
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	TextBlocks []ocrBlock `json:"text_blocks"`
}

// ocrBlock keeps the bbox raw so one malformed box does not reject the
// whole document.
type ocrBlock struct {
	Text string          `json:"text"`
	BBox json.RawMessage `json:"bbox"`
}

// FromJSON reads an OCR service document from r. Malformed JSON is an
// error. Pages without dimensions get the default page size, and blocks
// whose bbox cannot be read keep their text under a zero box.
func FromJSON(r io.Reader) (*model.Document, error) {
	var in ocrDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("decoding OCR document: %w", err)
	}

	doc := model.NewDocument()
	doc.Engine = in.Engine
	doc.Metadata.Language = in.Language
	doc.Metadata.TotalPages = in.TotalPages

	for _, p := range in.Pages {
		page := model.NewPage(p.Width, p.Height)
		for _, b := range p.TextBlocks {
			page.AddBlock(model.TextBlock{Text: b.Text, BBox: parseBBox(b.BBox)})
		}
		doc.AddPage(page)
		if p.PageNumber > 0 {
			page.Number = p.PageNumber
		}
	}
	return doc, nil
}

// FromJSONFile reads an OCR service document from the JSON file at path.
func FromJSONFile(path string) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening OCR document %s: %w", path, err)
	}
	defer f.Close()

	doc, err := FromJSON(f)
	if err != nil {
		return nil, fmt.Errorf("reading OCR document %s: %w", path, err)
	}
	return doc, nil
}

// parseBBox decodes an [x0, y0, x1, y1] array. Anything else yields the
// zero box.
func parseBBox(raw json.RawMessage) model.BBox {
	if len(raw) == 0 {
		return model.BBox{}
	}
	var coords []float64
	if err := json.Unmarshal(raw, &coords); err != nil || len(coords) != 4 {
		return model.BBox{}
	}
	return model.NewBBox(coords[0], coords[1], coords[2], coords[3])
}
