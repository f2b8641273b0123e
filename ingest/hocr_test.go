package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/estado/model"
)

const sampleHOCR = `<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" lang="en">
<head>
<meta name='ocr-system' content='tesseract 5.3.0'/>
</head>
<body>
<div class='ocr_page' id='page_1' title='image "estado.png"; bbox 0 0 1224 1584; ppageno 0'>
<div class='ocr_carea' id='block_1_1' title="bbox 61 148 367 184">
<p class='ocr_par' id='par_1_1' lang='spa' title="bbox 61 148 367 184">
<span class='ocr_line' id='line_1_1' title="bbox 61 148 367 163">
<span class='ocrx_word' title='bbox 61 148 150 163'>JUAN</span>
<span class='ocrx_word' title='bbox 155 148 240 163'>PEREZ</span>
</span>
<span class='ocr_line' id='line_1_2' title="bbox 61 168 367 184">
<span class='ocrx_word' title='bbox 61 168 120 184'>AV</span>
<span class='ocrx_word' title='bbox 125 168 367 184'>SIEMPRE</span>
</span>
</p>
</div>
</div>
</body>
</html>`

func TestFromHOCR(t *testing.T) {
	doc, err := FromHOCR(strings.NewReader(sampleHOCR))
	if err != nil {
		t.Fatalf("FromHOCR returned error: %v", err)
	}

	if doc.Engine != "tesseract 5.3.0" {
		t.Errorf("Expected the ocr-system meta, got %s", doc.Engine)
	}
	if doc.Metadata.Language != "spa" {
		t.Errorf("Expected the paragraph language, got %s", doc.Metadata.Language)
	}
	if doc.PageCount() != 1 {
		t.Fatalf("Expected 1 page, got %d", doc.PageCount())
	}

	page := doc.Pages[0]
	if page.Width != 1224 || page.Height != 1584 {
		t.Errorf("Expected 1224x1584, got %gx%g", page.Width, page.Height)
	}
	if len(page.Blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(page.Blocks))
	}

	block := page.Blocks[0]
	if block.Text != "JUAN PEREZ\nAV SIEMPRE" {
		t.Errorf("Expected newline-joined lines, got %q", block.Text)
	}
	if block.BBox != model.NewBBox(61, 148, 367, 184) {
		t.Errorf("Expected the carea box, got %+v", block.BBox)
	}
}

func TestFromHOCRLineFallback(t *testing.T) {
	src := `<div class='ocr_page' title='bbox 0 0 612 792'>
<span class='ocr_line' title='bbox 10 20 100 30'>Saldo Final</span>
<span class='ocr_line' title='bbox 10 40 100 50'>14,383.20</span>
</div>`

	doc, err := FromHOCR(strings.NewReader(src))
	if err != nil {
		t.Fatalf("FromHOCR returned error: %v", err)
	}
	if len(doc.Pages[0].Blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(doc.Pages[0].Blocks))
	}
	if doc.Pages[0].Blocks[1].Text != "14,383.20" {
		t.Errorf("Expected line text, got %q", doc.Pages[0].Blocks[1].Text)
	}
}

func TestFromHOCRNotHOCR(t *testing.T) {
	_, err := FromHOCR(strings.NewReader("<html><body><p>hello</p></body></html>"))
	if !errors.Is(err, ErrNotHOCR) {
		t.Errorf("Expected ErrNotHOCR, got %v", err)
	}
}

func TestFromHOCRFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estado.hocr")
	if err := os.WriteFile(path, []byte(sampleHOCR), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := FromHOCRFile(path)
	if err != nil {
		t.Fatalf("FromHOCRFile returned error: %v", err)
	}
	if doc.PageCount() != 1 {
		t.Errorf("Expected 1 page, got %d", doc.PageCount())
	}

	if _, err := FromHOCRFile(filepath.Join(t.TempDir(), "missing.hocr")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestTitleBBox(t *testing.T) {
	tests := []struct {
		title string
		want  model.BBox
		ok    bool
	}{
		{`image "x.png"; bbox 0 0 100 200; ppageno 0`, model.NewBBox(0, 0, 100, 200), true},
		{"bbox 10 20 30 40", model.NewBBox(10, 20, 30, 40), true},
		{"bbox 1 2 3", model.BBox{}, false},
		{"bbox a b c d", model.BBox{}, false},
		{"x_size 12", model.BBox{}, false},
		{"", model.BBox{}, false},
	}

	for _, tt := range tests {
		got, ok := titleBBox(tt.title)
		if ok != tt.ok || got != tt.want {
			t.Errorf("titleBBox(%q) = %+v, %v; expected %+v, %v", tt.title, got, ok, tt.want, tt.ok)
		}
	}
}
