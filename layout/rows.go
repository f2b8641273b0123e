package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/estado/model"
)

// Row is one reconstructed visual table row: the blocks that share a
// baseline, joined left to right
type Row struct {
	Y    float64 // vertical center of the row anchor
	Text string
	BBox model.BBox
}

// RowConfig controls row reconstruction
type RowConfig struct {
	// YTolerance is the maximum vertical-center distance, in points, for
	// two blocks to share a row. Dense tables need a tighter tolerance
	// than loose ones.
	YTolerance float64
}

// DefaultRowConfig returns the tolerance suited to the statement family's
// standard table spacing
func DefaultRowConfig() RowConfig {
	return RowConfig{YTolerance: 10}
}

// RowReconstructor groups scattered OCR blocks into visual rows
type RowReconstructor struct {
	config RowConfig
}

// NewRowReconstructor creates a reconstructor with default configuration
func NewRowReconstructor() *RowReconstructor {
	return NewRowReconstructorWithConfig(DefaultRowConfig())
}

// NewRowReconstructorWithConfig creates a reconstructor with custom
// configuration
func NewRowReconstructorWithConfig(config RowConfig) *RowReconstructor {
	if config.YTolerance <= 0 {
		config.YTolerance = 10
	}
	return &RowReconstructor{config: config}
}

// Reconstruct rebuilds visual rows from a page's blocks. Rows come back
// top to bottom with cells joined left to right. Empty input yields an
// empty slice.
func (r *RowReconstructor) Reconstruct(blocks []model.TextBlock) []Row {
	type cell struct {
		y, x float64
		text string
		bbox model.BBox
	}

	cells := make([]cell, 0, len(blocks))
	for _, b := range blocks {
		text := strings.TrimSpace(b.Text)
		if text == "" {
			continue
		}
		cells = append(cells, cell{
			y:    b.BBox.Center().Y,
			x:    b.BBox.X0,
			text: text,
			bbox: b.BBox,
		})
	}
	if len(cells) == 0 {
		return []Row{}
	}

	sort.SliceStable(cells, func(i, j int) bool {
		if cells[i].y != cells[j].y {
			return cells[i].y < cells[j].y
		}
		return cells[i].x < cells[j].x
	})

	var rows []Row
	var current []cell
	anchorY := cells[0].y
	flush := func() {
		if len(current) == 0 {
			return
		}
		sort.SliceStable(current, func(i, j int) bool {
			return current[i].x < current[j].x
		})
		texts := make([]string, len(current))
		bbox := current[0].bbox
		for i, c := range current {
			texts[i] = c.text
			bbox = bbox.Union(c.bbox)
		}
		rows = append(rows, Row{
			Y:    anchorY,
			Text: strings.Join(texts, " "),
			BBox: bbox,
		})
		current = current[:0]
	}

	for _, c := range cells {
		if len(current) > 0 && c.y-anchorY > r.config.YTolerance {
			flush()
		}
		if len(current) == 0 {
			anchorY = c.y
		}
		current = append(current, c)
	}
	flush()
	return rows
}

// Texts returns just the row strings, top to bottom
func Texts(rows []Row) []string {
	texts := make([]string, len(rows))
	for i, row := range rows {
		texts[i] = row.Text
	}
	return texts
}
