package model

import "strings"

// Default page dimensions in points (US Letter), used when the OCR layer
// does not report a page size.
const (
	DefaultPageWidth  = 612.0
	DefaultPageHeight = 792.0
)

// Page represents a single statement page
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points
	Height float64 // Page height in points
	Blocks []TextBlock
}

// NewPage creates a new page with given dimensions.
// Non-positive dimensions fall back to the defaults.
func NewPage(width, height float64) *Page {
	if width <= 0 {
		width = DefaultPageWidth
	}
	if height <= 0 {
		height = DefaultPageHeight
	}
	return &Page{
		Width:  width,
		Height: height,
		Blocks: make([]TextBlock, 0),
	}
}

// AddBlock adds a text block to the page
func (p *Page) AddBlock(block TextBlock) {
	p.Blocks = append(p.Blocks, block)
}

// Text concatenates all block texts in block order, newline separated
func (p *Page) Text() string {
	var sb strings.Builder
	for i, b := range p.Blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.Text)
	}
	return sb.String()
}

// BlocksInRegion returns the blocks whose boxes intersect the given region
func (p *Page) BlocksInRegion(region BBox) []TextBlock {
	var blocks []TextBlock
	for _, b := range p.Blocks {
		if region.Intersects(b.BBox) {
			blocks = append(blocks, b)
		}
	}
	return blocks
}
