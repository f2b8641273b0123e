package model

import "strings"

// TextBlock is a single OCR/layout unit: a run of text with its position on
// the page. Blocks are produced upstream and treated as immutable.
type TextBlock struct {
	Text string
	BBox BBox
}

// IsNoise reports whether the block is too short to carry field content.
// Blocks under minLen characters (after trimming) are OCR specks, page
// furniture, or stray punctuation.
func (tb TextBlock) IsNoise(minLen int) bool {
	return len(strings.TrimSpace(tb.Text)) < minLen
}

// ContainsFold reports whether the block text contains s, case-insensitively.
func (tb TextBlock) ContainsFold(s string) bool {
	return strings.Contains(strings.ToLower(tb.Text), strings.ToLower(s))
}
