// Package layout provides spatial analysis of positioned text blocks.
//
// Two concerns live here. The [CandidateDetector] ranks blocks that
// plausibly contain customer identity/address content, which carries no
// label and is identified purely by position: such blocks sit in the upper
// left of the first pages of the statement family. The [RowReconstructor]
// rebuilds visual table rows from scattered OCR blocks by grouping them on
// vertical overlap, which the section-table scans consume.
//
// # Candidate Selection
//
//	detector := layout.NewCandidateDetector()
//	set := detector.Detect(page.Blocks, page.Width, page.Height)
//	if top, ok := set.Top(); ok {
//		name, address := layout.SplitIdentity(top.Text, stopLabels)
//	}
//
// Detect never returns nil; zero candidates is a valid result and callers
// must not assume one exists. Candidates are ordered by ascending vertical
// position, topmost first, because identity precedes address precedes
// account metadata in the source layout.
package layout
