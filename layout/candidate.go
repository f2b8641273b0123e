package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/estado/model"
	"github.com/tsawler/estado/profile"
)

// Candidate is a text block considered for an identity/address field based
// on its page position rather than an explicit label
type Candidate struct {
	Y    float64 // vertical origin, smaller is higher on the page
	Text string
	BBox model.BBox
}

// CandidateConfig controls candidate selection
type CandidateConfig struct {
	// LeftFraction restricts candidates to blocks whose horizontal origin
	// lies in the left fraction of the page width.
	LeftFraction float64
	// TopFraction restricts candidates to blocks whose vertical origin
	// lies in the top fraction of the page height.
	TopFraction float64
	// MinTextLength discards shorter blocks as noise.
	MinTextLength int
	// Boilerplate markers exclude a block regardless of position.
	// Single-word markers must match the whole block; multi-word markers
	// match as substrings.
	Boilerplate []string
	// HeaderPrefixes exclude labeled header lines from candidacy.
	HeaderPrefixes []string
}

// DefaultCandidateConfig returns the selection rules of the statement
// family: identity blocks sit in the left 60% and top 50% of the page.
func DefaultCandidateConfig() CandidateConfig {
	return CandidateConfigForProfile(profile.Default())
}

// CandidateConfigForProfile builds a config with a profile's boilerplate
// markers and header prefixes
func CandidateConfigForProfile(p profile.Profile) CandidateConfig {
	return CandidateConfig{
		LeftFraction:   0.60,
		TopFraction:    0.50,
		MinTextLength:  5,
		Boilerplate:    p.Boilerplate,
		HeaderPrefixes: p.HeaderPrefixes,
	}
}

// CandidateDetector selects identity/address candidate blocks
type CandidateDetector struct {
	config CandidateConfig
}

// NewCandidateDetector creates a detector with default configuration
func NewCandidateDetector() *CandidateDetector {
	return NewCandidateDetectorWithConfig(DefaultCandidateConfig())
}

// NewCandidateDetectorWithConfig creates a detector with custom configuration
func NewCandidateDetectorWithConfig(config CandidateConfig) *CandidateDetector {
	if config.LeftFraction <= 0 {
		config.LeftFraction = 0.60
	}
	if config.TopFraction <= 0 {
		config.TopFraction = 0.50
	}
	if config.MinTextLength <= 0 {
		config.MinTextLength = 5
	}
	return &CandidateDetector{config: config}
}

// Detect returns the qualifying candidates for one page, ordered by
// ascending vertical position. It always returns a non-nil set; zero
// candidates is valid output.
func (d *CandidateDetector) Detect(blocks []model.TextBlock, pageWidth, pageHeight float64) *CandidateSet {
	set := &CandidateSet{Candidates: make([]Candidate, 0)}
	if len(blocks) == 0 || pageWidth <= 0 || pageHeight <= 0 {
		return set
	}

	maxX := pageWidth * d.config.LeftFraction
	maxY := pageHeight * d.config.TopFraction

	for _, b := range blocks {
		if b.BBox.X0 >= maxX || b.BBox.Y0 >= maxY {
			continue
		}
		text := strings.TrimSpace(b.Text)
		if len(text) < d.config.MinTextLength {
			continue
		}
		if d.isBoilerplate(text) || d.isHeaderLine(text) {
			continue
		}
		set.Candidates = append(set.Candidates, Candidate{
			Y:    b.BBox.Y0,
			Text: text,
			BBox: b.BBox,
		})
	}

	sort.SliceStable(set.Candidates, func(i, j int) bool {
		if set.Candidates[i].Y != set.Candidates[j].Y {
			return set.Candidates[i].Y < set.Candidates[j].Y
		}
		return set.Candidates[i].BBox.X0 < set.Candidates[j].BBox.X0
	})
	return set
}

// isBoilerplate reports whether text is institutional furniture. A bank
// name alone is furniture, but a block merely mentioning the bank is not,
// so single-word markers require the whole block to match.
func (d *CandidateDetector) isBoilerplate(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range d.config.Boilerplate {
		m := strings.ToLower(strings.TrimSpace(marker))
		if m == "" {
			continue
		}
		if strings.ContainsRune(m, ' ') {
			if strings.Contains(lower, m) {
				return true
			}
		} else if lower == m {
			return true
		}
	}
	return false
}

// isHeaderLine reports whether text starts with a labeled header prefix
func (d *CandidateDetector) isHeaderLine(text string) bool {
	lower := strings.ToLower(text)
	for _, prefix := range d.config.HeaderPrefixes {
		p := strings.ToLower(strings.TrimSpace(prefix))
		if p != "" && strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// CandidateSet holds the selected candidates in reading order
type CandidateSet struct {
	Candidates []Candidate
}

// Top returns the topmost candidate
func (s *CandidateSet) Top() (Candidate, bool) {
	if len(s.Candidates) == 0 {
		return Candidate{}, false
	}
	return s.Candidates[0], true
}

// SplitIdentity separates a candidate block into client name and address.
// The first line is the name and the remaining lines are the address; a
// single-line block serves as both. Lines from the first stop label on are
// cut off, which repairs blocks the OCR layer merged with branch info.
func SplitIdentity(text string, stopLabels []string) (name, address string) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		stopped := false
		for _, label := range stopLabels {
			if label != "" && strings.Contains(strings.ToUpper(line), strings.ToUpper(label)) {
				stopped = true
				break
			}
		}
		if stopped {
			break
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return "", ""
	}
	if len(lines) == 1 {
		return lines[0], lines[0]
	}
	return lines[0], strings.Join(lines[1:], "\n")
}
