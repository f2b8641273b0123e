package fields

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/estado/model"
	"github.com/tsawler/estado/profile"
)

// Config controls boundary extraction
type Config struct {
	// Labels is the ordered set of labels to extract. Output fields appear
	// in this order. Every label's tokens also act as stop markers for the
	// other labels' values.
	Labels []profile.Label
}

// DefaultConfig returns a config using the default profile's branch labels
func DefaultConfig() Config {
	return Config{Labels: profile.Default().BranchLabels}
}

// Extractor extracts labeled fields from concatenated text using stop-ahead
// boundary matching
type Extractor struct {
	config  Config
	filters map[string]*regexp.Regexp
}

// NewExtractor creates an extractor with the default configuration
func NewExtractor() *Extractor {
	return NewExtractorWithConfig(DefaultConfig())
}

// NewExtractorWithConfig creates an extractor with a custom configuration.
// Invalid value patterns are ignored rather than failing construction, so a
// bad profile entry degrades to unrestricted capture.
func NewExtractorWithConfig(config Config) *Extractor {
	e := &Extractor{
		config:  config,
		filters: make(map[string]*regexp.Regexp),
	}
	for _, label := range config.Labels {
		if label.ValuePattern == "" {
			continue
		}
		re, err := regexp.Compile(`^(?:` + label.ValuePattern + `)`)
		if err != nil {
			continue
		}
		e.filters[label.Canonical] = re
	}
	return e
}

// occurrence is one label-token match in the source text
type occurrence struct {
	start, end int
	canonical  string
}

// Extract pulls every configured label's value out of text. Values are
// sliced between consecutive label occurrences, so they never absorb a
// neighboring label. Empty text yields an empty, non-nil result.
func (e *Extractor) Extract(text string) *FieldMap {
	result := newFieldMap(e.config.Labels)
	if strings.TrimSpace(text) == "" {
		return result
	}

	occs := e.findOccurrences(text)
	if len(occs) == 0 {
		return result
	}

	for i, o := range occs {
		if result.Has(o.canonical) {
			continue
		}

		// Value runs to the next occurrence of a different label.
		valueEnd := len(text)
		for j := i + 1; j < len(occs); j++ {
			if occs[j].canonical != o.canonical {
				valueEnd = occs[j].start
				break
			}
		}

		value := trimValue(text[o.end:valueEnd])
		if re, ok := e.filters[o.canonical]; ok {
			m := re.FindString(value)
			if strings.TrimSpace(m) == "" {
				// Pattern matched nothing here; a later occurrence may
				// still produce a value.
				continue
			}
			value = strings.TrimSpace(m)
		}
		result.set(o.canonical, value)
	}
	return result
}

// findOccurrences locates every label-token match, folded for case and
// diacritics, and resolves overlaps in favor of the earliest longest match.
func (e *Extractor) findOccurrences(text string) []occurrence {
	ft := fold(text)

	var occs []occurrence
	for _, label := range e.config.Labels {
		for _, token := range label.Tokens() {
			for _, span := range ft.find(token) {
				occs = append(occs, occurrence{start: span[0], end: span[1], canonical: label.Canonical})
			}
		}
	}
	if len(occs) == 0 {
		return nil
	}

	sort.Slice(occs, func(i, j int) bool {
		if occs[i].start != occs[j].start {
			return occs[i].start < occs[j].start
		}
		return occs[i].end > occs[j].end
	})

	accepted := occs[:1]
	for _, o := range occs[1:] {
		if o.start >= accepted[len(accepted)-1].end {
			accepted = append(accepted, o)
		}
	}
	return accepted
}

// trimValue drops the optional label separator and surrounding whitespace
func trimValue(raw string) string {
	s := raw
	if len(s) > 0 && (s[0] == ':' || s[0] == '.') {
		s = s[1:]
	}
	return strings.TrimSpace(s)
}

// FieldMap holds extracted fields in label-set order
type FieldMap struct {
	order  []string
	values map[string]string
}

func newFieldMap(labels []profile.Label) *FieldMap {
	order := make([]string, len(labels))
	for i, l := range labels {
		order[i] = l.Canonical
	}
	return &FieldMap{
		order:  order,
		values: make(map[string]string),
	}
}

// Get returns the value extracted for a canonical label name
func (m *FieldMap) Get(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Has reports whether the label was extracted
func (m *FieldMap) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Len returns the number of extracted fields
func (m *FieldMap) Len() int {
	return len(m.values)
}

func (m *FieldMap) set(name, value string) {
	m.values[name] = value
}

// Fields returns the extracted fields in label-set order
func (m *FieldMap) Fields() []model.LabeledField {
	fields := make([]model.LabeledField, 0, len(m.values))
	for _, name := range m.order {
		if v, ok := m.values[name]; ok {
			fields = append(fields, model.LabeledField{Key: name, Value: v})
		}
	}
	return fields
}
