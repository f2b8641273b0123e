package grid

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/estado/model"
)

// Load reads a transaction grid from r. Malformed JSON is an error; content
// problems are not. A total_rows field that disagrees with the rows actually
// present is recomputed and reported as a warning, and a missing pages list
// becomes an empty one.
func Load(r io.Reader) (*Grid, []model.Warning, error) {
	var g Grid
	dec := json.NewDecoder(r)
	if err := dec.Decode(&g); err != nil {
		return nil, nil, fmt.Errorf("decoding transaction grid: %w", err)
	}

	var warnings []model.Warning
	if g.Pages == nil {
		g.Pages = []Page{}
	}
	if actual := g.RowCount(); g.TotalRows != actual {
		warnings = append(warnings, model.Warningf(model.WarnRowCountAdjust, 0,
			"grid reports %d rows but contains %d; using actual count", g.TotalRows, actual))
		g.TotalRows = actual
	}
	return &g, warnings, nil
}

// LoadFile reads a transaction grid from the JSON file at path.
func LoadFile(path string) (*Grid, []model.Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening transaction grid %s: %w", path, err)
	}
	defer f.Close()

	g, warnings, err := Load(f)
	if err != nil {
		return nil, warnings, fmt.Errorf("reading transaction grid %s: %w", path, err)
	}
	if g.SourceFile == "" {
		g.SourceFile = path
	}
	return g, warnings, nil
}

// Validate inspects a grid without modifying it and reports content
// problems as warnings. A nil grid is reported as missing.
func (g *Grid) Validate() []model.Warning {
	if g == nil {
		return []model.Warning{model.Warningf(model.WarnGridMissing, 0, "no transaction grid supplied")}
	}

	var warnings []model.Warning
	if actual := g.RowCount(); g.TotalRows != actual {
		warnings = append(warnings, model.Warningf(model.WarnRowCountAdjust, 0,
			"grid reports %d rows but contains %d", g.TotalRows, actual))
	}
	for _, p := range g.Pages {
		if p.Page < 0 {
			warnings = append(warnings, model.Warningf(model.WarnPageRange, 0,
				"grid page index %d is negative", p.Page))
		}
	}
	return warnings
}
