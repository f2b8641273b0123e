package summary

import (
	"strings"

	"github.com/tsawler/estado/model"
)

// branchInfo extracts the branch contact fields from the first page that
// carries a branch label, using boundary-aware extraction so neighboring
// labels never bleed into each other's values.
func (c *Composer) branchInfo(doc *model.Document) *model.SummaryRecord {
	for _, page := range doc.Pages {
		text := page.Text()
		if !strings.Contains(strings.ToUpper(text), "SUCURSAL") {
			continue
		}

		fm := c.branches.Extract(text)
		if fm.Len() == 0 {
			continue
		}

		info := model.NewSummaryRecord()
		for _, f := range fm.Fields() {
			info.Set(f.Key, f.Value)
		}
		return info
	}
	return nil
}
