package summary

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/estado/model"
)

// pageHeaderPatterns are the repeating per-page header fields
var pageHeaderPatterns = []struct {
	key string
	re  *regexp.Regexp
}{
	{"No. de Cuenta", accountLabelPattern},
	{"No. de Cliente", clientLabelPattern},
	{"PAGINA", paginaPattern},
}

// pagesInfo extracts the header fields of every page. Pages where no header
// field matches contribute no entry.
func (c *Composer) pagesInfo(doc *model.Document) []*model.SummaryRecord {
	var out []*model.SummaryRecord
	for i, page := range doc.Pages {
		text := page.Text()

		entry := model.NewSummaryRecord()
		entry.Set("page_index", strconv.Itoa(i+1))
		for _, p := range pageHeaderPatterns {
			if m := p.re.FindStringSubmatch(text); m != nil {
				entry.Set(p.key, strings.TrimSpace(m[1]))
			}
		}
		if entry.Len() > 1 {
			out = append(out, entry)
		}
	}
	return out
}
