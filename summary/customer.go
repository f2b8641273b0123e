package summary

import (
	"regexp"
	"strings"

	"github.com/tsawler/estado/layout"
	"github.com/tsawler/estado/model"
)

// identityPageLimit bounds the identity/address search: the customer block
// sits on an early page, and later pages repeat headers that would produce
// false candidates.
const identityPageLimit = 3

var (
	periodoPattern      = regexp.MustCompile(`(?i)Periodo\s+DEL\s+([\d/]+)\s+AL\s+([\d/]+)`)
	fechaCortePattern   = regexp.MustCompile(`(?i)Fecha\s+de\s+Corte\s+([\d/]+)`)
	accountLabelPattern = regexp.MustCompile(`(?i)No\.\s+de\s+Cuenta\s+(\d+)`)
	// Client numbers tolerate loose punctuation around the label and may
	// contain spaced or dotted segments, but never cross a line break.
	clientLabelPattern = regexp.MustCompile(`(?i)No[.\s]*de\s+Cliente[:.\s]*([A-Z0-9]+(?:[ \t.-][A-Z0-9]+)*)`)
	rfcPattern         = regexp.MustCompile(`(?i)R\.F\.C\s+([A-Z0-9]+)`)
	clabePattern       = regexp.MustCompile(`(?i)No\.\s+Cuenta\s+CLABE\s+([\d\s]+)`)
	paginaPattern      = regexp.MustCompile(`(?i)PAGINA\s+(\d+\s*/\s*\d+)`)
)

// customerHeaderPatterns are the labeled header fields of the statement
// cover, keyed by the document's own label text.
var customerHeaderPatterns = []struct {
	key string
	re  *regexp.Regexp
}{
	{"Fecha de Corte", fechaCortePattern},
	{"No. de Cuenta", accountLabelPattern},
	{"No. de Cliente", clientLabelPattern},
	{"R.F.C", rfcPattern},
	{"No. Cuenta CLABE", clabePattern},
}

// customerInfo extracts the statement cover fields plus the client name and
// address block. Each header field keeps its first match across pages, in
// discovery order.
func (c *Composer) customerInfo(doc *model.Document) *model.SummaryRecord {
	info := model.NewSummaryRecord()

	for _, page := range doc.Pages {
		text := page.Text()
		if text == "" {
			continue
		}

		if !info.Has("Periodo") {
			if m := periodoPattern.FindStringSubmatch(text); m != nil {
				info.Set("Periodo", "DEL "+strings.TrimSpace(m[1])+" AL "+strings.TrimSpace(m[2]))
			}
		}
		for _, p := range customerHeaderPatterns {
			if info.Has(p.key) {
				continue
			}
			if m := p.re.FindStringSubmatch(text); m != nil {
				info.Set(p.key, strings.TrimSpace(m[1]))
			}
		}
	}

	if name, address, ok := c.identity(doc); ok {
		info.Set("Client Name", name)
		info.Set("Client Address", address)
	}
	return info
}

// identity finds the customer name/address block among the spatial
// candidates of the first pages. The topmost candidate is the identity
// block; lines belonging to branch info are cut off.
func (c *Composer) identity(doc *model.Document) (name, address string, ok bool) {
	stop := make([]string, 0, len(c.config.Profile.BranchLabels))
	for _, label := range c.config.Profile.BranchLabels {
		stop = append(stop, label.Canonical+":")
	}

	for _, page := range doc.Pages {
		if page.Number > identityPageLimit {
			break
		}
		if strings.TrimSpace(page.Text()) == "" {
			continue
		}

		top, found := c.selector.Detect(page.Blocks, page.Width, page.Height).Top()
		if !found {
			continue
		}
		name, address = layout.SplitIdentity(top.Text, stop)
		if name != "" {
			return name, address, true
		}
	}
	return "", "", false
}
