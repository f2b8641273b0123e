package summary

import (
	"regexp"
	"strings"

	"github.com/tsawler/estado/model"
)

// HoldRow is one apartado entry: a named hold and its amount. JSON keys
// match the snake-case shape downstream consumers read.
type HoldRow struct {
	Nombre  string `json:"nombre_apartado"`
	Importe string `json:"importe_apartado"`
}

// holdSectionHeading starts the apartados section
const holdSectionHeading = "Estado de cuenta de Apartados Vigentes"

var (
	holdAmountPattern = regexp.MustCompile(`^[0-9,]+\.\d{2}$`)
	holdTotalPattern  = regexp.MustCompile(`Total\s+de\s+Apartados`)
)

// holdHeaderLines are column headings inside the section, skipped verbatim
var holdHeaderLines = map[string]bool{
	"Folio":            true,
	"Nombre Apartado":  true,
	"Importe Apartado": true,
	"Importe Total":    true,
	"$":                true,
}

// pendingHolds extracts the apartados vigentes table with a line scanner:
// a name line followed by an amount line forms one hold. The section ends
// at the next page header or the apartado total.
func (c *Composer) pendingHolds(doc *model.Document) []HoldRow {
	var holds []HoldRow

	for _, page := range doc.Pages {
		text := page.Text()
		if !strings.Contains(text, holdSectionHeading) {
			continue
		}

		inSection := false
		pending := ""
		hasPending := false
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if strings.Contains(line, holdSectionHeading) {
				inSection = true
				continue
			}
			if !inSection {
				continue
			}
			if strings.Contains(line, "No. de Cuenta") ||
				strings.Contains(line, "PAGINA") ||
				holdTotalPattern.MatchString(line) {
				break
			}
			if holdHeaderLines[line] {
				continue
			}
			if holdAmountPattern.MatchString(line) {
				if hasPending {
					holds = append(holds, HoldRow{
						Nombre:  pending,
						Importe: strings.ReplaceAll(line, ",", ""),
					})
					pending, hasPending = "", false
				}
				continue
			}
			if line != "" && !hasPending {
				pending, hasPending = line, true
			}
		}
	}
	return holds
}
