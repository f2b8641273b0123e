package fields

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes combining marks after canonical decomposition, so
// accented letters compare equal to their base form.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldedText is a case- and diacritic-folded view of a source string that
// remembers, for every folded byte, where its source rune begins and ends
// in the original. Matches found in the folded form map back to exact
// original offsets, so values are always sliced from the original text.
type foldedText struct {
	folded string
	starts []int // starts[i]: original byte offset of the rune behind folded byte i
	ends   []int // ends[i]: original byte offset just past that rune
}

// foldString folds s for matching without offset tracking
func foldString(s string) string {
	var sb strings.Builder
	for _, r := range s {
		sb.WriteString(foldRune(r))
	}
	return sb.String()
}

// foldRune lowers a rune and strips its combining marks
func foldRune(r rune) string {
	out, _, err := transform.String(stripMarks, string(unicode.ToLower(r)))
	if err != nil {
		return string(unicode.ToLower(r))
	}
	return out
}

// fold builds the folded view of s
func fold(s string) *foldedText {
	ft := &foldedText{}
	var sb strings.Builder
	for i, r := range s {
		fr := foldRune(r)
		sb.WriteString(fr)
		end := i + len(string(r))
		for range []byte(fr) {
			ft.starts = append(ft.starts, i)
			ft.ends = append(ft.ends, end)
		}
	}
	ft.folded = sb.String()
	return ft
}

// find returns every occurrence of token in the folded text as offsets into
// the original string. The token is folded before searching. Occurrences of
// an empty token are ignored.
func (ft *foldedText) find(token string) [][2]int {
	needle := foldString(token)
	if needle == "" {
		return nil
	}
	var spans [][2]int
	from := 0
	for {
		i := strings.Index(ft.folded[from:], needle)
		if i < 0 {
			break
		}
		p := from + i
		last := p + len(needle) - 1
		spans = append(spans, [2]int{ft.starts[p], ft.ends[last]})
		from = p + len(needle)
	}
	return spans
}
