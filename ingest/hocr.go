package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/estado/model"
)

// ErrNotHOCR is returned when parsed HTML contains no hOCR page elements.
var ErrNotHOCR = errors.New("no ocr_page elements found")

// FromHOCR reads a Tesseract hOCR document from r. Each ocr_page element
// becomes a page sized from its bbox; each ocr_carea becomes one text block
// with its lines newline-joined, so multi-line regions survive as units.
// Pages without content areas fall back to their ocr_line elements.
func FromHOCR(r io.Reader) (*model.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR document: %w", err)
	}

	doc := model.NewDocument()
	doc.Engine = metaContent(root, "ocr-system")
	// Tesseract records the recognition language on paragraph elements;
	// the html element's lang attribute is always "en".
	if pars := elementsByClass(root, "ocr_par"); len(pars) > 0 {
		doc.Metadata.Language = attrValue(pars[0], "lang")
	}

	for _, pageNode := range elementsByClass(root, "ocr_page") {
		page := model.NewPage(0, 0)
		if box, ok := titleBBox(attrValue(pageNode, "title")); ok {
			page = model.NewPage(box.Width(), box.Height())
		}

		areas := elementsByClass(pageNode, "ocr_carea")
		if len(areas) == 0 {
			areas = elementsByClass(pageNode, "ocr_line")
		}
		for _, area := range areas {
			text := areaText(area)
			if text == "" {
				continue
			}
			block := model.TextBlock{Text: text}
			if box, ok := titleBBox(attrValue(area, "title")); ok {
				block.BBox = box
			}
			page.AddBlock(block)
		}
		doc.AddPage(page)
	}

	if doc.PageCount() == 0 {
		return nil, ErrNotHOCR
	}
	return doc, nil
}

// FromHOCRFile reads a Tesseract hOCR document from the file at path.
func FromHOCRFile(path string) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening hOCR document %s: %w", path, err)
	}
	defer f.Close()

	doc, err := FromHOCR(f)
	if err != nil {
		return nil, fmt.Errorf("reading hOCR document %s: %w", path, err)
	}
	return doc, nil
}

// areaText renders a content area as text: one line per ocr_line element
// with collapsed spacing, or the area's own flattened text when it carries
// no line elements.
func areaText(area *html.Node) string {
	lines := elementsByClass(area, "ocr_line")
	if len(lines) == 0 {
		return strings.Join(strings.Fields(nodeText(area)), " ")
	}

	var parts []string
	for _, line := range lines {
		if text := strings.Join(strings.Fields(nodeText(line)), " "); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

// titleBBox extracts the bounding box from an hOCR title attribute, whose
// semicolon-separated properties include "bbox x0 y0 x1 y1".
func titleBBox(title string) (model.BBox, bool) {
	for _, prop := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(prop))
		if len(fields) != 5 || fields[0] != "bbox" {
			continue
		}
		coords := make([]float64, 4)
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return model.BBox{}, false
			}
			coords[i] = v
		}
		return model.NewBBox(coords[0], coords[1], coords[2], coords[3]), true
	}
	return model.BBox{}, false
}

// elementsByClass collects descendant elements carrying the given class,
// in document order. The root itself is never included.
func elementsByClass(root *html.Node, class string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && hasClass(c, class) {
				out = append(out, c)
				continue
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

func hasClass(n *html.Node, class string) bool {
	for _, f := range strings.Fields(attrValue(n, "class")) {
		if f == class {
			return true
		}
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// nodeText flattens all text nodes under n in document order
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// metaContent returns the content of the named meta element, if present
func metaContent(root *html.Node, name string) string {
	var found string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "meta" && attrValue(n, "name") == name {
			found = attrValue(n, "content")
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}
