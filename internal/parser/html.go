package parser

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLParser extracts prose from HTML documents
type HTMLParser struct{}

// CanParse returns true if this parser can handle the file
func (p *HTMLParser) CanParse(path string) bool {
	return GetKind(path) == KindHTML
}

const htmlBlocks = "h1, h2, h3, h4, h5, h6, p, li, blockquote, td, th, dt, dd, figcaption"

// Parse rewrites block elements into the line shapes the segmenter understands:
// headings become "# " lines, list items become "- " lines, everything else
// becomes a paragraph. Blocks are separated by blank lines.
func (p *HTMLParser) Parse(path string, content []byte) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	doc.Find("script, style, noscript, nav, template, pre, code").Remove()

	var blocks []string
	doc.Find(htmlBlocks).Each(func(_ int, s *goquery.Selection) {
		// A list item carries all of its nested text. Any other container
		// defers to the blocks inside it.
		if s.ParentsFiltered("li").Length() > 0 {
			return
		}
		if goquery.NodeName(s) != "li" && s.Find(htmlBlocks).Length() > 0 {
			return
		}

		text := collapseSpace(s.Text())
		if text == "" {
			return
		}

		switch name := goquery.NodeName(s); {
		case len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6':
			blocks = append(blocks, "# "+text)
		case name == "li":
			blocks = append(blocks, "- "+text)
		default:
			blocks = append(blocks, text)
		}
	})

	return &Document{
		Path: path,
		Kind: KindHTML,
		Text: joinBlocks(blocks),
	}, nil
}

// joinBlocks keeps consecutive list items on adjacent lines
func joinBlocks(blocks []string) string {
	var sb strings.Builder
	for i, b := range blocks {
		if i > 0 {
			if strings.HasPrefix(b, "- ") && strings.HasPrefix(blocks[i-1], "- ") {
				sb.WriteString("\n")
			} else {
				sb.WriteString("\n\n")
			}
		}
		sb.WriteString(b)
	}
	return sb.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
