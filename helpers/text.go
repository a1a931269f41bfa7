package helpers

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// SelectionText extracts the text of a selection by walking its node
// trees: every text node is whitespace-trimmed, empty nodes are
// dropped, and the remaining pieces are joined with sep. goquery's
// plain Text() concatenates text nodes with no separator, which
// destroys the line structure the extractors key on.
func SelectionText(s *goquery.Selection, sep string) string {
	if s == nil || s.Length() == 0 {
		return ""
	}
	var parts []string
	for _, node := range s.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, sep)
}

// DocumentText extracts the whole document's text joined with sep.
func DocumentText(doc *goquery.Document, sep string) string {
	if doc == nil {
		return ""
	}
	return SelectionText(doc.Selection, sep)
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		trimmed := strings.TrimSpace(n.Data)
		if trimmed != "" {
			*parts = append(*parts, trimmed)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// FirstText returns the trimmed text of the first element matched by
// the selector, or "" when nothing matches.
func FirstText(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}
