package goquery

import (
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	mdhtml "github.com/fwojciec/pagemd/html"
	"golang.org/x/net/html"
)

// SelectMainElement returns the element holding the main content of doc.
// For each content selector in order it picks the match with the most
// text; the first selector whose best match exceeds MinRegionLength wins.
// Otherwise the body is returned with structural boilerplate removed.
func SelectMainElement(doc *goquery.Document, cfg Config) *html.Node {
	for _, sel := range cfg.ContentSelectors {
		var best *html.Node
		bestLen := 0
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			if n := utf8.RuneCountInString(s.Text()); n > bestLen {
				best, bestLen = s.Nodes[0], n
			}
		})
		if best != nil && bestLen > cfg.MinRegionLength {
			return best
		}
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return FilterBoilerplate(doc.Nodes[0], cfg.StructuralBoilerplate)
	}
	return FilterBoilerplate(body.Nodes[0], cfg.StructuralBoilerplate)
}

// ResolveTitle returns the text of the first element matched by the first
// selector that yields any text, or fallback when none does. Whitespace
// runs inside the title collapse to single spaces.
func ResolveTitle(doc *goquery.Document, selectors []string, fallback string) string {
	for _, sel := range selectors {
		if title := mdhtml.Normalize(doc.Find(sel).First().Text()); title != "" {
			return title
		}
	}
	return fallback
}
