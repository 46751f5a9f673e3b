package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Detector recognizes pages built by a known site generator from their
// meta generator tag and structural markers.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect reports whether doc carries one of the profile's generators or
// markers. Host matching is left to the caller.
func (d *Detector) Detect(doc *goquery.Document, p Profile) bool {
	if generator := d.generator(doc); generator != "" {
		for _, g := range p.Generators {
			if strings.Contains(generator, strings.ToLower(g)) {
				return true
			}
		}
	}
	for _, marker := range p.Markers {
		if d.hasSelector(doc, marker) {
			return true
		}
	}
	return false
}

// generator returns the lowercased content of the meta generator tag.
func (d *Detector) generator(doc *goquery.Document) string {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})
	return generator
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
