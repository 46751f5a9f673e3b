// Package html converts a golang.org/x/net/html node tree into markdown
// using a fixed set of per-tag rules tuned for article pages.
package html

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// skippedClasses drops an element whose class attribute contains any of
// these fragments, even if the boilerplate filter missed it.
var skippedClasses = []string{"nav", "navigation", "menu", "breadcrumb", "pagination", "sidebar"}

// voidTags have no text of their own and are never dropped as empty.
var voidTags = map[string]bool{"img": true, "br": true, "hr": true}

// containerTags hold items whose own text may be shorter than the
// element threshold.
var containerTags = map[string]bool{"ul": true, "ol": true, "dl": true, "table": true}

var blankLines = regexp.MustCompile(`\n{3,}`)

// Converter turns an HTML subtree into markdown.
// A Converter is safe for concurrent use.
type Converter struct {
	rules  map[string]rule
	escape bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithEscape enables escaping of markdown control characters in text nodes.
// Disabled by default.
func WithEscape(escape bool) Option {
	return func(c *Converter) {
		c.escape = escape
	}
}

// NewConverter creates a Converter with the default tag rules.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{rules: defaultRules()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert renders the subtree rooted at n as markdown. Runs of three or more
// newlines are collapsed to two and the result is trimmed.
func (c *Converter) Convert(n *html.Node) string {
	if n == nil {
		return ""
	}
	out := c.node(n, state{root: true})
	out = blankLines.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

// state is the per-call conversion context.
type state struct {
	// root marks the node Convert was called with.
	root bool
	// keep retains short text inside list items, terms and table cells.
	keep bool
	// skipLists omits nested lists while rendering a list item's own text.
	skipLists bool
}

func (c *Converter) node(n *html.Node, s state) string {
	switch n.Type {
	case html.TextNode:
		return c.text(n.Data, s)
	case html.DocumentNode:
		return c.children(n, state{keep: s.keep, skipLists: s.skipLists})
	case html.ElementNode:
	default:
		return ""
	}

	tag := n.Data
	if hasSkippedClass(n) {
		return ""
	}
	if s.skipLists && (tag == "ul" || tag == "ol") {
		return ""
	}
	if !voidTags[tag] {
		text := Normalize(textContent(n))
		if text == "" {
			return ""
		}
		if runeLen(text) < 3 && !s.root && !s.keep && !containerTags[tag] {
			return ""
		}
	}

	r, ok := c.rules[tag]
	if !ok {
		r = (*Converter).transparent
	}
	return r(c, n, state{keep: s.keep, skipLists: s.skipLists})
}

func (c *Converter) text(raw string, s state) string {
	text := Normalize(raw)
	if text == "" {
		return ""
	}
	if !s.keep && runeLen(text) <= 2 {
		return ""
	}
	if c.escape {
		text = Escape(text)
	}
	return inline(raw, text)
}

// children concatenates the output of every child of n, dropping
// whitespace-only fragments other than line breaks.
func (c *Converter) children(n *html.Node, s state) string {
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		out := c.node(child, s)
		if strings.TrimSpace(out) == "" && !isElement(child, "br") {
			continue
		}
		b.WriteString(out)
	}
	return b.String()
}

// heading renders text using the normalized text of the whole element.
func (c *Converter) heading(n *html.Node, _ state) string {
	level := int(n.Data[1] - '0')
	text := Normalize(textContent(n))
	if c.escape {
		text = Escape(text)
	}
	return "\n" + strings.Repeat("#", level) + " " + text + "\n\n"
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			switch child.Type {
			case html.TextNode:
				b.WriteString(child.Data)
			case html.ElementNode, html.DocumentNode:
				walk(child)
			}
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func isElement(n *html.Node, tags ...string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, tag := range tags {
		if n.Data == tag {
			return true
		}
	}
	return false
}

func hasSkippedClass(n *html.Node) bool {
	class := strings.ToLower(attr(n, "class"))
	if class == "" {
		return false
	}
	for _, fragment := range skippedClasses {
		if strings.Contains(class, fragment) {
			return true
		}
	}
	return false
}

// descendants returns elements below n matching one of tags, in document
// order, without descending into elements matching one of stop.
func descendants(n *html.Node, tags, stop []string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.ElementNode {
				continue
			}
			if isElement(child, tags...) {
				found = append(found, child)
			}
			if isElement(child, stop...) {
				continue
			}
			walk(child)
		}
	}
	walk(n)
	return found
}
