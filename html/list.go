package html

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

func (c *Converter) list(n *html.Node, _ state) string {
	return "\n" + c.listItems(n, 0) + "\n"
}

// listItems renders the items of list at the given depth. Ordered lists are
// numbered from 1 by emitted item, ignoring start and value attributes.
// Each item is followed by its nested lists at depth+1.
func (c *Converter) listItems(list *html.Node, depth int) string {
	ordered := list.Data == "ol"
	indent := strings.Repeat("  ", depth)

	var b strings.Builder
	number := 0
	for _, item := range descendants(list, []string{"li"}, []string{"li"}) {
		text := Normalize(c.children(item, state{keep: true, skipLists: true}))
		if text == "" {
			continue
		}
		number++
		marker := "-"
		if ordered {
			marker = strconv.Itoa(number) + "."
		}
		b.WriteString(indent + marker + " " + text + "\n")

		for _, nested := range descendants(item, []string{"ul", "ol"}, []string{"ul", "ol"}) {
			b.WriteString(c.listItems(nested, depth+1))
		}
	}
	return b.String()
}

// definitionList renders each term in bold followed by the description
// held in the term's next sibling element when that element is a dd.
func (c *Converter) definitionList(n *html.Node, _ state) string {
	var b strings.Builder
	for _, term := range descendants(n, []string{"dt"}, []string{"dl"}) {
		text := Normalize(c.children(term, state{keep: true}))
		if text == "" {
			continue
		}
		b.WriteString("**" + text + "**\n")

		next := nextElement(term)
		if !isElement(next, "dd") {
			b.WriteString("\n")
			continue
		}
		if desc := Normalize(c.children(next, state{keep: true})); desc != "" {
			b.WriteString(": " + desc + "\n\n")
		}
	}
	return "\n" + b.String() + "\n"
}

func nextElement(n *html.Node) *html.Node {
	for sib := n.NextSibling; sib != nil; sib = sib.NextSibling {
		if sib.Type == html.ElementNode {
			return sib
		}
	}
	return nil
}
