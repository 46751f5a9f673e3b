package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// FilterBoilerplate returns a copy of the tree rooted at root without the
// elements matching any of selectors. A removed element takes its whole
// subtree with it. root itself is never removed and is left unmodified.
func FilterBoilerplate(root *html.Node, selectors []string) *html.Node {
	if root == nil {
		return nil
	}
	doc := goquery.NewDocumentFromNode(root)
	removed := make(map[*html.Node]bool)
	for _, sel := range selectors {
		for _, n := range doc.Find(sel).Nodes {
			removed[n] = true
		}
	}
	return cloneWithout(root, removed)
}

// cloneWithout deep-copies n, skipping children present in removed.
func cloneWithout(n *html.Node, removed map[*html.Node]bool) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		clone.Attr = make([]html.Attribute, len(n.Attr))
		copy(clone.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if removed[child] {
			continue
		}
		clone.AppendChild(cloneWithout(child, removed))
	}
	return clone
}
