package html_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	xhtml "golang.org/x/net/html"
)

// body parses src as a full document and returns its body element.
func body(t *testing.T, src string) *xhtml.Node {
	t.Helper()

	doc, err := xhtml.Parse(strings.NewReader(src))
	require.NoError(t, err)

	var find func(*xhtml.Node) *xhtml.Node
	find = func(n *xhtml.Node) *xhtml.Node {
		if n.Type == xhtml.ElementNode && n.Data == "body" {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := find(c); found != nil {
				return found
			}
		}
		return nil
	}
	b := find(doc)
	require.NotNil(t, b)
	return b
}
