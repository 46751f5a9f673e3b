package goquery_test

import (
	"strings"
	"testing"

	pq "github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// longText is comfortably above the region and content thresholds.
var longText = strings.Repeat("This sentence is part of the article body. ", 6)

func parseDoc(t *testing.T, src string) *pq.Document {
	t.Helper()

	doc, err := pq.NewDocumentFromReader(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
