package goquery_test

import (
	"strings"
	"testing"

	pq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemd/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectMainElement(t *testing.T) {
	t.Parallel()

	t.Run("picks longest match within a selector", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<body>
			<article id="short">`+strings.Repeat("Short piece. ", 10)+`</article>
			<article id="long">`+longText+longText+`</article>
		</body>`)

		n := goquery.SelectMainElement(doc, goquery.DefaultConfig())

		require.NotNil(t, n)
		assert.Equal(t, "long", attr(n, "id"))
	})

	t.Run("earlier selector wins over longer later match", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<body>
			<main id="main">`+longText+`</main>
			<div class="content" id="content">`+longText+longText+`</div>
		</body>`)

		n := goquery.SelectMainElement(doc, goquery.DefaultConfig())

		assert.Equal(t, "main", attr(n, "id"))
	})

	t.Run("skips selector whose best match is below threshold", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<body>
			<main id="main">Too short to count</main>
			<div class="post" id="post">`+longText+`</div>
		</body>`)

		n := goquery.SelectMainElement(doc, goquery.DefaultConfig())

		assert.Equal(t, "post", attr(n, "id"))
	})

	t.Run("falls back to body without structural elements", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<body>
			<header>Site header words</header>
			<div class="menu">Menu words</div>
			<div>`+longText+`</div>
		</body>`)
		cfg := goquery.DefaultConfig()
		cfg.Boilerplate = nil

		n := goquery.SelectMainElement(doc, cfg)

		require.NotNil(t, n)
		assert.Equal(t, "body", n.Data)
		text := pq.NewDocumentFromNode(n).Text()
		assert.NotContains(t, text, "Site header words")
		assert.NotContains(t, text, "Menu words")
		assert.Contains(t, text, "part of the article body")
	})

	t.Run("honours configured region threshold", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<body><main id="main">Just enough text</main><p>Other</p></body>`)
		cfg := goquery.DefaultConfig()
		cfg.MinRegionLength = 5

		n := goquery.SelectMainElement(doc, cfg)

		assert.Equal(t, "main", attr(n, "id"))
	})
}

func TestResolveTitle(t *testing.T) {
	t.Parallel()

	t.Run("prefers first h1", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<head><title>Page title</title></head><body><h1>First heading</h1><h1>Second</h1></body>`)

		title := goquery.ResolveTitle(doc, goquery.DefaultTitleSelectors(), "none")

		assert.Equal(t, "First heading", title)
	})

	t.Run("moves to next selector when first match is empty", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<body><h1> </h1><h2 class="post-title">Post   title</h2></body>`)

		title := goquery.ResolveTitle(doc, goquery.DefaultTitleSelectors(), "none")

		assert.Equal(t, "Post title", title)
	})

	t.Run("collapses whitespace inside heading", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, "<body><h1>\n  Spring\n\t garden <span>notes</span>\n</h1></body>")

		title := goquery.ResolveTitle(doc, goquery.DefaultTitleSelectors(), "none")

		assert.Equal(t, "Spring garden notes", title)
	})

	t.Run("uses document title", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<head><title>Page title</title></head><body><p>No headings</p></body>`)

		title := goquery.ResolveTitle(doc, goquery.DefaultTitleSelectors(), "none")

		assert.Equal(t, "Page title", title)
	})

	t.Run("returns fallback when nothing matches", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<body><p>No headings</p></body>`)

		title := goquery.ResolveTitle(doc, goquery.DefaultTitleSelectors(), "Title not found")

		assert.Equal(t, "Title not found", title)
	})
}
