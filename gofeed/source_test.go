package gofeed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/pagemd"
	pagefeed "github.com/fwojciec/pagemd/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Example Blog</title>
<link>https://blog.example.com</link>
<item><title>First</title><link>https://blog.example.com/first</link></item>
<item><title>Second</title><link>/second</link></item>
<item><title>Duplicate</title><link>https://blog.example.com/first</link></item>
<item><title>No link</title></item>
</channel>
</rss>`

const atomFeed = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
<title>Example Atom</title>
<entry><title>Entry</title><link href="https://atom.example.com/entry"/><id>1</id></entry>
</feed>`

func serve(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFeedSource_Discover(t *testing.T) {
	t.Parallel()

	t.Run("returns RSS item links in order without duplicates", func(t *testing.T) {
		t.Parallel()

		srv := serve(t, rssFeed, http.StatusOK)
		source := pagefeed.NewFeedSource(pagefeed.WithHTTPClient(srv.Client()))

		urls, err := source.Discover(context.Background(), srv.URL+"/feed.xml")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://blog.example.com/first", srv.URL + "/second"}, urls)
	})

	t.Run("reads Atom entries", func(t *testing.T) {
		t.Parallel()

		srv := serve(t, atomFeed, http.StatusOK)
		source := pagefeed.NewFeedSource()

		urls, err := source.Discover(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://atom.example.com/entry"}, urls)
	})

	t.Run("sends configured user agent", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			link := "https://blog.example.com/" + r.UserAgent()
			_, _ = w.Write([]byte(`<rss version="2.0"><channel><title>t</title><item><link>` + link + `</link></item></channel></rss>`))
		}))
		defer srv.Close()
		source := pagefeed.NewFeedSource(pagefeed.WithUserAgent("pagemd-test"))

		urls, err := source.Discover(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://blog.example.com/pagemd-test"}, urls)
	})

	t.Run("returns ENOTFOUND for missing feed", func(t *testing.T) {
		t.Parallel()

		srv := serve(t, "missing", http.StatusNotFound)

		_, err := pagefeed.NewFeedSource().Discover(context.Background(), srv.URL)

		assert.Equal(t, pagemd.ENOTFOUND, pagemd.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for feed without links", func(t *testing.T) {
		t.Parallel()

		srv := serve(t, `<rss version="2.0"><channel><title>Empty</title></channel></rss>`, http.StatusOK)

		_, err := pagefeed.NewFeedSource().Discover(context.Background(), srv.URL)

		assert.Equal(t, pagemd.ENOTFOUND, pagemd.ErrorCode(err))
	})

	t.Run("returns error for malformed feed", func(t *testing.T) {
		t.Parallel()

		srv := serve(t, "<html><body>not a feed</body></html>", http.StatusOK)

		_, err := pagefeed.NewFeedSource().Discover(context.Background(), srv.URL)

		require.Error(t, err)
	})

	t.Run("rejects relative feed URL", func(t *testing.T) {
		t.Parallel()

		_, err := pagefeed.NewFeedSource().Discover(context.Background(), "/feed.xml")

		assert.Equal(t, pagemd.EINVALID, pagemd.ErrorCode(err))
	})
}
