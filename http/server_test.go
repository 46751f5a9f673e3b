package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/pagemd"
	pagehttp "github.com/fwojciec/pagemd/http"
	"github.com/fwojciec/pagemd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageHTML = "<html><body><article>page</article></body></html>"

// newTestAPI returns a server whose collaborators succeed by default.
func newTestAPI(t *testing.T, configure ...func(s *pagehttp.Server)) *httptest.Server {
	t.Helper()

	s := pagehttp.NewServer()
	s.Fetcher = &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			return pageHTML, nil
		},
	}
	s.Extractor = &mock.Extractor{
		ExtractFn: func(html, url string) (*pagemd.Article, error) {
			return &pagemd.Article{Title: "Title", Content: "Body from " + html, URL: url}, nil
		},
	}
	s.Converter = &mock.Converter{
		ConvertFn: func(html string) (string, error) {
			return "converted: " + html, nil
		},
	}

	for _, fn := range configure {
		fn(s)
	}

	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	ts := newTestAPI(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns upstream body", func(t *testing.T) {
		t.Parallel()

		ts := newTestAPI(t)

		resp := post(t, ts.URL+"/api/fetch", `{"url":"https://example.com"}`)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, pageHTML, readBody(t, resp))
	})

	t.Run("passes upstream status through", func(t *testing.T) {
		t.Parallel()

		ts := newTestAPI(t, func(s *pagehttp.Server) {
			s.Fetcher = &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "", &pagehttp.StatusError{StatusCode: http.StatusForbidden, URL: url, Body: "blocked"}
				},
			}
		})

		resp := post(t, ts.URL+"/api/fetch", `{"url":"https://example.com"}`)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "blocked", readBody(t, resp))
	})

	t.Run("rejects missing URL", func(t *testing.T) {
		t.Parallel()

		ts := newTestAPI(t)

		resp := post(t, ts.URL+"/api/fetch", `{}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "URL is required", decodeError(t, resp))
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		ts := newTestAPI(t)

		resp := post(t, ts.URL+"/api/fetch", `{"url":`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_Extract(t *testing.T) {
	t.Parallel()

	t.Run("fetches and extracts article", func(t *testing.T) {
		t.Parallel()

		ts := newTestAPI(t)

		resp := post(t, ts.URL+"/api/extract", `{"url":"https://example.com/post"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var a pagemd.Article
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&a))
		assert.Equal(t, "Title", a.Title)
		assert.Equal(t, "Body from "+pageHTML, a.Content)
		assert.Equal(t, "https://example.com/post", a.URL)
	})

	t.Run("uses supplied HTML without fetching", func(t *testing.T) {
		t.Parallel()

		ts := newTestAPI(t, func(s *pagehttp.Server) {
			s.Fetcher = &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return "", errors.New("must not fetch")
				},
			}
		})

		resp := post(t, ts.URL+"/api/extract", `{"url":"https://example.com","html":"<p>given</p>"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var a pagemd.Article
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&a))
		assert.Equal(t, "Body from <p>given</p>", a.Content)
	})

	t.Run("maps insufficient content to 422", func(t *testing.T) {
		t.Parallel()

		ts := newTestAPI(t, func(s *pagehttp.Server) {
			s.Extractor = &mock.Extractor{
				ExtractFn: func(string, string) (*pagemd.Article, error) {
					return nil, pagemd.Errorf(pagemd.EINSUFFICIENT, "page structure unsupported")
				},
			}
		})

		resp := post(t, ts.URL+"/api/extract", `{"url":"https://example.com"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "page structure unsupported", decodeError(t, resp))
	})

	t.Run("maps upstream failure to 502", func(t *testing.T) {
		t.Parallel()

		ts := newTestAPI(t, func(s *pagehttp.Server) {
			s.Fetcher = &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "", &pagehttp.StatusError{StatusCode: http.StatusNotFound, URL: url}
				},
			}
		})

		resp := post(t, ts.URL+"/api/extract", `{"url":"https://example.com"}`)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})

	t.Run("hides internal error details", func(t *testing.T) {
		t.Parallel()

		ts := newTestAPI(t, func(s *pagehttp.Server) {
			s.Extractor = &mock.Extractor{
				ExtractFn: func(string, string) (*pagemd.Article, error) {
					return nil, errors.New("secret failure")
				},
			}
		})

		resp := post(t, ts.URL+"/api/extract", `{"url":"https://example.com"}`)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Internal error.", decodeError(t, resp))
	})

	t.Run("records extracted article in history", func(t *testing.T) {
		t.Parallel()

		saved := make(chan *pagemd.Document, 1)
		ts := newTestAPI(t, func(s *pagehttp.Server) {
			s.Documents = &mock.DocumentService{
				CreateDocumentFn: func(_ context.Context, doc *pagemd.Document) error {
					saved <- doc
					return nil
				},
			}
		})

		resp := post(t, ts.URL+"/api/extract", `{"url":"https://example.com/post"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		doc := <-saved
		assert.Equal(t, "https://example.com/post", doc.SourceURL)
		assert.Equal(t, pagemd.EngineHeuristic, doc.Engine)
	})
}

func TestServer_Convert(t *testing.T) {
	t.Parallel()

	t.Run("returns markdown", func(t *testing.T) {
		t.Parallel()

		ts := newTestAPI(t)

		resp, err := http.Post(ts.URL+"/api/convert", "text/html", strings.NewReader("<p>x</p>"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/markdown")
		assert.Equal(t, "converted: <p>x</p>", readBody(t, resp))
	})

	t.Run("maps empty input to 400", func(t *testing.T) {
		t.Parallel()

		ts := newTestAPI(t, func(s *pagehttp.Server) {
			s.Converter = &mock.Converter{
				ConvertFn: func(string) (string, error) {
					return "", pagemd.Errorf(pagemd.EEMPTY, "empty HTML input")
				},
			}
		})

		resp, err := http.Post(ts.URL+"/api/convert", "text/html", strings.NewReader(""))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("returns analysis of extracted article", func(t *testing.T) {
		t.Parallel()

		ts := newTestAPI(t, func(s *pagehttp.Server) {
			s.Analyzer = &mock.Analyzer{
				AnalyzeFn: func(_ context.Context, a *pagemd.Article) (string, error) {
					return "analysis of " + a.Title, nil
				},
			}
		})

		resp := post(t, ts.URL+"/api/analyze", `{"url":"https://example.com"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Analysis string          `json:"analysis"`
			Article  *pagemd.Article `json:"article"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "analysis of Title", body.Analysis)
		assert.Equal(t, "Title", body.Article.Title)
	})

	t.Run("answers 501 without analyzer", func(t *testing.T) {
		t.Parallel()

		ts := newTestAPI(t)

		resp := post(t, ts.URL+"/api/analyze", `{"url":"https://example.com"}`)

		assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	})
}

func TestServer_Ask(t *testing.T) {
	t.Parallel()

	t.Run("answers question about extracted article", func(t *testing.T) {
		t.Parallel()

		ts := newTestAPI(t, func(s *pagehttp.Server) {
			s.Asker = &mock.Asker{
				AskFn: func(_ context.Context, a *pagemd.Article, question string) (string, error) {
					return question + " about " + a.Content, nil
				},
			}
		})

		resp := post(t, ts.URL+"/api/ask", `{"url":"https://example.com","html":"<p>given</p>","question":"What is missing?"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Answer  string          `json:"answer"`
			Article *pagemd.Article `json:"article"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "What is missing? about Body from <p>given</p>", body.Answer)
		assert.Equal(t, "https://example.com", body.Article.URL)
	})

	t.Run("rejects missing question", func(t *testing.T) {
		t.Parallel()

		ts := newTestAPI(t, func(s *pagehttp.Server) {
			s.Asker = &mock.Asker{
				AskFn: func(context.Context, *pagemd.Article, string) (string, error) {
					return "", errors.New("unexpected call")
				},
			}
		})

		resp := post(t, ts.URL+"/api/ask", `{"url":"https://example.com","question":" "}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "question is required", decodeError(t, resp))
	})

	t.Run("answers 501 without asker", func(t *testing.T) {
		t.Parallel()

		ts := newTestAPI(t)

		resp := post(t, ts.URL+"/api/ask", `{"url":"https://example.com","question":"Why?"}`)

		assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	})
}

func TestServer_Render(t *testing.T) {
	t.Parallel()

	ts := newTestAPI(t, func(s *pagehttp.Server) {
		s.Renderer = &mock.HTMLRenderer{
			RenderHTMLFn: func(md string) string { return "<p>" + md + "</p>" },
		}
	})

	resp, err := http.Post(ts.URL+"/api/render", "text/markdown", strings.NewReader("hi"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<p>hi</p>", readBody(t, resp))
}

func TestServer_Documents(t *testing.T) {
	t.Parallel()

	ts := newTestAPI(t, func(s *pagehttp.Server) {
		s.Documents = &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter pagemd.DocumentFilter) ([]*pagemd.Document, error) {
				if filter.SourceURL == nil {
					return nil, pagemd.Errorf(pagemd.EINVALID, "missing url filter")
				}
				return []*pagemd.Document{{ID: "1", SourceURL: *filter.SourceURL}}, nil
			},
		}
	})

	resp, err := http.Get(ts.URL + "/api/documents?url=https://example.com/a")
	require.NoError(t, err)
	defer resp.Body.Close()

	var docs []*pagemd.Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "https://example.com/a", docs[0].SourceURL)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	ts := newTestAPI(t)

	resp, err := http.Get(ts.URL + "/api/extract")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServer_OpenClose(t *testing.T) {
	t.Parallel()

	s := pagehttp.NewServer()
	s.Addr = "127.0.0.1:0"

	require.NoError(t, s.Open())
	resp, err := http.Get(s.URL() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, s.Close())
}

func TestErrorStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty input", pagemd.Errorf(pagemd.EEMPTY, "x"), http.StatusBadRequest},
		{"invalid", pagemd.Errorf(pagemd.EINVALID, "x"), http.StatusBadRequest},
		{"not found", pagemd.Errorf(pagemd.ENOTFOUND, "x"), http.StatusNotFound},
		{"insufficient", pagemd.Errorf(pagemd.EINSUFFICIENT, "x"), http.StatusUnprocessableEntity},
		{"upstream", &pagehttp.StatusError{StatusCode: 500}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pagehttp.ErrorStatusCode(tt.err))
		})
	}
}
