package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/pagemd"
)

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server is forcibly closed.
const ShutdownTimeout = 5 * time.Second

// maxRequestSize bounds request bodies, which may carry whole HTML pages.
const maxRequestSize = 10 << 20

// Server serves the extraction API over HTTP.
//
// Fetcher, Extractor and Converter are required. Analyzer, Asker,
// Documents and Renderer are optional; their endpoints answer 501 when unset.
type Server struct {
	ln     net.Listener
	server *http.Server
	mux    *http.ServeMux

	Addr string

	Fetcher   pagemd.Fetcher
	Extractor pagemd.Extractor
	Converter pagemd.Converter
	Analyzer  pagemd.Analyzer
	Asker     pagemd.Asker
	Documents pagemd.DocumentService
	Renderer  pagemd.HTMLRenderer
	Logger    *slog.Logger
}

// NewServer returns a new instance of Server.
func NewServer() *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		Logger: slog.New(slog.DiscardHandler),
	}
	s.server = &http.Server{Handler: s, ReadHeaderTimeout: 10 * time.Second}

	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("POST /api/fetch", s.handleFetch)
	s.mux.HandleFunc("POST /api/extract", s.handleExtract)
	s.mux.HandleFunc("POST /api/convert", s.handleConvert)
	s.mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	s.mux.HandleFunc("POST /api/ask", s.handleAsk)
	s.mux.HandleFunc("POST /api/render", s.handleRender)
	s.mux.HandleFunc("GET /api/documents", s.handleDocuments)
	return s
}

// Open begins listening on Addr and serves requests in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() { _ = s.server.Serve(s.ln) }()
	return nil
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// ServeHTTP logs each request and dispatches it to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	r.Body = http.MaxBytesReader(rec, r.Body, maxRequestSize)
	s.mux.ServeHTTP(rec, r)
	s.Logger.Info("request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(start),
	)
}

type urlRequest struct {
	URL      string `json:"url"`
	HTML     string `json:"html,omitempty"`
	Question string `json:"question,omitempty"`
}

type analyzeResponse struct {
	Article  *pagemd.Article `json:"article"`
	Analysis string          `json:"analysis"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleFetch proxies the raw page, passing the upstream status through.
func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	req, err := decodeURLRequest(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	html, err := s.Fetcher.Fetch(r.Context(), req.URL)
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(statusErr.StatusCode)
		_, _ = io.WriteString(w, statusErr.Body)
		return
	} else if err != nil {
		s.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, html)
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	req, err := decodeURLRequest(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	article, err := s.extract(r.Context(), req)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.Error(w, r, pagemd.Errorf(pagemd.EINVALID, "reading request body: %v", err))
		return
	}

	md, err := s.Converter.Convert(string(body))
	if err != nil {
		s.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = io.WriteString(w, md)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.Analyzer == nil {
		notImplemented(w, "analysis is not configured")
		return
	}
	req, err := decodeURLRequest(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	article, err := s.extract(r.Context(), req)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	analysis, err := s.Analyzer.Analyze(r.Context(), article)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analyzeResponse{Article: article, Analysis: analysis})
}

type askResponse struct {
	Article *pagemd.Article `json:"article"`
	Answer  string          `json:"answer"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if s.Asker == nil {
		notImplemented(w, "questions are not configured")
		return
	}
	req, err := decodeURLRequest(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		s.Error(w, r, pagemd.Errorf(pagemd.EINVALID, "question is required"))
		return
	}

	article, err := s.extract(r.Context(), req)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	answer, err := s.Asker.Ask(r.Context(), article, req.Question)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, askResponse{Article: article, Answer: answer})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if s.Renderer == nil {
		notImplemented(w, "rendering is not configured")
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.Error(w, r, pagemd.Errorf(pagemd.EINVALID, "reading request body: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, s.Renderer.RenderHTML(string(body)))
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	if s.Documents == nil {
		notImplemented(w, "history is not configured")
		return
	}

	filter := pagemd.DocumentFilter{Limit: 50}
	if u := r.URL.Query().Get("url"); u != "" {
		filter.SourceURL = &u
	}
	docs, err := s.Documents.FindDocuments(r.Context(), filter)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	if docs == nil {
		docs = []*pagemd.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}

// extract fetches the page unless the request carries its HTML, extracts
// it, and records the result in the history when one is configured.
func (s *Server) extract(ctx context.Context, req urlRequest) (*pagemd.Article, error) {
	html := req.HTML
	if html == "" {
		var err error
		if html, err = s.Fetcher.Fetch(ctx, req.URL); err != nil {
			return nil, err
		}
	}

	article, err := s.Extractor.Extract(html, req.URL)
	if err != nil {
		return nil, err
	}

	if s.Documents != nil {
		doc := pagemd.NewDocument(article, pagemd.EngineHeuristic)
		if err := s.Documents.CreateDocument(ctx, doc); err != nil {
			s.Logger.Warn("saving document failed", "url", req.URL, "err", err)
		}
	}
	return article, nil
}

func decodeURLRequest(r *http.Request) (urlRequest, error) {
	var req urlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, pagemd.Errorf(pagemd.EINVALID, "invalid JSON body: %v", err)
	}
	if req.URL == "" {
		return req, pagemd.Errorf(pagemd.EEMPTY, "URL is required")
	}
	return req, nil
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	pagemd.EEMPTY:        http.StatusBadRequest,
	pagemd.EINVALID:      http.StatusBadRequest,
	pagemd.ENOTFOUND:     http.StatusNotFound,
	pagemd.EINSUFFICIENT: http.StatusUnprocessableEntity,
	pagemd.EINTERNAL:     http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an error.
// Upstream fetch failures map to 502 Bad Gateway.
func ErrorStatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return http.StatusBadGateway
	}
	if code, ok := codes[pagemd.ErrorCode(err)]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// Error writes err as JSON with the matching status code.
// Internal errors are logged and their details hidden from the client.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	status := ErrorStatusCode(err)
	message := pagemd.ErrorMessage(err)
	switch {
	case status == http.StatusBadGateway:
		message = err.Error()
	case status == http.StatusInternalServerError:
		s.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorResponse{Error: message})
}

type errorResponse struct {
	Error string `json:"error"`
}

func notImplemented(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotImplemented, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
