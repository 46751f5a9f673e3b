package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/crawl"
	pagehttp "github.com/fwojciec/pagemd/http"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher      pagemd.Fetcher
	Browser      pagemd.Fetcher
	Extractor    pagemd.Extractor
	Engines      []crawl.Engine
	Converter    pagemd.Converter
	Documents    pagemd.DocumentService
	TokenCounter pagemd.TokenCounter
	Analyzer     pagemd.Analyzer
	Asker        pagemd.Asker
	Renderer     pagemd.HTMLRenderer
	Source       pagemd.URLSource
	Sitemaps     pagemd.URLSource
	Crawler      *crawl.Crawler
	Export       Export
	Server       *pagehttp.Server
}

// Export is a batch destination committed only when the run succeeds.
type Export interface {
	pagemd.DocumentWriter
	Dir() string
	Commit() error
	Abort() error
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"PAGEMD_DB" help:"SQLite database path (default ~/.pagemd/pagemd.db)"`
	Verbose bool   `short:"v" help:"Log fetches and extractions to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract the main article of a web page as markdown"`
	Convert ConvertCmd `cmd:"" help:"Convert an HTML fragment to markdown"`
	Compare CompareCmd `cmd:"" help:"Run every extraction engine on a page side by side"`
	Batch   BatchCmd   `cmd:"" help:"Extract a list of URLs, feed entries or sitemap pages"`
	History HistoryCmd `cmd:"" help:"List previously saved extractions"`
	Analyze AnalyzeCmd `cmd:"" help:"Ask Gemini for an editorial analysis of a page"`
	Ask     AskCmd     `cmd:"" help:"Ask Gemini a question about a page's article"`
	Serve   ServeCmd   `cmd:"" help:"Serve the extraction API over HTTP"`
	Render  RenderCmd  `cmd:"" help:"Render markdown as sanitized HTML"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL      string   `arg:"" help:"Page URL (also the base for relative links with --file)"`
	File     string   `short:"f" type:"existingfile" help:"Read HTML from a file instead of fetching"`
	Browser  bool     `short:"b" help:"Render the page in a headless browser"`
	JSON     bool     `name:"json" help:"Print the article as JSON"`
	Save     bool     `short:"s" help:"Store the article in the extraction history"`
	Engine   string   `short:"e" default:"heuristic" enum:"heuristic,readability,trafilatura" help:"Extraction engine (${enum})"`
	Selector []string `name:"selector" help:"Extra boilerplate CSS selector to remove (repeatable)"`
	Escape   bool     `help:"Escape markdown special characters in text"`
	Tokens   bool     `short:"t" help:"Report the Gemini token count of the content"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	File   string `arg:"" optional:"" type:"existingfile" help:"HTML file (default stdin)"`
	Engine string `short:"e" default:"heuristic" enum:"heuristic,library" help:"Converter (${enum})"`
	Escape bool   `help:"Escape markdown special characters in text"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	URL     string `arg:"" help:"Page URL"`
	File    string `short:"f" type:"existingfile" help:"Read HTML from a file instead of fetching"`
	Browser bool   `short:"b" help:"Also render the page in a headless browser and report whether it adds content"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" optional:"" name:"url" help:"Article URLs"`
	Feed        string   `short:"F" help:"RSS, Atom or JSON feed whose entries are extracted"`
	Sitemap     string   `short:"S" help:"Site or sitemap URL whose listed pages are extracted"`
	Out         string   `short:"o" type:"path" help:"Export markdown files into this directory"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Engine      string   `short:"e" default:"heuristic" enum:"heuristic,readability,trafilatura" help:"Extraction engine (${enum})"`
	Browser     bool     `short:"b" help:"Render pages in a headless browser"`
	Tokens      bool     `short:"t" help:"Count Gemini tokens of the extracted content"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL    string `arg:"" optional:"" help:"Only show extractions of this URL"`
	Engine string `short:"e" help:"Only show extractions made by this engine"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of entries"`
	Full   bool   `help:"Print the full content of every entry"`
	Show   string `help:"Print the entry with this ID"`
	Delete string `help:"Delete the entry with this ID"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL     string `arg:"" help:"Page URL"`
	File    string `short:"f" type:"existingfile" help:"Read HTML from a file instead of fetching"`
	Browser bool   `short:"b" help:"Render the page in a headless browser"`
	Model   string `short:"m" default:"gemini-2.5-flash" help:"Gemini model"`
	APIKey  string `name:"api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Question string `arg:"" help:"Question about the article"`
	File     string `short:"f" type:"existingfile" help:"Read HTML from a file instead of fetching"`
	Browser  bool   `short:"b" help:"Render the page in a headless browser"`
	Model    string `short:"m" default:"gemini-2.5-flash" help:"Gemini model"`
	APIKey   string `name:"api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr    string `short:"a" default:"127.0.0.1:8080" env:"PAGEMD_ADDR" help:"Listen address"`
	Browser bool   `short:"b" help:"Fetch pages with a headless browser"`
	APIKey  string `name:"api-key" env:"GEMINI_API_KEY" help:"Gemini API key enabling /api/analyze and /api/ask"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	File string `arg:"" optional:"" type:"existingfile" help:"Markdown file (default stdin)"`
}

// readInput returns the contents of path, or of r when path is empty or "-".
func readInput(path string, r io.Reader) (string, error) {
	if path == "" || path == "-" {
		if r == nil {
			return "", pagemd.Errorf(pagemd.EINVALID, "no input")
		}
		b, err := io.ReadAll(r)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

// fetchPage returns the HTML of url, read from file when set.
func fetchPage(deps *Dependencies, url, file string) (string, error) {
	if file != "" {
		return readInput(file, deps.Stdin)
	}
	return deps.Fetcher.Fetch(deps.Ctx, url)
}

// errorText returns the message of an application error, or the full text
// of any other error.
func errorText(err error) string {
	var e *pagemd.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
