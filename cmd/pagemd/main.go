package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/bluemonday"
	"github.com/fwojciec/pagemd/crawl"
	"github.com/fwojciec/pagemd/fs"
	"github.com/fwojciec/pagemd/gemini"
	"github.com/fwojciec/pagemd/gofeed"
	"github.com/fwojciec/pagemd/goquery"
	mdhtml "github.com/fwojciec/pagemd/html"
	"github.com/fwojciec/pagemd/htmltomarkdown"
	pagehttp "github.com/fwojciec/pagemd/http"
	"github.com/fwojciec/pagemd/readability"
	"github.com/fwojciec/pagemd/rod"
	pageslog "github.com/fwojciec/pagemd/slog"
	"github.com/fwojciec/pagemd/sqlite"
	"github.com/fwojciec/pagemd/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db and PAGEMD_DB are unset.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Stdin is read by commands taking input from a pipe.
	Stdin io.Reader

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	if m.DB != nil {
		if err := m.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		m.DB = nil
	}
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemd"),
		kong.Description("Extract the readable article of a web page as markdown."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagemd --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	defer m.Close()

	deps.Logger = slog.New(slog.DiscardHandler)
	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	dbPath := m.DBPath
	if cli.DB != "" {
		dbPath = cli.DB
	}

	switch strings.Fields(kongCtx.Command())[0] {
	case "extract":
		c := cli.Extract
		if c.File == "" {
			if deps.Fetcher, err = m.newFetcher(c.Browser, deps.Logger, stderr); err != nil {
				return err
			}
		}
		if deps.Extractor, err = newExtractor(c.Engine, c.Selector, c.Escape, deps.Logger); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", errorText(err))
			return err
		}
		if c.Save {
			if deps.Documents, err = m.openDocuments(dbPath, stderr); err != nil {
				return err
			}
		}
		if c.Tokens {
			if deps.TokenCounter, err = gemini.NewTokenCounter(gemini.DefaultModel); err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}
		}

	case "convert":
		if deps.Converter, err = newConverter(cli.Convert.Engine, cli.Convert.Escape); err != nil {
			return err
		}

	case "compare":
		c := cli.Compare
		if c.File == "" || c.Browser {
			if deps.Fetcher, err = m.newFetcher(false, deps.Logger, stderr); err != nil {
				return err
			}
		}
		if c.Browser {
			if deps.Browser, err = m.newFetcher(true, deps.Logger, stderr); err != nil {
				return err
			}
		}
		for _, engine := range []string{pagemd.EngineHeuristic, pagemd.EngineReadability, pagemd.EngineTrafilatura} {
			ext, err := newExtractor(engine, nil, false, deps.Logger)
			if err != nil {
				return err
			}
			deps.Engines = append(deps.Engines, crawl.Engine{Name: engine, Extractor: ext})
		}
		deps.Extractor = deps.Engines[0].Extractor

	case "batch":
		c := cli.Batch
		if deps.Fetcher, err = m.newFetcher(c.Browser, deps.Logger, stderr); err != nil {
			return err
		}
		if deps.Extractor, err = newExtractor(c.Engine, nil, false, deps.Logger); err != nil {
			return err
		}
		if deps.Documents, err = m.openDocuments(dbPath, stderr); err != nil {
			return err
		}
		deps.Source = pageslog.NewLoggingURLSource(gofeed.NewFeedSource(), deps.Logger)
		deps.Sitemaps = pageslog.NewLoggingURLSource(pagehttp.NewSitemapSource(nil), deps.Logger)

		writers := []pagemd.DocumentWriter{deps.Documents}
		if c.Out != "" {
			out := filepath.Clean(c.Out)
			export := fs.NewStagedWriter(filepath.Dir(out), filepath.Base(out))
			deps.Export = export
			writers = append(writers, export)
		}

		var tokens pagemd.TokenCounter
		if c.Tokens {
			if tokens, err = gemini.NewTokenCounter(gemini.DefaultModel); err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}
		}

		deps.Crawler = &crawl.Crawler{
			Fetcher:      deps.Fetcher,
			Extractor:    deps.Extractor,
			Writers:      writers,
			TokenCounter: tokens,
			RateLimiter:  crawl.NewDomainLimiter(crawl.DefaultRequestsPerSecond),
			Engine:       c.Engine,
			Concurrency:  c.Concurrency,
			Logger:       deps.Logger,
		}

	case "history":
		if deps.Documents, err = m.openDocuments(dbPath, stderr); err != nil {
			return err
		}

	case "analyze":
		c := cli.Analyze
		if c.File == "" {
			if deps.Fetcher, err = m.newFetcher(c.Browser, deps.Logger, stderr); err != nil {
				return err
			}
		}
		if deps.Extractor, err = newExtractor(pagemd.EngineHeuristic, nil, false, deps.Logger); err != nil {
			return err
		}
		client, err := newGeminiClient(ctx, c.APIKey, stderr)
		if err != nil {
			return err
		}
		deps.Analyzer = pageslog.NewLoggingAnalyzer(gemini.NewAnalyzer(client, gemini.WithModel(c.Model)), deps.Logger)

	case "ask":
		c := cli.Ask
		if c.File == "" {
			if deps.Fetcher, err = m.newFetcher(c.Browser, deps.Logger, stderr); err != nil {
				return err
			}
		}
		if deps.Extractor, err = newExtractor(pagemd.EngineHeuristic, nil, false, deps.Logger); err != nil {
			return err
		}
		client, err := newGeminiClient(ctx, c.APIKey, stderr)
		if err != nil {
			return err
		}
		deps.Asker = pageslog.NewLoggingAsker(gemini.NewAsker(client, c.Model), deps.Logger)

	case "serve":
		c := cli.Serve
		s := pagehttp.NewServer()
		s.Logger = deps.Logger
		if s.Fetcher, err = m.newFetcher(c.Browser, deps.Logger, stderr); err != nil {
			return err
		}
		heuristic, err := goquery.NewExtractor()
		if err != nil {
			return err
		}
		s.Extractor = pageslog.NewLoggingExtractor(heuristic, pagemd.EngineHeuristic, deps.Logger)
		s.Converter = heuristic
		s.Renderer = bluemonday.NewRenderer()
		if s.Documents, err = m.openDocuments(dbPath, stderr); err != nil {
			return err
		}
		if c.APIKey != "" {
			client, err := newGeminiClient(ctx, c.APIKey, stderr)
			if err != nil {
				return err
			}
			s.Analyzer = pageslog.NewLoggingAnalyzer(gemini.NewAnalyzer(client), deps.Logger)
			s.Asker = pageslog.NewLoggingAsker(gemini.NewAsker(client, gemini.DefaultModel), deps.Logger)
		}
		deps.Server = s

	case "render":
		deps.Renderer = bluemonday.NewRenderer()
	}

	return kongCtx.Run(deps)
}

// newFetcher returns a plain HTTP fetcher, or a headless browser when
// browser is set. The fetcher is closed with Main.
func (m *Main) newFetcher(browser bool, logger *slog.Logger, stderr io.Writer) (pagemd.Fetcher, error) {
	var f pagemd.Fetcher = pagehttp.NewFetcher()
	if browser {
		rf, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		f = rf
	}
	m.closers = append(m.closers, f)
	return pageslog.NewLoggingFetcher(f, logger), nil
}

// openDocuments opens the history database at path.
func (m *Main) openDocuments(path string, stderr io.Writer) (pagemd.DocumentService, error) {
	if m.DB == nil {
		if dir := filepath.Dir(path); dir != "" {
			_ = os.MkdirAll(dir, 0o755)
		}
		db := sqlite.NewDB(path)
		if err := db.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set PAGEMD_DB or --db to use a different database path")
			return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		m.DB = db
	}
	return sqlite.NewDocumentService(m.DB), nil
}

// newExtractor builds the extractor for engine. Selectors and escape only
// apply to the heuristic engine.
func newExtractor(engine string, selectors []string, escape bool, logger *slog.Logger) (pagemd.Extractor, error) {
	var ext pagemd.Extractor
	switch engine {
	case pagemd.EngineHeuristic, "":
		e, err := goquery.NewExtractor(
			goquery.WithExtraBoilerplate(selectors...),
			goquery.WithConverter(mdhtml.NewConverter(mdhtml.WithEscape(escape))),
		)
		if err != nil {
			return nil, err
		}
		ext, engine = e, pagemd.EngineHeuristic
	case pagemd.EngineReadability:
		ext = readability.NewExtractor(htmltomarkdown.NewConverter())
	case pagemd.EngineTrafilatura:
		ext = trafilatura.NewExtractor(htmltomarkdown.NewConverter())
	default:
		return nil, pagemd.Errorf(pagemd.EINVALID, "unknown engine %q", engine)
	}
	return pageslog.NewLoggingExtractor(ext, engine, logger), nil
}

// newConverter builds the HTML fragment converter for engine.
func newConverter(engine string, escape bool) (pagemd.Converter, error) {
	switch engine {
	case "library":
		return htmltomarkdown.NewConverter(), nil
	case "heuristic", "":
		e, err := goquery.NewExtractor(goquery.WithConverter(mdhtml.NewConverter(mdhtml.WithEscape(escape))))
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, pagemd.Errorf(pagemd.EINVALID, "unknown converter %q", engine)
	}
}

// newGeminiClient connects to the Gemini API.
func newGeminiClient(ctx context.Context, apiKey string, stderr io.Writer) (*genai.Client, error) {
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return client, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagemd.db"
	}
	return filepath.Join(home, ".pagemd", "pagemd.db")
}
