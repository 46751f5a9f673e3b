package goquery

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemd"
	mdhtml "github.com/fwojciec/pagemd/html"
)

// Ensure Extractor implements the domain interfaces at compile time.
var (
	_ pagemd.Extractor = (*Extractor)(nil)
	_ pagemd.Converter = (*Extractor)(nil)
)

// Extractor extracts article content with boilerplate filtering, content
// region selection and the markdown tree converter.
// An Extractor is safe for concurrent use.
type Extractor struct {
	config    Config
	profiles  *Registry
	converter *mdhtml.Converter
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(e *Extractor) {
		e.config = cfg
	}
}

// WithExtraBoilerplate adds selectors removed ahead of the default denylist.
func WithExtraBoilerplate(selectors ...string) Option {
	return func(e *Extractor) {
		e.config.Boilerplate = append(slices.Clone(selectors), e.config.Boilerplate...)
	}
}

// WithContentSelectors adds content region candidates tried before the defaults.
func WithContentSelectors(selectors ...string) Option {
	return func(e *Extractor) {
		e.config.ContentSelectors = append(slices.Clone(selectors), e.config.ContentSelectors...)
	}
}

// WithMinContentLength sets the shortest accepted markdown result.
func WithMinContentLength(n int) Option {
	return func(e *Extractor) {
		e.config.MinContentLength = n
	}
}

// WithMinRegionLength sets the text length a content region must exceed.
func WithMinRegionLength(n int) Option {
	return func(e *Extractor) {
		e.config.MinRegionLength = n
	}
}

// WithProfiles sets the site profiles consulted per page.
// Passing nil disables profiles.
func WithProfiles(r *Registry) Option {
	return func(e *Extractor) {
		e.profiles = r
	}
}

// WithConverter sets the markdown converter.
func WithConverter(c *mdhtml.Converter) Option {
	return func(e *Extractor) {
		e.converter = c
	}
}

// NewExtractor creates an Extractor using DefaultConfig and DefaultProfiles.
// Returns EINVALID if any configured selector is not valid CSS.
func NewExtractor(opts ...Option) (*Extractor, error) {
	e := &Extractor{
		config:    DefaultConfig(),
		profiles:  NewRegistry(DefaultProfiles()...),
		converter: mdhtml.NewConverter(),
	}
	for _, opt := range opts {
		opt(e)
	}

	groups := [][]string{
		e.config.Boilerplate,
		e.config.StructuralBoilerplate,
		e.config.ContentSelectors,
		e.config.TitleSelectors,
	}
	for _, sels := range groups {
		if err := ValidateSelectors(sels); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Extract returns the title and markdown content of the page at pageURL.
// Returns EEMPTY for blank input and EINSUFFICIENT when the markdown is
// shorter than the configured minimum.
func (e *Extractor) Extract(html string, pageURL string) (*pagemd.Article, error) {
	if strings.TrimSpace(html) == "" {
		return nil, pagemd.Errorf(pagemd.EEMPTY, "empty HTML input")
	}
	if strings.TrimSpace(pageURL) == "" {
		return nil, pagemd.Errorf(pagemd.EEMPTY, "empty URL")
	}

	doc, err := parse(html)
	if err != nil {
		return nil, err
	}
	cfg := e.config.withProfiles(e.profiles.Match(doc, pageURL))

	filtered := goquery.NewDocumentFromNode(FilterBoilerplate(doc.Nodes[0], cfg.Boilerplate))
	title := ResolveTitle(filtered, cfg.TitleSelectors, cfg.FallbackTitle)
	content := e.converter.Convert(SelectMainElement(filtered, cfg))

	if n := len([]rune(content)); n < cfg.MinContentLength {
		return nil, pagemd.Errorf(pagemd.EINSUFFICIENT,
			"page structure unsupported: extracted %d characters, need %d", n, cfg.MinContentLength)
	}

	return &pagemd.Article{
		Title:   title,
		Content: content,
		URL:     pageURL,
	}, nil
}

// Convert renders an HTML document or fragment as markdown using the same
// filtering and region selection as Extract, without title resolution,
// site profiles or a minimum length.
func (e *Extractor) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagemd.Errorf(pagemd.EEMPTY, "empty HTML input")
	}

	doc, err := parse(html)
	if err != nil {
		return "", err
	}
	filtered := goquery.NewDocumentFromNode(FilterBoilerplate(doc.Nodes[0], e.config.Boilerplate))
	return e.converter.Convert(SelectMainElement(filtered, e.config)), nil
}

func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagemd.Errorf(pagemd.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
