package goquery

import (
	"net/url"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Profile tunes extraction for one site or site generator. Its selectors
// are merged ahead of the defaults when the profile matches a page.
type Profile struct {
	Name string

	// Hosts match exactly or as a parent domain; a leading "www." is ignored.
	Hosts []string
	// Generators match case-insensitive substrings of the meta generator tag.
	Generators []string
	// Markers match when any selector finds an element in the page.
	Markers []string

	Boilerplate      []string
	ContentSelectors []string
}

// MatchesHost reports whether host belongs to one of the profile's hosts.
func (p Profile) MatchesHost(host string) bool {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	if host == "" {
		return false
	}
	for _, h := range p.Hosts {
		h = strings.TrimPrefix(strings.ToLower(h), "www.")
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

// Registry holds site profiles and finds the ones matching a page.
type Registry struct {
	detector *Detector
	profiles map[string]Profile
}

// NewRegistry creates a Registry holding profiles.
func NewRegistry(profiles ...Profile) *Registry {
	r := &Registry{
		detector: NewDetector(),
		profiles: make(map[string]Profile),
	}
	for _, p := range profiles {
		r.Register(p)
	}
	return r
}

// Register adds a profile.
// If a profile with the same name is already registered, it is replaced.
func (r *Registry) Register(p Profile) {
	r.profiles[p.Name] = p
}

// Get returns the profile with the given name.
func (r *Registry) Get(name string) (Profile, bool) {
	p, ok := r.profiles[name]
	return p, ok
}

// List returns the names of all registered profiles in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Match returns the profiles matching the page fetched from pageURL,
// ordered by name. A profile matches by host or by the detector finding
// one of its generators or markers in doc.
func (r *Registry) Match(doc *goquery.Document, pageURL string) []Profile {
	if r == nil {
		return nil
	}
	host := ""
	if u, err := url.Parse(pageURL); err == nil {
		host = u.Hostname()
	}

	var matched []Profile
	for _, name := range r.List() {
		p := r.profiles[name]
		if p.MatchesHost(host) || (doc != nil && r.detector.Detect(doc, p)) {
			matched = append(matched, p)
		}
	}
	return matched
}

// DefaultProfiles returns the built-in site profiles.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Name:        "oggusto",
			Hosts:       []string{"oggusto.com"},
			Boilerplate: []string{".py-8", ".sticky", ".flex.items-center.font-jost.py-2"},
			ContentSelectors: []string{
				"body > div.container.relative > div",
				".container.relative > div",
			},
		},
		{
			Name:             "docusaurus",
			Generators:       []string{"docusaurus"},
			Markers:          []string{"#__docusaurus_skipToContent_fallback", ".theme-doc-sidebar-container"},
			Boilerplate:      []string{".theme-doc-toc-desktop", ".theme-doc-footer", ".pagination-nav"},
			ContentSelectors: []string{".theme-doc-markdown"},
		},
		{
			Name:             "mkdocs",
			Generators:       []string{"mkdocs"},
			Markers:          []string{"[data-md-component]", ".md-nav--primary"},
			Boilerplate:      []string{".md-sidebar", ".md-source-file", ".headerlink"},
			ContentSelectors: []string{".md-content__inner"},
		},
		{
			Name:             "sphinx",
			Generators:       []string{"sphinx"},
			Markers:          []string{".wy-nav-side", ".sphinxsidebar"},
			Boilerplate:      []string{".headerlink", ".rst-footer-buttons", ".wy-breadcrumbs"},
			ContentSelectors: []string{`[itemprop="articleBody"]`, "div.body"},
		},
	}
}
