package goquery

import (
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/pagemd"
)

// DefaultBoilerplate lists elements removed before content selection.
func DefaultBoilerplate() []string {
	return []string{
		"script", "style", "nav", "header", "footer", "aside",
		".advertisement", ".ads", ".social-share", ".newsletter",
		".popup", ".modal", ".cookie-banner", ".sidebar",
		`[class*="ad-"]`, `[id*="ad-"]`, `[class*="advertisement"]`,
		".comments", ".comment-section", ".related-posts",
		".breadcrumb", ".pagination", ".tags", ".categories",
		".author-bio", ".share-buttons", ".social-media",
		".navigation", ".menu",
	}
}

// DefaultStructuralBoilerplate lists navigation elements removed from the
// body when no content region qualifies.
func DefaultStructuralBoilerplate() []string {
	return []string{
		"nav", "header", "footer", "aside", ".sidebar",
		".navigation", ".menu", ".breadcrumb", ".pagination",
	}
}

// DefaultContentSelectors lists content region candidates, most specific first.
func DefaultContentSelectors() []string {
	return []string{
		"main", "article", ".content", ".post", ".entry",
		".post-content", ".article-content", ".main-content",
		`[role="main"]`, ".prose", ".text-content",
	}
}

// DefaultTitleSelectors lists title candidates in resolution order.
func DefaultTitleSelectors() []string {
	return []string{"h1", ".post-title", ".article-title", ".entry-title", ".title", "title"}
}

// Config holds the selector groups and thresholds used by an Extractor.
// Each selector in ContentSelectors is a group tried in order.
type Config struct {
	Boilerplate           []string
	StructuralBoilerplate []string
	ContentSelectors      []string
	TitleSelectors        []string

	// MinRegionLength is the text length a content region must exceed.
	MinRegionLength int
	// MinContentLength is the shortest accepted markdown result.
	MinContentLength int

	FallbackTitle string
}

// DefaultConfig returns the configuration tuned for article pages.
func DefaultConfig() Config {
	return Config{
		Boilerplate:           DefaultBoilerplate(),
		StructuralBoilerplate: DefaultStructuralBoilerplate(),
		ContentSelectors:      DefaultContentSelectors(),
		TitleSelectors:        DefaultTitleSelectors(),
		MinRegionLength:       pagemd.DefaultMinRegionLength,
		MinContentLength:      pagemd.DefaultMinContentLength,
		FallbackTitle:         pagemd.DefaultTitle,
	}
}

// withProfiles returns a copy of c with the selectors of each profile
// merged ahead of its own.
func (c Config) withProfiles(profiles []Profile) Config {
	if len(profiles) == 0 {
		return c
	}
	var boilerplate, content []string
	for _, p := range profiles {
		boilerplate = append(boilerplate, p.Boilerplate...)
		content = append(content, p.ContentSelectors...)
	}
	c.Boilerplate = append(boilerplate, c.Boilerplate...)
	c.ContentSelectors = append(content, c.ContentSelectors...)
	return c
}

// ValidateSelectors returns EINVALID for the first selector that is not a
// valid CSS selector. goquery silently matches nothing for invalid
// selectors, so user input is checked up front.
func ValidateSelectors(selectors []string) error {
	for _, sel := range selectors {
		if _, err := cascadia.Compile(sel); err != nil {
			return pagemd.Errorf(pagemd.EINVALID, "invalid selector %q: %v", sel, err)
		}
	}
	return nil
}
