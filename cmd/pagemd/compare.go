package main

import (
	"fmt"

	"github.com/fwojciec/pagemd/crawl"
)

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	html, err := fetchPage(deps, c.URL, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	results := crawl.Compare(html, c.URL, deps.Engines)
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(deps.Stdout, "%-12s  failed: %s\n", r.Engine, errorText(r.Err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "%-12s  %6d chars  %s\n", r.Engine, r.Chars, r.Article.Title)
	}

	if !c.Browser {
		return nil
	}

	rendered, err := deps.Browser.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: rendering: %s\n", errorText(err))
		return err
	}
	if crawl.ContentDiffers(html, rendered, c.URL, deps.Extractor) {
		fmt.Fprintln(deps.Stdout, "\nBrowser rendering adds content; use --browser when extracting this page.")
	} else {
		fmt.Fprintln(deps.Stdout, "\nBrowser rendering adds nothing; plain HTTP fetching is enough.")
	}
	return nil
}
