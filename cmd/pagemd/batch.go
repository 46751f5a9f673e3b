package main

import (
	"fmt"

	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/crawl"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls := append([]string(nil), c.URLs...)
	sources := []struct {
		url    string
		source pagemd.URLSource
	}{
		{c.Feed, deps.Source},
		{c.Sitemap, deps.Sitemaps},
	}
	for _, s := range sources {
		if s.url == "" {
			continue
		}
		found, err := s.source.Discover(deps.Ctx, s.url)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Found %d entries in %s\n", len(found), s.url)
		urls = append(urls, found...)
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no URLs given. Pass article URLs, --feed or --sitemap.")
		return pagemd.Errorf(pagemd.EINVALID, "no URLs given")
	}

	progress := func(p pagemd.BatchProgress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stderr, "[%d/%d] skip %s: %s\n", p.Completed, p.Total, p.URL, errorText(p.Error))
			return
		}
		fmt.Fprintf(deps.Stdout, "[%d/%d] %s  %s\n", p.Completed, p.Total, crawl.TruncateURL(p.URL, 40), p.Title)
	}

	result, err := deps.Crawler.Run(deps.Ctx, urls, progress)
	if err != nil {
		if deps.Export != nil {
			_ = deps.Export.Abort()
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	if deps.Export != nil {
		if result.Saved > 0 {
			if err := deps.Export.Commit(); err != nil {
				fmt.Fprintf(deps.Stderr, "error: committing export: %v\n", err)
				return err
			}
			fmt.Fprintf(deps.Stdout, "Exported to %s\n", deps.Export.Dir())
		} else {
			_ = deps.Export.Abort()
		}
	}

	fmt.Fprintln(deps.Stdout, result.Summary())
	return nil
}
