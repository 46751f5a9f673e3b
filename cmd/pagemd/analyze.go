package main

import "fmt"

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	html, err := fetchPage(deps, c.URL, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	article, err := deps.Extractor.Extract(html, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	analysis, err := deps.Analyzer.Analyze(deps.Ctx, article)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, analysis)
	return nil
}
