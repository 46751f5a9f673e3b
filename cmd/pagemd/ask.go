package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pagemd"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	if strings.TrimSpace(c.Question) == "" {
		err := pagemd.Errorf(pagemd.EINVALID, "question required")
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

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

	answer, err := deps.Asker.Ask(deps.Ctx, article, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
