package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/crawl"
)

// extractOutput is the JSON form of an extracted article.
type extractOutput struct {
	*pagemd.Article
	Engine string `json:"engine"`
	ID     string `json:"id,omitempty"`
	Tokens *int   `json:"tokens,omitempty"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
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

	out := extractOutput{Article: article, Engine: c.Engine}

	if c.Save {
		doc := pagemd.NewDocument(article, c.Engine)
		if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
			return err
		}
		out.ID = doc.ID
	}

	if c.Tokens {
		n, err := deps.TokenCounter.CountTokens(deps.Ctx, article.Content)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: counting tokens: %v\n", err)
			return err
		}
		out.Tokens = &n
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintln(deps.Stdout, pagemd.FormatArticle(article))
	if out.ID != "" {
		fmt.Fprintf(deps.Stderr, "saved %s\n", out.ID)
	}
	if out.Tokens != nil {
		fmt.Fprintln(deps.Stderr, crawl.FormatTokens(*out.Tokens))
	}
	return nil
}
