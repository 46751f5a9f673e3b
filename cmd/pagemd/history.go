package main

import (
	"fmt"

	"github.com/fwojciec/pagemd"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Delete != "" {
		if err := deps.Documents.DeleteDocument(deps.Ctx, c.Delete); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Deleted %s\n", c.Delete)
		return nil
	}

	if c.Show != "" {
		doc, err := deps.Documents.FindDocumentByID(deps.Ctx, c.Show)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, pagemd.FormatArticle(doc.Article()))
		return nil
	}

	filter := pagemd.DocumentFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}
	if c.Engine != "" {
		filter.Engine = &c.Engine
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved extractions. Use 'pagemd extract --save' to keep one.")
		return nil
	}

	if c.Full {
		fmt.Fprintln(deps.Stdout, pagemd.FormatDocuments(docs))
		return nil
	}

	for _, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.SourceURL
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %-11s  %s\n     %s\n",
			doc.ID, doc.FetchedAt.Format("2006-01-02 15:04"), doc.Engine, title, doc.SourceURL)
	}
	return nil
}
