package pagemd

import "context"

// Analyzer produces a written analysis of an extracted article, typically
// by embedding its content in a prompt for a generative language model.
type Analyzer interface {
	// Analyze returns the analysis as markdown.
	// Returns EINVALID if the article has no content.
	Analyze(ctx context.Context, article *Article) (string, error)
}
