package pagemd

import "context"

// Asker answers free-form questions about a single extracted article.
type Asker interface {
	// Ask answers question using only the article as context.
	// Returns EINVALID if the question is blank or the article has no content.
	Ask(ctx context.Context, article *Article, question string) (string, error)
}
