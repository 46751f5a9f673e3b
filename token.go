package pagemd

import "context"

// TokenCounter counts how many model tokens a piece of extracted text uses.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
