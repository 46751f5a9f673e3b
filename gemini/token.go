package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pagemd"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ pagemd.TokenCounter = (*TokenCounter)(nil)

// TokenCounter estimates how much of a model's context window an extracted
// article occupies. It tokenizes locally and never calls the API.
type TokenCounter struct {
	model string
	tok   *tokenizer.LocalTokenizer
}

// NewTokenCounter loads the local tokenizer for model, or DefaultModel when
// model is empty.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, fmt.Errorf("loading tokenizer for %s: %w", model, err)
	}
	return &TokenCounter{model: model, tok: tok}, nil
}

// Model returns the model whose tokenizer is used.
func (tc *TokenCounter) Model() string { return tc.model }

// CountTokens returns the number of tokens in text. Blank text counts zero.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}, nil)
	if err != nil {
		return 0, pagemd.Errorf(pagemd.EINTERNAL, "counting tokens: %v", err)
	}
	return int(result.TotalTokens), nil
}
