package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pagemd"
	"google.golang.org/genai"
)

const askInstruction = `You are an SEO assistant answering questions about one web article.
Answer only from the article provided. Do not talk about other pages.
If the answer is not in the article, say so. Keep suggestions practical.`

// Ensure Asker implements pagemd.Asker at compile time.
var _ pagemd.Asker = (*Asker)(nil)

// Asker implements pagemd.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
	model  string
}

// NewAsker creates a new Asker. An empty model selects DefaultModel.
func NewAsker(client *genai.Client, model string) *Asker {
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: client, model: model}
}

// Ask answers a question about the article.
func (a *Asker) Ask(ctx context.Context, article *pagemd.Article, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", pagemd.Errorf(pagemd.EINVALID, "question required")
	}
	if article == nil || strings.TrimSpace(article.Content) == "" {
		return "", pagemd.Errorf(pagemd.EINVALID, "article content required")
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildQuestionPrompt(article, question)}},
		}},
		BuildAskConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", pagemd.Errorf(pagemd.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", pagemd.Errorf(pagemd.EINTERNAL, "gemini returned no content")
	}
	return text, nil
}

// BuildAskConfig returns the GenerateContentConfig for questions. Answers
// are shorter than analyses.
func BuildAskConfig() *genai.GenerateContentConfig {
	config := BuildConfig()
	config.SystemInstruction = &genai.Content{
		Parts: []*genai.Part{{Text: askInstruction}},
	}
	config.MaxOutputTokens = 2048
	return config
}

// BuildQuestionPrompt embeds the article verbatim, followed by the question.
func BuildQuestionPrompt(article *pagemd.Article, question string) string {
	var sb strings.Builder
	sb.WriteString("<article>\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", article.Title)
	fmt.Fprintf(&sb, "<source>%s</source>\n", article.URL)
	fmt.Fprintf(&sb, "<content>%s</content>\n", article.Content)
	sb.WriteString("</article>\n\n")
	fmt.Fprintf(&sb, "Question: %s", strings.TrimSpace(question))
	return sb.String()
}
