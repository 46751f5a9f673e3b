// Package gemini analyzes extracted articles with Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pagemd"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for analysis and token counting.
const DefaultModel = "gemini-2.5-flash"

const systemInstruction = `You are an experienced SEO specialist and content editor.
Review the article below and write a structured analysis in markdown with these sections:

# Content Analysis
## 1. Overall Assessment
## 2. Title and Heading Suggestions
## 3. Content Gaps and Enrichment Ideas
## 4. Readability and Tone
## 5. Action Items

Base every observation on the article text. Do not invent facts about the site.`

// Ensure Analyzer implements pagemd.Analyzer at compile time.
var _ pagemd.Analyzer = (*Analyzer)(nil)

// Analyzer implements pagemd.Analyzer using Google Gemini.
type Analyzer struct {
	client *genai.Client
	model  string
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithModel overrides the Gemini model.
func WithModel(model string) AnalyzerOption {
	return func(a *Analyzer) {
		a.model = model
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client *genai.Client, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze asks Gemini for an editorial analysis of the article.
func (a *Analyzer) Analyze(ctx context.Context, article *pagemd.Article) (string, error) {
	if article == nil || strings.TrimSpace(article.Content) == "" {
		return "", pagemd.Errorf(pagemd.EINVALID, "article content required")
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(article)}},
		}},
		BuildConfig(),
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

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	topK := float32(40)
	topP := float32(0.95)

	var safety []*genai.SafetySetting
	for _, category := range []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	} {
		safety = append(safety, &genai.SafetySetting{
			Category:  category,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		})
	}

	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature:     &temp,
		TopK:            &topK,
		TopP:            &topP,
		MaxOutputTokens: 8192,
		SafetySettings:  safety,
	}
}

// BuildUserPrompt embeds the article verbatim in the user prompt.
func BuildUserPrompt(article *pagemd.Article) string {
	var sb strings.Builder
	sb.WriteString("<article>\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", article.Title)
	fmt.Fprintf(&sb, "<source>%s</source>\n", article.URL)
	fmt.Fprintf(&sb, "<content>%s</content>\n", article.Content)
	sb.WriteString("</article>\n\n")
	sb.WriteString("Analyze this article and suggest improvements.")
	return sb.String()
}
