package pagemd

import "strings"

// FormatArticle formats an article for display or as model context.
// The title becomes a level-one heading followed by the source URL.
func FormatArticle(a *Article) string {
	if a == nil {
		return ""
	}

	title := a.Title
	if title == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	b.WriteString("# " + title + "\n")
	if a.URL != "" {
		b.WriteString("\nSource: " + a.URL + "\n")
	}
	if a.Content != "" {
		b.WriteString("\n" + a.Content)
	}
	return b.String()
}

// FormatDocuments formats stored documents one after another.
// Uses title if available, falls back to source URL.
// Documents are separated by blank lines.
func FormatDocuments(docs []*Document) string {
	if len(docs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		header := doc.Title
		if header == "" {
			header = doc.SourceURL
		}
		parts = append(parts, "## Document: "+header+"\n"+doc.Content)
	}

	return strings.Join(parts, "\n\n")
}
