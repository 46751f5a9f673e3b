package pagemd

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML document or fragment into Markdown.
	// Unlike Extractor it resolves no title and applies no minimum length.
	Convert(html string) (string, error)
}
