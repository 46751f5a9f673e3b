package pagemd

// Article is the result of extracting a web page.
type Article struct {
	// Title comes from the first title candidate with text.
	// Never empty; falls back to DefaultTitle.
	Title string `json:"title"`

	// Content is the main content of the page as markdown.
	Content string `json:"content"`

	// URL echoes the source URL given to the extractor, unmodified.
	URL string `json:"url"`
}

// Extractor extracts the main content of an HTML page as markdown.
type Extractor interface {
	// Extract processes raw HTML fetched from url and returns the article.
	// Returns EEMPTY if html or url is blank and EINSUFFICIENT if the
	// extracted markdown is too short to be an article.
	Extract(html string, url string) (*Article, error)
}
