package pagemd

// HTMLRenderer renders a constrained markdown subset (headings, bold and
// "* " list items) back to HTML for display and export.
type HTMLRenderer interface {
	RenderHTML(markdown string) string
}
