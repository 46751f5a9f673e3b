// Package pagemd extracts readable article content from web pages and
// converts it to markdown suitable for display, export, or prompting a
// language model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package pagemd

// Extraction defaults shared by every extraction engine.
const (
	// DefaultTitle is used when no title candidate yields any text.
	DefaultTitle = "Title not found"

	// DefaultMinContentLength is the smallest markdown result, in runes,
	// accepted as an article. Shorter output means the page structure is
	// not supported by the extraction heuristics.
	DefaultMinContentLength = 50

	// DefaultMinRegionLength is the text length, in runes, a candidate
	// content region must exceed to be selected as the main element.
	DefaultMinRegionLength = 100
)
