// Package bluemonday renders extracted markdown back to sanitized HTML.
package bluemonday

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fwojciec/pagemd"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Renderer implements pagemd.HTMLRenderer at compile time.
var _ pagemd.HTMLRenderer = (*Renderer)(nil)

var (
	headings [7]*regexp.Regexp
	bold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	item     = regexp.MustCompile(`(?m)^\* (.+)$`)
)

func init() {
	for i := 1; i <= 6; i++ {
		headings[i] = regexp.MustCompile(fmt.Sprintf(`(?m)^%s (.+)$`, strings.Repeat("#", i)))
	}
}

// Renderer converts headings, bold text and "* " list items to HTML.
// Everything else passes through as text and the result is sanitized.
type Renderer struct {
	policy *bluemonday.Policy
}

// NewRenderer creates a Renderer using bluemonday's user generated content
// policy.
func NewRenderer() *Renderer {
	return &Renderer{policy: bluemonday.UGCPolicy()}
}

// RenderHTML converts markdown to sanitized HTML.
func (r *Renderer) RenderHTML(markdown string) string {
	out := markdown
	// Deepest level first so "## x" is not taken for "# x".
	for i := 6; i >= 1; i-- {
		out = headings[i].ReplaceAllString(out, fmt.Sprintf("<h%d>$1</h%d>", i, i))
	}
	out = bold.ReplaceAllString(out, "<b>$1</b>")
	out = item.ReplaceAllString(out, "<li>$1</li>")
	return r.policy.Sanitize(out)
}
