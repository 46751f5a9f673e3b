package crawl

import (
	"fmt"
	"strings"
)

// TruncateURL shortens u to at most n bytes for progress lines. The tail of
// a URL identifies an article better than its scheme and host, so the head
// is replaced by "...".
func TruncateURL(u string, n int) string {
	switch {
	case n <= 0:
		return ""
	case len(u) <= n:
		return u
	case n < 4:
		return u[:n]
	}
	return "..." + u[len(u)-n+3:]
}

// FormatBytes renders a byte count with a binary unit.
func FormatBytes(n int) string {
	const (
		kib = 1 << 10
		mib = 1 << 20
	)
	if n >= mib {
		return fmt.Sprintf("%.1f MB", float64(n)/mib)
	}
	if n >= kib {
		return fmt.Sprintf("%.1f KB", float64(n)/kib)
	}
	return fmt.Sprintf("%d B", n)
}

// FormatTokens renders an approximate token count, rounding thousands.
func FormatTokens(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("~%dk tokens", (n+500)/1000)
	}
	return fmt.Sprintf("~%d tokens", n)
}

// Summary renders the result as a single line, e.g.
// "Saved 3 of 4 articles (12.0 KB, ~3k tokens), 1 failed".
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Saved %d of %d articles (%s", r.Saved, r.Total, FormatBytes(r.Bytes))
	if r.Tokens > 0 {
		b.WriteString(", " + FormatTokens(r.Tokens))
	}
	b.WriteString(")")
	if r.Failed > 0 {
		fmt.Fprintf(&b, ", %d failed", r.Failed)
	}
	if r.Skipped > 0 {
		fmt.Fprintf(&b, ", %d duplicates skipped", r.Skipped)
	}
	return b.String()
}
