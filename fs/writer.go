// Package fs exports extracted documents as markdown files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagemd"
)

// URLToPath converts an article URL to a relative file path rooted at the
// URL's host.
// Example: https://example.com/blog/post → example.com/blog/post.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", pagemd.Errorf(pagemd.EINVALID, "URL has no host: %q", rawURL)
	}

	host := strings.ReplaceAll(u.Host, ":", "_")
	p := u.Path

	if p == "" || p == "/" {
		return host + "/index.md", nil
	}

	trailing := strings.HasSuffix(p, "/")
	// Clean against a rooted path so ".." cannot leave the host directory.
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "" {
		return host + "/index.md", nil
	}
	if trailing {
		return host + "/" + p + "/index.md", nil
	}
	return host + "/" + strings.TrimSuffix(p, ".html") + ".md", nil
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *pagemd.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(doc.Title)
	if doc.Engine != "" {
		b.WriteString("\nengine: ")
		b.WriteString(doc.Engine)
	}
	if doc.ContentHash != "" {
		b.WriteString("\nhash: ")
		b.WriteString(doc.ContentHash)
	}
	b.WriteString("\nfetched: ")
	b.WriteString(doc.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Content)
	return b.String()
}

// Ensure Writer implements pagemd.DocumentWriter at compile time.
var _ pagemd.DocumentWriter = (*Writer)(nil)

// Writer writes documents as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateDocument writes a document to disk as a markdown file.
func (w *Writer) CreateDocument(ctx context.Context, doc *pagemd.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(doc.SourceURL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatDocument(doc)), 0644)
}
