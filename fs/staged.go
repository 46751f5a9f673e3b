package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagemd"
)

// Ensure StagedWriter implements pagemd.DocumentWriter at compile time.
var _ pagemd.DocumentWriter = (*StagedWriter)(nil)

// StagedWriter exports a batch with all-or-nothing semantics.
// Documents are written to baseDir/name.tmp and moved to baseDir/name on
// Commit, replacing any previous export.
type StagedWriter struct {
	baseDir string
	name    string
	writer  *Writer
}

// NewStagedWriter creates a new StagedWriter.
func NewStagedWriter(baseDir, name string) *StagedWriter {
	s := &StagedWriter{baseDir: baseDir, name: name}
	s.writer = NewWriter(s.tempDir())
	return s
}

func (s *StagedWriter) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

// Dir returns the directory the export ends up in after Commit.
func (s *StagedWriter) Dir() string {
	return filepath.Join(s.baseDir, s.name)
}

// CreateDocument writes doc into the staging directory.
func (s *StagedWriter) CreateDocument(ctx context.Context, doc *pagemd.Document) error {
	return s.writer.CreateDocument(ctx, doc)
}

// Commit replaces the final directory with the staged documents.
// Committing an empty batch leaves the previous export untouched.
func (s *StagedWriter) Commit() error {
	if _, err := os.Stat(s.tempDir()); os.IsNotExist(err) {
		return nil
	}
	if err := os.RemoveAll(s.Dir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.Dir())
}

// Abort discards the staged documents.
func (s *StagedWriter) Abort() error {
	return os.RemoveAll(s.tempDir())
}
