package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/notbuiltyet/build-ideas/core/ideas"
)

// EncodeDocument renders doc as JSON indented by two spaces with a trailing
// newline. HTML characters are left unescaped.
func EncodeDocument(doc *ideas.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil")
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDocument writes doc to path, replacing any existing file.
// Parent directories are created as needed (0755); the file is written 0644.
func WriteDocument(_ context.Context, path string, doc *ideas.Document) error {
	log := slog.With("op", "WriteDocument")
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output path cannot be empty")
	}

	data, err := EncodeDocument(doc)
	if err != nil {
		return err
	}

	full := filepath.Clean(path)
	dir := filepath.Dir(full)
	log.Debug("Creating directory", "dir", dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directories for %s: %w", full, err)
	}

	log.Debug("Writing file", "path", full, "bytes", len(data))
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", full, err)
	}
	return nil
}
