// Package localdisk stores synthesized audio files on the local filesystem
// and serves them back through the static file route.
package localdisk

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Store writes media files under a base directory and returns URLs rooted at
// a base URL path.
type Store struct {
	dir     string
	baseURL string
	log     *slog.Logger
}

// NewStore creates the base directory if needed.
func NewStore(dir, baseURL string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localdisk: create dir %s: %w", dir, err)
	}
	return &Store{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     logger.With("adapter", "localdisk"),
	}, nil
}

// Save writes the file atomically (temp file + rename) and returns its public
// URL. An existing file with the same name is replaced.
func (s *Store) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	target := filepath.Join(s.dir, name)

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("localdisk: create temp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("localdisk: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("localdisk: close %s: %w", name, err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("localdisk: rename %s: %w", name, err)
	}

	s.log.DebugContext(ctx, "file stored", slog.String("name", name), slog.Int("bytes", len(data)))

	return s.baseURL + "/" + name, nil
}

// Dir returns the base directory, for mounting the static file handler.
func (s *Store) Dir() string { return s.dir }
