package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// UploadStore keeps trade screenshots on local disk under a single
// directory. Filenames are timestamped and sanitized; the journal only ever
// stores the resulting name, never a path.
type UploadStore struct {
	dir string
}

// NewUploadStore creates the upload directory if needed.
func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &UploadStore{dir: dir}, nil
}

// Dir returns the directory screenshots are stored in.
func (s *UploadStore) Dir() string {
	return s.dir
}

// Save writes an uploaded screenshot and returns the stored filename.
// The slot ("before"/"after") goes into the name so the two shots of a trade
// saved in the same second do not collide.
func (s *UploadStore) Save(slot, originalName string, r io.Reader) (string, error) {
	name := time.Now().UTC().Format("20060102150405") + "_" + slot + "_" + sanitizeFilename(originalName)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating screenshot file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("writing screenshot: %w", err)
	}
	return name, nil
}

// Remove deletes a stored screenshot. A missing file is not an error: the
// journal entry may outlive its attachments.
func (s *UploadStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// sanitizeFilename keeps only characters safe for a flat upload directory.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" || out == "." || out == ".." {
		out = "upload"
	}
	return out
}
