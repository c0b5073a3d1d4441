package services

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// MediaStore writes uploaded files under a single root directory. The
// stored filename is what goes in the database; serving is delegated to
// static file handling (or the hosting layer in production).
type MediaStore struct {
	root   string
	logger *slog.Logger
}

func NewMediaStore(root string, logger *slog.Logger) *MediaStore {
	return &MediaStore{root: root, logger: logger}
}

func (m *MediaStore) Root() string {
	return m.root
}

// SaveUpload stores an uploaded file under the media root with a
// generated name and returns the stored filename.
func (m *MediaStore) SaveUpload(fh *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(m.root, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media root: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	filename := uuid.NewString() + filepath.Ext(fh.Filename)
	dstPath := filepath.Join(m.root, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return filename, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (m *MediaStore) Remove(filename string) error {
	if filename == "" {
		return nil
	}
	err := os.Remove(filepath.Join(m.root, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Relocate moves every entry of a misplaced media directory into the
// store's root, overwriting collisions, and removes the source directory
// once empty. Per-entry failures are logged and skipped so one bad file
// never aborts the batch.
func (m *MediaStore) Relocate(src string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		if os.IsNotExist(err) {
			m.logger.Info("Source media directory does not exist, nothing to do", "src", src)
			return nil
		}
		return fmt.Errorf("failed to read source directory: %w", err)
	}

	if len(entries) == 0 {
		m.logger.Info("Source media directory is empty", "src", src)
		return os.Remove(src)
	}

	if err := os.MkdirAll(m.root, 0o755); err != nil {
		return fmt.Errorf("failed to create media root: %w", err)
	}

	moved := 0
	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(m.root, entry.Name())

		if err := os.RemoveAll(to); err != nil {
			m.logger.Error("Failed to clear destination, skipping", "file", to, "error", err)
			continue
		}
		if err := os.Rename(from, to); err != nil {
			m.logger.Error("Failed to move entry, skipping", "file", from, "error", err)
			continue
		}
		m.logger.Info("Moved media entry", "from", from, "to", to)
		moved++
	}

	m.logger.Info("Media relocation finished", "moved", moved, "total", len(entries))

	// Only remove the source once everything was moved out.
	if remaining, err := os.ReadDir(src); err == nil && len(remaining) == 0 {
		return os.Remove(src)
	}
	return nil
}
