package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chatcont39-glitch/educheck/internal/models"
)

// ReceiptExtension is the file extension of stored receipt documents.
const ReceiptExtension = ".pdf"

// FileStore persists receipts as files in a single flat directory. The
// directory listing itself is the history index; there is no manifest and no
// database. Concurrent writes under the same name are last-writer-wins.
type FileStore struct {
	dir string
}

// NewFileStore creates the storage directory if needed and returns a store
// over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating storage directory: %v", ErrWriteFailure, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the storage directory path.
func (s *FileStore) Dir() string {
	return s.dir
}

// Persist implements Store.
func (s *FileStore) Persist(ctx context.Context, fileName string, payload []byte) (string, error) {
	if fileName == "" || len(payload) == 0 {
		return "", fmt.Errorf("%w: file name and payload are required", ErrMissingArgument)
	}

	// The namespace is flat by contract; strip any path components.
	path := filepath.Join(s.dir, filepath.Base(fileName))
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	return path, nil
}

// ListHistory implements Store.
func (s *FileStore) ListHistory(ctx context.Context) ([]models.HistoryEntry, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailure, err)
	}

	history := []models.HistoryEntry{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ReceiptExtension) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("%w: reading metadata for %s: %v", ErrReadFailure, entry.Name(), err)
		}
		history = append(history, models.HistoryEntry{Name: entry.Name(), Date: info.ModTime()})
	}
	return history, nil
}
