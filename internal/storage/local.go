package storage

import (
	"os"
	"path/filepath"
)

// FileStore persists uploaded artifacts (product images, invoices, rendered
// reports). Services depend on the interface; the backing store is a
// collaborator.
type FileStore interface {
	Save(name string, data []byte) (string, error)
}

// LocalStore writes files below a base directory on the local disk.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) *LocalStore {
	if baseDir == "" {
		baseDir = "uploads"
	}
	return &LocalStore{baseDir: baseDir}
}

func (s *LocalStore) Save(name string, data []byte) (string, error) {
	path := filepath.Join(s.baseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
