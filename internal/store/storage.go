package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage keys match the documents the mobile build persisted.
const (
	CartStorageKey = "cart-storage"
	AuthStorageKey = "auth-storage"
)

// Storage persists one JSON document per key. Load reports whether a
// document existed for the key.
type Storage interface {
	Load(key string, v any) (bool, error)
	Save(key string, v any) error
	Delete(key string) error
}

// FileStorage keeps each document as <dir>/<key>.json.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStorage) Load(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Save writes via a temp file and rename so a crash mid-write cannot
// truncate the previous document.
func (s *FileStorage) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

func (s *FileStorage) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
