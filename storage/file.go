package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

const (
	// TempFilePrefix is the prefix used for in-flight atomic writes.
	TempFilePrefix = "pocket-tmp-"

	recordExt = ".rec"
)

// FileStore keeps one file per key inside a directory. Writes go through a
// temp file and a rename so a reader never sees half a value.
type FileStore struct {
	dir string
	mu  sync.RWMutex
}

// NewFileStore creates dir if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrReadFailure, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %s: %v", ErrReadFailure, key, err)
	}
	return string(data), true, nil
}

func (s *FileStore) Set(ctx context.Context, key, value string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFileAtomic(path, []byte(value), 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailure, key, err)
	}
	return nil
}

func (s *FileStore) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailure, err)
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, recordExt) {
			continue
		}
		key, err := url.PathUnescape(strings.TrimSuffix(name, recordExt))
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *FileStore) pathFor(key string) (string, error) {
	if key == "" || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.dir, url.PathEscape(key)+recordExt), nil
}

// writeFileAtomic writes data next to filename and renames it into place.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}

	return nil
}
