package artifacts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore writes artifacts into a directory on disk
type LocalStore struct {
	dir string
}

// NewLocalStore creates the directory if needed
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifacts dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(ctx context.Context, filename string, data []byte, contentType string) error {
	_ = ctx
	_ = contentType

	path := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

var _ Store = (*LocalStore)(nil)
