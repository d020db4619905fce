package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/models"
)

// FileLoader reads raw records from a JSON array on disk
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for the given JSON file path
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (l *FileLoader) Name() string {
	return "file:" + l.path
}

func (l *FileLoader) Load(ctx context.Context) ([]models.RawRecord, error) {
	_ = ctx

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}

	var records []models.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode records file: %w", err)
	}
	return records, nil
}
