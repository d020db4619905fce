package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const sampleRecords = `[
	{
		"productIdentification": {
			"id": "VH-001",
			"title": "Marcopolo Paradiso 1200",
			"price": {"$numberDecimal": "150000.00"}
		},
		"description": "Link do anúncio: https://example.com/ad/1"
	},
	{
		"productIdentification": {"id": "VH-002"}
	}
]`

func TestFileLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte(sampleRecords), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewFileLoader(path)

	records, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ProductIdentification == nil || records[0].ProductIdentification.ID != "VH-001" {
		t.Error("first record id not decoded")
	}
	if records[0].ProductIdentification.Price == nil ||
		records[0].ProductIdentification.Price.NumberDecimal != "150000.00" {
		t.Error("decimal price wrapper not decoded")
	}
}

func TestFileLoaderMissingFile(t *testing.T) {
	l := NewFileLoader(filepath.Join(t.TempDir(), "nope.json"))
	if _, err := l.Load(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileLoaderInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewFileLoader(path)
	if _, err := l.Load(context.Background()); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestFileLoaderName(t *testing.T) {
	l := NewFileLoader("/data/records.json")
	if got := l.Name(); got != "file:/data/records.json" {
		t.Errorf("Name() = %q", got)
	}
}
