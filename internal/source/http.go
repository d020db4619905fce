package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/models"
)

// HTTPLoader fetches raw records from a remote JSON endpoint
type HTTPLoader struct {
	url    string
	client *http.Client
}

// NewHTTPLoader creates a loader for the given endpoint. client may be nil.
func NewHTTPLoader(url string, client *http.Client) *HTTPLoader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPLoader{url: url, client: client}
}

func (l *HTTPLoader) Name() string {
	return "http:" + l.url
}

func (l *HTTPLoader) Load(ctx context.Context) ([]models.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch records: unexpected status %d", resp.StatusCode)
	}

	var records []models.RawRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records response: %w", err)
	}
	return records, nil
}
