package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPLoader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleRecords))
	}))
	defer srv.Close()

	l := NewHTTPLoader(srv.URL, srv.Client())

	records, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[1].ProductIdentification == nil || records[1].ProductIdentification.ID != "VH-002" {
		t.Error("second record id not decoded")
	}
}

func TestHTTPLoaderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	l := NewHTTPLoader(srv.URL, srv.Client())
	if _, err := l.Load(context.Background()); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestHTTPLoaderContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := NewHTTPLoader(srv.URL, srv.Client())
	if _, err := l.Load(ctx); err == nil {
		t.Error("expected error for cancelled context")
	}
}
