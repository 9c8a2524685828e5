package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<div class="records-col"><h2>Total</h2></div>`))
	}))
	defer srv.Close()

	body, err := NewClient(5*time.Second).FetchURL(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, body, "records-col")
}

func TestFetchURLDecodesCharset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		// "Jöns" in Latin-1
		_, _ = w.Write([]byte{'J', 0xf6, 'n', 's'})
	}))
	defer srv.Close()

	body, err := NewClient(5*time.Second).FetchURL(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Jöns", body)
}

func TestFetchURLNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(5*time.Second).FetchURL(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-200 status code: 404")
}

func TestSaveContentToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, SaveContentToFile(path, "<html></html>"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(got))
}
