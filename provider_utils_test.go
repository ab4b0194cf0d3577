package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleProvidersJSON = `[
  {
    "name": "Alpha Clinic",
    "network_status": "In-Network",
    "quality_score": 4.2,
    "cost_per_utilizer": 550,
    "utilizers": 1200
  },
  {
    "name": "Beta Health",
    "network_status": "Out-of-Network",
    "quality_score": 3.1,
    "cost_per_utilizer": 800,
    "utilizers": 600
  }
]`

func writeTempProviders(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "providers.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Error writing temp providers file: %v", err)
	}
	return path
}

func TestGetProvidersAsFile(t *testing.T) {
	t.Run("PlainLocalPath", func(t *testing.T) {
		path := writeTempProviders(t, sampleProvidersJSON)
		resolved, cleanup, err := getProvidersAsFile(path)
		if err != nil {
			t.Fatalf("Error resolving plain path: %v", err)
		}
		defer cleanup()
		if resolved != path {
			t.Errorf("Resolved path %q does not match input %q", resolved, path)
		}
	})

	t.Run("RelativePathBecomesAbsolute", func(t *testing.T) {
		resolved, cleanup, err := getProvidersAsFile("some/relative/providers.json")
		if err != nil {
			t.Fatalf("Error resolving relative path: %v", err)
		}
		defer cleanup()
		if !filepath.IsAbs(resolved) {
			t.Errorf("Expected an absolute path, got %q", resolved)
		}
	})

	t.Run("FileURI", func(t *testing.T) {
		path := writeTempProviders(t, sampleProvidersJSON)
		resolved, cleanup, err := getProvidersAsFile("file://" + path)
		if err != nil {
			t.Fatalf("Error resolving file URI: %v", err)
		}
		defer cleanup()
		if resolved != path {
			t.Errorf("Resolved path %q does not match %q", resolved, path)
		}
	})

	t.Run("HTTPDownload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(sampleProvidersJSON))
		}))
		defer server.Close()

		resolved, cleanup, err := getProvidersAsFile(server.URL)
		if err != nil {
			t.Fatalf("Error downloading providers: %v", err)
		}

		content, err := os.ReadFile(resolved)
		if err != nil {
			t.Fatalf("Error reading downloaded file: %v", err)
		}
		if string(content) != sampleProvidersJSON {
			t.Error("Downloaded content does not match the served payload")
		}

		// Cleanup removes the temporary file
		cleanup()
		if _, err := os.Stat(resolved); !os.IsNotExist(err) {
			t.Errorf("Expected temporary file %q to be removed, stat err: %v", resolved, err)
		}
	})

	t.Run("HTTPErrorStatus", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		_, _, err := getProvidersAsFile(server.URL)
		if err == nil {
			t.Fatal("Expected an error for a 404 response")
		}
		if !strings.Contains(err.Error(), "status code 404") {
			t.Errorf("Unexpected error message: %v", err)
		}
	})

	t.Run("UnsupportedScheme", func(t *testing.T) {
		_, _, err := getProvidersAsFile("ftp://example.com/providers.json")
		if err == nil {
			t.Fatal("Expected an error for an unsupported scheme")
		}
		if !strings.Contains(err.Error(), "unsupported URI scheme 'ftp'") {
			t.Errorf("Unexpected error message: %v", err)
		}
	})
}

func TestLoadProviderRecords(t *testing.T) {
	t.Run("ValidFile", func(t *testing.T) {
		path := writeTempProviders(t, sampleProvidersJSON)
		records, err := loadProviderRecords(path)
		if err != nil {
			t.Fatalf("Error loading providers: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("Expected 2 records, got %d", len(records))
		}
		if records[0].Name != "Alpha Clinic" || records[0].QualityScore != 4.2 {
			t.Errorf("First record does not match input: %+v", records[0])
		}
		if records[1].NetworkStatus != "Out-of-Network" {
			t.Errorf("Second record does not match input: %+v", records[1])
		}
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		path := writeTempProviders(t, `{"not": "an array"}`)
		if _, err := loadProviderRecords(path); err == nil {
			t.Fatal("Expected a decode error for non-array JSON")
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := loadProviderRecords(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Fatal("Expected an error for a missing file")
		}
	})
}
