package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/carenet/network-optimizer-mcp/analyzer"
)

func TestDashboardRouter(t *testing.T) {
	initAnalysisStore(time.Minute, time.Minute)
	router := newDashboardRouter()

	result, err := analyzer.NewQuadrantAnalyzer(nil).Analyze([]analyzer.ProviderRecord{
		{Name: "Alpha Clinic", QualityScore: 4.5, CostPerUtilizer: 500, NetworkStatus: "In-Network"},
	}, 4.0, 600)
	if err != nil {
		t.Fatalf("Error building analysis result: %v", err)
	}
	storeAnalysis(result)
	analysisID := result.AnalysisMetadata.AnalysisID

	t.Run("Healthz", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		if recorder.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", recorder.Code)
		}
	})

	t.Run("ListAnalyses", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/analyses", nil))
		if recorder.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", recorder.Code)
		}
		var body struct {
			Analyses []analyzer.AnalysisMetadata `json:"analyses"`
		}
		if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
			t.Fatalf("Error decoding response: %v", err)
		}
		if len(body.Analyses) != 1 || body.Analyses[0].AnalysisID != analysisID {
			t.Errorf("Unexpected analyses list: %+v", body.Analyses)
		}
	})

	t.Run("GetAnalysisByID", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/analyses/"+analysisID, nil))
		if recorder.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", recorder.Code)
		}
		var fetched analyzer.AnalysisResult
		if err := json.Unmarshal(recorder.Body.Bytes(), &fetched); err != nil {
			t.Fatalf("Error decoding response: %v", err)
		}
		if fetched.AnalysisMetadata.AnalysisID != analysisID {
			t.Errorf("Fetched analysis ID %q does not match %q", fetched.AnalysisMetadata.AnalysisID, analysisID)
		}
		if fetched.AnalysisMetadata.TotalProvidersAnalyzed != 1 {
			t.Errorf("Unexpected provider count: %d", fetched.AnalysisMetadata.TotalProvidersAnalyzed)
		}
	})

	t.Run("GetAnalysisNotFound", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/analyses/no-such-id", nil))
		if recorder.Code != http.StatusNotFound {
			t.Fatalf("Expected 404, got %d", recorder.Code)
		}
	})

	t.Run("QuadrantReference", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/quadrants", nil))
		if recorder.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", recorder.Code)
		}
		var quadrants map[string]struct {
			Color           string   `json:"color"`
			Recommendations []string `json:"recommendations"`
		}
		if err := json.Unmarshal(recorder.Body.Bytes(), &quadrants); err != nil {
			t.Fatalf("Error decoding response: %v", err)
		}
		if len(quadrants) != 4 {
			t.Fatalf("Expected 4 quadrants, got %d", len(quadrants))
		}
		preferred, ok := quadrants["Preferred Partners"]
		if !ok {
			t.Fatal("Missing Preferred Partners quadrant")
		}
		if preferred.Color != "#4CAF50" {
			t.Errorf("Unexpected color %q", preferred.Color)
		}
		if len(preferred.Recommendations) != 4 {
			t.Errorf("Expected 4 recommendations, got %d", len(preferred.Recommendations))
		}
	})
}
