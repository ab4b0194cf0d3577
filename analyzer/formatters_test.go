package analyzer_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/carenet/network-optimizer-mcp/analyzer"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		value    float64
		expected string
	}{
		{1500000, "$1.50M"},
		{1000000, "$1.00M"},
		{2500, "$2.5K"},
		{1000, "$1.0K"},
		{999, "$999"},
		{500, "$500"},
		{0, "$0"},
		{-1500000, "$-1.50M"},
	}
	for _, tc := range cases {
		if got := analyzer.FormatMoney(tc.value); got != tc.expected {
			t.Errorf("FormatMoney(%v) = %q, expected %q", tc.value, got, tc.expected)
		}
	}
}

func TestFormatScore(t *testing.T) {
	if got := analyzer.FormatScore(4.25); got != "4.2/5.0" {
		t.Errorf("FormatScore(4.25) = %q", got)
	}
	if got := analyzer.FormatScore(3); got != "3.0/5.0" {
		t.Errorf("FormatScore(3) = %q", got)
	}
}

func sampleAnalysisResult(t *testing.T) *analyzer.AnalysisResult {
	t.Helper()
	providers := []analyzer.ProviderRecord{
		{Name: "Downtown Urgent Care", QualityScore: 3.0, CostPerUtilizer: 900, TerminationValue: 200000, AdequacyRisk: "Low", NetworkStatus: "In-Network"},
		{Name: "Summit Medical Group", NetworkStatus: "Out-of-Network", QualityScore: 4.8, CostPerUtilizer: 400, Utilizers: 1200},
		{Name: "MetroHealth Medical Center", NetworkStatus: "In-Network", QualityScore: 4.6, CostPerUtilizer: 350, Utilizers: 3000},
	}
	result, err := analyzer.NewQuadrantAnalyzer(nil).Analyze(providers, 4.0, 600)
	if err != nil {
		t.Fatalf("Error building sample analysis result: %v", err)
	}
	return result
}

func TestRenderAnalysisResult(t *testing.T) {
	result := sampleAnalysisResult(t)

	t.Run("TextFormat", func(t *testing.T) {
		output, err := analyzer.RenderAnalysisResult(result, "text")
		if err != nil {
			t.Fatalf("Error rendering text: %v", err)
		}
		for _, expected := range []string{
			"Provider Quadrant Analysis (3 providers)",
			"Thresholds: Quality >= 4.0, Cost <= $600",
			"Quadrant Summary:",
			"Removal Candidates",
			"Downtown Urgent Care",
			"Financial Impact:",
			"Total Removal Savings:",
			"Quadrant Insights:",
			"Priority Recommendations:",
			"Immediate (0-30 days):",
			"Total Financial Opportunity: $200.0K",
		} {
			if !strings.Contains(output, expected) {
				t.Errorf("Text output does not contain %q", expected)
			}
		}
		if strings.HasPrefix(output, "```") {
			t.Error("Text output must not carry a markdown fence")
		}
	})

	t.Run("MarkdownFormat", func(t *testing.T) {
		output, err := analyzer.RenderAnalysisResult(result, "markdown")
		if err != nil {
			t.Fatalf("Error rendering markdown: %v", err)
		}
		if !strings.HasPrefix(output, "```text\n") || !strings.HasSuffix(output, "```\n") {
			t.Error("Markdown output must be wrapped in a text code block")
		}
		if !strings.Contains(output, "Provider Quadrant Analysis (3 providers)") {
			t.Error("Markdown output is missing the analysis heading")
		}
	})

	t.Run("JSONFormat", func(t *testing.T) {
		output, err := analyzer.RenderAnalysisResult(result, "json")
		if err != nil {
			t.Fatalf("Error rendering JSON: %v", err)
		}
		var decoded map[string]interface{}
		if err := json.Unmarshal([]byte(output), &decoded); err != nil {
			t.Fatalf("JSON output is not valid JSON: %v\nOutput: %s", err, output)
		}
		for _, key := range []string{
			"quadrant_summary", "removal_candidates", "addition_candidates",
			"financial_impact", "quadrant_insights", "priority_recommendations",
			"processed_data", "analysis_metadata",
		} {
			if _, ok := decoded[key]; !ok {
				t.Errorf("JSON output is missing key %q", key)
			}
		}
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		_, err := analyzer.RenderAnalysisResult(result, "xml")
		if err == nil {
			t.Fatal("Expected an error for an unsupported format")
		}
		if !strings.Contains(err.Error(), "unsupported output format") {
			t.Errorf("Unexpected error message: %v", err)
		}
	})
}

func TestRenderNetworkMetrics(t *testing.T) {
	metrics := analyzer.NetworkMetrics{
		TotalProviders:      3,
		InNetworkProviders:  2,
		OutNetworkProviders: 1,
		TotalUtilizers:      3000,
		AvgCostPerUtilizer:  600,
		AvgQualityScore:     3.5,
		NetworkSavings:      300000,
		HighRiskRemovals:    1,
		TotalOpportunity:    350000,
	}

	t.Run("TextFormat", func(t *testing.T) {
		output, err := analyzer.RenderNetworkMetrics(metrics, "text")
		if err != nil {
			t.Fatalf("Error rendering text: %v", err)
		}
		for _, expected := range []string{
			"Network Performance Metrics",
			"Total Providers:        3 (In-Network: 2, Out-of-Network: 1)",
			"Avg Quality Score:      3.5/5.0",
			"Network Savings:        $300.0K",
		} {
			if !strings.Contains(output, expected) {
				t.Errorf("Text output does not contain %q", expected)
			}
		}
	})

	t.Run("JSONFormat", func(t *testing.T) {
		output, err := analyzer.RenderNetworkMetrics(metrics, "json")
		if err != nil {
			t.Fatalf("Error rendering JSON: %v", err)
		}
		var decoded analyzer.NetworkMetrics
		if err := json.Unmarshal([]byte(output), &decoded); err != nil {
			t.Fatalf("JSON output is not valid JSON: %v", err)
		}
		if decoded != metrics {
			t.Errorf("Round-tripped metrics %+v do not match input %+v", decoded, metrics)
		}
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		if _, err := analyzer.RenderNetworkMetrics(metrics, "csv"); err == nil {
			t.Fatal("Expected an error for an unsupported format")
		}
	})
}

func TestRenderProcessResult(t *testing.T) {
	result := analyzer.ProcessProviders(testRecords(), analyzer.Filters{}, analyzer.DefaultThresholds())

	t.Run("TextFormat", func(t *testing.T) {
		output, err := analyzer.RenderProcessResult(result, "text")
		if err != nil {
			t.Fatalf("Error rendering text: %v", err)
		}
		for _, expected := range []string{
			"Provider Data Summary (3 providers)",
			"In-Network: 2, Out-of-Network: 1",
			"Total Opportunity: $1.00M",
			"Alpha",
			"High Volume",
		} {
			if !strings.Contains(output, expected) {
				t.Errorf("Text output does not contain %q", expected)
			}
		}
	})

	t.Run("MarkdownFormat", func(t *testing.T) {
		output, err := analyzer.RenderProcessResult(result, "markdown")
		if err != nil {
			t.Fatalf("Error rendering markdown: %v", err)
		}
		if !strings.HasPrefix(output, "```text\n") || !strings.HasSuffix(output, "```\n") {
			t.Error("Markdown output must be wrapped in a text code block")
		}
	})

	t.Run("JSONFormat", func(t *testing.T) {
		output, err := analyzer.RenderProcessResult(result, "json")
		if err != nil {
			t.Fatalf("Error rendering JSON: %v", err)
		}
		var decoded map[string]interface{}
		if err := json.Unmarshal([]byte(output), &decoded); err != nil {
			t.Fatalf("JSON output is not valid JSON: %v", err)
		}
		if _, ok := decoded["data"]; !ok {
			t.Error("JSON output is missing the data key")
		}
		if _, ok := decoded["summary"]; !ok {
			t.Error("JSON output is missing the summary key")
		}
	})
}
