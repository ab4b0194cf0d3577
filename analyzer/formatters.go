package analyzer

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
)

// FormatMoney 将金额转换为人类可读的字符串 (K, M)。
// 注意：已导出 (首字母大写)。
func FormatMoney(v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1000000:
		return fmt.Sprintf("$%.2fM", v/1000000)
	case abs >= 1000:
		return fmt.Sprintf("$%.1fK", v/1000)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

// FormatScore 按 5 分制格式化质量评分。
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f/5.0", score)
}

// summaryQuadrants 返回汇总中的象限名称：已知象限按固定顺序在前，
// 未知标签按字典序附后，保证输出稳定。
func summaryQuadrants(summary map[string]int) []string {
	var names []string
	for _, q := range AllQuadrants() {
		if _, ok := summary[string(q)]; ok {
			names = append(names, string(q))
		}
	}
	var unknown []string
	for name := range summary {
		if !Quadrant(name).Valid() {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return append(names, unknown...)
}

// RenderAnalysisResult 将分析结果渲染为指定格式。
// 支持 text, markdown, json；markdown 复用文本布局并包裹在代码块中。
func RenderAnalysisResult(result *AnalysisResult, format string) (string, error) {
	switch format {
	case "text", "markdown": // 目前两者使用相似格式
		var b strings.Builder
		if format == "markdown" {
			b.WriteString("```text\n") // 使用文本块以获得更好的对齐效果
		}
		meta := result.AnalysisMetadata
		b.WriteString(fmt.Sprintf("Provider Quadrant Analysis (%d providers)\n", meta.TotalProvidersAnalyzed))
		b.WriteString(fmt.Sprintf("Thresholds: Quality >= %.1f, Cost <= $%.0f\n", meta.QualityThreshold, meta.CostThreshold))
		b.WriteString(fmt.Sprintf("Analysis ID: %s (%s)\n", meta.AnalysisID, meta.GeneratedAt))
		b.WriteString("--------------------------------------------------\n")

		b.WriteString("Quadrant Summary:\n")
		for _, name := range summaryQuadrants(result.QuadrantSummary) {
			b.WriteString(fmt.Sprintf("  %-28s %d\n", name, result.QuadrantSummary[name]))
		}

		b.WriteString("--------------------------------------------------\n")
		b.WriteString(fmt.Sprintf("Removal Candidates (Top %d):\n", len(result.RemovalCandidates)))
		for _, rec := range result.RemovalCandidates {
			b.WriteString(fmt.Sprintf("  %-35s Quality %s  Cost $%.0f  Value %s\n",
				rec.Name, FormatScore(rec.QualityScore), rec.CostPerUtilizer, FormatMoney(rec.TerminationValue)))
		}
		b.WriteString(fmt.Sprintf("Addition Candidates (Top %d):\n", len(result.AdditionCandidates)))
		for _, rec := range result.AdditionCandidates {
			b.WriteString(fmt.Sprintf("  %-35s Quality %s  Cost $%.0f\n",
				rec.Name, FormatScore(rec.QualityScore), rec.CostPerUtilizer))
		}

		b.WriteString("--------------------------------------------------\n")
		b.WriteString("Financial Impact:\n")
		b.WriteString(fmt.Sprintf("  Total Removal Savings:       %s\n", FormatMoney(result.FinancialImpact.TotalRemovalSavings)))
		b.WriteString(fmt.Sprintf("  Avg Quality Improvement:     %.2f\n", result.FinancialImpact.AvgQualityImprovement))
		b.WriteString(fmt.Sprintf("  Potential Additional Volume: %d\n", result.FinancialImpact.PotentialAdditionalVolume))
		b.WriteString(fmt.Sprintf("  Net Financial Impact:        %s\n", FormatMoney(result.FinancialImpact.NetFinancialImpact)))

		b.WriteString("--------------------------------------------------\n")
		b.WriteString("Quadrant Insights:\n")
		for _, name := range summaryQuadrants(result.QuadrantSummary) {
			insight, ok := result.QuadrantInsights[name]
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("\n%s (%d providers):\n", name, insight.Count))
			b.WriteString(fmt.Sprintf("  Avg Quality: %s, Avg Cost: $%.0f, Utilizers: %d, High Risk: %d\n",
				FormatScore(insight.AvgQuality), insight.AvgCost, insight.TotalUtilizers, insight.HighRiskCount))
			for _, rec := range insight.Recommendations {
				b.WriteString(fmt.Sprintf("  - %s\n", rec))
			}
		}

		b.WriteString("--------------------------------------------------\n")
		b.WriteString("Priority Recommendations:\n")
		writeActions(&b, "Immediate (0-30 days)", result.PriorityRecommendations.Immediate30Days)
		writeActions(&b, "Short-term (30-90 days)", result.PriorityRecommendations.ShortTerm90Days)
		writeActions(&b, "Medium-term (6 months)", result.PriorityRecommendations.MediumTerm6Months)
		b.WriteString(fmt.Sprintf("Total Financial Opportunity: %s\n",
			FormatMoney(result.PriorityRecommendations.TotalFinancialOpportunity)))

		if format == "markdown" {
			b.WriteString("```\n")
		}
		return b.String(), nil

	case "json":
		jsonBytes, err := json.MarshalIndent(result, "", "  ") // 使用缩进美化输出
		if err != nil {
			log.Printf("Error marshaling analysis result to JSON: %v", err)
			// 返回一个简单的 JSON 错误
			errorResult := ErrorResult{Error: fmt.Sprintf("Failed to marshal result to JSON: %v", err)}
			errJsonBytes, _ := json.Marshal(errorResult)
			return string(errJsonBytes), nil // 返回错误信息，但不标记为分析错误
		}
		return string(jsonBytes), nil

	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// writeActions 输出单个时间档位的行动列表。
func writeActions(b *strings.Builder, heading string, actions []PriorityAction) {
	b.WriteString(fmt.Sprintf("\n%s:\n", heading))
	if len(actions) == 0 {
		b.WriteString("  (no action)\n")
		return
	}
	for _, action := range actions {
		b.WriteString(fmt.Sprintf("  * %s", action.Action))
		if action.Target != "" {
			b.WriteString(fmt.Sprintf(" — %s", action.Target))
		}
		b.WriteString("\n")
		if action.Rationale != "" {
			b.WriteString(fmt.Sprintf("    Rationale: %s\n", action.Rationale))
		}
		if action.Description != "" {
			b.WriteString(fmt.Sprintf("    %s\n", action.Description))
		}
		if action.FinancialImpact != 0 {
			b.WriteString(fmt.Sprintf("    Financial Impact: %s\n", FormatMoney(action.FinancialImpact)))
		}
		if action.ExpectedBenefit != "" {
			b.WriteString(fmt.Sprintf("    Expected Benefit: %s\n", action.ExpectedBenefit))
		}
		for _, metric := range action.SuccessMetrics {
			b.WriteString(fmt.Sprintf("    Metric: %s\n", metric))
		}
	}
}

// RenderNetworkMetrics 将网络指标渲染为指定格式。
func RenderNetworkMetrics(metrics NetworkMetrics, format string) (string, error) {
	switch format {
	case "text", "markdown":
		var b strings.Builder
		if format == "markdown" {
			b.WriteString("```text\n")
		}
		b.WriteString("Network Performance Metrics\n")
		b.WriteString("--------------------------------------------------\n")
		b.WriteString(fmt.Sprintf("Total Providers:        %d (In-Network: %d, Out-of-Network: %d)\n",
			metrics.TotalProviders, metrics.InNetworkProviders, metrics.OutNetworkProviders))
		b.WriteString(fmt.Sprintf("Total Utilizers:        %d\n", metrics.TotalUtilizers))
		b.WriteString(fmt.Sprintf("Avg Cost per Utilizer:  $%.0f\n", metrics.AvgCostPerUtilizer))
		b.WriteString(fmt.Sprintf("Avg Quality Score:      %s\n", FormatScore(metrics.AvgQualityScore)))
		b.WriteString(fmt.Sprintf("Network Savings:        %s\n", FormatMoney(metrics.NetworkSavings)))
		b.WriteString(fmt.Sprintf("High Risk Removals:     %d\n", metrics.HighRiskRemovals))
		b.WriteString(fmt.Sprintf("Total Opportunity:      %s\n", FormatMoney(metrics.TotalOpportunity)))
		if format == "markdown" {
			b.WriteString("```\n")
		}
		return b.String(), nil

	case "json":
		jsonBytes, err := json.MarshalIndent(metrics, "", "  ")
		if err != nil {
			log.Printf("Error marshaling network metrics to JSON: %v", err)
			errorResult := ErrorResult{Error: fmt.Sprintf("Failed to marshal result to JSON: %v", err)}
			errJsonBytes, _ := json.Marshal(errorResult)
			return string(errJsonBytes), nil
		}
		return string(jsonBytes), nil

	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// RenderProcessResult 将数据处理结果渲染为指定格式。
// 文本格式只输出汇总与记录清单；完整记录请使用 json 格式。
func RenderProcessResult(result ProcessResult, format string) (string, error) {
	switch format {
	case "text", "markdown":
		var b strings.Builder
		if format == "markdown" {
			b.WriteString("```text\n")
		}
		b.WriteString(fmt.Sprintf("Provider Data Summary (%d providers)\n", result.Summary.TotalProviders))
		b.WriteString("--------------------------------------------------\n")
		b.WriteString(fmt.Sprintf("In-Network: %d, Out-of-Network: %d\n", result.Summary.InNetwork, result.Summary.OutNetwork))
		b.WriteString(fmt.Sprintf("Avg Quality: %s, Avg Cost: $%.0f\n",
			FormatScore(result.Summary.AvgQuality), result.Summary.AvgCost))
		b.WriteString(fmt.Sprintf("Total Opportunity: %s\n", FormatMoney(result.Summary.TotalOpportunity)))
		b.WriteString("--------------------------------------------------\n")
		for _, rec := range result.Data {
			b.WriteString(fmt.Sprintf("  %-35s %-14s %-15s %-15s %s\n",
				rec.Name, rec.NetworkStatus, rec.VolumeCategory, rec.QualityCategory, rec.CostCategory))
		}
		if format == "markdown" {
			b.WriteString("```\n")
		}
		return b.String(), nil

	case "json":
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Printf("Error marshaling process result to JSON: %v", err)
			errorResult := ErrorResult{Error: fmt.Sprintf("Failed to marshal result to JSON: %v", err)}
			errJsonBytes, _ := json.Marshal(errorResult)
			return string(errJsonBytes), nil
		}
		return string(jsonBytes), nil

	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
