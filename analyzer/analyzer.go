package analyzer

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// 候选列表在结果中最多保留的记录数
const maxCandidates = 10

// QuadrantAnalyzer 基于质量-成本象限方法分析提供方网络，
// 产出移除/新增候选、财务影响、象限洞察与分档行动计划。
// 分类与候选识别逻辑通过 MetricsEngine 注入。
type QuadrantAnalyzer struct {
	metrics MetricsEngine
}

// NewQuadrantAnalyzer 创建分析器。metrics 为 nil 时使用 StandardMetrics。
func NewQuadrantAnalyzer(metrics MetricsEngine) *QuadrantAnalyzer {
	if metrics == nil {
		metrics = StandardMetrics{}
	}
	return &QuadrantAnalyzer{metrics: metrics}
}

// Analyze 执行一次完整的象限分析。
// 输入记录不会被修改；空输入产生空的聚合结果（中期行动始终存在），不报错。
func (a *QuadrantAnalyzer) Analyze(providers []ProviderRecord, qualityThreshold, costThreshold float64) (*AnalysisResult, error) {
	log.Printf("Analyzing %d providers (quality threshold: %.1f, cost threshold: %.0f)",
		len(providers), qualityThreshold, costThreshold)

	// --- 1. 附加象限标签 ---
	classified := a.metrics.Classify(providers, qualityThreshold, costThreshold)

	// --- 2. 识别优化机会 ---
	removalCandidates := a.metrics.RemovalCandidates(classified)
	additionCandidates := a.metrics.AdditionCandidates(classified)

	// --- 3. 计算财务影响 ---
	financialImpact := a.metrics.FinancialImpact(removalCandidates, additionCandidates)

	// --- 4. 生成各象限洞察 ---
	insights := buildQuadrantInsights(classified)

	// --- 5. 生成优先行动计划 ---
	plan := buildPriorityPlan(removalCandidates, additionCandidates)

	// --- 6. 组装结果 ---
	summary := make(map[string]int)
	for _, rec := range classified {
		summary[string(rec.Quadrant)]++
	}

	result := &AnalysisResult{
		QuadrantSummary:         summary,
		RemovalCandidates:       headRecords(removalCandidates, maxCandidates),
		AdditionCandidates:      headRecords(additionCandidates, maxCandidates),
		FinancialImpact:         financialImpact,
		QuadrantInsights:        insights,
		PriorityRecommendations: plan,
		ProcessedData:           classified,
		AnalysisMetadata: AnalysisMetadata{
			AnalysisID:                uuid.NewString(),
			GeneratedAt:               time.Now().UTC().Format(time.RFC3339),
			QualityThreshold:          qualityThreshold,
			CostThreshold:             costThreshold,
			TotalProvidersAnalyzed:    len(classified),
			OptimizationOpportunities: len(removalCandidates) + len(additionCandidates),
		},
	}

	log.Printf("Analysis %s complete: %d removal candidates, %d addition candidates",
		result.AnalysisMetadata.AnalysisID, len(removalCandidates), len(additionCandidates))
	return result, nil
}

// buildQuadrantInsights 为出现过的每个象限计算聚合洞察。
func buildQuadrantInsights(classified []ProviderRecord) map[string]QuadrantInsight {
	insights := make(map[string]QuadrantInsight)

	// 按象限分组
	groups := make(map[Quadrant][]ProviderRecord)
	for _, rec := range classified {
		groups[rec.Quadrant] = append(groups[rec.Quadrant], rec)
	}

	for quadrant, group := range groups {
		var totalQuality, totalCost, totalMarket float64
		totalUtilizers := 0
		highRisk := 0
		for _, rec := range group {
			totalQuality += rec.QualityScore
			totalCost += rec.CostPerUtilizer
			totalMarket += rec.MarketPositionPercentile
			totalUtilizers += rec.Utilizers
			if rec.AdequacyRisk == "High" {
				highRisk++
			}
		}
		n := float64(len(group))
		insights[string(quadrant)] = QuadrantInsight{
			Count:             len(group),
			AvgQuality:        totalQuality / n,
			AvgCost:           totalCost / n,
			TotalUtilizers:    totalUtilizers,
			AvgMarketPosition: totalMarket / n,
			HighRiskCount:     highRisk,
			Recommendations:   RecommendationsFor(quadrant),
		}
	}

	return insights
}

// buildPriorityPlan 生成三档时间线的优先行动计划。
// 候选列表已按优先级排序，首条即为最高影响的候选。
func buildPriorityPlan(removalCandidates, additionCandidates []ProviderRecord) PriorityPlan {
	// 立即行动 (30 天)
	immediate := []PriorityAction{}
	if len(removalCandidates) > 0 {
		top := removalCandidates[0]
		immediate = append(immediate, PriorityAction{
			Action: "Begin contract termination process",
			Target: top.Name,
			Rationale: fmt.Sprintf("Poor performance (Quality: %.1f, Cost: $%.0f)",
				top.QualityScore, top.CostPerUtilizer),
			FinancialImpact: top.TerminationValue,
		})
	}

	// 短期行动 (90 天)
	shortTerm := []PriorityAction{}
	if len(additionCandidates) > 0 {
		top := additionCandidates[0]
		shortTerm = append(shortTerm, PriorityAction{
			Action: "Initiate recruitment negotiations",
			Target: top.Name,
			Rationale: fmt.Sprintf("High performance (Quality: %.1f, Cost: $%.0f)",
				top.QualityScore, top.CostPerUtilizer),
			ExpectedBenefit: "Quality improvement and cost efficiency",
		})
	}

	// 中期行动 (6 个月)，无论候选是否存在都会出现
	mediumTerm := []PriorityAction{
		{
			Action:      "Complete network transition",
			Description: "Finalize all provider changes and measure outcomes",
			SuccessMetrics: []string{
				"Cost per utilizer reduction",
				"Quality score improvement",
				"Member satisfaction",
			},
		},
	}

	var totalOpportunity float64
	for _, rec := range removalCandidates {
		totalOpportunity += rec.TerminationValue
	}

	return PriorityPlan{
		Immediate30Days:           immediate,
		ShortTerm90Days:           shortTerm,
		MediumTerm6Months:         mediumTerm,
		TotalFinancialOpportunity: totalOpportunity,
	}
}

// headRecords 返回最多前 n 条记录的副本，保持原有顺序。
func headRecords(records []ProviderRecord, n int) []ProviderRecord {
	if n > len(records) {
		n = len(records)
	}
	head := make([]ProviderRecord, n)
	copy(head, records[:n])
	return head
}
