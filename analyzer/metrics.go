package analyzer

import (
	"sort"
)

// 默认分析阈值，对应原平台的标准配置
const (
	DefaultQualityThreshold = 4.0
	DefaultCostThreshold    = 600
)

// 新增候选使用固定的筛选线，与调用方传入的象限阈值无关
const (
	additionQualityFloor = 4.0
	additionCostCeiling  = 600
)

// 财务影响中质量提升的对比基准
const qualityBaseline = 4.0

// MetricsEngine 定义象限分析依赖的四个协作函数。
// 实现必须把输入视为只读：分类通过返回带标签的副本完成，不修改原记录。
// QuadrantAnalyzer 通过该接口注入协作方，自身保持纯粹、可独立测试。
type MetricsEngine interface {
	// Classify 为每条记录附加象限标签，返回新的切片。
	Classify(records []ProviderRecord, qualityThreshold, costThreshold float64) []ProviderRecord
	// RemovalCandidates 从已分类记录中筛出移除候选（按终止价值降序）。
	RemovalCandidates(classified []ProviderRecord) []ProviderRecord
	// AdditionCandidates 从已分类记录中筛出新增候选（按质量降序、成本升序）。
	AdditionCandidates(classified []ProviderRecord) []ProviderRecord
	// FinancialImpact 汇总移除与新增候选的财务影响。
	FinancialImpact(removals, additions []ProviderRecord) FinancialImpact
}

// StandardMetrics 是 MetricsEngine 的标准实现，
// 语义与原网络优化平台的指标计算保持一致。
type StandardMetrics struct{}

var _ MetricsEngine = StandardMetrics{}

// QuadrantFor 按质量与成本阈值计算象限标签。
// 质量达标且成本不超标 → Preferred Partners；质量达标但成本超标 →
// Strategic Opportunities；质量不达标但成本不超标 → Performance Focus；
// 两项都不达标 → Optimization Candidates。
func QuadrantFor(quality, cost, qualityThreshold, costThreshold float64) Quadrant {
	switch {
	case quality >= qualityThreshold && cost <= costThreshold:
		return QuadrantPreferredPartners
	case quality >= qualityThreshold:
		return QuadrantStrategicOpportunities
	case cost <= costThreshold:
		return QuadrantPerformanceFocus
	default:
		return QuadrantOptimizationCandidates
	}
}

// Classify 返回附加了象限标签与配色的记录副本。
// ProviderRecord 是值类型，复制切片即复制元素；这里只写入标量派生字段，
// 因此内部的 map/slice 字段与输入共享也不会产生可见的修改。
func (StandardMetrics) Classify(records []ProviderRecord, qualityThreshold, costThreshold float64) []ProviderRecord {
	classified := make([]ProviderRecord, len(records))
	for i, rec := range records {
		q := QuadrantFor(rec.QualityScore, rec.CostPerUtilizer, qualityThreshold, costThreshold)
		rec.Quadrant = q
		rec.QuadrantColor = q.Color()
		classified[i] = rec
	}
	return classified
}

// RemovalCandidates 筛选 Optimization Candidates 象限中
// 网络充足性风险不为 "High" 的提供方，按终止价值降序排列。
func (StandardMetrics) RemovalCandidates(classified []ProviderRecord) []ProviderRecord {
	var candidates []ProviderRecord
	for _, rec := range classified {
		if rec.Quadrant == QuadrantOptimizationCandidates && rec.AdequacyRisk != "High" {
			candidates = append(candidates, rec)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].TerminationValue > candidates[j].TerminationValue // 降序排列
	})
	return candidates
}

// AdditionCandidates 筛选网络外、高质量且低成本的提供方，
// 按质量降序排列，质量相同时按成本升序。
func (StandardMetrics) AdditionCandidates(classified []ProviderRecord) []ProviderRecord {
	var candidates []ProviderRecord
	for _, rec := range classified {
		if rec.NetworkStatus == "Out-of-Network" &&
			rec.QualityScore >= additionQualityFloor &&
			rec.CostPerUtilizer <= additionCostCeiling {
			candidates = append(candidates, rec)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].QualityScore != candidates[j].QualityScore {
			return candidates[i].QualityScore > candidates[j].QualityScore
		}
		return candidates[i].CostPerUtilizer < candidates[j].CostPerUtilizer
	})
	return candidates
}

// FinancialImpact 汇总候选组合的财务影响。
// 净影响采用简化口径：等于移除节省总额。
func (StandardMetrics) FinancialImpact(removals, additions []ProviderRecord) FinancialImpact {
	var impact FinancialImpact

	if len(removals) > 0 {
		var totalSavings, totalQuality float64
		for _, rec := range removals {
			totalSavings += rec.TerminationValue
			totalQuality += rec.QualityScore
		}
		impact.TotalRemovalSavings = totalSavings
		impact.AvgQualityImprovement = qualityBaseline - totalQuality/float64(len(removals))
	}

	for _, rec := range additions {
		impact.PotentialAdditionalVolume += rec.Utilizers
	}

	impact.NetFinancialImpact = impact.TotalRemovalSavings
	return impact
}
