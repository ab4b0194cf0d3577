package analyzer

// Quadrant 代表质量-成本象限标签。
// 象限名称是一个封闭集合：分类器只会产出下面四个常量之一。
type Quadrant string

const (
	// QuadrantPreferredPartners 高质量 / 低成本
	QuadrantPreferredPartners Quadrant = "Preferred Partners"
	// QuadrantStrategicOpportunities 高质量 / 高成本
	QuadrantStrategicOpportunities Quadrant = "Strategic Opportunities"
	// QuadrantPerformanceFocus 低质量 / 低成本
	QuadrantPerformanceFocus Quadrant = "Performance Focus"
	// QuadrantOptimizationCandidates 低质量 / 高成本
	QuadrantOptimizationCandidates Quadrant = "Optimization Candidates"
)

// AllQuadrants 按固定顺序返回全部已知象限。
func AllQuadrants() []Quadrant {
	return []Quadrant{
		QuadrantPreferredPartners,
		QuadrantStrategicOpportunities,
		QuadrantPerformanceFocus,
		QuadrantOptimizationCandidates,
	}
}

// Valid 报告 q 是否属于已知象限集合。
func (q Quadrant) Valid() bool {
	switch q {
	case QuadrantPreferredPartners, QuadrantStrategicOpportunities,
		QuadrantPerformanceFocus, QuadrantOptimizationCandidates:
		return true
	}
	return false
}

// 象限配色，沿用原网络优化平台的品牌色
var quadrantColors = map[Quadrant]string{
	QuadrantPreferredPartners:      "#4CAF50",
	QuadrantStrategicOpportunities: "#FF9800",
	QuadrantPerformanceFocus:       "#00B4D8",
	QuadrantOptimizationCandidates: "#F44336",
}

// Color 返回象限的展示颜色；未知象限返回空字符串。
func (q Quadrant) Color() string {
	return quadrantColors[q]
}

// 象限 → 建议列表的静态映射。
// 建议文本是固定模板，按象限名称整体查找。
var quadrantRecommendations = map[Quadrant][]string{
	QuadrantPreferredPartners: {
		"Retain and expand partnerships",
		"Negotiate favorable contract renewals",
		"Use as benchmark for other providers",
		"Consider volume bonuses and incentives",
	},
	QuadrantStrategicOpportunities: {
		"Negotiate cost reductions while maintaining quality",
		"Explore value-based payment models",
		"Consider selective contracting strategies",
		"Monitor for potential quality improvements",
	},
	QuadrantPerformanceFocus: {
		"Implement quality improvement programs",
		"Provide additional training and support",
		"Set quality benchmarks and monitoring",
		"Consider performance-based incentives",
	},
	QuadrantOptimizationCandidates: {
		"Initiate performance improvement plans",
		"Consider contract termination if no improvement",
		"Identify alternative providers in market",
		"Ensure network adequacy before removal",
	},
}

// RecommendationsFor 返回指定象限的固定建议列表。
// 集合外的任何标签都回退到单条默认建议。调用方不应修改返回的切片。
func RecommendationsFor(q Quadrant) []string {
	if recs, ok := quadrantRecommendations[q]; ok {
		return recs
	}
	return []string{"Monitor performance"}
}
