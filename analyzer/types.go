package analyzer

// --- JSON 输出结构体定义 ---

// ErrorResult 用于在 JSON 格式中返回错误信息
type ErrorResult struct {
	Error string `json:"error"`
}

// FinancialImpact 代表移除/新增候选组合的财务影响汇总 (JSON)
type FinancialImpact struct {
	TotalRemovalSavings       float64 `json:"total_removal_savings"`       // 移除候选的终止价值总和
	AvgQualityImprovement     float64 `json:"avg_quality_improvement"`     // 相对 4.0 基准的平均质量提升
	PotentialAdditionalVolume int     `json:"potential_additional_volume"` // 新增候选可带来的使用者规模
	NetFinancialImpact        float64 `json:"net_financial_impact"`        // 简化计算：等于移除节省总额
}

// QuadrantInsight 代表单个象限的聚合洞察 (JSON)
type QuadrantInsight struct {
	Count             int      `json:"count"`
	AvgQuality        float64  `json:"avg_quality"`
	AvgCost           float64  `json:"avg_cost"`
	TotalUtilizers    int      `json:"total_utilizers"`
	AvgMarketPosition float64  `json:"avg_market_position"`
	HighRiskCount     int      `json:"high_risk_count"` // adequacy_risk 为 "High" 的提供方数量
	Recommendations   []string `json:"recommendations"` // 按象限名称查找的固定建议列表
}

// PriorityAction 代表优先行动计划中的单条行动。
// 不同时间档位使用不同的字段子集，未使用的字段通过 omitempty 省略。
type PriorityAction struct {
	Action          string   `json:"action"`
	Target          string   `json:"target,omitempty"`           // 行动针对的提供方名称
	Rationale       string   `json:"rationale,omitempty"`        // 引用质量分与成本的理由说明
	Description     string   `json:"description,omitempty"`      // 中期行动的描述
	FinancialImpact float64  `json:"financial_impact,omitempty"` // 立即行动关联的终止价值
	ExpectedBenefit string   `json:"expected_benefit,omitempty"`
	SuccessMetrics  []string `json:"success_metrics,omitempty"` // 中期行动的成功度量名称
}

// PriorityPlan 代表三档时间线的优先行动计划 (JSON)
type PriorityPlan struct {
	Immediate30Days           []PriorityAction `json:"immediate_30_days"`
	ShortTerm90Days           []PriorityAction `json:"short_term_90_days"`
	MediumTerm6Months         []PriorityAction `json:"medium_term_6_months"`
	TotalFinancialOpportunity float64          `json:"total_financial_opportunity"`
}

// AnalysisMetadata 记录本次分析使用的阈值与规模信息 (JSON)
type AnalysisMetadata struct {
	AnalysisID                string  `json:"analysis_id"`  // 每次分析生成的 UUID
	GeneratedAt               string  `json:"generated_at"` // RFC3339 时间戳
	QualityThreshold          float64 `json:"quality_threshold"`
	CostThreshold             float64 `json:"cost_threshold"`
	TotalProvidersAnalyzed    int     `json:"total_providers_analyzed"`
	OptimizationOpportunities int     `json:"optimization_opportunities"` // 移除候选数 + 新增候选数
}

// AnalysisResult 代表一次完整象限分析的结果 (JSON)
type AnalysisResult struct {
	QuadrantSummary         map[string]int             `json:"quadrant_summary"` // 各象限的提供方计数
	RemovalCandidates       []ProviderRecord           `json:"removal_candidates"`
	AdditionCandidates      []ProviderRecord           `json:"addition_candidates"`
	FinancialImpact         FinancialImpact            `json:"financial_impact"`
	QuadrantInsights        map[string]QuadrantInsight `json:"quadrant_insights"`
	PriorityRecommendations PriorityPlan               `json:"priority_recommendations"`
	ProcessedData           []ProviderRecord           `json:"processed_data"` // 附加了象限标签的完整记录
	AnalysisMetadata        AnalysisMetadata           `json:"analysis_metadata"`
}

// NetworkMetrics 代表网络层面的整体表现指标 (JSON)
type NetworkMetrics struct {
	TotalProviders        int     `json:"total_providers"`
	InNetworkProviders    int     `json:"in_network_providers"`
	OutNetworkProviders   int     `json:"out_network_providers"`
	TotalUtilizers        int     `json:"total_utilizers"`
	AvgCostPerUtilizer    float64 `json:"avg_cost_per_utilizer"`
	AvgQualityScore       float64 `json:"avg_quality_score"`
	NetworkSavings        float64 `json:"network_savings"`
	CostEfficiencyPercent float64 `json:"cost_efficiency_percent"`
	HighRiskRemovals      int     `json:"high_risk_removals"`
	TotalOpportunity      float64 `json:"total_opportunity"`
}

// DataSummary 代表数据处理结果的汇总信息 (JSON)
type DataSummary struct {
	TotalProviders   int     `json:"total_providers"`
	InNetwork        int     `json:"in_network"`
	OutNetwork       int     `json:"out_network"`
	AvgQuality       float64 `json:"avg_quality"`
	AvgCost          float64 `json:"avg_cost"`
	TotalOpportunity float64 `json:"total_opportunity"`
	DataQualityScore float64 `json:"data_quality_score"`
	ProcessingStatus string  `json:"processing_status"`
}

// ProcessResult 代表过滤与分类后的提供方数据集 (JSON)
type ProcessResult struct {
	Data    []ProviderRecord `json:"data"`
	Summary DataSummary      `json:"summary"`
}
