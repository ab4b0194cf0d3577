package analyzer

import (
	"encoding/json"
	"fmt"
	"io"
)

// CBSAPerformance 代表提供方在单个 CBSA (核心统计区) 内的市场表现
type CBSAPerformance struct {
	MarketShare float64 `json:"market_share"`
	QualityRank int     `json:"quality_rank"`
	CostRank    int     `json:"cost_rank"`
}

// ProviderRecord 代表单个提供方的绩效记录。
// 分析所需的最小字段为 quality_score, cost_per_utilizer, utilizers,
// market_position_percentile 和 adequacy_risk；其余为数据集携带的描述性字段。
// 本层不做字段校验，缺失的数值字段按零值参与计算。
type ProviderRecord struct {
	ProviderID               string                     `json:"provider_id,omitempty"`
	Name                     string                     `json:"name"`
	NetworkStatus            string                     `json:"network_status,omitempty"` // "In-Network" 或 "Out-of-Network"
	ClinicalGroup            string                     `json:"clinical_group,omitempty"`
	PrimaryCBSA              string                     `json:"primary_cbsa,omitempty"`
	CostPerUtilizer          float64                    `json:"cost_per_utilizer"`
	QualityScore             float64                    `json:"quality_score"` // 5 分制质量评分
	Utilizers                int                        `json:"utilizers"`
	Satisfaction             float64                    `json:"satisfaction,omitempty"`
	Utilization              float64                    `json:"utilization,omitempty"`
	ContractExpiry           string                     `json:"contract_expiry,omitempty"` // YYYY-MM-DD
	TerminationValue         float64                    `json:"termination_value"`         // 移除该提供方的预估节省
	OperatingStates          []string                   `json:"operating_states,omitempty"`
	StatePerformance         map[string]string          `json:"state_performance,omitempty"`
	EpisodePerformance       map[string]string          `json:"episode_performance,omitempty"`
	CBSAPerformance          map[string]CBSAPerformance `json:"cbsa_performance,omitempty"`
	MarketPositionPercentile float64                    `json:"market_position_percentile"`
	AdequacyRisk             string                     `json:"adequacy_risk,omitempty"` // "High" / "Medium" / "Low"
	Competitors              []string                   `json:"competitors,omitempty"`

	// --- 派生字段，由分类与数据处理步骤写入记录副本 ---
	Quadrant        Quadrant `json:"quadrant,omitempty"`
	QuadrantColor   string   `json:"quadrant_color,omitempty"`
	VolumeCategory  string   `json:"volume_category,omitempty"`
	QualityCategory string   `json:"quality_category,omitempty"`
	CostCategory    string   `json:"cost_category,omitempty"`
}

// DecodeProviders 从 r 中解码提供方记录的 JSON 数组。
// 解码失败时原样返回底层错误，由调用方决定如何呈现。
func DecodeProviders(r io.Reader) ([]ProviderRecord, error) {
	var records []ProviderRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode provider records: %w", err)
	}
	return records, nil
}
