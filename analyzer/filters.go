package analyzer

// Thresholds 汇总分类与分档使用的全部阈值。
// 默认值对应原平台 settings 中的标准配置，可由上层配置覆盖。
type Thresholds struct {
	Quality       float64 // 象限分类的质量阈值
	Cost          float64 // 象限分类的成本阈值
	HighVolume    int     // 超过为 "High Volume"
	MediumVolume  int     // 达到为 "Medium Volume"
	HighQuality   float64 // 超过为 "High Quality"
	MediumQuality float64 // 达到为 "Medium Quality"
	HighCost      float64 // 超过为 "High Cost"
	MediumCost    float64 // 达到为 "Medium Cost"
}

// DefaultThresholds 返回标准阈值配置。
func DefaultThresholds() Thresholds {
	return Thresholds{
		Quality:       DefaultQualityThreshold,
		Cost:          DefaultCostThreshold,
		HighVolume:    3000,
		MediumVolume:  1000,
		HighQuality:   4.5,
		MediumQuality: 3.5,
		HighCost:      700,
		MediumCost:    400,
	}
}

// VolumeCategory 按使用者规模分档。
func VolumeCategory(utilizers int, th Thresholds) string {
	if utilizers > th.HighVolume {
		return "High Volume"
	}
	if utilizers >= th.MediumVolume {
		return "Medium Volume"
	}
	return "Low Volume"
}

// QualityCategory 按质量评分分档。
func QualityCategory(qualityScore float64, th Thresholds) string {
	if qualityScore > th.HighQuality {
		return "High Quality"
	}
	if qualityScore >= th.MediumQuality {
		return "Medium Quality"
	}
	return "Low Quality"
}

// CostCategory 按单个使用者成本分档。
func CostCategory(costPerUtilizer float64, th Thresholds) string {
	if costPerUtilizer > th.HighCost {
		return "High Cost"
	}
	if costPerUtilizer >= th.MediumCost {
		return "Medium Cost"
	}
	return "Low Cost"
}

// Filters 描述数据处理步骤支持的筛选条件。
// 分档字段取值为 "high" / "medium" / "low"，空串或 "all" 表示不过滤。
type Filters struct {
	NetworkStatuses []string // 为空表示不过滤
	VolumeFilter    string
	QualityFilter   string
	CostFilter      string
	State           string // 提供方运营州须包含该州
	CBSA            string // 匹配 primary_cbsa
	ClinicalGroup   string
	AdequacyRisk    string // "High" / "Medium" / "Low"
}

// ApplyFilters 按条件过滤记录，返回新切片，不修改输入。
func ApplyFilters(records []ProviderRecord, f Filters, th Thresholds) []ProviderRecord {
	filtered := make([]ProviderRecord, 0, len(records))
	for _, rec := range records {
		if !matchesFilters(rec, f, th) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

func matchesFilters(rec ProviderRecord, f Filters, th Thresholds) bool {
	if len(f.NetworkStatuses) > 0 && !containsString(f.NetworkStatuses, rec.NetworkStatus) {
		return false
	}

	switch f.VolumeFilter {
	case "high":
		if rec.Utilizers <= th.HighVolume {
			return false
		}
	case "medium":
		if rec.Utilizers < th.MediumVolume || rec.Utilizers > th.HighVolume {
			return false
		}
	case "low":
		if rec.Utilizers >= th.MediumVolume {
			return false
		}
	}

	switch f.QualityFilter {
	case "high":
		if rec.QualityScore <= th.HighQuality {
			return false
		}
	case "medium":
		if rec.QualityScore < th.MediumQuality || rec.QualityScore > th.HighQuality {
			return false
		}
	case "low":
		if rec.QualityScore >= th.MediumQuality {
			return false
		}
	}

	switch f.CostFilter {
	case "high":
		if rec.CostPerUtilizer <= th.HighCost {
			return false
		}
	case "medium":
		if rec.CostPerUtilizer < th.MediumCost || rec.CostPerUtilizer > th.HighCost {
			return false
		}
	case "low":
		if rec.CostPerUtilizer >= th.MediumCost {
			return false
		}
	}

	if f.State != "" && !containsString(rec.OperatingStates, f.State) {
		return false
	}
	if f.CBSA != "" && rec.PrimaryCBSA != f.CBSA {
		return false
	}
	if f.ClinicalGroup != "" && rec.ClinicalGroup != f.ClinicalGroup {
		return false
	}
	if f.AdequacyRisk != "" && rec.AdequacyRisk != f.AdequacyRisk {
		return false
	}
	return true
}

// ProcessProviders 过滤记录、附加分档派生字段并生成汇总。
func ProcessProviders(records []ProviderRecord, f Filters, th Thresholds) ProcessResult {
	filtered := ApplyFilters(records, f, th)

	// 附加派生分档字段
	for i := range filtered {
		filtered[i].VolumeCategory = VolumeCategory(filtered[i].Utilizers, th)
		filtered[i].QualityCategory = QualityCategory(filtered[i].QualityScore, th)
		filtered[i].CostCategory = CostCategory(filtered[i].CostPerUtilizer, th)
	}

	summary := DataSummary{
		TotalProviders:   len(filtered),
		DataQualityScore: 98.5, // 原平台的固定数据质量评分
		ProcessingStatus: "complete",
	}
	var totalQuality, totalCost float64
	for _, rec := range filtered {
		if rec.NetworkStatus == "In-Network" {
			summary.InNetwork++
		} else {
			summary.OutNetwork++
		}
		totalQuality += rec.QualityScore
		totalCost += rec.CostPerUtilizer
		summary.TotalOpportunity += rec.TerminationValue
	}
	if len(filtered) > 0 {
		summary.AvgQuality = totalQuality / float64(len(filtered))
		summary.AvgCost = totalCost / float64(len(filtered))
	}

	return ProcessResult{Data: filtered, Summary: summary}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
