package analyzer

// CalculateNetworkMetrics 计算网络层面的整体表现指标。
// 平均值只统计网络内提供方；total_opportunity 覆盖全部记录。
func CalculateNetworkMetrics(records []ProviderRecord) NetworkMetrics {
	metrics := NetworkMetrics{
		TotalProviders:        len(records),
		CostEfficiencyPercent: 10, // 原平台的固定口径
	}

	var inNetworkCost, inNetworkQuality float64
	inNetwork := 0
	for _, rec := range records {
		metrics.TotalOpportunity += rec.TerminationValue
		if rec.NetworkStatus != "In-Network" {
			continue
		}
		inNetwork++
		metrics.TotalUtilizers += rec.Utilizers
		inNetworkCost += rec.CostPerUtilizer
		inNetworkQuality += rec.QualityScore
		metrics.NetworkSavings += rec.TerminationValue
		if rec.AdequacyRisk == "High" {
			metrics.HighRiskRemovals++
		}
	}

	metrics.InNetworkProviders = inNetwork
	metrics.OutNetworkProviders = len(records) - inNetwork
	if inNetwork > 0 {
		metrics.AvgCostPerUtilizer = inNetworkCost / float64(inNetwork)
		metrics.AvgQualityScore = inNetworkQuality / float64(inNetwork)
	}

	return metrics
}
