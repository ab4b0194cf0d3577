package main

import (
	"sort"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/carenet/network-optimizer-mcp/analyzer"
)

// analysisStore 按分析 ID 缓存完整的分析结果，供仪表盘会话读取。
// 结果只在内存中保留，超过 TTL 后自动清除。
var analysisStore = cache.New(24*time.Hour, time.Hour)

// initAnalysisStore 按配置重建结果缓存。在 main 中调用一次。
func initAnalysisStore(ttl, cleanupInterval time.Duration) {
	analysisStore = cache.New(ttl, cleanupInterval)
}

// storeAnalysis 将分析结果写入缓存。
func storeAnalysis(result *analyzer.AnalysisResult) {
	analysisStore.Set(result.AnalysisMetadata.AnalysisID, result, cache.DefaultExpiration)
}

// getAnalysis 按 ID 读取缓存的分析结果。
func getAnalysis(id string) (*analyzer.AnalysisResult, bool) {
	item, ok := analysisStore.Get(id)
	if !ok {
		return nil, false
	}
	result, ok := item.(*analyzer.AnalysisResult)
	return result, ok
}

// listAnalyses 返回全部缓存结果的元数据，按生成时间降序排列。
func listAnalyses() []analyzer.AnalysisMetadata {
	items := analysisStore.Items()
	metas := make([]analyzer.AnalysisMetadata, 0, len(items))
	for _, item := range items {
		if result, ok := item.Object.(*analyzer.AnalysisResult); ok {
			metas = append(metas, result.AnalysisMetadata)
		}
	}
	sort.Slice(metas, func(i, j int) bool {
		return metas[i].GeneratedAt > metas[j].GeneratedAt // RFC3339 可直接按字典序比较
	})
	return metas
}
