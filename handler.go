package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/carenet/network-optimizer-mcp/analyzer"
)

// handleAnalyzeQuadrants 处理象限分析请求。
// 这是 MCP 工具 "analyze_quadrants" 的处理器函数。
func handleAnalyzeQuadrants(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	// --- 1. 获取并验证参数 ---
	providersURIStr, ok := args["providers_uri"].(string)
	if !ok || providersURIStr == "" {
		return nil, fmt.Errorf("missing or invalid required argument: providers_uri (string)")
	}
	outputFormat, ok := args["output_format"].(string)
	if !ok {
		outputFormat = "text" // 默认输出格式
	}
	thresholds := activeThresholds()
	qualityThreshold, ok := args["quality_threshold"].(float64)
	if !ok {
		qualityThreshold = thresholds.Quality
	}
	costThreshold, ok := args["cost_threshold"].(float64)
	if !ok {
		costThreshold = thresholds.Cost
	}

	log.Printf("Handling analyze_quadrants: URI=%s, Quality=%.1f, Cost=%.0f, Format=%s",
		providersURIStr, qualityThreshold, costThreshold, outputFormat)

	// --- 2. 获取并解码提供方数据 ---
	records, err := loadProviderRecords(providersURIStr)
	if err != nil {
		return nil, err
	}

	// --- 3. 执行象限分析 ---
	quadrantAnalyzer := analyzer.NewQuadrantAnalyzer(nil) // 使用标准指标实现
	result, err := quadrantAnalyzer.Analyze(records, qualityThreshold, costThreshold)
	if err != nil {
		log.Printf("Analysis error: %v", err)
		return nil, err
	}

	// 缓存结果供仪表盘会话读取
	storeAnalysis(result)

	// --- 4. 渲染并返回分析结果 ---
	rendered, err := analyzer.RenderAnalysisResult(result, outputFormat)
	if err != nil {
		return nil, err
	}
	log.Printf("Analysis successful. Result length: %d", len(rendered))
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: rendered,
			},
		},
	}, nil
}

// handleProcessProviderData 处理数据加载、过滤与分档请求。
// 未提供 providers_uri 时使用内置的示例数据集。
func handleProcessProviderData(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	// --- 1. 获取并验证参数 ---
	outputFormat, ok := args["output_format"].(string)
	if !ok {
		outputFormat = "text"
	}
	filters := analyzer.Filters{}
	if status, ok := args["network_status"].(string); ok && status != "" && status != "all" {
		filters.NetworkStatuses = []string{status}
	}
	if band, ok := args["volume_filter"].(string); ok && band != "all" {
		filters.VolumeFilter = band
	}
	if band, ok := args["quality_filter"].(string); ok && band != "all" {
		filters.QualityFilter = band
	}
	if band, ok := args["cost_filter"].(string); ok && band != "all" {
		filters.CostFilter = band
	}
	filters.State, _ = args["state"].(string)
	filters.CBSA, _ = args["cbsa"].(string)
	filters.ClinicalGroup, _ = args["clinical_group"].(string)
	filters.AdequacyRisk, _ = args["adequacy_risk"].(string)

	// --- 2. 加载提供方数据（或生成示例数据）---
	var records []analyzer.ProviderRecord
	if providersURIStr, ok := args["providers_uri"].(string); ok && providersURIStr != "" {
		var err error
		records, err = loadProviderRecords(providersURIStr)
		if err != nil {
			return nil, err
		}
	} else {
		log.Printf("No providers_uri provided, generating sample data.")
		records = analyzer.GenerateProviderData(defaultSampleSeed, 0)
	}

	// --- 3. 过滤、分档并汇总 ---
	result := analyzer.ProcessProviders(records, filters, activeThresholds())
	log.Printf("Processed provider data: %d of %d records after filtering", len(result.Data), len(records))

	// --- 4. 渲染并返回结果 ---
	rendered, err := analyzer.RenderProcessResult(result, outputFormat)
	if err != nil {
		return nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: rendered,
			},
		},
	}, nil
}

// handleNetworkMetrics 处理网络整体指标计算请求。
func handleNetworkMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	providersURIStr, ok := args["providers_uri"].(string)
	if !ok || providersURIStr == "" {
		return nil, fmt.Errorf("missing or invalid required argument: providers_uri (string)")
	}
	outputFormat, ok := args["output_format"].(string)
	if !ok {
		outputFormat = "text"
	}

	log.Printf("Handling network_metrics: URI=%s, Format=%s", providersURIStr, outputFormat)

	records, err := loadProviderRecords(providersURIStr)
	if err != nil {
		return nil, err
	}

	metrics := analyzer.CalculateNetworkMetrics(records)
	rendered, err := analyzer.RenderNetworkMetrics(metrics, outputFormat)
	if err != nil {
		return nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: rendered,
			},
		},
	}, nil
}

// 示例数据生成的默认随机种子
const defaultSampleSeed = 42

// handleGenerateSampleData 处理生成示例数据集的请求，
// 将提供方记录的 JSON 数组写入指定路径并返回文件内容。
func handleGenerateSampleData(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	// --- 1. 获取并验证参数 ---
	outputPath, ok := args["output_path"].(string)
	if !ok || outputPath == "" {
		return nil, fmt.Errorf("missing or invalid required argument: output_path (string)")
	}
	seedFloat, ok := args["seed"].(float64)
	if !ok {
		seedFloat = defaultSampleSeed
	}
	countFloat, ok := args["count"].(float64)
	if !ok {
		countFloat = 0 // 0 表示生成全部 50 条
	}

	log.Printf("Handling generate_sample_data: Output=%s, Seed=%d, Count=%d",
		outputPath, int64(seedFloat), int(countFloat))

	// --- 2. 生成并序列化数据 ---
	records := analyzer.GenerateProviderData(int64(seedFloat), int(countFloat))
	jsonBytes, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sample data: %w", err)
	}

	// --- 3. 写入输出文件 ---
	if err := os.WriteFile(outputPath, jsonBytes, 0o644); err != nil {
		log.Printf("Error writing sample data to '%s': %v", outputPath, err)
		return nil, fmt.Errorf("failed to write sample data to '%s': %w", outputPath, err)
	}
	log.Printf("Successfully generated %d sample providers at %s", len(records), outputPath)

	resultText := fmt.Sprintf("示例提供方数据已成功生成并保存到: %s (共 %d 条记录)", outputPath, len(records))
	textContent := mcp.TextContent{
		Type: "text",
		Text: resultText,
	}
	dataContent := mcp.TextContent{
		Type: "text",
		Text: string(jsonBytes),
	}

	// 返回包含文本消息和数据内容的结果
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			textContent, // 成功消息和路径
			dataContent, // 生成的 JSON 内容
		},
	}, nil
}
