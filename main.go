package main

import (
	"log"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	// 1. 加载配置（默认值 → config.yaml → NETOPT_ 环境变量）
	cfg, err := loadConfig()
	if err != nil {
		log.Printf("Warning: failed to load configuration, using defaults: %v", err)
	} else {
		appConfig = cfg
		initAnalysisStore(
			time.Duration(cfg.Store.TTLMinutes)*time.Minute,
			time.Duration(cfg.Store.CleanupMinutes)*time.Minute,
		)
	}
	thresholds := activeThresholds()

	// 2. 初始化 MCP 服务器
	mcpServer := server.NewMCPServer(
		"NetworkOptimizer",    // 服务器名称
		"0.1.0",               // 服务器版本
		server.WithLogging(),  // 启用日志记录
		server.WithRecovery(), // 启用 panic 恢复
	)

	// 3. 定义 analyze_quadrants 工具及其参数
	analyzeTool := mcp.NewTool("analyze_quadrants",
		mcp.WithDescription("使用质量-成本象限方法分析提供方网络，产出移除/新增候选、财务影响与分档行动计划。"),

		mcp.WithString("providers_uri", // 参数名称
			mcp.Description("提供方记录 JSON 数组的 URI (支持 'file://', 'http://', 'https://' 或本地路径)。例如 'file:///path/to/providers.json'。"),
			mcp.Required(),
		),
		mcp.WithNumber("quality_threshold",
			mcp.Description("区分高/低质量的阈值 (5 分制)。"),
			mcp.DefaultNumber(thresholds.Quality),
		),
		mcp.WithNumber("cost_threshold",
			mcp.Description("区分高/低成本的阈值 (每使用者成本，美元)。"),
			mcp.DefaultNumber(thresholds.Cost),
		),
		mcp.WithString("output_format",
			mcp.Description("分析结果的输出格式。"),
			mcp.DefaultString("text"),
			mcp.Enum("text", "markdown", "json"),
		),
	)

	// 4. 定义 process_provider_data 工具
	processTool := mcp.NewTool("process_provider_data",
		mcp.WithDescription("加载提供方数据并按网络状态、规模/质量/成本分档与地域条件过滤；未提供 URI 时使用内置示例数据集。"),
		mcp.WithString("providers_uri",
			mcp.Description("提供方记录 JSON 数组的 URI，可省略。"),
		),
		mcp.WithString("network_status",
			mcp.Description("按网络状态过滤。"),
			mcp.DefaultString("all"),
			mcp.Enum("all", "In-Network", "Out-of-Network"),
		),
		mcp.WithString("volume_filter",
			mcp.Description("按使用者规模分档过滤。"),
			mcp.DefaultString("all"),
			mcp.Enum("all", "high", "medium", "low"),
		),
		mcp.WithString("quality_filter",
			mcp.Description("按质量评分分档过滤。"),
			mcp.DefaultString("all"),
			mcp.Enum("all", "high", "medium", "low"),
		),
		mcp.WithString("cost_filter",
			mcp.Description("按单个使用者成本分档过滤。"),
			mcp.DefaultString("all"),
			mcp.Enum("all", "high", "medium", "low"),
		),
		mcp.WithString("state",
			mcp.Description("按运营州过滤 (两位州代码，例如 'TX')。"),
		),
		mcp.WithString("cbsa",
			mcp.Description("按主要 CBSA 过滤。"),
		),
		mcp.WithString("clinical_group",
			mcp.Description("按临床分组过滤。"),
		),
		mcp.WithString("adequacy_risk",
			mcp.Description("按网络充足性风险过滤 ('High', 'Medium', 'Low')。"),
		),
		mcp.WithString("output_format",
			mcp.Description("结果的输出格式。"),
			mcp.DefaultString("text"),
			mcp.Enum("text", "markdown", "json"),
		),
	)

	// 5. 定义 network_metrics 工具
	metricsTool := mcp.NewTool("network_metrics",
		mcp.WithDescription("计算提供方网络的整体表现指标 (网络内外规模、平均质量与成本、节省机会)。"),
		mcp.WithString("providers_uri",
			mcp.Description("提供方记录 JSON 数组的 URI (支持 'file://', 'http://', 'https://' 或本地路径)。"),
			mcp.Required(),
		),
		mcp.WithString("output_format",
			mcp.Description("结果的输出格式。"),
			mcp.DefaultString("text"),
			mcp.Enum("text", "markdown", "json"),
		),
	)

	// 6. 定义 generate_sample_data 工具
	generateTool := mcp.NewTool("generate_sample_data",
		mcp.WithDescription("生成确定性的示例提供方数据集并保存为 JSON 文件，用于演示与测试。"),
		mcp.WithString("output_path",
			mcp.Description("生成的 JSON 文件的保存路径 (必须是绝对路径或相对于工作区的路径)。"),
			mcp.Required(),
		),
		mcp.WithNumber("seed",
			mcp.Description("随机种子；相同的种子产生相同的数据集。"),
			mcp.DefaultNumber(defaultSampleSeed),
		),
		mcp.WithNumber("count",
			mcp.Description("生成的记录条数 (1-50)；0 表示生成全部 50 条。"),
			mcp.DefaultNumber(0),
		),
	)

	// 7. 定义 open_dashboard 工具
	openDashboardTool := mcp.NewTool("open_dashboard",
		mcp.WithDescription("在后台启动只读仪表盘 HTTP 会话，提供已缓存分析结果的查询接口。成功启动后会返回会话 ID，用于后续关闭。"),
		mcp.WithString("http_address",
			mcp.Description("指定仪表盘的监听地址和端口 (例如 ':8082')。如果省略，使用配置中的默认地址。"),
			// 不提供 Required() 即为可选
		),
	)

	// 8. 定义 close_dashboard 工具
	closeDashboardTool := mcp.NewTool("close_dashboard",
		mcp.WithDescription("关闭由 'open_dashboard' 启动的指定仪表盘会话。"),
		mcp.WithString("session_id",
			mcp.Description("要关闭的仪表盘会话 ID (由 'open_dashboard' 返回)。"),
			mcp.Required(),
		),
	)

	// 9. 将所有工具及其处理器函数添加到服务器
	mcpServer.AddTool(analyzeTool, handleAnalyzeQuadrants)
	mcpServer.AddTool(processTool, handleProcessProviderData)
	mcpServer.AddTool(metricsTool, handleNetworkMetrics)
	mcpServer.AddTool(generateTool, handleGenerateSampleData)
	mcpServer.AddTool(openDashboardTool, handleOpenDashboard)
	mcpServer.AddTool(closeDashboardTool, handleCloseDashboard)

	// 10. 设置信号处理程序以进行清理
	setupSignalHandler() // 在服务器启动前设置

	// 11. Start the server using stdio transport
	log.Println("Starting NetworkOptimizer MCP server via stdio...")
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
