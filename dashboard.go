package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/carenet/network-optimizer-mcp/analyzer"
)

// dashboardSession 代表一个进程内启动的只读仪表盘 HTTP 服务
type dashboardSession struct {
	ID      string
	Address string
	server  *http.Server
}

// 全局变量，用于跟踪由本服务器启动的仪表盘会话
var (
	runningDashboards = make(map[string]*dashboardSession) // 存储会话 ID 到会话的映射
	dashboardMutex    sync.Mutex                           // 用于保护 runningDashboards 的互斥锁
)

// newDashboardRouter 构建仪表盘的只读路由。
// 数据全部来自内存中的分析结果缓存，不提供任何写入接口。
func newDashboardRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 已缓存分析的元数据列表
	router.GET("/api/analyses", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"analyses": listAnalyses()})
	})

	// 按 ID 返回完整分析结果
	router.GET("/api/analyses/:id", func(c *gin.Context) {
		result, ok := getAnalysis(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("analysis '%s' not found", c.Param("id"))})
			return
		}
		c.JSON(http.StatusOK, result)
	})

	// 象限静态参考信息：配色与建议模板
	router.GET("/api/quadrants", func(c *gin.Context) {
		quadrants := make(map[string]gin.H)
		for _, q := range analyzer.AllQuadrants() {
			quadrants[string(q)] = gin.H{
				"color":           q.Color(),
				"recommendations": analyzer.RecommendationsFor(q),
			}
		}
		c.JSON(http.StatusOK, quadrants)
	})

	return router
}

// handleOpenDashboard 处理启动仪表盘会话的请求。
func handleOpenDashboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	httpAddress, ok := args["http_address"].(string)
	if !ok || httpAddress == "" {
		httpAddress = defaultDashboardAddress()
		log.Printf("No http_address provided, using default: %s", httpAddress)
	}

	log.Printf("Handling open_dashboard: Address=%s", httpAddress)

	// 先行监听以同步暴露端口占用等错误
	listener, err := net.Listen("tcp", httpAddress)
	if err != nil {
		log.Printf("Error listening on '%s': %v", httpAddress, err)
		return nil, fmt.Errorf("failed to listen on '%s': %w", httpAddress, err)
	}

	session := &dashboardSession{
		ID:      uuid.NewString(),
		Address: listener.Addr().String(),
		server:  &http.Server{Handler: newDashboardRouter()},
	}

	go func() {
		if err := session.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Dashboard session %s exited with error: %v", session.ID, err)
		}
	}()

	dashboardMutex.Lock()
	runningDashboards[session.ID] = session
	dashboardMutex.Unlock()

	log.Printf("Successfully started dashboard session %s on %s", session.ID, session.Address)

	resultText := fmt.Sprintf("已成功启动仪表盘会话 (ID: %s)，监听地址 %s。", session.ID, session.Address)
	resultText += "\n可访问 /api/analyses 查看已缓存的分析结果。"
	resultText += "\n你可以使用 'close_dashboard' 工具并提供会话 ID 来关闭此会话。"

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: resultText,
			},
		},
	}, nil
}

// handleCloseDashboard 处理关闭指定仪表盘会话的请求。
func handleCloseDashboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	sessionID, ok := args["session_id"].(string)
	if !ok || sessionID == "" {
		return nil, fmt.Errorf("missing or invalid required argument: session_id (string)")
	}

	log.Printf("Handling close_dashboard for session: %s", sessionID)

	dashboardMutex.Lock()
	session, exists := runningDashboards[sessionID]
	if !exists {
		dashboardMutex.Unlock()
		log.Printf("Session %s not found in running dashboard sessions.", sessionID)
		return nil, fmt.Errorf("未找到 ID 为 %s 的正在运行的仪表盘会话", sessionID)
	}
	delete(runningDashboards, sessionID) // 从 map 中移除记录
	dashboardMutex.Unlock()

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := session.server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down dashboard session %s: %v", sessionID, err)
		return nil, fmt.Errorf("尝试关闭会话 %s 失败：%w", sessionID, err)
	}

	resultText := fmt.Sprintf("已成功关闭仪表盘会话 %s。", sessionID)
	log.Println(resultText)

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: resultText,
			},
		},
	}, nil
}

// setupSignalHandler 设置信号处理，用于在服务器退出时关闭仪表盘会话。
// 这个函数应该在 main 函数中被调用一次。
func setupSignalHandler() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigs
		log.Printf("Received signal: %s. Shutting down dashboard sessions...", sig)

		dashboardMutex.Lock()
		sessionsToClose := make([]*dashboardSession, 0, len(runningDashboards))
		for _, session := range runningDashboards {
			sessionsToClose = append(sessionsToClose, session)
		}
		runningDashboards = make(map[string]*dashboardSession) // 清空 map
		dashboardMutex.Unlock()

		if len(sessionsToClose) == 0 {
			log.Println("No running dashboard sessions to shut down.")
			return
		}

		log.Printf("Shutting down %d dashboard sessions", len(sessionsToClose))
		var wg sync.WaitGroup
		wg.Add(len(sessionsToClose))

		for _, session := range sessionsToClose {
			go func(s *dashboardSession) {
				defer wg.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := s.server.Shutdown(shutdownCtx); err != nil {
					log.Printf("Failed to shut down session %s: %v", s.ID, err)
				}
			}(session)
		}
		wg.Wait() // 等待所有会话完成关闭尝试
		log.Println("Cleanup finished.")
	}()
}
