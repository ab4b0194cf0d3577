package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/carenet/network-optimizer-mcp/analyzer"
)

// getProvidersAsFile 获取提供方数据文件。
// - 如果输入不包含 "://", 则视为本地文件路径（相对或绝对）。
// - 如果是 file:// URI，直接使用其路径。
// - 如果是 http:// 或 https:// URI，下载到临时文件并返回其路径。
// 返回最终的文件路径、一个用于清理临时文件的函数（如果创建了临时文件）以及错误。
func getProvidersAsFile(uriStr string) (filePath string, cleanup func(), err error) {
	cleanup = func() {} // 默认清理函数为空操作

	// 检查输入是否包含协议头，如果没有，则假定为本地文件路径
	if !strings.Contains(uriStr, "://") {
		log.Printf("Input '%s' does not contain '://', treating as local file path.", uriStr)
		absPath, err := filepath.Abs(uriStr)
		if err != nil {
			return "", nil, fmt.Errorf("failed to get absolute path for '%s': %w", uriStr, err)
		}
		log.Printf("Using absolute local path: %s", absPath)
		return absPath, cleanup, nil
	}

	// 如果包含 "://", 则按 URI 处理
	parsedURI, err := url.Parse(uriStr)
	if err != nil {
		return "", nil, fmt.Errorf("invalid providers URI '%s': %w", uriStr, err)
	}

	switch parsedURI.Scheme {
	case "file":
		filePath = parsedURI.Path
		if filePath == "" {
			return "", nil, fmt.Errorf("invalid file path derived from URI '%s'", uriStr)
		}
		log.Printf("Using local providers file: %s", filePath)
		return filePath, cleanup, nil

	case "http", "https":
		log.Printf("Attempting to download provider data from URL: %s", uriStr)
		resp, err := http.Get(uriStr)
		if err != nil {
			return "", nil, fmt.Errorf("failed to download provider data from '%s': %w", uriStr, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", nil, fmt.Errorf("failed to download provider data from '%s': received status code %d", uriStr, resp.StatusCode)
		}

		// 创建临时文件来存储下载的内容
		tempFile, err := os.CreateTemp("", "providers-*.json")
		if err != nil {
			return "", nil, fmt.Errorf("failed to create temporary file for download: %w", err)
		}
		filePath = tempFile.Name()
		log.Printf("Downloading provider data to temporary file: %s", filePath)

		// 定义清理函数，用于删除临时文件
		cleanup = func() {
			log.Printf("Cleaning up temporary file: %s", filePath)
			err := os.Remove(filePath)
			if err != nil && !os.IsNotExist(err) {
				log.Printf("Warning: failed to remove temporary file '%s': %v", filePath, err)
			}
		}

		_, err = io.Copy(tempFile, resp.Body)
		closeErr := tempFile.Close()

		if err != nil {
			cleanup() // 如果复制失败，尝试清理临时文件
			return "", nil, fmt.Errorf("failed to write downloaded content to temporary file '%s': %w", filePath, err)
		}
		if closeErr != nil {
			log.Printf("Warning: failed to close temporary file handle for '%s': %v", filePath, closeErr)
		}

		log.Printf("Successfully downloaded provider data to %s", filePath)
		return filePath, cleanup, nil

	default:
		return "", nil, fmt.Errorf("unsupported URI scheme '%s', only 'file://', 'http://', 'https://', or a plain local path are supported", parsedURI.Scheme)
	}
}

// loadProviderRecords 获取并解码提供方记录。
// 数据格式为 ProviderRecord 的 JSON 数组；解码错误原样向上传递。
func loadProviderRecords(uriStr string) ([]analyzer.ProviderRecord, error) {
	filePath, cleanup, err := getProvidersAsFile(uriStr)
	if err != nil {
		return nil, fmt.Errorf("failed to get providers file: %w", err)
	}
	defer cleanup() // 确保临时文件（如果创建了）被清理

	file, err := os.Open(filePath)
	if err != nil {
		log.Printf("Error opening providers file '%s': %v", filePath, err)
		return nil, fmt.Errorf("failed to open providers file '%s': %w", filePath, err)
	}
	defer file.Close()

	records, err := analyzer.DecodeProviders(file)
	if err != nil {
		log.Printf("Error decoding providers file '%s': %v", filePath, err)
		return nil, err
	}
	log.Printf("Successfully loaded %d provider records from %s", len(records), filePath)
	return records, nil
}
