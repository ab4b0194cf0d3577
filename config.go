package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/carenet/network-optimizer-mcp/analyzer"
)

// ThresholdConfig 对应分析与分档使用的阈值配置
type ThresholdConfig struct {
	Quality       float64 `mapstructure:"quality"`
	Cost          float64 `mapstructure:"cost"`
	HighVolume    int     `mapstructure:"high_volume"`
	MediumVolume  int     `mapstructure:"medium_volume"`
	HighQuality   float64 `mapstructure:"high_quality"`
	MediumQuality float64 `mapstructure:"medium_quality"`
	HighCost      float64 `mapstructure:"high_cost"`
	MediumCost    float64 `mapstructure:"medium_cost"`
}

// DashboardConfig 控制仪表盘会话的默认监听地址
type DashboardConfig struct {
	Address string `mapstructure:"address"`
}

// StoreConfig 控制分析结果缓存的保留策略
type StoreConfig struct {
	TTLMinutes     int `mapstructure:"ttl_minutes"`
	CleanupMinutes int `mapstructure:"cleanup_minutes"`
}

// Config 是服务器的全部可调配置
type Config struct {
	Thresholds ThresholdConfig `mapstructure:"thresholds"`
	Dashboard  DashboardConfig `mapstructure:"dashboard"`
	Store      StoreConfig     `mapstructure:"store"`
}

// appConfig 由 main 在启动时设置；为 nil 时各读取函数回退到默认值
var appConfig *Config

// loadConfig 按 默认值 → 配置文件 → 环境变量 的顺序加载配置。
// 配置文件可选 (config.yaml，搜索当前目录与 /etc/network-optimizer/)；
// 环境变量使用 NETOPT_ 前缀，例如 NETOPT_THRESHOLDS_QUALITY。
func loadConfig() (*Config, error) {
	v := viper.New()

	// 设置默认值，与原平台的标准阈值保持一致
	defaults := analyzer.DefaultThresholds()
	v.SetDefault("thresholds.quality", defaults.Quality)
	v.SetDefault("thresholds.cost", defaults.Cost)
	v.SetDefault("thresholds.high_volume", defaults.HighVolume)
	v.SetDefault("thresholds.medium_volume", defaults.MediumVolume)
	v.SetDefault("thresholds.high_quality", defaults.HighQuality)
	v.SetDefault("thresholds.medium_quality", defaults.MediumQuality)
	v.SetDefault("thresholds.high_cost", defaults.HighCost)
	v.SetDefault("thresholds.medium_cost", defaults.MediumCost)
	v.SetDefault("dashboard.address", ":8082")
	v.SetDefault("store.ttl_minutes", 24*60)
	v.SetDefault("store.cleanup_minutes", 60)

	// 加载可选的配置文件
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/network-optimizer/")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Printf("Loaded configuration from %s", v.ConfigFileUsed())
	}

	// 加载环境变量
	v.SetEnvPrefix("NETOPT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// activeThresholds 返回当前生效的分析阈值。
func activeThresholds() analyzer.Thresholds {
	if appConfig == nil {
		return analyzer.DefaultThresholds()
	}
	return analyzer.Thresholds{
		Quality:       appConfig.Thresholds.Quality,
		Cost:          appConfig.Thresholds.Cost,
		HighVolume:    appConfig.Thresholds.HighVolume,
		MediumVolume:  appConfig.Thresholds.MediumVolume,
		HighQuality:   appConfig.Thresholds.HighQuality,
		MediumQuality: appConfig.Thresholds.MediumQuality,
		HighCost:      appConfig.Thresholds.HighCost,
		MediumCost:    appConfig.Thresholds.MediumCost,
	}
}

// defaultDashboardAddress 返回仪表盘会话的默认监听地址。
func defaultDashboardAddress() string {
	if appConfig == nil || appConfig.Dashboard.Address == "" {
		return ":8082"
	}
	return appConfig.Dashboard.Address
}
