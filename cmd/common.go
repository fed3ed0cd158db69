package cmd

import (
	"context"
	"errors"

	"writing-dashboard/config"
	"writing-dashboard/pkg/db"
	"writing-dashboard/pkg/service"

	"go.uber.org/zap"
)

func loadConfig(configFilePath string) (*config.GlobalConfig, error) {
	cfg, err := config.Load(configFilePath)
	if err != nil {
		zap.S().Errorf("读取本地配置文件错误:%s", err.Error())
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		err := errors.Join(errs...)
		zap.S().Errorf("本地配置文件验证错误:%s", err)
		return nil, err
	}
	if cfg.DatasetConfig == nil || cfg.DuckDBConfig == nil || cfg.AnalysisConfig == nil {
		err := errors.New("数据集、DuckDB 或分析配置未设置")
		zap.S().Error(err.Error())
		return nil, err
	}
	return cfg, nil
}

// newDashboardService withClouds 为 false 时不生成词云
func newDashboardService(ctx context.Context, cfg *config.GlobalConfig, withClouds bool) (*service.DashboardService, error) {
	if err := db.InitDuckDB(cfg.DuckDBConfig); err != nil {
		zap.S().Errorf("DuckDB 连接错误:%s", err.Error())
		return nil, err
	}
	loader := service.NewDatasetLoader(db.GetDuckDBWithContext(ctx))

	var renderer *service.WordCloudRenderer
	if withClouds && cfg.WordCloudConfig != nil && cfg.WordCloudConfig.Enabled {
		drawer, err := service.NewGGDrawer(cfg.WordCloudConfig)
		if err != nil {
			zap.S().Errorf("初始化词云绘制失败:%s", err.Error())
			return nil, err
		}
		renderer = service.NewWordCloudRenderer(drawer, cfg.WordCloudConfig.MaxWords)
	}
	return service.NewDashboardService(cfg, loader, renderer), nil
}
