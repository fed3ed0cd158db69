package service

import (
	"context"
	"time"

	"writing-dashboard/config"
	"writing-dashboard/pkg/model"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DashboardService 串联加载、主题分配、统计与词云生成
type DashboardService struct {
	cfg      *config.GlobalConfig
	loader   *DatasetLoader
	assigner *TopicAssigner
	analyzer *WordFrequencyAnalyzer
	renderer *WordCloudRenderer // 为 nil 时不生成词云
}

func NewDashboardService(cfg *config.GlobalConfig, loader *DatasetLoader, renderer *WordCloudRenderer) *DashboardService {
	return &DashboardService{
		cfg:      cfg,
		loader:   loader,
		assigner: NewTopicAssigner(NewTopicRules(cfg.AnalysisConfig)),
		analyzer: NewWordFrequencyAnalyzer(cfg.AnalysisConfig.KeyWords),
		renderer: renderer,
	}
}

// BuildSummary 计算统计表，不生成词云
func (s *DashboardService) BuildSummary(ctx context.Context) (*model.DashboardData, []model.Record, error) {
	ds, err := s.loader.Load(ctx, s.cfg.DatasetConfig.Path)
	if err != nil {
		return nil, nil, err
	}
	if len(ds.Records) == 0 {
		zap.S().Warnf("数据集 %s 没有任何记录", s.cfg.DatasetConfig.Path)
	}

	records, err := s.assigner.Assign(ds)
	if err != nil {
		return nil, nil, err
	}

	startTime := time.Now()
	data := &model.DashboardData{
		Records:         len(records),
		Kind:            ds.Kind.String(),
		Summary:         Aggregate(records),
		WordFrequencies: s.analyzer.Analyze(records),
	}
	zap.S().Infof("统计完成: %d 个分组, %d 个目标词, 耗时 %s", len(data.Summary.Rows), len(data.WordFrequencies), time.Since(startTime))
	return data, records, nil
}

// Build 计算仪表盘需要的全部数据
func (s *DashboardService) Build(ctx context.Context) (*model.DashboardData, error) {
	data, records, err := s.BuildSummary(ctx)
	if err != nil {
		return nil, err
	}
	if s.renderer == nil {
		return data, nil
	}

	startTime := time.Now()
	clouds, err := s.renderer.Render(ctx, records)
	if err != nil {
		return nil, errors.Wrap(err, "生成词云失败")
	}
	data.WordClouds = clouds
	zap.S().Infof("词云生成完成: %d 个主题, 耗时 %s", len(clouds), time.Since(startTime))
	return data, nil
}
