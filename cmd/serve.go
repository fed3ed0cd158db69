package cmd

import (
	"writing-dashboard/pkg/dashboard"
	"writing-dashboard/pkg/db"
	"writing-dashboard/pkg/signals"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "计算统计数据并启动本地仪表盘",
		Long:  "启动时一次性完成数据加载、主题分配、统计和词云生成，之后只对外提供渲染好的页面",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(opts.configFilePath)
	if err != nil {
		return err
	}

	ctx := signals.SetupSignalHandler()

	svc, err := newDashboardService(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer db.CloseDuckDB()

	data, err := svc.Build(ctx)
	if err != nil {
		zap.S().Errorf("生成仪表盘数据失败:%s", err.Error())
		return err
	}

	page, err := dashboard.RenderPage(data, cfg)
	if err != nil {
		zap.S().Errorf("渲染仪表盘失败:%s", err.Error())
		return err
	}

	return dashboard.NewServer(cfg.ServerConfig, page).Run(ctx)
}
