package cmd

import (
	"writing-dashboard/pkg/db"
	"writing-dashboard/pkg/service"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewReportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "以 JSON 输出主题分布和词频差异统计",
		Long:  "只计算统计表，不生成词云也不启动服务，结果输出到标准输出",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configFilePath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc, err := newDashboardService(ctx, cfg, false)
			if err != nil {
				return err
			}
			defer db.CloseDuckDB()

			data, _, err := svc.BuildSummary(ctx)
			if err != nil {
				zap.S().Errorf("统计失败:%s", err.Error())
				return err
			}
			if data.Records == 0 {
				zap.S().Warn(service.ErrNoRecords.Error())
			}

			out, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(out, '\n'))
			return err
		},
	}
}
