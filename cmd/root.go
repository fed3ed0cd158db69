package cmd

import (
	"writing-dashboard/pkg/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type rootOptions struct {
	configFilePath string
	verbose        bool
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:          "writing-dashboard",
		Short:        "AI 与人类写作对比分析仪表盘",
		Long:         "加载预处理后的文本数据集，统计主题分布与目标词词频差异，并在本地启动仪表盘页面",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableNoDescFlag:   true,
			DisableDescriptions: true,
			HiddenDefaultCmd:    true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(opts.verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFilePath, "config", "c", "", "配置文件路径，不指定时使用内置默认值")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "输出调试日志")

	rootCmd.AddCommand(NewServeCommand(opts))
	rootCmd.AddCommand(NewReportCommand(opts))

	// 不带子命令时直接启动仪表盘
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, opts)
	}
	rootCmd.Version = util.GetVersion().Version
	return rootCmd
}

func setupLogger(verbose bool) error {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return errors.Wrap(err, "初始化日志失败")
	}
	zap.ReplaceGlobals(logger)
	return nil
}
