package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type IConfig interface {
	Validate() []error
}

type GlobalConfig struct {
	DatasetConfig   *DatasetConfig   `json:"dataset" yaml:"dataset"`
	DuckDBConfig    *DuckDBConfig    `json:"duckdb" yaml:"duckdb"`
	ServerConfig    *ServerConfig    `json:"server" yaml:"server"`
	AnalysisConfig  *AnalysisConfig  `json:"analysis" yaml:"analysis"`
	WordCloudConfig *WordCloudConfig `json:"wordcloud" yaml:"wordcloud"`
}

func (g *GlobalConfig) Validate() []error {
	var errs = make([]error, 0)
	for _, c := range []IConfig{g.DatasetConfig, g.DuckDBConfig, g.ServerConfig, g.AnalysisConfig, g.WordCloudConfig} {
		if isNilConfig(c) {
			continue
		}
		if es := c.Validate(); len(es) > 0 {
			errs = append(errs, es...)
		}
	}
	return errs
}

func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		DatasetConfig:   NewDefaultDatasetConfig(),
		DuckDBConfig:    NewDefaultDuckDBConfig(),
		ServerConfig:    NewDefaultServerConfig(),
		AnalysisConfig:  NewDefaultAnalysisConfig(),
		WordCloudConfig: NewDefaultWordCloudConfig(),
	}
}

// Load 没有指定配置文件时直接使用内置默认值
func Load(configFilePath string) (*GlobalConfig, error) {
	if configFilePath == "" {
		return NewDefaultGlobalConfig(), nil
	}
	return TryLoadFromDisk(configFilePath)
}

func TryLoadFromDisk(configFilePath string) (*GlobalConfig, error) {
	_, err := os.Stat(configFilePath)
	if err != nil {
		return nil, err
	}
	dir, file := filepath.Split(configFilePath)
	fileType := filepath.Ext(file)
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(strings.TrimSuffix(file, fileType))
	v.SetConfigType(strings.TrimPrefix(fileType, "."))
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
		return nil, errors.Errorf("解析配置文件错误:%s", err.Error())
	}
	cfg := NewDefaultGlobalConfig()
	if err := v.Unmarshal(cfg, func(config *mapstructure.DecoderConfig) {
		config.TagName = strings.TrimPrefix(fileType, ".")
	}); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isNilConfig(c IConfig) bool {
	switch v := c.(type) {
	case *DatasetConfig:
		return v == nil
	case *DuckDBConfig:
		return v == nil
	case *ServerConfig:
		return v == nil
	case *AnalysisConfig:
		return v == nil
	case *WordCloudConfig:
		return v == nil
	}
	return c == nil
}
