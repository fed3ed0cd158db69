package config

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// 支持的数据集文件扩展名
var supportedDatasetExts = map[string]struct{}{
	".parquet": {},
	".csv":     {},
	".tsv":     {},
	".json":    {},
	".jsonl":   {},
	".ndjson":  {},
}

type DatasetConfig struct {
	Path string `json:"path" yaml:"path"` // 预处理后的数据集文件路径
}

func (d *DatasetConfig) Validate() []error {
	var errs = make([]error, 0)
	if d.Path == "" {
		errs = append(errs, errors.Errorf("数据集路径不能为空"))
		return errs
	}
	ext := strings.ToLower(filepath.Ext(d.Path))
	if _, ok := supportedDatasetExts[ext]; !ok {
		errs = append(errs, errors.Errorf("不支持的数据集格式: %q", ext))
	}
	return errs
}

func NewDefaultDatasetConfig() *DatasetConfig {
	return &DatasetConfig{
		Path: "./data/processed_texts.parquet",
	}
}
