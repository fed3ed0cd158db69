package config

import (
	"github.com/pkg/errors"
)

type WordCloudConfig struct {
	Enabled    bool   `json:"enabled" yaml:"enabled"`
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	MaxWords   int    `json:"maxWords" yaml:"maxWords"`
	Background string `json:"background" yaml:"background"` // 十六进制颜色，如 #ffffff
}

func (w *WordCloudConfig) Validate() []error {
	var errs = make([]error, 0)
	if !w.Enabled {
		return errs
	}
	if w.Width <= 0 || w.Height <= 0 {
		errs = append(errs, errors.Errorf("词云画布尺寸无效: %dx%d", w.Width, w.Height))
	}
	if w.MaxWords <= 0 {
		errs = append(errs, errors.Errorf("词云最大词数必须大于 0"))
	}
	if w.Background == "" {
		errs = append(errs, errors.Errorf("词云背景色不能为空"))
	}
	return errs
}

func NewDefaultWordCloudConfig() *WordCloudConfig {
	return &WordCloudConfig{
		Enabled:    true,
		Width:      1000,
		Height:     500,
		MaxWords:   200,
		Background: "#ffffff",
	}
}
