package config

import (
	"net"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

type ServerConfig struct {
	Host            string        `json:"host" yaml:"host"`
	Port            int           `json:"port" yaml:"port"`
	ShutdownTimeout time.Duration `json:"shutdownTimeout" yaml:"shutdownTimeout"`
	PlotlyURL       string        `json:"plotlyURL" yaml:"plotlyURL"` // 页面加载的 plotly.js 地址
}

func (s *ServerConfig) Validate() []error {
	var errs = make([]error, 0)
	if s.Host == "" {
		errs = append(errs, errors.Errorf("监听地址不能为空"))
	}
	if s.Port <= 0 || s.Port > 65535 {
		errs = append(errs, errors.Errorf("端口号无效: %d", s.Port))
	}
	if s.ShutdownTimeout <= 0 {
		errs = append(errs, errors.Errorf("关闭超时必须大于 0: %s", s.ShutdownTimeout))
	}
	if s.PlotlyURL == "" {
		errs = append(errs, errors.Errorf("plotly.js 地址不能为空"))
	}
	return errs
}

func NewDefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:            "127.0.0.1",
		Port:            8050,
		ShutdownTimeout: 5 * time.Second,
		PlotlyURL:       "https://cdn.plot.ly/plotly-2.35.2.min.js",
	}
}

func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
