package service

import "github.com/pkg/errors"

var (
	ErrMissingColumn     = errors.New("数据集缺少必需列")
	ErrUnsupportedFormat = errors.New("不支持的数据集格式")
	ErrUnresolvedTopic   = errors.New("无法为记录分配主题")
	ErrNoRecords         = errors.New("数据集为空")
)
