package service

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"writing-dashboard/pkg/model"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CloudDrawer 根据词频生成 PNG 图片
type CloudDrawer interface {
	Draw(words []model.WordWeight) ([]byte, error)
}

type WordCloudRenderer struct {
	drawer    CloudDrawer
	processor *TextProcessor
	maxWords  int
}

func NewWordCloudRenderer(drawer CloudDrawer, maxWords int) *WordCloudRenderer {
	return &WordCloudRenderer{
		drawer:    drawer,
		processor: NewTextProcessor(),
		maxWords:  maxWords,
	}
}

// Render 按主题首次出现的顺序为每个主题生成一张词云
func (r *WordCloudRenderer) Render(ctx context.Context, records []model.Record) ([]model.WordCloud, error) {
	var topics []string
	texts := make(map[string][]string)
	for _, rec := range records {
		if _, ok := texts[rec.Topic]; !ok {
			topics = append(topics, rec.Topic)
		}
		texts[rec.Topic] = append(texts[rec.Topic], rec.Text)
	}

	clouds := make([]model.WordCloud, 0, len(topics))
	for _, topic := range topics {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		startTime := time.Now()
		words := r.processor.TopWords(strings.Join(texts[topic], " "), r.maxWords)
		png, err := r.drawer.Draw(words)
		if err != nil {
			return nil, errors.Wrapf(err, "生成主题 %s 的词云失败", topic)
		}
		clouds = append(clouds, model.WordCloud{
			Topic:     topic,
			Words:     words,
			PNGBase64: base64.StdEncoding.EncodeToString(png),
		})
		zap.S().Debugf("主题 %s 词云生成完成: %d 个词, 耗时 %s", topic, len(words), time.Since(startTime))
	}
	return clouds, nil
}
