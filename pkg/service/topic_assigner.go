package service

import (
	"strings"

	"writing-dashboard/config"
	"writing-dashboard/pkg/model"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// TopicKeywords 主题及其关键词
type TopicKeywords struct {
	Topic    string
	Keywords []string
}

// TopicRules 主题分配所需的两张查找表，互相独立
type TopicRules struct {
	Topics   []TopicKeywords // 有序，先命中者优先
	Fallback map[int]string  // label -> topic
}

func NewTopicRules(cfg *config.AnalysisConfig) TopicRules {
	rules := TopicRules{
		Topics:   make([]TopicKeywords, 0, len(cfg.Topics)),
		Fallback: make(map[int]string, len(cfg.Fallback)),
	}
	for _, t := range cfg.Topics {
		rules.Topics = append(rules.Topics, TopicKeywords{
			Topic:    t.Name,
			Keywords: append([]string(nil), t.Keywords...),
		})
	}
	for label, topic := range cfg.Fallback {
		rules.Fallback[label] = topic
	}
	return rules
}

type TopicAssigner struct {
	rules TopicRules
}

func NewTopicAssigner(rules TopicRules) *TopicAssigner {
	return &TopicAssigner{rules: rules}
}

// MatchKeyword 按表顺序返回第一个有关键词出现在文本中的主题
// 关键词按子串匹配，支持 "work hard" 这类多词关键词
func (a *TopicAssigner) MatchKeyword(text string) (string, bool) {
	for _, t := range a.rules.Topics {
		for _, kw := range t.Keywords {
			if strings.Contains(text, kw) {
				return t.Topic, true
			}
		}
	}
	return "", false
}

// Assign 返回每条记录都带有主题的新切片，不修改输入
func (a *TopicAssigner) Assign(ds *model.Dataset) ([]model.Record, error) {
	records := make([]model.Record, len(ds.Records))
	copy(records, ds.Records)

	switch ds.Kind {
	case model.KindTopicked:
		for _, r := range records {
			if r.Topic == "" {
				return nil, errors.Wrapf(ErrUnresolvedTopic, "第 %d 行 topic 为空", r.Index)
			}
		}
		return records, nil
	case model.KindUntopicked:
	default:
		return nil, errors.Errorf("未知的数据集类型: %s", ds.Kind)
	}

	zap.S().Info("数据集缺少 topic 列，重新分配主题...")

	matched := 0
	for i := range records {
		if topic, ok := a.MatchKeyword(records[i].Text); ok {
			records[i].Topic = topic
			matched++
		}
	}

	// 关键词未命中的记录按 label 兜底
	fallback := 0
	for i := range records {
		if records[i].Topic != "" {
			continue
		}
		topic, ok := a.rules.Fallback[records[i].Label]
		if !ok {
			return nil, errors.Wrapf(ErrUnresolvedTopic, "第 %d 行未命中关键词且 label %d 没有兜底主题", records[i].Index, records[i].Label)
		}
		records[i].Topic = topic
		fallback++
	}

	zap.S().Debugf("主题分配完成: 关键词命中 %d 条, 兜底 %d 条", matched, fallback)
	return records, nil
}
