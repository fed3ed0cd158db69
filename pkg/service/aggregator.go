package service

import (
	"fmt"
	"sort"

	"writing-dashboard/pkg/model"
)

type groupKey struct {
	topic    string
	category model.Category
}

// Aggregate 按 (topic, category) 统计数量和占比，结果按 topic、category 字典序排列
func Aggregate(records []model.Record) model.TopicSummary {
	counts := make(map[groupKey]int)
	for _, r := range records {
		counts[groupKey{topic: r.Topic, category: r.Category}]++
	}

	keys := make([]groupKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].topic != keys[j].topic {
			return keys[i].topic < keys[j].topic
		}
		return keys[i].category < keys[j].category
	})

	total := len(records)
	summary := model.TopicSummary{
		Rows:  make([]model.TopicCategoryCount, 0, len(keys)),
		Total: total,
	}
	var weighted, weights float64
	for _, k := range keys {
		count := counts[k]
		pct := float64(count) / float64(total) * 100
		summary.Rows = append(summary.Rows, model.TopicCategoryCount{
			Topic:           k.topic,
			Category:        k.category,
			Count:           count,
			Percentage:      pct,
			PercentageLabel: PercentageLabel(pct),
		})
		weighted += float64(count) * float64(count)
		weights += float64(count)
	}
	if weights > 0 {
		summary.ColorMidpoint = weighted / weights
	}
	return summary
}

// PercentageLabel 保留一位小数并加上 % 后缀
func PercentageLabel(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}
