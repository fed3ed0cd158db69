package model

// TopicCategoryCount 按 (topic, category) 分组的统计行
type TopicCategoryCount struct {
	Topic           string   `json:"topic"`
	Category        Category `json:"category"`
	Count           int      `json:"count"`
	Percentage      float64  `json:"percentage"`
	PercentageLabel string   `json:"percentage_label"`
}

// TopicSummary 主题分布统计结果
type TopicSummary struct {
	Rows          []TopicCategoryCount `json:"rows"`
	Total         int                  `json:"total"`
	ColorMidpoint float64              `json:"color_midpoint"` // 以数量为权重的数量均值，用作色阶中点
}

// WordFrequencyRow 目标词在两类文本中的出现次数
type WordFrequencyRow struct {
	Word      string `json:"word"`
	AIFreq    int    `json:"ai_freq"`
	HumanFreq int    `json:"human_freq"`
	FreqDiff  int    `json:"freq_diff"` // HumanFreq - AIFreq
}
