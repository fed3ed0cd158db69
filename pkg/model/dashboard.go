package model

// WordWeight 词云中的一个词及其出现次数
type WordWeight struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// WordCloud 单个主题的词云
type WordCloud struct {
	Topic     string       `json:"topic"`
	Words     []WordWeight `json:"words"`
	PNGBase64 string       `json:"-"`
}

// DataURI 用于直接嵌入 <img src>
func (w WordCloud) DataURI() string {
	return "data:image/png;base64," + w.PNGBase64
}

// DashboardData 仪表盘所需的全部数据，启动时计算一次
type DashboardData struct {
	Records         int                `json:"records"`
	Kind            string             `json:"dataset_kind"`
	Summary         TopicSummary       `json:"summary"`
	WordFrequencies []WordFrequencyRow `json:"word_frequencies"`
	WordClouds      []WordCloud        `json:"word_clouds,omitempty"`
}
