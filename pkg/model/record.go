package model

// Category 由二分类 label 推导出的写作来源
type Category string

const (
	CategoryHuman Category = "Human"
	CategoryAI    Category = "AI"
)

// aiLabel 数据集中代表 AI 生成文本的 label
const aiLabel = 1

// CategoryFor label 为 1 时是 AI，其余一律视为 Human
func CategoryFor(label int) Category {
	if label == aiLabel {
		return CategoryAI
	}
	return CategoryHuman
}

// Record 表示数据集中的一条文本样本
type Record struct {
	Index    int      `json:"index"`          // 在数据集中的行号
	Label    int      `json:"label"`          // 原始 label
	Text     string   `json:"processed_text"` // 预处理后的文本
	Category Category `json:"category"`
	Topic    string   `json:"topic,omitempty"` // 为空表示尚未分配
}
