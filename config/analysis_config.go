package config

import (
	"github.com/pkg/errors"
)

// TopicKeywordsConfig 单个主题及其关键词，列表顺序决定匹配优先级
type TopicKeywordsConfig struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

type ColorConfig struct {
	Human string `json:"human" yaml:"human"`
	AI    string `json:"ai" yaml:"ai"`
}

type AnalysisConfig struct {
	Topics   []TopicKeywordsConfig `json:"topics" yaml:"topics"`
	Fallback map[int]string        `json:"fallback" yaml:"fallback"` // label -> topic，关键词未命中时使用
	KeyWords []string              `json:"keyWords" yaml:"keyWords"` // 词频差异图使用的目标词
	Colors   ColorConfig           `json:"colors" yaml:"colors"`
}

func (a *AnalysisConfig) Validate() []error {
	var errs = make([]error, 0)
	if len(a.Topics) == 0 {
		errs = append(errs, errors.Errorf("主题关键词表不能为空"))
	}
	seen := make(map[string]struct{}, len(a.Topics))
	for i, t := range a.Topics {
		if t.Name == "" {
			errs = append(errs, errors.Errorf("第 %d 个主题名称为空", i))
			continue
		}
		if _, ok := seen[t.Name]; ok {
			errs = append(errs, errors.Errorf("主题重复: %s", t.Name))
		}
		seen[t.Name] = struct{}{}
		if len(t.Keywords) == 0 {
			errs = append(errs, errors.Errorf("主题 %s 没有关键词", t.Name))
		}
	}
	for label, topic := range a.Fallback {
		if topic == "" {
			errs = append(errs, errors.Errorf("label %d 的兜底主题为空", label))
		}
	}
	if len(a.KeyWords) == 0 {
		errs = append(errs, errors.Errorf("目标词列表不能为空"))
	}
	if a.Colors.Human == "" || a.Colors.AI == "" {
		errs = append(errs, errors.Errorf("类别颜色不能为空"))
	}
	return errs
}

func NewDefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		Topics: []TopicKeywordsConfig{
			{Name: "Politics", Keywords: []string{"government", "policy", "election", "electoral", "senator", "vote", "president", "congress"}},
			{Name: "Space Exploration", Keywords: []string{"nasa", "moon", "mars", "spaceship", "astronaut", "venus", "spacecraft"}},
			{Name: "Education", Keywords: []string{"student", "school", "subjects", "college", "university", "learning", "teacher", "classroom", "extracurricular"}},
			{Name: "Automotive Vehicles", Keywords: []string{"car", "driverless", "engine", "road", "fuel", "driving", "highway", "transport"}},
			{Name: "Motivation", Keywords: []string{"success", "goal", "achievement", "work hard", "failure", "positive", "dream", "inspire"}},
			{Name: "Technology", Keywords: []string{"smartphone", "online", "cloud", "software", "computer", "digital", "communication", "cell phone", "internet"}},
		},
		// 兜底表沿用多分类数据集时期的 label 编号，二分类数据只会用到 0 和 1
		Fallback: map[int]string{
			0: "Politics",
			1: "Space Exploration",
			2: "Education",
			3: "Automotive Vehicles",
			4: "Motivation",
			5: "Technology",
		},
		KeyWords: []string{
			"opinion", "feel", "experience", "understand", "believe",
			"analysis", "findings", "research", "therefore", "hypothesis",
			"perspective", "evidence", "interpret", "hope",
			"conclusion", "fact", "objective", "significant",
		},
		Colors: ColorConfig{
			Human: "#70A494",
			AI:    "#E8998D",
		},
	}
}
