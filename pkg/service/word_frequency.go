package service

import (
	"sort"
	"strings"

	"writing-dashboard/pkg/model"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WordFrequencyAnalyzer 统计目标词在 AI 与 Human 文本中的出现次数差异
type WordFrequencyAnalyzer struct {
	keyWords []string
}

func NewWordFrequencyAnalyzer(keyWords []string) *WordFrequencyAnalyzer {
	return &WordFrequencyAnalyzer{keyWords: append([]string(nil), keyWords...)}
}

// Analyze 按空白分词并区分大小写计数，两类都为 0 的词不输出，结果按差值升序
func (a *WordFrequencyAnalyzer) Analyze(records []model.Record) []model.WordFrequencyRow {
	freq := map[model.Category]map[string]int{
		model.CategoryAI:    make(map[string]int),
		model.CategoryHuman: make(map[string]int),
	}
	for _, r := range records {
		counter, ok := freq[r.Category]
		if !ok {
			continue
		}
		for _, tok := range strings.Fields(r.Text) {
			counter[tok]++
		}
	}

	titler := cases.Title(language.English)
	rows := make([]model.WordFrequencyRow, 0, len(a.keyWords))
	for _, word := range a.keyWords {
		ai := freq[model.CategoryAI][word]
		human := freq[model.CategoryHuman][word]
		if ai == 0 && human == 0 {
			continue
		}
		rows = append(rows, model.WordFrequencyRow{
			Word:      titler.String(word),
			AIFreq:    ai,
			HumanFreq: human,
			FreqDiff:  human - ai,
		})
	}

	// 差值相同的词保持目标词列表中的顺序
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].FreqDiff < rows[j].FreqDiff
	})
	return rows
}
