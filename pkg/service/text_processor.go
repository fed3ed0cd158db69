package service

import (
	"sort"
	"strings"
	"unicode"

	"writing-dashboard/pkg/model"
)

// 词云中忽略的常见英文停用词
var defaultStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an", "and", "any",
	"are", "as", "at", "be", "because", "been", "before", "being", "below", "between", "both",
	"but", "by", "can", "could", "did", "do", "does", "doing", "down", "during", "each", "even",
	"ever", "few", "for", "from", "further", "get", "had", "has", "have", "having", "he", "her",
	"here", "hers", "herself", "him", "himself", "his", "how", "however", "i", "if", "in", "into",
	"is", "it", "its", "itself", "just", "like", "me", "more", "most", "my", "myself", "no", "nor",
	"not", "of", "off", "on", "once", "only", "or", "other", "otherwise", "ought", "our", "ours",
	"ourselves", "out", "over", "own", "same", "shall", "she", "should", "since", "so", "some",
	"such", "than", "that", "the", "their", "theirs", "them", "themselves", "then", "there",
	"these", "they", "this", "those", "through", "to", "too", "under", "until", "up", "very",
	"was", "we", "were", "what", "when", "where", "which", "while", "who", "whom", "why", "with",
	"would", "you", "your", "yours", "yourself", "yourselves",
}

// TextProcessor 为词云统计词频
type TextProcessor struct {
	stopwords map[string]struct{}
}

func NewTextProcessor() *TextProcessor {
	stop := make(map[string]struct{}, len(defaultStopwords))
	for _, w := range defaultStopwords {
		stop[w] = struct{}{}
	}
	return &TextProcessor{stopwords: stop}
}

// Tokenize 转小写后按非字母数字切分，去掉停用词和纯数字
func (p *TextProcessor) Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'")
		f = strings.TrimSuffix(f, "'s")
		if f == "" || isDigits(f) {
			continue
		}
		if _, ok := p.stopwords[f]; ok {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// TopWords 返回出现次数最多的 limit 个词，次数相同按字典序
func (p *TextProcessor) TopWords(text string, limit int) []model.WordWeight {
	counts := make(map[string]int)
	for _, tok := range p.Tokenize(text) {
		counts[tok]++
	}
	words := make([]model.WordWeight, 0, len(counts))
	for w, c := range counts {
		words = append(words, model.WordWeight{Text: w, Count: c})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Text < words[j].Text
	})
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
