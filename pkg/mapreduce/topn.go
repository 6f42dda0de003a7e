package mapreduce

import (
	"fmt"
	"sort"
	"strings"
)

// isValidKeyword filters malformed tokens: trailing separators, unmatched
// delimiters and unmatched quotes. Technical terms like x_train are kept.
func isValidKeyword(word string) bool {
	if strings.HasSuffix(word, ":") || strings.HasSuffix(word, "=") {
		return false
	}

	if strings.Contains(word, "(") && !strings.Contains(word, ")") {
		return false
	}
	if strings.Contains(word, "[") && !strings.Contains(word, "]") {
		return false
	}
	if strings.Contains(word, "{") && !strings.Contains(word, "}") {
		return false
	}

	if strings.Count(word, "\"")%2 != 0 {
		return false
	}
	if strings.Count(word, "'")%2 != 0 {
		return false
	}

	return true
}

type kv struct {
	Key   string
	Value int
}

// sorted returns valid entries by count descending, then key ascending.
func sorted(counts map[string]int) []kv {
	ss := make([]kv, 0, len(counts))
	for k, v := range counts {
		if isValidKeyword(k) {
			ss = append(ss, kv{k, v})
		}
	}
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})
	return ss
}

// TopKeywords returns the top N keywords from aggregated counts formatted as
// "word:count" (e.g., "layout:42").
func TopKeywords(wordCounts map[string]int, n int) []string {
	ss := sorted(wordCounts)
	limit := max(0, min(n, len(ss)))

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}
	return keywords
}
